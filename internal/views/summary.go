// ABOUTME: Progress summary combining adherence, averages, and A/B comparisons.
// ABOUTME: Compares mean urges and behavior counts between invitation and baseline days.
package views

import (
	"github.com/harperreed/practice/internal/models"
)

// TypeStats aggregates the records that fall on one day type.
type TypeStats struct {
	ScheduledDays int        `json:"scheduledDays"`
	RecordedDays  int        `json:"recordedDays"`
	MeanUrges     [4]float64 `json:"meanUrges"`
	BehaviorDays  [4]int     `json:"behaviorDays"`
}

// Summary is the progress overview for the whole program.
type Summary struct {
	Today         string    `json:"today"`
	TotalDays     int       `json:"totalDays"`
	DaysPassed    int       `json:"daysPassed"`
	DaysRemaining int       `json:"daysRemaining"`
	Recorded      int       `json:"recorded"`
	Orphans       int       `json:"orphans"`
	Adherence     int       `json:"adherence"`
	Averages      Averages  `json:"averages"`
	Streak        int       `json:"streak"`
	BehaviorDays  [4]int    `json:"behaviorDays"`
	A             TypeStats `json:"a"`
	B             TypeStats `json:"b"`
}

// Summarize builds the summary as of today.
func Summarize(schedule []models.ScheduleEntry, metrics models.Metrics, today string) Summary {
	passed := DaysPassed(schedule, today)
	s := Summary{
		Today:         today,
		TotalDays:     len(schedule),
		DaysPassed:    passed,
		DaysRemaining: len(schedule) - passed,
		Recorded:      len(metrics),
		Adherence:     Adherence(schedule, metrics, today),
		Averages:      ComputeAverages(metrics),
		Streak:        Streak(schedule, metrics, today),
	}

	for _, r := range metrics {
		for i, b := range r.Behaviors() {
			if b {
				s.BehaviorDays[i]++
			}
		}
	}

	var urgeSums [2][4]float64
	inSchedule := 0
	for _, e := range schedule {
		stats := &s.B
		slot := 1
		if e.DayType == models.DayTypeA {
			stats = &s.A
			slot = 0
		}
		stats.ScheduledDays++

		r, ok := metrics[e.Date]
		if !ok || r == nil {
			continue
		}
		inSchedule++
		stats.RecordedDays++
		for i, u := range r.Urges() {
			urgeSums[slot][i] += float64(u)
		}
		for i, b := range r.Behaviors() {
			if b {
				stats.BehaviorDays[i]++
			}
		}
	}
	s.Orphans = len(metrics) - inSchedule

	for slot, stats := range []*TypeStats{&s.A, &s.B} {
		if stats.RecordedDays == 0 {
			continue
		}
		for i := range stats.MeanUrges {
			stats.MeanUrges[i] = urgeSums[slot][i] / float64(stats.RecordedDays)
		}
	}

	return s
}

// Streak counts consecutive recorded schedule days ending today. If today is
// not recorded yet the count ends at yesterday instead.
func Streak(schedule []models.ScheduleEntry, metrics models.Metrics, today string) int {
	last := DaysPassed(schedule, today) - 1
	// Schedule dates are ascending, so the passed days are a prefix.
	if last < 0 {
		return 0
	}
	if _, ok := metrics[schedule[last].Date]; !ok && schedule[last].Date == today {
		last--
	}

	streak := 0
	for i := last; i >= 0; i-- {
		if _, ok := metrics[schedule[i].Date]; !ok {
			break
		}
		streak++
	}
	return streak
}
