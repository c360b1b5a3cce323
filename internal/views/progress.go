// ABOUTME: Progress views over schedule and metrics: adherence and averages.
// ABOUTME: Pure functions; "today" is always passed in by the caller.
package views

import (
	"fmt"
	"math"

	"github.com/harperreed/practice/internal/models"
)

// NoData is shown in place of an average when nothing has been recorded.
const NoData = "—"

// DaysPassed counts schedule entries dated on or before today.
func DaysPassed(schedule []models.ScheduleEntry, today string) int {
	n := 0
	for _, e := range schedule {
		// ISO dates order lexically.
		if e.Date <= today {
			n++
		}
	}
	return n
}

// Adherence is the rounded percentage of recorded dates over elapsed
// schedule days. Every record counts, including orphans and future dates.
// Returns 0 before the program starts.
func Adherence(schedule []models.ScheduleEntry, metrics models.Metrics, today string) int {
	passed := DaysPassed(schedule, today)
	if passed == 0 {
		return 0
	}
	return int(math.Round(100 * float64(len(metrics)) / float64(passed)))
}

// Averages holds the mean mood and groundedness across all records.
type Averages struct {
	Count  int     `json:"count"`
	Mood   float64 `json:"mood"`
	Ground float64 `json:"ground"`
}

// ComputeAverages averages mood and ground over every record.
func ComputeAverages(metrics models.Metrics) Averages {
	var a Averages
	var mood, ground float64
	for _, r := range metrics {
		mood += float64(r.Mood)
		ground += float64(r.Ground)
		a.Count++
	}
	if a.Count == 0 {
		return a
	}
	a.Mood = mood / float64(a.Count)
	a.Ground = ground / float64(a.Count)
	return a
}

// HasData reports whether any record contributed.
func (a Averages) HasData() bool {
	return a.Count > 0
}

// MoodString formats the mood average with one decimal, or NoData.
func (a Averages) MoodString() string {
	return a.format(a.Mood)
}

// GroundString formats the ground average with one decimal, or NoData.
func (a Averages) GroundString() string {
	return a.format(a.Ground)
}

func (a Averages) format(v float64) string {
	if !a.HasData() {
		return NoData
	}
	return fmt.Sprintf("%.1f", v)
}
