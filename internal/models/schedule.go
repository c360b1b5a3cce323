// ABOUTME: Schedule generation and the A/B day-type rule.
// ABOUTME: A schedule is a deterministic run of consecutive days from a start date.
package models

import (
	"errors"
	"fmt"
	"time"
)

// DayType selects which guided protocol a day follows.
type DayType string

const (
	// DayTypeA is an invitation day (4-step protocol).
	DayTypeA DayType = "A"
	// DayTypeB is a baseline day (3-step protocol).
	DayTypeB DayType = "B"
)

// ErrInvalidLength is returned for a negative schedule length.
var ErrInvalidLength = errors.New("invalid schedule length")

// Label returns the human-readable name of the day type.
func (d DayType) Label() string {
	switch d {
	case DayTypeA:
		return "Invitation Day (A)"
	case DayTypeB:
		return "Baseline Day (B)"
	default:
		return "Unknown"
	}
}

// IsValid reports whether d is A or B.
func (d DayType) IsValid() bool {
	return d == DayTypeA || d == DayTypeB
}

// DayTypeForDate returns the day type of a calendar date.
// Sunday, Monday, Wednesday and Friday are A-days; Tuesday, Thursday and
// Saturday are B-days.
func DayTypeForDate(t time.Time) DayType {
	switch t.Weekday() {
	case time.Sunday, time.Monday, time.Wednesday, time.Friday:
		return DayTypeA
	default:
		return DayTypeB
	}
}

// ScheduleEntry is one day of the program.
type ScheduleEntry struct {
	Date      string  `json:"date" yaml:"date"`
	DayType   DayType `json:"dayType" yaml:"day_type"`
	DayNumber int     `json:"dayNumber" yaml:"day_number"`
}

// GenerateSchedule builds length consecutive entries starting at start.
// The result depends only on the calendar date of start and on length.
func GenerateSchedule(start time.Time, length int) ([]ScheduleEntry, error) {
	if length < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLength, length)
	}

	anchor := AnchorDate(start)
	schedule := make([]ScheduleEntry, 0, length)
	for i := 0; i < length; i++ {
		d := anchor.AddDate(0, 0, i)
		schedule = append(schedule, ScheduleEntry{
			Date:      FormatDate(d),
			DayType:   DayTypeForDate(d),
			DayNumber: i + 1,
		})
	}
	return schedule, nil
}

// GenerateScheduleFrom parses startDate and generates the schedule.
func GenerateScheduleFrom(startDate string, length int) ([]ScheduleEntry, error) {
	start, err := ParseDate(startDate)
	if err != nil {
		return nil, err
	}
	return GenerateSchedule(start, length)
}

// FindEntry returns the position of date in schedule, or -1.
func FindEntry(schedule []ScheduleEntry, date string) int {
	for i, e := range schedule {
		if e.Date == date {
			return i
		}
	}
	return -1
}
