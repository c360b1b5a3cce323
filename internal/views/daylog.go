// ABOUTME: Day log for data review: every recorded date joined to its schedule day.
// ABOUTME: Records with no matching schedule day are kept with an unknown day type.
package views

import (
	"github.com/harperreed/practice/internal/models"
)

// DayLogEntry is one recorded day in the review log.
type DayLogEntry struct {
	Date      string                `json:"date"`
	DayType   models.DayType        `json:"dayType,omitempty"`
	DayNumber int                   `json:"dayNumber,omitempty"`
	InProgram bool                  `json:"inProgram"`
	Record    *models.MetricsRecord `json:"record"`
}

// DayLog lists every record in date order. DayType is empty and InProgram
// false for orphan records.
func DayLog(schedule []models.ScheduleEntry, metrics models.Metrics) []DayLogEntry {
	byDate := make(map[string]models.ScheduleEntry, len(schedule))
	for _, e := range schedule {
		byDate[e.Date] = e
	}

	log := make([]DayLogEntry, 0, len(metrics))
	for _, date := range metrics.Dates() {
		entry := DayLogEntry{Date: date, Record: metrics[date]}
		if e, ok := byDate[date]; ok {
			entry.DayType = e.DayType
			entry.DayNumber = e.DayNumber
			entry.InProgram = true
		}
		log = append(log, entry)
	}
	return log
}
