// ABOUTME: Day view model and navigation over the schedule.
// ABOUTME: Indexes are clamped into range instead of failing.
package views

import (
	"github.com/harperreed/practice/internal/models"
)

// DayView is everything needed to render one program day.
type DayView struct {
	Index        int                   `json:"index"`
	Total        int                   `json:"total"`
	Entry        models.ScheduleEntry  `json:"entry"`
	Label        string                `json:"label"`
	Instructions []models.Step         `json:"instructions"`
	Record       *models.MetricsRecord `json:"record,omitempty"`
	HasPrev      bool                  `json:"hasPrev"`
	HasNext      bool                  `json:"hasNext"`
}

// Recorded reports whether the day has a record.
func (v DayView) Recorded() bool {
	return v.Record != nil
}

// ClampIndex limits i to [0, n-1]. With n == 0 it returns 0.
func ClampIndex(i, n int) int {
	if n <= 0 || i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}

// IndexForDate returns the position of date in schedule, or 0 when the date
// falls outside it.
func IndexForDate(schedule []models.ScheduleEntry, date string) int {
	if i := models.FindEntry(schedule, date); i >= 0 {
		return i
	}
	return 0
}

// BuildDayView builds the view for the day at index, clamped into range.
// The second result is false when the schedule is empty.
func BuildDayView(schedule []models.ScheduleEntry, metrics models.Metrics, index int) (DayView, bool) {
	if len(schedule) == 0 {
		return DayView{}, false
	}

	i := ClampIndex(index, len(schedule))
	e := schedule[i]
	return DayView{
		Index:        i,
		Total:        len(schedule),
		Entry:        e,
		Label:        e.DayType.Label(),
		Instructions: models.Instructions(e.DayType),
		Record:       metrics[e.Date],
		HasPrev:      i > 0,
		HasNext:      i < len(schedule)-1,
	}, true
}
