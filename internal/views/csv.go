// ABOUTME: CSV export of the schedule joined with recorded metrics.
// ABOUTME: One row per schedule day; notes are always quoted when a record exists.
package views

import (
	"strconv"
	"strings"

	"github.com/harperreed/practice/internal/models"
)

const (
	// CSVFilename is the default export file name.
	CSVFilename = "spiritual-practice-data.csv"
	// CSVMIMEType is the media type of the export.
	CSVMIMEType = "text/csv"
)

// CSVHeader is the fixed column order of the export.
var CSVHeader = []string{
	"date", "dayNumber", "dayType",
	"pornUrge", "mastUrge", "cigUrge", "weedUrge",
	"pornUsed", "mastUsed", "cigUsed", "weedUsed",
	"mood", "ground", "notes",
}

// BuildCSV renders the export. Rows follow schedule order and are joined by
// "\n" with no trailing newline. Records outside the schedule are not
// exported.
func BuildCSV(schedule []models.ScheduleEntry, metrics models.Metrics) string {
	lines := make([]string, 0, len(schedule)+1)
	lines = append(lines, strings.Join(CSVHeader, ","))

	for _, e := range schedule {
		row := []string{e.Date, strconv.Itoa(e.DayNumber), string(e.DayType)}
		r, ok := metrics[e.Date]
		if !ok || r == nil {
			for i := 3; i < len(CSVHeader); i++ {
				row = append(row, "")
			}
			lines = append(lines, strings.Join(row, ","))
			continue
		}

		for _, u := range r.Urges() {
			row = append(row, strconv.Itoa(int(u)))
		}
		for _, b := range r.Behaviors() {
			row = append(row, b.YesNo())
		}
		row = append(row,
			strconv.Itoa(int(r.Mood)),
			strconv.Itoa(int(r.Ground)),
			QuoteCSV(r.Notes),
		)
		lines = append(lines, strings.Join(row, ","))
	}

	return strings.Join(lines, "\n")
}

// QuoteCSV wraps s in double quotes, doubling any embedded quote.
func QuoteCSV(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
