// ABOUTME: Tests for adherence and average views.
// ABOUTME: Covers the zero-day and zero-record edge cases and orphan counting.
package views

import (
	"testing"

	"github.com/harperreed/practice/internal/models"
)

func testSchedule(t *testing.T, start string, length int) []models.ScheduleEntry {
	t.Helper()
	schedule, err := models.GenerateScheduleFrom(start, length)
	if err != nil {
		t.Fatalf("GenerateScheduleFrom failed: %v", err)
	}
	return schedule
}

func record(date string, mood, ground int) *models.MetricsRecord {
	r := models.NewRecord(date)
	r.Mood = models.Level(mood)
	r.Ground = models.Level(ground)
	return r
}

func metricsOf(records ...*models.MetricsRecord) models.Metrics {
	m := models.Metrics{}
	for _, r := range records {
		m[r.Date] = r
	}
	return m
}

func TestDaysPassed(t *testing.T) {
	schedule := testSchedule(t, "2024-01-01", 7)

	tests := []struct {
		today string
		want  int
	}{
		{"2023-12-31", 0},
		{"2024-01-01", 1},
		{"2024-01-04", 4},
		{"2024-01-07", 7},
		{"2024-03-01", 7},
	}

	for _, tt := range tests {
		if got := DaysPassed(schedule, tt.today); got != tt.want {
			t.Errorf("DaysPassed(%s) = %d, want %d", tt.today, got, tt.want)
		}
	}
}

func TestAdherence(t *testing.T) {
	schedule := testSchedule(t, "2024-01-01", 7)

	tests := []struct {
		name    string
		metrics models.Metrics
		today   string
		want    int
	}{
		{
			name:    "before start",
			metrics: metricsOf(record("2024-01-01", 5, 5)),
			today:   "2023-12-01",
			want:    0,
		},
		{
			name:    "empty schedule day one",
			metrics: models.Metrics{},
			today:   "2024-01-01",
			want:    0,
		},
		{
			name:    "two of three",
			metrics: metricsOf(record("2024-01-01", 5, 5), record("2024-01-03", 5, 5)),
			today:   "2024-01-03",
			want:    67,
		},
		{
			name: "orphans and future records count",
			metrics: metricsOf(
				record("2023-06-01", 5, 5),
				record("2024-01-01", 5, 5),
				record("2024-01-06", 5, 5),
			),
			today: "2024-01-02",
			want:  150,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Adherence(schedule, tt.metrics, tt.today); got != tt.want {
				t.Errorf("Adherence = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestAdherenceEmptySchedule(t *testing.T) {
	if got := Adherence(nil, metricsOf(record("2024-01-01", 5, 5)), "2024-01-01"); got != 0 {
		t.Errorf("Adherence = %d, want 0", got)
	}
}

func TestComputeAveragesNoData(t *testing.T) {
	a := ComputeAverages(models.Metrics{})

	if a.HasData() {
		t.Error("expected no data")
	}
	if a.MoodString() != NoData || a.GroundString() != NoData {
		t.Errorf("got %q/%q, want %q", a.MoodString(), a.GroundString(), NoData)
	}
	if a.Mood != 0 || a.Ground != 0 {
		t.Errorf("expected zero values, got %v/%v", a.Mood, a.Ground)
	}
}

func TestComputeAverages(t *testing.T) {
	a := ComputeAverages(metricsOf(
		record("2024-01-01", 4, 6),
		record("2024-01-02", 7, 3),
		record("2019-01-01", 8, 8), // orphan still counts
	))

	if a.Count != 3 {
		t.Errorf("Count = %d, want 3", a.Count)
	}
	if a.MoodString() != "6.3" {
		t.Errorf("MoodString = %q, want 6.3", a.MoodString())
	}
	if a.GroundString() != "5.7" {
		t.Errorf("GroundString = %q, want 5.7", a.GroundString())
	}
}
