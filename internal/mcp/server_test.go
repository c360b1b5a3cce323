// ABOUTME: Tests for MCP server, tools, and resources.
// ABOUTME: Covers NewServer, tool handlers, and resource handlers.
package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/harperreed/practice/internal/app"
	"github.com/harperreed/practice/internal/models"
	"github.com/harperreed/practice/internal/storage"
	"github.com/harperreed/practice/internal/views"
)

// testNow is Tuesday 2024-01-02.
var testNow = time.Date(2024, 1, 2, 9, 0, 0, 0, time.UTC)

// setupTestServer creates a server over a fresh SQLite store.
func setupTestServer(t *testing.T, configure bool) *Server {
	t.Helper()

	repo, err := storage.Open(filepath.Join(t.TempDir(), "practice.db"))
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}
	t.Cleanup(func() { repo.Close() })

	tracker := app.NewTracker(repo, nil).WithClock(func() time.Time { return testNow })
	if configure {
		if _, err := tracker.Setup(models.NewProgramConfig("2024-01-01", 7)); err != nil {
			t.Fatalf("Setup failed: %v", err)
		}
	}

	server, err := NewServer(tracker, nil)
	if err != nil {
		t.Fatalf("NewServer failed: %v", err)
	}
	return server
}

func intp(v int) *int    { return &v }
func boolp(v bool) *bool { return &v }

func TestNewServer(t *testing.T) {
	server := setupTestServer(t, false)

	if server.mcpServer == nil {
		t.Error("Expected non-nil mcpServer")
	}
	if server.tracker == nil {
		t.Error("Expected non-nil tracker")
	}
}

func TestHandleGetDay(t *testing.T) {
	server := setupTestServer(t, true)
	ctx := context.Background()

	tests := []struct {
		name     string
		input    getDayInput
		wantDate string
		wantType models.DayType
	}{
		{"defaults to today", getDayInput{}, "2024-01-02", models.DayTypeB},
		{"by date", getDayInput{Date: "2024-01-03"}, "2024-01-03", models.DayTypeA},
		{"by day number", getDayInput{Day: 1}, "2024-01-01", models.DayTypeA},
		{"day number clamped", getDayInput{Day: 99}, "2024-01-07", models.DayTypeA},
		{"date after program clamped", getDayInput{Date: "2030-01-01"}, "2024-01-07", models.DayTypeA},
		{"date before program clamped", getDayInput{Date: "2023-06-01"}, "2024-01-01", models.DayTypeA},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, out, err := server.handleGetDay(ctx, &mcp.CallToolRequest{}, tt.input)
			if err != nil {
				t.Fatalf("handleGetDay failed: %v", err)
			}
			v, ok := out.(views.DayView)
			if !ok {
				t.Fatalf("output type = %T, want views.DayView", out)
			}
			if v.Entry.Date != tt.wantDate || v.Entry.DayType != tt.wantType {
				t.Errorf("entry = %+v, want %s %s", v.Entry, tt.wantDate, tt.wantType)
			}
		})
	}
}

func TestHandleGetDayErrors(t *testing.T) {
	ctx := context.Background()

	server := setupTestServer(t, true)
	if _, _, err := server.handleGetDay(ctx, &mcp.CallToolRequest{}, getDayInput{Date: "01/02/2024"}); !errors.Is(err, models.ErrInvalidDate) {
		t.Errorf("error = %v, want ErrInvalidDate", err)
	}

	unconfigured := setupTestServer(t, false)
	if _, _, err := unconfigured.handleGetDay(ctx, &mcp.CallToolRequest{}, getDayInput{}); !errors.Is(err, app.ErrNotConfigured) {
		t.Errorf("error = %v, want ErrNotConfigured", err)
	}
}

func TestHandleRecordMetrics(t *testing.T) {
	server := setupTestServer(t, true)
	ctx := context.Background()

	_, out, err := server.handleRecordMetrics(ctx, &mcp.CallToolRequest{}, recordMetricsInput{
		CigUrge: intp(14),
		CigUsed: boolp(true),
		Mood:    intp(7),
		Notes:   "rainy",
	})
	if err != nil {
		t.Fatalf("handleRecordMetrics failed: %v", err)
	}
	if out.Date != "2024-01-02" || !out.InProgram || out.DayNumber != 2 || out.DayType != "B" {
		t.Errorf("output = %+v", out)
	}
	if !strings.Contains(out.Message, "day 2") {
		t.Errorf("Message = %q", out.Message)
	}

	r, err := server.tracker.Get("2024-01-02")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if r.CigUrge != 10 || !r.CigUsed || r.Mood != 7 || r.Notes != "rainy" {
		t.Errorf("stored = %+v", r)
	}
}

func TestHandleRecordMetricsMerge(t *testing.T) {
	server := setupTestServer(t, true)
	ctx := context.Background()
	req := &mcp.CallToolRequest{}

	if _, _, err := server.handleRecordMetrics(ctx, req, recordMetricsInput{Date: "2024-01-03", WeedUrge: intp(4), Notes: "first"}); err != nil {
		t.Fatalf("record failed: %v", err)
	}
	if _, _, err := server.handleRecordMetrics(ctx, req, recordMetricsInput{Date: "2024-01-03", Ground: intp(8), Merge: true}); err != nil {
		t.Fatalf("merge failed: %v", err)
	}

	r, err := server.tracker.Get("2024-01-03")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if r.WeedUrge != 4 || r.Ground != 8 || r.Notes != "first" {
		t.Errorf("merged = %+v", r)
	}
}

func TestHandleRecordMetricsOrphan(t *testing.T) {
	server := setupTestServer(t, true)

	_, out, err := server.handleRecordMetrics(context.Background(), &mcp.CallToolRequest{}, recordMetricsInput{Date: "2023-05-05"})
	if err != nil {
		t.Fatalf("handleRecordMetrics failed: %v", err)
	}
	if out.InProgram {
		t.Error("orphan date reported as in program")
	}
	if !strings.Contains(out.Message, "outside the program") {
		t.Errorf("Message = %q", out.Message)
	}
}

func TestHandleRecordMetricsInvalidDate(t *testing.T) {
	server := setupTestServer(t, true)

	_, _, err := server.handleRecordMetrics(context.Background(), &mcp.CallToolRequest{}, recordMetricsInput{Date: "Jan 5"})
	if !errors.Is(err, models.ErrInvalidDate) {
		t.Errorf("error = %v, want ErrInvalidDate", err)
	}
}

func TestHandleGetSummary(t *testing.T) {
	server := setupTestServer(t, true)
	ctx := context.Background()

	if _, _, err := server.handleRecordMetrics(ctx, &mcp.CallToolRequest{}, recordMetricsInput{Date: "2024-01-01"}); err != nil {
		t.Fatalf("record failed: %v", err)
	}

	_, out, err := server.handleGetSummary(ctx, &mcp.CallToolRequest{}, emptyInput{})
	if err != nil {
		t.Fatalf("handleGetSummary failed: %v", err)
	}
	s, ok := out.(views.Summary)
	if !ok {
		t.Fatalf("output type = %T", out)
	}
	if s.DaysPassed != 2 || s.Adherence != 50 || s.TotalDays != 7 {
		t.Errorf("summary = %+v", s)
	}
}

func TestHandleListLog(t *testing.T) {
	server := setupTestServer(t, true)
	ctx := context.Background()

	_, out, err := server.handleListLog(ctx, &mcp.CallToolRequest{}, emptyInput{})
	if err != nil {
		t.Fatalf("handleListLog failed: %v", err)
	}
	if m, ok := out.(map[string]interface{}); !ok || m["message"] == nil {
		t.Errorf("expected empty message, got %v", out)
	}

	for _, date := range []string{"2024-01-02", "2024-01-01"} {
		if _, _, err := server.handleRecordMetrics(ctx, &mcp.CallToolRequest{}, recordMetricsInput{Date: date}); err != nil {
			t.Fatalf("record failed: %v", err)
		}
	}

	_, out, err = server.handleListLog(ctx, &mcp.CallToolRequest{}, emptyInput{})
	if err != nil {
		t.Fatalf("handleListLog failed: %v", err)
	}
	m := out.(map[string]interface{})
	if m["count"] != 2 {
		t.Errorf("count = %v, want 2", m["count"])
	}
	entries := m["entries"].([]views.DayLogEntry)
	if entries[0].Date != "2024-01-01" {
		t.Errorf("first entry = %s, want 2024-01-01", entries[0].Date)
	}
}

func TestHandleExportCSV(t *testing.T) {
	server := setupTestServer(t, true)

	_, out, err := server.handleExportCSV(context.Background(), &mcp.CallToolRequest{}, emptyInput{})
	if err != nil {
		t.Fatalf("handleExportCSV failed: %v", err)
	}
	if out.Filename != views.CSVFilename {
		t.Errorf("Filename = %q", out.Filename)
	}
	if out.Rows != 7 {
		t.Errorf("Rows = %d, want 7", out.Rows)
	}
	if !strings.HasPrefix(out.CSV, "date,dayNumber,dayType") {
		t.Errorf("CSV header = %q", strings.SplitN(out.CSV, "\n", 2)[0])
	}
}

func TestHandleTodayResource(t *testing.T) {
	server := setupTestServer(t, true)

	result, err := server.handleTodayResource(context.Background(), &mcp.ReadResourceRequest{})
	if err != nil {
		t.Fatalf("handleTodayResource failed: %v", err)
	}
	if len(result.Contents) != 1 || result.Contents[0].URI != todayURI {
		t.Fatalf("unexpected contents: %+v", result.Contents)
	}

	var payload struct {
		Today string        `json:"today"`
		Day   views.DayView `json:"day"`
	}
	if err := json.Unmarshal([]byte(result.Contents[0].Text), &payload); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if payload.Today != "2024-01-02" || payload.Day.Entry.DayNumber != 2 {
		t.Errorf("payload = %+v", payload)
	}
	if len(payload.Day.Instructions) != 3 {
		t.Errorf("B-day instructions = %d steps, want 3", len(payload.Day.Instructions))
	}
}

func TestHandleSummaryResource(t *testing.T) {
	server := setupTestServer(t, true)

	result, err := server.handleSummaryResource(context.Background(), &mcp.ReadResourceRequest{})
	if err != nil {
		t.Fatalf("handleSummaryResource failed: %v", err)
	}

	var s views.Summary
	if err := json.Unmarshal([]byte(result.Contents[0].Text), &s); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if s.TotalDays != 7 || s.DaysRemaining != 5 {
		t.Errorf("summary = %+v", s)
	}
}

func TestHandleSummaryResourceUnconfigured(t *testing.T) {
	server := setupTestServer(t, false)

	if _, err := server.handleSummaryResource(context.Background(), &mcp.ReadResourceRequest{}); !errors.Is(err, app.ErrNotConfigured) {
		t.Errorf("error = %v, want ErrNotConfigured", err)
	}
}

func TestHandleScheduleResource(t *testing.T) {
	server := setupTestServer(t, true)
	if _, err := server.tracker.Record("2024-01-01", models.MetricsInput{}); err != nil {
		t.Fatalf("Record failed: %v", err)
	}

	result, err := server.handleScheduleResource(context.Background(), &mcp.ReadResourceRequest{})
	if err != nil {
		t.Fatalf("handleScheduleResource failed: %v", err)
	}

	var payload struct {
		Config   models.ProgramConfig   `json:"config"`
		Schedule []models.ScheduleEntry `json:"schedule"`
		Recorded map[string]bool        `json:"recorded"`
	}
	if err := json.Unmarshal([]byte(result.Contents[0].Text), &payload); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if payload.Config.ProgramLength != 7 || len(payload.Schedule) != 7 {
		t.Errorf("payload = %+v", payload)
	}
	if !payload.Recorded["2024-01-01"] {
		t.Error("expected 2024-01-01 marked recorded")
	}
}
