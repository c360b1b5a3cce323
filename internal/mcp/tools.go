// ABOUTME: MCP tool implementations for the practice tracker.
// ABOUTME: Provides day lookup, metric recording, summary, log, and CSV export.
package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"

	"github.com/harperreed/practice/internal/models"
	"github.com/harperreed/practice/internal/views"
)

func (s *Server) registerTools() {
	// get_day
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_day",
		Description: "Get a program day with its A/B type, session instructions, and any recorded metrics",
	}, s.handleGetDay)

	// record_metrics
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "record_metrics",
		Description: "Record urges (0-10), behaviors, mood, groundedness, and notes for a date",
	}, s.handleRecordMetrics)

	// get_summary
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_summary",
		Description: "Get program progress: adherence, averages, streak, and A-day vs B-day comparison",
	}, s.handleGetSummary)

	// list_log
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_log",
		Description: "List every recorded day with its program day type",
	}, s.handleListLog)

	// export_csv
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "export_csv",
		Description: "Export the whole program as CSV, one row per scheduled day",
	}, s.handleExportCSV)
}

// Tool input/output types

type getDayInput struct {
	Date string `json:"date,omitempty" jsonschema:"Date (YYYY-MM-DD), defaults to today"`
	Day  int    `json:"day,omitempty" jsonschema:"Program day number (1-based), used when date is empty"`
}

type recordMetricsInput struct {
	Date     string `json:"date,omitempty" jsonschema:"Date (YYYY-MM-DD), defaults to today"`
	PornUrge *int   `json:"porn_urge,omitempty" jsonschema:"Porn urge 0-10"`
	MastUrge *int   `json:"mast_urge,omitempty" jsonschema:"Masturbation urge 0-10"`
	CigUrge  *int   `json:"cig_urge,omitempty" jsonschema:"Cigarette urge 0-10"`
	WeedUrge *int   `json:"weed_urge,omitempty" jsonschema:"Cannabis urge 0-10"`
	PornUsed *bool  `json:"porn_used,omitempty" jsonschema:"Watched porn today"`
	MastUsed *bool  `json:"mast_used,omitempty" jsonschema:"Masturbated today"`
	CigUsed  *bool  `json:"cig_used,omitempty" jsonschema:"Smoked cigarettes today"`
	WeedUsed *bool  `json:"weed_used,omitempty" jsonschema:"Used cannabis today"`
	Mood     *int   `json:"mood,omitempty" jsonschema:"Mood 0-10, defaults to 5"`
	Ground   *int   `json:"ground,omitempty" jsonschema:"Groundedness 0-10, defaults to 5"`
	Notes    string `json:"notes,omitempty" jsonschema:"Free-form notes"`
	Merge    bool   `json:"merge,omitempty" jsonschema:"Keep stored values for fields not given instead of replacing the whole record"`
}

type recordOutput struct {
	Date      string `json:"date"`
	DayNumber int    `json:"day_number"`
	DayType   string `json:"day_type"`
	InProgram bool   `json:"in_program"`
	Message   string `json:"message"`
}

type emptyInput struct{}

type csvOutput struct {
	Filename string `json:"filename"`
	Rows     int    `json:"rows"`
	CSV      string `json:"csv"`
}

// Tool handlers

func (s *Server) handleGetDay(ctx context.Context, req *mcp.CallToolRequest, input getDayInput) (*mcp.CallToolResult, any, error) {
	state, err := s.tracker.Load()
	if err != nil {
		return nil, nil, err
	}

	var v views.DayView
	switch {
	case input.Date != "":
		v, err = s.tracker.DayOn(state, input.Date)
	case input.Day > 0:
		v, err = s.tracker.Day(state, input.Day-1)
	default:
		v, err = s.tracker.Day(state, s.tracker.TodayIndex(state))
	}
	if err != nil {
		return nil, nil, err
	}

	return nil, v, nil
}

func (s *Server) handleRecordMetrics(ctx context.Context, req *mcp.CallToolRequest, input recordMetricsInput) (*mcp.CallToolResult, recordOutput, error) {
	date := input.Date
	if date == "" {
		date = s.tracker.Today()
	}

	in := models.MetricsInput{
		PornUrge: input.PornUrge,
		MastUrge: input.MastUrge,
		CigUrge:  input.CigUrge,
		WeedUrge: input.WeedUrge,
		PornUsed: input.PornUsed,
		MastUsed: input.MastUsed,
		CigUsed:  input.CigUsed,
		WeedUsed: input.WeedUsed,
		Mood:     input.Mood,
		Ground:   input.Ground,
		Notes:    input.Notes,
	}

	var (
		r   *models.MetricsRecord
		err error
	)
	if input.Merge {
		r, err = s.tracker.Update(date, in, true)
	} else {
		r, err = s.tracker.Record(date, in)
	}
	if err != nil {
		return nil, recordOutput{}, fmt.Errorf("failed to record metrics: %w", err)
	}

	out := recordOutput{Date: r.Date}
	state, err := s.tracker.Load()
	if err != nil {
		return nil, recordOutput{}, err
	}
	if i := models.FindEntry(state.Schedule, r.Date); i >= 0 {
		out.InProgram = true
		out.DayNumber = state.Schedule[i].DayNumber
		out.DayType = string(state.Schedule[i].DayType)
		out.Message = fmt.Sprintf("Recorded day %d (%s) on %s: mood %d, ground %d", out.DayNumber, out.DayType, r.Date, r.Mood, r.Ground)
	} else {
		out.Message = fmt.Sprintf("Recorded %s (outside the program): mood %d, ground %d", r.Date, r.Mood, r.Ground)
	}

	s.log.Debug("metrics recorded", zap.String("date", r.Date))
	return nil, out, nil
}

func (s *Server) handleGetSummary(ctx context.Context, req *mcp.CallToolRequest, input emptyInput) (*mcp.CallToolResult, any, error) {
	summary, err := s.tracker.Summary()
	if err != nil {
		return nil, nil, err
	}
	return nil, summary, nil
}

func (s *Server) handleListLog(ctx context.Context, req *mcp.CallToolRequest, input emptyInput) (*mcp.CallToolResult, any, error) {
	log, err := s.tracker.Log()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list log: %w", err)
	}

	if len(log) == 0 {
		return nil, map[string]interface{}{"message": "No records yet."}, nil
	}

	return nil, map[string]interface{}{"entries": log, "count": len(log)}, nil
}

func (s *Server) handleExportCSV(ctx context.Context, req *mcp.CallToolRequest, input emptyInput) (*mcp.CallToolResult, csvOutput, error) {
	csv, err := s.tracker.CSV()
	if err != nil {
		return nil, csvOutput{}, err
	}

	return nil, csvOutput{
		Filename: views.CSVFilename,
		Rows:     strings.Count(csv, "\n"),
		CSV:      csv,
	}, nil
}
