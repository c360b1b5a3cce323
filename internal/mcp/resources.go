// ABOUTME: MCP resource implementations for the practice tracker.
// ABOUTME: Provides practice://today, practice://summary, and practice://schedule resources.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	todayURI    = "practice://today"
	summaryURI  = "practice://summary"
	scheduleURI = "practice://schedule"
)

func (s *Server) registerResources() {
	// practice://today - Today's program day and instructions
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         todayURI,
		Name:        "Today's Practice",
		Description: "Today's program day, A/B type, session instructions, and record if any",
		MIMEType:    "application/json",
	}, s.handleTodayResource)

	// practice://summary - Progress overview
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         summaryURI,
		Name:        "Practice Summary",
		Description: "Adherence, averages, streak, and A-day vs B-day comparison",
		MIMEType:    "application/json",
	}, s.handleSummaryResource)

	// practice://schedule - Full program schedule
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         scheduleURI,
		Name:        "Practice Schedule",
		Description: "Program configuration and every scheduled day",
		MIMEType:    "application/json",
	}, s.handleScheduleResource)
}

// Resource handlers

func (s *Server) handleTodayResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	v, err := s.tracker.TodayView()
	if err != nil {
		return nil, err
	}

	return jsonResource(todayURI, map[string]interface{}{
		"today": s.tracker.Today(),
		"day":   v,
	})
}

func (s *Server) handleSummaryResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	summary, err := s.tracker.Summary()
	if err != nil {
		return nil, err
	}
	return jsonResource(summaryURI, summary)
}

func (s *Server) handleScheduleResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	state, err := s.tracker.Load()
	if err != nil {
		return nil, err
	}

	recorded := make(map[string]bool, len(state.Metrics))
	for date := range state.Metrics {
		recorded[date] = true
	}

	return jsonResource(scheduleURI, map[string]interface{}{
		"config":   state.Config,
		"schedule": state.Schedule,
		"recorded": recorded,
	})
}

func jsonResource(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
