// ABOUTME: CLI command for starting MCP server.
// ABOUTME: Runs stdio-based MCP server for AI assistant integration.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/harperreed/practice/internal/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start MCP server",
	Long: `Start the Model Context Protocol (MCP) server for AI assistant integration.

MCP lets AI assistants read your program and record metrics through a
standardized protocol. The server communicates via stdin/stdout and opens
the data store only while a request is handled, so the CLI keeps working
alongside it.

CLIENT CONFIGURATION:

  {
    "mcpServers": {
      "practice": {
        "command": "practice",
        "args": ["mcp"]
      }
    }
  }

AVAILABLE TOOLS:

  get_day          Program day with session steps and record
  record_metrics   Record (or merge into) a day's metrics
  get_summary      Adherence, averages, streak, A/B comparison
  list_log         Every recorded day with its program day
  export_csv       CSV export of the whole program

AVAILABLE RESOURCES:

  practice://today      Today's program day
  practice://summary    Progress summary
  practice://schedule   Config, schedule, and recorded dates`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		live, err := onDemandTracker()
		if err != nil {
			return err
		}
		server, err := mcp.NewServer(live, logger)
		if err != nil {
			return err
		}

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		// Handle shutdown signals
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		go func() {
			<-sigChan
			cancel()
		}()

		return server.Serve(ctx)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
