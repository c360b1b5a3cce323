// ABOUTME: Root Cobra command for practice CLI.
// ABOUTME: Handles logger, storage, and tracker lifecycle via PersistentPre/PostRunE.
package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/harperreed/practice/internal/app"
	"github.com/harperreed/practice/internal/config"
	"github.com/harperreed/practice/internal/logging"
	"github.com/harperreed/practice/internal/storage"
)

var (
	verbose bool

	logger  *zap.Logger
	appCfg  *config.Config
	repo    *storage.Store
	tracker *app.Tracker

	// nowFunc is the clock every command reads today from.
	nowFunc = time.Now
)

var rootCmd = &cobra.Command{
	Use:   "practice",
	Short: "Daily A/B practice tracker",
	Long: `Practice is a CLI tool for running a fixed-length daily practice program
and tracking how it affects urges, behaviors, mood, and groundedness.

HOW IT WORKS:

  Every program day is an Invitation Day (A) or a Baseline Day (B), fixed by
  the weekday: Sunday, Monday, Wednesday and Friday are A-days; Tuesday,
  Thursday and Saturday are B-days. Each evening you record:

  Urges       porn, masturbation, cigarettes, cannabis (0-10)
  Behaviors   whether each of the above happened (yes/no)
  State       mood and groundedness (0-10)

QUICK START:

  $ practice setup --start 2024-01-01 --length 40   # Create the program
  $ practice today                                  # Today's session steps
  $ practice record --cig-urge 6 --mood 7           # Record today
  $ practice summary                                # Adherence and A/B comparison
  $ practice export csv                             # Write the CSV export

MCP INTEGRATION:

  Run 'practice mcp' to start the Model Context Protocol server for use with
  AI assistants. Add to your client config:

  {
    "mcpServers": {
      "practice": { "command": "practice", "args": ["mcp"] }
    }
  }

DATA STORAGE:

  Data lives in ~/.local/share/practice (SQLite by default). Choose the
  backend in ~/.config/practice/config.json or with PRACTICE_BACKEND
  (sqlite or badger) and PRACTICE_DATA_DIR.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip storage init for commands that don't need it
		if cmd.Name() == "help" {
			return nil
		}

		var err error
		logger, err = logging.New(verbose)
		if err != nil {
			return err
		}

		appCfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		repo, err = appCfg.OpenStorage(logger)
		if err != nil {
			return fmt.Errorf("failed to open storage: %w", err)
		}
		logger.Debug("storage opened",
			zap.String("backend", repo.Backend()),
			zap.String("data_dir", appCfg.GetDataDir()))

		tracker = app.NewTracker(repo, logger).WithClock(nowFunc)
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return closeStorage()
	},
}

// Execute runs the root command and releases storage even when the
// command fails.
func Execute() error {
	err := rootCmd.Execute()
	if cerr := closeStorage(); err == nil {
		err = cerr
	}
	return err
}

func closeStorage() error {
	if logger != nil {
		_ = logger.Sync()
	}
	if repo == nil {
		return nil
	}
	err := repo.Close()
	repo = nil
	tracker = nil
	return err
}

// onDemandTracker releases the command's store and returns a tracker that
// opens storage only for the duration of each operation. Long-running
// commands use it so Badger's lock is free between calls.
func onDemandTracker() (*app.Tracker, error) {
	if repo != nil {
		if err := repo.Close(); err != nil {
			return nil, fmt.Errorf("failed to release storage: %w", err)
		}
		repo = nil
		tracker = nil
	}
	open := func() (*storage.Store, error) { return appCfg.OpenStorage(logger) }
	return app.NewTracker(storage.NewOnDemand(open), logger).WithClock(nowFunc), nil
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}
