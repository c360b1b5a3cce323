// ABOUTME: CLI command for daily session and record reminders.
// ABOUTME: Lists the upcoming reminders or runs in the foreground delivering them.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/harperreed/practice/internal/reminders"
)

// replanInterval is how often a running reminder loop re-reads the program.
const replanInterval = time.Hour

var remindList bool

var remindCmd = &cobra.Command{
	Use:     "remind",
	Aliases: []string{"reminders"},
	Short:   "Deliver daily practice reminders",
	Long: `Deliver two reminders per program day: one at the session time and one
at the record time set during setup.

By default the command stays in the foreground and prints each reminder
when it is due. Reminders cover the next 7 program days and are planned
again every hour, so setup changes are picked up without a restart. The
data store is opened only while planning, so other practice commands keep
working while this one runs.

EXAMPLES:

  practice remind          # Run until interrupted
  practice remind --list   # Show upcoming reminders and exit`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		if remindList {
			tasks, err := tracker.Reminders()
			if err != nil {
				return err
			}
			printTasks(out, tasks)
			return nil
		}

		live, err := onDemandTracker()
		if err != nil {
			return err
		}
		tasks, err := live.Reminders()
		if err != nil {
			return err
		}

		sched, err := reminders.NewScheduler(reminders.NewConsoleNotifier(out), nowFunc().Location(), logger)
		if err != nil {
			return err
		}
		if err := sched.Replace(tasks); err != nil {
			return err
		}
		sched.Start()
		defer func() {
			if err := sched.Shutdown(); err != nil {
				logger.Warn("reminder scheduler shutdown failed", zap.Error(err))
			}
		}()

		color.New(color.FgGreen).Fprintf(out, "✓ Watching %d %s (Ctrl+C to stop)\n",
			len(tasks), plural(len(tasks), "reminder", "reminders"))

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		ticker := time.NewTicker(replanInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				fmt.Fprintln(out)
				return nil
			case <-ticker.C:
				tasks, err := live.Reminders()
				if err != nil {
					logger.Warn("failed to plan reminders", zap.Error(err))
					continue
				}
				if err := sched.Replace(tasks); err != nil {
					logger.Warn("failed to schedule reminders", zap.Error(err))
					continue
				}
				logger.Debug("reminders replanned", zap.Int("count", len(tasks)))
			}
		}
	},
}

func printTasks(out io.Writer, tasks []reminders.Task) {
	if len(tasks) == 0 {
		fmt.Fprintln(out, "No upcoming reminders.")
		return
	}

	faint := color.New(color.Faint)
	for _, t := range tasks {
		fmt.Fprintf(out, "%s  %s  %s\n",
			faint.Sprint(t.At.Format("Mon Jan 2 15:04")),
			padRight(string(t.Kind), 7),
			t.Title)
	}
}

func init() {
	remindCmd.Flags().BoolVar(&remindList, "list", false, "list upcoming reminders and exit")
	rootCmd.AddCommand(remindCmd)
}
