// ABOUTME: CLI command listing the whole program schedule.
// ABOUTME: Marks today and every day that already has a record.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harperreed/practice/internal/app"
	"github.com/harperreed/practice/internal/models"
)

var scheduleCmd = &cobra.Command{
	Use:     "schedule",
	Aliases: []string{"sched", "ls"},
	Short:   "List every program day",
	Long: `List every program day with its date and type.

Recorded days are marked with ✓ and today with ▶.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		state, err := tracker.Load()
		if err != nil {
			return err
		}
		if !state.Configured() {
			return app.ErrNotConfigured
		}

		out := cmd.OutOrStdout()
		today := tracker.Today()
		faint := color.New(color.Faint)

		for _, e := range state.Schedule {
			marker := " "
			if e.Date == today {
				marker = color.New(color.Bold).Sprint("▶")
			}
			status := faint.Sprint("·")
			if _, ok := state.Metrics[e.Date]; ok {
				status = color.New(color.FgGreen).Sprint("✓")
			}

			weekday := ""
			if t, err := models.ParseDate(e.Date); err == nil {
				weekday = t.Format("Mon")
			}

			fmt.Fprintf(out, "%s %s Day %3d  %s %s  %s\n",
				marker, status, e.DayNumber, e.Date, weekday,
				dayTypeColor(e.DayType).Sprint(e.DayType.Label()))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(scheduleCmd)
}
