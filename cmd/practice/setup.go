// ABOUTME: CLI command for creating or reconfiguring the practice program.
// ABOUTME: Regenerates the schedule and keeps every recorded day.
package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harperreed/practice/internal/models"
)

const defaultProgramLength = 40

var (
	setupStart       string
	setupLength      int
	setupSessionTime string
	setupRecordTime  string
)

var setupCmd = &cobra.Command{
	Use:     "setup",
	Aliases: []string{"init", "configure"},
	Short:   "Create or reconfigure the program",
	Long: `Create the practice program, or change an existing one.

The program runs for --length consecutive days from --start. Each day's
type (A or B) follows from its weekday.

Running setup again reconfigures the program: the schedule is regenerated
from the new settings and every recorded day is kept. Flags you leave out
keep their current values.

PRESETS:

  7, 21, 40 or 90 days are common lengths (7 to 366 allowed).

EXAMPLES:

  practice setup                                  # Start today, 40 days
  practice setup --start 2024-01-01 --length 21
  practice setup --session-time 06:30 --record-time 21:30`,
	RunE: func(cmd *cobra.Command, args []string) error {
		state, err := tracker.Load()
		if err != nil {
			return err
		}

		cfg := models.NewProgramConfig(tracker.Today(), defaultProgramLength)
		reconfigure := state.Config != nil
		if reconfigure {
			existing := *state.Config
			cfg = &existing
		}

		flags := cmd.Flags()
		if flags.Changed("start") {
			cfg.StartDate = setupStart
		}
		if flags.Changed("length") {
			cfg.ProgramLength = setupLength
		}
		cfg.WithTimes(setupSessionTime, setupRecordTime)

		if reconfigure {
			state, err = tracker.Reconfigure(cfg)
		} else {
			state, err = tracker.Setup(cfg)
		}
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if reconfigure {
			color.New(color.FgGreen).Fprintln(out, "✓ Program reconfigured")
		} else {
			color.New(color.FgGreen).Fprintln(out, "✓ Program created")
		}

		first := state.Schedule[0]
		last := state.Schedule[len(state.Schedule)-1]
		aDays := 0
		for _, e := range state.Schedule {
			if e.DayType == models.DayTypeA {
				aDays++
			}
		}

		faint := color.New(color.Faint)
		fmt.Fprintf(out, "  %d days: %s to %s\n", len(state.Schedule), first.Date, last.Date)
		fmt.Fprintf(out, "  %d A-days, %d B-days\n", aDays, len(state.Schedule)-aDays)
		fmt.Fprintf(out, "  session reminder %s, record reminder %s\n", cfg.SessionTime, cfg.RecordTime)
		if reconfigure && len(state.Metrics) > 0 {
			faint.Fprintf(out, "  kept %d recorded %s\n", len(state.Metrics), plural(len(state.Metrics), "day", "days"))
		}
		return nil
	},
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}

func presetList() string {
	parts := make([]string, len(models.ProgramLengthPresets))
	for i, p := range models.ProgramLengthPresets {
		parts[i] = fmt.Sprint(p)
	}
	return strings.Join(parts, ", ")
}

func init() {
	setupCmd.Flags().StringVar(&setupStart, "start", "", "first program day (YYYY-MM-DD, default today)")
	setupCmd.Flags().IntVarP(&setupLength, "length", "n", defaultProgramLength, "program length in days (presets: "+presetList()+")")
	setupCmd.Flags().StringVar(&setupSessionTime, "session-time", "", "daily session reminder time (HH:MM, default "+models.DefaultSessionTime+")")
	setupCmd.Flags().StringVar(&setupRecordTime, "record-time", "", "daily record reminder time (HH:MM, default "+models.DefaultRecordTime+")")

	rootCmd.AddCommand(setupCmd)
}
