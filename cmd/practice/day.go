// ABOUTME: CLI commands for viewing a program day and its session instructions.
// ABOUTME: Provides today and day, with clamped navigation by number or date.
package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harperreed/practice/internal/models"
	"github.com/harperreed/practice/internal/views"
)

var (
	dayDate   string
	dayNumber int
)

// substanceLabels names the urge and behavior columns for display.
var substanceLabels = [4]string{"porn", "masturbation", "cigarettes", "cannabis"}

var todayCmd = &cobra.Command{
	Use:     "today",
	Aliases: []string{"t"},
	Short:   "Show today's session",
	Long: `Show today's program day: its type, the guided session steps, and
whether today's metrics are recorded.

When today falls outside the program, day 1 is shown.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		v, err := tracker.TodayView()
		if err != nil {
			return err
		}
		printDayView(cmd.OutOrStdout(), v)
		return nil
	},
}

var dayCmd = &cobra.Command{
	Use:   "day [number]",
	Short: "Show a program day",
	Long: `Show a program day by its 1-based number or by --date.

Numbers and dates outside the program are clamped to the first or last day.

EXAMPLES:

  practice day 3                  # Day 3 of the program
  practice day --day 3            # Same
  practice day --date 2024-01-05  # The program day on a date`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		state, err := tracker.Load()
		if err != nil {
			return err
		}

		var v views.DayView
		switch {
		case dayDate != "":
			v, err = tracker.DayOn(state, dayDate)
		case cmd.Flags().Changed("day"):
			v, err = tracker.Day(state, dayNumber-1)
		case len(args) == 1:
			n, convErr := strconv.Atoi(args[0])
			if convErr != nil {
				return fmt.Errorf("invalid day number: %s", args[0])
			}
			v, err = tracker.Day(state, n-1)
		default:
			v, err = tracker.Day(state, tracker.TodayIndex(state))
		}
		if err != nil {
			return err
		}

		printDayView(cmd.OutOrStdout(), v)
		return nil
	},
}

// dayTypeColor returns the display color for a day type.
func dayTypeColor(d models.DayType) *color.Color {
	if d == models.DayTypeA {
		return color.New(color.FgMagenta, color.Bold)
	}
	return color.New(color.FgCyan, color.Bold)
}

func printDayView(out io.Writer, v views.DayView) {
	faint := color.New(color.Faint)
	bold := color.New(color.Bold)

	date := v.Entry.Date
	if t, err := models.ParseDate(v.Entry.Date); err == nil {
		date = t.Format("Monday, January 2 2006")
	}

	bold.Fprintf(out, "Day %d of %d", v.Entry.DayNumber, v.Total)
	faint.Fprintf(out, "  %s\n", date)
	dayTypeColor(v.Entry.DayType).Fprintln(out, v.Label)
	fmt.Fprintln(out)

	for i, step := range v.Instructions {
		bold.Fprintf(out, "Step %d: %s\n", i+1, step.Title)
		fmt.Fprintf(out, "  %s\n\n", step.Body)
	}

	if v.Recorded() {
		color.New(color.FgGreen).Fprintf(out, "✓ Recorded %s\n", humanize.Time(v.Record.Timestamp))
		printRecord(out, v.Record)
	} else {
		color.New(color.FgYellow).Fprintln(out, "○ Not recorded yet")
		faint.Fprintf(out, "  practice record --date %s\n", v.Entry.Date)
	}

	var nav string
	if v.HasPrev {
		nav += fmt.Sprintf("← day %d", v.Entry.DayNumber-1)
	}
	if v.HasNext {
		if nav != "" {
			nav += "   "
		}
		nav += fmt.Sprintf("day %d →", v.Entry.DayNumber+1)
	}
	if nav != "" {
		fmt.Fprintln(out)
		faint.Fprintln(out, nav)
	}
}

func printRecord(out io.Writer, r *models.MetricsRecord) {
	faint := color.New(color.Faint)
	urges := r.Urges()
	used := r.Behaviors()

	for i, name := range substanceLabels {
		fmt.Fprintf(out, "  %-14s urge %2d  used %s\n", name, urges[i], yesNo(used[i]))
	}
	fmt.Fprintf(out, "  %-14s %2d\n", "mood", r.Mood)
	fmt.Fprintf(out, "  %-14s %2d\n", "groundedness", r.Ground)
	if r.Notes != "" {
		faint.Fprintf(out, "  notes: %s\n", r.Notes)
	}
}

func yesNo(f models.Flag) string {
	if f {
		return color.New(color.FgRed).Sprint(f.YesNo())
	}
	return f.YesNo()
}

func init() {
	dayCmd.Flags().StringVar(&dayDate, "date", "", "show the program day on this date (YYYY-MM-DD)")
	dayCmd.Flags().IntVarP(&dayNumber, "day", "d", 1, "show this program day number")

	rootCmd.AddCommand(todayCmd)
	rootCmd.AddCommand(dayCmd)
}
