// ABOUTME: CLI command summarizing program progress.
// ABOUTME: Shows adherence, averages, streak, and the A-day vs B-day comparison.
package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harperreed/practice/internal/models"
	"github.com/harperreed/practice/internal/views"
)

var summaryJSON bool

var summaryCmd = &cobra.Command{
	Use:     "summary",
	Aliases: []string{"stats", "progress"},
	Short:   "Show program progress",
	Long: `Show how the program is going.

  Adherence   recorded program days so far, as a percentage of days passed
  Averages    mean mood and groundedness over every record
  Streak      consecutive recorded days up to today
  A vs B      mean urges and behavior days on invitation vs baseline days

EXAMPLES:

  practice summary          # Human-readable overview
  practice summary --json   # Machine-readable output`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := tracker.Summary()
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if summaryJSON {
			data, err := json.MarshalIndent(s, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to encode summary: %w", err)
			}
			fmt.Fprintln(out, string(data))
			return nil
		}

		printSummary(out, s)
		return nil
	},
}

func printSummary(out io.Writer, s views.Summary) {
	bold := color.New(color.Bold)
	faint := color.New(color.Faint)

	bold.Fprintln(out, "Progress")
	fmt.Fprintf(out, "  Day %d of %d, %d remaining\n", s.DaysPassed, s.TotalDays, s.DaysRemaining)
	fmt.Fprintf(out, "  %-13s %s\n", "Adherence", adherenceColor(s.Adherence).Sprintf("%d%%", s.Adherence))
	fmt.Fprintf(out, "  %-13s %d %s", "Recorded", s.Recorded, plural(s.Recorded, "day", "days"))
	if s.Orphans > 0 {
		faint.Fprintf(out, " (%d outside the program)", s.Orphans)
	}
	fmt.Fprintln(out)
	fmt.Fprintf(out, "  %-13s %d %s\n", "Streak", s.Streak, plural(s.Streak, "day", "days"))
	fmt.Fprintf(out, "  %-13s %s\n", "Mood", s.Averages.MoodString())
	fmt.Fprintf(out, "  %-13s %s\n", "Groundedness", s.Averages.GroundString())
	fmt.Fprintln(out)

	bold.Fprintln(out, "A-days vs B-days")
	fmt.Fprintf(out, "  %-14s %s %s\n", "",
		dayTypeColor(models.DayTypeA).Sprintf("%12s", "Invitation"),
		dayTypeColor(models.DayTypeB).Sprintf("%12s", "Baseline"))
	fmt.Fprintf(out, "  %-14s %12s %12s\n", "recorded",
		fmt.Sprintf("%d/%d", s.A.RecordedDays, s.A.ScheduledDays),
		fmt.Sprintf("%d/%d", s.B.RecordedDays, s.B.ScheduledDays))

	for i, name := range substanceLabels {
		fmt.Fprintf(out, "  %-14s %12s %12s\n", name+" urge",
			meanUrge(s.A, i), meanUrge(s.B, i))
	}
	for i, name := range substanceLabels {
		fmt.Fprintf(out, "  %-14s %12d %12d\n", name+" days",
			s.A.BehaviorDays[i], s.B.BehaviorDays[i])
	}
}

func meanUrge(t views.TypeStats, i int) string {
	if t.RecordedDays == 0 {
		return views.NoData
	}
	return fmt.Sprintf("%.1f", t.MeanUrges[i])
}

func adherenceColor(pct int) *color.Color {
	switch {
	case pct >= 80:
		return color.New(color.FgGreen, color.Bold)
	case pct >= 50:
		return color.New(color.FgYellow, color.Bold)
	default:
		return color.New(color.FgRed, color.Bold)
	}
}

func init() {
	summaryCmd.Flags().BoolVar(&summaryJSON, "json", false, "print the summary as JSON")
	rootCmd.AddCommand(summaryCmd)
}
