// ABOUTME: CLI commands for recording and showing a day's metrics.
// ABOUTME: Flags left out keep their stored values unless --replace is given.
package main

import (
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harperreed/practice/internal/models"
	"github.com/harperreed/practice/internal/storage"
)

var (
	recordDate    string
	recordNotes   string
	recordReplace bool

	recordPornUrge int
	recordMastUrge int
	recordCigUrge  int
	recordWeedUrge int
	recordMood     int
	recordGround   int

	recordPorn bool
	recordMast bool
	recordCig  bool
	recordWeed bool

	showDate string
)

var recordCmd = &cobra.Command{
	Use:     "record",
	Aliases: []string{"r"},
	Short:   "Record a day's metrics",
	Long: `Record urges, behaviors, mood and groundedness for a day.

Levels run from 0 to 10; values outside the range are clamped. Behavior
flags mark that the behavior happened (use --cig=false to clear one).

Recording a day that already has a record updates only the values you
pass. Use --replace to overwrite the whole record, with defaults for
everything left out (urges 0, behaviors no, mood and groundedness 5).

Dates outside the program are accepted and kept as extra records.

EXAMPLES:

  practice record --cig-urge 6 --weed-urge 2 --mood 7 --ground 6
  practice record --date 2024-01-05 --cig --notes "rough evening"
  practice record --mood 8 --replace`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		date := recordDate
		if date == "" {
			date = tracker.Today()
		}

		in := recordInput(cmd)

		var (
			r   *models.MetricsRecord
			err error
		)
		if recordReplace {
			r, err = tracker.Record(date, in)
		} else {
			r, err = tracker.Update(date, in, !cmd.Flags().Changed("notes"))
		}
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		color.New(color.FgGreen).Fprintf(out, "✓ Recorded %s\n", r.Date)
		if state, err := tracker.Load(); err == nil {
			if i := models.FindEntry(state.Schedule, r.Date); i >= 0 {
				e := state.Schedule[i]
				color.New(color.Faint).Fprintf(out, "  Day %d, %s\n", e.DayNumber, e.DayType.Label())
			} else if state.Configured() {
				color.New(color.FgYellow).Fprintln(out, "  (date is outside the program)")
			}
		}
		printRecord(out, r)
		return nil
	},
}

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show a day's record",
	Long: `Show the stored record for a day (default today).

EXAMPLES:

  practice show
  practice show --date 2024-01-05`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		date := showDate
		if date == "" {
			date = tracker.Today()
		}
		if !models.IsDate(date) {
			return fmt.Errorf("%w: %q (use YYYY-MM-DD)", models.ErrInvalidDate, date)
		}

		r, err := tracker.Get(date)
		if errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("no record for %s", date)
		}
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		color.New(color.Bold).Fprintln(out, r.Date)
		printRecord(out, r)
		return nil
	},
}

// recordInput turns the flags the user actually passed into input.
func recordInput(cmd *cobra.Command) models.MetricsInput {
	flags := cmd.Flags()
	intFlag := func(name string, v int) *int {
		if !flags.Changed(name) {
			return nil
		}
		return &v
	}
	boolFlag := func(name string, v bool) *bool {
		if !flags.Changed(name) {
			return nil
		}
		return &v
	}

	return models.MetricsInput{
		PornUrge: intFlag("porn-urge", recordPornUrge),
		MastUrge: intFlag("mast-urge", recordMastUrge),
		CigUrge:  intFlag("cig-urge", recordCigUrge),
		WeedUrge: intFlag("weed-urge", recordWeedUrge),
		PornUsed: boolFlag("porn", recordPorn),
		MastUsed: boolFlag("mast", recordMast),
		CigUsed:  boolFlag("cig", recordCig),
		WeedUsed: boolFlag("weed", recordWeed),
		Mood:     intFlag("mood", recordMood),
		Ground:   intFlag("ground", recordGround),
		Notes:    recordNotes,
	}
}

func init() {
	f := recordCmd.Flags()
	f.StringVar(&recordDate, "date", "", "day to record (YYYY-MM-DD, default today)")
	f.StringVar(&recordNotes, "notes", "", "free-form notes for the day")
	f.BoolVar(&recordReplace, "replace", false, "overwrite the whole record instead of updating it")

	f.IntVar(&recordPornUrge, "porn-urge", 0, "porn urge level (0-10)")
	f.IntVar(&recordMastUrge, "mast-urge", 0, "masturbation urge level (0-10)")
	f.IntVar(&recordCigUrge, "cig-urge", 0, "cigarette urge level (0-10)")
	f.IntVar(&recordWeedUrge, "weed-urge", 0, "cannabis urge level (0-10)")
	f.IntVar(&recordMood, "mood", models.DefaultMood, "mood (0-10)")
	f.IntVar(&recordGround, "ground", models.DefaultGround, "groundedness (0-10)")

	f.BoolVar(&recordPorn, "porn", false, "watched porn today")
	f.BoolVar(&recordMast, "mast", false, "masturbated today")
	f.BoolVar(&recordCig, "cig", false, "smoked cigarettes today")
	f.BoolVar(&recordWeed, "weed", false, "used cannabis today")

	showCmd.Flags().StringVar(&showDate, "date", "", "day to show (YYYY-MM-DD, default today)")

	rootCmd.AddCommand(recordCmd)
	rootCmd.AddCommand(showCmd)
}
