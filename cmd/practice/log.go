// ABOUTME: CLI command listing recorded days for data review.
// ABOUTME: Shows newest records first, including records outside the program.
package main

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var logLimit int

var logCmd = &cobra.Command{
	Use:     "log",
	Aliases: []string{"l", "history"},
	Short:   "List recorded days",
	Long: `List recorded days, newest first.

OUTPUT FORMAT:

  Each line shows: DATE  DAY  TYPE  URGES  USED  MOOD/GROUND  (NOTES)

  URGES lists porn/masturbation/cigarettes/cannabis levels and USED marks
  which of them happened. Records on dates outside the program show "--".

EXAMPLES:

  practice log           # Last 20 recorded days
  practice log -n 0      # Every recorded day`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		entries, err := tracker.Log()
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if len(entries) == 0 {
			fmt.Fprintln(out, "No records yet.")
			return nil
		}

		faint := color.New(color.Faint)
		shown := 0
		for i := len(entries) - 1; i >= 0; i-- {
			if logLimit > 0 && shown == logLimit {
				break
			}
			e := entries[i]
			r := e.Record

			day := faint.Sprint(" --")
			kind := faint.Sprint("--")
			if e.InProgram {
				day = fmt.Sprintf("%3d", e.DayNumber)
				kind = dayTypeColor(e.DayType).Sprint(string(e.DayType) + " ")
			}

			urges := r.Urges()
			levels := make([]string, len(urges))
			for j, u := range urges {
				levels[j] = fmt.Sprintf("%d", u)
			}
			used := ""
			for _, b := range r.Behaviors() {
				if b {
					used += "●"
				} else {
					used += "·"
				}
			}

			notes := ""
			if r.Notes != "" {
				notes = faint.Sprintf(" (%s)", truncate(r.Notes, 30))
			}

			fmt.Fprintf(out, "%s %s %s %s %s %2d/%-2d %s%s\n",
				e.Date, day, kind,
				padRight(strings.Join(levels, "/"), 11),
				used,
				r.Mood, r.Ground,
				faint.Sprint(humanize.Time(r.Timestamp)),
				notes)
			shown++
		}

		if hidden := len(entries) - shown; hidden > 0 {
			faint.Fprintf(out, "… %d older %s (use -n 0 to show all)\n", hidden, plural(hidden, "record", "records"))
		}
		return nil
	},
}

// truncate shortens s to at most maxLen runes.
func truncate(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	return string(runes[:maxLen-3]) + "..."
}

func padRight(s string, length int) string {
	if len(s) >= length {
		return s
	}
	return s + strings.Repeat(" ", length-len(s))
}

func init() {
	logCmd.Flags().IntVarP(&logLimit, "limit", "n", 20, "max number of records (0 for all)")
	rootCmd.AddCommand(logCmd)
}
