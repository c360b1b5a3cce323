// ABOUTME: CLI command for deleting the program and every record.
// ABOUTME: Asks for confirmation unless --yes is given.
package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var resetYes bool

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete the program and all records",
	Long: `Delete the program configuration, its schedule, and every recorded day.

CAUTION:

  This permanently deletes your data. There is no undo.
  Export a backup first: practice export json -o backup.json

EXAMPLES:

  practice reset         # Asks for confirmation
  practice reset --yes   # No prompt`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		if !resetYes {
			color.New(color.FgYellow).Fprint(out, "Delete the program and all records? Type 'yes' to confirm: ")
			answer, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
			if strings.ToLower(strings.TrimSpace(answer)) != "yes" {
				fmt.Fprintln(out, "Aborted.")
				return nil
			}
		}

		if err := tracker.Reset(); err != nil {
			return err
		}

		color.New(color.FgYellow).Fprintln(out, "✗ All practice data deleted")
		return nil
	},
}

func init() {
	resetCmd.Flags().BoolVarP(&resetYes, "yes", "y", false, "skip the confirmation prompt")
	rootCmd.AddCommand(resetCmd)
}
