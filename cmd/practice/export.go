// ABOUTME: CLI commands for exporting and importing practice data.
// ABOUTME: Supports the CSV analysis export plus JSON and YAML backups.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harperreed/practice/internal/storage"
	"github.com/harperreed/practice/internal/views"
)

var exportOutput string

var exportCmd = &cobra.Command{
	Use:   "export <format>",
	Short: "Export practice data",
	Long: `Export practice data in various formats.

FORMATS:

  csv    One row per program day with its metrics (for spreadsheets)
  json   Full JSON export (suitable for backup/restore)
  yaml   YAML export (human-readable)

OPTIONS:

  --output, -o   Write to this file ("-" for stdout)

  CSV is written to ` + views.CSVFilename + ` by default;
  JSON and YAML go to stdout.

EXAMPLES:

  practice export csv                     # Write ` + views.CSVFilename + `
  practice export csv -o -                # Print the CSV
  practice export json -o backup.json     # Save a backup
  practice export yaml`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"csv", "json", "yaml"},
	RunE: func(cmd *cobra.Command, args []string) error {
		format := args[0]
		output := exportOutput

		var data []byte
		var err error

		switch format {
		case "csv":
			var csv string
			csv, err = tracker.CSV()
			data = []byte(csv)
			if output == "" {
				output = views.CSVFilename
			}
		case "json":
			data, err = storage.ExportJSON(repo)
		case "yaml":
			data, err = storage.ExportYAML(repo)
		default:
			return fmt.Errorf("unknown format: %s (use csv, json, or yaml)", format)
		}

		if err != nil {
			return fmt.Errorf("export failed: %w", err)
		}

		out := cmd.OutOrStdout()
		if output == "" || output == "-" {
			_, err := out.Write(data)
			return err
		}

		if err := os.WriteFile(output, data, 0600); err != nil {
			return fmt.Errorf("failed to write file: %w", err)
		}
		color.New(color.FgGreen).Fprintf(out, "✓ Exported to %s\n", output)
		return nil
	},
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import practice data from JSON",
	Long: `Import practice data from a JSON backup file.

The backup's program configuration and schedule replace the current ones
when present. Records are merged in: a record for a date that already
exists is overwritten.

EXAMPLES:

  practice import backup.json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		filename := args[0]

		data, err := os.ReadFile(filename)
		if err != nil {
			return fmt.Errorf("failed to read file: %w", err)
		}

		if err := storage.ImportJSON(repo, data); err != nil {
			return fmt.Errorf("import failed: %w", err)
		}

		color.New(color.FgGreen).Fprintf(cmd.OutOrStdout(), "✓ Imported from %s\n", filename)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "output file (\"-\" for stdout)")

	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
}
