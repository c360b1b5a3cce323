// ABOUTME: CLI command for moving practice data between storage backends.
// ABOUTME: Copies everything into the target backend and switches the config to it.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harperreed/practice/internal/config"
	"github.com/harperreed/practice/internal/storage"
)

var (
	migrateTo     string
	migrateDryRun bool
	migrateForce  bool
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Move data to another storage backend",
	Long: `Copy all practice data from the current storage backend to another one,
then switch the config file to the new backend.

BACKENDS:

  sqlite   Single database file (default): <data dir>/practice.db
  badger   Key-value store directory: <data dir>/kv

IMPORTANT:

  - The target must be empty unless --force is given
  - With --force, target records for the same date are overwritten
  - The source data is left untouched
  - Run with --dry-run first to see what would be migrated

USAGE:

  practice migrate --to badger --dry-run   # Preview the migration
  practice migrate --to badger             # Perform the migration`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		target := config.Config{Backend: migrateTo, DataDir: appCfg.DataDir}
		targetPath, err := target.StoragePath()
		if err != nil {
			return err
		}
		if target.GetBackend() == appCfg.GetBackend() {
			return fmt.Errorf("already using the %s backend", appCfg.GetBackend())
		}

		occupied, err := targetInUse(target.GetBackend(), targetPath)
		if err != nil {
			return err
		}
		if occupied && !migrateForce {
			return fmt.Errorf("target %s already has data (use --force to merge into it)", targetPath)
		}

		if migrateDryRun {
			color.New(color.FgYellow).Fprintln(out, "Dry run mode - no changes will be made")
			fmt.Fprintln(out)

			state, err := tracker.Load()
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "Would copy from %s to %s:\n", repo.Backend(), targetPath)
			fmt.Fprintf(out, "  config:   %s\n", yesNoBool(state.Config != nil))
			fmt.Fprintf(out, "  schedule: %d days\n", len(state.Schedule))
			fmt.Fprintf(out, "  records:  %d\n", len(state.Metrics))
			return nil
		}

		dst, err := target.OpenStorage(logger)
		if err != nil {
			return fmt.Errorf("failed to open target storage: %w", err)
		}

		summary, err := storage.MigrateData(repo, dst)
		if cerr := dst.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("failed to close target storage: %w", cerr)
		}
		if err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}

		appCfg.Backend = target.GetBackend()
		if err := appCfg.Save(); err != nil {
			return fmt.Errorf("data migrated but failed to save config: %w", err)
		}

		color.New(color.FgGreen).Fprintf(out, "✓ Migrated to %s\n", target.GetBackend())
		fmt.Fprintf(out, "  config:   %s\n", yesNoBool(summary.Config))
		fmt.Fprintf(out, "  schedule: %d days\n", summary.ScheduleDays)
		fmt.Fprintf(out, "  records:  %d\n", summary.Records)
		color.New(color.Faint).Fprintf(out, "  now stored at %s\n", targetPath)
		return nil
	},
}

// targetInUse reports whether a backend's storage path already holds data.
func targetInUse(backend, path string) (bool, error) {
	if backend == config.BackendBadger {
		return storage.IsDirNonEmpty(path)
	}
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return info.Size() > 0, nil
}

func yesNoBool(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func init() {
	migrateCmd.Flags().StringVar(&migrateTo, "to", "", "target backend (sqlite or badger)")
	migrateCmd.Flags().BoolVar(&migrateDryRun, "dry-run", false, "preview migration without making changes")
	migrateCmd.Flags().BoolVar(&migrateForce, "force", false, "migrate into a target that already has data")
	_ = migrateCmd.MarkFlagRequired("to")

	rootCmd.AddCommand(migrateCmd)
}
