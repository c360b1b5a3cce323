// ABOUTME: Data migration between practice storage backends.
// ABOUTME: Copies config, schedule, and metrics records from source to destination.

package storage

import (
	"fmt"
	"os"
)

// MigrateSummary holds counts of migrated entities.
type MigrateSummary struct {
	Config       bool
	ScheduleDays int
	Records      int
}

// MigrateData copies all data from src to dst storage.
// Records already present in dst for the same date are overwritten.
func MigrateData(src, dst Repository) (*MigrateSummary, error) {
	summary := &MigrateSummary{}

	cfg, err := src.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("load source config: %w", err)
	}
	if cfg != nil {
		if err := dst.SaveConfig(cfg); err != nil {
			return nil, fmt.Errorf("save config: %w", err)
		}
		summary.Config = true
	}

	schedule, err := src.LoadSchedule()
	if err != nil {
		return nil, fmt.Errorf("load source schedule: %w", err)
	}
	if len(schedule) > 0 {
		if err := dst.SaveSchedule(schedule); err != nil {
			return nil, fmt.Errorf("save schedule: %w", err)
		}
		summary.ScheduleDays = len(schedule)
	}

	metrics, err := src.LoadMetrics()
	if err != nil {
		return nil, fmt.Errorf("load source metrics: %w", err)
	}
	for _, date := range metrics.Dates() {
		if err := dst.UpsertRecord(metrics[date]); err != nil {
			return nil, fmt.Errorf("upsert record %s: %w", date, err)
		}
		summary.Records++
	}

	return summary, nil
}

// IsDirNonEmpty checks whether a directory exists and contains any files or subdirectories.
// Returns false if the directory does not exist or is empty.
func IsDirNonEmpty(path string) (bool, error) {
	entries, err := os.ReadDir(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("read directory %q: %w", path, err)
	}
	return len(entries) > 0, nil
}
