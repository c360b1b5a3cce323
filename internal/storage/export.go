// ABOUTME: Export and import functionality for practice data.
// ABOUTME: Supports JSON backups and YAML export of config, schedule, and records.
package storage

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/harperreed/practice/internal/models"
	"gopkg.in/yaml.v3"
)

// ExportData represents the full export format for practice data.
type ExportData struct {
	Version    string                  `json:"version" yaml:"version"`
	ExportedAt time.Time               `json:"exported_at" yaml:"exported_at"`
	Tool       string                  `json:"tool" yaml:"tool"`
	Config     *models.ProgramConfig   `json:"config,omitempty" yaml:"config,omitempty"`
	Schedule   []models.ScheduleEntry  `json:"schedule" yaml:"schedule"`
	Metrics    []*models.MetricsRecord `json:"metrics" yaml:"metrics"`
}

// GetAllData retrieves all data for export. Records are sorted by date.
func (s *Store) GetAllData() (*ExportData, error) {
	cfg, err := s.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	schedule, err := s.LoadSchedule()
	if err != nil {
		return nil, fmt.Errorf("load schedule: %w", err)
	}
	if schedule == nil {
		schedule = []models.ScheduleEntry{}
	}

	metrics, err := s.LoadMetrics()
	if err != nil {
		return nil, fmt.Errorf("load metrics: %w", err)
	}

	records := make([]*models.MetricsRecord, 0, len(metrics))
	for _, date := range metrics.Dates() {
		records = append(records, metrics[date])
	}

	return &ExportData{
		Version:    "1.0",
		ExportedAt: time.Now(),
		Tool:       "practice",
		Config:     cfg,
		Schedule:   schedule,
		Metrics:    records,
	}, nil
}

// ImportData imports data from an export file. Config and schedule are
// replaced only when present; every record is upserted. The whole payload is
// checked before anything is written. An imported config always gets the
// schedule it generates, and a schedule that disagrees with it is rejected.
func (s *Store) ImportData(data *ExportData) error {
	schedule, err := importSchedule(data)
	if err != nil {
		return err
	}
	for _, r := range data.Metrics {
		if r == nil || !models.IsDate(r.Date) {
			return fmt.Errorf("import record: %w", models.ErrInvalidDate)
		}
	}

	if data.Config != nil {
		if err := s.SaveSchedule(schedule); err != nil {
			return fmt.Errorf("import schedule: %w", err)
		}
		if err := s.SaveConfig(data.Config); err != nil {
			return fmt.Errorf("import config: %w", err)
		}
	}

	for _, r := range data.Metrics {
		if err := s.UpsertRecord(r); err != nil {
			return fmt.Errorf("import record: %w", err)
		}
	}

	return nil
}

// importSchedule validates the imported config and returns the schedule to
// store with it.
func importSchedule(data *ExportData) ([]models.ScheduleEntry, error) {
	if data.Config == nil {
		if len(data.Schedule) > 0 {
			return nil, fmt.Errorf("import schedule: %w: schedule without a program config", models.ErrInvalidConfig)
		}
		return nil, nil
	}

	if err := data.Config.Validate(); err != nil {
		return nil, fmt.Errorf("import config: %w", err)
	}
	schedule, err := data.Config.Schedule()
	if err != nil {
		return nil, fmt.Errorf("import config: %w", err)
	}
	if len(data.Schedule) == 0 {
		return schedule, nil
	}

	if len(data.Schedule) != len(schedule) {
		return nil, fmt.Errorf("import schedule: %w: %d days for a %d-day program",
			models.ErrInvalidConfig, len(data.Schedule), len(schedule))
	}
	for i, e := range data.Schedule {
		if e != schedule[i] {
			return nil, fmt.Errorf("import schedule: %w: day %d is %s %s, want %s %s",
				models.ErrInvalidConfig, i+1, e.Date, e.DayType, schedule[i].Date, schedule[i].DayType)
		}
	}
	return schedule, nil
}

// ExportJSON exports all data as JSON.
func ExportJSON(r Repository) ([]byte, error) {
	data, err := r.GetAllData()
	if err != nil {
		return nil, err
	}
	return json.MarshalIndent(data, "", "  ")
}

// ExportYAML exports all data as YAML.
func ExportYAML(r Repository) ([]byte, error) {
	data, err := r.GetAllData()
	if err != nil {
		return nil, err
	}
	return yaml.Marshal(data)
}

// ImportJSON imports data from JSON bytes.
func ImportJSON(r Repository, data []byte) error {
	var exportData ExportData
	if err := json.Unmarshal(data, &exportData); err != nil {
		return fmt.Errorf("unmarshal JSON: %w", err)
	}
	return r.ImportData(&exportData)
}
