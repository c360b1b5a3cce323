// ABOUTME: Repository interface for practice tracker storage.
// ABOUTME: Defines the contract for program config, schedule, and daily metrics records.
package storage

import (
	"github.com/harperreed/practice/internal/models"
)

// Repository defines the storage interface for tracker state.
// This interface allows swapping implementations (e.g., for testing).
type Repository interface {
	// Program state. LoadConfig returns nil when the program is not set up.
	LoadConfig() (*models.ProgramConfig, error)
	SaveConfig(cfg *models.ProgramConfig) error
	LoadSchedule() ([]models.ScheduleEntry, error)
	SaveSchedule(schedule []models.ScheduleEntry) error

	// Metrics operations. UpsertRecord replaces any record stored for the
	// same date in full.
	GetRecord(date string) (*models.MetricsRecord, error)
	UpsertRecord(r *models.MetricsRecord) error
	RecordDates() ([]string, error)
	LoadMetrics() (models.Metrics, error)

	// Export/Import
	GetAllData() (*ExportData, error)
	ImportData(data *ExportData) error

	// Lifecycle. Clear removes config, schedule and metrics together.
	Clear() error
	Close() error
}
