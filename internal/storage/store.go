// ABOUTME: Store implements Repository over a small key-value backend.
// ABOUTME: Persists config, schedule, and metrics as three named JSON documents.
package storage

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/harperreed/practice/internal/logging"
	"github.com/harperreed/practice/internal/models"
	"go.uber.org/zap"
)

// Keys of the three persisted documents.
const (
	KeyConfig   = "config"
	KeySchedule = "schedule"
	KeyMetrics  = "metrics"
)

// ErrNotFound is returned when no record exists for a date.
var ErrNotFound = errors.New("not found")

// backend is the raw key-value layer under a Store.
type backend interface {
	read(key string) ([]byte, bool, error)
	write(key string, value []byte) error
	wipe() error
	close() error
	kind() string
}

// Store provides Repository on top of a backend.
type Store struct {
	kv  backend
	log *zap.Logger
}

// Compile-time check that Store implements Repository.
var _ Repository = (*Store)(nil)

func newStore(kv backend) *Store {
	return &Store{kv: kv, log: zap.NewNop()}
}

// WithLogger sets the logger used to report recoverable problems.
func (s *Store) WithLogger(l *zap.Logger) *Store {
	s.log = logging.OrNop(l).With(zap.String("backend", s.kv.kind()))
	return s
}

// Backend returns the backend name ("sqlite" or "badger").
func (s *Store) Backend() string {
	return s.kv.kind()
}

// Close releases the backend.
func (s *Store) Close() error {
	return s.kv.close()
}

// load decodes the document at key into v. A missing or malformed document
// reports false; malformed state is logged and otherwise treated as absent.
func (s *Store) load(key string, v any) (bool, error) {
	data, ok, err := s.kv.read(key)
	if err != nil {
		return false, fmt.Errorf("read %s: %w", key, err)
	}
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		s.log.Warn("ignoring malformed persisted state",
			zap.String("key", key),
			zap.Error(err))
		return false, nil
	}
	return true, nil
}

func (s *Store) save(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", key, err)
	}
	if err := s.kv.write(key, data); err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	return nil
}

// LoadConfig returns the stored program configuration, or nil.
func (s *Store) LoadConfig() (*models.ProgramConfig, error) {
	var cfg models.ProgramConfig
	ok, err := s.load(KeyConfig, &cfg)
	if err != nil || !ok {
		return nil, err
	}
	return &cfg, nil
}

// SaveConfig stores the program configuration.
func (s *Store) SaveConfig(cfg *models.ProgramConfig) error {
	if cfg == nil {
		return fmt.Errorf("save config: nil config")
	}
	return s.save(KeyConfig, cfg)
}

// LoadSchedule returns the stored schedule, or nil.
func (s *Store) LoadSchedule() ([]models.ScheduleEntry, error) {
	var schedule []models.ScheduleEntry
	ok, err := s.load(KeySchedule, &schedule)
	if err != nil || !ok {
		return nil, err
	}
	return schedule, nil
}

// SaveSchedule replaces the stored schedule.
func (s *Store) SaveSchedule(schedule []models.ScheduleEntry) error {
	if schedule == nil {
		schedule = []models.ScheduleEntry{}
	}
	return s.save(KeySchedule, schedule)
}

// LoadMetrics returns every stored record keyed by date. Never nil.
func (s *Store) LoadMetrics() (models.Metrics, error) {
	metrics := models.Metrics{}
	ok, err := s.load(KeyMetrics, &metrics)
	if err != nil {
		return nil, err
	}
	if !ok || metrics == nil {
		return models.Metrics{}, nil
	}

	for date, r := range metrics {
		if r == nil {
			delete(metrics, date)
			continue
		}
		// The map key is authoritative.
		r.Date = date
	}
	return metrics, nil
}

// GetRecord returns the record for date.
func (s *Store) GetRecord(date string) (*models.MetricsRecord, error) {
	metrics, err := s.LoadMetrics()
	if err != nil {
		return nil, fmt.Errorf("get record: %w", err)
	}
	r, ok := metrics[date]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, date)
	}
	return r, nil
}

// UpsertRecord stores r under r.Date, replacing any previous record.
func (s *Store) UpsertRecord(r *models.MetricsRecord) error {
	if r == nil {
		return fmt.Errorf("upsert record: nil record")
	}
	if !models.IsDate(r.Date) {
		return fmt.Errorf("upsert record: %w: %q", models.ErrInvalidDate, r.Date)
	}

	metrics, err := s.LoadMetrics()
	if err != nil {
		return fmt.Errorf("upsert record: %w", err)
	}
	metrics[r.Date] = r

	if err := s.save(KeyMetrics, metrics); err != nil {
		return fmt.Errorf("upsert record: %w", err)
	}
	s.log.Debug("record saved", zap.String("date", r.Date))
	return nil
}

// RecordDates returns the dates that have a stored record, ascending.
func (s *Store) RecordDates() ([]string, error) {
	metrics, err := s.LoadMetrics()
	if err != nil {
		return nil, fmt.Errorf("record dates: %w", err)
	}
	return metrics.Dates(), nil
}

// Clear removes config, schedule and metrics.
func (s *Store) Clear() error {
	if err := s.kv.wipe(); err != nil {
		return fmt.Errorf("clear store: %w", err)
	}
	s.log.Info("store cleared")
	return nil
}
