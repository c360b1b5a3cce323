// ABOUTME: OnDemand opens the store for each operation and closes it after.
// ABOUTME: Long-running commands use it so other processes can reach the data between calls.
package storage

import (
	"github.com/harperreed/practice/internal/models"
)

// OnDemand implements Repository by opening a Store for every call.
// Badger's directory lock is only held while a call runs.
type OnDemand struct {
	open func() (*Store, error)
}

// Compile-time check that OnDemand implements Repository.
var _ Repository = (*OnDemand)(nil)

// NewOnDemand returns a Repository that calls open for every operation.
func NewOnDemand(open func() (*Store, error)) *OnDemand {
	return &OnDemand{open: open}
}

// with opens the store, runs fn, and closes the store again.
func with[T any](o *OnDemand, fn func(*Store) (T, error)) (result T, err error) {
	s, err := o.open()
	if err != nil {
		return result, err
	}
	defer func() {
		if cerr := s.Close(); err == nil {
			err = cerr
		}
	}()
	return fn(s)
}

func (o *OnDemand) do(fn func(*Store) error) error {
	_, err := with(o, func(s *Store) (struct{}, error) {
		return struct{}{}, fn(s)
	})
	return err
}

func (o *OnDemand) LoadConfig() (*models.ProgramConfig, error) {
	return with(o, (*Store).LoadConfig)
}

func (o *OnDemand) SaveConfig(cfg *models.ProgramConfig) error {
	return o.do(func(s *Store) error { return s.SaveConfig(cfg) })
}

func (o *OnDemand) LoadSchedule() ([]models.ScheduleEntry, error) {
	return with(o, (*Store).LoadSchedule)
}

func (o *OnDemand) SaveSchedule(schedule []models.ScheduleEntry) error {
	return o.do(func(s *Store) error { return s.SaveSchedule(schedule) })
}

func (o *OnDemand) GetRecord(date string) (*models.MetricsRecord, error) {
	return with(o, func(s *Store) (*models.MetricsRecord, error) { return s.GetRecord(date) })
}

func (o *OnDemand) UpsertRecord(r *models.MetricsRecord) error {
	return o.do(func(s *Store) error { return s.UpsertRecord(r) })
}

func (o *OnDemand) RecordDates() ([]string, error) {
	return with(o, (*Store).RecordDates)
}

func (o *OnDemand) LoadMetrics() (models.Metrics, error) {
	return with(o, (*Store).LoadMetrics)
}

func (o *OnDemand) GetAllData() (*ExportData, error) {
	return with(o, (*Store).GetAllData)
}

func (o *OnDemand) ImportData(data *ExportData) error {
	return o.do(func(s *Store) error { return s.ImportData(data) })
}

func (o *OnDemand) Clear() error {
	return o.do((*Store).Clear)
}

// Close is a no-op; every call already closes its store.
func (o *OnDemand) Close() error {
	return nil
}
