// ABOUTME: Tracker service tying program configuration, schedule, and metrics together.
// ABOUTME: Every operation loads explicit State from the repository instead of caching it.
package app

import (
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/harperreed/practice/internal/models"
	"github.com/harperreed/practice/internal/reminders"
	"github.com/harperreed/practice/internal/storage"
	"github.com/harperreed/practice/internal/views"
)

// ErrNotConfigured is returned when an operation needs a program that has
// not been set up yet.
var ErrNotConfigured = errors.New("program not set up; run 'practice setup' first")

// State is the tracker's application state at one point in time.
type State struct {
	Config   *models.ProgramConfig
	Schedule []models.ScheduleEntry
	Metrics  models.Metrics
}

// Configured reports whether a program has been set up.
func (s *State) Configured() bool {
	return s != nil && s.Config != nil && len(s.Schedule) > 0
}

// Tracker is the application service behind the CLI and MCP server.
type Tracker struct {
	repo storage.Repository
	log  *zap.Logger
	now  func() time.Time
}

// NewTracker creates a tracker over repo.
func NewTracker(repo storage.Repository, log *zap.Logger) *Tracker {
	if log == nil {
		log = zap.NewNop()
	}
	return &Tracker{
		repo: repo,
		log:  log,
		now:  time.Now,
	}
}

// WithClock replaces the tracker's time source.
func (t *Tracker) WithClock(now func() time.Time) *Tracker {
	t.now = now
	return t
}

// Repository returns the underlying repository.
func (t *Tracker) Repository() storage.Repository {
	return t.repo
}

// Now returns the current time from the tracker's clock.
func (t *Tracker) Now() time.Time {
	return t.now()
}

// Today returns today's date key.
func (t *Tracker) Today() string {
	return models.Today(t.now())
}

// Load reads config, schedule and metrics. A config without a usable
// schedule gets its schedule regenerated and saved.
func (t *Tracker) Load() (*State, error) {
	cfg, err := t.repo.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	schedule, err := t.repo.LoadSchedule()
	if err != nil {
		return nil, fmt.Errorf("failed to load schedule: %w", err)
	}
	metrics, err := t.repo.LoadMetrics()
	if err != nil {
		return nil, fmt.Errorf("failed to load metrics: %w", err)
	}

	if cfg != nil && len(schedule) == 0 {
		if err := cfg.Validate(); err != nil {
			t.log.Warn("stored config is invalid, ignoring it", zap.Error(err))
			cfg = nil
		} else {
			t.log.Info("schedule missing, regenerating from config", zap.String("start", cfg.StartDate))
			if schedule, err = cfg.Schedule(); err != nil {
				return nil, fmt.Errorf("failed to regenerate schedule: %w", err)
			}
			if err := t.repo.SaveSchedule(schedule); err != nil {
				return nil, fmt.Errorf("failed to save schedule: %w", err)
			}
		}
	}

	return &State{Config: cfg, Schedule: schedule, Metrics: metrics}, nil
}

func (t *Tracker) loadConfigured() (*State, error) {
	state, err := t.Load()
	if err != nil {
		return nil, err
	}
	if !state.Configured() {
		return nil, ErrNotConfigured
	}
	return state, nil
}

// Setup validates cfg, generates its schedule, and persists both. It is
// also used to reconfigure: existing metrics are kept.
func (t *Tracker) Setup(cfg *models.ProgramConfig) (*State, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	schedule, err := cfg.Schedule()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrInvalidConfig, err)
	}

	prev, err := t.repo.LoadSchedule()
	if err != nil {
		return nil, fmt.Errorf("failed to load schedule: %w", err)
	}
	if err := t.repo.SaveSchedule(schedule); err != nil {
		return nil, fmt.Errorf("failed to save schedule: %w", err)
	}
	// Config goes last; on failure the previous schedule is restored.
	if err := t.repo.SaveConfig(cfg); err != nil {
		if rerr := t.repo.SaveSchedule(prev); rerr != nil {
			t.log.Error("failed to restore schedule", zap.Error(rerr))
		}
		return nil, fmt.Errorf("failed to save config: %w", err)
	}

	metrics, err := t.repo.LoadMetrics()
	if err != nil {
		return nil, fmt.Errorf("failed to load metrics: %w", err)
	}

	t.log.Info("program configured",
		zap.String("start", cfg.StartDate),
		zap.Int("length", cfg.ProgramLength),
		zap.Int("records", len(metrics)))

	return &State{Config: cfg, Schedule: schedule, Metrics: metrics}, nil
}

// Reconfigure replaces the configuration of an existing program. The
// schedule is regenerated and recorded days are kept.
func (t *Tracker) Reconfigure(cfg *models.ProgramConfig) (*State, error) {
	existing, err := t.repo.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if existing == nil {
		return nil, ErrNotConfigured
	}
	return t.Setup(cfg)
}

// TodayIndex returns the schedule position of today, or 0 when today is
// outside the program.
func (t *Tracker) TodayIndex(state *State) int {
	return views.IndexForDate(state.Schedule, t.Today())
}

// Day returns the view of the program day at index, clamped into range.
func (t *Tracker) Day(state *State, index int) (views.DayView, error) {
	if !state.Configured() {
		return views.DayView{}, ErrNotConfigured
	}
	v, _ := views.BuildDayView(state.Schedule, state.Metrics, index)
	return v, nil
}

// DayOn returns the view of the program day on date. Dates before the
// program show day 1 and dates after it show the last day.
func (t *Tracker) DayOn(state *State, date string) (views.DayView, error) {
	if !state.Configured() {
		return views.DayView{}, ErrNotConfigured
	}
	if !models.IsDate(date) {
		return views.DayView{}, fmt.Errorf("%w: %q (use YYYY-MM-DD)", models.ErrInvalidDate, date)
	}
	i := models.FindEntry(state.Schedule, date)
	if i < 0 {
		i = len(state.Schedule) - 1
		if date < state.Schedule[0].Date {
			i = 0
		}
	}
	return t.Day(state, i)
}

// TodayView returns the view for today, falling back to day 1 when today
// is outside the program.
func (t *Tracker) TodayView() (views.DayView, error) {
	state, err := t.loadConfigured()
	if err != nil {
		return views.DayView{}, err
	}
	return t.Day(state, t.TodayIndex(state))
}

// Record stores in as the complete record for date, replacing any existing
// record. Dates outside the schedule are accepted.
func (t *Tracker) Record(date string, in models.MetricsInput) (*models.MetricsRecord, error) {
	if !models.IsDate(date) {
		return nil, fmt.Errorf("%w: %q (use YYYY-MM-DD)", models.ErrInvalidDate, date)
	}

	r := in.Record(date, t.now().UTC().Truncate(time.Second))
	if err := t.repo.UpsertRecord(r); err != nil {
		return nil, fmt.Errorf("failed to save record: %w", err)
	}

	t.log.Debug("record saved", zap.String("date", date))
	return r, nil
}

// Update applies in on top of the stored record for date. Fields left nil
// keep their stored values; with keepNotes, so do notes when in.Notes is
// empty. Without a stored record it behaves like Record.
func (t *Tracker) Update(date string, in models.MetricsInput, keepNotes bool) (*models.MetricsRecord, error) {
	existing, err := t.repo.GetRecord(date)
	switch {
	case errors.Is(err, storage.ErrNotFound):
		return t.Record(date, in)
	case err != nil:
		return nil, fmt.Errorf("failed to load record: %w", err)
	}
	return t.Record(date, in.Over(models.InputFromRecord(existing), keepNotes))
}

// Get returns the record for date, or storage.ErrNotFound.
func (t *Tracker) Get(date string) (*models.MetricsRecord, error) {
	return t.repo.GetRecord(date)
}

// Summary computes progress as of today.
func (t *Tracker) Summary() (views.Summary, error) {
	state, err := t.loadConfigured()
	if err != nil {
		return views.Summary{}, err
	}
	return views.Summarize(state.Schedule, state.Metrics, t.Today()), nil
}

// CSV renders the program export.
func (t *Tracker) CSV() (string, error) {
	state, err := t.loadConfigured()
	if err != nil {
		return "", err
	}
	return views.BuildCSV(state.Schedule, state.Metrics), nil
}

// Log lists every stored record with its program day.
func (t *Tracker) Log() ([]views.DayLogEntry, error) {
	state, err := t.Load()
	if err != nil {
		return nil, err
	}
	return views.DayLog(state.Schedule, state.Metrics), nil
}

// Reminders plans the reminders due from today onward.
func (t *Tracker) Reminders() ([]reminders.Task, error) {
	state, err := t.loadConfigured()
	if err != nil {
		return nil, err
	}
	return reminders.Plan(state.Config, state.Schedule, t.TodayIndex(state), t.now())
}

// Reset removes the program and every record.
func (t *Tracker) Reset() error {
	if err := t.repo.Clear(); err != nil {
		return fmt.Errorf("failed to clear data: %w", err)
	}
	t.log.Info("all tracker data cleared")
	return nil
}
