// ABOUTME: One-shot reminder scheduling on top of gocron.
// ABOUTME: Replace cancels every pending reminder before scheduling the new set.
package reminders

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const reminderTag = "reminder"

// Scheduler fires planned reminders through a Notifier.
type Scheduler struct {
	cron     gocron.Scheduler
	notifier Notifier
	log      *zap.Logger

	mu      sync.Mutex
	pending map[uuid.UUID]Task
}

// NewScheduler creates a stopped scheduler. Call Start to begin firing.
func NewScheduler(notifier Notifier, loc *time.Location, log *zap.Logger) (*Scheduler, error) {
	if log == nil {
		log = zap.NewNop()
	}
	if loc == nil {
		loc = time.Local
	}

	cron, err := gocron.NewScheduler(
		gocron.WithLocation(loc),
		gocron.WithLogger(cronLogger{log.Sugar()}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create gocron scheduler: %w", err)
	}

	return &Scheduler{
		cron:     cron,
		notifier: notifier,
		log:      log,
		pending:  make(map[uuid.UUID]Task),
	}, nil
}

// Replace removes all previously scheduled reminders and schedules tasks.
// Tasks that are already due are skipped.
func (s *Scheduler) Replace(tasks []Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cron.RemoveByTags(reminderTag)
	s.pending = make(map[uuid.UUID]Task, len(tasks))

	now := time.Now()
	scheduled := 0
	for _, task := range tasks {
		// gocron rejects one-time jobs in the past.
		if !task.At.After(now) {
			s.log.Debug("skipping reminder already due",
				zap.String("date", task.Date), zap.String("kind", string(task.Kind)))
			continue
		}
		_, err := s.cron.NewJob(
			gocron.OneTimeJob(gocron.OneTimeJobStartDateTime(task.At)),
			gocron.NewTask(s.fire, task),
			gocron.WithIdentifier(task.ID),
			gocron.WithName(fmt.Sprintf("%s-%s", task.Kind, task.Date)),
			gocron.WithTags(reminderTag, string(task.Kind)),
		)
		if err != nil {
			return fmt.Errorf("failed to schedule %s reminder for %s: %w", task.Kind, task.Date, err)
		}
		s.pending[task.ID] = task
		scheduled++
	}

	s.log.Debug("reminders scheduled", zap.Int("count", scheduled), zap.Int("skipped", len(tasks)-scheduled))
	return nil
}

// Pending returns the reminders that have not fired yet, ordered by due time.
func (s *Scheduler) Pending() []Task {
	s.mu.Lock()
	defer s.mu.Unlock()

	tasks := make([]Task, 0, len(s.pending))
	for _, t := range s.pending {
		tasks = append(tasks, t)
	}
	sort.Slice(tasks, func(i, j int) bool {
		return tasks[i].At.Before(tasks[j].At)
	})
	return tasks
}

// Start begins firing reminders.
func (s *Scheduler) Start() {
	s.log.Debug("starting reminder scheduler")
	s.cron.Start()
}

// Shutdown stops the scheduler and waits for running notifications.
func (s *Scheduler) Shutdown() error {
	s.log.Debug("stopping reminder scheduler")
	return s.cron.Shutdown()
}

func (s *Scheduler) fire(task Task) {
	s.mu.Lock()
	_, ok := s.pending[task.ID]
	delete(s.pending, task.ID)
	s.mu.Unlock()
	if !ok {
		return
	}

	s.log.Info("reminder due",
		zap.String("date", task.Date),
		zap.String("kind", string(task.Kind)))

	if err := s.notifier.Notify(task); err != nil {
		s.log.Error("failed to deliver reminder",
			zap.String("date", task.Date),
			zap.String("kind", string(task.Kind)),
			zap.Error(err))
	}
}

// cronLogger routes gocron's logs through zap. Info is demoted to debug.
type cronLogger struct {
	l *zap.SugaredLogger
}

func (c cronLogger) Debug(msg string, args ...any) { c.l.Debugw(msg, args...) }
func (c cronLogger) Error(msg string, args ...any) { c.l.Errorw(msg, args...) }
func (c cronLogger) Info(msg string, args ...any)  { c.l.Debugw(msg, args...) }
func (c cronLogger) Warn(msg string, args ...any)  { c.l.Warnw(msg, args...) }
