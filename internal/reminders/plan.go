// ABOUTME: Plans the upcoming session and record reminders for the program.
// ABOUTME: Task IDs are derived from (date, kind) so replanning yields the same IDs.
package reminders

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/harperreed/practice/internal/models"
)

// Window is how many schedule days ahead reminders are planned.
const Window = 7

// Kind distinguishes the two daily reminders.
type Kind string

const (
	KindSession Kind = "session"
	KindRecord  Kind = "record"
)

// taskNamespace scopes the name-based reminder IDs.
var taskNamespace = uuid.MustParse("0f1d6c5e-4b8a-4c3e-9a57-2d4b1f3e8c61")

// Task is one reminder due at a fixed instant.
type Task struct {
	ID    uuid.UUID `json:"id"`
	Date  string    `json:"date"`
	Kind  Kind      `json:"kind"`
	At    time.Time `json:"at"`
	Title string    `json:"title"`
	Body  string    `json:"body"`
}

// TaskID returns the stable ID for the reminder of kind on date.
func TaskID(date string, kind Kind) uuid.UUID {
	return uuid.NewSHA1(taskNamespace, []byte(date+"|"+string(kind)))
}

// Plan lists the reminders for up to Window schedule days starting at
// fromIndex, keeping only those strictly after now. Times are interpreted
// in now's location. Tasks are ordered by due time.
func Plan(cfg *models.ProgramConfig, schedule []models.ScheduleEntry, fromIndex int, now time.Time) ([]Task, error) {
	if cfg == nil || len(schedule) == 0 {
		return nil, nil
	}
	if fromIndex < 0 {
		fromIndex = 0
	}
	if fromIndex >= len(schedule) {
		return nil, nil
	}
	end := fromIndex + Window
	if end > len(schedule) {
		end = len(schedule)
	}

	var tasks []Task
	for _, e := range schedule[fromIndex:end] {
		session, err := models.At(e.Date, cfg.SessionTime, now.Location())
		if err != nil {
			return nil, fmt.Errorf("session reminder for %s: %w", e.Date, err)
		}
		if session.After(now) {
			tasks = append(tasks, sessionTask(e, session))
		}

		rec, err := models.At(e.Date, cfg.RecordTime, now.Location())
		if err != nil {
			return nil, fmt.Errorf("record reminder for %s: %w", e.Date, err)
		}
		if rec.After(now) {
			tasks = append(tasks, recordTask(e, rec))
		}
	}

	sort.SliceStable(tasks, func(i, j int) bool {
		return tasks[i].At.Before(tasks[j].At)
	})
	return tasks, nil
}

func sessionTask(e models.ScheduleEntry, at time.Time) Task {
	kind := "Baseline (B)"
	if e.DayType == models.DayTypeA {
		kind = "Invitation (A)"
	}
	return Task{
		ID:    TaskID(e.Date, KindSession),
		Date:  e.Date,
		Kind:  KindSession,
		At:    at,
		Title: "Time for your practice session",
		Body:  fmt.Sprintf("Day %d %s session. Open the tracker to follow your practice.", e.DayNumber, kind),
	}
}

func recordTask(e models.ScheduleEntry, at time.Time) Task {
	return Task{
		ID:    TaskID(e.Date, KindRecord),
		Date:  e.Date,
		Kind:  KindRecord,
		At:    at,
		Title: "Time to record your metrics",
		Body:  "Reflect on your day and record your metrics in the tracker.",
	}
}
