// ABOUTME: Reminder delivery targets.
// ABOUTME: ConsoleNotifier prints colored reminders to a writer.
package reminders

import (
	"fmt"
	"io"
	"sync"

	"github.com/fatih/color"
)

// Notifier delivers a due reminder.
type Notifier interface {
	Notify(task Task) error
}

// NotifierFunc adapts a function to the Notifier interface.
type NotifierFunc func(task Task) error

// Notify calls f(task).
func (f NotifierFunc) Notify(task Task) error {
	return f(task)
}

// ConsoleNotifier writes reminders to out.
type ConsoleNotifier struct {
	mu  sync.Mutex
	out io.Writer
}

// NewConsoleNotifier creates a notifier writing to out.
func NewConsoleNotifier(out io.Writer) *ConsoleNotifier {
	return &ConsoleNotifier{out: out}
}

// Notify prints the reminder title and body.
func (n *ConsoleNotifier) Notify(task Task) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	bell := color.New(color.FgYellow, color.Bold).SprintFunc()
	faint := color.New(color.Faint).SprintFunc()

	if _, err := fmt.Fprintf(n.out, "%s %s %s\n", bell("⏰"), bell(task.Title), faint(task.At.Format("Mon Jan 2 15:04"))); err != nil {
		return err
	}
	_, err := fmt.Fprintf(n.out, "   %s\n", task.Body)
	return err
}
