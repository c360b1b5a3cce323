// ABOUTME: Program configuration set at setup time.
// ABOUTME: Validates start date, program length, and reminder times at the input boundary.
package models

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

const (
	// MinProgramLength is the shortest program accepted at setup.
	MinProgramLength = 7
	// MaxProgramLength is the longest program accepted at setup.
	MaxProgramLength = 366

	// DefaultSessionTime is the default time of the daily session reminder.
	DefaultSessionTime = "07:00"
	// DefaultRecordTime is the default time of the daily record reminder.
	DefaultRecordTime = "21:00"

	clockLayout = "15:04"
)

// ProgramLengthPresets are the suggested program lengths offered at setup.
var ProgramLengthPresets = []int{7, 21, 40, 90}

// ErrInvalidConfig wraps every program configuration validation failure.
var ErrInvalidConfig = errors.New("invalid configuration")

// ProgramConfig is the persisted program configuration.
type ProgramConfig struct {
	StartDate     string `json:"startDate" yaml:"start_date"`
	ProgramLength int    `json:"programLength" yaml:"program_length"`
	SessionTime   string `json:"sessionTime" yaml:"session_time"`
	RecordTime    string `json:"recordTime" yaml:"record_time"`
}

// NewProgramConfig creates a configuration with default reminder times.
func NewProgramConfig(startDate string, length int) *ProgramConfig {
	return &ProgramConfig{
		StartDate:     startDate,
		ProgramLength: length,
		SessionTime:   DefaultSessionTime,
		RecordTime:    DefaultRecordTime,
	}
}

// WithTimes sets the session and record reminder times. Empty values keep
// the current setting.
func (c *ProgramConfig) WithTimes(sessionTime, recordTime string) *ProgramConfig {
	if sessionTime != "" {
		c.SessionTime = sessionTime
	}
	if recordTime != "" {
		c.RecordTime = recordTime
	}
	return c
}

// Validate checks the configuration and returns a user-facing error.
func (c *ProgramConfig) Validate() error {
	if strings.TrimSpace(c.StartDate) == "" {
		return fmt.Errorf("%w: start date is required", ErrInvalidConfig)
	}
	if !IsDate(c.StartDate) {
		return fmt.Errorf("%w: start date %q must be YYYY-MM-DD", ErrInvalidConfig, c.StartDate)
	}
	if c.ProgramLength < MinProgramLength {
		return fmt.Errorf("%w: program length must be at least %d days, got %d", ErrInvalidConfig, MinProgramLength, c.ProgramLength)
	}
	if c.ProgramLength > MaxProgramLength {
		return fmt.Errorf("%w: program length must be at most %d days, got %d", ErrInvalidConfig, MaxProgramLength, c.ProgramLength)
	}
	if _, err := ParseClock(c.SessionTime); err != nil {
		return fmt.Errorf("%w: session time: %v", ErrInvalidConfig, err)
	}
	if _, err := ParseClock(c.RecordTime); err != nil {
		return fmt.Errorf("%w: record time: %v", ErrInvalidConfig, err)
	}
	return nil
}

// Schedule generates the schedule described by the configuration.
func (c *ProgramConfig) Schedule() ([]ScheduleEntry, error) {
	return GenerateScheduleFrom(c.StartDate, c.ProgramLength)
}

// ParseClock parses an HH:MM time of day.
func ParseClock(s string) (time.Duration, error) {
	t, err := time.Parse(clockLayout, s)
	if err != nil {
		return 0, fmt.Errorf("time of day %q must be HH:MM", s)
	}
	return time.Duration(t.Hour())*time.Hour + time.Duration(t.Minute())*time.Minute, nil
}

// At returns the instant of an HH:MM time of day on date, in loc.
func At(date, clock string, loc *time.Location) (time.Time, error) {
	d, err := time.Parse(DateLayout, date)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, date)
	}
	offset, err := ParseClock(clock)
	if err != nil {
		return time.Time{}, err
	}
	y, m, day := d.Date()
	h := int(offset / time.Hour)
	minute := int((offset % time.Hour) / time.Minute)
	return time.Date(y, m, day, h, minute, 0, 0, loc), nil
}
