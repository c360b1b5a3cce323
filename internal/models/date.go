// ABOUTME: Calendar date helpers for schedule and metrics keys.
// ABOUTME: Dates are anchored at noon UTC so day arithmetic never drifts across DST.
package models

import (
	"errors"
	"fmt"
	"time"
)

// DateLayout is the ISO calendar date format used for every date key.
const DateLayout = "2006-01-02"

// anchorHour is the fixed hour every calendar date is pinned to.
const anchorHour = 12

// ErrInvalidDate is returned when a date string is not YYYY-MM-DD.
var ErrInvalidDate = errors.New("invalid date")

// ParseDate parses a YYYY-MM-DD string into a time anchored at noon UTC.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q (use YYYY-MM-DD)", ErrInvalidDate, s)
	}
	return AnchorDate(t), nil
}

// AnchorDate drops the clock and zone of t, keeping its calendar date as
// observed in t's own location, and pins it to noon UTC.
func AnchorDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, anchorHour, 0, 0, 0, time.UTC)
}

// FormatDate renders the calendar date of t as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// Today returns the local calendar date of now as a date key.
func Today(now time.Time) string {
	return FormatDate(AnchorDate(now))
}

// IsDate reports whether s is a well-formed date key.
func IsDate(s string) bool {
	_, err := time.Parse(DateLayout, s)
	return err == nil
}
