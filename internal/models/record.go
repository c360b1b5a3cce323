// ABOUTME: Daily self-reported metrics record keyed by calendar date.
// ABOUTME: Holds urge levels, behavior flags, mood, groundedness and notes.
package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
	"time"
)

const (
	// LevelMin is the lowest accepted intensity.
	LevelMin = 0
	// LevelMax is the highest accepted intensity.
	LevelMax = 10
	// DefaultMood is the mood a new record starts with.
	DefaultMood = 5
	// DefaultGround is the groundedness a new record starts with.
	DefaultGround = 5
)

// Level is an intensity on the 0-10 scale. It decodes from JSON numbers or
// numeric strings; anything else decodes as 0.
type Level int

// UnmarshalJSON implements json.Unmarshaler with lenient coercion.
func (l *Level) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	var f float64
	if err := json.Unmarshal(data, &f); err == nil {
		*l = Level(math.Round(f))
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if v, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
			*l = Level(math.Round(v))
			return nil
		}
	}
	*l = 0
	return nil
}

// Flag records whether a behavior happened. It decodes from JSON booleans or
// the strings yes/no/true/false.
type Flag bool

// UnmarshalJSON implements json.Unmarshaler with lenient coercion.
func (f *Flag) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	var b bool
	if err := json.Unmarshal(data, &b); err == nil {
		*f = Flag(b)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		v, _ := ParseFlag(s)
		*f = Flag(v)
		return nil
	}
	*f = false
	return nil
}

// YesNo renders the flag as "yes" or "no".
func (f Flag) YesNo() string {
	if f {
		return "yes"
	}
	return "no"
}

// ParseFlag parses yes/no style input.
func ParseFlag(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yes", "y", "true", "1":
		return true, nil
	case "no", "n", "false", "0", "":
		return false, nil
	default:
		return false, fmt.Errorf("expected yes or no, got %q", s)
	}
}

// ClampLevel limits v to the 0-10 scale.
func ClampLevel(v int) Level {
	if v < LevelMin {
		return LevelMin
	}
	if v > LevelMax {
		return LevelMax
	}
	return Level(v)
}

// MetricsRecord is one day's self-report.
type MetricsRecord struct {
	Date string `json:"date" yaml:"date"`

	PornUrge Level `json:"pornUrge" yaml:"porn_urge"`
	MastUrge Level `json:"mastUrge" yaml:"mast_urge"`
	CigUrge  Level `json:"cigUrge" yaml:"cig_urge"`
	WeedUrge Level `json:"weedUrge" yaml:"weed_urge"`

	PornUsed Flag `json:"pornUsed" yaml:"porn_used"`
	MastUsed Flag `json:"mastUsed" yaml:"mast_used"`
	CigUsed  Flag `json:"cigUsed" yaml:"cig_used"`
	WeedUsed Flag `json:"weedUsed" yaml:"weed_used"`

	Mood   Level  `json:"mood" yaml:"mood"`
	Ground Level  `json:"ground" yaml:"ground"`
	Notes  string `json:"notes" yaml:"notes,omitempty"`

	Timestamp time.Time `json:"timestamp" yaml:"timestamp"`
}

// NewRecord creates an empty record for date with default mood and ground.
func NewRecord(date string) *MetricsRecord {
	return &MetricsRecord{
		Date:      date,
		Mood:      DefaultMood,
		Ground:    DefaultGround,
		Timestamp: time.Now(),
	}
}

// Urges returns the four urge levels in column order.
func (r *MetricsRecord) Urges() [4]Level {
	return [4]Level{r.PornUrge, r.MastUrge, r.CigUrge, r.WeedUrge}
}

// Behaviors returns the four behavior flags in column order.
func (r *MetricsRecord) Behaviors() [4]Flag {
	return [4]Flag{r.PornUsed, r.MastUsed, r.CigUsed, r.WeedUsed}
}

// UrgeNames and BehaviorNames are the field names of Urges and Behaviors, in order.
var (
	UrgeNames     = [4]string{"pornUrge", "mastUrge", "cigUrge", "weedUrge"}
	BehaviorNames = [4]string{"pornUsed", "mastUsed", "cigUsed", "weedUsed"}
)

// Metrics maps a date key to its record.
type Metrics map[string]*MetricsRecord

// Dates returns the recorded dates in ascending order.
func (m Metrics) Dates() []string {
	dates := make([]string, 0, len(m))
	for d := range m {
		dates = append(dates, d)
	}
	sort.Strings(dates)
	return dates
}

// MetricsInput is raw user input for a record. Nil fields take the default.
type MetricsInput struct {
	PornUrge *int
	MastUrge *int
	CigUrge  *int
	WeedUrge *int

	PornUsed *bool
	MastUsed *bool
	CigUsed  *bool
	WeedUsed *bool

	Mood   *int
	Ground *int
	Notes  string
}

// Record builds a full record for date from the input, clamping every level
// to the 0-10 scale.
func (in MetricsInput) Record(date string, now time.Time) *MetricsRecord {
	r := NewRecord(date)
	r.Timestamp = now
	r.PornUrge = levelOr(in.PornUrge, 0)
	r.MastUrge = levelOr(in.MastUrge, 0)
	r.CigUrge = levelOr(in.CigUrge, 0)
	r.WeedUrge = levelOr(in.WeedUrge, 0)
	r.PornUsed = flagOr(in.PornUsed)
	r.MastUsed = flagOr(in.MastUsed)
	r.CigUsed = flagOr(in.CigUsed)
	r.WeedUsed = flagOr(in.WeedUsed)
	r.Mood = levelOr(in.Mood, DefaultMood)
	r.Ground = levelOr(in.Ground, DefaultGround)
	r.Notes = in.Notes
	return r
}

// InputFromRecord turns an existing record back into input, so an edit can
// start from the stored values.
func InputFromRecord(r *MetricsRecord) MetricsInput {
	ints := func(l Level) *int { v := int(l); return &v }
	bools := func(f Flag) *bool { v := bool(f); return &v }
	return MetricsInput{
		PornUrge: ints(r.PornUrge),
		MastUrge: ints(r.MastUrge),
		CigUrge:  ints(r.CigUrge),
		WeedUrge: ints(r.WeedUrge),
		PornUsed: bools(r.PornUsed),
		MastUsed: bools(r.MastUsed),
		CigUsed:  bools(r.CigUsed),
		WeedUsed: bools(r.WeedUsed),
		Mood:     ints(r.Mood),
		Ground:   ints(r.Ground),
		Notes:    r.Notes,
	}
}

// Over fills every nil field of in from base. Notes are taken from base only
// when in.Notes is empty and keepNotes is set.
func (in MetricsInput) Over(base MetricsInput, keepNotes bool) MetricsInput {
	pick := func(v, b *int) *int {
		if v != nil {
			return v
		}
		return b
	}
	pickFlag := func(v, b *bool) *bool {
		if v != nil {
			return v
		}
		return b
	}

	out := MetricsInput{
		PornUrge: pick(in.PornUrge, base.PornUrge),
		MastUrge: pick(in.MastUrge, base.MastUrge),
		CigUrge:  pick(in.CigUrge, base.CigUrge),
		WeedUrge: pick(in.WeedUrge, base.WeedUrge),
		PornUsed: pickFlag(in.PornUsed, base.PornUsed),
		MastUsed: pickFlag(in.MastUsed, base.MastUsed),
		CigUsed:  pickFlag(in.CigUsed, base.CigUsed),
		WeedUsed: pickFlag(in.WeedUsed, base.WeedUsed),
		Mood:     pick(in.Mood, base.Mood),
		Ground:   pick(in.Ground, base.Ground),
		Notes:    in.Notes,
	}
	if out.Notes == "" && keepNotes {
		out.Notes = base.Notes
	}
	return out
}

func levelOr(v *int, def int) Level {
	if v == nil {
		return ClampLevel(def)
	}
	return ClampLevel(*v)
}

func flagOr(v *bool) Flag {
	if v == nil {
		return false
	}
	return Flag(*v)
}
