// ABOUTME: Tests for MetricsRecord construction, clamping, and JSON coercion.
// ABOUTME: Verifies defaults, the 0-10 clamp, and lenient decoding of stored values.
package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestNewRecordDefaults(t *testing.T) {
	r := NewRecord("2024-01-01")

	if r.Mood != DefaultMood {
		t.Errorf("Mood = %d, want %d", r.Mood, DefaultMood)
	}
	if r.Ground != DefaultGround {
		t.Errorf("Ground = %d, want %d", r.Ground, DefaultGround)
	}
	if r.Timestamp.IsZero() {
		t.Error("expected Timestamp to be set")
	}
}

func TestClampLevel(t *testing.T) {
	tests := []struct {
		in   int
		want Level
	}{
		{-5, 0},
		{0, 0},
		{7, 7},
		{10, 10},
		{42, 10},
	}

	for _, tt := range tests {
		if got := ClampLevel(tt.in); got != tt.want {
			t.Errorf("ClampLevel(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestMetricsInputRecord(t *testing.T) {
	urge := 14
	mood := -3
	used := true
	now := time.Date(2024, 1, 1, 21, 0, 0, 0, time.UTC)

	in := MetricsInput{
		CigUrge: &urge,
		CigUsed: &used,
		Mood:    &mood,
		Notes:   "long day",
	}
	got := in.Record("2024-01-01", now)

	want := &MetricsRecord{
		Date:      "2024-01-01",
		CigUrge:   10,
		CigUsed:   true,
		Mood:      0,
		Ground:    DefaultGround,
		Notes:     "long day",
		Timestamp: now,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Record() mismatch (-want +got):\n%s", diff)
	}
}

func TestInputFromRecordRoundTrip(t *testing.T) {
	now := time.Date(2024, 1, 1, 21, 0, 0, 0, time.UTC)
	orig := &MetricsRecord{
		Date:      "2024-01-01",
		PornUrge:  3,
		WeedUrge:  8,
		MastUsed:  true,
		Mood:      6,
		Ground:    4,
		Notes:     "ok",
		Timestamp: now,
	}

	got := InputFromRecord(orig).Record(orig.Date, now)
	if diff := cmp.Diff(orig, got); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestRecordDecodesLegacyStrings(t *testing.T) {
	data := []byte(`{
		"date": "2024-01-02",
		"pornUrge": "4",
		"mastUrge": "",
		"cigUrge": 6,
		"weedUrge": "x",
		"pornUsed": "no",
		"mastUsed": "yes",
		"cigUsed": true,
		"weedUsed": "",
		"mood": "7",
		"ground": 3,
		"notes": "said \"hi\""
	}`)

	var r MetricsRecord
	if err := json.Unmarshal(data, &r); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}

	if r.PornUrge != 4 || r.MastUrge != 0 || r.CigUrge != 6 || r.WeedUrge != 0 {
		t.Errorf("urges = %v", r.Urges())
	}
	if r.PornUsed || !r.MastUsed || !r.CigUsed || r.WeedUsed {
		t.Errorf("behaviors = %v", r.Behaviors())
	}
	if r.Mood != 7 || r.Ground != 3 {
		t.Errorf("mood/ground = %d/%d, want 7/3", r.Mood, r.Ground)
	}
	if r.Notes != `said "hi"` {
		t.Errorf("Notes = %q", r.Notes)
	}
}

func TestParseFlag(t *testing.T) {
	tests := []struct {
		in      string
		want    bool
		wantErr bool
	}{
		{"yes", true, false},
		{"Y", true, false},
		{"true", true, false},
		{"no", false, false},
		{"", false, false},
		{"maybe", false, true},
	}

	for _, tt := range tests {
		got, err := ParseFlag(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseFlag(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseFlag(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestMetricsDatesSorted(t *testing.T) {
	m := Metrics{
		"2024-01-03": NewRecord("2024-01-03"),
		"2023-12-30": NewRecord("2023-12-30"),
		"2024-01-01": NewRecord("2024-01-01"),
	}

	want := []string{"2023-12-30", "2024-01-01", "2024-01-03"}
	if diff := cmp.Diff(want, m.Dates()); diff != "" {
		t.Errorf("Dates() mismatch (-want +got):\n%s", diff)
	}
}

func TestMetricsInputOver(t *testing.T) {
	stored := NewRecord("2024-01-01")
	stored.CigUrge = 8
	stored.CigUsed = true
	stored.Notes = "kept"
	base := InputFromRecord(stored)

	mood := 9
	patched := MetricsInput{Mood: &mood}.Over(base, true).Record("2024-01-01", time.Time{})
	if patched.Mood != 9 || patched.CigUrge != 8 || !patched.CigUsed || patched.Notes != "kept" {
		t.Errorf("patched = %+v", patched)
	}

	replaced := MetricsInput{Notes: "new"}.Over(base, true).Record("2024-01-01", time.Time{})
	if replaced.Notes != "new" {
		t.Errorf("Notes = %q, want new", replaced.Notes)
	}

	cleared := MetricsInput{}.Over(base, false).Record("2024-01-01", time.Time{})
	if cleared.Notes != "" {
		t.Errorf("Notes = %q, want empty", cleared.Notes)
	}
}
