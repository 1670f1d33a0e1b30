package timecalc_test

import (
	"testing"
	"time"

	"github.com/Tiliavir/studyhub/internal/timecalc"
)

func TestStartOfDay(t *testing.T) {
	in := time.Date(2026, 2, 27, 10, 42, 7, 5, time.UTC)
	want := time.Date(2026, 2, 27, 0, 0, 0, 0, time.UTC)
	if got := timecalc.StartOfDay(in); !got.Equal(want) {
		t.Errorf("StartOfDay = %v, want %v", got, want)
	}
}

func TestSameDay(t *testing.T) {
	a := time.Date(2026, 2, 27, 10, 0, 0, 0, time.UTC)
	b := time.Date(2026, 2, 27, 23, 59, 59, 0, time.UTC)
	c := time.Date(2026, 2, 28, 0, 0, 0, 0, time.UTC)

	if !timecalc.SameDay(a, b) {
		t.Error("SameDay: expected same day for a and b")
	}
	if timecalc.SameDay(a, c) {
		t.Error("SameDay: expected different day for a and c")
	}
}

func TestDaysBetweenAcrossDST(t *testing.T) {
	loc, err := time.LoadLocation("Europe/Berlin")
	if err != nil {
		t.Skipf("tzdata unavailable: %v", err)
	}
	// DST starts on 2026-03-29 in Europe.
	a := time.Date(2026, 3, 28, 23, 0, 0, 0, loc)
	b := time.Date(2026, 3, 30, 0, 30, 0, 0, loc)
	if got := timecalc.DaysBetween(a, b); got != 2 {
		t.Errorf("DaysBetween = %d, want 2", got)
	}
}

func TestDueLabel(t *testing.T) {
	now := time.Date(2026, 2, 27, 18, 0, 0, 0, time.UTC)
	tests := []struct {
		due  time.Time
		want string
	}{
		{time.Date(2026, 2, 26, 23, 0, 0, 0, time.UTC), "Overdue"},
		{time.Date(2026, 2, 27, 8, 0, 0, 0, time.UTC), "Due Today"},
		{time.Date(2026, 2, 28, 0, 0, 0, 0, time.UTC), "Due Tomorrow"},
		{time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC), "Due in 3 days"},
	}
	for _, tt := range tests {
		if got := timecalc.DueLabel(tt.due, now); got != tt.want {
			t.Errorf("DueLabel(%v) = %q, want %q", tt.due, got, tt.want)
		}
	}
}

func TestClockLabel(t *testing.T) {
	tests := []struct {
		input  string
		want   string
		wantOK bool
	}{
		{"14:30", "2:30 PM", true},
		{"00:05", "12:05 AM", true},
		{"12:00", "12:00 PM", true},
		{" 08:00 ", "8:00 AM", true},
		{"8:00 AM - 9:00 AM", "8:00 AM - 9:00 AM", false},
		{"25:00", "25:00", false},
	}
	for _, tt := range tests {
		got, ok := timecalc.ClockLabel(tt.input)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("ClockLabel(%q) = %q, %v; want %q, %v", tt.input, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestParseDay(t *testing.T) {
	now := time.Date(2026, 2, 27, 15, 30, 0, 0, time.UTC)
	tests := []struct {
		input   string
		want    time.Time
		wantErr bool
	}{
		{"", time.Time{}, false},
		{" Today ", time.Date(2026, 2, 27, 0, 0, 0, 0, time.UTC), false},
		{"tomorrow", time.Date(2026, 2, 28, 0, 0, 0, 0, time.UTC), false},
		{"2026-03-10", time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC), false},
		{"next week", time.Time{}, true},
	}
	for _, tt := range tests {
		got, err := timecalc.ParseDay(tt.input, now)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseDay(%q) err = %v", tt.input, err)
			continue
		}
		if !got.Equal(tt.want) {
			t.Errorf("ParseDay(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}
