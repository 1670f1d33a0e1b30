package model

import (
	"fmt"
	"strings"
)

// RoutineKind tags what sort of activity a routine item is. The presentation
// layer maps it to a glyph.
type RoutineKind string

const (
	KindStudy    RoutineKind = "study"
	KindBreak    RoutineKind = "break"
	KindHomework RoutineKind = "homework"
	KindMorning  RoutineKind = "morning"
	KindScience  RoutineKind = "science"
	KindMeal     RoutineKind = "meal"
	KindReading  RoutineKind = "reading"
	KindFun      RoutineKind = "fun"
)

// RoutineKinds lists every kind in picker order.
var RoutineKinds = []RoutineKind{
	KindStudy, KindBreak, KindHomework, KindMorning,
	KindScience, KindMeal, KindReading, KindFun,
}

// ParseRoutineKind validates a kind name.
func ParseRoutineKind(s string) (RoutineKind, error) {
	k := RoutineKind(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range RoutineKinds {
		if k == known {
			return k, nil
		}
	}
	return "", fmt.Errorf("invalid routine kind %q", s)
}

// Weekday identifies a day a routine item repeats on.
type Weekday string

const (
	Monday    Weekday = "monday"
	Tuesday   Weekday = "tuesday"
	Wednesday Weekday = "wednesday"
	Thursday  Weekday = "thursday"
	Friday    Weekday = "friday"
	Saturday  Weekday = "saturday"
	Sunday    Weekday = "sunday"
)

// Weekdays lists the days Monday first.
var Weekdays = []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

// ParseWeekday accepts a full day name or its three-letter abbreviation.
func ParseWeekday(s string) (Weekday, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, d := range Weekdays {
		if s == string(d) || (len(s) == 3 && strings.HasPrefix(string(d), s)) {
			return d, nil
		}
	}
	return "", fmt.Errorf("invalid weekday %q", s)
}

// Short returns the three-letter label, e.g. "Mon".
func (d Weekday) Short() string {
	if len(d) < 3 {
		return string(d)
	}
	return strings.ToUpper(string(d[:1])) + string(d[1:3])
}

// RoutineItem is a scheduled daily activity. Time is a display string such
// as "8:00 AM - 9:00 AM" and is never parsed as an interval.
type RoutineItem struct {
	ID    int64       `json:"id"`
	Title string      `json:"title"`
	Time  string      `json:"time"`
	Kind  RoutineKind `json:"kind"`
	Color string      `json:"color"`
	Days  []Weekday   `json:"days"`
}
