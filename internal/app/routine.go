package app

import (
	"slices"
	"strings"

	"github.com/Tiliavir/studyhub/internal/model"
	"github.com/Tiliavir/studyhub/internal/timecalc"
)

// RoutineColors is the colour palette of the routine dialog.
var RoutineColors = []string{"blue", "green", "orange", "purple", "red", "yellow", "indigo", "pink"}

const (
	defaultRoutineKind  = model.KindStudy
	defaultRoutineColor = "blue"
)

// RoutineForm is the input of the "add routine" dialog.
type RoutineForm struct {
	Title string
	Time  string
	Kind  string
	Color string
	Days  []string
}

// AddRoutine validates form and appends the resulting routine item. The
// store assigns the id.
func (a *App) AddRoutine(form RoutineForm) (model.RoutineItem, error) {
	title := strings.TrimSpace(form.Title)
	if title == "" {
		return model.RoutineItem{}, missing("title")
	}
	if strings.TrimSpace(form.Time) == "" {
		return model.RoutineItem{}, missing("time")
	}

	kind := defaultRoutineKind
	if form.Kind != "" {
		k, err := model.ParseRoutineKind(form.Kind)
		if err != nil {
			return model.RoutineItem{}, &ValidationError{Field: "kind", Reason: err.Error()}
		}
		kind = k
	}

	color := defaultRoutineColor
	if form.Color != "" {
		color = strings.ToLower(strings.TrimSpace(form.Color))
		if !slices.Contains(RoutineColors, color) {
			return model.RoutineItem{}, &ValidationError{Field: "color", Reason: "must be one of " + strings.Join(RoutineColors, ", ")}
		}
	}

	days := []model.Weekday{}
	for _, raw := range form.Days {
		d, err := model.ParseWeekday(raw)
		if err != nil {
			return model.RoutineItem{}, &ValidationError{Field: "days", Reason: err.Error()}
		}
		if !slices.Contains(days, d) {
			days = append(days, d)
		}
	}

	added, err := a.Store.AddRoutineItem(model.RoutineItem{
		Title: title,
		Time:  routineTimeLabel(form.Time),
		Kind:  kind,
		Color: color,
		Days:  days,
	})
	if err != nil {
		return model.RoutineItem{}, err
	}
	a.notify(Notice{
		Title:       "Routine Added",
		Description: added.Title + " has been added to your routine.",
	})
	return added, nil
}

// RemoveRoutine deletes a routine item and reports whether it existed.
func (a *App) RemoveRoutine(id int64) bool {
	existing, ok := a.Store.RoutineItem(id)
	if !ok || !a.Store.DeleteRoutineItem(id) {
		return false
	}
	a.notify(Notice{
		Title:       "Routine Deleted",
		Description: existing.Title + " has been removed from your routine.",
	})
	return true
}

// routineTimeLabel turns "14:00" or "14:00-15:00" into 12-hour labels and
// leaves any other text alone.
func routineTimeLabel(s string) string {
	s = strings.TrimSpace(s)
	if label, ok := timecalc.ClockLabel(s); ok {
		return label
	}
	start, end, found := strings.Cut(s, "-")
	if !found {
		return s
	}
	from, okFrom := timecalc.ClockLabel(start)
	to, okTo := timecalc.ClockLabel(end)
	if !okFrom || !okTo {
		return s
	}
	return from + " - " + to
}
