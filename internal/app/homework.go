package app

import (
	"fmt"
	"strings"
	"time"

	"github.com/Tiliavir/studyhub/internal/model"
	"github.com/Tiliavir/studyhub/internal/timecalc"
)

// Subject is an entry of the subject picker.
type Subject struct {
	Value string
	Label string
}

// Subjects lists the subjects offered when adding homework.
var Subjects = []Subject{
	{Value: "math", Label: "Math"},
	{Value: "history", Label: "History"},
	{Value: "science", Label: "Science"},
	{Value: "english", Label: "English"},
	{Value: "art", Label: "Art"},
}

// SubjectLabel maps a picker value to its label. Unknown values are kept
// as typed.
func SubjectLabel(value string) string {
	v := strings.TrimSpace(value)
	for _, s := range Subjects {
		if strings.EqualFold(v, s.Value) {
			return s.Label
		}
	}
	return v
}

const defaultDueTime = "11:59 PM"

// AssignmentForm is the input of the "add assignment" dialog.
type AssignmentForm struct {
	Title        string
	Subject      string
	Due          time.Time
	DueTime      string
	Notes        string
	HighPriority bool
}

// AddAssignment validates form and appends the resulting assignment. The
// store assigns the id.
func (a *App) AddAssignment(form AssignmentForm) (model.Assignment, error) {
	title := strings.TrimSpace(form.Title)
	subject := strings.TrimSpace(form.Subject)
	switch {
	case title == "":
		return model.Assignment{}, missing("title")
	case subject == "":
		return model.Assignment{}, missing("subject")
	case form.Due.IsZero():
		return model.Assignment{}, missing("due date")
	}

	dueTime := defaultDueTime
	if strings.TrimSpace(form.DueTime) != "" {
		var err error
		if dueTime, err = dueTimeLabel(form.DueTime); err != nil {
			return model.Assignment{}, err
		}
	}
	priority := model.PriorityMedium
	if form.HighPriority {
		priority = model.PriorityHigh
	}

	added, err := a.Store.AddAssignment(model.Assignment{
		Title:       title,
		Subject:     SubjectLabel(subject),
		Description: strings.TrimSpace(form.Notes),
		DueDate:     timecalc.DueLabel(form.Due, a.now()),
		DueTime:     dueTime,
		Priority:    priority,
	})
	if err != nil {
		return model.Assignment{}, err
	}
	a.notify(Notice{
		Title:       "Assignment Added",
		Description: added.Title + " has been added to your homework list.",
	})
	return added, nil
}

// dueTimeLabel accepts a 24-hour "HH:MM" time or an already formatted
// 12-hour label such as "5:30 PM".
func dueTimeLabel(s string) (string, error) {
	s = strings.TrimSpace(s)
	if label, ok := timecalc.ClockLabel(s); ok {
		return label, nil
	}
	if t, err := time.Parse("3:04 PM", strings.ToUpper(s)); err == nil {
		return t.Format("3:04 PM"), nil
	}
	return "", &ValidationError{Field: "time", Reason: fmt.Sprintf("%q is not HH:MM", s)}
}

// ToggleAssignment flips the completion state of an assignment. It reports
// false when no assignment has that id.
func (a *App) ToggleAssignment(id int64) (model.Assignment, bool) {
	current, ok := a.Store.Assignment(id)
	if !ok {
		return model.Assignment{}, false
	}
	completed := !current.Completed
	updated, ok := a.Store.UpdateAssignment(id, model.AssignmentPatch{Completed: &completed})
	if !ok {
		return model.Assignment{}, false
	}
	if completed {
		a.notify(Notice{Title: "Assignment Completed", Description: updated.Title + " has been completed."})
	} else {
		a.notify(Notice{Title: "Assignment Reopened", Description: updated.Title + " has been reopened."})
	}
	return updated, true
}

// EditAssignment applies patch to an assignment. An empty title in the
// patch is rejected.
func (a *App) EditAssignment(id int64, patch model.AssignmentPatch) (model.Assignment, bool, error) {
	if patch.Title != nil {
		title := strings.TrimSpace(*patch.Title)
		if title == "" {
			return model.Assignment{}, false, missing("title")
		}
		patch.Title = &title
	}
	if patch.DueTime != nil {
		label, err := dueTimeLabel(*patch.DueTime)
		if err != nil {
			return model.Assignment{}, false, err
		}
		patch.DueTime = &label
	}
	updated, ok := a.Store.UpdateAssignment(id, patch)
	if ok {
		a.notify(Notice{Title: "Assignment Updated", Description: updated.Title + " has been updated."})
	}
	return updated, ok, nil
}

// SetAssignmentPriority changes only the priority of an assignment.
func (a *App) SetAssignmentPriority(id int64, p model.Priority) (model.Assignment, bool) {
	updated, ok, _ := a.EditAssignment(id, model.AssignmentPatch{Priority: &p})
	return updated, ok
}

// RemoveAssignment deletes an assignment and reports whether it existed.
func (a *App) RemoveAssignment(id int64) bool {
	existing, ok := a.Store.Assignment(id)
	if !ok || !a.Store.DeleteAssignment(id) {
		return false
	}
	a.notify(Notice{
		Title:       "Assignment Deleted",
		Description: existing.Title + " has been removed.",
	})
	return true
}
