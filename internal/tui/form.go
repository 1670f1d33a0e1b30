package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Tiliavir/studyhub/internal/app"
	"github.com/Tiliavir/studyhub/internal/model"
)

type formKind int

const (
	formAddAssignment formKind = iota
	formEditAssignment
	formAddRoutine
)

type formField struct {
	label       string
	placeholder string
	value       string
}

// form is a dialog of single-line text inputs. The focused input receives
// key presses; the others are blurred.
type form struct {
	kind   formKind
	title  string
	editID int64
	labels []string
	inputs []textinput.Model
	focus  int
}

func newForm(kind formKind, title string, fields []formField) *form {
	f := &form{kind: kind, title: title}
	for _, fd := range fields {
		in := textinput.New()
		in.Placeholder = fd.placeholder
		in.CharLimit = 200
		in.Width = 40
		in.SetValue(fd.value)
		in.CursorEnd()
		f.labels = append(f.labels, fd.label)
		f.inputs = append(f.inputs, in)
	}
	f.inputs[0].Focus()
	return f
}

func newAssignmentForm() *form {
	return newForm(formAddAssignment, "New Assignment", []formField{
		{label: "Title", placeholder: "Algebra worksheet"},
		{label: "Subject", placeholder: "math, history, science, english, art"},
		{label: "Due date", placeholder: "today, tomorrow or YYYY-MM-DD"},
		{label: "Due time", placeholder: "HH:MM (default 11:59 PM)"},
		{label: "Notes", placeholder: "optional"},
		{label: "High priority", placeholder: "y/n"},
	})
}

func newEditForm(a model.Assignment) *form {
	f := newForm(formEditAssignment, fmt.Sprintf("Edit Assignment #%d", a.ID), []formField{
		{label: "Title", value: a.Title},
		{label: "Notes", value: a.Description, placeholder: "optional"},
		{label: "Due date", placeholder: "unchanged (" + a.DueDate + ")"},
		{label: "Due time", placeholder: "unchanged (" + a.DueTime + ")"},
	})
	f.editID = a.ID
	return f
}

func newRoutineForm() *form {
	return newForm(formAddRoutine, "New Routine Item", []formField{
		{label: "Title", placeholder: "Evening reading"},
		{label: "Time", placeholder: "HH:MM or HH:MM-HH:MM"},
		{label: "Kind", placeholder: "study, break, homework, morning, science, meal, reading, fun"},
		{label: "Color", placeholder: strings.Join(app.RoutineColors, ", ")},
		{label: "Days", placeholder: "mon,wed,fri (optional)"},
	})
}

func (f *form) value(i int) string {
	return strings.TrimSpace(f.inputs[i].Value())
}

func (f *form) move(delta int) tea.Cmd {
	f.inputs[f.focus].Blur()
	f.focus = (f.focus + delta + len(f.inputs)) % len(f.inputs)
	return f.inputs[f.focus].Focus()
}

func (f *form) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return cmd
}

func (f *form) view() string {
	width := 0
	for _, l := range f.labels {
		width = max(width, len(l))
	}
	lines := []string{lipgloss.NewStyle().Bold(true).Render(f.title), ""}
	for i, in := range f.inputs {
		lines = append(lines, fmt.Sprintf("%s%-*s  %s", cursorPrefix(i == f.focus), width, f.labels[i], in.View()))
	}
	return styleForm.Render(strings.Join(lines, "\n"))
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
