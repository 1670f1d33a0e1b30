package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Tiliavir/studyhub/internal/app"
	"github.com/Tiliavir/studyhub/internal/model"
	"github.com/Tiliavir/studyhub/internal/progress"
	"github.com/Tiliavir/studyhub/internal/settings"
)

// PriorityBadge renders a short coloured priority label.
func PriorityBadge(p model.Priority) string {
	st := lipgloss.NewStyle().Bold(true)
	switch p {
	case model.PriorityHigh:
		st = st.Foreground(colorDanger)
	case model.PriorityMedium:
		st = st.Foreground(colorWarning)
	default:
		st = st.Foreground(colorMuted)
	}
	return st.Render(strings.ToUpper(string(p)))
}

// DueBadge colours a due label by urgency.
func DueBadge(label string) string {
	switch label {
	case "Due Today", "Overdue":
		return lipgloss.NewStyle().Foreground(colorDanger).Render(label)
	case "Due Tomorrow":
		return lipgloss.NewStyle().Foreground(colorWarning).Render(label)
	}
	return styleMuted().Render(label)
}

// AssignmentLine renders one assignment on a single line.
func AssignmentLine(a model.Assignment) string {
	check := "[ ]"
	title := styleTitle().Render(a.Title)
	if a.Completed {
		check = lipgloss.NewStyle().Foreground(colorOK).Render("[x]")
		title = styleMuted().Strikethrough(true).Render(a.Title)
	}
	meta := styleMuted().Render(a.Subject+" ·") + " " + DueBadge(a.DueDate) + styleMuted().Render(" "+a.DueTime)
	return fmt.Sprintf("%s #%d %s %s  %s  %s", check, a.ID, SubjectGlyph(a.Subject), title, meta, PriorityBadge(a.Priority))
}

// Assignments renders the homework list, one assignment per line followed by
// its description, if any.
func Assignments(list []model.Assignment) string {
	if len(list) == 0 {
		return styleMuted().Render("No assignments.")
	}
	var lines []string
	for _, a := range list {
		lines = append(lines, AssignmentLine(a))
		if a.Description != "" {
			lines = append(lines, "      "+styleMuted().Render(a.Description))
		}
	}
	return strings.Join(lines, "\n")
}

// RoutineLine renders one routine item on a single line.
func RoutineLine(r model.RoutineItem) string {
	glyph := lipgloss.NewStyle().Foreground(ColorFor(r.Color)).Render(RoutineGlyph(r.Kind))
	line := fmt.Sprintf("#%d %s %s  %s", r.ID, glyph, styleTitle().Render(r.Title), styleMuted().Render(r.Time))
	if len(r.Days) > 0 {
		days := make([]string, len(r.Days))
		for i, d := range r.Days {
			days[i] = d.Short()
		}
		line += "  " + styleMuted().Render("("+strings.Join(days, " ")+")")
	}
	return line
}

// Routine renders the routine list in display order.
func Routine(items []model.RoutineItem) string {
	if len(items) == 0 {
		return styleMuted().Render("No routine items yet.")
	}
	lines := make([]string, len(items))
	for i, r := range items {
		lines[i] = RoutineLine(r)
	}
	return strings.Join(lines, "\n")
}

// Dashboard renders the home screen.
func Dashboard(d app.Dashboard) string {
	var b strings.Builder
	b.WriteString(styleHeading().Render("Upcoming"))
	b.WriteString("\n")
	if len(d.Upcoming) == 0 {
		b.WriteString(styleMuted().Render("Nothing due. Enjoy the break!"))
	} else {
		lines := make([]string, len(d.Upcoming))
		for i, a := range d.Upcoming {
			lines[i] = AssignmentLine(a)
		}
		b.WriteString(strings.Join(lines, "\n"))
	}

	b.WriteString("\n\n")
	b.WriteString(styleHeading().Render("Routine"))
	b.WriteString("\n")
	b.WriteString(Routine(d.Routine))

	b.WriteString("\n\n")
	b.WriteString(styleHeading().Render("Quick Actions"))
	for _, qa := range d.QuickActions {
		b.WriteString("\n")
		b.WriteString(fmt.Sprintf("%s  %s", styleTitle().Render(qa.Title), styleMuted().Render("studyhub "+qa.Command)))
	}
	return b.String()
}

// Bar draws a fixed-width percentage bar.
func Bar(percent, width int) string {
	percent = min(max(percent, 0), 100)
	filled := percent * width / 100
	return lipgloss.NewStyle().Foreground(colorAccent).Render(strings.Repeat("█", filled)) +
		styleMuted().Render(strings.Repeat("░", width-filled))
}

// Progress renders the statistics screen.
func Progress(r progress.Report) string {
	var b strings.Builder
	b.WriteString(styleHeading().Render("Overall Progress"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s %3d%%  (%d of %d completed)", Bar(r.Percent, 20), r.Percent, r.Completed, r.Total))

	b.WriteString("\n\n")
	b.WriteString(styleHeading().Render("Subjects"))
	if len(r.Subjects) == 0 {
		b.WriteString("\n")
		b.WriteString(styleMuted().Render("No assignments yet."))
	}
	for _, s := range r.Subjects {
		b.WriteString("\n")
		b.WriteString(fmt.Sprintf("%-12s %s %3d%%", s.Subject, Bar(s.Percent, 20), s.Percent))
	}

	b.WriteString("\n\n")
	b.WriteString(styleHeading().Render("Pending"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s %d · %s %d · %s %d",
		PriorityBadge(model.PriorityHigh), r.ByPriority[model.PriorityHigh],
		PriorityBadge(model.PriorityMedium), r.ByPriority[model.PriorityMedium],
		PriorityBadge(model.PriorityLow), r.ByPriority[model.PriorityLow]))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("Routine items: %d", r.Routine))
	return b.String()
}

// Chat renders the transcript.
func Chat(msgs []model.Message) string {
	lines := make([]string, len(msgs))
	for i, m := range msgs {
		who := lipgloss.NewStyle().Bold(true).Foreground(colorAccent).Render("Assistant:")
		if m.Role == model.RoleUser {
			who = lipgloss.NewStyle().Bold(true).Render("You:")
		}
		lines[i] = who + " " + m.Content
	}
	return strings.Join(lines, "\n")
}

// Settings renders the settings area.
func Settings(theme string, cats []settings.Category, integrations []settings.Integration) string {
	onOff := func(on bool, yes, no string) string {
		if on {
			return lipgloss.NewStyle().Foreground(colorOK).Render(yes)
		}
		return styleMuted().Render(no)
	}

	var b strings.Builder
	b.WriteString(styleHeading().Render("Appearance"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("Dark Mode  %s", onOff(theme == "dark", "on", "off")))

	for _, c := range cats {
		b.WriteString("\n\n")
		b.WriteString(styleHeading().Render(c.Title))
		for _, tg := range c.Toggles {
			b.WriteString("\n")
			b.WriteString(fmt.Sprintf("%-20s %s  %s", tg.ID, onOff(tg.Enabled, "on", "off"), styleMuted().Render(tg.Description)))
		}
	}

	b.WriteString("\n\n")
	b.WriteString(styleHeading().Render("Integrations"))
	for _, in := range integrations {
		b.WriteString("\n")
		b.WriteString(fmt.Sprintf("%-20s %s  %s", in.ID, onOff(in.Connected, "connected", "disconnected"), styleMuted().Render(in.Description)))
	}
	return b.String()
}

// Notice renders a toast as a single line.
func Notice(n app.Notice) string {
	st := lipgloss.NewStyle().Bold(true).Foreground(colorOK)
	if n.Destructive {
		st = st.Foreground(colorDanger)
	}
	if n.Description == "" {
		return st.Render(n.Title)
	}
	return st.Render(n.Title) + " " + n.Description
}
