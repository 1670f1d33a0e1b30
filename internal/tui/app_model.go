package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Tiliavir/studyhub/internal/app"
	"github.com/Tiliavir/studyhub/internal/chat"
	"github.com/Tiliavir/studyhub/internal/config"
	"github.com/Tiliavir/studyhub/internal/model"
	"github.com/Tiliavir/studyhub/internal/progress"
	"github.com/Tiliavir/studyhub/internal/render"
	"github.com/Tiliavir/studyhub/internal/store"
	"github.com/Tiliavir/studyhub/internal/timecalc"
)

type tab int

const (
	tabDashboard tab = iota
	tabHomework
	tabRoutine
	tabChat
	tabProgress
	tabSettings
	tabCount
)

var tabNames = [tabCount]string{"Dashboard", "Homework", "Routine", "Chat", "Progress", "Settings"}

// board is shared by every copy of appModel. The store listener and the
// notice sink write into it; both run on the Update goroutine because every
// mutation starts there.
type board struct {
	snap   store.Snapshot
	notice *app.Notice
}

type chatReplyMsg struct {
	reply model.Message
	err   error
}

type appModel struct {
	app         *app.App
	board       *board
	unsubscribe func()

	tab      tab
	cursor   [tabCount]int
	form     *form
	input    textinput.Model
	waiting  int
	quitting bool
}

func newAppModel(a *app.App) appModel {
	b := &board{snap: a.Store.Snapshot()}
	unsubscribe := a.Store.Subscribe(func(s store.Snapshot) { b.snap = s })
	a.SetNoticeSink(func(n app.Notice) { b.notice = &n })

	in := textinput.New()
	in.Placeholder = "Type your message..."
	in.CharLimit = 500
	in.Width = 50

	render.ApplyTheme(a.Settings.Theme())

	return appModel{
		app:         a,
		board:       b,
		unsubscribe: unsubscribe,
		input:       in,
	}
}

func (m appModel) close() {
	m.unsubscribe()
	m.app.SetNoticeSink(nil)
}

func (m appModel) Init() tea.Cmd {
	return nil
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.input.Width = max(msg.Width-6, 20)
		return m, nil
	case chatReplyMsg:
		m.waiting = max(m.waiting-1, 0)
		if msg.err != nil {
			m.setError("Chat Error", msg.err.Error())
		}
		return m, nil
	case tea.KeyMsg:
		return m.updateKey(msg)
	}
	if m.form != nil {
		return m, m.form.update(msg)
	}
	if m.tab == tabChat {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m appModel) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	}

	if m.form != nil {
		return m.updateFormKey(msg)
	}

	switch msg.String() {
	case "tab":
		return m.switchTab((m.tab + 1) % tabCount)
	case "shift+tab":
		return m.switchTab((m.tab + tabCount - 1) % tabCount)
	}

	if m.tab == tabChat {
		return m.updateChatKey(msg)
	}

	switch k := msg.String(); k {
	case "q":
		m.quitting = true
		return m, tea.Quit
	case "1", "2", "3", "4", "5", "6":
		return m.switchTab(tab(k[0] - '1'))
	case "j", "down":
		m.move(1)
	case "k", "up":
		m.move(-1)
	case "t":
		m.toggleTheme()
	case " ", "enter":
		m.activate()
	case "d":
		m.deleteSelected()
	case "p":
		m.cyclePriority()
	case "a":
		return m.openForm(false)
	case "e":
		return m.openForm(true)
	}
	return m, nil
}

func (m appModel) openForm(edit bool) (tea.Model, tea.Cmd) {
	switch {
	case m.tab == tabHomework && !edit:
		m.form = newAssignmentForm()
	case m.tab == tabHomework:
		i := m.selected()
		if i < 0 {
			return m, nil
		}
		m.form = newEditForm(m.board.snap.Assignments[i])
	case m.tab == tabRoutine && !edit:
		m.form = newRoutineForm()
	default:
		return m, nil
	}
	return m, textinput.Blink
}

func (m appModel) updateFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.form = nil
		return m, nil
	case "tab", "down":
		return m, m.form.move(1)
	case "shift+tab", "up":
		return m, m.form.move(-1)
	case "enter":
		if err := m.submitForm(); err != nil {
			m.setError("Error", err.Error())
			return m, nil
		}
		m.form = nil
		return m, nil
	}
	return m, m.form.update(msg)
}

// submitForm hands the form to the app. On error the form stays open.
func (m *appModel) submitForm() error {
	f := m.form
	switch f.kind {
	case formAddAssignment:
		due, err := timecalc.ParseDay(f.value(2), m.app.Now())
		if err != nil {
			return &app.ValidationError{Field: "due date", Reason: err.Error()}
		}
		if _, err := m.app.AddAssignment(app.AssignmentForm{
			Title:        f.value(0),
			Subject:      f.value(1),
			Due:          due,
			DueTime:      f.value(3),
			Notes:        f.value(4),
			HighPriority: strings.HasPrefix(strings.ToLower(f.value(5)), "y"),
		}); err != nil {
			return err
		}
		m.cursor[tabHomework] = len(m.board.snap.Assignments) - 1

	case formEditAssignment:
		title, notes := f.value(0), f.value(1)
		patch := model.AssignmentPatch{Title: &title, Description: &notes}
		if v := f.value(2); v != "" {
			now := m.app.Now()
			due, err := timecalc.ParseDay(v, now)
			if err != nil {
				return &app.ValidationError{Field: "due date", Reason: err.Error()}
			}
			label := timecalc.DueLabel(due, now)
			patch.DueDate = &label
		}
		if v := f.value(3); v != "" {
			patch.DueTime = &v
		}
		_, ok, err := m.app.EditAssignment(f.editID, patch)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("assignment #%d no longer exists", f.editID)
		}

	case formAddRoutine:
		if _, err := m.app.AddRoutine(app.RoutineForm{
			Title: f.value(0),
			Time:  f.value(1),
			Kind:  f.value(2),
			Color: f.value(3),
			Days:  splitList(f.value(4)),
		}); err != nil {
			return err
		}
		m.cursor[tabRoutine] = len(m.board.snap.RoutineItems) - 1
	}
	return nil
}

func (m appModel) updateChatKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return m.switchTab(tabDashboard)
	case "enter":
		ex, err := m.app.Chat.Send(context.Background(), m.input.Value())
		if err != nil {
			m.setError("Error", "Type a message first.")
			return m, nil
		}
		m.input.Reset()
		m.waiting++
		return m, waitForReply(ex)
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func waitForReply(ex *chat.Exchange) tea.Cmd {
	return func() tea.Msg {
		reply, err := ex.Wait(context.Background())
		return chatReplyMsg{reply: reply, err: err}
	}
}

func (m appModel) switchTab(t tab) (tea.Model, tea.Cmd) {
	m.tab = t
	if t == tabChat {
		cmd := m.input.Focus()
		return m, cmd
	}
	m.input.Blur()
	return m, nil
}

func (m *appModel) setError(title, description string) {
	m.board.notice = &app.Notice{Title: title, Description: description, Destructive: true}
}

func (m *appModel) rows() int {
	switch m.tab {
	case tabHomework:
		return len(m.board.snap.Assignments)
	case tabRoutine:
		return len(m.board.snap.RoutineItems)
	case tabSettings:
		return len(m.settingRows())
	}
	return 0
}

// selected returns the clamped cursor of the current tab, or -1 when the
// tab has no rows.
func (m *appModel) selected() int {
	n := m.rows()
	if n == 0 {
		return -1
	}
	c := min(max(m.cursor[m.tab], 0), n-1)
	m.cursor[m.tab] = c
	return c
}

func (m *appModel) move(delta int) {
	if n := m.rows(); n > 0 {
		m.cursor[m.tab] = min(max(m.cursor[m.tab]+delta, 0), n-1)
	}
}

func (m *appModel) activate() {
	i := m.selected()
	if i < 0 {
		return
	}
	switch m.tab {
	case tabHomework:
		m.app.ToggleAssignment(m.board.snap.Assignments[i].ID)
	case tabSettings:
		row := m.settingRows()[i]
		var err error
		if row.integration {
			_, err = m.app.ToggleIntegration(row.id)
		} else {
			_, err = m.app.ToggleNotification(row.id)
		}
		if err != nil {
			m.setError("Error", err.Error())
		}
	}
}

func (m *appModel) deleteSelected() {
	i := m.selected()
	if i < 0 {
		return
	}
	switch m.tab {
	case tabHomework:
		m.app.RemoveAssignment(m.board.snap.Assignments[i].ID)
	case tabRoutine:
		m.app.RemoveRoutine(m.board.snap.RoutineItems[i].ID)
	}
	m.selected()
}

func (m *appModel) cyclePriority() {
	if m.tab != tabHomework {
		return
	}
	i := m.selected()
	if i < 0 {
		return
	}
	a := m.board.snap.Assignments[i]
	next := map[model.Priority]model.Priority{
		model.PriorityHigh:   model.PriorityMedium,
		model.PriorityMedium: model.PriorityLow,
		model.PriorityLow:    model.PriorityHigh,
	}[a.Priority]
	if next == "" {
		next = model.PriorityMedium
	}
	m.app.SetAssignmentPriority(a.ID, next)
}

func (m *appModel) toggleTheme() {
	next := config.ThemeDark
	if m.app.Settings.Theme() == config.ThemeDark {
		next = config.ThemeLight
	}
	if err := m.app.SetTheme(next); err != nil {
		m.setError("Error", err.Error())
		return
	}
	render.ApplyTheme(next)
}

type settingRow struct {
	id          string
	label       string
	on          bool
	integration bool
}

func (m *appModel) settingRows() []settingRow {
	var rows []settingRow
	for _, c := range m.app.Settings.Notifications() {
		for _, tg := range c.Toggles {
			rows = append(rows, settingRow{id: tg.ID, label: c.Title + " › " + tg.Title, on: tg.Enabled})
		}
	}
	for _, in := range m.app.Settings.Integrations() {
		rows = append(rows, settingRow{id: in.ID, label: "Integrations › " + in.Title, on: in.Connected, integration: true})
	}
	return rows
}

func (m appModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.viewTabs())
	b.WriteString("\n\n")
	if m.form != nil {
		b.WriteString(m.form.view())
	} else {
		b.WriteString(m.viewBody())
	}
	b.WriteString("\n\n")
	if n := m.board.notice; n != nil {
		b.WriteString(render.Notice(*n))
		b.WriteString("\n")
	}
	b.WriteString(lipgloss.NewStyle().Foreground(colorHelp).Render(m.helpLine()))
	return b.String()
}

func (m appModel) viewTabs() string {
	parts := make([]string, tabCount)
	for i, name := range tabNames {
		label := fmt.Sprintf("%d %s", i+1, name)
		if tab(i) == m.tab {
			parts[i] = styleTabActive.Render(label)
		} else {
			parts[i] = styleTab.Render(label)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (m appModel) viewBody() string {
	switch m.tab {
	case tabHomework:
		return m.viewHomework()
	case tabRoutine:
		return m.viewRoutine()
	case tabChat:
		return m.viewChat()
	case tabProgress:
		return render.Progress(progress.Compute(m.board.snap))
	case tabSettings:
		return m.viewSettings()
	}
	return render.Dashboard(m.app.Dashboard())
}

func cursorPrefix(on bool) string {
	if on {
		return styleCursor.Render("›") + " "
	}
	return "  "
}

func (m appModel) viewHomework() string {
	list := m.board.snap.Assignments
	if len(list) == 0 {
		return render.Assignments(nil)
	}
	c := m.selected()
	lines := make([]string, len(list))
	for i, a := range list {
		lines[i] = cursorPrefix(i == c) + render.AssignmentLine(a)
	}
	return strings.Join(lines, "\n")
}

func (m appModel) viewRoutine() string {
	items := m.board.snap.RoutineItems
	if len(items) == 0 {
		return render.Routine(nil)
	}
	c := m.selected()
	lines := make([]string, len(items))
	for i, r := range items {
		lines[i] = cursorPrefix(i == c) + render.RoutineLine(r)
	}
	return strings.Join(lines, "\n")
}

func (m appModel) viewChat() string {
	var b strings.Builder
	b.WriteString(render.Chat(m.app.Chat.Messages()))
	if m.waiting > 0 {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Foreground(colorHelp).Italic(true).Render("Assistant is typing…"))
	}
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(colorHelp).Render("Try: " + strings.Join(chat.QuickActions, " · ")))
	return b.String()
}

func (m appModel) viewSettings() string {
	dark := "off"
	if m.app.Settings.Theme() == config.ThemeDark {
		dark = "on"
	}
	lines := []string{"Dark Mode: " + dark + "  (t to toggle)", ""}
	c := m.selected()
	for i, row := range m.settingRows() {
		state := "off"
		if row.on {
			state = "on "
		}
		lines = append(lines, fmt.Sprintf("%s[%s] %s", cursorPrefix(i == c), state, row.label))
	}
	return strings.Join(lines, "\n")
}

func (m appModel) helpLine() string {
	if m.form != nil {
		return "tab/shift+tab: field   enter: save   esc: cancel   ctrl+c: quit"
	}
	switch m.tab {
	case tabHomework:
		return "j/k: move   a: add   e: edit   space: done/undo   p: priority   d: delete   t: theme   q: quit"
	case tabRoutine:
		return "j/k: move   a: add   d: delete   t: theme   tab: next   q: quit"
	case tabChat:
		return "enter: send   esc: back   tab: next   ctrl+c: quit"
	case tabSettings:
		return "j/k: move   space: toggle   t: theme   tab: next   q: quit"
	}
	return "1-6: switch screen   t: theme   tab: next   q: quit"
}
