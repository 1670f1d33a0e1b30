package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Tiliavir/studyhub/internal/app"
	"github.com/Tiliavir/studyhub/internal/chat"
	"github.com/Tiliavir/studyhub/internal/config"
	"github.com/Tiliavir/studyhub/internal/render"
)

func init() {
	render.DisableColor()
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(t *testing.T, m appModel, msgs ...tea.Msg) appModel {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(appModel)
	}
	return m
}

func newTestModel(t *testing.T) appModel {
	t.Helper()
	a := app.New(config.Default(), app.WithReplyProvider(chat.Canned{Text: "Sure, let's work through it."}))
	m := newAppModel(a)
	t.Cleanup(m.close)
	return m
}

func TestTabSwitching(t *testing.T) {
	m := newTestModel(t)
	if m.tab != tabDashboard {
		t.Fatalf("initial tab = %d", m.tab)
	}
	m = press(t, m, runes("3"))
	if m.tab != tabRoutine {
		t.Fatalf("after 3: tab = %d", m.tab)
	}
	m = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.tab != tabChat {
		t.Fatalf("after tab: tab = %d", m.tab)
	}
	m = press(t, m, tea.KeyMsg{Type: tea.KeyShiftTab}, tea.KeyMsg{Type: tea.KeyShiftTab}, tea.KeyMsg{Type: tea.KeyShiftTab}, tea.KeyMsg{Type: tea.KeyShiftTab})
	if m.tab != tabSettings {
		t.Fatalf("shift+tab should wrap: tab = %d", m.tab)
	}
}

func TestToggleAssignmentFromHomeworkTab(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, runes("2"), runes(" "))

	a, ok := m.app.Store.Assignment(1)
	if !ok || !a.Completed {
		t.Fatalf("assignment 1 = %+v, want completed", a)
	}
	if !m.board.snap.Assignments[0].Completed {
		t.Error("board snapshot not refreshed by the store listener")
	}
	if m.board.notice == nil || m.board.notice.Title != "Assignment Completed" {
		t.Errorf("notice = %+v", m.board.notice)
	}
	if !strings.Contains(m.View(), "Assignment Completed") {
		t.Error("view does not show the notice")
	}
}

func TestCyclePriority(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, runes("2"), runes("p"))
	a, _ := m.app.Store.Assignment(1)
	if a.Priority != "medium" {
		t.Errorf("priority after one cycle = %q, want medium", a.Priority)
	}
}

func TestDeleteRoutineClampsCursor(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, runes("3"))
	for range 20 {
		m = press(t, m, runes("j"))
	}
	if m.cursor[tabRoutine] != 7 {
		t.Fatalf("cursor = %d, want 7", m.cursor[tabRoutine])
	}
	m = press(t, m, runes("d"))

	if _, ok := m.app.Store.RoutineItem(8); ok {
		t.Error("routine item 8 still present")
	}
	if m.cursor[tabRoutine] != 6 {
		t.Errorf("cursor after delete = %d, want 6", m.cursor[tabRoutine])
	}
	if m.board.notice == nil || m.board.notice.Title != "Routine Deleted" {
		t.Errorf("notice = %+v", m.board.notice)
	}
}

func TestChatSend(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, runes("4"), runes("q"), runes("!"))
	if m.quitting {
		t.Fatal("q on the chat tab should type, not quit")
	}
	if got := m.input.Value(); got != "q!" {
		t.Fatalf("input = %q", got)
	}

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(appModel)
	if cmd == nil {
		t.Fatal("enter returned no command")
	}
	if m.input.Value() != "" {
		t.Error("input not cleared after send")
	}
	if !strings.Contains(m.View(), "Assistant is typing") {
		t.Error("view missing typing indicator")
	}

	m = press(t, m, cmd())
	if m.waiting != 0 {
		t.Errorf("waiting = %d after reply", m.waiting)
	}
	msgs := m.app.Chat.Messages()
	if len(msgs) != 5 {
		t.Fatalf("got %d messages, want 5", len(msgs))
	}
	if msgs[3].Content != "q!" || msgs[4].Content != "Sure, let's work through it." {
		t.Errorf("last two messages = %+v", msgs[3:])
	}
}

func TestChatSendEmpty(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, runes("4"), tea.KeyMsg{Type: tea.KeyEnter})
	if len(m.app.Chat.Messages()) != 3 {
		t.Error("empty message was sent")
	}
	if m.board.notice == nil || !m.board.notice.Destructive {
		t.Errorf("notice = %+v, want destructive error", m.board.notice)
	}
}

func TestSettingsToggle(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, runes("6"), runes("j"), runes("j"), runes("j"), runes(" "))

	var enabled bool
	for _, c := range m.app.Settings.Notifications() {
		for _, tg := range c.Toggles {
			if tg.ID == "evening-routine" {
				enabled = tg.Enabled
			}
		}
	}
	if !enabled {
		t.Error("evening-routine not toggled on")
	}
	if m.board.notice == nil || m.board.notice.Title != "Evening Routine Enabled" {
		t.Errorf("notice = %+v", m.board.notice)
	}
}

func TestThemeToggle(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, runes("t"))
	if got := m.app.Settings.Theme(); got != config.ThemeDark {
		t.Errorf("theme = %q, want dark", got)
	}
	if !strings.Contains(m.View(), "Dark Mode Enabled") {
		t.Error("view missing theme notice")
	}
	render.ApplyTheme(config.ThemeLight)
}

func TestQuit(t *testing.T) {
	m := newTestModel(t)
	next, cmd := m.Update(runes("q"))
	if cmd == nil {
		t.Fatal("q returned no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q did not quit")
	}
	if next.(appModel).View() != "" {
		t.Error("view not blank after quit")
	}
}

func TestAddAssignmentForm(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, runes("2"), runes("a"))
	if m.form == nil {
		t.Fatal("a did not open the form")
	}
	m = press(t, m,
		runes("Read chapter 4"), tea.KeyMsg{Type: tea.KeyTab},
		runes("english"), tea.KeyMsg{Type: tea.KeyTab},
		runes("tomorrow"), tea.KeyMsg{Type: tea.KeyTab},
		runes("16:30"), tea.KeyMsg{Type: tea.KeyTab},
		tea.KeyMsg{Type: tea.KeyTab},
		runes("y"), tea.KeyMsg{Type: tea.KeyEnter},
	)

	if m.form != nil {
		t.Fatal("form still open after a valid submit")
	}
	list := m.app.Store.Assignments()
	if len(list) != 4 {
		t.Fatalf("got %d assignments, want 4", len(list))
	}
	got := list[3]
	if got.Title != "Read chapter 4" || got.Subject != "English" || got.DueDate != "Due Tomorrow" || got.DueTime != "4:30 PM" || got.Priority != "high" {
		t.Errorf("added = %+v", got)
	}
	if m.cursor[tabHomework] != 3 {
		t.Errorf("cursor = %d, want the new row", m.cursor[tabHomework])
	}
	if view := m.View(); !strings.Contains(view, "Read chapter 4") || !strings.Contains(view, "Assignment Added") {
		t.Errorf("view missing new assignment or notice:\n%s", view)
	}
}

func TestAddAssignmentFormValidation(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, runes("2"), runes("a"), runes("q"), tea.KeyMsg{Type: tea.KeyEnter})

	if m.quitting {
		t.Fatal("q inside the form should type, not quit")
	}
	if m.form == nil {
		t.Fatal("form closed on a validation error")
	}
	if n := len(m.app.Store.Assignments()); n != 3 {
		t.Errorf("store changed: %d assignments", n)
	}
	if m.board.notice == nil || !m.board.notice.Destructive || !strings.Contains(m.board.notice.Description, "subject is missing") {
		t.Errorf("notice = %+v", m.board.notice)
	}

	m = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.form != nil {
		t.Error("esc did not close the form")
	}
	if m.tab != tabHomework {
		t.Errorf("esc left the homework tab: %d", m.tab)
	}
}

func TestEditAssignmentForm(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, runes("2"), runes("e"), runes(" II"),
		tea.KeyMsg{Type: tea.KeyTab}, tea.KeyMsg{Type: tea.KeyTab}, tea.KeyMsg{Type: tea.KeyTab},
		runes("08:15"), tea.KeyMsg{Type: tea.KeyEnter},
	)
	if m.form != nil {
		t.Fatalf("form still open, notice = %+v", m.board.notice)
	}
	a, _ := m.app.Store.Assignment(1)
	if a.Title != "Algebra Assignment II" || a.DueTime != "8:15 AM" || a.DueDate != "Due Today" {
		t.Errorf("edited = %+v", a)
	}
	if m.board.notice == nil || m.board.notice.Title != "Assignment Updated" {
		t.Errorf("notice = %+v", m.board.notice)
	}
}

func TestAddRoutineForm(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, runes("3"), runes("a"),
		runes("Gym"), tea.KeyMsg{Type: tea.KeyTab},
		runes("18:00-19:00"), tea.KeyMsg{Type: tea.KeyTab},
		runes("fun"), tea.KeyMsg{Type: tea.KeyTab},
		runes("green"), tea.KeyMsg{Type: tea.KeyTab},
		runes("mon, fri"), tea.KeyMsg{Type: tea.KeyEnter},
	)
	items := m.app.Store.RoutineItems()
	if len(items) != 9 {
		t.Fatalf("got %d routine items, want 9", len(items))
	}
	got := items[8]
	if got.Title != "Gym" || got.Time != "6:00 PM - 7:00 PM" || got.Color != "green" || len(got.Days) != 2 {
		t.Errorf("added = %+v", got)
	}
	if !strings.Contains(m.View(), "Gym") {
		t.Error("view missing new routine item")
	}
}

func TestAddRoutineFormRejectsColor(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, runes("3"), runes("a"),
		runes("Gym"), tea.KeyMsg{Type: tea.KeyTab},
		runes("18:00"), tea.KeyMsg{Type: tea.KeyTab}, tea.KeyMsg{Type: tea.KeyTab},
		runes("teal"), tea.KeyMsg{Type: tea.KeyEnter},
	)
	if n := len(m.app.Store.RoutineItems()); n != 8 {
		t.Errorf("store changed: %d routine items", n)
	}
	if m.form == nil || m.board.notice == nil || !strings.Contains(m.board.notice.Description, "invalid color") {
		t.Errorf("form = %v, notice = %+v", m.form != nil, m.board.notice)
	}
}

func TestFormKeyIgnoredOnOtherTabs(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, runes("5"), runes("a"), runes("e"))
	if m.form != nil {
		t.Error("form opened on the progress tab")
	}
}
