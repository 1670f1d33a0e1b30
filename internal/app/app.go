// Package app is the composition root: it builds the store, settings and
// chat transcript and exposes the operations screens perform on them,
// including the form validation that happens before the store is touched.
package app

import (
	"fmt"
	"time"

	"github.com/Tiliavir/studyhub/internal/chat"
	"github.com/Tiliavir/studyhub/internal/config"
	"github.com/Tiliavir/studyhub/internal/model"
	"github.com/Tiliavir/studyhub/internal/progress"
	"github.com/Tiliavir/studyhub/internal/settings"
	"github.com/Tiliavir/studyhub/internal/store"
)

// Notice is a transient confirmation shown after an operation.
type Notice struct {
	Title       string
	Description string
	Destructive bool
}

// App holds application state for one session.
type App struct {
	Store    *store.Store
	Settings *settings.Settings
	Chat     *chat.Transcript

	cfg        config.Config
	configPath string
	provider   chat.ReplyProvider
	notify     func(Notice)
	now        func() time.Time
}

// Option customises New.
type Option func(*App)

// WithNoticeSink delivers every notice to fn.
func WithNoticeSink(fn func(Notice)) Option {
	return func(a *App) { a.notify = fn }
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(a *App) { a.now = now }
}

// WithReplyProvider replaces the canned chat assistant.
func WithReplyProvider(p chat.ReplyProvider) Option {
	return func(a *App) { a.provider = p }
}

// WithConfigPath makes theme changes persist to the config file at path.
func WithConfigPath(path string) Option {
	return func(a *App) { a.configPath = path }
}

// WithStore replaces the seeded store.
func WithStore(s *store.Store) Option {
	return func(a *App) { a.Store = s }
}

// New builds an App from cfg, starting from the seed data.
func New(cfg config.Config, opts ...Option) *App {
	a := &App{
		cfg:    cfg,
		notify: func(Notice) {},
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.Store == nil {
		a.Store = store.NewSeeded()
	}
	if a.provider == nil {
		a.provider = chat.Canned{
			Delay: time.Duration(cfg.Chat.ReplyDelayMS) * time.Millisecond,
			Text:  cfg.Chat.ReplyText,
		}
	}
	a.Settings = settings.New(cfg.Appearance.Theme)
	a.Chat = chat.NewTranscript(a.provider)
	return a
}

// SetNoticeSink redirects notices to fn, e.g. when a different screen takes
// over the terminal.
func (a *App) SetNoticeSink(fn func(Notice)) {
	if fn == nil {
		fn = func(Notice) {}
	}
	a.notify = fn
}

// Now returns the current time of the app's clock.
func (a *App) Now() time.Time {
	return a.now()
}

// Config returns the configuration the app was built with, including any
// theme change made since.
func (a *App) Config() config.Config {
	return a.cfg
}

// QuickAction is a dashboard shortcut to another screen.
type QuickAction struct {
	Title   string
	Command string
}

// Dashboard is what the home screen shows.
type Dashboard struct {
	Upcoming     []model.Assignment
	Routine      []model.RoutineItem
	QuickActions []QuickAction
}

// Dashboard selects the first open assignments and the first routine items,
// in store order.
func (a *App) Dashboard() Dashboard {
	snap := a.Store.Snapshot()

	upcomingLimit := max(a.cfg.Dashboard.UpcomingLimit, 0)
	routineLimit := max(a.cfg.Dashboard.RoutineLimit, 0)

	upcoming := make([]model.Assignment, 0, upcomingLimit)
	for _, as := range snap.Assignments {
		if len(upcoming) == upcomingLimit {
			break
		}
		if !as.Completed {
			upcoming = append(upcoming, as)
		}
	}

	routine := snap.RoutineItems
	if len(routine) > routineLimit {
		routine = routine[:routineLimit]
	}

	return Dashboard{
		Upcoming: upcoming,
		Routine:  routine,
		QuickActions: []QuickAction{
			{Title: "AI Chat", Command: "chat"},
			{Title: "New Task", Command: "homework add"},
		},
	}
}

// Progress summarises the current store state.
func (a *App) Progress() progress.Report {
	return progress.Compute(a.Store.Snapshot())
}

// SetTheme switches between light and dark and persists the choice when a
// config path was given.
func (a *App) SetTheme(theme string) error {
	if theme != config.ThemeLight && theme != config.ThemeDark {
		return &ValidationError{Field: "theme", Reason: fmt.Sprintf("must be %q or %q", config.ThemeLight, config.ThemeDark)}
	}
	a.Settings.SetTheme(theme)
	a.cfg.Appearance.Theme = theme
	if a.configPath != "" {
		if err := config.Save(a.configPath, a.cfg); err != nil {
			return fmt.Errorf("saving theme: %w", err)
		}
	}
	title := "Light Mode Enabled"
	if theme == config.ThemeDark {
		title = "Dark Mode Enabled"
	}
	a.notify(Notice{Title: title, Description: "Appearance has been updated."})
	return nil
}

// ToggleNotification flips a notification preference.
func (a *App) ToggleNotification(id string) (settings.Toggle, error) {
	tg, err := a.Settings.ToggleNotification(id)
	if err != nil {
		return tg, err
	}
	if tg.Enabled {
		a.notify(Notice{Title: tg.Title + " Enabled", Description: tg.Description})
	} else {
		a.notify(Notice{Title: tg.Title + " Disabled", Description: tg.Title + " notifications have been turned off."})
	}
	return tg, nil
}

// ToggleIntegration flips an integration's connected flag.
func (a *App) ToggleIntegration(id string) (settings.Integration, error) {
	in, err := a.Settings.ToggleIntegration(id)
	if err != nil {
		return in, err
	}
	if in.Connected {
		a.notify(Notice{Title: in.Title + " Connected", Description: in.Title + " has been successfully connected."})
	} else {
		a.notify(Notice{Title: in.Title + " Disconnected", Description: in.Title + " has been disconnected."})
	}
	return in, nil
}
