package settings

import (
	"errors"
	"fmt"
	"sync"
)

// ErrUnknownSetting is returned when toggling an id that does not exist.
var ErrUnknownSetting = errors.New("unknown setting")

// Toggle is a single on/off preference.
type Toggle struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Enabled     bool   `json:"enabled"`
}

// Category groups notification toggles under a heading.
type Category struct {
	Title   string   `json:"title"`
	Toggles []Toggle `json:"toggles"`
}

// Integration is an external tool the user can mark as connected. No
// connection is ever made; only the flag changes.
type Integration struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Connected   bool   `json:"connected"`
}

// Settings is the in-memory settings area.
type Settings struct {
	mu            sync.Mutex
	theme         string
	notifications []Category
	integrations  []Integration
}

// New returns settings seeded with the default preferences.
func New(theme string) *Settings {
	return &Settings{
		theme: theme,
		notifications: []Category{
			{
				Title: "Assignment Reminders",
				Toggles: []Toggle{
					{ID: "upcoming-deadlines", Title: "Upcoming Deadlines", Description: "Notify me about assignments due soon", Enabled: true},
					{ID: "new-grades", Title: "New Grades", Description: "Notify me when a new grade is posted", Enabled: true},
				},
			},
			{
				Title: "Routine Reminders",
				Toggles: []Toggle{
					{ID: "morning-routine", Title: "Morning Routine", Description: "Remind me to start my morning tasks", Enabled: true},
					{ID: "evening-routine", Title: "Evening Routine", Description: "Remind me to wind down for the night", Enabled: false},
				},
			},
			{
				Title: "AI Assistant",
				Toggles: []Toggle{
					{ID: "daily-briefing", Title: "Daily Briefing", Description: "Get a summary of your day", Enabled: true},
					{ID: "smart-suggestions", Title: "Smart Suggestions", Description: "Receive productive study tips", Enabled: true},
				},
			},
		},
		integrations: []Integration{
			{ID: "google-calendar", Title: "Google Calendar", Description: "Sync your assignments and routines", Connected: true},
			{ID: "email", Title: "Email Notifications", Description: "Receive reminders via email", Connected: true},
			{ID: "mobile", Title: "Mobile Push", Description: "Get notifications on your phone", Connected: false},
			{ID: "webhooks", Title: "Webhooks", Description: "Connect with external tools", Connected: false},
		},
	}
}

// Theme returns the current theme name.
func (s *Settings) Theme() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.theme
}

// SetTheme replaces the theme name. Validation is the caller's job.
func (s *Settings) SetTheme(theme string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.theme = theme
}

// Notifications returns a copy of the notification categories.
func (s *Settings) Notifications() []Category {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Category, len(s.notifications))
	for i, c := range s.notifications {
		out[i] = Category{Title: c.Title, Toggles: append([]Toggle(nil), c.Toggles...)}
	}
	return out
}

// ToggleNotification flips the notification with the given id and returns
// its new state.
func (s *Settings) ToggleNotification(id string) (Toggle, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for ci := range s.notifications {
		toggles := s.notifications[ci].Toggles
		for ti := range toggles {
			if toggles[ti].ID == id {
				toggles[ti].Enabled = !toggles[ti].Enabled
				return toggles[ti], nil
			}
		}
	}
	return Toggle{}, fmt.Errorf("notification %q: %w", id, ErrUnknownSetting)
}

// Integrations returns a copy of the integrations list.
func (s *Settings) Integrations() []Integration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Integration(nil), s.integrations...)
}

// ToggleIntegration flips the connected flag of the integration with the
// given id and returns its new state.
func (s *Settings) ToggleIntegration(id string) (Integration, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.integrations {
		if s.integrations[i].ID == id {
			s.integrations[i].Connected = !s.integrations[i].Connected
			return s.integrations[i], nil
		}
	}
	return Integration{}, fmt.Errorf("integration %q: %w", id, ErrUnknownSetting)
}
