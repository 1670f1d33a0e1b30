package settings_test

import (
	"errors"
	"testing"

	"github.com/Tiliavir/studyhub/internal/settings"
)

func TestToggleNotification(t *testing.T) {
	s := settings.New("light")

	got, err := s.ToggleNotification("evening-routine")
	if err != nil {
		t.Fatalf("ToggleNotification: %v", err)
	}
	if !got.Enabled {
		t.Error("evening-routine should now be enabled")
	}

	for _, c := range s.Notifications() {
		for _, tg := range c.Toggles {
			if tg.ID == "evening-routine" && !tg.Enabled {
				t.Error("toggle not persisted in settings")
			}
		}
	}

	if _, err := s.ToggleNotification("nope"); !errors.Is(err, settings.ErrUnknownSetting) {
		t.Errorf("err = %v, want ErrUnknownSetting", err)
	}
}

func TestNotificationsIsACopy(t *testing.T) {
	s := settings.New("light")
	cats := s.Notifications()
	cats[0].Toggles[0].Enabled = false

	if !s.Notifications()[0].Toggles[0].Enabled {
		t.Error("mutating the returned categories changed the settings")
	}
}

func TestToggleIntegration(t *testing.T) {
	s := settings.New("light")

	got, err := s.ToggleIntegration("google-calendar")
	if err != nil {
		t.Fatalf("ToggleIntegration: %v", err)
	}
	if got.Connected {
		t.Error("google-calendar should now be disconnected")
	}

	got, err = s.ToggleIntegration("webhooks")
	if err != nil {
		t.Fatal(err)
	}
	if !got.Connected {
		t.Error("webhooks should now be connected")
	}

	if _, err := s.ToggleIntegration("fax"); !errors.Is(err, settings.ErrUnknownSetting) {
		t.Errorf("err = %v, want ErrUnknownSetting", err)
	}
}

func TestTheme(t *testing.T) {
	s := settings.New("light")
	s.SetTheme("dark")
	if got := s.Theme(); got != "dark" {
		t.Errorf("Theme() = %q, want dark", got)
	}
}
