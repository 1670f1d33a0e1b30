package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Tiliavir/studyhub/internal/config"
)

func TestLoadFileCreatesTemplate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.json")

	cfg, err := config.LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile on missing file: %v", err)
	}
	if cfg != config.Default() {
		t.Errorf("LoadFile = %+v, want defaults", cfg)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("template not written: %v", err)
	}

	// The written template must itself parse back to the defaults.
	again, err := config.LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile on template: %v", err)
	}
	if again != config.Default() {
		t.Errorf("template parsed to %+v, want defaults", again)
	}
}

func TestLoadFilePartialWithComments(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	data := `// my settings
{
  // dark please
  "appearance": {"theme": "dark"},
  "dashboard": {"upcoming_limit": 5}
}
`
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := config.LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if cfg.Appearance.Theme != config.ThemeDark {
		t.Errorf("theme = %q, want dark", cfg.Appearance.Theme)
	}
	if cfg.Dashboard.UpcomingLimit != 5 {
		t.Errorf("upcoming_limit = %d, want 5", cfg.Dashboard.UpcomingLimit)
	}
	if cfg.Dashboard.RoutineLimit != config.DefaultRoutineLimit {
		t.Errorf("routine_limit = %d, want default %d", cfg.Dashboard.RoutineLimit, config.DefaultRoutineLimit)
	}
	if cfg.Chat.ReplyText != config.DefaultReplyText {
		t.Errorf("reply_text = %q, want default", cfg.Chat.ReplyText)
	}
}

func TestLoadFileUnknownTheme(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{"appearance": {"theme": "neon"}}`), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, err := config.LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if cfg.Appearance.Theme != config.ThemeLight {
		t.Errorf("theme = %q, want light", cfg.Appearance.Theme)
	}
}

func TestLoadFileCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte("{bad json"), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, err := config.LoadFile(path)
	if err == nil {
		t.Fatal("expected error for corrupt JSON, got nil")
	}
	if cfg != config.Default() {
		t.Errorf("corrupt file should still yield defaults, got %+v", cfg)
	}
}

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	cfg := config.Default()
	cfg.Appearance.Theme = config.ThemeDark
	cfg.Chat.ReplyDelayMS = 250

	if err := config.Save(path, cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Error("temp file left behind after Save")
	}

	loaded, err := config.LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile after Save: %v", err)
	}
	if loaded != cfg {
		t.Errorf("loaded = %+v, want %+v", loaded, cfg)
	}
}

func TestLoadUsesHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	if _, err := config.Load(); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if _, err := os.Stat(filepath.Join(home, ".studyhub", "config.json")); err != nil {
		t.Errorf("config not created under HOME: %v", err)
	}
}

func TestLoadFileZeroAndNegativeValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	data := `{
  "chat": {"reply_delay_ms": 0},
  "dashboard": {"upcoming_limit": 0, "routine_limit": -2}
}`
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := config.LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if cfg.Chat.ReplyDelayMS != 0 {
		t.Errorf("reply_delay_ms = %d, want explicit 0 kept", cfg.Chat.ReplyDelayMS)
	}
	if cfg.Dashboard.UpcomingLimit != 0 {
		t.Errorf("upcoming_limit = %d, want explicit 0 kept", cfg.Dashboard.UpcomingLimit)
	}
	if cfg.Dashboard.RoutineLimit != config.DefaultRoutineLimit {
		t.Errorf("routine_limit = %d, want default for negative value", cfg.Dashboard.RoutineLimit)
	}
}
