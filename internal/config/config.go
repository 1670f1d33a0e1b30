package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config is the root configuration for studyhub, stored in
// ~/.studyhub/config.json. The file supports single-line // comments.
type Config struct {
	Appearance AppearanceConfig `json:"appearance"`
	Chat       ChatConfig       `json:"chat"`
	Dashboard  DashboardConfig  `json:"dashboard"`
}

// AppearanceConfig holds the persisted look of the terminal UI.
type AppearanceConfig struct {
	// Theme is "light" or "dark".
	Theme string `json:"theme"`
}

// ChatConfig tunes the scripted chat assistant.
type ChatConfig struct {
	// ReplyDelayMS is how long the assistant "thinks" before answering.
	ReplyDelayMS int `json:"reply_delay_ms"`
	// ReplyText is the canned answer.
	ReplyText string `json:"reply_text"`
}

// DashboardConfig controls how much the dashboard shows.
type DashboardConfig struct {
	UpcomingLimit int `json:"upcoming_limit"`
	RoutineLimit  int `json:"routine_limit"`
}

const (
	ThemeLight = "light"
	ThemeDark  = "dark"

	DefaultReplyDelayMS = 1000
	DefaultReplyText    = "I'd be happy to help you with that! Could you provide more details about what specifically you need assistance with?"

	DefaultUpcomingLimit = 3
	DefaultRoutineLimit  = 2
)

// Default returns a Config pre-filled with the built-in defaults.
func Default() Config {
	return Config{
		Appearance: AppearanceConfig{Theme: ThemeLight},
		Chat: ChatConfig{
			ReplyDelayMS: DefaultReplyDelayMS,
			ReplyText:    DefaultReplyText,
		},
		Dashboard: DashboardConfig{
			UpcomingLimit: DefaultUpcomingLimit,
			RoutineLimit:  DefaultRoutineLimit,
		},
	}
}

// configTemplate is the annotated config written on first run.
// Lines whose trimmed content starts with // are stripped before JSON parsing.
const configTemplate = `// studyhub configuration – ~/.studyhub/config.json
//
// All settings are optional; missing values fall back to built-in defaults.
// Homework and routine data are never stored here: every run starts from the
// sample data.
{
  // ── Appearance ───────────────────────────────────────────────────────────
  "appearance": {
    // "light" or "dark". Also changed with: studyhub settings theme <name>
    "theme": "light"
  },

  // ── Chat assistant ───────────────────────────────────────────────────────
  "chat": {
    // Milliseconds before the assistant replies. 0 answers at once.
    "reply_delay_ms": 1000,

    // The assistant's scripted answer. Leave empty for the default.
    "reply_text": ""
  },

  // ── Dashboard ────────────────────────────────────────────────────────────
  "dashboard": {
    // Number of open assignments listed under "Upcoming". 0 hides the list;
    // negative values fall back to the default.
    "upcoming_limit": 3,

    // Number of routine items listed under "Routine". 0 hides the list.
    "routine_limit": 2
  }
}
`

// BaseDir returns the root config directory (~/.studyhub).
func BaseDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ".studyhub"), nil
}

// FilePath returns the path to ~/.studyhub/config.json.
func FilePath() (string, error) {
	base, err := BaseDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, "config.json"), nil
}

// stripLineComments removes lines whose leading non-whitespace content starts
// with //. Only full-line comments are handled; inline comments are not stripped.
func stripLineComments(data []byte) []byte {
	var out []byte
	for _, line := range bytes.Split(data, []byte("\n")) {
		if bytes.HasPrefix(bytes.TrimLeft(line, " \t"), []byte("//")) {
			continue
		}
		out = append(out, line...)
		out = append(out, '\n')
	}
	return out
}

// Load reads ~/.studyhub/config.json, creating it with annotated defaults on
// first run.
func Load() (Config, error) {
	path, err := FilePath()
	if err != nil {
		return Default(), err
	}
	return LoadFile(path)
}

// LoadFile reads the config at path. A missing file is created from the
// annotated template and the defaults are returned.
func LoadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		if writeErr := writeDefault(path); writeErr != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not create config file %s: %v\n", path, writeErr)
		}
		return Default(), nil
	}
	if err != nil {
		return Default(), fmt.Errorf("reading config file %s: %w", path, err)
	}

	cleaned := stripLineComments(data)
	// Decode over the defaults so keys left out of the file keep them while an
	// explicit 0 is honoured.
	cfg := Default()
	if err := json.Unmarshal(cleaned, &cfg); err != nil {
		return Default(), fmt.Errorf("parsing config file %s: %w\nTip: delete the file to regenerate defaults", path, err)
	}
	if cfg.Appearance.Theme != "" && cfg.Appearance.Theme != ThemeLight && cfg.Appearance.Theme != ThemeDark {
		fmt.Fprintf(os.Stderr, "Warning: unknown theme %q in %s, using %q\n", cfg.Appearance.Theme, path, ThemeLight)
		cfg.Appearance.Theme = ""
	}
	return withDefaults(cfg), nil
}

// withDefaults replaces empty strings and negative numbers with the
// defaults. Zero is a valid delay and a valid limit.
func withDefaults(cfg Config) Config {
	def := Default()
	if cfg.Appearance.Theme == "" {
		cfg.Appearance.Theme = def.Appearance.Theme
	}
	if cfg.Chat.ReplyDelayMS < 0 {
		cfg.Chat.ReplyDelayMS = def.Chat.ReplyDelayMS
	}
	if cfg.Chat.ReplyText == "" {
		cfg.Chat.ReplyText = def.Chat.ReplyText
	}
	if cfg.Dashboard.UpcomingLimit < 0 {
		cfg.Dashboard.UpcomingLimit = def.Dashboard.UpcomingLimit
	}
	if cfg.Dashboard.RoutineLimit < 0 {
		cfg.Dashboard.RoutineLimit = def.Dashboard.RoutineLimit
	}
	return cfg
}

// Save atomically writes cfg to path as plain JSON. Comments from the
// first-run template are not preserved.
func Save(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	// Atomic write: write to temp file then rename.
	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, append(data, '\n'), 0o600); err != nil {
		return fmt.Errorf("writing temp config file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("renaming temp config file: %w", err)
	}
	return nil
}

// writeDefault creates the config directory and writes the annotated default
// config template.
func writeDefault(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(configTemplate), 0o600); err != nil {
		return fmt.Errorf("writing default config: %w", err)
	}
	return nil
}
