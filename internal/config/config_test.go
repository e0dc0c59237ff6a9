package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	chesserrors "github.com/lgbarn/chesscore-go/internal/errors"
)

func envMap(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

// TestDefault_Valid verifies the built-in configuration passes validation.
func TestDefault_Valid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Default().Validate() error: %v", err)
	}
	if cfg.Log.Level != "warn" {
		t.Errorf("Log.Level = %q, want warn", cfg.Log.Level)
	}
	if !cfg.Display.Color {
		t.Error("Display.Color should be true by default")
	}
	if cfg.Hub.MaxGames != 64 {
		t.Errorf("Hub.MaxGames = %d, want 64", cfg.Hub.MaxGames)
	}
	if cfg.Game.Position != "" {
		t.Errorf("Game.Position = %q, want empty", cfg.Game.Position)
	}
}

func TestDecode(t *testing.T) {
	input := `
log:
  level: debug
  format: json
display:
  color: false
  glyphs: unicode
hub:
  max_games: 3
game:
  position: "4k3/8/8/8/8/8/8/4K3 b"
`
	cfg := Default()
	if err := cfg.Decode(strings.NewReader(input)); err != nil {
		t.Fatalf("Decode() error: %v", err)
	}

	if cfg.Log.Level != "debug" || cfg.Log.Format != "json" {
		t.Errorf("Log = %+v, want debug/json", cfg.Log)
	}
	if cfg.Display.Color || cfg.Display.Glyphs != "unicode" {
		t.Errorf("Display = %+v, want no color, unicode", cfg.Display)
	}
	if cfg.Hub.MaxGames != 3 {
		t.Errorf("Hub.MaxGames = %d, want 3", cfg.Hub.MaxGames)
	}
	// Keys absent from the file keep their defaults.
	if cfg.Hub.QueueSize != 8 {
		t.Errorf("Hub.QueueSize = %d, want default 8", cfg.Hub.QueueSize)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() error: %v", err)
	}
}

func TestDecode_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"unknown key", "log:\n  colour: true\n"},
		{"wrong type", "hub:\n  max_games: many\n"},
		{"not a mapping", "- a\n- b\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Default().Decode(strings.NewReader(tt.input))
			if !errors.Is(err, chesserrors.ErrInvalidConfig) {
				t.Errorf("Decode() error = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestDecode_Empty(t *testing.T) {
	cfg := Default()
	if err := cfg.Decode(strings.NewReader("  \n")); err != nil {
		t.Fatalf("Decode(empty) error: %v", err)
	}
	if *cfg != *Default() {
		t.Errorf("empty file changed config: %+v", cfg)
	}
}

func TestApplyEnv(t *testing.T) {
	cfg := Default()
	err := cfg.ApplyEnv(envMap(map[string]string{
		"CHESS_LOG_LEVEL":  " INFO ",
		"CHESS_LOG_FORMAT": "json",
		"CHESS_LOG_CALLER": "true",
		"CHESS_COLOR":      "false",
		"CHESS_GLYPHS":     "Unicode",
		"CHESS_MAX_GAMES":  "5",
		"CHESS_QUEUE_SIZE": "2",
		"CHESS_POSITION":   "8/8/8/8/8/8/8/K6k w",
	}))
	if err != nil {
		t.Fatalf("ApplyEnv() error: %v", err)
	}

	want := Config{
		Log:     LogConfig{Level: "info", Format: "json", Caller: true},
		Display: DisplayConfig{Color: false, Glyphs: "unicode"},
		Hub:     HubConfig{MaxGames: 5, QueueSize: 2},
		Game:    GameConfig{Position: "8/8/8/8/8/8/8/K6k w"},
	}
	if *cfg != want {
		t.Errorf("ApplyEnv() = %+v, want %+v", *cfg, want)
	}
}

func TestApplyEnv_BlankIgnored(t *testing.T) {
	cfg := Default()
	if err := cfg.ApplyEnv(envMap(map[string]string{"CHESS_LOG_LEVEL": "   "})); err != nil {
		t.Fatalf("ApplyEnv() error: %v", err)
	}
	if cfg.Log.Level != "warn" {
		t.Errorf("Log.Level = %q, want unchanged warn", cfg.Log.Level)
	}
}

func TestApplyEnv_Errors(t *testing.T) {
	for _, key := range []string{"CHESS_LOG_CALLER", "CHESS_COLOR", "CHESS_MAX_GAMES", "CHESS_QUEUE_SIZE"} {
		t.Run(key, func(t *testing.T) {
			err := Default().ApplyEnv(envMap(map[string]string{key: "maybe"}))
			if !errors.Is(err, chesserrors.ErrInvalidConfig) {
				t.Errorf("ApplyEnv(%s=maybe) error = %v, want ErrInvalidConfig", key, err)
			}
			if err != nil && !strings.Contains(err.Error(), key) {
				t.Errorf("error %q should name %s", err, key)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"log level", func(c *Config) { c.Log.Level = "verbose" }},
		{"log format", func(c *Config) { c.Log.Format = "xml" }},
		{"glyphs", func(c *Config) { c.Display.Glyphs = "emoji" }},
		{"max games", func(c *Config) { c.Hub.MaxGames = 0 }},
		{"queue size", func(c *Config) { c.Hub.QueueSize = -1 }},
		{"position", func(c *Config) { c.Game.Position = "8/8/8" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)
			err := cfg.Validate()
			if !errors.Is(err, chesserrors.ErrInvalidConfig) {
				t.Errorf("Validate() error = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestValidate_PositionKeepsPlacementError(t *testing.T) {
	cfg := Default()
	cfg.Game.Position = "8/8/8/8/8/8/8/8 x"
	err := cfg.Validate()
	if !errors.Is(err, chesserrors.ErrInvalidPlacement) {
		t.Errorf("Validate() error = %v, want ErrInvalidPlacement in chain", err)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "chessplay.yaml")
	if err := os.WriteFile(path, []byte("log:\n  level: error\nhub:\n  max_games: 4\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("CHESS_MAX_GAMES", "9")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Log.Level != "error" {
		t.Errorf("Log.Level = %q, want error from file", cfg.Log.Level)
	}
	if cfg.Hub.MaxGames != 9 {
		t.Errorf("Hub.MaxGames = %d, want 9 from environment", cfg.Hub.MaxGames)
	}
}

func TestLoad_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
			t.Error("Load() expected error for missing file")
		}
	})

	t.Run("invalid after env", func(t *testing.T) {
		t.Setenv("CHESS_LOG_FORMAT", "xml")
		_, err := Load("")
		if !errors.Is(err, chesserrors.ErrInvalidConfig) {
			t.Errorf("Load() error = %v, want ErrInvalidConfig", err)
		}
	})
}
