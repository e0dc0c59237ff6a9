// Package config provides configuration for the chessplay shell and the
// game hub.
//
// Values are resolved in three layers: built-in defaults, an optional YAML
// file, then CHESS_* environment variables. Validate runs last.
package config

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/lgbarn/chesscore-go/internal/engine"
	"github.com/lgbarn/chesscore-go/internal/errors"
)

// Config holds all program configuration.
type Config struct {
	Log     LogConfig     `yaml:"log"`
	Display DisplayConfig `yaml:"display"`
	Hub     HubConfig     `yaml:"hub"`
	Game    GameConfig    `yaml:"game"`
}

// LogConfig controls logger construction.
type LogConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // console or json
	Caller bool   `yaml:"caller"`
}

// DisplayConfig controls board rendering in the shell.
type DisplayConfig struct {
	Color  bool   `yaml:"color"`
	Glyphs string `yaml:"glyphs"` // letters or unicode
}

// HubConfig sizes the game hub.
type HubConfig struct {
	MaxGames  int `yaml:"max_games"`
	QueueSize int `yaml:"queue_size"`
}

// GameConfig sets up new games.
type GameConfig struct {
	// Position is a piece placement optionally followed by the side to
	// move. Empty means the standard starting position.
	Position string `yaml:"position"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Log: LogConfig{
			Level:  "warn",
			Format: "console",
		},
		Display: DisplayConfig{
			Color:  true,
			Glyphs: "letters",
		},
		Hub: HubConfig{
			MaxGames:  64,
			QueueSize: 8,
		},
	}
}

// Load builds a configuration from defaults, the YAML file at path (skipped
// when path is empty) and the process environment, then validates it.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open config: %w", err)
		}
		defer f.Close()
		if err := cfg.Decode(f); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
	}
	if err := cfg.ApplyEnv(os.Getenv); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Decode overlays YAML from r onto cfg. Unknown keys are rejected.
func (c *Config) Decode(r io.Reader) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil {
		return errors.Wrapf(errors.ErrInvalidConfig, "decode yaml: %v", err)
	}
	return nil
}

// ApplyEnv overlays CHESS_* variables read through getenv. Blank values
// are ignored.
func (c *Config) ApplyEnv(getenv func(string) string) error {
	lookup := func(key string) (string, bool) {
		v := strings.TrimSpace(getenv(key))
		return v, v != ""
	}

	if v, ok := lookup("CHESS_LOG_LEVEL"); ok {
		c.Log.Level = strings.ToLower(v)
	}
	if v, ok := lookup("CHESS_LOG_FORMAT"); ok {
		c.Log.Format = strings.ToLower(v)
	}
	if v, ok := lookup("CHESS_LOG_CALLER"); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return envError("CHESS_LOG_CALLER", v)
		}
		c.Log.Caller = b
	}
	if v, ok := lookup("CHESS_COLOR"); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return envError("CHESS_COLOR", v)
		}
		c.Display.Color = b
	}
	if v, ok := lookup("CHESS_GLYPHS"); ok {
		c.Display.Glyphs = strings.ToLower(v)
	}
	if v, ok := lookup("CHESS_MAX_GAMES"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return envError("CHESS_MAX_GAMES", v)
		}
		c.Hub.MaxGames = n
	}
	if v, ok := lookup("CHESS_QUEUE_SIZE"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return envError("CHESS_QUEUE_SIZE", v)
		}
		c.Hub.QueueSize = n
	}
	if v, ok := lookup("CHESS_POSITION"); ok {
		c.Game.Position = v
	}
	return nil
}

func envError(key, value string) error {
	return errors.Wrapf(errors.ErrInvalidConfig, "%s=%q", key, value)
}

// Validate checks that all values are usable.
func (c *Config) Validate() error {
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return errors.Wrapf(errors.ErrInvalidConfig, "log level %q", c.Log.Level)
	}
	switch c.Log.Format {
	case "console", "json":
	default:
		return errors.Wrapf(errors.ErrInvalidConfig, "log format %q", c.Log.Format)
	}
	switch c.Display.Glyphs {
	case "letters", "unicode":
	default:
		return errors.Wrapf(errors.ErrInvalidConfig, "glyphs %q", c.Display.Glyphs)
	}
	if c.Hub.MaxGames < 1 {
		return errors.Wrapf(errors.ErrInvalidConfig, "max games %d", c.Hub.MaxGames)
	}
	if c.Hub.QueueSize < 1 {
		return errors.Wrapf(errors.ErrInvalidConfig, "queue size %d", c.Hub.QueueSize)
	}
	if c.Game.Position != "" {
		if _, _, err := engine.ParsePosition(c.Game.Position); err != nil {
			return fmt.Errorf("position: %w: %w", errors.ErrInvalidConfig, err)
		}
	}
	return nil
}
