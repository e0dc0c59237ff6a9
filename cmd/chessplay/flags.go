// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/lgbarn/chesscore-go/internal/config"
)

var (
	configFile = flag.String("config", "", "YAML configuration file")
	position   = flag.String("position", "", "Starting placement, optionally followed by w or b")
	noColor    = flag.Bool("no-color", false, "Disable coloured board output")
	useUnicode = flag.Bool("unicode", false, "Draw pieces with Unicode chess symbols")
	logLevel   = flag.String("log-level", "", "Log level: debug, info, warn, error")
	logFormat  = flag.String("log-format", "", "Log format: console, json")
	help       = flag.Bool("h", false, "Show help")
	version    = flag.Bool("version", false, "Show version")
)

// applyFlags overlays command-line flags onto cfg. Flags left at their
// zero value keep the configured setting.
func applyFlags(cfg *config.Config) {
	if *position != "" {
		cfg.Game.Position = *position
	}
	if *noColor {
		cfg.Display.Color = false
	}
	if *useUnicode {
		cfg.Display.Glyphs = "unicode"
	}
	if *logLevel != "" {
		cfg.Log.Level = *logLevel
	}
	if *logFormat != "" {
		cfg.Log.Format = *logFormat
	}
}
