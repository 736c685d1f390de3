// Package config reads AstroVerse settings from the environment.
package config

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Glamour style names accepted by ASTROVERSE_STYLE.
const (
	StyleAuto  = "auto"
	StyleDark  = "dark"
	StyleLight = "light"
	StyleNoTTY = "notty"
)

// Config holds the ambient settings. Catalog data is not configurable here;
// it lives in the catalog package.
type Config struct {
	LogFile   string
	LogLevel  slog.Level
	AltScreen bool
	Style     string
	WrapWidth int
}

// DefaultConfig returns a Config with logging disabled.
func DefaultConfig() Config {
	return Config{
		LogFile:   "",
		LogLevel:  slog.LevelInfo,
		AltScreen: true,
		Style:     StyleAuto,
		WrapWidth: 72,
	}
}

// LoadConfig reads configuration from environment variables, falling back
// to defaults for unset or invalid values.
func LoadConfig() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("ASTROVERSE_LOG_FILE"); v != "" {
		cfg.LogFile = v
	}
	if v := os.Getenv("ASTROVERSE_LOG_LEVEL"); v != "" {
		var lvl slog.Level
		if err := lvl.UnmarshalText([]byte(v)); err == nil {
			cfg.LogLevel = lvl
		}
	}
	if v := os.Getenv("ASTROVERSE_ALT_SCREEN"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.AltScreen = b
		}
	}
	if v := os.Getenv("ASTROVERSE_STYLE"); v != "" {
		switch s := strings.ToLower(v); s {
		case StyleAuto, StyleDark, StyleLight, StyleNoTTY:
			cfg.Style = s
		}
	}
	if v := os.Getenv("ASTROVERSE_WRAP"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 20 {
			cfg.WrapWidth = n
		}
	}

	return cfg
}

// OpenLog opens the configured log file for appending, creating parent
// directories as needed. With no log file configured it returns a nil
// writer and a no-op closer.
func (c Config) OpenLog() (io.Writer, func() error, error) {
	if c.LogFile == "" {
		return nil, func() error { return nil }, nil
	}
	if err := os.MkdirAll(filepath.Dir(c.LogFile), 0o755); err != nil {
		return nil, nil, err
	}
	f, err := os.OpenFile(c.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, err
	}
	return f, f.Close, nil
}
