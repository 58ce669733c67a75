// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// Theme is the persisted page colour scheme.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// Valid reports whether t is a known theme.
func (t Theme) Valid() bool {
	return t == ThemeLight || t == ThemeDark
}

// Opposite returns the theme a toggle switches to.
func (t Theme) Opposite() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

// FormatConfig controls how numeric results are displayed.
type FormatConfig struct {
	// Precision is the number of decimal places kept when formatting
	// converted values (default 6). Trailing zeros are trimmed. WithDefaults
	// treats 0 as unset; the CLI restores an explicitly configured 0.
	Precision int `json:"precision" yaml:"precision" mapstructure:"precision"`
}

// ThemeConfig holds settings for the persisted theme flag.
type ThemeConfig struct {
	// DBPath is the SQLite file holding the color-theme and theme keys
	// (default ~/.config/calckit/prefs.db).
	DBPath string `json:"db_path" yaml:"db_path" mapstructure:"db_path"`

	// Default is the theme used when nothing has been stored yet (default light).
	Default Theme `json:"default" yaml:"default" mapstructure:"default"`
}

// ServerConfig holds settings for the local JSON API.
type ServerConfig struct {
	// Addr is the listen address (default 127.0.0.1:8080).
	Addr string `json:"addr" yaml:"addr" mapstructure:"addr"`

	// AllowAllOrigins disables the localhost-only CORS policy.
	AllowAllOrigins bool `json:"allow_all_origins" yaml:"allow_all_origins" mapstructure:"allow_all_origins"`

	// RequestTimeout bounds each request (default 30s).
	RequestTimeout time.Duration `json:"request_timeout" yaml:"request_timeout" mapstructure:"request_timeout"`
}

// Config groups all calckit settings.
type Config struct {
	Format  FormatConfig `json:"format" yaml:"format" mapstructure:"format"`
	Theme   ThemeConfig  `json:"theme" yaml:"theme" mapstructure:"theme"`
	Server  ServerConfig `json:"server" yaml:"server" mapstructure:"server"`
	Verbose bool         `json:"verbose" yaml:"verbose" mapstructure:"verbose"`
}

const (
	DefaultPrecision      = 6
	DefaultAddr           = "127.0.0.1:8080"
	DefaultRequestTimeout = 30 * time.Second
)

// WithDefaults returns a copy of c with zero values replaced by defaults.
// dbPath is used when Theme.DBPath is empty.
func (c Config) WithDefaults(dbPath string) Config {
	if c.Format.Precision <= 0 {
		c.Format.Precision = DefaultPrecision
	}
	if c.Theme.DBPath == "" {
		c.Theme.DBPath = dbPath
	}
	if !c.Theme.Default.Valid() {
		c.Theme.Default = ThemeLight
	}
	if c.Server.Addr == "" {
		c.Server.Addr = DefaultAddr
	}
	if c.Server.RequestTimeout <= 0 {
		c.Server.RequestTimeout = DefaultRequestTimeout
	}
	return c
}
