// Package config loads devfinder settings from an optional YAML file and
// DEVFINDER_* environment variables.
package config

import (
	"time"
)

const (
	DefaultBaseURL      = "https://api.github.com"
	DefaultSeed         = "octocat"
	DefaultCommitPolicy = "latest-request"
	DefaultTheme        = "light"
	DefaultLogLevel     = "info"
	DefaultServerAddr   = ":8080"
)

// Config represents the full devfinder configuration document.
type Config struct {
	API    APISettings    `yaml:"api"`
	Lookup LookupSettings `yaml:"lookup"`
	Theme  ThemeSettings  `yaml:"theme"`
	Log    LogSettings    `yaml:"log"`
	Server ServerSettings `yaml:"server"`
}

// APISettings configures the GitHub client.
type APISettings struct {
	BaseURL string `yaml:"base_url" validate:"required,http_url"`
	// Timeout of zero leaves requests unbounded.
	Timeout time.Duration `yaml:"timeout,omitempty" validate:"gte=0s"`
}

// LookupSettings configures the lookup controller.
type LookupSettings struct {
	Seed         string `yaml:"seed" validate:"required"`
	CommitPolicy string `yaml:"commit_policy" validate:"oneof=latest-request last-resolution"`
}

// ThemeSettings configures the initial theme.
type ThemeSettings struct {
	Default string `yaml:"default" validate:"oneof=light dark"`
	Persist bool   `yaml:"persist,omitempty"`
}

// LogSettings configures the zerolog logger.
type LogSettings struct {
	Level string `yaml:"level" validate:"oneof=debug info warn error"`
	Human bool   `yaml:"human,omitempty"`
	File  string `yaml:"file,omitempty"`
}

// ServerSettings configures the browser UI.
type ServerSettings struct {
	Addr       string `yaml:"addr" validate:"required"`
	SessionKey string `yaml:"session_key,omitempty" validate:"omitempty,len=32"`
}

// Default returns the configuration used when nothing overrides it.
func Default() Config {
	return Config{
		API:    APISettings{BaseURL: DefaultBaseURL},
		Lookup: LookupSettings{Seed: DefaultSeed, CommitPolicy: DefaultCommitPolicy},
		Theme:  ThemeSettings{Default: DefaultTheme},
		Log:    LogSettings{Level: DefaultLogLevel},
		Server: ServerSettings{Addr: DefaultServerAddr},
	}
}
