package app

import (
	"cpgislands/internal/config"
)

// Config holds the application configuration
type Config struct {
	// LogLevel comes from the --log-level flag. Empty means the configured
	// level applies.
	LogLevel string

	// Args is the command line handed to the application model.
	Args []string

	// Settings is filled in by NewApplication from the layered config files.
	Settings *config.Config
}

// NewConfig creates a new application configuration
func NewConfig(logLevel string, args []string) *Config {
	return &Config{
		LogLevel: logLevel,
		Args:     args,
	}
}
