package config

import (
	"fmt"

	"cpgislands/internal/cpg"
)

// Config is the top-level configuration structure for cpgislands.
type Config struct {
	IslandDefinition IslandDefinitionConfig `yaml:"islandDefinition"`
	Logging          LoggingConfig          `yaml:"logging"`
	TUI              TUIConfig              `yaml:"tui"`
}

// IslandDefinitionConfig holds the defaults shown in the sequence input
// view. Pointers distinguish "unset" from zero so that a later layer can
// override only the keys it names.
type IslandDefinitionConfig struct {
	IslandSize     *int     `yaml:"islandSize,omitempty"`
	MinimumGCRatio *float64 `yaml:"minimumGCRatio,omitempty"`
}

// LoggingConfig selects the log level when no --log-level flag is given.
type LoggingConfig struct {
	Level string `yaml:"level,omitempty"` // debug, info, warn or error
}

// TUIConfig tunes the terminal interface.
type TUIConfig struct {
	SequenceWidth int `yaml:"sequenceWidth,omitempty"` // bases per line in the sequence pane
}

// Definition returns the configured island definition defaults.
// Validate must have succeeded for the result to be meaningful.
func (c Config) Definition() cpg.IslandDefinition {
	def := cpg.IslandDefinition{}
	if c.IslandDefinition.IslandSize != nil {
		def.IslandSize = *c.IslandDefinition.IslandSize
	}
	if c.IslandDefinition.MinimumGCRatio != nil {
		def.MinimumGCRatio = *c.IslandDefinition.MinimumGCRatio
	}
	return def
}

// Validate checks the merged configuration.
func (c Config) Validate() error {
	if c.IslandDefinition.IslandSize == nil || c.IslandDefinition.MinimumGCRatio == nil {
		return fmt.Errorf("islandDefinition: islandSize and minimumGCRatio are required")
	}
	if _, err := cpg.NewIslandDefinition(*c.IslandDefinition.IslandSize, *c.IslandDefinition.MinimumGCRatio); err != nil {
		return fmt.Errorf("islandDefinition: %w", err)
	}
	switch c.Logging.Level {
	case "", "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("logging.level: unknown level %q", c.Logging.Level)
	}
	if c.TUI.SequenceWidth < 0 {
		return fmt.Errorf("tui.sequenceWidth: must not be negative, got %d", c.TUI.SequenceWidth)
	}
	return nil
}

const (
	DefaultIslandSize     = 200
	DefaultMinimumGCRatio = 0.5
	DefaultLogLevel       = "warn"
	DefaultSequenceWidth  = 60
)

// GetDefaultConfig returns the configuration used when no files are present.
func GetDefaultConfig() Config {
	size := DefaultIslandSize
	ratio := DefaultMinimumGCRatio
	return Config{
		IslandDefinition: IslandDefinitionConfig{
			IslandSize:     &size,
			MinimumGCRatio: &ratio,
		},
		Logging: LoggingConfig{Level: DefaultLogLevel},
		TUI:     TUIConfig{SequenceWidth: DefaultSequenceWidth},
	}
}
