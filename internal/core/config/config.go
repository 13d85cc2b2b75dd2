// Package config handles configuration loading and validation for journal.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/hay-kot/journal/internal/core/task"
)

// Config holds the application configuration.
type Config struct {
	// JournalFile overrides the default journal location. A leading "~/" is
	// expanded against the user's home directory.
	JournalFile string  `yaml:"journal_file"`
	Display     Display `yaml:"display"`
}

// Display controls how tasks are rendered by the list command.
type Display struct {
	TextWidth  int    `yaml:"text_width"`
	TimeLayout string `yaml:"time_layout"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Display: Display{
			TextWidth:  task.DefaultTextWidth,
			TimeLayout: task.DefaultTimeLayout,
		},
	}
}

// Load reads configuration from the given path.
// If configPath is empty or doesn't exist, returns defaults.
func Load(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	if configPath != "" {
		data, err := os.ReadFile(configPath)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config file: %w", err)
			}
		case os.IsNotExist(err):
		default:
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// applyDefaults sets default values for any unset configuration options.
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()
	if c.Display.TextWidth == 0 {
		c.Display.TextWidth = defaults.Display.TextWidth
	}
	if c.Display.TimeLayout == "" {
		c.Display.TimeLayout = defaults.Display.TimeLayout
	}
}
