package commands

import (
	"os"
	"path/filepath"

	"github.com/hay-kot/journal/internal/core/config"
	"github.com/hay-kot/journal/internal/core/journal"
)

type Flags struct {
	LogLevel    string
	LogFile     string
	ConfigPath  string
	JournalFile string

	// HomeDir locates the home directory for the default journal path
	HomeDir HomeDirFunc

	// Config is loaded in the Before hook and available to all commands
	Config *config.Config

	// Store is bound to the resolved journal path in the Before hook
	Store *journal.Store
}

// DefaultConfigPath returns the default config file path using XDG_CONFIG_HOME.
// Returns "" when neither XDG_CONFIG_HOME nor a home directory is available,
// in which case defaults are used.
func DefaultConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "journal", "config.yaml")
}
