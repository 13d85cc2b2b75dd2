package commands

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// DefaultJournalName is the file created in the home directory when no other
// journal path is configured.
const DefaultJournalName = ".rusty-journal.json"

// ErrHomeUnresolvable is returned when the journal path depends on the home
// directory and it cannot be determined.
var ErrHomeUnresolvable = errors.New("cannot determine home directory")

// HomeDirFunc reports the current user's home directory. os.UserHomeDir
// satisfies it.
type HomeDirFunc func() (string, error)

// ResolveJournalPath picks the journal file path in order: the explicit
// override (flag or environment), the configured path, then the default file
// in the home directory.
func ResolveJournalPath(override, configured string, homeDir HomeDirFunc) (string, error) {
	for _, p := range []string{override, configured} {
		if p != "" {
			return expandHome(p, homeDir)
		}
	}

	home, err := lookupHome(homeDir)
	if err != nil {
		return "", err
	}

	return filepath.Join(home, DefaultJournalName), nil
}

// expandHome replaces a leading "~" path element with the home directory.
func expandHome(p string, homeDir HomeDirFunc) (string, error) {
	if p != "~" && !strings.HasPrefix(p, "~/") {
		return p, nil
	}

	home, err := lookupHome(homeDir)
	if err != nil {
		return "", fmt.Errorf("expand %q: %w", p, err)
	}

	return filepath.Join(home, strings.TrimPrefix(p, "~")), nil
}

func lookupHome(homeDir HomeDirFunc) (string, error) {
	if homeDir == nil {
		return "", ErrHomeUnresolvable
	}

	home, err := homeDir()
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrHomeUnresolvable, err)
	}
	if home == "" {
		return "", ErrHomeUnresolvable
	}

	return home, nil
}
