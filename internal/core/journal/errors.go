package journal

import (
	"errors"
	"fmt"
	"io/fs"
)

var (
	// ErrNotFound is returned when the journal file does not exist and the
	// operation does not create it.
	ErrNotFound = errors.New("journal file not found")
	// ErrPermission is returned when the journal file cannot be opened or written
	// with the current user's permissions.
	ErrPermission = errors.New("journal file permission denied")
	// ErrMalformed is returned when the journal file is not a JSON array of tasks.
	ErrMalformed = errors.New("journal file is malformed")
	// ErrInvalidPosition is returned when a position is outside 1..count.
	ErrInvalidPosition = errors.New("invalid task position")
)

// classify wraps an I/O error with the matching sentinel while keeping the
// original error in the chain.
func classify(op string, err error) error {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return fmt.Errorf("%s: %w: %w", op, ErrNotFound, err)
	case errors.Is(err, fs.ErrPermission):
		return fmt.Errorf("%s: %w: %w", op, ErrPermission, err)
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}
