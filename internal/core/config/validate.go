package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/hay-kot/criterio"
)

// maxTextWidth bounds display.text_width to something a terminal can show.
const maxTextWidth = 500

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	return criterio.ValidateStruct(
		criterio.Run("journal_file", c.JournalFile, notBlankIfSet),
		c.validateTextWidth(),
		criterio.Run("display.time_layout", c.Display.TimeLayout, layoutHasEffect),
	)
}

func (c *Config) validateTextWidth() error {
	if err := textWidthInRange(c.Display.TextWidth); err != nil {
		return criterio.NewFieldErrors("display.text_width", err)
	}
	return nil
}

func notBlankIfSet(path string) error {
	if path != "" && strings.TrimSpace(path) == "" {
		return fmt.Errorf("must not be blank")
	}
	return nil
}

func textWidthInRange(width int) error {
	if width < 1 || width > maxTextWidth {
		return fmt.Errorf("must be between 1 and %d, got %d", maxTextWidth, width)
	}
	return nil
}

// layoutHasEffect rejects layouts without any time directive, which would
// render every task with the same literal string.
func layoutHasEffect(layout string) error {
	ref := time.Date(2006, 1, 2, 15, 4, 5, 0, time.UTC)
	other := time.Date(2011, 7, 9, 8, 31, 42, 0, time.UTC)
	if ref.Format(layout) == other.Format(layout) {
		return fmt.Errorf("layout %q contains no time fields", layout)
	}
	return nil
}
