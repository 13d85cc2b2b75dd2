// Package validate provides shared validation functions for command arguments.
package validate

import (
	"fmt"
	"strconv"
)

// Position parses a 1-based task position. Zero parses successfully; range
// checks against the journal belong to the store.
func Position(arg string) (uint, error) {
	n, err := strconv.ParseUint(arg, 10, strconv.IntSize)
	if err != nil {
		return 0, fmt.Errorf("%q is not a non-negative integer", arg)
	}
	return uint(n), nil
}
