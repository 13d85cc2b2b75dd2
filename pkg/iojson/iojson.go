// iojson are utilities for writing JSON from a command line interface
// perspective
package iojson

import (
	"encoding/json"
	"fmt"
	"io"
)

// WriteLine writes obj as a single compact JSON line, suitable for piping
// into line-oriented tools such as jq.
func WriteLine(w io.Writer, obj any) error {
	bits, err := json.Marshal(obj)
	if err != nil {
		return fmt.Errorf("encode json line: %w", err)
	}

	bits = append(bits, '\n')
	_, err = w.Write(bits)
	return err
}

// WriteLines writes each element of items with WriteLine, stopping at the
// first error.
func WriteLines[T any](w io.Writer, items []T) error {
	for _, item := range items {
		if err := WriteLine(w, item); err != nil {
			return err
		}
	}
	return nil
}
