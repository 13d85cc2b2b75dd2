// Package task defines the journal entry value type and its rendering.
package task

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/mattn/go-runewidth"
)

const (
	// DefaultTextWidth is the column width text is padded to when rendered.
	DefaultTextWidth = 50
	// DefaultTimeLayout renders the creation time as YYYY-MM-DD HH:MM.
	DefaultTimeLayout = "2006-01-02 15:04"
)

// Task is a single journal entry. Tasks are never mutated after creation.
type Task struct {
	Text      string
	CreatedAt time.Time
}

// New returns a task stamped with the current UTC time at second precision.
func New(text string) Task {
	return Task{
		Text:      text,
		CreatedAt: time.Now().UTC().Truncate(time.Second),
	}
}

// Render formats the task as the text padded to width display cells followed by
// the bracketed creation time in loc. Text wider than width is left intact.
func (t Task) Render(width int, layout string, loc *time.Location) string {
	text, stamp := t.Columns(width, layout, loc)
	return fmt.Sprintf("%s [%s]", text, stamp)
}

// Columns returns the padded text and the formatted creation time separately so
// callers can style each column.
func (t Task) Columns(width int, layout string, loc *time.Location) (string, string) {
	if layout == "" {
		layout = DefaultTimeLayout
	}
	if loc == nil {
		loc = time.Local
	}

	return runewidth.FillRight(t.Text, width), t.CreatedAt.In(loc).Format(layout)
}

func (t Task) String() string {
	return t.Render(DefaultTextWidth, DefaultTimeLayout, time.Local)
}

// ErrInvalidRecord is returned when a JSON task record is null or lacks a
// required field.
var ErrInvalidRecord = errors.New("invalid task record")

// wireTask is the on-disk shape: created_at is UTC epoch seconds.
type wireTask struct {
	Text      string `json:"text"`
	CreatedAt int64  `json:"created_at"`
}

// wireTaskIn decodes into pointers so missing fields can be told apart from
// zero values.
type wireTaskIn struct {
	Text      *string `json:"text"`
	CreatedAt *int64  `json:"created_at"`
}

func (t Task) MarshalJSON() ([]byte, error) {
	return json.Marshal(wireTask{
		Text:      t.Text,
		CreatedAt: t.CreatedAt.Unix(),
	})
}

func (t *Task) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return fmt.Errorf("%w: null", ErrInvalidRecord)
	}

	var w wireTaskIn
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}

	switch {
	case w.Text == nil:
		return fmt.Errorf("%w: missing field \"text\"", ErrInvalidRecord)
	case w.CreatedAt == nil:
		return fmt.Errorf("%w: missing field \"created_at\"", ErrInvalidRecord)
	}

	t.Text = *w.Text
	t.CreatedAt = time.Unix(*w.CreatedAt, 0).UTC()
	return nil
}
