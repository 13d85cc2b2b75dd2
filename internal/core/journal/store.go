// Package journal persists tasks as a single JSON array on disk.
//
// Every operation opens the file, reads the whole array, applies its change in
// memory and rewrites the file from the start. A JSON array cannot be appended
// to in place, so there is no incremental write path. The store assumes a
// single process; concurrent invocations against the same file may race.
package journal

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"unicode/utf8"

	"github.com/rs/zerolog"

	"github.com/hay-kot/journal/internal/core/logging"
	"github.com/hay-kot/journal/internal/core/task"
)

// Store reads and writes the journal file at a fixed path.
type Store struct {
	path string
	log  zerolog.Logger
}

// NewStore returns a store bound to path. The file is not touched until an
// operation runs.
func NewStore(path string) *Store {
	return &Store{
		path: path,
		log:  logging.Component("journal"),
	}
}

// Path returns the journal file path.
func (s *Store) Path() string {
	return s.path
}

// Load returns all tasks in file order. A missing or empty file yields an
// empty slice.
func (s *Store) Load(ctx context.Context) ([]task.Task, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []task.Task{}, nil
		}
		return nil, classify("open journal", err)
	}
	defer func() { _ = f.Close() }()

	return readTasks(f)
}

// Add appends t to the journal, creating the file if it does not exist.
func (s *Store) Add(ctx context.Context, t task.Task) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	f, err := os.OpenFile(s.path, os.O_RDWR|os.O_CREATE, 0o644)
	if err != nil {
		return classify("open journal", err)
	}

	tasks, err := readTasks(f)
	if err != nil {
		_ = f.Close()
		return err
	}

	tasks = append(tasks, t)
	if err := writeTasks(f, tasks); err != nil {
		_ = f.Close()
		return err
	}

	if err := f.Close(); err != nil {
		return classify("close journal", err)
	}

	s.log.Debug().Ctx(ctx).Int("count", len(tasks)).Msg("task added")
	return nil
}

// Complete removes the task at the 1-based position and returns it. Later
// tasks shift down by one. The file must already exist.
func (s *Store) Complete(ctx context.Context, position uint) (task.Task, error) {
	if err := ctx.Err(); err != nil {
		return task.Task{}, err
	}

	f, err := os.OpenFile(s.path, os.O_RDWR, 0)
	if err != nil {
		return task.Task{}, classify("open journal", err)
	}

	tasks, err := readTasks(f)
	if err != nil {
		_ = f.Close()
		return task.Task{}, err
	}

	if position == 0 || position > uint(len(tasks)) {
		_ = f.Close()
		return task.Task{}, fmt.Errorf("%w: %d (journal has %d tasks)", ErrInvalidPosition, position, len(tasks))
	}

	idx := int(position - 1)
	removed := tasks[idx]
	tasks = slices.Delete(tasks, idx, idx+1)

	if err := writeTasks(f, tasks); err != nil {
		_ = f.Close()
		return task.Task{}, err
	}

	if err := f.Close(); err != nil {
		return task.Task{}, classify("close journal", err)
	}

	s.log.Debug().Ctx(ctx).Uint("position", position).Int("count", len(tasks)).Msg("task completed")
	return removed, nil
}

// List returns all tasks in file order without modifying the file. Unlike Add,
// a missing file is an error (ErrNotFound).
func (s *Store) List(ctx context.Context) ([]task.Task, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(s.path)
	if err != nil {
		return nil, classify("open journal", err)
	}
	defer func() { _ = f.Close() }()

	tasks, err := readTasks(f)
	if err != nil {
		return nil, err
	}

	s.log.Debug().Ctx(ctx).Int("count", len(tasks)).Msg("tasks listed")
	return tasks, nil
}

// readTasks reads the whole file from the start and decodes it. Empty content
// is an empty journal; invalid UTF-8, incomplete records, or anything after the
// closing bracket is malformed.
func readTasks(f *os.File) ([]task.Task, error) {
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return nil, classify("seek journal", err)
	}

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, classify("read journal", err)
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return []task.Task{}, nil
	}

	if !utf8.Valid(data) {
		return nil, fmt.Errorf("%w: invalid UTF-8", ErrMalformed)
	}

	dec := json.NewDecoder(bytes.NewReader(data))

	var tasks []task.Task
	if err := dec.Decode(&tasks); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}

	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: unexpected data after task array", ErrMalformed)
	}

	if tasks == nil {
		tasks = []task.Task{}
	}

	return tasks, nil
}

// writeTasks truncates the file to zero and writes tasks from offset 0, so a
// shorter array leaves no trailing bytes behind.
func writeTasks(f *os.File, tasks []task.Task) error {
	if tasks == nil {
		tasks = []task.Task{}
	}

	data, err := json.Marshal(tasks)
	if err != nil {
		return fmt.Errorf("encode journal: %w", err)
	}

	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return classify("seek journal", err)
	}

	if err := f.Truncate(0); err != nil {
		return classify("truncate journal", err)
	}

	if _, err := f.Write(data); err != nil {
		return classify("write journal", err)
	}

	return nil
}
