package journal

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hay-kot/journal/internal/core/task"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(filepath.Join(t.TempDir(), "journal.json"))
}

func mkTask(text string, unix int64) task.Task {
	return task.Task{Text: text, CreatedAt: time.Unix(unix, 0).UTC()}
}

func texts(tasks []task.Task) []string {
	out := make([]string, len(tasks))
	for i, tk := range tasks {
		out[i] = tk.Text
	}
	return out
}

func seed(t *testing.T, s *Store, items ...string) {
	t.Helper()
	ctx := context.Background()
	for i, text := range items {
		require.NoError(t, s.Add(ctx, mkTask(text, int64(1700000000+i))))
	}
}

func TestStore_AddCreatesFile(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	_, err := os.Stat(s.Path())
	require.ErrorIs(t, err, os.ErrNotExist)

	require.NoError(t, s.Add(ctx, mkTask("buy milk", 1700000000)))

	data, err := os.ReadFile(s.Path())
	require.NoError(t, err)
	assert.Equal(t, `[{"text":"buy milk","created_at":1700000000}]`, string(data))
}

func TestStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	want := []task.Task{
		mkTask("buy milk", 1700000000),
		mkTask("take the dog for a walk", 1700000060),
		mkTask("buy milk", 1700000120),
		mkTask("", 1700000180),
	}
	for _, tk := range want {
		require.NoError(t, s.Add(ctx, tk))
	}

	got, err := s.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestStore_RoundTripNewTasks(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	a, b := task.New("first"), task.New("second")
	require.NoError(t, s.Add(ctx, a))
	require.NoError(t, s.Add(ctx, b))

	got, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.True(t, a.CreatedAt.Equal(got[0].CreatedAt))
	assert.True(t, b.CreatedAt.Equal(got[1].CreatedAt))
}

func TestStore_ListDoesNotMutate(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	seed(t, s, "a", "b")

	before, err := os.ReadFile(s.Path())
	require.NoError(t, err)
	statBefore, err := os.Stat(s.Path())
	require.NoError(t, err)

	for range 3 {
		_, err := s.List(ctx)
		require.NoError(t, err)
	}

	after, err := os.ReadFile(s.Path())
	require.NoError(t, err)
	statAfter, err := os.Stat(s.Path())
	require.NoError(t, err)

	assert.Equal(t, before, after)
	assert.Equal(t, statBefore.ModTime(), statAfter.ModTime())
}

func TestStore_CompleteShiftsPositions(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	seed(t, s, "A", "B", "C")

	removed, err := s.Complete(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, "B", removed.Text)

	got, err := s.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "C"}, texts(got))

	removed, err = s.Complete(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, "C", removed.Text)

	got, err = s.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, texts(got))
}

func TestStore_CompleteLastLeavesEmptyArray(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	seed(t, s, "only")

	_, err := s.Complete(ctx, 1)
	require.NoError(t, err)

	data, err := os.ReadFile(s.Path())
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))
}

func TestStore_CompleteTruncates(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	seed(t, s, "a fairly long first entry", "short", "another long entry to shrink")

	_, err := s.Complete(ctx, 1)
	require.NoError(t, err)

	data, err := os.ReadFile(s.Path())
	require.NoError(t, err)
	assert.Equal(t,
		`[{"text":"short","created_at":1700000001},{"text":"another long entry to shrink","created_at":1700000002}]`,
		string(data))
}

func TestStore_CompleteInvalidPosition(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	seed(t, s, "A", "B", "C")

	before, err := os.ReadFile(s.Path())
	require.NoError(t, err)

	for _, pos := range []uint{0, 4, 100} {
		_, err := s.Complete(ctx, pos)
		require.ErrorIs(t, err, ErrInvalidPosition, "position %d", pos)
	}

	after, err := os.ReadFile(s.Path())
	require.NoError(t, err)
	assert.Equal(t, before, after, "failed completes should not rewrite the file")
}

func TestStore_CompleteEmptyJournal(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	require.NoError(t, os.WriteFile(s.Path(), nil, 0o644))

	_, err := s.Complete(ctx, 1)
	assert.ErrorIs(t, err, ErrInvalidPosition)
}

func TestStore_MissingFile(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	_, err := s.List(ctx)
	require.ErrorIs(t, err, ErrNotFound)

	_, err = s.Complete(ctx, 1)
	require.ErrorIs(t, err, ErrNotFound)

	_, err = os.Stat(s.Path())
	require.ErrorIs(t, err, os.ErrNotExist, "list and complete must not create the file")

	tasks, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, tasks)
}

func TestStore_EmptyFile(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"zero bytes", ""},
		{"whitespace", " \n\t\n"},
		{"empty array", "[]"},
		{"null", "null"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			s := newTestStore(t)
			require.NoError(t, os.WriteFile(s.Path(), []byte(tt.content), 0o644))

			tasks, err := s.List(ctx)
			require.NoError(t, err)
			assert.NotNil(t, tasks)
			assert.Empty(t, tasks)

			require.NoError(t, s.Add(ctx, mkTask("x", 1)))
			data, err := os.ReadFile(s.Path())
			require.NoError(t, err)
			assert.Equal(t, `[{"text":"x","created_at":1}]`, string(data))
		})
	}
}

func TestStore_Malformed(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"garbage", "hello"},
		{"object", `{"text":"a","created_at":1}`},
		{"truncated", `[{"text":"a","created_at":1}`},
		{"trailing data", `[{"text":"a","created_at":1}]garbage`},
		{"trailing array", `[][]`},
		{"bad timestamp", `[{"text":"a","created_at":"yesterday"}]`},
		{"empty record", `[{}]`},
		{"null record", `[null]`},
		{"missing created_at", `[{"text":"a"}]`},
		{"missing text", `[{"created_at":5}]`},
		{"null among records", `[{"text":"a","created_at":1},null]`},
		{"invalid utf-8", "[{\"text\":\"\xff\",\"created_at\":1}]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			s := newTestStore(t)
			require.NoError(t, os.WriteFile(s.Path(), []byte(tt.content), 0o644))

			_, err := s.List(ctx)
			require.ErrorIs(t, err, ErrMalformed)

			err = s.Add(ctx, mkTask("x", 1))
			require.ErrorIs(t, err, ErrMalformed)

			_, err = s.Complete(ctx, 1)
			require.ErrorIs(t, err, ErrMalformed)

			data, err := os.ReadFile(s.Path())
			require.NoError(t, err)
			assert.Equal(t, tt.content, string(data), "malformed file must be left untouched")
		})
	}
}

func TestStore_PermissionDenied(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("permission checks do not apply to root")
	}

	ctx := context.Background()
	s := newTestStore(t)
	seed(t, s, "a")
	require.NoError(t, os.Chmod(s.Path(), 0o000))
	t.Cleanup(func() { _ = os.Chmod(s.Path(), 0o644) })

	_, err := s.List(ctx)
	require.ErrorIs(t, err, ErrPermission)

	err = s.Add(ctx, mkTask("b", 2))
	require.ErrorIs(t, err, ErrPermission)

	_, err = s.Complete(ctx, 1)
	require.ErrorIs(t, err, ErrPermission)
}

func TestStore_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := newTestStore(t)
	err := s.Add(ctx, mkTask("a", 1))
	require.ErrorIs(t, err, context.Canceled)

	_, err = os.Stat(s.Path())
	assert.ErrorIs(t, err, os.ErrNotExist)
}
