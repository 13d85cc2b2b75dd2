package logging

import "context"

type contextKey string

const (
	commandKey contextKey = "command"
	journalKey contextKey = "journal"
)

// WithCommand records the name of the running subcommand.
func WithCommand(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, commandKey, name)
}

// WithJournal records the resolved journal file path.
func WithJournal(ctx context.Context, path string) context.Context {
	return context.WithValue(ctx, journalKey, path)
}

// GetCommand returns the subcommand name, or "" if not set.
func GetCommand(ctx context.Context) string {
	if v, ok := ctx.Value(commandKey).(string); ok {
		return v
	}
	return ""
}

// GetJournal returns the journal path, or "" if not set.
func GetJournal(ctx context.Context) string {
	if v, ok := ctx.Value(journalKey).(string); ok {
		return v
	}
	return ""
}
