package logging

import (
	"context"

	"github.com/rs/zerolog"
)

// ContextHook copies the command and journal fields from the event context.
type ContextHook struct{}

func (h ContextHook) Run(e *zerolog.Event, level zerolog.Level, msg string) {
	ctx := e.GetCtx()
	if ctx == nil || ctx == context.Background() {
		return
	}

	if cmd := GetCommand(ctx); cmd != "" {
		e.Str("command", cmd)
	}

	if path := GetJournal(ctx); path != "" {
		e.Str("journal", path)
	}
}
