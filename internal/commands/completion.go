package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/hay-kot/journal/internal/core/config"
	"github.com/hay-kot/journal/internal/core/journal"
)

// PositionCompleter returns a ShellCompleteFunc that suggests task positions
// with their text as the description.
//
// When the user's last typed argument starts with "-", it falls back to the
// default flag completion behavior.
func PositionCompleter(flags *Flags) cli.ShellCompleteFunc {
	return func(ctx context.Context, cmd *cli.Command) {
		if args := cmd.Args(); args.Present() {
			last := args.Slice()[args.Len()-1]
			if len(last) > 0 && last[0] == '-' {
				cli.DefaultCompleteWithFlags(ctx, cmd)
				return
			}
		}

		store, err := completionStore(flags)
		if err != nil {
			return
		}

		tasks, err := store.Load(ctx)
		if err != nil {
			return
		}

		w := cmd.Root().Writer
		for i, t := range tasks {
			_, _ = fmt.Fprintf(w, "%d:%s\n", i+1, strings.ReplaceAll(t.Text, ":", "\\:"))
		}
	}
}

// completionStore resolves the journal the same way the Before hook does.
// Completion returns before Before runs, so flags.Store is not set yet.
func completionStore(flags *Flags) (*journal.Store, error) {
	if flags.Store != nil {
		return flags.Store, nil
	}

	cfg, err := config.Load(flags.ConfigPath)
	if err != nil {
		return nil, err
	}

	path, err := ResolveJournalPath(flags.JournalFile, cfg.JournalFile, flags.HomeDir)
	if err != nil {
		return nil, err
	}

	return journal.NewStore(path), nil
}
