package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/hay-kot/journal/internal/core/logging"
	"github.com/hay-kot/journal/pkg/iojson"
)

// EmptyNotice is printed by list when the journal has no tasks.
const EmptyNotice = "Task list is empty!"

type ListCmd struct {
	flags *Flags

	// flags
	jsonOutput bool
	noColor    bool
}

// NewListCmd creates a new list command
func NewListCmd(flags *Flags) *ListCmd {
	return &ListCmd{flags: flags}
}

// Register adds the list command to the application
func (cmd *ListCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "list",
		Aliases:   []string{"ls"},
		Usage:     "List all tasks in the journal file",
		UsageText: "journal list [--json] [--no-color]",
		Description: `Prints every task with its position, text, and creation time in local time.

The journal file must exist; add a task first to create it.
Use --json for one JSON object per line.`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "output as JSON lines",
				Destination: &cmd.jsonOutput,
			},
			&cli.BoolFlag{
				Name:        "no-color",
				Usage:       "disable styled output",
				Destination: &cmd.noColor,
			},
		},
		Action: cmd.run,
	})

	return app
}

// listEntry is the JSON output format for journal list --json.
type listEntry struct {
	Position  int       `json:"position"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

func (cmd *ListCmd) run(ctx context.Context, c *cli.Command) error {
	if c.NArg() > 0 {
		return usageError("journal list [--json] [--no-color]")
	}

	ctx = logging.WithCommand(ctx, "list")

	tasks, err := cmd.flags.Store.List(ctx)
	if err != nil {
		return fmt.Errorf("list tasks: %w", err)
	}

	out := c.Root().Writer

	if cmd.jsonOutput {
		entries := make([]listEntry, len(tasks))
		for i, t := range tasks {
			entries[i] = listEntry{Position: i + 1, Text: t.Text, CreatedAt: t.CreatedAt.Local()}
		}
		return iojson.WriteLines(out, entries)
	}

	if len(tasks) == 0 {
		_, _ = fmt.Fprintln(out, EmptyNotice)
		return nil
	}

	p := newTaskPrinter(cmd.flags.Config.Display, !cmd.noColor && isTerminal(out))
	for i, t := range tasks {
		if _, err := fmt.Fprintln(out, p.line(i+1, t)); err != nil {
			return err
		}
	}

	return nil
}

// isTerminal reports whether w is a file attached to a terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
