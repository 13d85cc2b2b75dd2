package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/hay-kot/journal/internal/core/logging"
	"github.com/hay-kot/journal/internal/core/validate"
)

type DoneCmd struct {
	flags *Flags
}

// NewDoneCmd creates a new done command
func NewDoneCmd(flags *Flags) *DoneCmd {
	return &DoneCmd{flags: flags}
}

// Register adds the done command to the application
func (cmd *DoneCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "done",
		Usage:     "Remove a task from the journal file by position",
		UsageText: "journal done <position>",
		Description: `Removes the task at the given 1-based position, as shown by 'journal list'.

Tasks after it move up by one position. There is no undo.

Examples:
  journal done 2`,
		ShellComplete: PositionCompleter(cmd.flags),
		Action:        cmd.run,
	})

	return app
}

func (cmd *DoneCmd) run(ctx context.Context, c *cli.Command) error {
	if c.NArg() != 1 {
		return usageError("journal done <position>")
	}

	position, err := validate.Position(c.Args().First())
	if err != nil {
		return fmt.Errorf("%w: position %w", ErrUsage, err)
	}

	ctx = logging.WithCommand(ctx, "done")

	removed, err := cmd.flags.Store.Complete(ctx, position)
	if err != nil {
		return fmt.Errorf("complete task: %w", err)
	}

	_, _ = fmt.Fprintf(c.Root().Writer, "removed: %s\n", removed.Text)
	return nil
}
