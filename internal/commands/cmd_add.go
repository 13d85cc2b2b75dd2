package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/hay-kot/journal/internal/core/logging"
	"github.com/hay-kot/journal/internal/core/task"
)

type AddCmd struct {
	flags *Flags
}

// NewAddCmd creates a new add command
func NewAddCmd(flags *Flags) *AddCmd {
	return &AddCmd{flags: flags}
}

// Register adds the add command to the application
func (cmd *AddCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "add",
		Usage:     "Write a task to the journal file",
		UsageText: "journal add <text>",
		Description: `Appends a task to the end of the journal, stamped with the current time.

The journal file is created if it does not exist. Quote the text when it
contains spaces.

Examples:
  journal add "buy milk"
  journal -j ~/work.json add "review PR #42"`,
		Action: cmd.run,
	})

	return app
}

func (cmd *AddCmd) run(ctx context.Context, c *cli.Command) error {
	if c.NArg() != 1 {
		return usageError("journal add <text>")
	}

	ctx = logging.WithCommand(ctx, "add")

	if err := cmd.flags.Store.Add(ctx, task.New(c.Args().First())); err != nil {
		return fmt.Errorf("add task: %w", err)
	}

	return nil
}
