package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"

	"github.com/hay-kot/journal/internal/core/config"
)

type ConfigCmd struct {
	flags *Flags
}

// NewConfigCmd creates a new config command.
func NewConfigCmd(flags *Flags) *ConfigCmd {
	return &ConfigCmd{flags: flags}
}

// Register adds the config command to the application.
func (cmd *ConfigCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:  "config",
		Usage: "Configuration management commands",
		Commands: []*cli.Command{
			{
				Name:        "show",
				Usage:       "Print the effective configuration",
				UsageText:   "journal config show",
				Description: "Prints the configuration after defaults are applied, with journal_file set to the resolved journal path.",
				Action:      cmd.runShow,
			},
		},
	})

	return app
}

func (cmd *ConfigCmd) runShow(ctx context.Context, c *cli.Command) error {
	effective := config.Config{
		JournalFile: cmd.flags.Store.Path(),
		Display:     cmd.flags.Config.Display,
	}

	out, err := yaml.Marshal(effective)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}

	w := c.Root().Writer
	if cmd.flags.ConfigPath != "" {
		_, _ = fmt.Fprintf(w, "# config file: %s\n", cmd.flags.ConfigPath)
	}
	_, err = w.Write(out)
	return err
}
