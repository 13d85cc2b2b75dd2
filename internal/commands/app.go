package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/hay-kot/journal/internal/core/config"
	"github.com/hay-kot/journal/internal/core/journal"
	"github.com/hay-kot/journal/internal/core/logging"
	"github.com/hay-kot/journal/pkg/logutils"
)

// ErrUsage marks command-line argument errors.
var ErrUsage = errors.New("invalid arguments")

func usageError(usage string) error {
	return fmt.Errorf("%w: usage: %s", ErrUsage, usage)
}

// NewApp builds the root command with all subcommands registered. homeDir is
// consulted only when the journal path falls back to the home directory.
func NewApp(version string, homeDir HomeDirFunc) *cli.Command {
	var logCloser func()

	flags := &Flags{HomeDir: homeDir}

	app := &cli.Command{
		Name:      "journal",
		Usage:     "A command line to-do journal",
		UsageText: "journal [global options] command [command options]",
		Description: `Journal keeps a list of tasks in a single JSON file.

Tasks are listed in the order they were added. Use the position shown by
'journal list' to remove a task with 'journal done'.

The journal file defaults to ~/` + DefaultJournalName + `; override it with
--journal-file, $JOURNAL_FILE, or journal_file in the config file.`,
		Version:               version,
		EnableShellCompletion: true,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "journal-file",
				Aliases:     []string{"j"},
				Usage:       "use a different journal file",
				Sources:     cli.EnvVars("JOURNAL_FILE"),
				Destination: &flags.JournalFile,
			},
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "path to config file",
				Sources:     cli.EnvVars("JOURNAL_CONFIG"),
				Value:       DefaultConfigPath(),
				Destination: &flags.ConfigPath,
			},
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "log level (debug, info, warn, error, fatal, panic)",
				Sources:     cli.EnvVars("JOURNAL_LOG_LEVEL"),
				Value:       "warn",
				Destination: &flags.LogLevel,
			},
			&cli.StringFlag{
				Name:        "log-file",
				Usage:       "path to log file (defaults to stderr)",
				Sources:     cli.EnvVars("JOURNAL_LOG_FILE"),
				Destination: &flags.LogFile,
			},
		},
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			logger, closer, err := logutils.New(flags.LogLevel, flags.LogFile)
			if err != nil {
				return ctx, fmt.Errorf("setup logger: %w", err)
			}
			log.Logger = logger
			logCloser = closer

			cfg, err := config.Load(flags.ConfigPath)
			if err != nil {
				return ctx, fmt.Errorf("load config: %w", err)
			}
			flags.Config = cfg

			path, err := ResolveJournalPath(flags.JournalFile, cfg.JournalFile, flags.HomeDir)
			if err != nil {
				return ctx, fmt.Errorf("find journal file: %w", err)
			}
			flags.Store = journal.NewStore(path)

			log.Debug().Str("journal", path).Str("config", flags.ConfigPath).Msg("resolved paths")

			return logging.WithJournal(ctx, path), nil
		},
		After: func(ctx context.Context, c *cli.Command) error {
			if logCloser != nil {
				logCloser()
			}
			return nil
		},
	}

	app = NewAddCmd(flags).Register(app)
	app = NewDoneCmd(flags).Register(app)
	app = NewListCmd(flags).Register(app)
	app = NewConfigCmd(flags).Register(app)

	return app
}
