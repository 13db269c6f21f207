package cmd

import (
	"context"
	"io"
	"os"

	"github.com/james-woods/format-sql/pkg/config"
	"github.com/james-woods/format-sql/pkg/consts"
	"github.com/james-woods/format-sql/pkg/logging"
	"github.com/james-woods/format-sql/pkg/processor"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v3"
)

// options holds the settings of one invocation: the configuration file with
// the command line merged over it.
type options struct {
	config.Config

	Paths  []string
	DryRun bool
}

func newCommand(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:      "format-sql",
		Usage:     "Format SQL files and SQL embedded in source code",
		ArgsUsage: "<path>...",
		Description: `format-sql rewrites SQL statements in place. Files with the .sql extension
are formatted as a whole; in every other file, string literals starting with
a SQL statement keyword are formatted and the surrounding code is kept as is.`,
		Flags: flags(),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			opts, err := parseOptions(cmd, cfg)
			if err != nil {
				return err
			}

			return run(ctx, cmd, opts)
		},
	}
}

func flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringSliceFlag{
			Name:    "types",
			Aliases: []string{"t"},
			Usage:   "file extensions processed when walking directories (sql is treated as plain SQL)",
		},
		&cli.BoolFlag{
			Name:    "recursive",
			Aliases: []string{"r"},
			Usage:   "process directories recursively",
		},
		&cli.BoolFlag{
			Name:  "dry-run",
			Usage: "print the formatted files instead of writing them",
		},
		&cli.IntFlag{
			Name:  "indent",
			Usage: "number of spaces per indentation level",
			Value: consts.DefaultIndentSize,
		},
		&cli.BoolFlag{
			Name:  "uppercase",
			Usage: "upper-case SQL keywords",
		},
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "the format-sql config file",
			Sources: cli.EnvVars(consts.ConfigEnv),
			Config: cli.StringConfig{
				TrimSpace: true,
			},
		},
		&cli.StringFlag{
			Name:  "log-level",
			Usage: "one of debug, info, warn or error",
			Value: consts.DefaultLogLevel,
		},
		&cli.StringFlag{
			Name:  "log-format",
			Usage: "either text or json",
			Value: consts.DefaultLogFormat,
		},
	}
}

// parseOptions merges the parsed flags over cfg. A flag only wins when it was
// given explicitly; otherwise the config value, then the default, is used.
func parseOptions(cmd *cli.Command, cfg *config.Config) (options, error) {
	if cmd.IsSet("config") {
		loaded, err := config.LoadConfigFile(cmd.String("config"))
		if err != nil {
			return options{}, err
		}
		cfg = loaded
	}

	if cfg == nil {
		cfg = config.Default()
	}

	opts := options{
		Config: *cfg,
		Paths:  cmd.Args().Slice(),
		DryRun: cmd.Bool("dry-run"),
	}

	if cmd.IsSet("types") {
		opts.Types = cmd.StringSlice("types")
	}
	if cmd.IsSet("recursive") {
		opts.Recursive = cmd.Bool("recursive")
	}
	if cmd.IsSet("indent") {
		opts.IndentSize = int(cmd.Int("indent"))
	}
	if cmd.IsSet("uppercase") {
		opts.UppercaseKeywords = cmd.Bool("uppercase")
	}
	if cmd.IsSet("log-level") {
		opts.LogLevel = cmd.String("log-level")
	}
	if cmd.IsSet("log-format") {
		opts.LogFormat = cmd.String("log-format")
	}

	if len(opts.Paths) == 0 {
		return options{}, errors.New("at least one path argument is required")
	}
	if opts.IndentSize <= 0 {
		return options{}, errors.Errorf("indent must be positive, got %d", opts.IndentSize)
	}
	if opts.Types == nil {
		opts.Types = []string{}
	}

	return opts, nil
}

func run(ctx context.Context, cmd *cli.Command, opts options) error {
	var errOut io.Writer = os.Stderr
	if cmd.ErrWriter != nil {
		errOut = cmd.ErrWriter
	}

	logger, err := logging.New(errOut, opts.LogLevel, opts.LogFormat)
	if err != nil {
		return err
	}

	p := processor.New(processor.Params{
		Formatter: opts.GetFormatter(),
		Types:     opts.Types,
		Recursive: opts.Recursive,
		DryRun:    opts.DryRun,
		Out:       cmd.Writer,
		Logger:    logger,
	})

	return p.Run(ctx, opts.Paths)
}
