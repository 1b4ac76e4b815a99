package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/hay-kot/shortid/internal/commands"
	"github.com/hay-kot/shortid/internal/printer"
)

var (
	// Build information. Populated at build-time via -ldflags flag.
	version = "dev"
	commit  = "HEAD"
	date    = "now"
)

func build() string {
	short := commit
	if len(commit) > 7 {
		short = commit[:7]
	}

	return fmt.Sprintf("%s (%s) %s", version, short, date)
}

func main() {
	if err := setupLogger("info", ""); err != nil {
		panic(err)
	}

	var (
		p     = printer.New(os.Stderr)
		ctx   = printer.NewContext(context.Background(), p)
		flags = &commands.Flags{}
	)

	app := &cli.Command{
		Name:      "shortid",
		Usage:     "Generate short, cryptographically random IDs",
		UsageText: "shortid [global options] [command [command options]]",
		Description: `Shortid generates compact identifiers from the alphabet [a-zA-Z0-9] using
the system's secure random source, and reports how likely IDs of a given
length are to collide.

Run 'shortid' with no arguments to print one ID using the configured length.
Run 'shortid risk' to compare collision risk across lengths.`,
		Version: build(),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "log level (debug, info, warn, error, fatal, panic)",
				Sources:     cli.EnvVars("SHORTID_LOG_LEVEL"),
				Value:       "info",
				Destination: &flags.LogLevel,
			},
			&cli.StringFlag{
				Name:        "log-file",
				Usage:       "path to log file (optional)",
				Sources:     cli.EnvVars("SHORTID_LOG_FILE"),
				Destination: &flags.LogFile,
			},
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "path to config file",
				Sources:     cli.EnvVars("SHORTID_CONFIG"),
				Value:       commands.DefaultConfigPath(),
				Destination: &flags.ConfigPath,
			},
		},
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			if err := setupLogger(flags.LogLevel, flags.LogFile); err != nil {
				return ctx, err
			}

			logger := log.With().Str("component", "idgen").Logger()
			if err := flags.Load(logger); err != nil {
				return ctx, err
			}

			logger.Debug().
				Str("config", flags.ConfigPath).
				Str("source", flags.Config.Source).
				Int("workers", flags.Config.Workers).
				Msg("config loaded")

			return ctx, nil
		},
		After: func(ctx context.Context, c *cli.Command) error {
			if flags.Service == nil {
				return nil
			}
			return flags.Service.Close()
		},
	}

	genCmd := commands.NewGenCmd(flags)

	app = genCmd.Register(app)
	app = commands.NewRiskCmd(flags).Register(app)
	app = commands.NewCharsetCmd().Register(app)
	app = commands.NewConfigCmd(flags).Register(app)
	app = commands.NewDoctorCmd(flags).Register(app)
	app = commands.NewDocCmd(flags).Register(app)

	// Register gen flags on root command
	app.Flags = append(app.Flags, genCmd.Flags()...)

	// Set gen as default action when no subcommand is provided
	app.Action = func(ctx context.Context, c *cli.Command) error {
		if c.Args().Len() > 0 {
			return fmt.Errorf("unknown command %q. Run 'shortid --help' for usage", c.Args().First())
		}
		return genCmd.Run(ctx, c)
	}

	if err := app.Run(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr)
		printer.Ctx(ctx).FatalError(err)
		os.Exit(1)
	}
}

func setupLogger(level string, logFile string) error {
	parsedLevel, err := zerolog.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("failed to parse log level: %w", err)
	}

	var output io.Writer = zerolog.ConsoleWriter{Out: os.Stderr}

	if logFile != "" {
		// Create log directory if it doesn't exist
		logDir := filepath.Dir(logFile)
		if err := os.MkdirAll(logDir, 0o755); err != nil {
			return fmt.Errorf("failed to create log directory: %w", err)
		}

		file, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}

		// Write to both console and file
		output = io.MultiWriter(
			zerolog.ConsoleWriter{Out: os.Stderr},
			file,
		)
	}

	log.Logger = log.Output(output).Level(parsedLevel)

	return nil
}
