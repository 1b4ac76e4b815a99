package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"

	"github.com/hay-kot/shortid/internal/commands/doctor"
	"github.com/hay-kot/shortid/internal/core/config"
	"github.com/hay-kot/shortid/internal/printer"
	"github.com/hay-kot/shortid/pkg/randid"
)

type ConfigCmd struct {
	flags  *Flags
	format string
}

// NewConfigCmd creates a new config command.
func NewConfigCmd(flags *Flags) *ConfigCmd {
	return &ConfigCmd{flags: flags}
}

// Register adds the config commands to the application.
func (cmd *ConfigCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:  "config",
		Usage: "Configuration management commands",
		Commands: []*cli.Command{
			{
				Name:        "show",
				Usage:       "Print the effective configuration",
				UsageText:   "shortid config show [options]",
				Description: "Prints the loaded configuration and the fixed generator limits.",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:        "format",
						Usage:       "output format (yaml, json)",
						Value:       "yaml",
						Destination: &cmd.format,
					},
				},
				Action: cmd.runShow,
			},
			{
				Name:        "validate",
				Usage:       "Validate configuration file",
				UsageText:   "shortid config validate [options]",
				Description: "Validates the configuration file, checking limits, template syntax and the random source path.",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:        "format",
						Usage:       "output format (text, json)",
						Value:       "text",
						Destination: &cmd.format,
					},
				},
				Action: cmd.runValidate,
			},
		},
	})

	return app
}

// effectiveConfig is the output of config show.
type effectiveConfig struct {
	Path   string         `json:"path"   yaml:"path"`
	App    *config.Config `json:"app"    yaml:"app"`
	Limits randid.Config  `json:"limits" yaml:"limits"`
}

func (cmd *ConfigCmd) runShow(_ context.Context, c *cli.Command) error {
	if cmd.flags.Config == nil {
		return fmt.Errorf("configuration not loaded")
	}

	return writeEffectiveConfig(c.Root().Writer, cmd.format, effectiveConfig{
		Path:   cmd.flags.ConfigPath,
		App:    cmd.flags.Config,
		Limits: randid.GetConfig(),
	})
}

func writeEffectiveConfig(w io.Writer, format string, cfg effectiveConfig) error {
	switch format {
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(cfg); err != nil {
			return err
		}
		return enc.Close()
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(cfg)
	default:
		return fmt.Errorf("unknown format %q (want yaml or json)", format)
	}
}

func (cmd *ConfigCmd) runValidate(ctx context.Context, c *cli.Command) error {
	res := doctor.NewConfigCheck(cmd.flags.Config, cmd.flags.ConfigPath).Run(ctx)
	report := doctor.NewReport([]doctor.Result{res})

	if cmd.format == "json" {
		if err := writeReportJSON(c.Root().Writer, report); err != nil {
			return err
		}
	} else {
		writeValidationText(printer.Ctx(ctx), report)
	}

	if !report.Healthy {
		return cli.Exit("", 1)
	}
	return nil
}

func writeValidationText(p *printer.Printer, report doctor.Report) {
	for _, res := range report.Checks {
		for _, item := range res.Items {
			switch item.Status {
			case doctor.StatusWarn:
				p.WarnItem(item.Label, item.Detail)
			case doctor.StatusFail:
				p.FailItem(item.Label, item.Detail)
			}
		}
	}

	if report.Warned+report.Failed > 0 {
		p.Printf("")
	}

	switch {
	case !report.Healthy:
		p.Errorf("%d error(s), %d warning(s)", report.Failed, report.Warned)
	case report.Warned > 0:
		p.Successf("Configuration is valid (%d warning(s))", report.Warned)
	default:
		p.Successf("Configuration is valid")
	}
}
