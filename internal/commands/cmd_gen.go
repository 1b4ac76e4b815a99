package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/charmbracelet/huh"
	"github.com/dustin/go-humanize"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/hay-kot/shortid/internal/core/config"
	"github.com/hay-kot/shortid/internal/core/validate"
	"github.com/hay-kot/shortid/internal/idgen"
	"github.com/hay-kot/shortid/internal/printer"
	"github.com/hay-kot/shortid/internal/styles"
	"github.com/hay-kot/shortid/pkg/randid"
)

type GenCmd struct {
	flags *Flags

	// Command-specific flags
	length      string
	count       int
	info        bool
	format      string
	template    string
	interactive bool
}

// NewGenCmd creates a new gen command
func NewGenCmd(flags *Flags) *GenCmd {
	return &GenCmd{flags: flags}
}

// Register adds the gen command to the application
func (cmd *GenCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "gen",
		Aliases:   []string{"generate"},
		Usage:     "Generate random IDs",
		UsageText: "shortid gen [options]",
		Description: `Generates IDs from the 62 character alphabet [a-zA-Z0-9] using the
system's cryptographically secure random source.

Length must be an integer between 7 and 32. Every character is an
independent, unbiased draw, so IDs are unique only with high probability;
use --info to see the collision risk for the chosen length.

Examples:
  shortid gen                     # one 7 character ID
  shortid gen -l 12 -n 5          # five 12 character IDs
  shortid gen -l 10 --info        # include the collision assessment
  shortid gen -t 'usr_{{ .ID }}'  # prefix every ID
  shortid gen --format json -n 3`,
		Flags:  cmd.Flags(),
		Action: cmd.run,
	})

	return app
}

// Flags returns the gen flags. They are also registered on the root command
// so that running shortid without a subcommand generates IDs, and are local so
// they do not leak into the other subcommands.
func (cmd *GenCmd) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "length",
			Aliases:     []string{"l"},
			Usage:       fmt.Sprintf("ID length (%d-%d, defaults to config)", randid.MinLength, randid.MaxLength),
			Local:       true,
			Destination: &cmd.length,
		},
		&cli.IntFlag{
			Name:        "count",
			Aliases:     []string{"n"},
			Usage:       "number of IDs to generate (defaults to config)",
			Local:       true,
			Destination: &cmd.count,
		},
		&cli.BoolFlag{
			Name:        "info",
			Aliases:     []string{"i"},
			Usage:       "include the collision assessment",
			Local:       true,
			Destination: &cmd.info,
		},
		&cli.StringFlag{
			Name:        "format",
			Usage:       "output format (text, json)",
			Local:       true,
			Destination: &cmd.format,
		},
		&cli.StringFlag{
			Name:        "template",
			Aliases:     []string{"t"},
			Usage:       "output template, e.g. 'usr_{{ .ID }}'",
			Local:       true,
			Destination: &cmd.template,
		},
		&cli.BoolFlag{
			Name:        "interactive",
			Usage:       "prompt for length and format",
			Local:       true,
			Destination: &cmd.interactive,
		},
	}
}

// Run executes the gen command. Exported for use as default command.
func (cmd *GenCmd) Run(ctx context.Context, c *cli.Command) error {
	return cmd.run(ctx, c)
}

func (cmd *GenCmd) run(ctx context.Context, c *cli.Command) error {
	if cmd.interactive {
		if err := cmd.prompt(); err != nil {
			return fmt.Errorf("interactive prompt: %w", err)
		}
	}

	opts := idgen.Options{
		Count:    cmd.count,
		Info:     cmd.info,
		Template: cmd.template,
	}

	if cmd.length != "" {
		length, err := randid.ParseLength(cmd.length)
		if err != nil {
			return err
		}
		opts.Length = length
	}

	format := cmd.format
	if format == "" {
		format = cmd.flags.Config.Format
	}
	if err := validate.Format(format); err != nil {
		return fmt.Errorf("format: %w", err)
	}

	items, err := cmd.flags.Service.Generate(ctx, opts)
	if err != nil {
		return fmt.Errorf("generate: %w", err)
	}

	if format == config.FormatJSON {
		return writeItemsJSON(c.Root().Writer, items)
	}

	writeItemsText(c.Root().Writer, printer.Ctx(ctx), items)
	return nil
}

// prompt asks for length and format using a huh form.
func (cmd *GenCmd) prompt() error {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return fmt.Errorf("stdin is not a terminal")
	}

	length := cmd.length
	if length == "" {
		length = strconv.Itoa(cmd.flags.Config.Length)
	}

	format := cmd.format
	if format == "" {
		format = cmd.flags.Config.Format
	}

	form := huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title("Length").
			Description(fmt.Sprintf("%d-%d characters", randid.MinLength, randid.MaxLength)).
			Value(&length).
			Validate(func(s string) error {
				_, err := randid.ParseLength(s)
				return err
			}),
		huh.NewSelect[string]().
			Title("Format").
			Options(huh.NewOptions(config.FormatText, config.FormatJSON)...).
			Value(&format),
		huh.NewConfirm().
			Title("Include collision assessment?").
			Value(&cmd.info),
	)).WithTheme(styles.FormTheme())

	if err := form.Run(); err != nil {
		return err
	}

	cmd.length = length
	cmd.format = format
	return nil
}

// writeItemsText prints one ID per line to w. The collision assessment is the
// same for every ID of a batch, so it is printed once to the printer.
func writeItemsText(w io.Writer, p *printer.Printer, items []idgen.Item) {
	for _, item := range items {
		out := item.ID
		if item.Formatted != "" {
			out = item.Formatted
		}
		_, _ = fmt.Fprintln(w, out)
	}

	if len(items) == 0 || items[0].Safety == "" {
		return
	}

	first := items[0]
	p.Printf("")
	p.Field("safety", styles.Safety(first.Safety))
	p.Field("collision probability", fmt.Sprintf("%s across %s IDs", first.CollisionProbability, humanize.Comma(randid.ReferencePopulation)))
	p.Field("recommendation", first.Recommendation)
}

func writeItemsJSON(w io.Writer, items []idgen.Item) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(items)
}
