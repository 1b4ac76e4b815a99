package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/urfave/cli/v3"

	"github.com/hay-kot/shortid/internal/core/config"
	"github.com/hay-kot/shortid/internal/core/validate"
	"github.com/hay-kot/shortid/internal/printer"
	"github.com/hay-kot/shortid/internal/styles"
	"github.com/hay-kot/shortid/pkg/randid"
)

type RiskCmd struct {
	flags  *Flags
	length string
	format string
}

// NewRiskCmd creates a new risk command
func NewRiskCmd(flags *Flags) *RiskCmd {
	return &RiskCmd{flags: flags}
}

// Register adds the risk command to the application
func (cmd *RiskCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "risk",
		Usage:     "Show collision risk by ID length",
		UsageText: "shortid risk [options]",
		Description: `Estimates the probability that two of 100,000 IDs collide, for every
supported length or a single one, and classifies it:

  safe       probability below 0.1%
  moderate   probability below 10%
  high-risk  probability of 10% or more`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "length",
				Aliases:     []string{"l"},
				Usage:       "only show this length",
				Destination: &cmd.length,
			},
			&cli.StringFlag{
				Name:        "format",
				Usage:       "output format (text, json)",
				Value:       config.FormatText,
				Destination: &cmd.format,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *RiskCmd) run(ctx context.Context, c *cli.Command) error {
	if err := validate.Format(cmd.format); err != nil {
		return fmt.Errorf("format: %w", err)
	}

	length := 0
	if cmd.length != "" {
		var err error
		length, err = randid.ParseLength(cmd.length)
		if err != nil {
			return err
		}
	}

	assessments, err := cmd.flags.Service.Risk(length)
	if err != nil {
		return fmt.Errorf("assess risk: %w", err)
	}

	if cmd.format == config.FormatJSON {
		return writeRiskJSON(c.Root().Writer, assessments)
	}

	printer.Ctx(ctx).Infof("Collision risk across %s IDs", humanize.Comma(randid.ReferencePopulation))
	return writeRiskTable(c.Root().Writer, assessments)
}

func writeRiskTable(w io.Writer, assessments []randid.Assessment) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "LENGTH\tCOMBINATIONS\tPROBABILITY\tSAFETY")

	for _, a := range assessments {
		_, _ = fmt.Fprintf(tw, "%d\t%.2e\t%s\t%s\n",
			a.Length,
			a.Combinations,
			randid.FormatProbability(a.Probability),
			styles.Safety(a.Safety),
		)
	}

	return tw.Flush()
}

func writeRiskJSON(w io.Writer, assessments []randid.Assessment) error {
	type riskJSON struct {
		randid.Assessment
		Percent string `json:"percent"`
	}

	out := make([]riskJSON, len(assessments))
	for i, a := range assessments {
		out[i] = riskJSON{Assessment: a, Percent: randid.FormatProbability(a.Probability)}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
