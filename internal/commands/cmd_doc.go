package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/dustin/go-humanize"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/hay-kot/shortid/pkg/randid"
)

type DocCmd struct {
	flags *Flags
	raw   bool
}

func NewDocCmd(flags *Flags) *DocCmd {
	return &DocCmd{flags: flags}
}

func (cmd *DocCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:  "doc",
		Usage: "Documentation and guides",
		Description: `Access documentation for shortid.

Use 'shortid doc collisions' to see how ID length relates to collision risk.`,
		Commands: []*cli.Command{
			cmd.collisionsCmd(),
		},
	})
	return app
}

func (cmd *DocCmd) collisionsCmd() *cli.Command {
	return &cli.Command{
		Name:  "collisions",
		Usage: "Show the collision risk guide",
		Description: `Outputs a guide to choosing an ID length, with the estimated collision
probability for every supported length.

The guide is rendered for the terminal when stdout is a TTY. Use --raw to
print the markdown source.`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "raw",
				Usage:       "print markdown without rendering",
				Destination: &cmd.raw,
			},
		},
		Action: cmd.runCollisions,
	}
}

func (cmd *DocCmd) runCollisions(_ context.Context, c *cli.Command) error {
	assessments, err := cmd.flags.Service.Risk(0)
	if err != nil {
		return err
	}

	guide := collisionGuide(assessments)
	w := c.Root().Writer

	fd := os.Stdout.Fd()
	if cmd.raw || !term.IsTerminal(int(fd)) {
		_, err := io.WriteString(w, guide)
		return err
	}

	width := 80
	if tw, _, err := term.GetSize(int(fd)); err == nil && tw > 0 {
		width = tw
	}

	out, err := renderMarkdown(guide, width)
	if err != nil {
		return fmt.Errorf("render guide: %w", err)
	}

	_, err = io.WriteString(w, out)
	return err
}

func renderMarkdown(md string, width int) (string, error) {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("tokyo-night"),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", err
	}
	return renderer.Render(md)
}

func collisionGuide(assessments []randid.Assessment) string {
	var b strings.Builder

	population := humanize.Comma(randid.ReferencePopulation)

	b.WriteString("# Choosing an ID Length\n\n")
	fmt.Fprintf(&b, "IDs are drawn uniformly from a %d character alphabet:\n\n", len(randid.Charset))
	b.WriteString("```\n" + randid.Charset + "\n```\n\n")
	fmt.Fprintf(&b, "Lengths from %d to %d are accepted. The default is %d.\n\n",
		randid.MinLength, randid.MaxLength, randid.DefaultLength)

	b.WriteString("## Estimating Risk\n\n")
	fmt.Fprintf(&b, "The chance that any two of `n` IDs of length `L` collide is approximated by the birthday bound:\n\n")
	fmt.Fprintf(&b, "```\np = 1 - exp(-n(n-1) / (2 * %d^L))\n```\n\n", len(randid.Charset))
	fmt.Fprintf(&b, "The table below uses `n = %s`.\n\n", population)

	b.WriteString("| Length | Combinations | Probability | Safety |\n")
	b.WriteString("|-------:|-------------:|------------:|:-------|\n")
	for _, a := range assessments {
		fmt.Fprintf(&b, "| %d | %.2e | %s | %s |\n",
			a.Length, a.Combinations, randid.FormatProbability(a.Probability), a.Safety)
	}
	b.WriteString("\n")

	b.WriteString("## Safety Levels\n\n")
	fmt.Fprintf(&b, "- **%s**: probability below %s\n", randid.SafetySafe, randid.FormatProbability(randid.SafeThreshold))
	fmt.Fprintf(&b, "- **%s**: probability below %s\n", randid.SafetyModerate, randid.FormatProbability(randid.ModerateThreshold))
	fmt.Fprintf(&b, "- **%s**: anything higher\n\n", randid.SafetyHighRisk)

	b.WriteString("## Recommendations\n\n")
	fmt.Fprintf(&b, "- The default length suits small collections. Check `shortid risk --length %d` before relying on it at scale.\n", randid.DefaultLength)
	fmt.Fprintf(&b, "- For %s or more IDs pick a length marked safe.\n", population)
	b.WriteString("- Uniqueness is probabilistic. Store IDs behind a unique constraint if a duplicate would be harmful.\n")

	return b.String()
}
