package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/hay-kot/shortid/pkg/randid"
)

type CharsetCmd struct{}

// NewCharsetCmd creates a new charset command
func NewCharsetCmd() *CharsetCmd {
	return &CharsetCmd{}
}

// Register adds the charset command to the application
func (cmd *CharsetCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:        "charset",
		Usage:       "Print the ID alphabet",
		UsageText:   "shortid charset",
		Description: "Prints the 62 characters IDs are drawn from, in sampling order.",
		Action: func(_ context.Context, c *cli.Command) error {
			_, err := fmt.Fprintln(c.Root().Writer, randid.GetCharset())
			return err
		},
	})

	return app
}
