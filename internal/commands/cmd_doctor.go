package commands

import (
	"context"
	"encoding/json"
	"io"

	"github.com/urfave/cli/v3"

	"github.com/hay-kot/shortid/internal/commands/doctor"
	"github.com/hay-kot/shortid/internal/printer"
)

type DoctorCmd struct {
	flags  *Flags
	format string
	draws  int
}

func NewDoctorCmd(flags *Flags) *DoctorCmd {
	return &DoctorCmd{flags: flags}
}

func (cmd *DoctorCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:        "doctor",
		Usage:       "Run health checks on the generator setup",
		UsageText:   "shortid doctor [options]",
		Description: "Checks the configuration, confirms the random source is readable and samples it for an even spread over the alphabet.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "format",
				Usage:       "output format (text, json)",
				Value:       "text",
				Destination: &cmd.format,
			},
			&cli.IntFlag{
				Name:        "draws",
				Usage:       "number of samples for the uniformity check",
				Value:       doctor.DefaultUniformityDraws,
				Destination: &cmd.draws,
			},
		},
		Action: cmd.run,
	})
	return app
}

func (cmd *DoctorCmd) run(ctx context.Context, c *cli.Command) error {
	report := doctor.NewReport(doctor.RunAll(ctx, []doctor.Check{
		doctor.NewConfigCheck(cmd.flags.Config, cmd.flags.ConfigPath),
		doctor.NewSourceCheck(cmd.flags.Config),
		doctor.NewUniformityCheck(cmd.flags.Config, cmd.draws),
	}))

	var err error
	if cmd.format == "json" {
		err = writeReportJSON(c.Root().Writer, report)
	} else {
		writeReportText(printer.Ctx(ctx), report)
	}
	if err != nil {
		return err
	}

	if !report.Healthy {
		return cli.Exit("", 1)
	}
	return nil
}

func writeReportJSON(w io.Writer, report doctor.Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}

func writeReportText(p *printer.Printer, report doctor.Report) {
	for _, res := range report.Checks {
		p.Section(res.Name)
		for _, item := range res.Items {
			switch item.Status {
			case doctor.StatusPass:
				p.CheckItem(item.Label, item.Detail)
			case doctor.StatusWarn:
				p.WarnItem(item.Label, item.Detail)
			default:
				p.FailItem(item.Label, item.Detail)
			}
		}
		p.Printf("")
	}

	p.Printf("Summary: %d passed, %d warnings, %d failed", report.Passed, report.Warned, report.Failed)
}
