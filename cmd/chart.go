package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/savings/renderer"
	"github.com/google/subcommands"
)

type chartCmd struct {
	width  int
	height int
}

func (*chartCmd) Name() string     { return "chart" }
func (*chartCmd) Synopsis() string { return "draw the total deposit over time" }
func (*chartCmd) Usage() string {
	return `sav chart [-width <n>] [-height <n>]

  Draws the total deposit of every record as a line chart in the terminal.
  Records with an unreadable date or total deposit are left out.
`
}

func (c *chartCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.width, "width", 0, "Chart width in cells. Defaults to the config file value.")
	f.IntVar(&c.height, "height", 0, "Chart height in cells. Defaults to the config file value.")
}

func (c *chartCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := OpenLedger(false)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading ledger: %v\n", err)
		return subcommands.ExitFailure
	}

	opts := renderer.ChartOptions{Width: config.Chart.Width, Height: config.Chart.Height}
	if c.width > 0 {
		opts.Width = c.width
	}
	if c.height > 0 {
		opts.Height = c.height
	}
	fmt.Println(renderer.Chart(ledger.Series(), opts))
	return subcommands.ExitSuccess
}
