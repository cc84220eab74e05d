package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/savings/date"
	"github.com/etnz/savings/renderer"
	"github.com/google/subcommands"
)

// summaryCmd holds the flags for the 'summary' subcommand.
type summaryCmd struct {
	start  string
	end    string
	period string
	on     string
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display the balances and flows over a period" }
func (*summaryCmd) Usage() string {
	return `sav summary [-s <start_date>] [-e <end_date>] | [-p <period> [-d <date>]]

  Displays the latest balances and the sums of salary, expense and monthly
  deposit of the records in the period. Defaults to the whole ledger.

  -p selects the month, quarter or year containing -d, which defaults to the
  date of the last record.

Usage Examples:
$ sav summary -s 2024/01/01 -e 2024/12/31
$ sav summary -p quarter
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.start, "s", "", "The start date of the period (included).")
	f.StringVar(&c.end, "e", "", "The end date of the period (included).")
	f.StringVar(&c.period, "p", "", "Calendar period: monthly, quarterly or yearly.")
	f.StringVar(&c.on, "d", "", "A date in the calendar period. Defaults to the last record date.")
}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.period != "" && (c.start != "" || c.end != "") {
		fmt.Fprintln(os.Stderr, "Error: -p cannot be used with -s or -e.")
		return subcommands.ExitUsageError
	}
	r, err := parseRange(c.start, c.end)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	ledger, err := OpenLedger(false)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading ledger %q: %v\n", *ledgerFile, err)
		return subcommands.ExitFailure
	}

	if c.period != "" {
		if r, err = c.periodRange(ledger.PreviousDate); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
	}

	printMarkdown(renderer.SummaryMarkdown(ledger.Summary(r)))
	return subcommands.ExitSuccess
}

// periodRange resolves -p and -d. last returns the default date.
func (c *summaryCmd) periodRange(last func() (date.Date, bool)) (date.Range, error) {
	p, err := date.ParsePeriod(c.period)
	if err != nil {
		return date.Range{}, err
	}
	on, ok := last()
	if c.on != "" {
		if on, err = date.Parse(c.on); err != nil {
			return date.Range{}, err
		}
	} else if !ok {
		on = date.Today()
	}
	return p.Range(on), nil
}
