package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/savings/renderer"
	"github.com/google/subcommands"
)

type previewCmd struct {
	entryFlags
}

func (*previewCmd) Name() string     { return "preview" }
func (*previewCmd) Synopsis() string { return "show the values a record would be added with" }
func (*previewCmd) Usage() string {
	return `sav preview [-d <date>] -total <amount> [-salary <amount>] [-fixed <amount>] [-expense <amount>] [-note <text>]

  Same flags as 'sav add'. Prints the derived values without checking them
  and without writing the ledger file, not even creating a missing one.
`
}

func (c *previewCmd) SetFlags(f *flag.FlagSet) { c.entryFlags.SetFlags(f) }

func (c *previewCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := ReadLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading ledger: %v\n", err)
		return subcommands.ExitFailure
	}

	entry, err := c.entry(ledger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	printMarkdown(renderer.PreviewMarkdown(&renderer.Preview{
		Entry:         ledger.Prepare(entry),
		First:         ledger.IsFirstRecord(),
		PreviousTotal: ledger.PreviousTotalDeposit(),
	}))
	return subcommands.ExitSuccess
}
