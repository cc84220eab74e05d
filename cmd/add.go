package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type addCmd struct {
	entryFlags
	yes bool
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "add a record to the ledger" }
func (*addCmd) Usage() string {
	return `sav add [-d <date>] -total <amount> [-salary <amount>] [-fixed <amount>] [-expense <amount>] [-note <text>] [-yes]

  Derives the expense, monthly deposit and disposable amount of a new record,
  checks it against the previous record, appends it and saves the ledger.

  The expense is only read for the first record, afterwards it is derived
  from the previous total deposit. See 'sav topic admission'.

Usage Examples:
$ sav add -d 2024/01/31 -total 1000 -salary 500 -expense 300
$ sav add -d 2024/02/29 -total 1400 -salary 600 -note "raise"
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	c.entryFlags.SetFlags(f)
	f.BoolVar(&c.yes, "yes", false, "Answer yes to confirmations")
}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := OpenLedger(c.yes)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading ledger: %v\n", err)
		return subcommands.ExitFailure
	}

	entry, err := c.entry(ledger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	// Admit and SaveFile report their errors to the terminal notifier.
	if err := ledger.Admit(entry); err != nil {
		return subcommands.ExitFailure
	}
	if err := SaveLedger(ledger); err != nil {
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
