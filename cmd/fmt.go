package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type fmtCmd struct{}

func (*fmtCmd) Name() string { return "fmt" }
func (*fmtCmd) Synopsis() string {
	return "rewrites the ledger file into its canonical form"
}
func (*fmtCmd) Usage() string {
	return `sav fmt

  Reads the ledger file tolerantly and writes it back in the canonical form:
  one numbered line per record, lines that are not records are dropped.
  Cells are not modified. See 'sav topic format'.

Usage Examples:
# Rewrites the default ledger file.
$ sav fmt
`
}

func (p *fmtCmd) SetFlags(f *flag.FlagSet) {}

func (p *fmtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := OpenLedger(false)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading ledger: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := SaveLedger(ledger); err != nil {
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
