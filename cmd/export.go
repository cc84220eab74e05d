package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type exportCmd struct {
	query string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "write the ledger as JSON" }
func (*exportCmd) Usage() string {
	return `sav export [-q <jsonpath>]

  Writes the records and the total deposit series as a JSON document on stdout:

    {"records": [{"date": ..., "totalDeposit": ..., ...}], "series": [{"date": ..., "totalDeposit": ...}]}

  -q selects part of the document with a JSONPath expression.

Usage Examples:
$ sav export -q '$.series[*].totalDeposit'
$ sav export -q '$.records[?(@.expense < 0)]'
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.query, "q", "", "JSONPath expression selecting the output")
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := OpenLedger(false)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading ledger: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := ledger.EncodeJSON(os.Stdout, c.query); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
