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

type listCmd struct {
	start string
	end   string
	head  int
	tail  int
}

func (*listCmd) Name() string     { return "list" }
func (*listCmd) Synopsis() string { return "list the records of the ledger" }
func (*listCmd) Usage() string {
	return `sav list [-s <start_date>] [-e <end_date>] [-head <n>] [-tail <n>]

  Lists records from the ledger, with options for filtering and limiting the output.
  Without -s and -e every record is listed, including the ones whose date cannot be read.
`
}

func (p *listCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.start, "s", "", "The start date of the range (included).")
	f.StringVar(&p.end, "e", "", "The end date of the range (included).")
	f.IntVar(&p.head, "head", 0, "Show only the first N records.")
	f.IntVar(&p.tail, "tail", 0, "Show only the last N records.")
}

func (p *listCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if p.head > 0 && p.tail > 0 {
		fmt.Fprintln(os.Stderr, "Error: -head and -tail flags cannot be used together.")
		return subcommands.ExitUsageError
	}

	r, err := parseRange(p.start, p.end)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	ledger, err := OpenLedger(false)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading ledger: %v\n", err)
		return subcommands.ExitFailure
	}

	seqs, records := ledger.Filter(r)
	if p.head > 0 && len(records) > p.head {
		seqs, records = seqs[:p.head], records[:p.head]
	}
	if p.tail > 0 && len(records) > p.tail {
		seqs, records = seqs[len(seqs)-p.tail:], records[len(records)-p.tail:]
	}

	printMarkdown(renderer.LedgerMarkdown("Ledger", seqs, records))
	return subcommands.ExitSuccess
}

// parseRange parses optional range boundaries. An empty boundary leaves that side open.
func parseRange(start, end string) (date.Range, error) {
	var r date.Range
	var err error
	if start != "" {
		if r.From, err = date.Parse(start); err != nil {
			return r, fmt.Errorf("invalid start date: %w", err)
		}
	}
	if end != "" {
		if r.To, err = date.Parse(end); err != nil {
			return r, fmt.Errorf("invalid end date: %w", err)
		}
	}
	if !r.From.IsZero() && !r.To.IsZero() && r.To.Before(r.From) {
		return r, fmt.Errorf("end date %s is before start date %s", r.To, r.From)
	}
	return r, nil
}
