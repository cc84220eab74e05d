package cmd

import (
	"errors"
	"flag"
	"fmt"
	"strings"

	"github.com/etnz/savings"
	"github.com/etnz/savings/date"
	"github.com/shopspring/decimal"
)

// entryFlags are the flags shared by the commands that describe a new record.
type entryFlags struct {
	date    string
	total   string
	salary  string
	fixed   string
	expense string
	note    string
}

func (e *entryFlags) SetFlags(f *flag.FlagSet) {
	f.StringVar(&e.date, "d", "", "Date of the record. Defaults to today. See 'sav topic format' for supported date formats.")
	f.StringVar(&e.total, "total", "", "Total deposit balance (required)")
	f.StringVar(&e.salary, "salary", "0", "Salary received since the previous record")
	f.StringVar(&e.fixed, "fixed", "", "Fixed-term deposit balance. Defaults to the previous one.")
	f.StringVar(&e.expense, "expense", "0", "Expense since the previous record. Only used for the first record.")
	f.StringVar(&e.note, "note", "", "Free-form note")
}

// entry converts the flags into an Entry, using l for defaults.
func (e *entryFlags) entry(l *savings.Ledger) (savings.Entry, error) {
	if strings.TrimSpace(e.total) == "" {
		return savings.Entry{}, errors.New("-total is required")
	}

	on := date.Today()
	if e.date != "" {
		var err error
		if on, err = date.Parse(e.date); err != nil {
			return savings.Entry{}, err
		}
	}

	total, err := parseDecimal("total", e.total)
	if err != nil {
		return savings.Entry{}, err
	}
	salary, err := parseDecimal("salary", e.salary)
	if err != nil {
		return savings.Entry{}, err
	}
	expense, err := parseDecimal("expense", e.expense)
	if err != nil {
		return savings.Entry{}, err
	}
	fixed := l.PreviousFixedDeposit()
	if e.fixed != "" {
		if fixed, err = parseDecimal("fixed", e.fixed); err != nil {
			return savings.Entry{}, err
		}
	}

	return savings.Entry{
		Date:         on,
		TotalDeposit: total,
		Salary:       salary,
		FixedDeposit: fixed,
		Expense:      expense,
		Note:         e.note,
	}, nil
}

func parseDecimal(name, value string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(value))
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid -%s %q: %w", name, value, err)
	}
	return d, nil
}
