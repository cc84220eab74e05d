package savings

import (
	"fmt"
	"log"
	"strings"

	"github.com/etnz/savings/date"
	"github.com/shopspring/decimal"
)

// Ledger is the single entry point to derive, validate, admit and persist
// records.
//
// In a Ledger records are always in chronological order: admission refuses
// any date that is not strictly after the previous one.
type Ledger struct {
	store   Store
	confirm Confirmer
	notify  Notifier
}

// Option configures a Ledger.
type Option func(*Ledger)

// WithConfirmer sets the collaborator asked to confirm a negative expense.
func WithConfirmer(c Confirmer) Option { return func(l *Ledger) { l.confirm = c } }

// WithNotifier sets the collaborator that receives advisories and errors.
func WithNotifier(n Notifier) Option { return func(l *Ledger) { l.notify = n } }

// NewLedger creates an empty ledger. Without options negative expenses are
// declined and notices are dropped.
func NewLedger(opts ...Option) *Ledger {
	l := &Ledger{confirm: Decline, notify: Discard}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Len returns the number of records, including blank rows left by a tolerant load.
func (l *Ledger) Len() int { return l.store.Len() }

// Records returns a copy of the records in ledger order.
func (l *Ledger) Records() []Record { return l.store.Records() }

// IsFirstRecord reports whether the ledger is empty. Expense is user input
// only for the first record; afterwards it is derived.
func (l *Ledger) IsFirstRecord() bool { return l.store.Len() == 0 }

// DisposableAmount returns totalDeposit - fixedDeposit.
func DisposableAmount(totalDeposit, fixedDeposit decimal.Decimal) decimal.Decimal {
	return totalDeposit.Sub(fixedDeposit)
}

// DeriveExpenseAndDeposit computes the expense and monthly deposit of an entry.
//
// Without prior records the expense is kept as given. With prior records it
// is overwritten by what is unaccounted for between the previous total
// deposit, the salary and the new total deposit. In both cases the deposit is
// salary - expense.
func (l *Ledger) DeriveExpenseAndDeposit(totalDeposit, salary, expense decimal.Decimal, hasPrior bool) (decimal.Decimal, decimal.Decimal) {
	if hasPrior {
		expense = l.PreviousTotalDeposit().Add(salary).Sub(totalDeposit)
	}
	return expense, salary.Sub(expense)
}

// PreviousTotalDeposit returns the most recent non-blank total deposit, or
// zero. Values read from a hand-edited file are rounded to 2 decimal places.
func (l *Ledger) PreviousTotalDeposit() decimal.Decimal { return l.previousAmount(ColTotalDeposit) }

// PreviousFixedDeposit returns the most recent non-blank fixed deposit, or
// zero. It is the default fixed deposit of the next entry.
func (l *Ledger) PreviousFixedDeposit() decimal.Decimal { return l.previousAmount(ColFixedDeposit) }

func (l *Ledger) previousAmount(c Column) decimal.Decimal {
	cell, ok := l.store.LastNonEmpty(c)
	if !ok {
		return decimal.Zero
	}
	d, _ := parseAmount(cell)
	return d.Round(Precision)
}

// PreviousDate returns the most recent date that parses. Unparseable date
// cells are skipped.
func (l *Ledger) PreviousDate() (date.Date, bool) {
	cell, ok := l.store.LastMatching(ColDate, func(cell string) bool {
		_, err := date.Parse(cell)
		return err == nil
	})
	if !ok {
		return date.Date{}, false
	}
	return date.MustParse(cell), true
}

// Prepare returns e with its derived fields filled in the way they will be
// admitted: disposable amount, expense (after the first record) and monthly
// deposit.
//
// Amounts are rounded to 2 decimal places first, so that validation and
// derivation see the values that are stored.
func (l *Ledger) Prepare(e Entry) Entry {
	e.TotalDeposit = e.TotalDeposit.Round(Precision)
	e.Salary = e.Salary.Round(Precision)
	e.FixedDeposit = e.FixedDeposit.Round(Precision)
	e.Expense = e.Expense.Round(Precision)
	e.DisposableAmount = DisposableAmount(e.TotalDeposit, e.FixedDeposit)
	e.Expense, e.MonthlyDeposit = l.DeriveExpenseAndDeposit(e.TotalDeposit, e.Salary, e.Expense, !l.IsFirstRecord())
	return e
}

// Admit derives, validates and appends an entry.
//
// Validation stops at the first failure, which is reported to the Notifier
// and returned as a *ValidationError. On failure the ledger is unchanged.
// Admit does not persist; call Save or SaveFile afterwards.
func (l *Ledger) Admit(e Entry) error {
	e = l.Prepare(e)
	if err := l.validate(e); err != nil {
		l.notify.Notify(Error, err.Error())
		return err
	}

	if l.IsFirstRecord() && e.Expense.IsZero() {
		l.notify.Notify(Warning, "this is the first record and its expense is 0, please check it is correct")
	}
	if strings.ContainsAny(e.Note, Delimiter+"\r\n") {
		l.notify.Notify(Warning, "the note contains a comma or a line break, it will be cut when the ledger is read back")
	}

	if n := l.store.RemoveBlank(); n > 0 {
		log.Printf("removed %d blank record(s) before appending %v", n, e.Date)
	}
	l.store.Append(e.record())
	return nil
}

func (l *Ledger) validate(e Entry) error {
	if e.Date.IsZero() {
		return invalid(InvalidDate, "the date is missing")
	}
	if prev, ok := l.PreviousDate(); ok && !e.Date.After(prev) {
		return invalid(InvalidDate, fmt.Sprintf("%v must be after the previous record date %v", e.Date, prev))
	}
	if !e.TotalDeposit.IsPositive() {
		return invalid(NonPositiveTotalDeposit, fmt.Sprintf("total deposit %s must be greater than 0", e.TotalDeposit.StringFixed(2)))
	}
	if e.Salary.IsNegative() {
		return invalid(NegativeSalary, fmt.Sprintf("salary %s cannot be negative", e.Salary.StringFixed(2)))
	}
	if e.FixedDeposit.IsNegative() {
		return invalid(NegativeFixedDeposit, fmt.Sprintf("fixed deposit %s cannot be negative", e.FixedDeposit.StringFixed(2)))
	}
	if e.FixedDeposit.GreaterThan(e.TotalDeposit) {
		return invalid(FixedExceedsTotal, fmt.Sprintf("fixed deposit %s cannot exceed total deposit %s", e.FixedDeposit.StringFixed(2), e.TotalDeposit.StringFixed(2)))
	}
	if !l.IsFirstRecord() {
		prev := l.PreviousTotalDeposit()
		if limit := prev.Add(e.Salary); e.TotalDeposit.GreaterThan(limit) {
			return invalid(TotalExceedsPriorPlusSalary, fmt.Sprintf("total deposit %s cannot exceed previous total %s plus salary %s", e.TotalDeposit.StringFixed(2), prev.StringFixed(2), e.Salary.StringFixed(2)))
		}
	}
	if e.Expense.IsNegative() {
		if !l.confirm.Confirm(fmt.Sprintf("The expense is negative (%s), continue?", e.Expense.StringFixed(2))) {
			return invalid(NegativeExpenseUnconfirmed, "the negative expense was not confirmed")
		}
	}
	return nil
}
