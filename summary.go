package savings

import (
	"github.com/etnz/savings/date"
	"github.com/shopspring/decimal"
)

// Summary aggregates the ledger over a date range.
type Summary struct {
	Range   date.Range
	Records int
	First   date.Date
	Last    date.Date

	FirstTotalDeposit decimal.Decimal
	TotalDeposit      decimal.Decimal // latest
	FixedDeposit      decimal.Decimal // latest
	DisposableAmount  decimal.Decimal // latest
	Salary            decimal.Decimal // sum
	Expense           decimal.Decimal // sum
	MonthlyDeposit    decimal.Decimal // sum
}

// Change returns how much the total deposit moved between the first and the
// latest record of the summary.
func (s Summary) Change() decimal.Decimal { return s.TotalDeposit.Sub(s.FirstTotalDeposit) }

// AverageMonthlyDeposit returns MonthlyDeposit / Records, or zero when empty.
func (s Summary) AverageMonthlyDeposit() decimal.Decimal {
	if s.Records == 0 {
		return decimal.Zero
	}
	return s.MonthlyDeposit.Div(decimal.NewFromInt(int64(s.Records)))
}

// Summary computes the Summary of the records whose date parses and is in r.
// Records are visited in ledger order; blank or malformed amounts count as zero.
func (l *Ledger) Summary(r date.Range) Summary {
	s := Summary{Range: r}
	for _, rec := range l.store.records {
		day, err := rec.Date()
		if err != nil || !r.Contains(day) {
			continue
		}
		if s.Records == 0 {
			s.First = day
			s.FirstTotalDeposit = rec.Amount(ColTotalDeposit)
		}
		s.Records++
		s.Last = day
		s.TotalDeposit = rec.Amount(ColTotalDeposit)
		s.FixedDeposit = rec.Amount(ColFixedDeposit)
		s.DisposableAmount = rec.Amount(ColDisposableAmount)
		s.Salary = s.Salary.Add(rec.Amount(ColSalary))
		s.Expense = s.Expense.Add(rec.Amount(ColExpense))
		s.MonthlyDeposit = s.MonthlyDeposit.Add(rec.Amount(ColMonthlyDeposit))
	}
	return s
}

// Filter returns the records whose date parses and is in r, with their
// 1-based position in the ledger. An open range keeps every record.
func (l *Ledger) Filter(r date.Range) (seqs []int, records []Record) {
	open := r.From.IsZero() && r.To.IsZero()
	for i, rec := range l.store.records {
		if !open {
			day, err := rec.Date()
			if err != nil || !r.Contains(day) {
				continue
			}
		}
		seqs = append(seqs, i+1)
		records = append(records, rec)
	}
	return seqs, records
}
