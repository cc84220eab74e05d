package savings

import (
	"testing"

	"github.com/etnz/savings/date"
	"github.com/shopspring/decimal"
)

// D is a helper for test to create decimals from const.
func D(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// entry is a helper to build an Entry with the most used fields.
func entry(day string, total, salary, fixed, expense string) Entry {
	return Entry{
		Date:         date.MustParse(day),
		TotalDeposit: D(total),
		Salary:       D(salary),
		FixedDeposit: D(fixed),
		Expense:      D(expense),
	}
}

type notice struct {
	kind    NoticeKind
	message string
}

// recorder collects notices and answers confirmations with a fixed value.
type recorder struct {
	answer    bool
	questions []string
	notices   []notice
}

func (r *recorder) Confirm(question string) bool {
	r.questions = append(r.questions, question)
	return r.answer
}

func (r *recorder) Notify(kind NoticeKind, message string) {
	r.notices = append(r.notices, notice{kind, message})
}

func (r *recorder) count(kind NoticeKind) int {
	n := 0
	for _, nt := range r.notices {
		if nt.kind == kind {
			n++
		}
	}
	return n
}

// mustAdmit admits entries in order and fails the test on the first error.
func mustAdmit(t *testing.T, l *Ledger, entries ...Entry) {
	t.Helper()
	for _, e := range entries {
		if err := l.Admit(e); err != nil {
			t.Fatalf("Admit(%v) unexpected error: %v", e.Date, err)
		}
	}
}
