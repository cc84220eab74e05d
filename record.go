package savings

import (
	"strings"

	"github.com/etnz/savings/date"
	"github.com/shopspring/decimal"
)

// Column identifies one cell of a Record, in file order.
type Column int

const (
	ColDate Column = iota
	ColTotalDeposit
	ColSalary
	ColFixedDeposit
	ColExpense
	ColMonthlyDeposit
	ColDisposableAmount
	ColNote

	// NumColumns is the number of cells in a Record.
	NumColumns
)

var columnNames = [NumColumns]string{
	"date",
	"totalDeposit",
	"salary",
	"fixedDeposit",
	"expense",
	"monthlyDeposit",
	"disposableAmount",
	"note",
}

func (c Column) String() string {
	if c < 0 || c >= NumColumns {
		return "unknown"
	}
	return columnNames[c]
}

// Record is one ledger row held as text cells.
//
// Records built by admission are always complete and canonical. Records read
// from a file may carry blank or malformed cells, which is why readers use
// the typed accessors below instead of assuming well-formed values.
type Record [NumColumns]string

// Cell returns the raw text of column c.
func (r Record) Cell(c Column) string { return r[c] }

// IsBlank reports whether every cell is empty or whitespace.
func (r Record) IsBlank() bool {
	for _, cell := range r {
		if !isBlank(cell) {
			return false
		}
	}
	return true
}

// Date parses the date cell with the permissive date formats.
func (r Record) Date() (date.Date, error) { return date.Parse(r[ColDate]) }

// Amount parses a numeric cell. Blank or malformed cells read as zero.
func (r Record) Amount(c Column) decimal.Decimal {
	d, _ := parseAmount(r[c])
	return d
}

// Note returns the free-form annotation.
func (r Record) Note() string { return r[ColNote] }

// Entry is a typed snapshot as supplied by the user before admission.
type Entry struct {
	Date             date.Date
	TotalDeposit     decimal.Decimal
	Salary           decimal.Decimal
	FixedDeposit     decimal.Decimal
	Expense          decimal.Decimal
	MonthlyDeposit   decimal.Decimal
	DisposableAmount decimal.Decimal // always recomputed on admission
	Note             string
}

// Precision is the number of decimal places of every stored amount.
const Precision = 2

// record formats the entry into canonical cells: 2 decimal places and yyyy/MM/dd.
func (e Entry) record() Record {
	return Record{
		ColDate:             e.Date.String(),
		ColTotalDeposit:     e.TotalDeposit.StringFixed(Precision),
		ColSalary:           e.Salary.StringFixed(Precision),
		ColFixedDeposit:     e.FixedDeposit.StringFixed(Precision),
		ColExpense:          e.Expense.StringFixed(Precision),
		ColMonthlyDeposit:   e.MonthlyDeposit.StringFixed(Precision),
		ColDisposableAmount: e.DisposableAmount.StringFixed(Precision),
		ColNote:             e.Note,
	}
}

func isBlank(cell string) bool { return strings.TrimSpace(cell) == "" }

func parseAmount(cell string) (decimal.Decimal, error) {
	return decimal.NewFromString(strings.TrimSpace(cell))
}
