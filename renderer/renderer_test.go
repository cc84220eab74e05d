package renderer

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/x/ansi"
	"github.com/etnz/savings"
	"github.com/etnz/savings/date"
	"github.com/shopspring/decimal"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
)

// countTables parses markdown with the GFM table extension and returns the
// number of tables and the number of body rows of the first one.
func countTables(t *testing.T, src string) (tables, rows int) {
	t.Helper()
	parser := goldmark.New(goldmark.WithExtensions(extension.Table)).Parser()
	doc := parser.Parse(text.NewReader([]byte(src)))
	err := ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch n.Kind() {
		case east.KindTable:
			tables++
		case east.KindTableRow:
			if tables == 1 {
				rows++
			}
		}
		return ast.WalkContinue, nil
	})
	if err != nil {
		t.Fatalf("ast.Walk() unexpected error: %v", err)
	}
	return tables, rows
}

func loadLedger(t *testing.T) *savings.Ledger {
	t.Helper()
	l, err := savings.DecodeLedger(strings.NewReader(`1,2024/01/31,1000.00,500.00,0.00,300.00,200.00,1000.00,first
2,2024/02/29,1400.00,600.00,100.00,200.00,400.00,1300.00,
`))
	if err != nil {
		t.Fatalf("DecodeLedger() unexpected error: %v", err)
	}
	return l
}

func TestLedgerMarkdown(t *testing.T) {
	l := loadLedger(t)
	seqs, records := l.Filter(date.Range{})
	got := LedgerMarkdown("Ledger", seqs, records)

	tables, rows := countTables(t, got)
	if tables != 1 || rows != 2 {
		t.Errorf("got %d tables with %d rows, want 1 table with 2 rows:\n%s", tables, rows, got)
	}
	for _, want := range []string{"# Ledger", "2024/02/29", "1300.00", "first", "Monthly Deposit"} {
		if !strings.Contains(got, want) {
			t.Errorf("LedgerMarkdown() does not contain %q:\n%s", want, got)
		}
	}
}

func TestLedgerMarkdown_Empty(t *testing.T) {
	got := LedgerMarkdown("Ledger", nil, nil)
	if tables, _ := countTables(t, got); tables != 0 {
		t.Errorf("empty ledger rendered %d tables", tables)
	}
	if !strings.Contains(got, "No records.") {
		t.Errorf("LedgerMarkdown() = %q, want a no records message", got)
	}
}

func TestSummaryMarkdown(t *testing.T) {
	got := SummaryMarkdown(loadLedger(t).Summary(date.Range{}))

	if tables, _ := countTables(t, got); tables != 2 {
		t.Errorf("got %d tables, want 2:\n%s", tables, got)
	}
	for _, want := range []string{"2024/01/31 to 2024/02/29", "+400.00", "Average Monthly Deposit", "300.00"} {
		if !strings.Contains(got, want) {
			t.Errorf("SummaryMarkdown() does not contain %q:\n%s", want, got)
		}
	}

	empty := SummaryMarkdown(savings.Summary{})
	if !strings.Contains(empty, "No records in this period.") {
		t.Errorf("SummaryMarkdown(empty) = %q", empty)
	}
}

func TestPreviewMarkdown(t *testing.T) {
	e := savings.Entry{
		Date:             date.New(2024, time.February, 29),
		TotalDeposit:     decimal.RequireFromString("1400"),
		Salary:           decimal.RequireFromString("600"),
		FixedDeposit:     decimal.RequireFromString("100"),
		Expense:          decimal.RequireFromString("200"),
		MonthlyDeposit:   decimal.RequireFromString("400"),
		DisposableAmount: decimal.RequireFromString("1300"),
		Note:             "bonus",
	}

	t.Run("derived expense", func(t *testing.T) {
		got := PreviewMarkdown(&Preview{Entry: e, PreviousTotal: decimal.RequireFromString("1000")})
		tables, rows := countTables(t, got)
		if tables != 1 || rows != 7 {
			t.Errorf("got %d tables with %d rows, want 1 table with 7 rows:\n%s", tables, rows, got)
		}
		for _, want := range []string{"# Preview for 2024/02/29", "| Disposable | 1300.00 |", "| Note | bonus |", "1000.00 (previous total deposit)"} {
			if !strings.Contains(got, want) {
				t.Errorf("PreviewMarkdown() does not contain %q:\n%s", want, got)
			}
		}
	})

	t.Run("first record", func(t *testing.T) {
		first := e
		first.Note = ""
		first.Expense = decimal.Zero
		got := PreviewMarkdown(&Preview{Entry: first, First: true})
		if _, rows := countTables(t, got); rows != 6 {
			t.Errorf("got %d rows, want 6 without a note:\n%s", rows, got)
		}
		for _, want := range []string{"taken as entered", "An expense of 0 is unusual"} {
			if !strings.Contains(got, want) {
				t.Errorf("PreviewMarkdown() does not contain %q:\n%s", want, got)
			}
		}
	})
}

func TestChart(t *testing.T) {
	t.Run("no data", func(t *testing.T) {
		got := ansi.Strip(Chart(nil, ChartOptions{}))
		if got != "No data for the total deposit chart." {
			t.Errorf("Chart(nil) = %q", got)
		}
	})

	points := loadLedger(t).Series()
	for _, tc := range []struct {
		name   string
		points []savings.Point
	}{
		{"series", points},
		{"single point", points[:1]},
	} {
		t.Run(tc.name, func(t *testing.T) {
			opts := ChartOptions{Width: 40, Height: 10}
			got := Chart(tc.points, opts)
			if strings.TrimSpace(ansi.Strip(got)) == "" {
				t.Fatal("Chart() rendered nothing")
			}
			for i, line := range strings.Split(got, "\n") {
				if w := ansi.StringWidth(line); w > opts.Width {
					t.Errorf("line %d is %d cells wide, want at most %d", i, w, opts.Width)
				}
			}
		})
	}
}
