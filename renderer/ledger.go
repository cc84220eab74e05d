package renderer

import (
	"bytes"
	"strconv"

	"github.com/etnz/savings"
	md "github.com/nao1215/markdown"
)

// LedgerMarkdown renders records as a markdown table. seqs holds the 1-based
// ledger position of each record.
func LedgerMarkdown(title string, seqs []int, records []savings.Record) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(title)
	if len(records) == 0 {
		doc.PlainText("No records.")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignRight,
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignLeft,
		},
		Header: []string{"#", "Date", "Total Deposit", "Salary", "Fixed Deposit", "Expense", "Monthly Deposit", "Disposable", "Note"},
		Rows:   [][]string{},
	}
	for i, rec := range records {
		row := []string{strconv.Itoa(seqs[i])}
		for c := savings.ColDate; c < savings.NumColumns; c++ {
			row = append(row, rec.Cell(c))
		}
		table.Rows = append(table.Rows, row)
	}
	doc.Table(table)

	return doc.String()
}
