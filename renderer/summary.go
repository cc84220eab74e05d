package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/savings"
	md "github.com/nao1215/markdown"
)

func SummaryMarkdown(s savings.Summary) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	if s.Records == 0 {
		doc.H1("Savings Summary")
		doc.PlainText("No records in this period.")
		return doc.String()
	}

	doc.H1(fmt.Sprintf("Savings Summary from %s to %s", s.First, s.Last))
	doc.PlainText(fmt.Sprintf("Total Deposit: %s (%s since %s)", md.Bold(s.TotalDeposit.StringFixed(2)), signed(s.Change().StringFixed(2)), s.First))

	doc.H2("Latest Balances")
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"Balance", "Amount"},
		Rows: [][]string{
			{"Total Deposit", s.TotalDeposit.StringFixed(2)},
			{"Fixed Deposit", s.FixedDeposit.StringFixed(2)},
			{"Disposable", s.DisposableAmount.StringFixed(2)},
		},
	})

	doc.H2(fmt.Sprintf("Flows over %d records", s.Records))
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"Flow", "Amount"},
		Rows: [][]string{
			{"Salary", s.Salary.StringFixed(2)},
			{"Expense", s.Expense.StringFixed(2)},
			{"Monthly Deposit", s.MonthlyDeposit.StringFixed(2)},
			{"Average Monthly Deposit", s.AverageMonthlyDeposit().StringFixed(2)},
		},
	})

	return doc.String()
}

// signed prefixes non-negative amounts with a plus sign.
func signed(amount string) string {
	if len(amount) > 0 && amount[0] != '-' {
		return "+" + amount
	}
	return amount
}
