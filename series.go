package savings

import (
	"slices"

	"github.com/etnz/savings/date"
	"github.com/shopspring/decimal"
)

// Point is one (date, total deposit) sample of the trend chart.
type Point struct {
	Date         date.Date       `json:"date"`
	TotalDeposit decimal.Decimal `json:"totalDeposit"`
}

// Series returns the total deposit over time, in date order.
//
// Records whose date does not parse, or whose total deposit is blank,
// malformed or negative, are not plotted. Admitted records are already in
// date order; the stable sort only matters for hand-edited files.
func (l *Ledger) Series() []Point {
	points := make([]Point, 0, l.store.Len())
	for _, rec := range l.store.records {
		day, err := rec.Date()
		if err != nil {
			continue
		}
		total, err := parseAmount(rec[ColTotalDeposit])
		if err != nil || total.IsNegative() {
			continue
		}
		points = append(points, Point{Date: day, TotalDeposit: total})
	}
	slices.SortStableFunc(points, func(a, b Point) int {
		switch {
		case a.Date.Before(b.Date):
			return -1
		case a.Date.After(b.Date):
			return 1
		default:
			return 0
		}
	})
	return points
}
