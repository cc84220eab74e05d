package renderer

import (
	"time"

	tslc "github.com/NimbleMarkets/ntcharts/linechart/timeserieslinechart"
	"github.com/charmbracelet/lipgloss"
	"github.com/etnz/savings"
)

var (
	chartLineColor  = lipgloss.Color("#a6e3a1")
	chartAxisColor  = lipgloss.Color("#585b70")
	chartLabelColor = lipgloss.Color("#7f849c")
)

// ChartOptions holds the size of the chart in terminal cells.
type ChartOptions struct {
	Width  int
	Height int
}

// Chart draws the total deposit trend as a braille line chart.
//
// Points must be in date order, as returned by Ledger.Series.
func Chart(points []savings.Point, opts ChartOptions) string {
	if opts.Width <= 0 {
		opts.Width = 80
	}
	if opts.Height <= 0 {
		opts.Height = 16
	}
	if len(points) == 0 {
		return lipgloss.NewStyle().Foreground(chartLabelColor).Render("No data for the total deposit chart.")
	}

	start := points[0].Date.Time()
	end := points[len(points)-1].Date.Time()
	if !end.After(start) {
		// A single day cannot make a time axis.
		start, end = start.AddDate(0, 0, -1), end.AddDate(0, 0, 1)
	}
	maxVal := 0.0
	for _, p := range points {
		if v := p.TotalDeposit.InexactFloat64(); v > maxVal {
			maxVal = v
		}
	}
	if maxVal == 0 {
		maxVal = 1
	}
	maxVal *= 1.05

	chart := tslc.New(opts.Width, opts.Height)
	chart.SetStyle(lipgloss.NewStyle().Foreground(chartLineColor))
	chart.AxisStyle = lipgloss.NewStyle().Foreground(chartAxisColor)
	chart.LabelStyle = lipgloss.NewStyle().Foreground(chartLabelColor)
	chart.SetTimeRange(start, end)
	chart.SetViewTimeRange(start, end)
	chart.SetYRange(0, maxVal)
	chart.SetViewYRange(0, maxVal)
	chart.Model.XLabelFormatter = func(_ int, v float64) string {
		return time.Unix(int64(v), 0).UTC().Format("2006/01")
	}

	for _, p := range points {
		chart.Push(tslc.TimePoint{Time: p.Date.Time(), Value: p.TotalDeposit.InexactFloat64()})
	}
	chart.DrawBraille()

	return chart.View()
}
