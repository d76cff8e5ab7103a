package tui

import (
	"github.com/NimbleMarkets/ntcharts/barchart"

	"github.com/tinytelemetry/warnsum/internal/model"
)

// renderChart draws the top entries of sec as vertical bars, one per entry in
// row order. It returns "" when there is nothing to draw.
func renderChart(sec model.Section, width, height int) string {
	if len(sec.Entries) == 0 || width < 10 || height < 3 {
		return ""
	}

	const barWidth, barGap = 2, 1
	maxBars := width / (barWidth + barGap)
	if maxBars < 1 {
		return ""
	}
	n := min(len(sec.Entries), maxBars)

	bc := barchart.New(width, height,
		barchart.WithBarGap(barGap),
		barchart.WithBarWidth(barWidth),
		barchart.WithNoAxis(),
	)

	for _, entry := range sec.Entries[:n] {
		bc.Push(barchart.BarData{
			Label: "",
			Values: []barchart.BarValue{
				{Name: entry.Key, Value: float64(entry.Count), Style: barStyle},
			},
		})
	}

	bc.Draw()
	return bc.View()
}
