package plot

import (
	"github.com/guptarohit/asciigraph"
)

// Chart renders a sweep series as a terminal line chart.
func Chart(series Series, caption string) string {
	return asciigraph.Plot(series.Y,
		asciigraph.Height(12),
		asciigraph.Width(70),
		asciigraph.Precision(2),
		asciigraph.Caption(caption),
	)
}
