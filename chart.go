package advisor

import (
	"fmt"
	"os"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// ExportAllocationChart renders the holding weights of an analysis result as
// a PNG bar chart. At least one priced holding is required.
func ExportAllocationChart(result *AnalysisResult, path string) error {
	if len(result.Holdings) == 0 {
		return fmt.Errorf("no priced holdings to chart")
	}

	bars := make([]chart.Value, len(result.Holdings))
	for i, h := range result.Holdings {
		bars[i] = chart.Value{
			Label: h.Ticker,
			Value: float64(h.Weight),
			Style: chart.Style{
				FillColor:   drawing.ColorFromHex("2563eb"),
				StrokeColor: drawing.ColorFromHex("2563eb"),
			},
		}
	}

	graph := chart.BarChart{
		Title:    fmt.Sprintf("%s allocation", result.PortfolioName),
		Width:    900,
		Height:   400,
		BarWidth: 48,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 10, Right: 20, Bottom: 10},
		},
		YAxis: chart.YAxis{
			ValueFormatter: func(v interface{}) string {
				if f, ok := v.(float64); ok {
					return fmt.Sprintf("%.0f%%", f)
				}
				return ""
			},
		},
		Bars: bars,
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("could not create chart %q: %w", path, err)
	}
	defer f.Close()

	if err := graph.Render(chart.PNG, f); err != nil {
		return fmt.Errorf("chart render failed: %w", err)
	}
	return nil
}
