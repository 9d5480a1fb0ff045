package advisor

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
)

// ExportCSV writes an analysis result to a sectioned CSV report: Summary,
// Holdings, Metrics, and Insights when present. Sections are separated by a
// blank record so the file opens cleanly in a spreadsheet.
func ExportCSV(result *AnalysisResult, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("could not create report %q: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)

	records := [][]string{
		{"Summary"},
		{"Portfolio Name", result.PortfolioName},
		{"Currency", result.Currency},
		{"Benchmark", result.Benchmark},
		{"Total Value", formatFloat(result.TotalValue)},
		{"Total Cost", formatFloat(result.TotalCost)},
		{"Profit/Loss", formatFloat(result.ProfitLoss())},
		{"Total Return (%)", formatFloat(float64(result.TotalReturn))},
		{"Annualized Return (%)", formatFloat(float64(result.AnnualizedReturn))},
		{},
		{"Holdings"},
		{"Ticker", "Name", "Quantity", "Avg Cost", "Current Price", "Market Value", "Weight (%)", "Return (%)", "Sector"},
	}
	for _, h := range result.Holdings {
		records = append(records, []string{
			h.Ticker,
			h.Name,
			formatFloat(h.Quantity),
			formatFloat(h.AvgCost),
			formatFloat(h.CurrentPrice),
			formatFloat(h.MarketValue),
			formatFloat(float64(h.Weight)),
			formatFloat(float64(h.Return)),
			h.Sector,
		})
	}
	records = append(records,
		[]string{},
		[]string{"Metrics"},
		[]string{"Metric", "Value"},
		[]string{"Volatility (%)", formatFloat(float64(result.Volatility))},
		[]string{"Sharpe Ratio", formatFloat(result.SharpeRatio)},
		[]string{"Max Drawdown (%)", formatFloat(float64(result.MaxDrawdown))},
		[]string{"Beta", formatFloat(result.Beta)},
		[]string{"Alpha (%)", formatFloat(float64(result.Alpha))},
	)
	if result.Insights != "" {
		records = append(records,
			[]string{},
			[]string{"Insights"},
			[]string{result.Insights},
		)
	}

	// a sectioned file has records of different widths on purpose
	w.Comma = ','
	for _, record := range records {
		if len(record) == 0 {
			record = []string{""}
		}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("could not write report %q: %w", path, err)
		}
	}
	w.Flush()
	return w.Error()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
