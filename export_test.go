package advisor

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func exportableResult() *AnalysisResult {
	return &AnalysisResult{
		PortfolioName:    "Growth",
		TotalValue:       3500,
		TotalCost:        3000,
		TotalReturn:      Percent(16.666666666666668),
		AnnualizedReturn: Percent(16.666666666666668),
		Volatility:       Percent(18.2),
		SharpeRatio:      0.81,
		MaxDrawdown:      Percent(-12.5),
		Beta:             1.05,
		Alpha:            Percent(1.2),
		Currency:         "USD",
		Benchmark:        "SPY",
		Holdings: []HoldingAnalysis{
			{Ticker: "AAPL", Name: "Apple", Quantity: 10, AvgCost: 150, CurrentPrice: 175, MarketValue: 1750, Weight: 50, Return: Percent(16.67), Sector: "Technology"},
			{Ticker: "MSFT", Name: "Microsoft", Quantity: 5, AvgCost: 300, CurrentPrice: 350, MarketValue: 1750, Weight: 50, Return: Percent(16.67), Sector: "Technology"},
		},
		Insights: "Well diversified across two stocks, concentrated in one sector.",
	}
}

func TestExportCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.csv")
	if err := ExportCSV(exportableResult(), path); err != nil {
		t.Fatalf("ExportCSV returned error: %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading report: %v", err)
	}
	content := string(raw)

	for _, want := range []string{"Summary", "Holdings", "Metrics", "Insights", "AAPL", "MSFT", "Technology"} {
		if !strings.Contains(content, want) {
			t.Errorf("report is missing %q:\n%s", want, content)
		}
	}

	// The sectioned file must still parse as CSV.
	r := csv.NewReader(strings.NewReader(content))
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		t.Fatalf("report does not parse as CSV: %v", err)
	}

	var holdingRow []string
	for _, record := range records {
		if record[0] == "AAPL" {
			holdingRow = record
		}
	}
	if holdingRow == nil {
		t.Fatal("no AAPL row in the report")
	}
	if got := holdingRow[5]; got != "1750" {
		t.Errorf("AAPL market value cell = %q, want 1750", got)
	}
}

func TestExportCSV_NoInsights(t *testing.T) {
	result := exportableResult()
	result.Insights = ""
	path := filepath.Join(t.TempDir(), "report.csv")
	if err := ExportCSV(result, path); err != nil {
		t.Fatalf("ExportCSV returned error: %v", err)
	}

	raw, _ := os.ReadFile(path)
	if strings.Contains(string(raw), "Insights") {
		t.Error("report should omit the Insights section when there are none")
	}
}

func TestExportCSV_BadPath(t *testing.T) {
	if err := ExportCSV(exportableResult(), filepath.Join(t.TempDir(), "missing", "report.csv")); err == nil {
		t.Fatal("expected an error for an uncreatable path")
	}
}

func TestExportAllocationChart(t *testing.T) {
	path := filepath.Join(t.TempDir(), "allocation.png")
	if err := ExportAllocationChart(exportableResult(), path); err != nil {
		t.Fatalf("ExportAllocationChart returned error: %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading chart: %v", err)
	}
	// PNG magic header.
	if len(raw) < 8 || string(raw[1:4]) != "PNG" {
		t.Errorf("chart output is not a PNG, first bytes %v", raw[:min(8, len(raw))])
	}
}

func TestExportAllocationChart_NoHoldings(t *testing.T) {
	result := exportableResult()
	result.Holdings = nil
	if err := ExportAllocationChart(result, filepath.Join(t.TempDir(), "empty.png")); err == nil {
		t.Fatal("expected an error with nothing to chart")
	}
}
