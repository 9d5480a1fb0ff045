package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"

	advisor "github.com/arslonga1984/asset-advisor"
)

// SummaryMarkdown renders the portfolio-level view of an analysis result.
func SummaryMarkdown(r *advisor.AnalysisResult) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Portfolio %s", r.PortfolioName))
	doc.PlainText(fmt.Sprintf("Benchmark: %s", r.Benchmark))

	doc.H2("Valuation")
	doc.Table(md.TableSet{
		Header: []string{"", "Amount"},
		Rows: [][]string{
			{"Total Value", Currency(r.TotalValue, r.Currency)},
			{"Total Cost", Currency(r.TotalCost, r.Currency)},
			{"Profit/Loss", Currency(r.ProfitLoss(), r.Currency)},
		},
	})

	doc.H2("Performance and Risk")
	doc.Table(md.TableSet{
		Header: []string{"Metric", "Value"},
		Rows: [][]string{
			{"Total Return", r.TotalReturn.SignedString()},
			{"Annualized Return", r.AnnualizedReturn.SignedString()},
			{"Volatility", r.Volatility.String()},
			{"Sharpe Ratio", fmt.Sprintf("%.2f", r.SharpeRatio)},
			{"Max Drawdown", r.MaxDrawdown.String()},
			{"Beta", fmt.Sprintf("%.2f", r.Beta)},
			{"Alpha", r.Alpha.SignedString()},
		},
	})

	return doc.String()
}

// HoldingsMarkdown renders the per-holding table of an analysis result.
func HoldingsMarkdown(r *advisor.AnalysisResult) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H2("Holdings")
	if len(r.Holdings) == 0 {
		doc.PlainText("No holding could be priced.")
		return doc.String()
	}

	rows := make([][]string, 0, len(r.Holdings))
	for _, h := range r.Holdings {
		rows = append(rows, []string{
			h.Ticker,
			h.Name,
			quantity(h.Quantity),
			Currency(h.AvgCost, r.Currency),
			Currency(h.CurrentPrice, r.Currency),
			Currency(h.MarketValue, r.Currency),
			h.Weight.String(),
			h.Return.SignedString(),
			h.Sector,
		})
	}
	doc.Table(md.TableSet{
		Header: []string{"Ticker", "Name", "Qty", "Avg Cost", "Price", "Value", "Weight", "Return", "Sector"},
		Rows:   rows,
	})

	return doc.String()
}

// InsightsMarkdown renders the optional narrative commentary.
func InsightsMarkdown(r *advisor.AnalysisResult) string {
	if r.Insights == "" {
		return ""
	}
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H2("Insights")
	doc.PlainText(r.Insights)
	return doc.String()
}
