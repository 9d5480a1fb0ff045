package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"

	advisor "github.com/arslonga1984/asset-advisor"
)

// RebalanceMarkdown renders the rebalance orders and their cost totals.
func RebalanceMarkdown(r *advisor.RebalanceResult, currency string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H2("Rebalance Orders")
	if len(r.Orders) == 0 {
		doc.PlainText("Portfolio is within tolerance. No rebalancing needed.")
		return doc.String()
	}

	rows := make([][]string, 0, len(r.Orders))
	for _, o := range r.Orders {
		rows = append(rows, []string{
			string(o.Action),
			o.Ticker,
			o.Name,
			fmt.Sprintf("%d", o.Quantity),
			Currency(o.CurrentPrice, currency),
			Currency(o.EstimatedCost, currency),
		})
	}
	doc.Table(md.TableSet{
		Header: []string{"Action", "Ticker", "Name", "Qty", "Price", "Cost"},
		Rows:   rows,
	})

	totals := [][]string{
		{"Total Buy", Currency(r.TotalBuyCost, currency)},
		{"Total Sell", Currency(r.TotalSellProceeds, currency)},
		{"Net Cost", Currency(r.NetCost, currency)},
	}
	if r.EstimatedTax > 0 {
		totals = append(totals, []string{"Est. Tax", Currency(r.EstimatedTax, currency)})
	}
	doc.Table(md.TableSet{
		Header: []string{"", "Amount"},
		Rows:   totals,
	})

	return doc.String()
}
