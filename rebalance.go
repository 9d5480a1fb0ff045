package advisor

import "math"

// Action is the direction of a rebalance order.
type Action string

const (
	Buy  Action = "BUY"
	Sell Action = "SELL"
)

// RebalanceOrder is a discrete whole-share instruction to move one holding
// toward its target weight. EstimatedCost is positive for a BUY and negative
// for a SELL; its magnitude is quantity times price.
type RebalanceOrder struct {
	Ticker        string
	Name          string
	Action        Action
	Quantity      int
	CurrentPrice  float64
	EstimatedCost float64
}

// RebalanceResult is the complete output of a rebalance calculation.
type RebalanceResult struct {
	Orders            []RebalanceOrder
	TotalBuyCost      float64
	TotalSellProceeds float64
	NetCost           float64 // buys minus sells, may be negative
	EstimatedTax      float64
}

// Rebalance computes the orders needed to move the analyzed holdings toward
// the target weights (ticker to percent-points). Tickers absent from the
// target map have an implicit target of zero and are candidates for full
// liquidation.
//
// Each holding is processed independently against the original market
// values: orders are not netted against each other and weights are not
// re-normalized as orders accumulate. A deviation within tolerance, or a
// delta worth less than one share, produces no order. Tax is accrued at the
// flat taxRate on the realized per-share gain of sold shares only; sales at
// a loss are never taxed.
func Rebalance(holdings []HoldingAnalysis, targets map[string]float64, totalValue, tolerance, taxRate float64) RebalanceResult {
	var result RebalanceResult

	for _, h := range holdings {
		targetPct := targets[h.Ticker]
		diffPct := targetPct - float64(h.Weight)
		if math.Abs(diffPct) <= tolerance {
			continue
		}

		targetValue := totalValue * targetPct / 100
		diffValue := targetValue - h.MarketValue

		quantity := int(math.Floor(math.Abs(diffValue) / h.CurrentPrice))
		if quantity == 0 {
			continue
		}

		amount := float64(quantity) * h.CurrentPrice
		if diffValue > 0 {
			result.Orders = append(result.Orders, RebalanceOrder{
				Ticker:        h.Ticker,
				Name:          h.Name,
				Action:        Buy,
				Quantity:      quantity,
				CurrentPrice:  h.CurrentPrice,
				EstimatedCost: amount,
			})
			result.TotalBuyCost += amount
		} else {
			if gain := h.CurrentPrice - h.AvgCost; gain > 0 && taxRate > 0 {
				result.EstimatedTax += float64(quantity) * gain * taxRate
			}
			result.Orders = append(result.Orders, RebalanceOrder{
				Ticker:        h.Ticker,
				Name:          h.Name,
				Action:        Sell,
				Quantity:      quantity,
				CurrentPrice:  h.CurrentPrice,
				EstimatedCost: -amount,
			})
			result.TotalSellProceeds += amount
		}
	}

	result.NetCost = result.TotalBuyCost - result.TotalSellProceeds
	return result
}
