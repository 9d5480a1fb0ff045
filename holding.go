package advisor

import "time"

// Holding is a single position in a portfolio: a ticker, the quantity held,
// and the average cost paid per unit. Holdings are created at load time and
// never mutated.
type Holding struct {
	Ticker   string
	Name     string
	Quantity float64
	AvgCost  float64
	Currency string
}

// TotalCost returns the cost basis of the whole position.
func (h Holding) TotalCost() float64 { return h.Quantity * h.AvgCost }

// Portfolio is a named, ordered collection of holdings. The order carries no
// meaning beyond display.
type Portfolio struct {
	Name     string
	Holdings []Holding
	Currency string
	AsOf     time.Time
}

// NewPortfolio creates a portfolio dated today.
func NewPortfolio(name string, holdings []Holding, currency string) *Portfolio {
	return &Portfolio{
		Name:     name,
		Holdings: holdings,
		Currency: currency,
		AsOf:     time.Now(),
	}
}

// TotalCost returns the nominal cost basis over all holdings, priced or not.
func (p *Portfolio) TotalCost() float64 {
	var total float64
	for _, h := range p.Holdings {
		total += h.TotalCost()
	}
	return total
}
