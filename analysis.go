package advisor

// HoldingAnalysis is the valued view of a single holding. One instance exists
// per holding with a resolvable current price; holdings the market cannot
// price are absent from the analysis entirely.
type HoldingAnalysis struct {
	Ticker       string
	Name         string
	Quantity     float64
	AvgCost      float64
	CurrentPrice float64
	MarketValue  float64
	Weight       Percent // share of total portfolio value
	Return       Percent // gain over cost basis, per unit
	Sector       string
}

// AnalysisResult is the complete output of the Analyzer for one portfolio.
type AnalysisResult struct {
	PortfolioName    string
	TotalValue       float64
	TotalCost        float64
	TotalReturn      Percent
	AnnualizedReturn Percent
	Volatility       Percent
	SharpeRatio      float64
	MaxDrawdown      Percent
	Beta             float64
	Alpha            Percent
	Currency         string
	Holdings         []HoldingAnalysis
	Benchmark        string
	Insights         string // optional narrative commentary, decorative only
}

// ProfitLoss returns the unrealized gain over the included holdings.
func (r *AnalysisResult) ProfitLoss() float64 { return r.TotalValue - r.TotalCost }
