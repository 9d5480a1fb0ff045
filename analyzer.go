package advisor

import (
	"context"
	"fmt"

	"github.com/arslonga1984/asset-advisor/metrics"
)

// DefaultPeriod is the historical window requested from the market-data
// collaborator when computing risk metrics.
const DefaultPeriod = "1y"

// MarketData supplies prices and classification for tickers. Implementations
// must be failure tolerant: a lookup that cannot be resolved reports absence
// (false, empty series, or "Unknown") instead of returning an error, and a
// failure on one ticker must not affect another.
type MarketData interface {
	// CurrentPrice returns the latest price for a ticker, or false when the
	// ticker cannot be priced.
	CurrentPrice(ctx context.Context, ticker string) (float64, bool)
	// Sector returns the sector classification, or "Unknown".
	Sector(ctx context.Context, ticker string) string
	// HistoricalPrices returns an ordered (oldest first) close-price series
	// over the given period, empty when unavailable.
	HistoricalPrices(ctx context.Context, ticker, period string) []float64
}

// Analyzer turns a Portfolio into an AnalysisResult using a market-data
// collaborator. It holds no state between calls.
type Analyzer struct {
	market MarketData
	period string
}

// NewAnalyzer creates an Analyzer over the given market-data source.
func NewAnalyzer(market MarketData) *Analyzer {
	return &Analyzer{market: market, period: DefaultPeriod}
}

// pricedHolding carries a holding together with its resolved market data
// while the analysis is being assembled.
type pricedHolding struct {
	Holding
	price  float64
	value  float64
	sector string
}

// Analyze values every holding of the portfolio and computes portfolio-level
// performance and risk metrics against the benchmark ticker.
//
// Holdings without a resolvable current price are silently excluded:
// partial market data is expected, not an error. When no holding at all can
// be priced the result is degenerate (all metrics zero, the portfolio's
// nominal cost basis, no holdings).
func (a *Analyzer) Analyze(ctx context.Context, p *Portfolio, benchmark string) (*AnalysisResult, error) {
	priced := a.gather(ctx, p)
	if len(priced) == 0 {
		return a.emptyResult(p, benchmark), nil
	}

	var totalValue, totalCost float64
	for _, h := range priced {
		totalValue += h.value
		totalCost += h.TotalCost()
	}

	holdings := make([]HoldingAnalysis, 0, len(priced))
	for _, h := range priced {
		var weight float64
		if totalValue > 0 {
			weight = h.value / totalValue * 100
		}
		holdings = append(holdings, HoldingAnalysis{
			Ticker:       h.Ticker,
			Name:         h.Name,
			Quantity:     h.Quantity,
			AvgCost:      h.AvgCost,
			CurrentPrice: h.price,
			MarketValue:  h.value,
			Weight:       Percent(weight),
			Return:       Percent((h.price - h.AvgCost) / h.AvgCost * 100),
			Sector:       h.sector,
		})
	}

	portfolioReturns, valueSeries := a.weightedSeries(ctx, holdings)

	benchmarkPrices := a.market.HistoricalPrices(ctx, benchmark, a.period)
	benchmarkReturns := metrics.Returns(benchmarkPrices)

	totalReturn, err := metrics.TotalReturn(totalCost, totalValue)
	if err != nil {
		return nil, fmt.Errorf("computing total return: %w", err)
	}
	// The annualization horizon is fixed to one year rather than derived
	// from holding dates.
	annualized, err := metrics.AnnualizedReturn(totalReturn, 1.0)
	if err != nil {
		return nil, fmt.Errorf("computing annualized return: %w", err)
	}

	beta := metrics.Beta(portfolioReturns, benchmarkReturns)
	alpha := metrics.Alpha(annualized, benchmarkTotalReturn(benchmarkPrices), beta, metrics.DefaultRiskFreeRate)

	return &AnalysisResult{
		PortfolioName:    p.Name,
		TotalValue:       totalValue,
		TotalCost:        totalCost,
		TotalReturn:      Percent(totalReturn),
		AnnualizedReturn: Percent(annualized),
		Volatility:       Percent(metrics.Volatility(portfolioReturns, true) * 100),
		SharpeRatio:      metrics.SharpeRatio(portfolioReturns, metrics.DefaultRiskFreeRate),
		MaxDrawdown:      Percent(metrics.MaxDrawdown(valueSeries)),
		Beta:             beta,
		Alpha:            Percent(alpha),
		Currency:         p.Currency,
		Holdings:         holdings,
		Benchmark:        benchmark,
	}, nil
}

// gather resolves current price and sector for every holding, dropping the
// ones the market cannot price.
func (a *Analyzer) gather(ctx context.Context, p *Portfolio) []pricedHolding {
	var priced []pricedHolding
	for _, h := range p.Holdings {
		price, ok := a.market.CurrentPrice(ctx, h.Ticker)
		if !ok {
			continue
		}
		priced = append(priced, pricedHolding{
			Holding: h,
			price:   price,
			value:   h.Quantity * price,
			sector:  a.market.Sector(ctx, h.Ticker),
		})
	}
	return priced
}

// weightedSeries builds the portfolio's daily return series and its weighted
// value series from per-holding price histories.
//
// Histories are aligned positionally: every non-empty series is truncated to
// the shortest length from the start, and holdings without history drop out
// of the weight vector. Weights are the current weights held static over the
// whole window; the portfolio is not re-weighted through history.
func (a *Analyzer) weightedSeries(ctx context.Context, holdings []HoldingAnalysis) (returns, values []float64) {
	var histories [][]float64
	var weights []float64
	for _, h := range holdings {
		prices := a.market.HistoricalPrices(ctx, h.Ticker, a.period)
		if len(prices) == 0 {
			continue
		}
		histories = append(histories, prices)
		weights = append(weights, float64(h.Weight)/100)
	}
	if len(histories) == 0 {
		return nil, nil
	}

	rows := len(histories[0])
	for _, prices := range histories {
		if len(prices) < rows {
			rows = len(prices)
		}
	}
	if rows < 2 {
		return nil, nil
	}

	values = make([]float64, rows)
	for i, prices := range histories {
		for t := 0; t < rows; t++ {
			values[t] += prices[t] * weights[i]
		}
	}

	returns = make([]float64, rows-1)
	for i, prices := range histories {
		change := metrics.Returns(prices[:rows])
		for t, r := range change {
			returns[t] += r * weights[i]
		}
	}
	return returns, values
}

// benchmarkTotalReturn computes the benchmark's total return from the first
// and last observed prices. Fewer than two observations, or a non-positive
// first price, yield zero.
func benchmarkTotalReturn(prices []float64) float64 {
	if len(prices) < 2 || prices[0] <= 0 {
		return 0
	}
	ret, err := metrics.TotalReturn(prices[0], prices[len(prices)-1])
	if err != nil {
		return 0
	}
	return ret
}

// emptyResult is the degenerate analysis of a portfolio with no priceable
// holding. The cost basis reported here is the portfolio's nominal one,
// excluded holdings included.
func (a *Analyzer) emptyResult(p *Portfolio, benchmark string) *AnalysisResult {
	return &AnalysisResult{
		PortfolioName: p.Name,
		TotalCost:     p.TotalCost(),
		Currency:      p.Currency,
		Holdings:      []HoldingAnalysis{},
		Benchmark:     benchmark,
	}
}
