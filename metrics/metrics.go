// Package metrics provides pure, stateless financial metric functions over
// return and price series. Percentage arguments and results are expressed in
// percent-points (12.5 means 12.5%); raw return series are fractional.
package metrics

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"
)

const (
	// TradingDays is the annualization convention for daily series.
	TradingDays = 252

	// DefaultRiskFreeRate is the annual risk-free rate used when the caller
	// has no better value.
	DefaultRiskFreeRate = 0.02
)

// TotalReturn returns the percentage gain from initial to final value.
// A non-positive initial value is a caller error, not data sparsity.
func TotalReturn(initial, final float64) (float64, error) {
	if initial <= 0 {
		return 0, fmt.Errorf("initial value must be positive, got %g", initial)
	}
	return (final - initial) / initial * 100, nil
}

// AnnualizedReturn converts a total return over a number of years into its
// compound annual equivalent.
func AnnualizedReturn(totalReturnPct, years float64) (float64, error) {
	if years <= 0 {
		return 0, fmt.Errorf("years must be positive, got %g", years)
	}
	return (math.Pow(1+totalReturnPct/100, 1/years) - 1) * 100, nil
}

// Volatility returns the sample standard deviation of a fractional return
// series, scaled by sqrt(252) when annualize is set. Fewer than two
// observations have zero volatility, as the sample deviation is undefined.
func Volatility(returns []float64, annualize bool) float64 {
	if len(returns) < 2 {
		return 0
	}
	sd := stat.StdDev(returns, nil)
	if annualize {
		sd *= math.Sqrt(TradingDays)
	}
	return sd
}

// SharpeRatio returns the annualized Sharpe ratio of a fractional daily
// return series. It is zero for an empty series, and also when annualized
// volatility is below 1e-10 so that a flat series does not blow up the
// division.
func SharpeRatio(returns []float64, riskFreeRate float64) float64 {
	if len(returns) == 0 {
		return 0
	}
	vol := Volatility(returns, true)
	if vol < 1e-10 {
		return 0
	}
	mean := stat.Mean(returns, nil) * TradingDays
	return (mean - riskFreeRate) / vol
}

// MaxDrawdown returns the largest peak-to-trough decline of a price series
// as a non-positive percentage. The running peak uses only values seen so
// far. Empty or monotonically non-decreasing series have zero drawdown.
func MaxDrawdown(prices []float64) float64 {
	if len(prices) == 0 {
		return 0
	}
	peak := prices[0]
	worst := 0.0
	for _, p := range prices {
		if p > peak {
			peak = p
		}
		if peak > 0 {
			if dd := (p - peak) / peak * 100; dd < worst {
				worst = dd
			}
		}
	}
	return worst
}

// Beta returns the sensitivity of portfolio returns to benchmark returns:
// covariance over benchmark variance. Series of different lengths are
// truncated to the shorter length from the start; alignment is positional,
// not by date. Zero when fewer than two aligned observations exist, as the
// sample moments are undefined, and when the benchmark variance is exactly
// zero.
func Beta(portfolio, benchmark []float64) float64 {
	n := len(portfolio)
	if len(benchmark) < n {
		n = len(benchmark)
	}
	if n < 2 {
		return 0
	}
	p, b := portfolio[:n], benchmark[:n]
	variance := stat.Variance(b, nil)
	if variance == 0 {
		return 0
	}
	return stat.Covariance(p, b, nil) / variance
}

// Alpha returns Jensen's alpha: the portfolio return in excess of what
// beta-adjusted benchmark performance predicts. All returns are
// percent-points.
func Alpha(portfolioReturn, benchmarkReturn, beta, riskFreeRate float64) float64 {
	return portfolioReturn - (riskFreeRate + beta*(benchmarkReturn-riskFreeRate))
}

// Returns converts a price series into fractional period-over-period
// returns. A zero previous price yields a zero return for that period.
func Returns(prices []float64) []float64 {
	if len(prices) < 2 {
		return []float64{}
	}
	returns := make([]float64, len(prices)-1)
	for i := 1; i < len(prices); i++ {
		if prices[i-1] != 0 {
			returns[i-1] = (prices[i] - prices[i-1]) / prices[i-1]
		}
	}
	return returns
}
