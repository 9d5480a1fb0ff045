package metrics

import (
	"math"
	"testing"
)

// close reports whether two floats agree within tol.
func close(a, b, tol float64) bool { return math.Abs(a-b) <= tol }

func TestTotalReturn(t *testing.T) {
	tests := []struct {
		name     string
		initial  float64
		final    float64
		expected float64
		wantErr  bool
	}{
		{name: "gain", initial: 100, final: 120, expected: 20},
		{name: "loss", initial: 100, final: 80, expected: -20},
		{name: "flat", initial: 100, final: 100, expected: 0},
		{name: "zero initial", initial: 0, final: 100, wantErr: true},
		{name: "negative initial", initial: -5, final: 100, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := TotalReturn(tt.initial, tt.final)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("TotalReturn(%g, %g) expected an error", tt.initial, tt.final)
				}
				return
			}
			if err != nil {
				t.Fatalf("TotalReturn(%g, %g) returned error: %v", tt.initial, tt.final, err)
			}
			if got != tt.expected {
				t.Errorf("TotalReturn(%g, %g) = %g, want %g", tt.initial, tt.final, got, tt.expected)
			}
		})
	}
}

func TestAnnualizedReturn(t *testing.T) {
	tests := []struct {
		name     string
		total    float64
		years    float64
		expected float64
		wantErr  bool
	}{
		{name: "one year is identity", total: 20, years: 1, expected: 20},
		{name: "two years compound", total: 21, years: 2, expected: 10},
		{name: "half year", total: 10, years: 0.5, expected: 21},
		{name: "zero years", total: 10, years: 0, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := AnnualizedReturn(tt.total, tt.years)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected an error for non-positive years")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !close(got, tt.expected, 1e-9) {
				t.Errorf("AnnualizedReturn(%g, %g) = %g, want %g", tt.total, tt.years, got, tt.expected)
			}
		})
	}
}

func TestVolatility(t *testing.T) {
	returns := []float64{0.01, -0.02, 0.015, 0.003, -0.007}

	daily := Volatility(returns, false)
	annual := Volatility(returns, true)
	if !close(annual, daily*math.Sqrt(TradingDays), 1e-12) {
		t.Errorf("annualized volatility %g, want daily %g scaled by sqrt(252)", annual, daily)
	}
	if daily <= 0 {
		t.Errorf("volatility of a varying series must be positive, got %g", daily)
	}
	if got := Volatility(nil, true); got != 0 {
		t.Errorf("Volatility(nil) = %g, want 0", got)
	}
	if got := Volatility([]float64{0.01}, true); got != 0 {
		t.Errorf("Volatility of a single observation = %g, want 0", got)
	}
	if got := Volatility([]float64{0.01, 0.01, 0.01}, false); !close(got, 0, 1e-12) {
		t.Errorf("constant series volatility = %g, want 0", got)
	}
}

func TestSharpeRatio(t *testing.T) {
	if got := SharpeRatio(nil, DefaultRiskFreeRate); got != 0 {
		t.Errorf("SharpeRatio(nil) = %g, want 0", got)
	}
	// A flat series has zero volatility and must not divide by it.
	if got := SharpeRatio([]float64{0, 0, 0, 0}, DefaultRiskFreeRate); got != 0 {
		t.Errorf("SharpeRatio(flat) = %g, want 0", got)
	}

	returns := []float64{0.01, 0.012, 0.008, 0.011, 0.009}
	got := SharpeRatio(returns, DefaultRiskFreeRate)
	// Recompute from first principles.
	mean := 0.0
	for _, r := range returns {
		mean += r
	}
	mean = mean / float64(len(returns)) * TradingDays
	want := (mean - DefaultRiskFreeRate) / Volatility(returns, true)
	if !close(got, want, 1e-9) {
		t.Errorf("SharpeRatio = %g, want %g", got, want)
	}
}

func TestMaxDrawdown(t *testing.T) {
	tests := []struct {
		name     string
		prices   []float64
		expected float64
	}{
		{name: "empty", prices: nil, expected: 0},
		{name: "monotonic rise", prices: []float64{100, 105, 110}, expected: 0},
		{name: "single trough", prices: []float64{100, 110, 90, 95, 80, 100}, expected: -27.2727},
		{name: "full collapse", prices: []float64{100, 50}, expected: -50},
		{name: "recovery does not erase", prices: []float64{100, 60, 120, 110}, expected: -40},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MaxDrawdown(tt.prices)
			if !close(got, tt.expected, 0.0001) {
				t.Errorf("MaxDrawdown(%v) = %g, want %g", tt.prices, got, tt.expected)
			}
		})
	}
}

func TestBeta(t *testing.T) {
	market := []float64{0.01, -0.02, 0.015, 0.003, -0.007, 0.012}

	if got := Beta(market, market); !close(got, 1, 1e-9) {
		t.Errorf("Beta(x, x) = %g, want 1", got)
	}

	double := make([]float64, len(market))
	for i, r := range market {
		double[i] = 2 * r
	}
	if got := Beta(double, market); !close(got, 2, 1e-9) {
		t.Errorf("Beta(2x, x) = %g, want 2", got)
	}

	if got := Beta(nil, market); got != 0 {
		t.Errorf("Beta(nil, x) = %g, want 0", got)
	}
	// A single aligned observation has undefined sample moments.
	if got := Beta([]float64{0.01}, []float64{0.02}); got != 0 {
		t.Errorf("Beta of single observations = %g, want 0", got)
	}
	if got := Beta([]float64{0.01}, market); got != 0 {
		t.Errorf("Beta with a one-point portfolio = %g, want 0", got)
	}
	if got := Beta(market, []float64{0.01, 0.01, 0.01}); got != 0 {
		t.Errorf("Beta against a zero-variance benchmark = %g, want 0", got)
	}

	// Unequal lengths are truncated, not rejected.
	if got := Beta(market[:4], market); !close(got, Beta(market[:4], market[:4]), 1e-9) {
		t.Errorf("Beta with shorter portfolio = %g, want truncated value", got)
	}
}

func TestAlpha(t *testing.T) {
	// With beta 1 the alpha is the raw excess over the benchmark.
	if got := Alpha(12, 10, 1, 2); !close(got, 2, 1e-12) {
		t.Errorf("Alpha(12, 10, 1, 2) = %g, want 2", got)
	}
	// With beta 0 only the risk-free rate is expected.
	if got := Alpha(5, 10, 0, 2); !close(got, 3, 1e-12) {
		t.Errorf("Alpha(5, 10, 0, 2) = %g, want 3", got)
	}
}

func TestReturns(t *testing.T) {
	tests := []struct {
		name     string
		prices   []float64
		expected []float64
	}{
		{name: "short series", prices: []float64{100}, expected: []float64{}},
		{name: "simple", prices: []float64{100, 110, 99}, expected: []float64{0.1, -0.1}},
		{name: "zero previous price", prices: []float64{100, 0, 50}, expected: []float64{-1, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Returns(tt.prices)
			if len(got) != len(tt.expected) {
				t.Fatalf("Returns(%v) has %d elements, want %d", tt.prices, len(got), len(tt.expected))
			}
			for i := range got {
				if !close(got[i], tt.expected[i], 1e-9) {
					t.Errorf("Returns(%v)[%d] = %g, want %g", tt.prices, i, got[i], tt.expected[i])
				}
			}
		})
	}
}
