package eodhd

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

// marketServer fakes just enough of the API for the Provider tests and
// counts requests per path prefix.
func marketServer(t *testing.T) (*Provider, map[string]int) {
	t.Helper()
	hits := make(map[string]int)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/real-time/AAPL":
			hits["real-time"]++
			w.Write([]byte(`{"close":175.5}`))
		case r.URL.Path == "/fundamentals/AAPL":
			hits["fundamentals"]++
			w.Write([]byte(`{"General":{"Sector":"Technology"}}`))
		case strings.HasPrefix(r.URL.Path, "/eod/AAPL"):
			hits["eod"]++
			w.Write([]byte(`[{"date":"2025-01-02","close":170},{"date":"2025-01-03","close":175.5}]`))
		default:
			hits["miss"]++
			http.Error(w, "Symbol not found", http.StatusNotFound)
		}
	}))
	t.Cleanup(srv.Close)
	return NewProvider(NewClient("test-key", WithBaseURL(srv.URL))), hits
}

func TestProvider_ResolvesMarketData(t *testing.T) {
	provider, _ := marketServer(t)
	ctx := context.Background()

	price, ok := provider.CurrentPrice(ctx, "AAPL")
	if !ok || price != 175.5 {
		t.Errorf("CurrentPrice = (%g, %v), want (175.5, true)", price, ok)
	}
	if got := provider.Sector(ctx, "AAPL"); got != "Technology" {
		t.Errorf("Sector = %q, want Technology", got)
	}
	prices := provider.HistoricalPrices(ctx, "AAPL", "1y")
	if len(prices) != 2 || prices[0] != 170 {
		t.Errorf("HistoricalPrices = %v, want the two-bar series", prices)
	}
}

func TestProvider_FailuresBecomeAbsence(t *testing.T) {
	provider, _ := marketServer(t)
	ctx := context.Background()

	if price, ok := provider.CurrentPrice(ctx, "NOPE"); ok || price != 0 {
		t.Errorf("CurrentPrice of an unknown ticker = (%g, %v), want (0, false)", price, ok)
	}
	if got := provider.Sector(ctx, "NOPE"); got != UnknownSector {
		t.Errorf("Sector of an unknown ticker = %q, want %q", got, UnknownSector)
	}
	if prices := provider.HistoricalPrices(ctx, "NOPE", "1y"); len(prices) != 0 {
		t.Errorf("HistoricalPrices of an unknown ticker = %v, want empty", prices)
	}

	// One failing ticker must not poison a healthy one.
	if _, ok := provider.CurrentPrice(ctx, "AAPL"); !ok {
		t.Error("AAPL should still resolve after a failed lookup")
	}
}

func TestProvider_MemoizesLookups(t *testing.T) {
	provider, hits := marketServer(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		provider.CurrentPrice(ctx, "AAPL")
		provider.Sector(ctx, "AAPL")
		provider.HistoricalPrices(ctx, "AAPL", "1y")
		// Failures are memoized too.
		provider.CurrentPrice(ctx, "NOPE")
	}

	if hits["real-time"] != 1 || hits["fundamentals"] != 1 || hits["eod"] != 1 {
		t.Errorf("repeated lookups hit the API again: %v", hits)
	}
	if hits["miss"] != 1 {
		t.Errorf("failed lookup was retried %d times, want 1", hits["miss"])
	}
}

func TestPeriodStart(t *testing.T) {
	to := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	tests := []struct {
		period   string
		expected time.Time
	}{
		{"1y", time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)},
		{"2y", time.Date(2023, 6, 15, 0, 0, 0, 0, time.UTC)},
		{"6m", time.Date(2024, 12, 15, 0, 0, 0, 0, time.UTC)},
		{"30d", time.Date(2025, 5, 16, 0, 0, 0, 0, time.UTC)},
		{"garbage", time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)},
		{"", time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)},
	}
	for _, tt := range tests {
		t.Run(tt.period, func(t *testing.T) {
			if got := periodStart(to, tt.period); !got.Equal(tt.expected) {
				t.Errorf("periodStart(%q) = %v, want %v", tt.period, got, tt.expected)
			}
		})
	}
}
