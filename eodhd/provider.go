package eodhd

import (
	"context"
	"log"
	"strconv"
	"strings"
	"time"

	advisor "github.com/arslonga1984/asset-advisor"
)

// UnknownSector is reported when a ticker's sector cannot be resolved.
const UnknownSector = "Unknown"

// Provider adapts Client to the advisor.MarketData contract. Every API
// failure is translated into absence before it reaches the analyzer: a
// ticker that cannot be priced is simply dropped from the analysis, and one
// failing lookup never aborts the others. Lookups are memoized per ticker
// for the lifetime of the Provider, which is one CLI run.
type Provider struct {
	client    *Client
	prices    map[string]cachedPrice
	sectors   map[string]string
	histories map[string][]float64
}

type cachedPrice struct {
	price float64
	ok    bool
}

// NewProvider wraps an EODHD client into a market-data source.
func NewProvider(client *Client) *Provider {
	return &Provider{
		client:    client,
		prices:    make(map[string]cachedPrice),
		sectors:   make(map[string]string),
		histories: make(map[string][]float64),
	}
}

// CurrentPrice returns the latest price for a ticker, or false when the
// lookup fails for any reason.
func (p *Provider) CurrentPrice(ctx context.Context, ticker string) (float64, bool) {
	if cached, hit := p.prices[ticker]; hit {
		return cached.price, cached.ok
	}
	price, err := p.client.RealTime(ctx, ticker)
	if err != nil {
		log.Printf("no current price for %s: %v", ticker, err)
		p.prices[ticker] = cachedPrice{}
		return 0, false
	}
	p.prices[ticker] = cachedPrice{price: price, ok: true}
	return price, true
}

// Sector returns the sector classification of a ticker, or "Unknown".
func (p *Provider) Sector(ctx context.Context, ticker string) string {
	if sector, hit := p.sectors[ticker]; hit {
		return sector
	}
	sector, err := p.client.Sector(ctx, ticker)
	if err != nil || sector == "" {
		sector = UnknownSector
	}
	p.sectors[ticker] = sector
	return sector
}

// HistoricalPrices returns the close-price series of a ticker over the
// given period ("1y", "6m", ...), oldest first, empty when unavailable.
func (p *Provider) HistoricalPrices(ctx context.Context, ticker, period string) []float64 {
	if prices, hit := p.histories[ticker]; hit {
		return prices
	}
	to := time.Now()
	prices, err := p.client.EOD(ctx, ticker, periodStart(to, period), to)
	if err != nil {
		log.Printf("no price history for %s: %v", ticker, err)
		prices = nil
	}
	p.histories[ticker] = prices
	return prices
}

// periodStart resolves a period string like "1y" or "6m" into the start of
// the historical window. Unparseable periods fall back to one year.
func periodStart(to time.Time, period string) time.Time {
	n, unit := 1, "y"
	if len(period) >= 2 {
		if v, err := strconv.Atoi(period[:len(period)-1]); err == nil && v > 0 {
			n, unit = v, strings.ToLower(period[len(period)-1:])
		}
	}
	switch unit {
	case "m":
		return to.AddDate(0, -n, 0)
	case "d":
		return to.AddDate(0, 0, -n)
	default:
		return to.AddDate(-n, 0, 0)
	}
}

var _ advisor.MarketData = (*Provider)(nil)
