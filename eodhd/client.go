// Package eodhd provides a client for the eodhd.com market-data API and a
// failure-tolerant adapter that the analyzer consumes.
package eodhd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/PaesslerAG/jsonpath"
	"github.com/shopspring/decimal"
	"golang.org/x/time/rate"
)

const (
	DefaultBaseURL   = "https://eodhd.com/api"
	DefaultTimeout   = 30 * time.Second
	DefaultRateLimit = 10 // requests per second
)

// Client talks to the EODHD REST API. Use Provider to plug it into the
// analyzer.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	limiter    *rate.Limiter
}

// ClientOption configures the client.
type ClientOption func(*Client)

// WithBaseURL sets the base URL, useful for tests.
func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithRateLimit sets the request rate limit.
func WithRateLimit(requestsPerSecond int) ClientOption {
	return func(c *Client) {
		c.limiter = rate.NewLimiter(rate.Limit(requestsPerSecond), requestsPerSecond)
	}
}

// WithTimeout sets the HTTP timeout.
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// WithDailyCache caches successful responses on disk until the end of the
// day. EOD prices and sector classifications do not change more often.
func WithDailyCache() ClientOption {
	return func(c *Client) {
		c.httpClient.Transport = &diskCache{base: http.DefaultTransport}
	}
}

// NewClient creates a new EODHD client.
func NewClient(apiKey string, opts ...ClientOption) *Client {
	c := &Client{
		baseURL: DefaultBaseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
		limiter: rate.NewLimiter(rate.Limit(DefaultRateLimit), DefaultRateLimit),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// APIError is a non-200 answer from the API.
type APIError struct {
	StatusCode int
	Message    string
	Endpoint   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("EODHD API error: %s (status: %d, endpoint: %s)", e.Message, e.StatusCode, e.Endpoint)
}

// get performs a rate-limited GET request and decodes the JSON answer.
func (c *Client) get(ctx context.Context, path string, params url.Values, result interface{}) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limit wait: %w", err)
	}

	if params == nil {
		params = url.Values{}
	}
	params.Set("api_token", c.apiKey)
	params.Set("fmt", "json")

	reqURL := fmt.Sprintf("%s%s?%s", c.baseURL, path, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return &APIError{
			StatusCode: resp.StatusCode,
			Message:    string(body),
			Endpoint:   path,
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// RealTime returns the latest close price for a ticker.
func (c *Client) RealTime(ctx context.Context, ticker string) (float64, error) {
	// the payload carries "NA" instead of a number for unknown tickers,
	// which decimal refuses, surfacing the absence as an error
	var quote struct {
		Close decimal.Decimal `json:"close"`
	}
	if err := c.get(ctx, "/real-time/"+ticker, nil, &quote); err != nil {
		return 0, err
	}
	price := quote.Close.InexactFloat64()
	if price <= 0 {
		return 0, fmt.Errorf("no quote for %s", ticker)
	}
	return price, nil
}

// Sector returns the sector classification of a ticker from its
// fundamentals. The fundamentals payload is huge and mostly irrelevant
// here, so the single field is extracted by path instead of a typed struct.
func (c *Client) Sector(ctx context.Context, ticker string) (string, error) {
	var jobj any
	if err := c.get(ctx, "/fundamentals/"+ticker, nil, &jobj); err != nil {
		return "", err
	}
	jval, err := jsonpath.Get("$.General.Sector", jobj)
	if err != nil {
		return "", fmt.Errorf("no sector for %s: %w", ticker, err)
	}
	sector, ok := jval.(string)
	if !ok {
		return "", fmt.Errorf("no sector for %s", ticker)
	}
	return sector, nil
}

// EOD returns the daily close prices of a ticker between from and to,
// oldest first.
func (c *Client) EOD(ctx context.Context, ticker string, from, to time.Time) ([]float64, error) {
	params := url.Values{}
	params.Set("period", "d")
	params.Set("order", "a") // ascending, oldest first
	params.Set("from", from.Format("2006-01-02"))
	params.Set("to", to.Format("2006-01-02"))

	var bars []struct {
		Date  string          `json:"date"`
		Close decimal.Decimal `json:"close"`
	}
	if err := c.get(ctx, "/eod/"+ticker, params, &bars); err != nil {
		return nil, err
	}

	prices := make([]float64, len(bars))
	for i, bar := range bars {
		prices[i] = bar.Close.InexactFloat64()
	}
	return prices, nil
}
