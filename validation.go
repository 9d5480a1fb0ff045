package advisor

import (
	"fmt"
	"regexp"
	"strings"
)

// Supported ticker shapes: plain US symbols, Korean listings with their
// market suffix, and index tickers.
var (
	usTickerPattern    = regexp.MustCompile(`^[A-Z]{1,5}$`)
	krTickerPattern    = regexp.MustCompile(`^\d{6}\.(KS|KQ)$`)
	indexTickerPattern = regexp.MustCompile(`^\^[A-Z0-9]+$`)
)

// ValidateTicker trims and validates a ticker symbol, returning the
// normalized form.
func ValidateTicker(ticker string) (string, error) {
	ticker = strings.TrimSpace(ticker)
	if ticker == "" {
		return "", fmt.Errorf("ticker cannot be empty")
	}
	if usTickerPattern.MatchString(ticker) ||
		krTickerPattern.MatchString(ticker) ||
		indexTickerPattern.MatchString(ticker) {
		return ticker, nil
	}
	return "", fmt.Errorf("invalid ticker %q", ticker)
}

// ValidateQuantity checks that a holding quantity is strictly positive.
func ValidateQuantity(quantity float64) error {
	if quantity <= 0 {
		return fmt.Errorf("quantity must be positive, got %g", quantity)
	}
	return nil
}

// ValidatePrice checks that a price or cost basis is strictly positive.
func ValidatePrice(price float64) error {
	if price <= 0 {
		return fmt.Errorf("price must be positive, got %g", price)
	}
	return nil
}
