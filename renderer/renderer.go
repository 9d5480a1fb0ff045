// Package renderer turns analysis and rebalance results into markdown
// reports. It only ever reads the advisor types; nothing is written back.
package renderer

import (
	"fmt"

	"github.com/Rhymond/go-money"
)

// Currency formats a monetary value in its currency's conventional display
// form (fraction digits and symbol per ISO code, so KRW renders without
// decimals and USD with two).
func Currency(value float64, code string) string {
	return money.NewFromFloat(value, code).Display()
}

// quantity renders a share count without trailing decimals when whole.
func quantity(v float64) string {
	if v == float64(int64(v)) {
		return fmt.Sprintf("%d", int64(v))
	}
	return fmt.Sprintf("%.2f", v)
}
