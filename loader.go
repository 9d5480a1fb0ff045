package advisor

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/korean"
)

// The holdings file is a CSV with a header row. Column names are matched
// case-insensitively; a currency column is optional and falls back to the
// portfolio currency.
var requiredColumns = []string{"ticker", "name", "quantity", "avg_cost"}

// LoadPortfolio reads and validates a holdings CSV file into a Portfolio.
// Every row is validated; failures are reported together with their row
// numbers rather than stopping at the first one.
func LoadPortfolio(path, name, currency string) (*Portfolio, error) {
	rows, header, err := readCSV(path)
	if err != nil {
		return nil, err
	}

	var missing []string
	for _, col := range requiredColumns {
		if _, ok := header[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return nil, fmt.Errorf("%s: missing required columns: %s", path, strings.Join(missing, ", "))
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%s: no holdings found", path)
	}

	currencyCol, hasCurrency := header["currency"]

	var errs error
	holdings := make([]Holding, 0, len(rows))
	for i, row := range rows {
		h, err := parseHolding(row, header, currencyCol, hasCurrency, currency)
		if err != nil {
			errs = errors.Join(errs, fmt.Errorf("row %d: %w", i+1, err))
			continue
		}
		holdings = append(holdings, h)
	}
	if errs != nil {
		return nil, errs
	}

	return NewPortfolio(name, holdings, currency), nil
}

// LoadTargetWeights reads a target-weights CSV file (columns ticker, weight
// in percent-points) into a ticker-to-weight map.
func LoadTargetWeights(path string) (map[string]float64, error) {
	rows, header, err := readCSV(path)
	if err != nil {
		return nil, err
	}
	tickerCol, ok := header["ticker"]
	weightCol, wok := header["weight"]
	if !ok || !wok {
		return nil, fmt.Errorf("%s: target weights need ticker and weight columns", path)
	}

	var errs error
	weights := make(map[string]float64, len(rows))
	for i, row := range rows {
		ticker, err := ValidateTicker(row[tickerCol])
		if err != nil {
			errs = errors.Join(errs, fmt.Errorf("row %d: %w", i+1, err))
			continue
		}
		weight, err := strconv.ParseFloat(strings.TrimSpace(row[weightCol]), 64)
		if err != nil {
			errs = errors.Join(errs, fmt.Errorf("row %d: invalid weight %q", i+1, row[weightCol]))
			continue
		}
		weights[ticker] = weight
	}
	if errs != nil {
		return nil, errs
	}
	return weights, nil
}

// readCSV loads a CSV file and returns its data rows plus a lower-cased
// header-name to column-index map. Files that are not valid UTF-8 are
// re-decoded as CP949, the legacy encoding of Korean broker exports.
func readCSV(path string) (rows [][]string, header map[string]int, err error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("could not open %q: %w", path, err)
	}
	if !utf8.Valid(raw) {
		decoded, derr := korean.EUCKR.NewDecoder().Bytes(raw)
		if derr != nil {
			return nil, nil, fmt.Errorf("could not decode %q as UTF-8 or CP949: %w", path, derr)
		}
		raw = decoded
	}

	r := csv.NewReader(bytes.NewReader(raw))
	r.TrimLeadingSpace = true
	records, err := r.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("could not parse %q: %w", path, err)
	}
	if len(records) == 0 {
		return nil, nil, fmt.Errorf("%s: file is empty", path)
	}

	header = make(map[string]int, len(records[0]))
	for i, col := range records[0] {
		header[strings.ToLower(strings.TrimSpace(col))] = i
	}
	return records[1:], header, nil
}

func parseHolding(row []string, header map[string]int, currencyCol int, hasCurrency bool, fallbackCurrency string) (Holding, error) {
	var errs error

	ticker, err := ValidateTicker(row[header["ticker"]])
	errs = errors.Join(errs, err)

	quantity, err := parsePositive(row[header["quantity"]], ValidateQuantity)
	errs = errors.Join(errs, err)

	avgCost, err := parsePositive(row[header["avg_cost"]], ValidatePrice)
	errs = errors.Join(errs, err)

	if errs != nil {
		return Holding{}, errs
	}

	currency := fallbackCurrency
	if hasCurrency {
		if c := strings.TrimSpace(row[currencyCol]); c != "" {
			currency = c
		}
	}

	return Holding{
		Ticker:   ticker,
		Name:     strings.TrimSpace(row[header["name"]]),
		Quantity: quantity,
		AvgCost:  avgCost,
		Currency: currency,
	}, nil
}

func parsePositive(s string, check func(float64) error) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q", s)
	}
	return v, check(v)
}
