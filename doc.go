// Package advisor provides the types and computation engine to analyze and
// rebalance an investment portfolio. It is designed to be local-first and
// deterministic: market data is supplied by a collaborator, and every
// computation is a pure transform over immutable values.
//
// The core functionalities include:
//   - Portfolio Valuation: Pricing each holding with current market data and
//     aggregating market value, cost basis, and per-holding weights.
//   - Risk and Performance Metrics: Returns, volatility, Sharpe ratio,
//     maximum drawdown, beta, and alpha against a benchmark, computed by the
//     metrics subpackage.
//   - Rebalancing: Turning target allocation weights into discrete
//     whole-share BUY/SELL orders with a flat-rate capital-gains tax estimate.
//   - Data Loading: Parsing and validating portfolio holdings and target
//     weights from CSV files.
//   - Report Export: Writing analysis results to sectioned CSV reports and
//     allocation charts.
//
// This package serves as the foundational logic for the `aa` command-line
// tool; market data retrieval, narrative generation, and rendering live in
// their own subpackages and never reach back into the core.
package advisor
