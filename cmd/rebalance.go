package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	advisor "github.com/arslonga1984/asset-advisor"
	"github.com/arslonga1984/asset-advisor/renderer"
)

// rebalanceCmd holds the flags for the 'rebalance' subcommand.
type rebalanceCmd struct {
	analyzeCmd
	target    string
	tolerance float64
	taxRate   float64
}

func (*rebalanceCmd) Name() string { return "rebalance" }
func (*rebalanceCmd) Synopsis() string {
	return "propose whole-share orders to reach target weights"
}
func (*rebalanceCmd) Usage() string {
	return `aa rebalance -target <weights.csv> [-tolerance <pct>] [-tax-rate <rate>] [analyze flags] <file>

  Analyzes the portfolio, then proposes BUY and SELL orders that move
  each holding toward its target weight. Holdings already within the
  tolerance band are left untouched.
`
}

func (c *rebalanceCmd) SetFlags(f *flag.FlagSet) {
	c.analyzeCmd.SetFlags(f)
	f.StringVar(&c.target, "target", "", "CSV file with ticker,weight target allocations (required)")
	f.Float64Var(&c.tolerance, "tolerance", 1.0, "Tolerance band in percent points")
	f.Float64Var(&c.taxRate, "tax-rate", 0.0, "Flat tax rate applied to realized gains, e.g. 0.22")
}

func (c *rebalanceCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.target == "" {
		fmt.Fprintln(os.Stderr, "Error: -target flag is required")
		return subcommands.ExitUsageError
	}
	targets, err := advisor.LoadTargetWeights(c.target)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading target weights: %v\n", err)
		return subcommands.ExitFailure
	}

	result, status := c.analyze(ctx, f)
	if status != subcommands.ExitSuccess {
		return status
	}

	printMarkdown(renderer.SummaryMarkdown(result))
	printMarkdown(renderer.HoldingsMarkdown(result))

	plan := advisor.Rebalance(result.Holdings, targets, result.TotalValue, c.tolerance, c.taxRate)
	printMarkdown(renderer.RebalanceMarkdown(&plan, result.Currency))

	if result.Insights != "" {
		printMarkdown(renderer.InsightsMarkdown(result))
	}
	return c.exportResult(result)
}
