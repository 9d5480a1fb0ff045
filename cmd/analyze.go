package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	advisor "github.com/arslonga1984/asset-advisor"
	"github.com/arslonga1984/asset-advisor/eodhd"
	"github.com/arslonga1984/asset-advisor/insight"
	"github.com/arslonga1984/asset-advisor/renderer"
)

// analyzeCmd holds the flags for the 'analyze' subcommand.
type analyzeCmd struct {
	name      string
	currency  string
	benchmark string
	noAI      bool
	export    string
	chart     string
	eodhdKey  string
	geminiKey string
}

func (*analyzeCmd) Name() string     { return "analyze" }
func (*analyzeCmd) Synopsis() string { return "analyze a portfolio from a holdings CSV file" }
func (*analyzeCmd) Usage() string {
	return `aa analyze [-name <name>] [-currency <code>] [-benchmark <ticker>] [-no-ai] [-export <csv>] [-chart <png>] <file>

  Values every holding with current market data and reports valuation,
  performance and risk metrics against the benchmark.

  Requires the ` + eodhdKeyEnv + ` environment variable to be set or passed as a flag.
`
}

func (c *analyzeCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "My Portfolio", "Portfolio name")
	f.StringVar(&c.currency, "currency", "USD", "Portfolio currency code")
	f.StringVar(&c.benchmark, "benchmark", "SPY", "Benchmark ticker")
	f.BoolVar(&c.noAI, "no-ai", false, "Skip AI narrative insights")
	f.StringVar(&c.export, "export", "", "Write a CSV report to this path")
	f.StringVar(&c.chart, "chart", "", "Write an allocation chart PNG to this path")
	f.StringVar(&c.eodhdKey, "eodhd-api-key", "", "EODHD API key, takes precedence over "+eodhdKeyEnv)
	f.StringVar(&c.geminiKey, "gemini-api-key", "", "Gemini API key, takes precedence over "+geminiKeyEnv)
}

func (c *analyzeCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	result, status := c.analyze(ctx, f)
	if status != subcommands.ExitSuccess {
		return status
	}

	printMarkdown(renderer.SummaryMarkdown(result))
	printMarkdown(renderer.HoldingsMarkdown(result))
	if result.Insights != "" {
		printMarkdown(renderer.InsightsMarkdown(result))
	}

	return c.exportResult(result)
}

// analyze runs the shared load-and-analyze pipeline. The rebalance
// subcommand reuses it.
func (c *analyzeCmd) analyze(ctx context.Context, f *flag.FlagSet) (*advisor.AnalysisResult, subcommands.ExitStatus) {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: exactly one holdings file is expected")
		return nil, subcommands.ExitUsageError
	}

	key := keyOrEnv(c.eodhdKey, eodhdKeyEnv)
	if key == "" {
		fmt.Fprintf(os.Stderr, "Error: EODHD API key is not set. Use -eodhd-api-key flag or %s environment variable\n", eodhdKeyEnv)
		return nil, subcommands.ExitUsageError
	}

	portfolio, err := advisor.LoadPortfolio(f.Arg(0), c.name, c.currency)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading portfolio: %v\n", err)
		return nil, subcommands.ExitFailure
	}
	fmt.Fprintf(os.Stderr, "Loaded %d holdings from %s\n", len(portfolio.Holdings), f.Arg(0))

	market := eodhd.NewProvider(eodhd.NewClient(key, eodhd.WithDailyCache()))
	result, err := advisor.NewAnalyzer(market).Analyze(ctx, portfolio, c.benchmark)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error analyzing portfolio: %v\n", err)
		return nil, subcommands.ExitFailure
	}
	if skipped := len(portfolio.Holdings) - len(result.Holdings); skipped > 0 {
		fmt.Fprintf(os.Stderr, "Warning: %d holding(s) skipped for missing prices\n", skipped)
	}

	if !c.noAI {
		result.Insights = c.generateInsights(ctx, result)
	}
	return result, subcommands.ExitSuccess
}

// generateInsights asks Gemini for commentary, degrading to the fixed
// fallback message whenever the generator cannot be built.
func (c *analyzeCmd) generateInsights(ctx context.Context, result *advisor.AnalysisResult) string {
	key := keyOrEnv(c.geminiKey, geminiKeyEnv)
	if key == "" {
		return insight.Fallback
	}
	generator, err := insight.NewGenerator(ctx, key)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: insights unavailable: %v\n", err)
		return insight.Fallback
	}
	fmt.Fprintln(os.Stderr, "Generating AI insights...")
	return generator.Generate(ctx, result)
}

func (c *analyzeCmd) exportResult(result *advisor.AnalysisResult) subcommands.ExitStatus {
	if c.export != "" {
		if err := advisor.ExportCSV(result, c.export); err != nil {
			fmt.Fprintf(os.Stderr, "Error exporting report: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Fprintf(os.Stderr, "Exported report to %s\n", c.export)
	}
	if c.chart != "" {
		if err := advisor.ExportAllocationChart(result, c.chart); err != nil {
			fmt.Fprintf(os.Stderr, "Error exporting chart: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Fprintf(os.Stderr, "Exported chart to %s\n", c.chart)
	}
	return subcommands.ExitSuccess
}
