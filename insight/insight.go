// Package insight generates narrative commentary for an analysis result
// using the Gemini API. The commentary is decorative: nothing in the core
// computation consumes it, and any failure degrades to a fixed fallback
// message instead of an error.
package insight

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"

	advisor "github.com/arslonga1984/asset-advisor"
)

const (
	DefaultModel = "gemini-2.5-flash"

	// Fallback is returned whenever insights cannot be generated.
	Fallback = "AI insights are unavailable. Set GEMINI_API_KEY to enable narrative commentary."
)

// Generator produces portfolio commentary. A nil Generator is valid and
// always answers with the fallback message.
type Generator struct {
	client *genai.Client
	model  string
}

// Option configures the generator.
type Option func(*Generator)

// WithModel sets the model to use.
func WithModel(model string) Option {
	return func(g *Generator) {
		g.model = model
	}
}

// NewGenerator creates a generator backed by the Gemini API.
func NewGenerator(ctx context.Context, apiKey string, opts ...Option) (*Generator, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	g := &Generator{client: client, model: DefaultModel}
	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

// Generate returns narrative commentary for the analysis result, or the
// fallback message when the generator is absent or the API call fails.
func (g *Generator) Generate(ctx context.Context, result *advisor.AnalysisResult) string {
	if g == nil || g.client == nil {
		return Fallback
	}

	answer, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(BuildPrompt(result)), nil)
	if err != nil {
		return Fallback
	}

	text := extractText(answer)
	if text == "" {
		return Fallback
	}
	return text
}

// BuildPrompt renders the analysis result into an analyst prompt.
func BuildPrompt(result *advisor.AnalysisResult) string {
	var sb strings.Builder

	sb.WriteString("You are a professional investment portfolio analyst. ")
	sb.WriteString("Provide concise, actionable insights for the following portfolio analysis:\n\n")
	fmt.Fprintf(&sb, "Portfolio: %s\n", result.PortfolioName)
	fmt.Fprintf(&sb, "Total Value: %.2f %s\n", result.TotalValue, result.Currency)
	fmt.Fprintf(&sb, "Total Return: %s\n", result.TotalReturn.SignedString())
	fmt.Fprintf(&sb, "Annualized Return: %s\n", result.AnnualizedReturn.SignedString())
	fmt.Fprintf(&sb, "Volatility: %s\n", result.Volatility)
	fmt.Fprintf(&sb, "Sharpe Ratio: %.2f\n", result.SharpeRatio)
	fmt.Fprintf(&sb, "Max Drawdown: %s\n", result.MaxDrawdown)
	fmt.Fprintf(&sb, "Beta: %.2f\n", result.Beta)
	fmt.Fprintf(&sb, "Alpha: %s\n", result.Alpha.SignedString())
	fmt.Fprintf(&sb, "Benchmark: %s\n", result.Benchmark)

	sb.WriteString("\nHoldings:\n")
	for _, h := range result.Holdings {
		fmt.Fprintf(&sb, "  - %s (%s): weight %s, return %s, sector %s\n",
			h.Ticker, h.Name, h.Weight, h.Return.SignedString(), h.Sector)
	}

	sb.WriteString("\nCover the following:\n")
	sb.WriteString("1. Portfolio strengths and weaknesses\n")
	sb.WriteString("2. Sector concentration risk\n")
	sb.WriteString("3. Risk-adjusted return efficiency\n")
	sb.WriteString("4. Improvement suggestions with concrete action items\n")

	return sb.String()
}

// extractText concatenates the text parts of the first candidate.
func extractText(answer *genai.GenerateContentResponse) string {
	if len(answer.Candidates) == 0 || answer.Candidates[0].Content == nil {
		return ""
	}
	var text strings.Builder
	for _, part := range answer.Candidates[0].Content.Parts {
		text.WriteString(part.Text)
	}
	return text.String()
}
