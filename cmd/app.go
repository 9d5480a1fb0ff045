// Package cmd implements the CLI application to analyze and rebalance a
// portfolio.
package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on
// the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&analyzeCmd{}, "portfolio")
	c.Register(&rebalanceCmd{}, "portfolio")
}

// Environment variables consulted when the matching flag is empty.
const (
	eodhdKeyEnv  = "EODHD_API_KEY"
	geminiKeyEnv = "GEMINI_API_KEY"
)

// keyOrEnv returns the flag value, falling back to the environment
// variable. The flag takes precedence.
func keyOrEnv(flagValue, env string) string {
	if flagValue == "" {
		return os.Getenv(env)
	}
	return flagValue
}

// printMarkdown renders markdown for the terminal. When rendering fails the
// raw markdown is still printed, it is readable enough.
func printMarkdown(markdown string) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle())
	if err != nil {
		fmt.Println(markdown)
		return
	}
	out, err := r.Render(markdown)
	if err != nil {
		fmt.Println(markdown)
		return
	}
	fmt.Print(out)
}
