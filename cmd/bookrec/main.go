// Package main provides the bookrec CLI entry point.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags
var Version = "dev"

// humanOutput controls whether to use human-readable output
var humanOutput bool

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(ExitError)
	}
}

var rootCmd = &cobra.Command{
	Use:   "bookrec",
	Short: "Semantic book recommender",
	Long: `bookrec recommends books by meaning, not keywords.

It embeds book descriptions into a vector index and answers free-text
queries with nearest-neighbor retrieval, structured explanations, mood
search, a conversational mode, and reading-journey suggestions. All
commands output JSON by default for easy integration with other tools.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&humanOutput, "human", false, "Use human-readable output instead of JSON")
	rootCmd.Version = Version
}
