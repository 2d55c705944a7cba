package main

import (
	"fmt"
	"os"

	"github.com/krishna123-lang/semantic-book-recommender/internal/config"
	"github.com/spf13/cobra"
)

var initProvider string

func init() {
	initCmd.Flags().StringVar(&initProvider, "provider", "ollama", "Embedding provider (ollama or openai)")
	rootCmd.AddCommand(initCmd)
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a bookrec repository",
	Long: `Initialize a bookrec repository in the current directory.

Creates the .bookrec directory with a default configuration. Import a
corpus next with 'bookrec ingest <csv>'.`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	cwd, err := os.Getwd()
	if err != nil {
		exitWithError(ExitError, "getting current directory: %v", err)
	}

	if config.IsRepository(cwd) {
		exitWithError(ExitError, "already a bookrec repository: %s", config.BookrecPath(cwd))
	}

	if err := config.ValidateProvider(initProvider); err != nil {
		exitWithError(ExitConfigError, "%v", err)
	}

	if err := os.MkdirAll(config.CachePath(cwd), 0755); err != nil {
		exitWithError(ExitError, "creating repository: %v", err)
	}

	cfg := &config.Config{Provider: initProvider}
	if err := cfg.Save(cwd); err != nil {
		exitWithError(ExitError, "writing config: %v", err)
	}

	if humanOutput {
		fmt.Printf("Initialized bookrec repository in %s\n", config.BookrecPath(cwd))
		fmt.Println("\nNext steps:")
		fmt.Println("  1. bookrec ingest <csv>      # import a book corpus")
		fmt.Println("  2. bookrec index build       # embed and index it")
		fmt.Println("  3. bookrec recommend <query>")
	} else {
		outputJSON(StatusResponse{Status: "initialized", Path: config.BookrecPath(cwd)})
	}

	return nil
}
