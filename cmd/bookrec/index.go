package main

import (
	"context"
	"fmt"
	"os"

	"github.com/krishna123-lang/semantic-book-recommender/internal/config"
	"github.com/krishna123-lang/semantic-book-recommender/internal/embedding"
	"github.com/krishna123-lang/semantic-book-recommender/internal/vecindex"
	"github.com/spf13/cobra"
)

var noProgress bool

func init() {
	rootCmd.AddCommand(indexCmd)
	indexCmd.AddCommand(indexBuildCmd)
	indexCmd.AddCommand(indexCheckCmd)

	indexBuildCmd.Flags().BoolVar(&noProgress, "no-progress", false, "Suppress progress output")
}

var indexCmd = &cobra.Command{
	Use:   "index",
	Short: "Manage the vector index",
	Long:  `Commands for building and checking the vector index.`,
}

// IndexBuildResult is the response for index build command.
type IndexBuildResult struct {
	Status          string  `json:"status"`
	BooksIndexed    int     `json:"books_indexed"`
	DurationSeconds float64 `json:"duration_seconds"`
	Model           string  `json:"model"`
	Dimensions      int     `json:"dimensions"`
	IndexSizeBytes  int64   `json:"index_size_bytes"`
}

var indexBuildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build or rebuild the vector index",
	Long: `Build or rebuild the vector index from book descriptions.

With the default Ollama provider this requires Ollama to be running
with the embedding model available. Run 'ollama pull all-minilm:l6-v2'
to download the model.`,
	RunE: runIndexBuild,
}

func runIndexBuild(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	root := mustFindRepository()
	cfg := loadRepoConfig(root)
	books := mustLoadCatalog(root, cfg)
	provider := newProvider(root, cfg)

	// The Ollama provider can be probed before committing to a full build.
	if ollama, ok := provider.(*embedding.OllamaProvider); ok {
		if err := ollama.IsAvailable(ctx); err != nil {
			exitWithError(ExitProviderError, "Ollama is not running\n\nStart Ollama with 'ollama serve' or install from https://ollama.ai")
		}
		hasModel, err := ollama.HasModel(ctx)
		if err != nil {
			exitWithError(ExitError, "checking model availability: %v", err)
		}
		if !hasModel {
			exitWithError(ExitModelNotFound, "Embedding model '%s' not found\n\nRun 'ollama pull %s' to download it.", provider.ModelName(), provider.ModelName())
		}
	}

	texts := make([]string, books.Len())
	for i, book := range books.Books() {
		texts[i] = book.Description
	}

	builder := vecindex.NewBuilder(provider)
	if !noProgress && humanOutput {
		builder.SetProgressReporter(vecindex.ProgressFunc(func(current, total int) {
			fmt.Fprintf(os.Stderr, "\rEmbedding %d/%d books...", current, total)
		}))
		fmt.Fprintf(os.Stderr, "Building vector index...\n")
	}

	idx, stats, err := builder.Build(ctx, texts, books.Fingerprint())
	if err != nil {
		exitWithError(ExitError, "building index: %v", err)
	}

	if err := idx.Save(config.IndexPath(root)); err != nil {
		exitWithError(ExitError, "saving index: %v", err)
	}

	size, err := vecindex.Size(config.IndexPath(root))
	if err != nil {
		size = 0 // Non-fatal
	}

	if humanOutput && !noProgress {
		fmt.Fprintf(os.Stderr, "\r%s\r", "                                                  ")
	}

	if humanOutput {
		fmt.Printf("Build complete:\n")
		fmt.Printf("  Books indexed: %d\n", stats.BooksIndexed)
		fmt.Printf("  Time elapsed: %s\n", formatDuration(stats.Duration))
		fmt.Printf("  Index size: %s\n", formatBytes(size))
		fmt.Printf("  Model: %s (%d dimensions)\n", idx.ModelName, idx.Dimensions)
	} else {
		outputJSON(IndexBuildResult{
			Status:          "complete",
			BooksIndexed:    stats.BooksIndexed,
			DurationSeconds: stats.Duration.Seconds(),
			Model:           idx.ModelName,
			Dimensions:      idx.Dimensions,
			IndexSizeBytes:  size,
		})
	}

	return nil
}

// IndexCheckResult is the response for index check command.
type IndexCheckResult struct {
	Status       string `json:"status"`
	BooksIndexed int    `json:"books_indexed"`
	CorpusBooks  int    `json:"corpus_books"`
	Model        string `json:"model"`
	Dimensions   int    `json:"dimensions"`
	Stale        bool   `json:"stale"`
	StaleReason  string `json:"stale_reason,omitempty"`
}

var indexCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Check whether the vector index matches the corpus",
	RunE:  runIndexCheck,
}

func runIndexCheck(cmd *cobra.Command, args []string) error {
	root := mustFindRepository()
	cfg := loadRepoConfig(root)
	books := mustLoadCatalog(root, cfg)

	idx, err := vecindex.Load(config.IndexPath(root))
	if err != nil {
		exitWithError(ExitIndexStale, "%v", err)
	}

	result := IndexCheckResult{
		Status:       "ok",
		BooksIndexed: idx.Len(),
		CorpusBooks:  books.Len(),
		Model:        idx.ModelName,
		Dimensions:   idx.Dimensions,
	}
	switch {
	case idx.Len() != books.Len():
		result.Stale = true
		result.StaleReason = fmt.Sprintf("index has %d vectors but corpus has %d books", idx.Len(), books.Len())
	case idx.Fingerprint != books.Fingerprint():
		result.Stale = true
		result.StaleReason = "corpus content changed since the index was built"
	}
	if result.Stale {
		result.Status = "stale"
	}

	if humanOutput {
		fmt.Printf("Index: %d vectors, model %s (%d dimensions)\n", idx.Len(), idx.ModelName, idx.Dimensions)
		if result.Stale {
			fmt.Printf("STALE: %s\nRun 'bookrec index build' to rebuild.\n", result.StaleReason)
		} else {
			fmt.Println("Index is up to date")
		}
	} else {
		outputJSON(result)
	}

	if result.Stale {
		os.Exit(ExitIndexStale)
	}
	return nil
}
