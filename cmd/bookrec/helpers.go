package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/krishna123-lang/semantic-book-recommender/internal/catalog"
	"github.com/krishna123-lang/semantic-book-recommender/internal/config"
	"github.com/krishna123-lang/semantic-book-recommender/internal/embedding"
	"github.com/krishna123-lang/semantic-book-recommender/internal/explain"
	"github.com/krishna123-lang/semantic-book-recommender/internal/langdetect"
	"github.com/krishna123-lang/semantic-book-recommender/internal/recommend"
	"github.com/krishna123-lang/semantic-book-recommender/internal/tracker"
	"github.com/krishna123-lang/semantic-book-recommender/internal/vecindex"
)

// mustFindRepository locates the repository root or exits.
func mustFindRepository() string {
	cwd, err := os.Getwd()
	if err != nil {
		exitWithError(ExitError, "getting current directory: %v", err)
	}

	root, err := config.FindRepository(cwd)
	if err != nil {
		if repo := config.GetDefaultRepo(); repo != "" && config.IsRepository(repo) {
			return repo
		}
		if humanOutput {
			fmt.Fprintln(os.Stderr, config.HelpfulConfigMessage())
			os.Exit(ExitConfigError)
		}
		exitWithError(ExitConfigError, "%v", err)
	}
	return root
}

// loadRepoConfig reads the repo config, falling back to defaults when the
// file is absent.
func loadRepoConfig(root string) *config.Config {
	cfg, err := config.Load(root)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &config.Config{}
		}
		exitWithError(ExitConfigError, "loading config: %v", err)
	}
	return cfg
}

// mustLoadCatalog loads the corpus CSV or exits.
func mustLoadCatalog(root string, cfg *config.Config) *catalog.Catalog {
	books, err := catalog.LoadCSV(config.CorpusPath(root, cfg))
	if err != nil {
		if errors.Is(err, catalog.ErrCorpusNotFound) {
			exitWithError(ExitCorpusError, "no corpus found\n\nRun 'bookrec ingest <csv>' to import one.")
		}
		exitWithError(ExitCorpusError, "loading corpus: %v", err)
	}
	if books.Len() == 0 {
		exitWithError(ExitCorpusError, "corpus is empty")
	}
	return books
}

// mustLoadIndex loads the saved vector index and verifies it matches the
// current corpus.
func mustLoadIndex(root string, books *catalog.Catalog) *vecindex.Flat {
	idx, err := vecindex.Load(config.IndexPath(root))
	if err != nil {
		if errors.Is(err, vecindex.ErrIndexNotFound) {
			exitWithError(ExitIndexStale, "no vector index found\n\nRun 'bookrec index build' first.")
		}
		if errors.Is(err, vecindex.ErrUnsupportedVersion) {
			exitWithError(ExitIndexStale, "%v", err)
		}
		exitWithError(ExitError, "loading index: %v", err)
	}

	if idx.Len() != books.Len() || idx.Fingerprint != books.Fingerprint() {
		exitWithError(ExitIndexStale, "vector index is stale (corpus changed since build)\n\nRun 'bookrec index build' to rebuild.")
	}
	return idx
}

// newProvider constructs the configured embedding provider. Secrets come
// from the environment, a .env file in the repo root, or the global config.
func newProvider(root string, cfg *config.Config) embedding.Provider {
	// Best effort: a missing .env file is fine.
	_ = godotenv.Load(root + "/.env")

	provider := cfg.Provider
	if provider == "" {
		provider = config.GetDefaultProvider()
	}

	switch provider {
	case "openai":
		opts := []embedding.OpenAIOption{}
		if cfg.Model != "" {
			opts = append(opts, embedding.WithOpenAIModel(cfg.Model))
		}
		if cfg.Dimensions > 0 {
			opts = append(opts, embedding.WithOpenAIDimensions(cfg.Dimensions))
		}
		p, err := embedding.NewOpenAIProvider(config.GetOpenAIAPIKey(), opts...)
		if err != nil {
			exitWithError(ExitConfigError, "%v\n\nSet OPENAI_API_KEY or add openai_api_key to %s.", err, config.GlobalConfigPath())
		}
		return p
	case "", "ollama":
		opts := []embedding.OllamaOption{}
		if url := cfg.OllamaURL; url != "" {
			opts = append(opts, embedding.WithBaseURL(url))
		} else if url := config.GetOllamaURL(); url != "" {
			opts = append(opts, embedding.WithBaseURL(url))
		}
		if cfg.Model != "" {
			opts = append(opts, embedding.WithModel(cfg.Model))
		}
		if cfg.Dimensions > 0 {
			opts = append(opts, embedding.WithDimensions(cfg.Dimensions))
		}
		return embedding.NewOllamaProvider(opts...)
	default:
		exitWithError(ExitConfigError, "invalid provider %q (valid: %v)", provider, config.ValidProviders)
		return nil
	}
}

// newExplainer builds the explanation generator, honoring any wordlist
// override configured for the repo.
func newExplainer(root string, cfg *config.Config) *explain.Generator {
	if cfg.Wordlists == "" {
		return explain.NewGenerator(explain.DefaultWordlists())
	}

	path := cfg.Wordlists
	if path[0] != '/' {
		path = root + "/" + path
	}
	lists, err := explain.LoadWordlists(path)
	if err != nil {
		exitWithError(ExitConfigError, "loading wordlists: %v", err)
	}
	return explain.NewGenerator(lists)
}

// mustBuildEngine assembles the full retrieval engine for query commands.
func mustBuildEngine(root string) (*recommend.Engine, *catalog.Catalog, *vecindex.Flat) {
	cfg := loadRepoConfig(root)
	books := mustLoadCatalog(root, cfg)
	idx := mustLoadIndex(root, books)
	provider := newProvider(root, cfg)

	engine := recommend.NewEngine(provider, idx, books, langdetect.New(), newExplainer(root, cfg))
	return engine, books, idx
}

// newTracker opens the interaction log for the repository.
func newTracker(root string) *tracker.Tracker {
	return tracker.New(config.InteractionsPath(root))
}
