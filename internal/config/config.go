// Package config handles repository and global configuration.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents repository configuration stored in .bookrec/config.json.
type Config struct {
	Provider   string `json:"provider"`              // Embedding provider: ollama, openai
	Model      string `json:"model,omitempty"`       // Embedding model override
	Dimensions int    `json:"dimensions,omitempty"`  // Embedding dimensions override
	OllamaURL  string `json:"ollama_url,omitempty"`  // Ollama server URL override
	Wordlists  string `json:"wordlists,omitempty"`   // Path to a YAML wordlist override file
	CorpusFile string `json:"corpus_file,omitempty"` // Corpus CSV override, relative to the repo root
}

const (
	BookrecDir       = ".bookrec"
	ConfigFile       = "config.json"
	CorpusFile       = "books.csv"
	InteractionsFile = "interactions.jsonl"
	CacheDir         = "cache"
	IndexFile        = "vectors.gob"
)

// RootEnv overrides repository discovery when set.
const RootEnv = "BOOKREC_ROOT"

// ValidProviders lists the supported embedding provider values.
var ValidProviders = []string{"ollama", "openai"}

// BookrecPath returns the path to the .bookrec directory from a root path.
func BookrecPath(root string) string {
	return filepath.Join(root, BookrecDir)
}

// ConfigPath returns the path to config.json from a root path.
func ConfigPath(root string) string {
	return filepath.Join(root, BookrecDir, ConfigFile)
}

// CorpusPath returns the path to the corpus CSV from a root path, honoring
// any corpus_file override in the repo config.
func CorpusPath(root string, cfg *Config) string {
	if cfg != nil && cfg.CorpusFile != "" {
		if filepath.IsAbs(cfg.CorpusFile) {
			return cfg.CorpusFile
		}
		return filepath.Join(root, cfg.CorpusFile)
	}
	return filepath.Join(root, BookrecDir, CorpusFile)
}

// InteractionsPath returns the path to interactions.jsonl from a root path.
func InteractionsPath(root string) string {
	return filepath.Join(root, BookrecDir, InteractionsFile)
}

// CachePath returns the path to the cache directory from a root path.
func CachePath(root string) string {
	return filepath.Join(root, BookrecDir, CacheDir)
}

// IndexPath returns the path to the vector index from a root path.
func IndexPath(root string) string {
	return filepath.Join(root, BookrecDir, CacheDir, IndexFile)
}

// IsRepository checks if the given path contains a bookrec repository.
func IsRepository(root string) bool {
	info, err := os.Stat(BookrecPath(root))
	return err == nil && info.IsDir()
}

// FindRepository locates the repository root: the BOOKREC_ROOT environment
// variable wins, otherwise it walks up from the given path looking for a
// .bookrec directory.
func FindRepository(start string) (string, error) {
	if root := os.Getenv(RootEnv); root != "" {
		if !IsRepository(root) {
			return "", fmt.Errorf("%s is not a bookrec repository (no %s directory): %s", RootEnv, BookrecDir, root)
		}
		return root, nil
	}

	abs, err := filepath.Abs(start)
	if err != nil {
		return "", fmt.Errorf("resolving path: %w", err)
	}

	for {
		if IsRepository(abs) {
			return abs, nil
		}

		parent := filepath.Dir(abs)
		if parent == abs {
			return "", fmt.Errorf("not in a bookrec repository (no %s directory found)", BookrecDir)
		}
		abs = parent
	}
}

// Load reads configuration from the repository at the given root.
func Load(root string) (*Config, error) {
	data, err := os.ReadFile(ConfigPath(root))
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	return &cfg, nil
}

// Save writes configuration to the repository at the given root.
func (c *Config) Save(root string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	if err := os.WriteFile(ConfigPath(root), data, 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	return nil
}

// ValidateProvider checks that the provider value is valid.
func ValidateProvider(provider string) error {
	if provider == "" {
		return nil // Empty defaults to "ollama"
	}

	for _, valid := range ValidProviders {
		if provider == valid {
			return nil
		}
	}

	return fmt.Errorf("invalid provider: %s (valid: %v)", provider, ValidProviders)
}

// ExpandPath expands ~ to the user's home directory.
// Returns the original path unchanged if it doesn't start with ~.
func ExpandPath(path string) string {
	if len(path) == 0 || path[0] != '~' {
		return path
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}

	return filepath.Join(home, path[1:])
}
