package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// GlobalConfig represents configuration stored in ~/.config/bookrec/config.yml.
type GlobalConfig struct {
	OpenAIAPIKey    string `yaml:"openai_api_key,omitempty"`
	OllamaURL       string `yaml:"ollama_url,omitempty"`
	DefaultProvider string `yaml:"default_provider,omitempty"`
	DefaultRepo     string `yaml:"default_repo,omitempty"`
}

const (
	// GlobalConfigDir is the directory name under XDG_CONFIG_HOME.
	GlobalConfigDir = "bookrec"
	// GlobalConfigFile is the config file name.
	GlobalConfigFile = "config.yml"
)

// globalConfigCache caches the loaded global config.
var globalConfigCache *GlobalConfig

// GlobalConfigPath returns the path to the global config file.
// Respects XDG_CONFIG_HOME, defaults to ~/.config/bookrec/config.yml.
func GlobalConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, GlobalConfigDir, GlobalConfigFile)
}

// LoadGlobalConfig loads the global configuration file.
// Returns an empty config (not an error) if the file doesn't exist.
func LoadGlobalConfig() (*GlobalConfig, error) {
	if globalConfigCache != nil {
		return globalConfigCache, nil
	}

	path := GlobalConfigPath()
	if path == "" {
		return &GlobalConfig{}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &GlobalConfig{}, nil
		}
		return nil, fmt.Errorf("reading global config: %w", err)
	}

	var cfg GlobalConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing global config: %w", err)
	}

	if cfg.DefaultRepo != "" {
		cfg.DefaultRepo = ExpandPath(cfg.DefaultRepo)
	}

	globalConfigCache = &cfg
	return &cfg, nil
}

// ResetGlobalConfigCache clears the cached global config.
// Useful for testing.
func ResetGlobalConfigCache() {
	globalConfigCache = nil
}

// GetOpenAIAPIKey returns the OpenAI API key, preferring the environment
// over the global config file.
func GetOpenAIAPIKey() string {
	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		return key
	}
	cfg, _ := LoadGlobalConfig()
	return cfg.OpenAIAPIKey
}

// GetOllamaURL returns the configured Ollama URL from global config.
func GetOllamaURL() string {
	cfg, _ := LoadGlobalConfig()
	return cfg.OllamaURL
}

// GetDefaultProvider returns the embedding provider from global config.
func GetDefaultProvider() string {
	cfg, _ := LoadGlobalConfig()
	return cfg.DefaultProvider
}

// GetDefaultRepo returns the configured default repository path.
func GetDefaultRepo() string {
	cfg, _ := LoadGlobalConfig()
	return cfg.DefaultRepo
}

// HelpfulConfigMessage returns a pointer to repository setup when no
// repository is found.
func HelpfulConfigMessage() string {
	configPath := GlobalConfigPath()
	return fmt.Sprintf(`No bookrec repository found.

Tip: run 'bookrec init' in a new directory, or create %s to set a default repository:
  mkdir -p %s
  echo 'default_repo: /path/to/your/library' > %s`,
		configPath,
		filepath.Dir(configPath),
		configPath)
}
