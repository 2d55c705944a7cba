package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestGlobalConfigPathRespectsXDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/custom/config")
	if got := GlobalConfigPath(); got != filepath.Join("/custom/config", "bookrec", "config.yml") {
		t.Errorf("GlobalConfigPath = %s", got)
	}
}

func TestLoadGlobalConfigMissingFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	ResetGlobalConfigCache()
	t.Cleanup(ResetGlobalConfigCache)

	cfg, err := LoadGlobalConfig()
	if err != nil {
		t.Fatalf("LoadGlobalConfig: %v", err)
	}
	if *cfg != (GlobalConfig{}) {
		t.Errorf("cfg = %+v, want empty", cfg)
	}
}

func TestLoadGlobalConfig(t *testing.T) {
	configHome := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", configHome)
	ResetGlobalConfigCache()
	t.Cleanup(ResetGlobalConfigCache)

	dir := filepath.Join(configHome, GlobalConfigDir)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	content := "openai_api_key: sk-test\ndefault_provider: openai\nollama_url: http://remote:11434\n"
	if err := os.WriteFile(filepath.Join(dir, GlobalConfigFile), []byte(content), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := LoadGlobalConfig()
	if err != nil {
		t.Fatalf("LoadGlobalConfig: %v", err)
	}
	if cfg.OpenAIAPIKey != "sk-test" || cfg.DefaultProvider != "openai" || cfg.OllamaURL != "http://remote:11434" {
		t.Errorf("cfg = %+v", cfg)
	}
}

func TestGetOpenAIAPIKeyPrefersEnvironment(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("OPENAI_API_KEY", "sk-env")
	ResetGlobalConfigCache()
	t.Cleanup(ResetGlobalConfigCache)

	if got := GetOpenAIAPIKey(); got != "sk-env" {
		t.Errorf("GetOpenAIAPIKey = %s, want environment value", got)
	}
}

func TestLoadGlobalConfigBadYAML(t *testing.T) {
	configHome := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", configHome)
	ResetGlobalConfigCache()
	t.Cleanup(ResetGlobalConfigCache)

	dir := filepath.Join(configHome, GlobalConfigDir)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, GlobalConfigFile), []byte("{unclosed"), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	if _, err := LoadGlobalConfig(); err == nil {
		t.Error("expected error for malformed YAML")
	}
}
