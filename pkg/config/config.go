package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

type AI struct {
	APIKey   string `yaml:"api_key"`
	Model    string `yaml:"model"`
	Endpoint string `yaml:"endpoint"`
}

type Config struct {
	DataDir string `yaml:"data_dir"`
	Backend string `yaml:"backend"` // "duckdb" or "json"
	AI      AI     `yaml:"ai"`
}

func defaults() Config {
	home, _ := os.UserHomeDir()
	return Config{
		DataDir: filepath.Join(home, ".experiencias"),
		Backend: "duckdb",
		AI: AI{
			Model:    "gemini-1.5-flash",
			Endpoint: "https://generativelanguage.googleapis.com/v1beta",
		},
	}
}

// Load reads ~/.experiencias/config.yaml when it exists and applies
// environment overrides on top. A missing file is not an error.
func Load() (Config, error) {
	cfg := defaults()

	path := filepath.Join(cfg.DataDir, "config.yaml")
	blob, err := os.ReadFile(path)
	if err == nil {
		if err := yaml.Unmarshal(blob, &cfg); err != nil {
			return Config{}, fmt.Errorf("invalid config file %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}

	if v := os.Getenv("EXPERIENCIAS_DATA_DIR"); v != "" {
		cfg.DataDir = v
	}
	if v := os.Getenv("EXPERIENCIAS_BACKEND"); v != "" {
		cfg.Backend = v
	}
	if v := os.Getenv("GEMINI_API_KEY"); v != "" {
		cfg.AI.APIKey = v
	}

	return cfg, nil
}
