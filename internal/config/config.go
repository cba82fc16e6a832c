// Package config loads process configuration from an optional YAML file
// overlaid with environment variables, following the env-default pattern
// the teacher's service configs use throughout the iaros codebase.
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config is the offer engine's full process configuration.
type Config struct {
	HTTPAddr           string `yaml:"httpAddr"`
	LogLevel           string `yaml:"logLevel"`
	LogFormat          string `yaml:"logFormat"`
	Environment        string `yaml:"environment"`
	StoreInitialCap    int    `yaml:"storeInitialCapacity"`
	CancelCheckEvery   int    `yaml:"cancelCheckEvery"`
}

// Default returns the configuration used when neither a file nor
// environment overrides are present.
func Default() Config {
	return Config{
		HTTPAddr:         ":8080",
		LogLevel:         "info",
		LogFormat:        "json",
		Environment:      "development",
		StoreInitialCap:  1 << 16,
		CancelCheckEvery: 4096,
	}
}

// Load builds a Config starting from Default, overlaying path (if non-empty
// and present on disk) and then environment variables, in that order —
// matching the teacher's "file sets the baseline, env wins" convention.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		if raw, err := os.ReadFile(path); err == nil {
			if err := yaml.Unmarshal(raw, &cfg); err != nil {
				return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		}
	}

	applyEnv(&cfg)
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("OFFER_ENGINE_HTTP_ADDR"); v != "" {
		cfg.HTTPAddr = v
	}
	if v := os.Getenv("OFFER_ENGINE_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("OFFER_ENGINE_LOG_FORMAT"); v != "" {
		cfg.LogFormat = v
	}
	if v := os.Getenv("OFFER_ENGINE_ENVIRONMENT"); v != "" {
		cfg.Environment = v
	}
	if v := os.Getenv("OFFER_ENGINE_STORE_INITIAL_CAPACITY"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.StoreInitialCap = n
		}
	}
	if v := os.Getenv("OFFER_ENGINE_CANCEL_CHECK_EVERY"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.CancelCheckEvery = n
		}
	}
}
