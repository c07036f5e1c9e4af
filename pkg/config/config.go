package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"
)

// Load reads and validates a configuration file. Settings absent from the
// file keep their defaults.
func Load(_ context.Context, path string) (*Config, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- user-provided config path is expected
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	cfg.applyEnvironmentOverrides()

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// Default returns the validated default configuration.
func Default() *Config {
	cfg := DefaultConfig()
	cfg.applyEnvironmentOverrides()
	if err := Validate(cfg); err != nil {
		panic(err) // defaults always validate
	}
	return cfg
}

// Validate checks a configuration for errors and compiles regex patterns.
func Validate(cfg *Config) error {
	if err := validateExport(&cfg.Export); err != nil {
		return fmt.Errorf("export: %w", err)
	}
	if err := validateAnalysis(&cfg.Analysis); err != nil {
		return fmt.Errorf("analysis: %w", err)
	}
	return nil
}

func validateExport(e *ExportConfig) error {
	if e.TimestampPattern == "" {
		return errors.New("timestamp_pattern is required")
	}

	re, err := regexp.Compile(e.TimestampPattern)
	if err != nil {
		return fmt.Errorf("invalid timestamp_pattern: %w", err)
	}

	if re.NumSubexp() < 1 {
		return errors.New("timestamp_pattern must have at least one capture group for the timestamp")
	}

	e.compiledPattern = re

	if e.TimestampLayout == "" {
		return errors.New("timestamp_layout is required")
	}

	return nil
}

func validateAnalysis(a *AnalysisConfig) error {
	if a.MediaPlaceholder == "" {
		return errors.New("media_placeholder is required")
	}
	if a.TopWords <= 0 {
		return errors.New("top_words must be positive")
	}
	if a.TopUsers <= 0 {
		return errors.New("top_users must be positive")
	}
	return nil
}
