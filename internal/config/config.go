// Package config loads codeorder configuration from file and environment.
package config

import (
	"fmt"
	"strings"

	"codeorder/internal/scanner"
)

// Parser strategy names.
const (
	StrategyAuto    = "auto"    // grammar engine with pattern fallback
	StrategyPattern = "pattern" // pattern scanning only
)

// Config represents the complete codeorder configuration.
// It can be loaded from .codeorder/config.yml with environment variable
// overrides.
type Config struct {
	Source SourceConfig `yaml:"source" mapstructure:"source"`
	Scan   ScanConfig   `yaml:"scan" mapstructure:"scan"`
}

// SourceConfig configures how source files are recognized and parsed.
type SourceConfig struct {
	Extension string `yaml:"extension" mapstructure:"extension"` // recognized source extension, e.g. ".java"
	Strategy  string `yaml:"strategy" mapstructure:"strategy"`   // "auto" or "pattern"
}

// ScanConfig configures file collection.
type ScanConfig struct {
	Extensions  []string `yaml:"extensions" mapstructure:"extensions"`       // file types to collect
	Ignore      []string `yaml:"ignore" mapstructure:"ignore"`               // glob patterns to skip
	MaxFileSize int64    `yaml:"max_file_size" mapstructure:"max_file_size"` // collected file size cap in bytes
}

// Default returns a configuration with sensible defaults.
func Default() *Config {
	return &Config{
		Source: SourceConfig{
			Extension: ".java",
			Strategy:  StrategyAuto,
		},
		Scan: ScanConfig{
			Extensions:  scanner.DefaultExtensions,
			Ignore:      scanner.DefaultIgnore,
			MaxFileSize: scanner.MaxFileSize,
		},
	}
}

// Validate checks a configuration for values the pipeline cannot work with.
func Validate(cfg *Config) error {
	if !strings.HasPrefix(cfg.Source.Extension, ".") {
		return fmt.Errorf("source.extension %q must start with a dot", cfg.Source.Extension)
	}

	switch cfg.Source.Strategy {
	case StrategyAuto, StrategyPattern:
	default:
		return fmt.Errorf("source.strategy %q must be %q or %q", cfg.Source.Strategy, StrategyAuto, StrategyPattern)
	}

	if cfg.Scan.MaxFileSize <= 0 {
		return fmt.Errorf("scan.max_file_size must be positive, got %d", cfg.Scan.MaxFileSize)
	}

	return nil
}
