package main

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gnana997/tokenforge/pkg/tokens"
)

// ProjectConfig holds the contents of .tokenforge/config.yaml.
type ProjectConfig struct {
	Version          string   `yaml:"version"`
	OutDir           string   `yaml:"out_dir"`
	Include          []string `yaml:"include"`
	Exclude          []string `yaml:"exclude"`
	EnforceWCAG      *bool    `yaml:"enforce_wcag"`
	MinContrastRatio float64  `yaml:"min_contrast_ratio"`
	MCPLogPath       string   `yaml:"mcp_log"`
	LogLevel         string   `yaml:"log_level"`
}

const configPath = ".tokenforge/config.yaml"

// loadProjectConfig reads .tokenforge/config.yaml from the current directory.
// Returns nil (no error) if the file does not exist.
func loadProjectConfig() (*ProjectConfig, error) {
	data, err := os.ReadFile(configPath)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var cfg ProjectConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// resolveOutDir returns the output directory to use, applying the fallback
// chain:
//  1. Explicit --out flag value (non-empty override)
//  2. out_dir from .tokenforge/config.yaml
//  3. Default: dist/tokens
func resolveOutDir(flagValue string, cfg *ProjectConfig) string {
	if flagValue != "" {
		return flagValue
	}
	if cfg != nil && cfg.OutDir != "" {
		return cfg.OutDir
	}
	return "dist/tokens"
}

// generatorOptions maps the config onto generator options, keeping the
// engine defaults for anything unset.
func generatorOptions(cfg *ProjectConfig) tokens.Options {
	opts := tokens.DefaultOptions()
	if cfg == nil {
		return opts
	}
	if cfg.EnforceWCAG != nil {
		opts.EnforceWCAG = *cfg.EnforceWCAG
	}
	if cfg.MinContrastRatio > 0 {
		opts.MinContrastRatio = cfg.MinContrastRatio
	}
	return opts
}
