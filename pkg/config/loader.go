package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"
)

// fileConfig is the docfold.yaml file structure.
type fileConfig struct {
	Pipeline  *PipelineConfig  `yaml:"pipeline"`
	Providers *ProvidersConfig `yaml:"providers"`
}

// Initialize loads, merges, and validates configuration. The file
// <configDir>/docfold.yaml is optional; values found there are overlaid on
// the built-in defaults, and provider endpoints may be overridden by
// environment variables (LLM_SERVICE_ADDR, OCR_SERVICE_URL).
func Initialize(configDir string) (*Config, error) {
	cfg := &Config{
		configDir: configDir,
		Pipeline:  DefaultPipelineConfig(),
		Providers: &ProvidersConfig{
			LLMAddr:    "localhost:50051",
			OCRBaseURL: "http://localhost:8090",
		},
	}

	path := filepath.Join(configDir, "docfold.yaml")
	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		slog.Info("No docfold.yaml found, using defaults", "path", path)
	case err != nil:
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	default:
		var fc fileConfig
		if err := yaml.Unmarshal(data, &fc); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
		if fc.Pipeline != nil {
			if err := mergo.Merge(cfg.Pipeline, fc.Pipeline, mergo.WithOverride); err != nil {
				return nil, fmt.Errorf("failed to merge pipeline config: %w", err)
			}
		}
		if fc.Providers != nil {
			if err := mergo.Merge(cfg.Providers, fc.Providers, mergo.WithOverride); err != nil {
				return nil, fmt.Errorf("failed to merge providers config: %w", err)
			}
		}
		slog.Info("Loaded configuration", "path", path)
	}

	if addr := os.Getenv("LLM_SERVICE_ADDR"); addr != "" {
		cfg.Providers.LLMAddr = addr
	}
	if url := os.Getenv("OCR_SERVICE_URL"); url != "" {
		cfg.Providers.OCRBaseURL = url
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks configuration invariants.
func (c *Config) Validate() error {
	p := c.Pipeline
	if p.PollInterval <= 0 {
		return NewValidationError("pipeline.poll_interval", "must be positive")
	}
	if p.DocumentBatchLimit <= 0 {
		return NewValidationError("pipeline.document_batch_limit", "must be positive")
	}
	if p.FileBatchLimit <= 0 {
		return NewValidationError("pipeline.file_batch_limit", "must be positive")
	}
	if p.OCRConcurrency <= 0 || p.LLMConcurrency <= 0 || p.FileGenConcurrency <= 0 {
		return NewValidationError("pipeline.*_concurrency", "gate capacities must be positive")
	}
	if p.MaxRetries < 0 {
		return NewValidationError("pipeline.max_retries", "must not be negative")
	}
	if p.ScoreImprovementMargin < 0 {
		return NewValidationError("pipeline.score_improvement_margin", "must not be negative")
	}
	if c.Providers.LLMAddr == "" {
		return NewValidationError("providers.llm_addr", "required")
	}
	if c.Providers.OCRBaseURL == "" {
		return NewValidationError("providers.ocr_base_url", "required")
	}
	return nil
}
