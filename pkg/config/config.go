// Package config loads and validates docfold configuration: the pipeline
// tuning knobs (poll interval, gate capacities, retry ceilings) and the
// endpoints of the external OCR and LLM collaborators.
package config

// Config is the umbrella configuration object returned by Initialize and
// passed through the application.
type Config struct {
	configDir string

	// Pipeline contains orchestrator and stage tuning.
	Pipeline *PipelineConfig

	// Providers contains external collaborator endpoints.
	Providers *ProvidersConfig
}

// ConfigDir returns the configuration directory path.
func (c *Config) ConfigDir() string {
	return c.configDir
}

// ProvidersConfig holds external service endpoints.
type ProvidersConfig struct {
	// LLMAddr is the gRPC address of the LLM sidecar service.
	LLMAddr string `yaml:"llm_addr"`

	// OCRBaseURL is the base URL of the OCR extraction service.
	OCRBaseURL string `yaml:"ocr_base_url"`
}
