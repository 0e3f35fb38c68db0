package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitializeDefaults(t *testing.T) {
	cfg, err := Initialize(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, 10*time.Second, cfg.Pipeline.PollInterval)
	assert.Equal(t, 3, cfg.Pipeline.MaxRetries)
	assert.Equal(t, "localhost:50051", cfg.Providers.LLMAddr)
	assert.Equal(t, "http://localhost:8090", cfg.Providers.OCRBaseURL)
}

func TestInitializeFileOverlay(t *testing.T) {
	dir := t.TempDir()
	yaml := `
pipeline:
  poll_interval: 30s
  llm_concurrency: 8
providers:
  ocr_base_url: http://ocr.internal:8090
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "docfold.yaml"), []byte(yaml), 0o600))

	cfg, err := Initialize(dir)
	require.NoError(t, err)

	assert.Equal(t, 30*time.Second, cfg.Pipeline.PollInterval)
	assert.Equal(t, 8, cfg.Pipeline.LLMConcurrency)
	assert.Equal(t, "http://ocr.internal:8090", cfg.Providers.OCRBaseURL)
	// Values the file omits keep their defaults.
	assert.Equal(t, 3, cfg.Pipeline.OCRConcurrency)
	assert.Equal(t, "localhost:50051", cfg.Providers.LLMAddr)
}

func TestInitializeEnvOverridesProviders(t *testing.T) {
	t.Setenv("LLM_SERVICE_ADDR", "llm.internal:50051")
	t.Setenv("OCR_SERVICE_URL", "http://ocr.env:8090")

	cfg, err := Initialize(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, "llm.internal:50051", cfg.Providers.LLMAddr)
	assert.Equal(t, "http://ocr.env:8090", cfg.Providers.OCRBaseURL)
}

func TestInitializeRejectsInvalidValues(t *testing.T) {
	dir := t.TempDir()
	yaml := `
pipeline:
  max_retries: -1
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "docfold.yaml"), []byte(yaml), 0o600))

	_, err := Initialize(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "max_retries")
}

func TestInitializeRejectsMalformedYAML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "docfold.yaml"), []byte("pipeline: ["), 0o600))

	_, err := Initialize(dir)
	require.Error(t, err)
}
