// Package e2e wires the full pipeline against a real PostgreSQL schema and
// scripted external providers, and drives it through the orchestrator the
// way production does.
package e2e

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/docfold/docfold/pkg/config"
	"github.com/docfold/docfold/pkg/database"
	"github.com/docfold/docfold/pkg/flow"
	"github.com/docfold/docfold/pkg/gate"
	"github.com/docfold/docfold/pkg/ocr"
	"github.com/docfold/docfold/pkg/queue"
	"github.com/docfold/docfold/pkg/services"
	"github.com/docfold/docfold/pkg/stages"
	"github.com/docfold/docfold/pkg/typelock"
	"github.com/docfold/docfold/test/util"
	"github.com/stretchr/testify/require"
)

// ScriptedOCRClient implements ocr.Client from a folder→result map.
type ScriptedOCRClient struct {
	mu      sync.Mutex
	results map[string]*ocr.ExtractResult
	errs    map[string]error
}

// NewScriptedOCRClient creates an empty scripted OCR client.
func NewScriptedOCRClient() *ScriptedOCRClient {
	return &ScriptedOCRClient{
		results: make(map[string]*ocr.ExtractResult),
		errs:    make(map[string]error),
	}
}

// Script sets the extraction result for a folder.
func (c *ScriptedOCRClient) Script(folder, text string, confidence float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.results[folder] = &ocr.ExtractResult{FullText: text, Confidence: confidence}
}

// ScriptError makes extraction of a folder fail.
func (c *ScriptedOCRClient) ScriptError(folder string, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.errs[folder] = err
}

// Extract implements ocr.Client.
func (c *ScriptedOCRClient) Extract(ctx context.Context, folder string) (*ocr.ExtractResult, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err, ok := c.errs[folder]; ok {
		return nil, err
	}
	if result, ok := c.results[folder]; ok {
		return result, nil
	}
	return &ocr.ExtractResult{FullText: "unscripted folder " + folder, Confidence: 0.5}, nil
}

// TestApp is a fully wired pipeline over a per-test schema.
type TestApp struct {
	DB           *database.Client
	Docs         *services.DocumentService
	Tags         *services.TagService
	Series       *services.SeriesService
	Files        *services.FileService
	Prompts      *services.PromptService
	LLM          *ScriptedLLMClient
	OCR          *ScriptedOCRClient
	Orchestrator *queue.Orchestrator
	Cfg          *config.PipelineConfig
}

// NewTestApp builds the pipeline against a fresh schema with seeded
// prompts. The pipeline config is tuned for test speed; tests may mutate
// it before driving the orchestrator.
func NewTestApp(t *testing.T) *TestApp {
	t.Helper()
	ctx := context.Background()

	entClient, db := util.SetupTestDatabase(t)
	dbClient := database.NewClientFromEnt(entClient, db)

	cfg := config.DefaultPipelineConfig()
	cfg.PollInterval = 50 * time.Millisecond
	cfg.StuckThreshold = 2 * time.Second
	cfg.LockWaitTimeout = 5 * time.Second
	cfg.LockPollInterval = 20 * time.Millisecond
	cfg.GracefulShutdownTimeout = 5 * time.Second

	docs := services.NewDocumentService(dbClient)
	tagSvc := services.NewTagService(dbClient)
	seriesSvc := services.NewSeriesService(dbClient)
	files := services.NewFileService(dbClient)
	prompts := services.NewPromptService(dbClient)

	require.NoError(t, prompts.EnsureSeeds(ctx, config.SeedPrompts()))

	llmClient := NewScriptedLLMClient()
	ocrClient := NewScriptedOCRClient()

	gates := gate.NewRegistry(map[string]int64{
		gate.OCR:     int64(cfg.OCRConcurrency),
		gate.LLM:     int64(cfg.LLMConcurrency),
		gate.FileGen: int64(cfg.FileGenConcurrency),
	})
	locker := typelock.NewLocker(dbClient, cfg.LockWaitTimeout, cfg.LockPollInterval)
	runner := stages.NewRunner(docs, tagSvc, seriesSvc, files, prompts,
		llmClient, ocrClient, gates, locker, cfg)
	flows := flow.New(runner, docs, files)

	return &TestApp{
		DB:           dbClient,
		Docs:         docs,
		Tags:         tagSvc,
		Series:       seriesSvc,
		Files:        files,
		Prompts:      prompts,
		LLM:          llmClient,
		OCR:          ocrClient,
		Orchestrator: queue.NewOrchestrator(docs, files, flows, cfg),
		Cfg:          cfg,
	}
}

// IngestDocument creates a pending document with scripted OCR output.
func (a *TestApp) IngestDocument(t *testing.T, folder, filename, text string) string {
	t.Helper()
	a.OCR.Script(folder, text, 0.98)
	doc, err := a.Docs.Create(context.Background(), services.CreateDocumentInput{
		FolderPath: folder,
		Filename:   filename,
		MimeType:   "application/pdf",
		SizeBytes:  int64(len(text)),
	})
	require.NoError(t, err)
	return doc.ID
}
