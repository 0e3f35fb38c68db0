// docfold pipeline server — watches the document queue, runs the OCR /
// classification / summarization / filing stages, and serves the ops HTTP
// API.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/docfold/docfold/pkg/api"
	"github.com/docfold/docfold/pkg/config"
	"github.com/docfold/docfold/pkg/database"
	"github.com/docfold/docfold/pkg/flow"
	"github.com/docfold/docfold/pkg/gate"
	"github.com/docfold/docfold/pkg/llm"
	"github.com/docfold/docfold/pkg/ocr"
	"github.com/docfold/docfold/pkg/queue"
	"github.com/docfold/docfold/pkg/services"
	"github.com/docfold/docfold/pkg/stages"
	"github.com/docfold/docfold/pkg/typelock"
	"github.com/joho/godotenv"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func main() {
	// Parse command-line flags
	configDir := flag.String("config-dir",
		getEnv("CONFIG_DIR", "./deploy/config"),
		"Path to configuration directory")
	mode := flag.String("mode", "serve",
		"serve (poll forever), run-once (drain the queue and exit), or process-one (run a single document)")
	documentID := flag.String("document-id", "",
		"Document to process in process-one mode")
	flag.Parse()

	// Load .env file from config directory
	envPath := filepath.Join(*configDir, ".env")
	if err := godotenv.Load(envPath); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment",
			"path", envPath, "error", err)
	}

	slog.Info("Starting docfold", "mode", *mode, "config_dir", *configDir)

	ctx := context.Background()

	// 1. Initialize configuration
	cfg, err := config.Initialize(*configDir)
	if err != nil {
		slog.Error("Failed to initialize configuration", "error", err)
		os.Exit(1)
	}

	// 2. Initialize database
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}

	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	// 3. Domain services
	docService := services.NewDocumentService(dbClient)
	tagService := services.NewTagService(dbClient)
	seriesService := services.NewSeriesService(dbClient)
	fileService := services.NewFileService(dbClient)
	promptService := services.NewPromptService(dbClient)

	// 4. Seed built-in prompts (idempotent)
	if err := promptService.EnsureSeeds(ctx, config.SeedPrompts()); err != nil {
		slog.Error("Failed to seed prompts", "error", err)
		os.Exit(1)
	}

	// 5. External providers
	// Note: grpc.NewClient uses lazy dialing; actual connection happens on
	// first RPC call
	llmClient, err := llm.NewGRPCClient(cfg.Providers.LLMAddr)
	if err != nil {
		slog.Error("Failed to initialize LLM client", "addr", cfg.Providers.LLMAddr, "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := llmClient.Close(); err != nil {
			slog.Error("Error closing LLM client", "error", err)
		}
	}()
	ocrClient := ocr.NewHTTPClient(cfg.Providers.OCRBaseURL)
	slog.Info("Providers initialized",
		"llm_addr", cfg.Providers.LLMAddr,
		"ocr_url", cfg.Providers.OCRBaseURL)

	// 6. Pipeline machinery
	gates := gate.NewRegistry(map[string]int64{
		gate.OCR:     int64(cfg.Pipeline.OCRConcurrency),
		gate.LLM:     int64(cfg.Pipeline.LLMConcurrency),
		gate.FileGen: int64(cfg.Pipeline.FileGenConcurrency),
	})
	locker := typelock.NewLocker(dbClient, cfg.Pipeline.LockWaitTimeout, cfg.Pipeline.LockPollInterval)
	runner := stages.NewRunner(docService, tagService, seriesService, fileService, promptService,
		llmClient, ocrClient, gates, locker, cfg.Pipeline)
	flows := flow.New(runner, docService, fileService)
	orchestrator := queue.NewOrchestrator(docService, fileService, flows, cfg.Pipeline)

	switch *mode {
	case "run-once":
		if err := orchestrator.RunOnce(ctx); err != nil {
			slog.Error("Run-once drain failed", "error", err)
			os.Exit(1)
		}
		return

	case "process-one":
		if *documentID == "" {
			slog.Error("process-one mode requires -document-id")
			os.Exit(1)
		}
		if err := orchestrator.ProcessOne(ctx, *documentID); err != nil {
			slog.Error("Processing failed", "document_id", *documentID, "error", err)
			os.Exit(1)
		}
		slog.Info("Document completed", "document_id", *documentID)
		return

	case "serve":
		// Handled below.

	default:
		slog.Error("Unknown mode", "mode", *mode)
		os.Exit(1)
	}

	// 7. Start the orchestrator, then the HTTP server
	orchestrator.Start(ctx)

	httpServer := api.NewServer(dbClient, docService, fileService, orchestrator)
	errCh := make(chan error, 1)
	go func() {
		addr := ":" + getEnv("HTTP_PORT", "8080")
		if err := httpServer.Start(addr); err != nil {
			errCh <- err
		}
	}()

	slog.Info("docfold started",
		"poll_interval", cfg.Pipeline.PollInterval,
		"llm_concurrency", cfg.Pipeline.LLMConcurrency)

	// 8. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 9. Graceful shutdown: stop dispatch first, wait for in-flight flows,
	// then stop the HTTP server. Rows abandoned past the timeout are
	// recovered by the stuck sweep on the next start.
	orchestrator.Stop()

	httpShutdownCtx, httpCancel := context.WithTimeout(ctx, 5*time.Second)
	defer httpCancel()
	if err := httpServer.Stop(httpShutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
}
