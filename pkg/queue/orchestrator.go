// Package queue implements the pipeline orchestrator: the polling dispatch
// loop that claims launchable rows, runs flows against them, recovers
// failed and stuck rows, and drains cleanly on shutdown. The database is
// the only coordination mechanism, so multiple instances can run the loop
// against one database.
package queue

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/docfold/docfold/ent"
	"github.com/docfold/docfold/ent/document"
	"github.com/docfold/docfold/pkg/config"
	"github.com/docfold/docfold/pkg/flow"
	"github.com/docfold/docfold/pkg/models"
	"github.com/docfold/docfold/pkg/services"
)

// Orchestrator runs the dispatch loop.
type Orchestrator struct {
	docs  *services.DocumentService
	files *services.FileService
	flows *flow.Flows
	cfg   *config.PipelineConfig

	// In-flight registry: rows already owned by a running flow in this
	// process. Prevents one slow flow from being relaunched every tick.
	mu       sync.Mutex
	inflight map[string]struct{}

	wg       sync.WaitGroup
	stopCh   chan struct{}
	stopOnce sync.Once
	cancel   context.CancelFunc
}

// NewOrchestrator creates an orchestrator.
func NewOrchestrator(docs *services.DocumentService, files *services.FileService, flows *flow.Flows, cfg *config.PipelineConfig) *Orchestrator {
	return &Orchestrator{
		docs:     docs,
		files:    files,
		flows:    flows,
		cfg:      cfg,
		inflight: make(map[string]struct{}),
		stopCh:   make(chan struct{}),
	}
}

// Start launches the polling loop. The first tick runs immediately so a
// restart resumes work without waiting a full interval. Flows launched by
// the loop run under a context that Stop cancels, so shutdown interrupts
// gate waiters and lock polls instead of waiting them out.
func (o *Orchestrator) Start(ctx context.Context) {
	o.mu.Lock()
	ctx, o.cancel = context.WithCancel(ctx)
	o.mu.Unlock()

	o.wg.Add(1)
	go func() {
		defer o.wg.Done()

		slog.Info("Orchestrator started", "poll_interval", o.cfg.PollInterval)
		ticker := time.NewTicker(o.cfg.PollInterval)
		defer ticker.Stop()

		o.tick(ctx)
		for {
			select {
			case <-o.stopCh:
				return
			case <-ctx.Done():
				return
			case <-ticker.C:
				o.tick(ctx)
			}
		}
	}()
}

// Stop halts dispatch, cancels in-flight flows, and waits for them up to
// the graceful shutdown timeout. Cancelled flows leave their rows in a
// progressing status; the stuck sweep recovers those after restart. Flows
// still running after the timeout are abandoned the same way.
func (o *Orchestrator) Stop() {
	o.stopOnce.Do(func() {
		close(o.stopCh)
		o.mu.Lock()
		if o.cancel != nil {
			o.cancel()
		}
		o.mu.Unlock()
	})

	done := make(chan struct{})
	go func() {
		o.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		slog.Info("Orchestrator stopped cleanly")
	case <-time.After(o.cfg.GracefulShutdownTimeout):
		slog.Warn("Orchestrator shutdown timed out with flows in flight")
	}
}

// tick is one scheduler pass: recover, then dispatch.
func (o *Orchestrator) tick(ctx context.Context) {
	if err := o.sweep(ctx); err != nil {
		slog.Error("Sweep failed", "error", err)
	}
	if err := o.resetFailedDocuments(ctx); err != nil {
		slog.Error("Failed-document reset failed", "error", err)
	}
	if err := o.dispatchDocuments(ctx); err != nil {
		slog.Error("Document dispatch failed", "error", err)
	}
	if err := o.dispatchFiles(ctx); err != nil {
		slog.Error("File dispatch failed", "error", err)
	}
}

// resetFailedDocuments moves retryable "failed" rows back to their resume
// status so dispatch picks them up.
func (o *Orchestrator) resetFailedDocuments(ctx context.Context) error {
	failed, err := o.docs.ListByStatus(ctx, o.cfg.DocumentBatchLimit, document.StatusFailed)
	if err != nil {
		return err
	}
	for _, doc := range failed {
		if err := o.docs.ResetFailed(ctx, doc); err != nil {
			slog.Error("Failed to reset document", "document_id", doc.ID, "error", err)
		}
	}
	return nil
}

func (o *Orchestrator) dispatchDocuments(ctx context.Context) error {
	docs, err := o.docs.ListByStatus(ctx, o.cfg.DocumentBatchLimit, models.LaunchableStatuses...)
	if err != nil {
		return err
	}
	for _, doc := range docs {
		o.launchDocument(ctx, doc)
	}
	return nil
}

func (o *Orchestrator) dispatchFiles(ctx context.Context) error {
	files, err := o.files.ListByStatus(ctx, o.cfg.FileBatchLimit, models.FileLaunchableStatuses...)
	if err != nil {
		return err
	}
	for _, f := range files {
		o.launchFile(ctx, f)
	}
	return nil
}

func (o *Orchestrator) launchDocument(ctx context.Context, doc *ent.Document) {
	if !o.claim("doc:" + doc.ID) {
		return
	}
	o.wg.Add(1)
	go func() {
		defer o.wg.Done()
		defer o.release("doc:" + doc.ID)
		if err := o.flows.ProcessDocument(ctx, doc); err != nil {
			slog.Debug("Document flow ended with error", "document_id", doc.ID, "error", err)
		}
	}()
}

func (o *Orchestrator) launchFile(ctx context.Context, f *ent.File) {
	if !o.claim("file:" + f.ID) {
		return
	}
	o.wg.Add(1)
	go func() {
		defer o.wg.Done()
		defer o.release("file:" + f.ID)
		if err := o.flows.ProcessFile(ctx, f); err != nil {
			slog.Debug("File flow ended with error", "file_id", f.ID, "error", err)
		}
	}()
}

func (o *Orchestrator) claim(key string) bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	if _, exists := o.inflight[key]; exists {
		return false
	}
	o.inflight[key] = struct{}{}
	return true
}

func (o *Orchestrator) release(key string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	delete(o.inflight, key)
}

// InFlight returns the number of flows this instance currently owns.
func (o *Orchestrator) InFlight() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return len(o.inflight)
}

// RunOnce drains the queue synchronously: repeated passes over launchable
// rows until a full pass finds nothing to do. Retryable failures are
// retried within the drain until rows settle in a terminal status.
func (o *Orchestrator) RunOnce(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		if err := o.sweep(ctx); err != nil {
			return fmt.Errorf("sweep: %w", err)
		}
		if err := o.resetFailedDocuments(ctx); err != nil {
			return err
		}

		docs, err := o.docs.ListByStatus(ctx, o.cfg.DocumentBatchLimit, models.LaunchableStatuses...)
		if err != nil {
			return err
		}
		files, err := o.files.ListByStatus(ctx, o.cfg.FileBatchLimit, models.FileLaunchableStatuses...)
		if err != nil {
			return err
		}
		if len(docs) == 0 && len(files) == 0 {
			// One more failed-row check: rows that failed during this pass
			// still deserve their retries.
			failed, err := o.docs.ListByStatus(ctx, 1, document.StatusFailed)
			if err != nil {
				return err
			}
			if len(failed) == 0 {
				slog.Info("Run-once drain complete")
				return nil
			}
			continue
		}

		for _, doc := range docs {
			if err := o.flows.ProcessDocument(ctx, doc); err != nil {
				if models.KindOf(err) == models.KindCancelled {
					return err
				}
			}
		}
		for _, f := range files {
			if err := o.flows.ProcessFile(ctx, f); err != nil {
				if models.KindOf(err) == models.KindCancelled {
					return err
				}
			}
		}
	}
}

// ProcessOne runs a single document end to end, synchronously. Failed rows
// are reset first so a stuck document can be pushed through by hand.
func (o *Orchestrator) ProcessOne(ctx context.Context, documentID string) error {
	doc, err := o.docs.Get(ctx, documentID)
	if err != nil {
		return err
	}
	if doc.Status == document.StatusFailed {
		if err := o.docs.ResetFailed(ctx, doc); err != nil {
			return err
		}
		doc, err = o.docs.Get(ctx, documentID)
		if err != nil {
			return err
		}
	}
	if models.IsTerminalStatus(doc.Status) {
		return fmt.Errorf("document %s is already %s", documentID, doc.Status)
	}

	if err := o.flows.ProcessDocument(ctx, doc); err != nil {
		return err
	}

	doc, err = o.docs.Get(ctx, documentID)
	if err != nil {
		return err
	}
	if doc.Status != document.StatusCompleted {
		return fmt.Errorf("document %s stopped at %s: %s", documentID, doc.Status, lastErrorOf(doc))
	}
	return nil
}

func lastErrorOf(doc *ent.Document) string {
	if doc.LastError == nil {
		return "no error recorded"
	}
	return *doc.LastError
}
