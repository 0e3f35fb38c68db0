package queue

import (
	"context"
	"fmt"
	"log/slog"
)

// sweep recovers rows stuck in a progressing status past the stuck
// threshold: a crashed or hung flow leaves its row mid-stage, and nothing
// else will ever touch it. Recovery is a compare-and-set against the
// observed (status, updated_at) pair, so a row that moved on its own is
// left alone.
func (o *Orchestrator) sweep(ctx context.Context) error {
	stuckDocs, err := o.docs.ListStuck(ctx, o.cfg.StuckThreshold)
	if err != nil {
		return fmt.Errorf("list stuck documents: %w", err)
	}
	for _, doc := range stuckDocs {
		if o.owned("doc:" + doc.ID) {
			// Still running in this process; slow is not stuck.
			continue
		}
		if err := o.docs.RecoverStuck(ctx, doc); err != nil {
			slog.Error("Failed to recover stuck document", "document_id", doc.ID, "error", err)
		}
	}

	stuckFiles, err := o.files.ListStuck(ctx, o.cfg.StuckThreshold)
	if err != nil {
		return fmt.Errorf("list stuck files: %w", err)
	}
	for _, f := range stuckFiles {
		if o.owned("file:" + f.ID) {
			continue
		}
		if err := o.files.RecoverStuck(ctx, f); err != nil {
			slog.Error("Failed to recover stuck file", "file_id", f.ID, "error", err)
		}
	}

	if len(stuckDocs) > 0 || len(stuckFiles) > 0 {
		slog.Info("Sweep pass finished",
			"stuck_documents", len(stuckDocs),
			"stuck_files", len(stuckFiles))
	}
	return nil
}

func (o *Orchestrator) owned(key string) bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	_, exists := o.inflight[key]
	return exists
}
