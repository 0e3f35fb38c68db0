// Package flow drives rows through the stage DAG. A document flow owns one
// document from its current resumable status to "completed"; a file flow
// owns one file generation. Flows are resumable: launched against a
// mid-pipeline row, they pick up exactly where the status column says work
// stopped.
package flow

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/docfold/docfold/ent"
	"github.com/docfold/docfold/ent/document"
	"github.com/docfold/docfold/pkg/models"
	"github.com/docfold/docfold/pkg/services"
	"github.com/docfold/docfold/pkg/stages"
	"github.com/docfold/docfold/pkg/typelock"
	"golang.org/x/sync/errgroup"
)

// Flows executes document and file flows over a stage runner.
type Flows struct {
	runner *stages.Runner
	docs   *services.DocumentService
	files  *services.FileService
}

// New creates a flow executor.
func New(runner *stages.Runner, docs *services.DocumentService, files *services.FileService) *Flows {
	return &Flows{runner: runner, docs: docs, files: files}
}

// ProcessDocument runs the document flow and applies failure bookkeeping.
// Lost claim races and context cancellation are not failures: the row is
// owned elsewhere or will be resumed after restart.
func (f *Flows) ProcessDocument(ctx context.Context, doc *ent.Document) error {
	err := f.runDocument(ctx, doc)
	if err == nil {
		return nil
	}
	if services.IsConflict(err) || errors.Is(err, typelock.ErrLockTimeout) {
		slog.Debug("Document flow yielded", "document_id", doc.ID, "reason", err)
		return nil
	}
	if models.KindOf(err) == models.KindCancelled {
		return err
	}
	if markErr := f.docs.MarkFailed(ctx, doc.ID, err); markErr != nil {
		slog.Error("Failed to record document failure", "document_id", doc.ID, "error", markErr)
	}
	return err
}

// runDocument advances the document one stage at a time until it reaches a
// terminal status or an error stops the flow. Each iteration re-reads the
// row so the switch always sees the latest transition.
func (f *Flows) runDocument(ctx context.Context, doc *ent.Document) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		doc, err := f.docs.Get(ctx, doc.ID)
		if err != nil {
			return err
		}

		switch doc.Status {
		case document.StatusPending:
			if err := f.runner.RunOCR(ctx, doc); err != nil {
				return err
			}

		case document.StatusOcrCompleted:
			if err := f.runner.RunClassify(ctx, doc); err != nil {
				return err
			}

		case document.StatusClassified:
			if err := f.runFanout(ctx, doc); err != nil {
				return err
			}

		case document.StatusScoredClassification:
			// Resumed mid-fanout: the scoring branch finished but the
			// summary may still be missing.
			if doc.Summary == nil {
				if err := f.runner.RunSummarize(ctx, doc); err != nil {
					return err
				}
			} else if err := f.runner.RunScoreSummary(ctx, doc); err != nil {
				return err
			}

		case document.StatusSummarized:
			if err := f.runner.RunScoreSummary(ctx, doc); err != nil {
				return err
			}

		case document.StatusScoredSummary:
			if err := f.runner.RunFiling(ctx, doc); err != nil {
				return err
			}

		case document.StatusFiled:
			if err := f.docs.Transition(ctx, doc.ID, document.StatusCompleted, document.StatusFiled); err != nil {
				return err
			}
			slog.Info("Document completed", "document_id", doc.ID)
			return nil

		default:
			// Terminal, failed (orchestrator resets those), or progressing
			// under another owner. Either way this flow is done.
			return nil
		}
	}
}

// runFanout runs the post-classification branches concurrently:
// classification scoring and summarization. Scoring is skipped until the
// document type has accumulated enough documents for a meaningful sample.
func (f *Flows) runFanout(ctx context.Context, doc *ent.Document) error {
	if doc.DocumentType == nil {
		return models.Permanent("fanout", fmt.Errorf("document %s has no type after classification", doc.ID))
	}

	shouldScore, err := f.runner.ShouldScore(ctx, *doc.DocumentType)
	if err != nil {
		return models.Transient("fanout", err)
	}

	g, gctx := errgroup.WithContext(ctx)
	if shouldScore {
		g.Go(func() error {
			return f.runner.RunScoreClassification(gctx, doc)
		})
	}
	g.Go(func() error {
		return f.runner.RunSummarize(gctx, doc)
	})
	return g.Wait()
}

// ProcessFile runs the file flow with failure bookkeeping, mirroring
// ProcessDocument.
func (f *Flows) ProcessFile(ctx context.Context, row *ent.File) error {
	err := f.runner.RunFileSummary(ctx, row)
	if err == nil {
		return nil
	}
	if services.IsConflict(err) {
		slog.Debug("File flow yielded", "file_id", row.ID, "reason", err)
		return nil
	}
	if models.KindOf(err) == models.KindCancelled {
		return err
	}
	if markErr := f.files.MarkFailed(ctx, row.ID, err); markErr != nil {
		slog.Error("Failed to record file failure", "file_id", row.ID, "error", markErr)
	}
	return err
}
