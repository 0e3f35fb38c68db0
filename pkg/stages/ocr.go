package stages

import (
	"context"
	"errors"
	"log/slog"

	"github.com/cenkalti/backoff/v4"
	"github.com/docfold/docfold/ent"
	"github.com/docfold/docfold/ent/document"
	"github.com/docfold/docfold/pkg/gate"
	"github.com/docfold/docfold/pkg/models"
	"github.com/docfold/docfold/pkg/ocr"
)

// RunOCR extracts text from the document's source folder:
// pending → ocr_in_progress → ocr_completed.
func (r *Runner) RunOCR(ctx context.Context, doc *ent.Document) error {
	if err := r.docs.BeginStage(ctx, doc.ID, document.StatusOcrInProgress, document.StatusPending); err != nil {
		return err
	}

	var result *ocr.ExtractResult
	err := r.gates.With(ctx, gate.OCR, func(ctx context.Context) error {
		operation := func() error {
			var err error
			result, err = r.ocr.Extract(ctx, doc.FolderPath)
			if err != nil {
				var se *ocr.StatusError
				if errors.As(err, &se) && !se.Retryable() {
					return backoff.Permanent(err)
				}
			}
			return err
		}
		return backoff.Retry(operation, backoff.WithContext(
			backoff.WithMaxRetries(backoff.NewExponentialBackOff(), 2), ctx))
	})
	if err != nil {
		var se *ocr.StatusError
		if errors.As(err, &se) && !se.Retryable() {
			return models.Permanent("ocr", err)
		}
		return models.Transient("ocr", err)
	}

	if err := r.docs.SetOCRResult(ctx, doc.ID, result.FullText, result.Confidence); err != nil {
		return err
	}

	slog.Info("OCR completed",
		"document_id", doc.ID,
		"chars", len(result.FullText),
		"confidence", result.Confidence)
	return nil
}
