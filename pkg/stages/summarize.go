package stages

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/docfold/docfold/ent"
	"github.com/docfold/docfold/ent/document"
	"github.com/docfold/docfold/ent/prompt"
	"github.com/docfold/docfold/pkg/models"
)

// Statuses the summarize start and completion events may observe: the
// classification-scoring branch runs concurrently and may overwrite the
// column between the two writes.
var (
	summarizeEntry = []document.Status{
		document.StatusClassified,
		document.StatusScoringClassification,
		document.StatusScoredClassification,
	}
	summarizeExit = []document.Status{
		document.StatusSummarizing,
		document.StatusScoringClassification,
		document.StatusScoredClassification,
	}
)

// RunSummarize produces the summary and structured data for a classified
// document. Summarization is serialized per document type through the
// advisory type lock, so evolving per-type summarizer prompts never run
// two versions of one type concurrently.
func (r *Runner) RunSummarize(ctx context.Context, doc *ent.Document) error {
	if doc.DocumentType == nil {
		return models.Permanent("summarize", fmt.Errorf("document %s has no type", doc.ID))
	}
	docType := *doc.DocumentType

	return r.locker.WithTypeLock(ctx, docType, func(ctx context.Context) error {
		if err := r.docs.BeginStage(ctx, doc.ID, document.StatusSummarizing, summarizeEntry...); err != nil {
			return err
		}

		doc, err := r.docs.Get(ctx, doc.ID)
		if err != nil {
			return err
		}
		if doc.ExtractedText == nil {
			return models.Permanent("summarize", fmt.Errorf("document %s has no extracted text", doc.ID))
		}

		active, err := r.prompts.GetActive(ctx, prompt.PromptTypeSummarizer, &docType)
		if err != nil {
			return models.Transient("summarize", err)
		}

		input, err := marshalInput("summarize", map[string]interface{}{
			"text":          excerpt(*doc.ExtractedText),
			"document_type": docType,
			"filename":      doc.Filename,
		})
		if err != nil {
			return err
		}

		content, err := r.complete(ctx, active.PromptText, input)
		if err != nil {
			return models.Transient("summarize", err)
		}

		var result models.SummaryResult
		if err := parseResponse("summarize", content, &result); err != nil {
			return err
		}
		if result.Summary == "" {
			return models.SchemaErr("summarize", fmt.Errorf("response missing summary"))
		}

		if err := r.docs.SetSummary(ctx, doc.ID, &result, document.StatusSummarized, summarizeExit...); err != nil {
			return err
		}

		slog.Info("Summarized document",
			"document_id", doc.ID,
			"document_type", docType,
			"fields", len(result.StructuredData))
		return nil
	})
}
