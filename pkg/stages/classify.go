package stages

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/docfold/docfold/ent"
	"github.com/docfold/docfold/ent/document"
	"github.com/docfold/docfold/ent/documenttag"
	"github.com/docfold/docfold/ent/prompt"
	"github.com/docfold/docfold/pkg/models"
)

// RunClassify determines the document type and tags:
// ocr_completed → classifying → classified.
//
// The prompt input carries the known document types and the most popular
// tags so classification converges on the existing vocabulary instead of
// fragmenting it.
func (r *Runner) RunClassify(ctx context.Context, doc *ent.Document) error {
	if err := r.docs.BeginStage(ctx, doc.ID, document.StatusClassifying, document.StatusOcrCompleted); err != nil {
		return err
	}

	doc, err := r.docs.Get(ctx, doc.ID)
	if err != nil {
		return err
	}
	if doc.ExtractedText == nil {
		return models.Permanent("classify", fmt.Errorf("document %s has no extracted text", doc.ID))
	}

	knownTypes, err := r.docs.KnownTypes(ctx)
	if err != nil {
		return models.Transient("classify", err)
	}
	popular, err := r.tags.PopularNames(ctx, r.cfg.PopularTagLimit)
	if err != nil {
		return models.Transient("classify", err)
	}

	active, err := r.prompts.GetActive(ctx, prompt.PromptTypeClassifier, nil)
	if err != nil {
		return models.Transient("classify", err)
	}

	input, err := marshalInput("classify", map[string]interface{}{
		"text":         excerpt(*doc.ExtractedText),
		"filename":     doc.Filename,
		"known_types":  knownTypes,
		"popular_tags": popular,
	})
	if err != nil {
		return err
	}

	content, err := r.complete(ctx, active.PromptText, input)
	if err != nil {
		return models.Transient("classify", err)
	}

	var result models.ClassificationResult
	if err := parseResponse("classify", content, &result); err != nil {
		return err
	}
	if result.DocumentType == "" {
		return models.SchemaErr("classify", fmt.Errorf("response missing document_type"))
	}
	if result.Confidence < 0 || result.Confidence > 1 {
		return models.SchemaErr("classify", fmt.Errorf("confidence %v out of range", result.Confidence))
	}

	if err := r.docs.SetClassification(ctx, doc.ID, &result); err != nil {
		return err
	}

	// The document type itself becomes a system tag so type membership is
	// queryable through the same tag index as everything else.
	if err := r.tags.Attach(ctx, doc.ID, []string{result.DocumentType}, documenttag.SourceSystem); err != nil {
		return models.Transient("classify", err)
	}
	if len(result.Tags) > 0 {
		if err := r.tags.Attach(ctx, doc.ID, result.Tags, documenttag.SourceLlm); err != nil {
			return models.Transient("classify", err)
		}
	}

	docTags, err := r.tags.DocumentTags(ctx, doc.ID)
	if err != nil {
		return models.Transient("classify", err)
	}
	if err := r.files.SyncMembershipForDocument(ctx, doc.ID, docTags); err != nil {
		return models.Transient("classify", err)
	}

	slog.Info("Classified document",
		"document_id", doc.ID,
		"document_type", result.DocumentType,
		"confidence", result.Confidence,
		"tags", len(result.Tags))
	return nil
}
