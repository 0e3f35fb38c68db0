package stages

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/docfold/docfold/ent"
	"github.com/docfold/docfold/ent/document"
	"github.com/docfold/docfold/ent/documenttag"
	"github.com/docfold/docfold/ent/file"
	"github.com/docfold/docfold/ent/prompt"
	entseries "github.com/docfold/docfold/ent/series"
	"github.com/docfold/docfold/pkg/models"
	"github.com/docfold/docfold/pkg/tags"
)

// RunFiling is the terminal per-document stage:
// scored_summary → filing → filed. It runs series detection on the
// summarized document, links the document into its series, stamps the
// synthetic series tag, and reconciles file membership.
func (r *Runner) RunFiling(ctx context.Context, doc *ent.Document) error {
	if err := r.docs.BeginStage(ctx, doc.ID, document.StatusFiling, document.StatusScoredSummary); err != nil {
		return err
	}

	doc, err := r.docs.Get(ctx, doc.ID)
	if err != nil {
		return err
	}
	if doc.Summary == nil || doc.DocumentType == nil {
		return models.Permanent("filing", fmt.Errorf("document %s reached filing without summary or type", doc.ID))
	}

	detection, err := r.detectSeries(ctx, doc)
	if err != nil {
		return err
	}

	if detection != nil {
		if err := r.fileIntoSeries(ctx, doc, detection); err != nil {
			return err
		}
	}

	// Membership reconciliation runs even without a series: the summarize
	// output may have changed which files the document belongs to.
	docTags, err := r.tags.DocumentTags(ctx, doc.ID)
	if err != nil {
		return models.Transient("filing", err)
	}
	if err := r.files.SyncMembershipForDocument(ctx, doc.ID, docTags); err != nil {
		return models.Transient("filing", err)
	}

	return r.docs.Transition(ctx, doc.ID, document.StatusFiled, document.StatusFiling)
}

// detectSeries asks the series detector whether the document belongs to a
// recurring group. A detection without an identity tuple means "no series"
// and is not an error.
func (r *Runner) detectSeries(ctx context.Context, doc *ent.Document) (*models.SeriesDetection, error) {
	active, err := r.prompts.GetActive(ctx, prompt.PromptTypeSeriesDetector, doc.DocumentType)
	if err != nil {
		return nil, models.Transient("filing", err)
	}

	docTags, err := r.tags.DocumentTags(ctx, doc.ID)
	if err != nil {
		return nil, models.Transient("filing", err)
	}

	input, err := marshalInput("filing", map[string]interface{}{
		"summary":         *doc.Summary,
		"document_type":   *doc.DocumentType,
		"structured_data": doc.StructuredData,
		"tags":            docTags,
	})
	if err != nil {
		return nil, err
	}

	content, err := r.complete(ctx, active.PromptText, input)
	if err != nil {
		return nil, models.Transient("filing", err)
	}

	var detection models.SeriesDetection
	if err := parseResponse("filing", content, &detection); err != nil {
		return nil, err
	}
	if detection.Entity == "" || detection.SeriesType == "" {
		return nil, nil
	}
	return &detection, nil
}

// fileIntoSeries links the document to its series, stamps the series tag,
// and makes sure the series has a backing file aggregating its documents.
func (r *Runner) fileIntoSeries(ctx context.Context, doc *ent.Document, detection *models.SeriesDetection) error {
	series, err := r.series.FindOrCreate(ctx, detection, "", entseries.SourceLlm)
	if err != nil {
		return models.Transient("filing", err)
	}
	if series.Status == entseries.StatusArchived {
		slog.Info("Series is archived, skipping",
			"document_id", doc.ID,
			"series_id", series.ID)
		return nil
	}

	if err := r.series.AddDocument(ctx, series.ID, doc.ID, "system"); err != nil {
		return models.Transient("filing", err)
	}

	seriesTag := tags.SeriesTag(detection.Entity)
	if err := r.tags.Attach(ctx, doc.ID, []string{seriesTag}, documenttag.SourceSystem); err != nil {
		return models.Transient("filing", err)
	}

	// Every series gets a file keyed by its series tag; the file summarizer
	// maintains the cross-document summary.
	f, err := r.files.FindOrCreate(ctx, file.SourceLlm, []string{seriesTag}, r.cfg.MaxRetries)
	if err != nil {
		return models.Transient("filing", err)
	}
	if err := r.files.SeedMembership(ctx, f.ID, f.Tags); err != nil {
		return models.Transient("filing", err)
	}

	slog.Info("Filed document into series",
		"document_id", doc.ID,
		"series_id", series.ID,
		"file_id", f.ID)
	return nil
}
