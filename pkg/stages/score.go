package stages

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/docfold/docfold/ent"
	"github.com/docfold/docfold/ent/document"
	"github.com/docfold/docfold/ent/prompt"
	"github.com/docfold/docfold/pkg/models"
	"github.com/docfold/docfold/pkg/services"
)

// Scoring sample size: how many recent documents of the type the scorer
// sees.
const scoringSampleSize = 10

// The scorer instructions are fixed; only the prompts under evaluation
// evolve.
const classifierScorerPrompt = `You evaluate a document-classification prompt. You receive the prompt text
and a sample of recent documents with the classifications it produced.

Judge consistency of types and tags across similar documents, confidence
calibration, and reasoning quality. If you can improve the prompt, rewrite
it completely.

Respond with a single JSON object:
{"score": <0..1>, "suggested_prompt": "<full replacement text, or empty>"}`

const summaryScorerPrompt = `You evaluate a document-summarization prompt. You receive the prompt text
and a sample of recent documents with the summaries and structured data it
produced.

Judge factual coverage, brevity, and whether the structured fields match
what a human filer needs. If you can improve the prompt, rewrite it
completely.

Respond with a single JSON object:
{"score": <0..1>, "suggested_prompt": "<full replacement text, or empty>"}`

var (
	scoreClassificationEntry = []document.Status{
		document.StatusClassified,
		document.StatusSummarizing,
		document.StatusSummarized,
	}
	scoreClassificationExit = []document.Status{
		document.StatusScoringClassification,
		document.StatusSummarizing,
		document.StatusSummarized,
	}
	scoreSummaryEntry = []document.Status{
		document.StatusScoredClassification,
		document.StatusSummarized,
	}
)

// ShouldScore reports whether the type has accumulated enough documents
// for a meaningful evaluation sample.
func (r *Runner) ShouldScore(ctx context.Context, docType string) (bool, error) {
	n, err := r.docs.CountByType(ctx, docType)
	if err != nil {
		return false, err
	}
	return n >= r.cfg.MinDocumentsForScoring, nil
}

// RunScoreClassification evaluates the classifier prompt against recent
// documents of this document's type and evolves it when the scorer
// proposes a sufficiently better version. Runs concurrently with the
// summarize branch.
func (r *Runner) RunScoreClassification(ctx context.Context, doc *ent.Document) error {
	if doc.DocumentType == nil {
		return models.Permanent("score-classification", fmt.Errorf("document %s has no type", doc.ID))
	}

	if err := r.docs.BeginStage(ctx, doc.ID, document.StatusScoringClassification, scoreClassificationEntry...); err != nil {
		return err
	}

	result, evo, err := r.scorePrompt(ctx, prompt.PromptTypeClassifier, nil, *doc.DocumentType, classifierScorerPrompt, classificationSample)
	if err != nil {
		return err
	}

	if err := r.docs.Transition(ctx, doc.ID, document.StatusScoredClassification, scoreClassificationExit...); err != nil {
		return err
	}

	logScore("classifier", doc.ID, result, evo)
	return nil
}

// RunScoreSummary evaluates the summarizer prompt for this document's
// type: scored_classification|summarized → scoring_summary → scored_summary.
func (r *Runner) RunScoreSummary(ctx context.Context, doc *ent.Document) error {
	if doc.DocumentType == nil {
		return models.Permanent("score-summary", fmt.Errorf("document %s has no type", doc.ID))
	}
	docType := *doc.DocumentType

	if err := r.docs.BeginStage(ctx, doc.ID, document.StatusScoringSummary, scoreSummaryEntry...); err != nil {
		return err
	}

	ok, err := r.ShouldScore(ctx, docType)
	if err != nil {
		return models.Transient("score-summary", err)
	}

	if ok {
		// Per-type summarizer prompts are scored in their own scope; types
		// still on the generic prompt score the generic scope.
		scope := r.summarizerScope(ctx, docType)
		result, evo, err := r.scorePrompt(ctx, prompt.PromptTypeSummarizer, scope, docType, summaryScorerPrompt, summarySample)
		if err != nil {
			return err
		}
		logScore("summarizer", doc.ID, result, evo)
	}

	return r.docs.Transition(ctx, doc.ID, document.StatusScoredSummary, document.StatusScoringSummary)
}

// summarizerScope returns the document type when a type-scoped summarizer
// prompt exists, nil for the generic scope.
func (r *Runner) summarizerScope(ctx context.Context, docType string) *string {
	active, err := r.prompts.GetActive(ctx, prompt.PromptTypeSummarizer, &docType)
	if err != nil || active.DocumentType == nil {
		return nil
	}
	return &docType
}

// scorePrompt runs one evaluation: sample recent documents, call the
// scorer, record the score, and evolve the prompt when the verdict clears
// the improvement margin.
func (r *Runner) scorePrompt(
	ctx context.Context,
	promptType prompt.PromptType,
	scope *string,
	docType string,
	scorerPrompt string,
	sample func([]*ent.Document) []map[string]interface{},
) (*models.ScoreResult, *services.EvolutionResult, error) {
	stage := "score-" + string(promptType)

	active, err := r.prompts.GetActive(ctx, promptType, scope)
	if err != nil {
		return nil, nil, models.Transient(stage, err)
	}
	if !active.CanEvolve && active.PerformanceScore != nil {
		// Static prompts get one score for observability, then stay put.
		return &models.ScoreResult{Score: *active.PerformanceScore}, &services.EvolutionResult{Active: active}, nil
	}

	recent, err := r.docs.ListRecentByType(ctx, docType, scoringSampleSize)
	if err != nil {
		return nil, nil, models.Transient(stage, err)
	}

	input, err := marshalInput(stage, map[string]interface{}{
		"prompt_under_evaluation": active.PromptText,
		"document_type":           docType,
		"sample":                  sample(recent),
	})
	if err != nil {
		return nil, nil, err
	}

	content, err := r.complete(ctx, scorerPrompt, input)
	if err != nil {
		return nil, nil, models.Transient(stage, err)
	}

	var result models.ScoreResult
	if err := parseResponse(stage, content, &result); err != nil {
		return nil, nil, err
	}
	if result.Score < 0 || result.Score > 1 {
		return nil, nil, models.SchemaErr(stage, fmt.Errorf("score %v out of range", result.Score))
	}

	evo, err := r.prompts.Evolve(ctx, services.EvolutionInput{
		PromptType:      promptType,
		DocumentType:    scope,
		Score:           result.Score,
		SuggestedPrompt: result.SuggestedPrompt,
		Margin:          r.cfg.ScoreImprovementMargin,
	})
	if err != nil {
		if services.IsConflict(err) {
			// A concurrent scoring run evolved this scope first; our verdict
			// is stale.
			return &result, &services.EvolutionResult{Active: active}, nil
		}
		return nil, nil, models.Transient(stage, err)
	}
	return &result, evo, nil
}

func classificationSample(docs []*ent.Document) []map[string]interface{} {
	out := make([]map[string]interface{}, 0, len(docs))
	for _, d := range docs {
		if d.ExtractedText == nil || d.DocumentType == nil {
			continue
		}
		entry := map[string]interface{}{
			"text":          excerpt(*d.ExtractedText),
			"document_type": *d.DocumentType,
		}
		if d.ClassificationConfidence != nil {
			entry["confidence"] = *d.ClassificationConfidence
		}
		if d.ClassificationReasoning != nil {
			entry["reasoning"] = *d.ClassificationReasoning
		}
		out = append(out, entry)
	}
	return out
}

func summarySample(docs []*ent.Document) []map[string]interface{} {
	out := make([]map[string]interface{}, 0, len(docs))
	for _, d := range docs {
		if d.ExtractedText == nil || d.Summary == nil {
			continue
		}
		out = append(out, map[string]interface{}{
			"text":            excerpt(*d.ExtractedText),
			"summary":         *d.Summary,
			"structured_data": d.StructuredData,
		})
	}
	return out
}

func logScore(kind, documentID string, result *models.ScoreResult, evo *services.EvolutionResult) {
	slog.Info("Scored prompt",
		"prompt", kind,
		"document_id", documentID,
		"score", result.Score,
		"evolved", evo.Evolved)
}
