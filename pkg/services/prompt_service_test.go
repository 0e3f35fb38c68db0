package services

import (
	"context"
	"testing"

	"github.com/docfold/docfold/ent/file"
	"github.com/docfold/docfold/ent/prompt"
	"github.com/docfold/docfold/pkg/config"
	"github.com/docfold/docfold/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedAll(t *testing.T, svc *PromptService) {
	t.Helper()
	require.NoError(t, svc.EnsureSeeds(context.Background(), config.SeedPrompts()))
}

func TestEnsureSeedsIdempotent(t *testing.T) {
	db := newTestDB(t)
	svc := NewPromptService(db)
	ctx := context.Background()

	seedAll(t, svc)
	seedAll(t, svc)

	versions, err := svc.ListVersions(ctx, prompt.PromptTypeClassifier, nil)
	require.NoError(t, err)
	assert.Len(t, versions, 1, "re-seeding must not add versions")
	assert.Equal(t, 1, versions[0].Version)
}

func TestGetActiveFallsBackToGenericScope(t *testing.T) {
	db := newTestDB(t)
	svc := NewPromptService(db)
	ctx := context.Background()
	seedAll(t, svc)

	docType := "bill"

	// No bill-scoped summarizer exists, so the generic one serves.
	active, err := svc.GetActive(ctx, prompt.PromptTypeSummarizer, &docType)
	require.NoError(t, err)
	assert.Nil(t, active.DocumentType)

	// A scoped version takes precedence once present.
	scoped, err := db.Prompt.Create().
		SetID("scoped-summarizer").
		SetPromptType(prompt.PromptTypeSummarizer).
		SetDocumentType(docType).
		SetVersion(1).
		SetPromptText("Summarize bills specifically.").
		Save(ctx)
	require.NoError(t, err)

	active, err = svc.GetActive(ctx, prompt.PromptTypeSummarizer, &docType)
	require.NoError(t, err)
	assert.Equal(t, scoped.ID, active.ID)
}

func TestEvolveRecordsScoreWithoutProposal(t *testing.T) {
	db := newTestDB(t)
	svc := NewPromptService(db)
	ctx := context.Background()
	seedAll(t, svc)

	result, err := svc.Evolve(ctx, EvolutionInput{
		PromptType: prompt.PromptTypeClassifier,
		Score:      0.7,
		Margin:     0.05,
	})
	require.NoError(t, err)
	assert.False(t, result.Evolved)
	require.NotNil(t, result.Active.PerformanceScore)
	assert.InDelta(t, 0.7, *result.Active.PerformanceScore, 0.001)
	assert.Equal(t, 1, result.Active.Version)
}

func TestEvolveCreatesNewVersionWhenMarginCleared(t *testing.T) {
	db := newTestDB(t)
	svc := NewPromptService(db)
	ctx := context.Background()
	seedAll(t, svc)

	// Record a baseline score first.
	_, err := svc.Evolve(ctx, EvolutionInput{
		PromptType: prompt.PromptTypeClassifier,
		Score:      0.6,
		Margin:     0.05,
	})
	require.NoError(t, err)

	result, err := svc.Evolve(ctx, EvolutionInput{
		PromptType:      prompt.PromptTypeClassifier,
		Score:           0.8,
		SuggestedPrompt: "You are a document classifier. Sharper instructions.",
		Margin:          0.05,
	})
	require.NoError(t, err)
	assert.True(t, result.Evolved)
	assert.Equal(t, 2, result.Active.Version)
	assert.True(t, result.Active.IsActive)

	versions, err := svc.ListVersions(ctx, prompt.PromptTypeClassifier, nil)
	require.NoError(t, err)
	require.Len(t, versions, 2)
	assert.False(t, versions[0].IsActive, "old version must be retired")
	assert.Equal(t, "You are a document classifier. Sharper instructions.", versions[1].PromptText)
}

func TestEvolveRejectsInsufficientMargin(t *testing.T) {
	db := newTestDB(t)
	svc := NewPromptService(db)
	ctx := context.Background()
	seedAll(t, svc)

	_, err := svc.Evolve(ctx, EvolutionInput{
		PromptType: prompt.PromptTypeClassifier,
		Score:      0.70,
		Margin:     0.05,
	})
	require.NoError(t, err)

	result, err := svc.Evolve(ctx, EvolutionInput{
		PromptType:      prompt.PromptTypeClassifier,
		Score:           0.72,
		SuggestedPrompt: "Marginally different prompt.",
		Margin:          0.05,
	})
	require.NoError(t, err)
	assert.False(t, result.Evolved, "0.02 improvement is under the 0.05 margin")
	assert.Equal(t, 1, result.Active.Version)
}

func TestEvolveCeilingBlocksHighVerdict(t *testing.T) {
	db := newTestDB(t)
	svc := NewPromptService(db)
	ctx := context.Background()
	seedAll(t, svc)

	// Recorded baseline well under the classifier's 0.95 ceiling.
	_, err := svc.Evolve(ctx, EvolutionInput{
		PromptType: prompt.PromptTypeClassifier,
		Score:      0.80,
		Margin:     0.05,
	})
	require.NoError(t, err)

	// The verdict itself is at the ceiling: adoption is blocked even though
	// it clears the baseline by far more than the margin.
	result, err := svc.Evolve(ctx, EvolutionInput{
		PromptType:      prompt.PromptTypeClassifier,
		Score:           0.96,
		SuggestedPrompt: "Even better prompt.",
		Margin:          0.05,
	})
	require.NoError(t, err)
	assert.False(t, result.Evolved, "a verdict at or above the ceiling must not evolve the prompt")
	assert.Equal(t, 1, result.Active.Version)

	// A verdict under the ceiling with the same baseline still adopts.
	result, err = svc.Evolve(ctx, EvolutionInput{
		PromptType:      prompt.PromptTypeClassifier,
		Score:           0.90,
		SuggestedPrompt: "You are a document classifier. Better instructions.",
		Margin:          0.05,
	})
	require.NoError(t, err)
	assert.True(t, result.Evolved)
	assert.Equal(t, 2, result.Active.Version)
}

func TestEvolveScoreRatchets(t *testing.T) {
	db := newTestDB(t)
	svc := NewPromptService(db)
	ctx := context.Background()
	seedAll(t, svc)

	_, err := svc.Evolve(ctx, EvolutionInput{
		PromptType: prompt.PromptTypeClassifier,
		Score:      0.80,
		Margin:     0.05,
	})
	require.NoError(t, err)

	// A lower verdict must not erode the recorded baseline.
	result, err := svc.Evolve(ctx, EvolutionInput{
		PromptType: prompt.PromptTypeClassifier,
		Score:      0.70,
		Margin:     0.05,
	})
	require.NoError(t, err)
	require.NotNil(t, result.Active.PerformanceScore)
	assert.InDelta(t, 0.80, *result.Active.PerformanceScore, 0.001)

	// A proposal that only beats the eroded value, not the baseline, is
	// rejected.
	result, err = svc.Evolve(ctx, EvolutionInput{
		PromptType:      prompt.PromptTypeClassifier,
		Score:           0.76,
		SuggestedPrompt: "Slightly different prompt.",
		Margin:          0.05,
	})
	require.NoError(t, err)
	assert.False(t, result.Evolved, "0.76 does not clear the 0.80 baseline by the margin")
	assert.Equal(t, 1, result.Active.Version)
}

func TestEvolveRespectsCanEvolve(t *testing.T) {
	db := newTestDB(t)
	svc := NewPromptService(db)
	ctx := context.Background()
	seedAll(t, svc)

	// series_detector is static.
	_, err := svc.Evolve(ctx, EvolutionInput{
		PromptType: prompt.PromptTypeSeriesDetector,
		Score:      0.3,
		Margin:     0.05,
	})
	require.NoError(t, err)

	result, err := svc.Evolve(ctx, EvolutionInput{
		PromptType:      prompt.PromptTypeSeriesDetector,
		Score:           0.99,
		SuggestedPrompt: "A new detector prompt.",
		Margin:          0.05,
	})
	require.NoError(t, err)
	assert.False(t, result.Evolved)
	assert.Equal(t, 1, result.Active.Version)
}

func TestEvolveRegeneratesOnUpdateOutdatesGeneratedFiles(t *testing.T) {
	db := newTestDB(t)
	svc := NewPromptService(db)
	fileSvc := NewFileService(db)
	ctx := context.Background()
	seedAll(t, svc)

	generated, err := fileSvc.FindOrCreate(ctx, file.SourceLlm, []string{"series:city-water"}, 0)
	require.NoError(t, err)
	require.NoError(t, fileSvc.Transition(ctx, generated.ID, file.StatusGenerating, file.StatusPending))
	require.NoError(t, fileSvc.SetSummary(ctx, generated.ID, &models.FileSummaryResult{Summary: "stale"}))

	pending, err := fileSvc.FindOrCreate(ctx, file.SourceLlm, []string{"series:pge"}, 0)
	require.NoError(t, err)

	_, err = svc.Evolve(ctx, EvolutionInput{
		PromptType: prompt.PromptTypeSeriesSummarizer,
		Score:      0.5,
		Margin:     0.05,
	})
	require.NoError(t, err)

	result, err := svc.Evolve(ctx, EvolutionInput{
		PromptType:      prompt.PromptTypeSeriesSummarizer,
		Score:           0.9,
		SuggestedPrompt: "You summarize a recurring document series. Improved.",
		Margin:          0.05,
	})
	require.NoError(t, err)
	assert.True(t, result.Evolved)
	assert.True(t, result.RegeneratesOnUpdate)

	// The cascade commits with the version swap: generated files are
	// outdated, everything else is untouched.
	got, err := fileSvc.Get(ctx, generated.ID)
	require.NoError(t, err)
	assert.Equal(t, file.StatusOutdated, got.Status,
		"adopting a regenerates_on_update prompt must outdate generated files")
	got, err = fileSvc.Get(ctx, pending.ID)
	require.NoError(t, err)
	assert.Equal(t, file.StatusPending, got.Status)
}
