package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/docfold/docfold/ent"
	"github.com/docfold/docfold/ent/document"
	"github.com/docfold/docfold/ent/documenttag"
	"github.com/docfold/docfold/ent/file"
	"github.com/docfold/docfold/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileFindOrCreateSignatureIdentity(t *testing.T) {
	db := newTestDB(t)
	svc := NewFileService(db)
	ctx := context.Background()

	first, err := svc.FindOrCreate(ctx, file.SourceLlm, []string{"Utilities", "bill"}, 0)
	require.NoError(t, err)
	assert.Equal(t, file.StatusPending, first.Status)
	assert.Equal(t, []string{"bill", "utilities"}, first.Tags)

	// Order and spelling variations collapse onto the same signature.
	second, err := svc.FindOrCreate(ctx, file.SourceLlm, []string{"bill", "UTILITIES"}, 0)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	// The same tag set from a different source is a different file.
	other, err := svc.FindOrCreate(ctx, file.SourceUser, []string{"bill", "utilities"}, 0)
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, other.ID)
}

func TestFileGenerationLifecycle(t *testing.T) {
	db := newTestDB(t)
	svc := NewFileService(db)
	ctx := context.Background()

	f, err := svc.FindOrCreate(ctx, file.SourceLlm, []string{"bill"}, 0)
	require.NoError(t, err)

	require.NoError(t, svc.BeginGeneration(ctx, f.ID, file.StatusGenerating, file.StatusPending))

	// A second claim loses the race.
	err = svc.BeginGeneration(ctx, f.ID, file.StatusGenerating, file.StatusPending)
	assert.True(t, IsConflict(err))

	require.NoError(t, svc.SetSummary(ctx, f.ID, &models.FileSummaryResult{
		Summary:  "Three utility bills, all paid.",
		Metadata: map[string]interface{}{"document_count": 3},
	}))

	got, err := svc.Get(ctx, f.ID)
	require.NoError(t, err)
	assert.Equal(t, file.StatusGenerated, got.Status)
	require.NotNil(t, got.SummaryText)
	assert.Equal(t, "Three utility bills, all paid.", *got.SummaryText)
	assert.NotNil(t, got.LastGeneratedAt)
	assert.Nil(t, got.ProcessingStartedAt)
}

func TestFileMarkFailedReturnsToLaunchableStatus(t *testing.T) {
	db := newTestDB(t)
	svc := NewFileService(db)
	ctx := context.Background()

	f, err := svc.FindOrCreate(ctx, file.SourceLlm, []string{"bill"}, 3)
	require.NoError(t, err)
	require.NoError(t, svc.BeginGeneration(ctx, f.ID, file.StatusGenerating, file.StatusPending))

	require.NoError(t, svc.MarkFailed(ctx, f.ID, models.Transient("file_summary", errors.New("llm unavailable"))))
	got, err := svc.Get(ctx, f.ID)
	require.NoError(t, err)
	assert.Equal(t, file.StatusPending, got.Status, "a failed first generation is retried from pending")
	assert.Equal(t, 1, got.RetryCount)

	// Regeneration failures return to outdated instead.
	require.NoError(t, svc.Transition(ctx, f.ID, file.StatusRegenerating, file.StatusPending))
	require.NoError(t, svc.MarkFailed(ctx, f.ID, models.Transient("file_summary", errors.New("llm unavailable"))))
	got, err = svc.Get(ctx, f.ID)
	require.NoError(t, err)
	assert.Equal(t, file.StatusOutdated, got.Status)
	assert.Equal(t, 2, got.RetryCount)

	// The last retry exhausts the budget.
	require.NoError(t, svc.Transition(ctx, f.ID, file.StatusRegenerating, file.StatusOutdated))
	require.NoError(t, svc.MarkFailed(ctx, f.ID, models.Transient("file_summary", errors.New("llm unavailable"))))
	got, err = svc.Get(ctx, f.ID)
	require.NoError(t, err)
	assert.Equal(t, file.StatusPermanentlyFailed, got.Status)
}

func TestFileSyncMembershipForDocument(t *testing.T) {
	db := newTestDB(t)
	svc := NewFileService(db)
	tagSvc := NewTagService(db)
	ctx := context.Background()

	f, err := svc.FindOrCreate(ctx, file.SourceLlm, []string{"bill", "utilities"}, 0)
	require.NoError(t, err)

	doc := createTestDocument(t, db, document.StatusClassified, nil)
	require.NoError(t, tagSvc.Attach(ctx, doc.ID, []string{"bill", "utilities", "pge"}, documenttag.SourceLlm))

	// Superset of the file's tags joins it.
	require.NoError(t, svc.SyncMembershipForDocument(ctx, doc.ID, []string{"bill", "utilities", "pge"}))
	members, err := svc.Members(ctx, f.ID)
	require.NoError(t, err)
	require.Len(t, members, 1)
	assert.Equal(t, doc.ID, members[0].ID)

	// Mark the file generated, then drop a required tag: the document
	// leaves and the summary is invalidated.
	require.NoError(t, svc.Transition(ctx, f.ID, file.StatusGenerating, file.StatusPending))
	require.NoError(t, svc.SetSummary(ctx, f.ID, &models.FileSummaryResult{Summary: "old"}))

	require.NoError(t, svc.SyncMembershipForDocument(ctx, doc.ID, []string{"bill", "pge"}))
	members, err = svc.Members(ctx, f.ID)
	require.NoError(t, err)
	assert.Empty(t, members)

	got, err := svc.Get(ctx, f.ID)
	require.NoError(t, err)
	assert.Equal(t, file.StatusOutdated, got.Status,
		"membership change must outdate the generated summary")
}

func TestFileSeedMembershipInvalidatesOnGain(t *testing.T) {
	db := newTestDB(t)
	svc := NewFileService(db)
	tagSvc := NewTagService(db)
	ctx := context.Background()

	matching := createTestDocument(t, db, document.StatusFiled, nil)
	require.NoError(t, tagSvc.Attach(ctx, matching.ID, []string{"bill", "utilities"}, documenttag.SourceLlm))
	partial := createTestDocument(t, db, document.StatusFiled, nil)
	require.NoError(t, tagSvc.Attach(ctx, partial.ID, []string{"bill"}, documenttag.SourceLlm))

	f, err := svc.FindOrCreate(ctx, file.SourceLlm, []string{"bill", "utilities"}, 0)
	require.NoError(t, err)
	require.NoError(t, svc.Transition(ctx, f.ID, file.StatusGenerating, file.StatusPending))
	require.NoError(t, svc.SetSummary(ctx, f.ID, &models.FileSummaryResult{Summary: "stale"}))

	require.NoError(t, svc.SeedMembership(ctx, f.ID, f.Tags))

	members, err := svc.Members(ctx, f.ID)
	require.NoError(t, err)
	require.Len(t, members, 1, "only documents carrying every file tag are members")
	assert.Equal(t, matching.ID, members[0].ID)

	got, err := svc.Get(ctx, f.ID)
	require.NoError(t, err)
	assert.Equal(t, file.StatusOutdated, got.Status)

	// Re-seeding with no new members leaves the status alone.
	require.NoError(t, svc.Transition(ctx, f.ID, file.StatusRegenerating, file.StatusOutdated))
	require.NoError(t, svc.SetSummary(ctx, f.ID, &models.FileSummaryResult{Summary: "fresh"}))
	require.NoError(t, svc.SeedMembership(ctx, f.ID, f.Tags))
	got, err = svc.Get(ctx, f.ID)
	require.NoError(t, err)
	assert.Equal(t, file.StatusGenerated, got.Status)
}

func TestFileMembersNewestFirst(t *testing.T) {
	db := newTestDB(t)
	svc := NewFileService(db)
	tagSvc := NewTagService(db)
	ctx := context.Background()

	oldest := createTestDocument(t, db, document.StatusFiled, func(c *ent.DocumentCreate) {
		c.SetCreatedAt(time.Now().Add(-48 * time.Hour))
	})
	middle := createTestDocument(t, db, document.StatusFiled, func(c *ent.DocumentCreate) {
		c.SetCreatedAt(time.Now().Add(-24 * time.Hour))
	})
	newest := createTestDocument(t, db, document.StatusFiled, nil)
	for _, doc := range []*ent.Document{oldest, middle, newest} {
		require.NoError(t, tagSvc.Attach(ctx, doc.ID, []string{"bill"}, documenttag.SourceLlm))
	}

	f, err := svc.FindOrCreate(ctx, file.SourceLlm, []string{"bill"}, 0)
	require.NoError(t, err)
	require.NoError(t, svc.SeedMembership(ctx, f.ID, f.Tags))

	members, err := svc.Members(ctx, f.ID)
	require.NoError(t, err)
	require.Len(t, members, 3)
	ids := []string{members[0].ID, members[1].ID, members[2].ID}
	assert.Equal(t, []string{newest.ID, middle.ID, oldest.ID}, ids,
		"member documents are presented newest first")
}
