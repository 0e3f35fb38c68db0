package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/docfold/docfold/ent"
	"github.com/docfold/docfold/ent/document"
	"github.com/docfold/docfold/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocumentCreateDefaults(t *testing.T) {
	db := newTestDB(t)
	svc := NewDocumentService(db)
	ctx := context.Background()

	doc, err := svc.Create(ctx, CreateDocumentInput{
		FolderPath: "/inbox/doc",
		Filename:   "doc.pdf",
	})
	require.NoError(t, err)
	assert.Equal(t, document.StatusPending, doc.Status)
	assert.Equal(t, 0, doc.RetryCount)
	assert.Equal(t, 3, doc.MaxRetries)
	assert.NotEmpty(t, doc.ID)
}

func TestDocumentTransitionCAS(t *testing.T) {
	db := newTestDB(t)
	svc := NewDocumentService(db)
	ctx := context.Background()

	doc := createTestDocument(t, db, document.StatusPending, nil)

	require.NoError(t, svc.Transition(ctx, doc.ID, document.StatusOcrInProgress, document.StatusPending))

	// Second claim of the same row loses the race.
	err := svc.Transition(ctx, doc.ID, document.StatusOcrInProgress, document.StatusPending)
	require.Error(t, err)
	assert.True(t, IsConflict(err), "expected ConflictError, got %v", err)

	// Skipping a stage is a programming error, not a conflict.
	err = svc.Transition(ctx, doc.ID, document.StatusFiled, document.StatusOcrInProgress)
	var ite *InvalidTransitionError
	assert.True(t, errors.As(err, &ite))

	// Unknown document.
	err = svc.Transition(ctx, "missing", document.StatusOcrInProgress, document.StatusPending)
	assert.True(t, IsNotFound(err))
}

func TestDocumentStageResults(t *testing.T) {
	db := newTestDB(t)
	svc := NewDocumentService(db)
	ctx := context.Background()

	doc := createTestDocument(t, db, document.StatusPending, nil)

	require.NoError(t, svc.BeginStage(ctx, doc.ID, document.StatusOcrInProgress, document.StatusPending))
	got, err := svc.Get(ctx, doc.ID)
	require.NoError(t, err)
	assert.NotNil(t, got.ProcessingStartedAt)

	require.NoError(t, svc.SetOCRResult(ctx, doc.ID, "extracted text", 0.97))
	got, err = svc.Get(ctx, doc.ID)
	require.NoError(t, err)
	assert.Equal(t, document.StatusOcrCompleted, got.Status)
	require.NotNil(t, got.ExtractedText)
	assert.Equal(t, "extracted text", *got.ExtractedText)
	assert.Nil(t, got.ProcessingStartedAt)

	require.NoError(t, svc.BeginStage(ctx, doc.ID, document.StatusClassifying, document.StatusOcrCompleted))
	require.NoError(t, svc.SetClassification(ctx, doc.ID, &models.ClassificationResult{
		DocumentType: "bill",
		Confidence:   0.9,
		Reasoning:    "looks like a bill",
	}))
	got, err = svc.Get(ctx, doc.ID)
	require.NoError(t, err)
	assert.Equal(t, document.StatusClassified, got.Status)
	require.NotNil(t, got.DocumentType)
	assert.Equal(t, "bill", *got.DocumentType)
}

func TestDocumentMarkFailedRetryBookkeeping(t *testing.T) {
	db := newTestDB(t)
	svc := NewDocumentService(db)
	ctx := context.Background()

	doc := createTestDocument(t, db, document.StatusOcrInProgress, nil)

	require.NoError(t, svc.MarkFailed(ctx, doc.ID, models.Transient("ocr", errors.New("provider down"))))
	got, err := svc.Get(ctx, doc.ID)
	require.NoError(t, err)
	assert.Equal(t, document.StatusFailed, got.Status)
	assert.Equal(t, 1, got.RetryCount)
	require.NotNil(t, got.LastError)
	assert.Contains(t, *got.LastError, "provider down")
}

func TestDocumentMarkFailedPermanentError(t *testing.T) {
	db := newTestDB(t)
	svc := NewDocumentService(db)
	ctx := context.Background()

	doc := createTestDocument(t, db, document.StatusOcrInProgress, nil)
	require.NoError(t, svc.MarkFailed(ctx, doc.ID, models.Permanent("ocr", errors.New("folder gone"))))

	got, err := svc.Get(ctx, doc.ID)
	require.NoError(t, err)
	assert.Equal(t, document.StatusPermanentlyFailed, got.Status)
}

func TestDocumentMarkFailedExhaustsRetries(t *testing.T) {
	db := newTestDB(t)
	svc := NewDocumentService(db)
	ctx := context.Background()

	doc := createTestDocument(t, db, document.StatusOcrInProgress, func(c *ent.DocumentCreate) {
		c.SetRetryCount(2).SetMaxRetries(3)
	})
	require.NoError(t, svc.MarkFailed(ctx, doc.ID, models.Transient("ocr", errors.New("still down"))))

	got, err := svc.Get(ctx, doc.ID)
	require.NoError(t, err)
	assert.Equal(t, document.StatusPermanentlyFailed, got.Status)
	assert.Equal(t, 3, got.RetryCount)
}

func TestDocumentMarkFailedRepeatedSchemaError(t *testing.T) {
	db := newTestDB(t)
	svc := NewDocumentService(db)
	ctx := context.Background()

	prior := "schema: classify: bad json"
	doc := createTestDocument(t, db, document.StatusClassifying, func(c *ent.DocumentCreate) {
		c.SetLastError(prior)
	})
	require.NoError(t, svc.MarkFailed(ctx, doc.ID, models.SchemaErr("classify", errors.New("bad json again"))))

	got, err := svc.Get(ctx, doc.ID)
	require.NoError(t, err)
	assert.Equal(t, document.StatusPermanentlyFailed, got.Status,
		"second consecutive schema error must escalate")
}

func TestDocumentResetFailedResumesFromPersistedOutputs(t *testing.T) {
	db := newTestDB(t)
	svc := NewDocumentService(db)
	ctx := context.Background()

	doc := createTestDocument(t, db, document.StatusFailed, func(c *ent.DocumentCreate) {
		c.SetExtractedText("text").SetRetryCount(1)
	})
	require.NoError(t, svc.ResetFailed(ctx, doc))

	got, err := svc.Get(ctx, doc.ID)
	require.NoError(t, err)
	assert.Equal(t, document.StatusOcrCompleted, got.Status,
		"OCR output exists, so the retry starts at classification")
	assert.Equal(t, 1, got.RetryCount, "reset must not consume a retry")
}

func TestDocumentReprocessClearsBookkeeping(t *testing.T) {
	db := newTestDB(t)
	svc := NewDocumentService(db)
	ctx := context.Background()

	doc := createTestDocument(t, db, document.StatusPermanentlyFailed, func(c *ent.DocumentCreate) {
		c.SetExtractedText("text").
			SetDocumentType("bill").
			SetRetryCount(3).
			SetLastError("schema: classify: bad json")
	})

	got, err := svc.Reprocess(ctx, doc.ID)
	require.NoError(t, err)
	assert.Equal(t, document.StatusClassified, got.Status)
	assert.Equal(t, 0, got.RetryCount)
	assert.Nil(t, got.LastError)
}

func TestDocumentReprocessRejectsMidStage(t *testing.T) {
	db := newTestDB(t)
	svc := NewDocumentService(db)
	ctx := context.Background()

	doc := createTestDocument(t, db, document.StatusClassifying, nil)
	_, err := svc.Reprocess(ctx, doc.ID)
	require.Error(t, err)
	assert.True(t, IsConflict(err))
}

func TestDocumentListStuck(t *testing.T) {
	db := newTestDB(t)
	svc := NewDocumentService(db)
	ctx := context.Background()

	fresh := createTestDocument(t, db, document.StatusClassifying, nil)
	stale := createTestDocument(t, db, document.StatusClassifying, nil)
	launchable := createTestDocument(t, db, document.StatusPending, nil)
	_ = fresh
	_ = launchable

	_, err := db.DB().ExecContext(ctx,
		"UPDATE documents SET updated_at = now() - interval '1 hour' WHERE document_id = $1",
		stale.ID)
	require.NoError(t, err)

	stuck, err := svc.ListStuck(ctx, 10*time.Minute)
	require.NoError(t, err)
	require.Len(t, stuck, 1)
	assert.Equal(t, stale.ID, stuck[0].ID)
}

func TestDocumentKnownTypesAndCounts(t *testing.T) {
	db := newTestDB(t)
	svc := NewDocumentService(db)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		createTestDocument(t, db, document.StatusClassified, func(c *ent.DocumentCreate) {
			c.SetDocumentType("bill")
		})
	}
	createTestDocument(t, db, document.StatusClassified, func(c *ent.DocumentCreate) {
		c.SetDocumentType("receipt")
	})
	createTestDocument(t, db, document.StatusPending, nil)

	types, err := svc.KnownTypes(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"bill", "receipt"}, types)

	n, err := svc.CountByType(ctx, "bill")
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}
