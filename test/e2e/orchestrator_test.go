package e2e

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/docfold/docfold/ent/document"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrchestratorServeModeProcessesNewDocuments(t *testing.T) {
	app := NewTestApp(t)
	ctx := context.Background()
	scriptHappyPath(app)

	app.Orchestrator.Start(ctx)
	defer app.Orchestrator.Stop()

	docID := app.IngestDocument(t, "/inbox/served", "bill.pdf", billText)

	require.Eventually(t, func() bool {
		doc, err := app.Docs.Get(ctx, docID)
		return err == nil && doc.Status == document.StatusCompleted
	}, 15*time.Second, 100*time.Millisecond, "document should complete without manual driving")
}

func TestSummarizeSerializedPerDocumentType(t *testing.T) {
	app := NewTestApp(t)
	ctx := context.Background()
	scriptHappyPath(app)

	// Slow the summarizer down so concurrent flows would visibly overlap if
	// the per-type lock failed to serialize them.
	app.LLM.Default(KindSummarizer, LLMScriptEntry{
		Text:  `{"summary": "PG&E bill.", "structured_data": {"vendor": "PG&E"}}`,
		Delay: 150 * time.Millisecond,
	})

	first := app.IngestDocument(t, "/inbox/2026-06-pge", "june.pdf", billText)
	second := app.IngestDocument(t, "/inbox/2026-07-pge", "july.pdf", billText)

	app.Orchestrator.Start(ctx)
	defer app.Orchestrator.Stop()

	require.Eventually(t, func() bool {
		for _, id := range []string{first, second} {
			doc, err := app.Docs.Get(ctx, id)
			if err != nil || doc.Status != document.StatusCompleted {
				return false
			}
		}
		return true
	}, 20*time.Second, 100*time.Millisecond)

	calls := app.LLM.Calls(KindSummarizer)
	require.Len(t, calls, 2)
	sort.Slice(calls, func(i, j int) bool { return calls[i].Start.Before(calls[j].Start) })
	assert.False(t, calls[1].Start.Before(calls[0].End),
		"summarizer calls for the same document type must not overlap: first %v-%v, second %v-%v",
		calls[0].Start, calls[0].End, calls[1].Start, calls[1].End)
}

func TestStopCancelsInFlightFlows(t *testing.T) {
	app := NewTestApp(t)
	ctx := context.Background()
	scriptHappyPath(app)

	// A summarizer call that outlasts any reasonable shutdown: only
	// cancellation can end it early.
	app.LLM.Default(KindSummarizer, LLMScriptEntry{
		Text:  `{"summary": "never returned", "structured_data": {}}`,
		Delay: 30 * time.Second,
	})

	docID := app.IngestDocument(t, "/inbox/slow", "slow.pdf", billText)
	app.Orchestrator.Start(ctx)

	require.Eventually(t, func() bool {
		return len(app.LLM.Calls(KindSummarizer)) > 0
	}, 10*time.Second, 50*time.Millisecond, "flow should reach the summarizer")

	stopStart := time.Now()
	app.Orchestrator.Stop()
	assert.Less(t, time.Since(stopStart), 3*time.Second,
		"stop must cancel blocked flows instead of waiting out the timeout")
	assert.Zero(t, app.Orchestrator.InFlight())

	// The interrupted row keeps its progressing status for the sweep.
	doc, err := app.Docs.Get(ctx, docID)
	require.NoError(t, err)
	assert.Equal(t, document.StatusSummarizing, doc.Status)
	assert.Nil(t, doc.LastError, "cancellation is not a failure")
}

func TestStuckSweepRecoversInterruptedDocument(t *testing.T) {
	app := NewTestApp(t)
	ctx := context.Background()
	scriptHappyPath(app)

	// Simulate a crash mid-classify: a progressing row nobody owns.
	text := billText
	stuck, err := app.DB.Document.Create().
		SetID(uuid.New().String()).
		SetFolderPath("/inbox/crashed").
		SetFilename("crashed.pdf").
		SetStatus(document.StatusClassifying).
		SetExtractedText(text).
		SetOcrConfidence(0.9).
		Save(ctx)
	require.NoError(t, err)

	_, err = app.DB.DB().ExecContext(ctx,
		"UPDATE documents SET updated_at = now() - interval '1 hour' WHERE document_id = $1",
		stuck.ID)
	require.NoError(t, err)

	require.NoError(t, app.Orchestrator.RunOnce(ctx))

	doc, err := app.Docs.Get(ctx, stuck.ID)
	require.NoError(t, err)
	assert.Equal(t, document.StatusCompleted, doc.Status)
	assert.Equal(t, 1, doc.RetryCount, "the interruption counts as one retry")
}

func TestStuckSweepExhaustsRetries(t *testing.T) {
	app := NewTestApp(t)
	ctx := context.Background()

	stuck, err := app.DB.Document.Create().
		SetID(uuid.New().String()).
		SetFolderPath("/inbox/hopeless").
		SetFilename("hopeless.pdf").
		SetStatus(document.StatusOcrInProgress).
		SetRetryCount(2).
		SetMaxRetries(3).
		Save(ctx)
	require.NoError(t, err)

	_, err = app.DB.DB().ExecContext(ctx,
		"UPDATE documents SET updated_at = now() - interval '1 hour' WHERE document_id = $1",
		stuck.ID)
	require.NoError(t, err)

	require.NoError(t, app.Orchestrator.RunOnce(ctx))

	doc, err := app.Docs.Get(ctx, stuck.ID)
	require.NoError(t, err)
	assert.Equal(t, document.StatusPermanentlyFailed, doc.Status)
	assert.Equal(t, 3, doc.RetryCount)
}
