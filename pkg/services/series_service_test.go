package services

import (
	"context"
	"testing"
	"time"

	"github.com/docfold/docfold/ent"
	"github.com/docfold/docfold/ent/document"
	"github.com/docfold/docfold/ent/series"
	"github.com/docfold/docfold/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeriesFindOrCreateIdentity(t *testing.T) {
	db := newTestDB(t)
	svc := NewSeriesService(db)
	ctx := context.Background()

	first, err := svc.FindOrCreate(ctx, &models.SeriesDetection{
		Title:      "PG&E Monthly Bill",
		Entity:     "pacific gas and electric",
		SeriesType: "bill",
		Frequency:  "monthly",
	}, "", series.SourceLlm)
	require.NoError(t, err)
	assert.Equal(t, "monthly", first.Frequency)

	// Same identity tuple with a drifted title resolves to the same series
	// and keeps the stored title.
	second, err := svc.FindOrCreate(ctx, &models.SeriesDetection{
		Title:      "Pacific Gas & Electric Statement",
		Entity:     "pacific gas and electric",
		SeriesType: "bill",
	}, "", series.SourceLlm)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "PG&E Monthly Bill", second.Title)

	// A different owner is a different series.
	other, err := svc.FindOrCreate(ctx, &models.SeriesDetection{
		Title:      "PG&E Monthly Bill",
		Entity:     "pacific gas and electric",
		SeriesType: "bill",
	}, "alice", series.SourceLlm)
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, other.ID)

	_, err = svc.FindOrCreate(ctx, &models.SeriesDetection{Title: "no identity"}, "", series.SourceLlm)
	assert.Error(t, err, "detections without entity and series_type carry no identity")
}

func TestSeriesAddDocumentBookkeeping(t *testing.T) {
	db := newTestDB(t)
	svc := NewSeriesService(db)
	ctx := context.Background()

	sr, err := svc.FindOrCreate(ctx, &models.SeriesDetection{
		Title:      "PG&E Monthly Bill",
		Entity:     "pacific gas and electric",
		SeriesType: "bill",
	}, "", series.SourceLlm)
	require.NoError(t, err)

	older := createTestDocument(t, db, document.StatusFiled, func(c *ent.DocumentCreate) {
		c.SetCreatedAt(time.Now().Add(-48 * time.Hour))
	})
	newer := createTestDocument(t, db, document.StatusFiled, nil)

	require.NoError(t, svc.AddDocument(ctx, sr.ID, older.ID, "system"))
	require.NoError(t, svc.AddDocument(ctx, sr.ID, newer.ID, "system"))
	// Idempotent per pair.
	require.NoError(t, svc.AddDocument(ctx, sr.ID, newer.ID, "system"))

	got, err := svc.Get(ctx, sr.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, got.DocumentCount)
	require.NotNil(t, got.FirstDocumentDate)
	require.NotNil(t, got.LastDocumentDate)
	assert.True(t, got.FirstDocumentDate.Before(*got.LastDocumentDate),
		"date range must span the member documents")
}

func TestSeriesArchive(t *testing.T) {
	db := newTestDB(t)
	svc := NewSeriesService(db)
	ctx := context.Background()

	sr, err := svc.FindOrCreate(ctx, &models.SeriesDetection{
		Title:      "Water Bill",
		Entity:     "city water",
		SeriesType: "bill",
	}, "", series.SourceLlm)
	require.NoError(t, err)

	require.NoError(t, svc.Archive(ctx, sr.ID))
	got, err := svc.Get(ctx, sr.ID)
	require.NoError(t, err)
	assert.Equal(t, series.StatusArchived, got.Status)

	// Archiving twice is a no-op; a missing series is an error.
	require.NoError(t, svc.Archive(ctx, sr.ID))
	err = svc.Archive(ctx, "missing")
	assert.True(t, IsNotFound(err))
}
