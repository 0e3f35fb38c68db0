package services

import (
	"context"
	"testing"

	"github.com/docfold/docfold/ent/document"
	"github.com/docfold/docfold/ent/documenttag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTagFindOrCreateNormalizes(t *testing.T) {
	db := newTestDB(t)
	svc := NewTagService(db)
	ctx := context.Background()

	first, err := svc.FindOrCreate(ctx, "  P.G.&E.  ")
	require.NoError(t, err)
	assert.Equal(t, "pge", first.Name)

	// Differently-spelled input collapses onto the same row.
	second, err := svc.FindOrCreate(ctx, "PG&E")
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	_, err = svc.FindOrCreate(ctx, "  .&.  ")
	assert.Error(t, err, "input that normalizes to empty is rejected")
}

func TestTagAttachIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	svc := NewTagService(db)
	ctx := context.Background()

	doc := createTestDocument(t, db, document.StatusClassified, nil)

	require.NoError(t, svc.Attach(ctx, doc.ID, []string{"bill", "Utilities"}, documenttag.SourceLlm))
	require.NoError(t, svc.Attach(ctx, doc.ID, []string{"bill", "pge"}, documenttag.SourceLlm))

	names, err := svc.DocumentTags(ctx, doc.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"bill", "pge", "utilities"}, names)

	n, err := db.DocumentTag.Query().Where(documenttag.DocumentIDEQ(doc.ID)).Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, n, "re-attaching must not duplicate junction rows")
}

func TestTagPopularOrdersByUse(t *testing.T) {
	db := newTestDB(t)
	svc := NewTagService(db)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		doc := createTestDocument(t, db, document.StatusClassified, nil)
		names := []string{"bill"}
		if i < 2 {
			names = append(names, "utilities")
		}
		require.NoError(t, svc.Attach(ctx, doc.ID, names, documenttag.SourceLlm))
	}
	// An unattached tag never shows up.
	_, err := svc.FindOrCreate(ctx, "orphan")
	require.NoError(t, err)

	counts, err := svc.Popular(ctx, 10)
	require.NoError(t, err)
	require.Len(t, counts, 2)
	assert.Equal(t, TagCount{Name: "bill", Count: 3}, counts[0])
	assert.Equal(t, TagCount{Name: "utilities", Count: 2}, counts[1])

	names, err := svc.PopularNames(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"bill"}, names)
}
