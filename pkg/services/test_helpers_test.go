package services

import (
	"context"
	"testing"

	"github.com/docfold/docfold/ent"
	"github.com/docfold/docfold/ent/document"
	"github.com/docfold/docfold/pkg/database"
	"github.com/docfold/docfold/test/util"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T) *database.Client {
	t.Helper()
	entClient, db := util.SetupTestDatabase(t)
	return database.NewClientFromEnt(entClient, db)
}

// createTestDocument inserts a document directly, bypassing the service, so
// tests can start from any status.
func createTestDocument(t *testing.T, db *database.Client, status document.Status, mutate func(*ent.DocumentCreate)) *ent.Document {
	t.Helper()
	create := db.Document.Create().
		SetID(uuid.New().String()).
		SetFolderPath("/inbox/test").
		SetFilename("test.pdf").
		SetStatus(status)
	if mutate != nil {
		mutate(create)
	}
	doc, err := create.Save(context.Background())
	require.NoError(t, err)
	return doc
}
