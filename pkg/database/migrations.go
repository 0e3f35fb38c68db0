package database

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
)

// CreatePartialUniqueIndexes creates PostgreSQL partial unique indexes that
// Ent cannot express. Called after migrations in production and after
// Schema.Create in tests.
func CreatePartialUniqueIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	// At most one active prompt per (prompt_type, document_type) scope.
	// COALESCE folds the nil scope (generic prompt) into a single key.
	_, err := db.ExecContext(ctx,
		`CREATE UNIQUE INDEX IF NOT EXISTS prompts_one_active_per_scope
		ON prompts (prompt_type, COALESCE(document_type, ''))
		WHERE is_active`)
	if err != nil {
		return fmt.Errorf("failed to create active-prompt index: %w", err)
	}

	// Prompt versions are unique within a scope.
	_, err = db.ExecContext(ctx,
		`CREATE UNIQUE INDEX IF NOT EXISTS prompts_scope_version
		ON prompts (prompt_type, COALESCE(document_type, ''), version)`)
	if err != nil {
		return fmt.Errorf("failed to create prompt-version index: %w", err)
	}

	return nil
}
