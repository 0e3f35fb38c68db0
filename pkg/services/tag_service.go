package services

import (
	"context"
	"fmt"

	"github.com/docfold/docfold/ent"
	"github.com/docfold/docfold/ent/documenttag"
	"github.com/docfold/docfold/ent/tag"
	"github.com/docfold/docfold/pkg/database"
	"github.com/docfold/docfold/pkg/tags"
	"github.com/google/uuid"
)

// TagService handles tag rows and document↔tag attachments. Tag names are
// stored normalized; attaching an already-attached tag is a no-op.
type TagService struct {
	db *database.Client
}

// NewTagService creates a new TagService.
func NewTagService(db *database.Client) *TagService {
	return &TagService{db: db}
}

// FindOrCreate returns the tag row for a name, creating it on first use.
// The name is normalized before lookup so differently-spelled inputs
// collapse to one row.
func (s *TagService) FindOrCreate(ctx context.Context, name string) (*ent.Tag, error) {
	normalized := tags.Normalize(name)
	if normalized == "" {
		return nil, fmt.Errorf("tag %q normalizes to empty", name)
	}

	t, err := s.db.Tag.Query().Where(tag.NameEQ(normalized)).Only(ctx)
	if err == nil {
		return t, nil
	}
	if !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to query tag %q: %w", normalized, err)
	}

	t, err = s.db.Tag.Create().
		SetID(uuid.New().String()).
		SetName(normalized).
		Save(ctx)
	if err != nil {
		// Lost a create race; the other writer's row is the canonical one.
		if ent.IsConstraintError(err) {
			return s.db.Tag.Query().Where(tag.NameEQ(normalized)).Only(ctx)
		}
		return nil, fmt.Errorf("failed to create tag %q: %w", normalized, err)
	}
	return t, nil
}

// Attach links the named tags to a document with the given source. Existing
// attachments are left alone, so re-running a stage does not duplicate
// rows.
func (s *TagService) Attach(ctx context.Context, documentID string, names []string, source documenttag.Source) error {
	for _, name := range names {
		t, err := s.FindOrCreate(ctx, name)
		if err != nil {
			return err
		}

		exists, err := s.db.DocumentTag.Query().
			Where(
				documenttag.DocumentIDEQ(documentID),
				documenttag.TagIDEQ(t.ID),
			).
			Exist(ctx)
		if err != nil {
			return fmt.Errorf("failed to check tag attachment: %w", err)
		}
		if exists {
			continue
		}

		_, err = s.db.DocumentTag.Create().
			SetID(uuid.New().String()).
			SetDocumentID(documentID).
			SetTagID(t.ID).
			SetSource(source).
			Save(ctx)
		if err != nil && !ent.IsConstraintError(err) {
			return fmt.Errorf("failed to attach tag %q to document %s: %w", t.Name, documentID, err)
		}
	}
	return nil
}

// DocumentTags returns the normalized tag names attached to a document.
func (s *TagService) DocumentTags(ctx context.Context, documentID string) ([]string, error) {
	names, err := s.db.Tag.Query().
		Where(tag.HasDocumentTagsWith(documenttag.DocumentIDEQ(documentID))).
		Order(ent.Asc(tag.FieldName)).
		Select(tag.FieldName).
		Strings(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tags for document %s: %w", documentID, err)
	}
	return names, nil
}

// TagCount pairs a tag name with its attachment count.
type TagCount struct {
	Name  string
	Count int
}

// Popular returns the top-N tags by attachment count. The list is fed to
// the classifier prompt so tagging converges instead of fragmenting.
func (s *TagService) Popular(ctx context.Context, limit int) ([]TagCount, error) {
	rows, err := s.db.DB().QueryContext(ctx, `
		SELECT t.name, COUNT(*) AS uses
		FROM tags t
		JOIN document_tags dt ON dt.tag_id = t.tag_id
		GROUP BY t.name
		ORDER BY uses DESC, t.name ASC
		LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query popular tags: %w", err)
	}
	defer rows.Close()

	var out []TagCount
	for rows.Next() {
		var tc TagCount
		if err := rows.Scan(&tc.Name, &tc.Count); err != nil {
			return nil, fmt.Errorf("failed to scan popular tag: %w", err)
		}
		out = append(out, tc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read popular tags: %w", err)
	}
	return out, nil
}

// PopularNames is Popular reduced to just the names.
func (s *TagService) PopularNames(ctx context.Context, limit int) ([]string, error) {
	counts, err := s.Popular(ctx, limit)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(counts))
	for _, tc := range counts {
		names = append(names, tc.Name)
	}
	return names, nil
}
