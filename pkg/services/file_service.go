package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/docfold/docfold/ent"
	"github.com/docfold/docfold/ent/document"
	"github.com/docfold/docfold/ent/file"
	"github.com/docfold/docfold/ent/filedocument"
	"github.com/docfold/docfold/pkg/database"
	"github.com/docfold/docfold/pkg/models"
	"github.com/docfold/docfold/pkg/tags"
	"github.com/google/uuid"
)

// FileService handles multi-document files. File identity is the
// (source, tag_signature) pair; membership is derivable from tags and
// cached in the file_documents junction.
type FileService struct {
	db *database.Client
}

// NewFileService creates a new FileService.
func NewFileService(db *database.Client) *FileService {
	return &FileService{db: db}
}

// FindOrCreate returns the file identified by the canonical signature of
// tagList within source, creating it in status "pending" on first sight.
func (s *FileService) FindOrCreate(ctx context.Context, source file.Source, tagList []string, maxRetries int) (*ent.File, error) {
	normalized, signature := tags.Signature(tagList)
	if signature == "" {
		return nil, fmt.Errorf("file tag list %v normalizes to empty", tagList)
	}

	existing, err := s.db.File.Query().
		Where(file.SourceEQ(source), file.TagSignatureEQ(signature)).
		Only(ctx)
	if err == nil {
		return existing, nil
	}
	if !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to query file %q: %w", signature, err)
	}

	create := s.db.File.Create().
		SetID(uuid.New().String()).
		SetTags(normalized).
		SetTagSignature(signature).
		SetSource(source)
	if maxRetries > 0 {
		create.SetMaxRetries(maxRetries)
	}

	created, err := create.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return s.db.File.Query().
				Where(file.SourceEQ(source), file.TagSignatureEQ(signature)).
				Only(ctx)
		}
		return nil, fmt.Errorf("failed to create file %q: %w", signature, err)
	}

	slog.Info("Created file", "file_id", created.ID, "signature", signature, "source", source)
	return created, nil
}

// Get retrieves a file by ID.
func (s *FileService) Get(ctx context.Context, id string) (*ent.File, error) {
	f, err := s.db.File.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, NewNotFoundError("file", id)
		}
		return nil, fmt.Errorf("failed to get file %s: %w", id, err)
	}
	return f, nil
}

// Transition moves a file between statuses with a compare-and-set write.
func (s *FileService) Transition(ctx context.Context, id string, to file.Status, from ...file.Status) error {
	return s.transition(ctx, id, to, from, nil)
}

func (s *FileService) transition(ctx context.Context, id string, to file.Status, from []file.Status, apply func(*ent.FileUpdate)) error {
	update := s.db.File.Update().
		Where(file.IDEQ(id), file.StatusIn(from...)).
		SetStatus(to)
	if apply != nil {
		apply(update)
	}

	n, err := update.Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to transition file %s to %s: %w", id, to, err)
	}
	if n == 0 {
		exists, err := s.db.File.Query().Where(file.IDEQ(id)).Exist(ctx)
		if err != nil {
			return fmt.Errorf("failed to check file %s: %w", id, err)
		}
		if !exists {
			return NewNotFoundError("file", id)
		}
		return &ConflictError{Resource: "file", ID: id, Target: string(to)}
	}
	return nil
}

// BeginGeneration claims a file for the summarizer: pending→generating or
// outdated→regenerating, stamping processing_started_at.
func (s *FileService) BeginGeneration(ctx context.Context, id string, to file.Status, from ...file.Status) error {
	return s.transition(ctx, id, to, from, func(u *ent.FileUpdate) {
		u.SetProcessingStartedAt(time.Now())
	})
}

// SetSummary records the generated aggregate summary and completes
// generation.
func (s *FileService) SetSummary(ctx context.Context, id string, result *models.FileSummaryResult) error {
	return s.transition(ctx, id, file.StatusGenerated,
		[]file.Status{file.StatusGenerating, file.StatusRegenerating},
		func(u *ent.FileUpdate) {
			u.SetSummaryText(result.Summary).
				SetSummaryMetadata(result.Metadata).
				SetLastGeneratedAt(time.Now()).
				ClearLastError().
				ClearProcessingStartedAt()
		})
}

// MarkFailed records a generation failure: back to the launchable status
// with retry bookkeeping, or permanently failed once retries run out.
func (s *FileService) MarkFailed(ctx context.Context, id string, genErr error) error {
	f, err := s.Get(ctx, id)
	if err != nil {
		return err
	}

	reset, ok := models.FileSweepResetStatus(f.Status)
	if !ok {
		return nil
	}
	target := reset
	if models.KindOf(genErr) == models.KindPermanent || f.RetryCount+1 >= f.MaxRetries {
		target = file.StatusPermanentlyFailed
	}

	err = s.transition(ctx, id, target, []file.Status{f.Status}, func(u *ent.FileUpdate) {
		u.SetLastError(models.LastErrorText(genErr)).
			AddRetryCount(1).
			ClearProcessingStartedAt()
	})
	if err != nil {
		return err
	}

	slog.Warn("File generation failed",
		"file_id", id,
		"status", target,
		"retry_count", f.RetryCount+1,
		"error", genErr)
	return nil
}

// RecoverStuck resets a file stuck in a generating status, counting the
// interruption as a retry.
func (s *FileService) RecoverStuck(ctx context.Context, f *ent.File) error {
	reset, ok := models.FileSweepResetStatus(f.Status)
	if !ok {
		return nil
	}
	target := reset
	if f.RetryCount+1 >= f.MaxRetries {
		target = file.StatusPermanentlyFailed
	}

	n, err := s.db.File.Update().
		Where(
			file.IDEQ(f.ID),
			file.StatusEQ(f.Status),
			file.UpdatedAtEQ(f.UpdatedAt),
		).
		SetStatus(target).
		AddRetryCount(1).
		SetLastError("generation interrupted: exceeded stuck threshold").
		ClearProcessingStartedAt().
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to recover stuck file %s: %w", f.ID, err)
	}
	if n > 0 {
		slog.Warn("Recovered stuck file", "file_id", f.ID, "from", f.Status, "to", target)
	}
	return nil
}

// SyncMembershipForDocument reconciles the membership cache for one
// document after its tags change: the document joins every file whose tag
// set it covers, leaves files it no longer covers, and every file whose
// membership changed has its generated summary invalidated.
func (s *FileService) SyncMembershipForDocument(ctx context.Context, documentID string, docTags []string) error {
	files, err := s.db.File.Query().
		Where(file.StatusNEQ(file.StatusPermanentlyFailed)).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to list files: %w", err)
	}

	for _, f := range files {
		member := tags.IsSubset(f.Tags, docTags)

		cached, err := s.db.FileDocument.Query().
			Where(
				filedocument.FileIDEQ(f.ID),
				filedocument.DocumentIDEQ(documentID),
			).
			Exist(ctx)
		if err != nil {
			return fmt.Errorf("failed to check file membership: %w", err)
		}

		switch {
		case member && !cached:
			_, err = s.db.FileDocument.Create().
				SetID(uuid.New().String()).
				SetFileID(f.ID).
				SetDocumentID(documentID).
				Save(ctx)
			if err != nil && !ent.IsConstraintError(err) {
				return fmt.Errorf("failed to add document %s to file %s: %w", documentID, f.ID, err)
			}
		case !member && cached:
			_, err = s.db.FileDocument.Delete().
				Where(
					filedocument.FileIDEQ(f.ID),
					filedocument.DocumentIDEQ(documentID),
				).
				Exec(ctx)
			if err != nil {
				return fmt.Errorf("failed to remove document %s from file %s: %w", documentID, f.ID, err)
			}
		default:
			continue
		}

		// Membership changed: a generated summary no longer reflects the
		// file's contents.
		if err := s.Invalidate(ctx, f.ID); err != nil {
			return err
		}
	}
	return nil
}

// Invalidate flips a generated file to "outdated" so the next orchestrator
// tick regenerates its summary. Files that are pending, mid-generation, or
// already outdated need nothing.
func (s *FileService) Invalidate(ctx context.Context, id string) error {
	_, err := s.db.File.Update().
		Where(file.IDEQ(id), file.StatusEQ(file.StatusGenerated)).
		SetStatus(file.StatusOutdated).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to invalidate file %s: %w", id, err)
	}
	return nil
}

// Members returns the documents currently cached as members of a file,
// newest first. File summarization presents members in this order.
func (s *FileService) Members(ctx context.Context, fileID string) ([]*ent.Document, error) {
	ids, err := s.db.FileDocument.Query().
		Where(filedocument.FileIDEQ(fileID)).
		Select(filedocument.FieldDocumentID).
		Strings(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list file members: %w", err)
	}
	if len(ids) == 0 {
		return nil, nil
	}

	docs, err := s.db.Document.Query().
		Where(document.IDIn(ids...)).
		Order(ent.Desc(document.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load file member documents: %w", err)
	}
	return docs, nil
}

// MemberIDsByTags computes membership from scratch: documents carrying
// every tag in tagList. Used to seed the cache for a newly created file.
func (s *FileService) MemberIDsByTags(ctx context.Context, tagList []string) ([]string, error) {
	normalized, _ := tags.Signature(tagList)
	if len(normalized) == 0 {
		return nil, nil
	}

	placeholders := make([]string, len(normalized))
	args := make([]interface{}, 0, len(normalized)+1)
	for i, t := range normalized {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
		args = append(args, t)
	}
	args = append(args, len(normalized))

	query := fmt.Sprintf(`
		SELECT dt.document_id
		FROM document_tags dt
		JOIN tags t ON t.tag_id = dt.tag_id
		WHERE t.name IN (%s)
		GROUP BY dt.document_id
		HAVING COUNT(DISTINCT t.name) = $%d`,
		strings.Join(placeholders, ", "), len(normalized)+1)

	rows, err := s.db.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to compute file membership: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan member id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read file membership: %w", err)
	}
	return ids, nil
}

// SeedMembership fills the membership cache for a file from the tag index.
// Gaining a member invalidates any generated summary.
func (s *FileService) SeedMembership(ctx context.Context, fileID string, tagList []string) error {
	ids, err := s.MemberIDsByTags(ctx, tagList)
	if err != nil {
		return err
	}
	added := 0
	for _, docID := range ids {
		exists, err := s.db.FileDocument.Query().
			Where(
				filedocument.FileIDEQ(fileID),
				filedocument.DocumentIDEQ(docID),
			).
			Exist(ctx)
		if err != nil {
			return fmt.Errorf("failed to check membership for file %s: %w", fileID, err)
		}
		if exists {
			continue
		}
		_, err = s.db.FileDocument.Create().
			SetID(uuid.New().String()).
			SetFileID(fileID).
			SetDocumentID(docID).
			Save(ctx)
		if err != nil {
			if ent.IsConstraintError(err) {
				continue
			}
			return fmt.Errorf("failed to seed membership for file %s: %w", fileID, err)
		}
		added++
	}
	if added > 0 {
		return s.Invalidate(ctx, fileID)
	}
	return nil
}

// ListByStatus returns up to limit files in the given statuses, oldest
// update first.
func (s *FileService) ListByStatus(ctx context.Context, limit int, statuses ...file.Status) ([]*ent.File, error) {
	files, err := s.db.File.Query().
		Where(file.StatusIn(statuses...)).
		Order(ent.Asc(file.FieldUpdatedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list files by status: %w", err)
	}
	return files, nil
}

// ListStuck returns files sitting in a generating status with no write
// since the threshold.
func (s *FileService) ListStuck(ctx context.Context, threshold time.Duration) ([]*ent.File, error) {
	cutoff := time.Now().Add(-threshold)
	files, err := s.db.File.Query().
		Where(
			file.StatusIn(models.FileProgressingStatuses...),
			file.UpdatedAtLT(cutoff),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list stuck files: %w", err)
	}
	return files, nil
}

// StatusCounts returns file counts grouped by status for the ops surface.
func (s *FileService) StatusCounts(ctx context.Context) (map[string]int, error) {
	var rows []struct {
		Status string `json:"status"`
		Count  int    `json:"count"`
	}
	err := s.db.File.Query().
		GroupBy(file.FieldStatus).
		Aggregate(ent.Count()).
		Scan(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("failed to count files by status: %w", err)
	}
	counts := make(map[string]int, len(rows))
	for _, r := range rows {
		counts[r.Status] = r.Count
	}
	return counts, nil
}
