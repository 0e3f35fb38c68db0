package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/docfold/docfold/ent"
	"github.com/docfold/docfold/ent/document"
	"github.com/docfold/docfold/pkg/database"
	"github.com/docfold/docfold/pkg/models"
	"github.com/google/uuid"
)

// DocumentService handles document persistence and the document status
// machine. All status writes are compare-and-set: the UPDATE carries the
// expected current status in its WHERE clause, so a concurrent writer
// cannot silently overwrite a transition.
type DocumentService struct {
	db *database.Client
}

// NewDocumentService creates a new DocumentService.
func NewDocumentService(db *database.Client) *DocumentService {
	return &DocumentService{db: db}
}

// CreateDocumentInput carries the fields known at intake time.
type CreateDocumentInput struct {
	FolderPath string
	Filename   string
	MimeType   string
	SizeBytes  int64
	MaxRetries int
}

// Create inserts a new document in status "pending".
func (s *DocumentService) Create(ctx context.Context, input CreateDocumentInput) (*ent.Document, error) {
	create := s.db.Document.Create().
		SetID(uuid.New().String()).
		SetFolderPath(input.FolderPath).
		SetFilename(input.Filename).
		SetStatus(document.StatusPending)

	if input.MimeType != "" {
		create.SetMimeType(input.MimeType)
	}
	if input.SizeBytes > 0 {
		create.SetSizeBytes(input.SizeBytes)
	}
	if input.MaxRetries > 0 {
		create.SetMaxRetries(input.MaxRetries)
	}

	doc, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create document: %w", err)
	}
	return doc, nil
}

// Get retrieves a document by ID.
func (s *DocumentService) Get(ctx context.Context, id string) (*ent.Document, error) {
	doc, err := s.db.Document.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, NewNotFoundError("document", id)
		}
		return nil, fmt.Errorf("failed to get document %s: %w", id, err)
	}
	return doc, nil
}

// Transition moves a document from one of the expected statuses to the
// target status. Every expected→target edge must be legal. Returns a
// ConflictError when the row is no longer in any expected status.
func (s *DocumentService) Transition(ctx context.Context, id string, to document.Status, from ...document.Status) error {
	return s.transition(ctx, id, to, from, nil)
}

func (s *DocumentService) transition(ctx context.Context, id string, to document.Status, from []document.Status, apply func(*ent.DocumentUpdate)) error {
	for _, f := range from {
		if !models.CanTransition(f, to) {
			return &InvalidTransitionError{Resource: "document", From: string(f), To: string(to)}
		}
	}

	update := s.db.Document.Update().
		Where(document.IDEQ(id), document.StatusIn(from...)).
		SetStatus(to)
	if apply != nil {
		apply(update)
	}

	n, err := update.Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to transition document %s to %s: %w", id, to, err)
	}
	if n == 0 {
		exists, err := s.db.Document.Query().Where(document.IDEQ(id)).Exist(ctx)
		if err != nil {
			return fmt.Errorf("failed to check document %s: %w", id, err)
		}
		if !exists {
			return NewNotFoundError("document", id)
		}
		return &ConflictError{Resource: "document", ID: id, Expected: statusList(from), Target: string(to)}
	}
	return nil
}

func statusList(statuses []document.Status) string {
	out := ""
	for i, s := range statuses {
		if i > 0 {
			out += "|"
		}
		out += string(s)
	}
	return out
}

// BeginStage claims a document for a stage: CAS into the progressing status
// and stamp processing_started_at so the stuck sweep can measure it.
func (s *DocumentService) BeginStage(ctx context.Context, id string, to document.Status, from ...document.Status) error {
	return s.transition(ctx, id, to, from, func(u *ent.DocumentUpdate) {
		u.SetProcessingStartedAt(time.Now())
	})
}

// SetOCRResult records extraction output and completes the OCR stage.
func (s *DocumentService) SetOCRResult(ctx context.Context, id, text string, confidence float64) error {
	return s.transition(ctx, id, document.StatusOcrCompleted, []document.Status{document.StatusOcrInProgress}, func(u *ent.DocumentUpdate) {
		u.SetExtractedText(text).
			SetOcrConfidence(confidence).
			ClearLastError().
			ClearProcessingStartedAt()
	})
}

// SetClassification records classifier output and completes the classify
// stage.
func (s *DocumentService) SetClassification(ctx context.Context, id string, result *models.ClassificationResult) error {
	return s.transition(ctx, id, document.StatusClassified, []document.Status{document.StatusClassifying}, func(u *ent.DocumentUpdate) {
		u.SetDocumentType(result.DocumentType).
			SetClassificationConfidence(result.Confidence).
			SetClassificationReasoning(result.Reasoning).
			ClearLastError().
			ClearProcessingStartedAt()
	})
}

// SetSummary records summarizer output. The allowed source statuses come
// from the caller because the concurrent scoring branch may have advanced
// the row while the summary was in flight.
func (s *DocumentService) SetSummary(ctx context.Context, id string, result *models.SummaryResult, to document.Status, from ...document.Status) error {
	return s.transition(ctx, id, to, from, func(u *ent.DocumentUpdate) {
		u.SetSummary(result.Summary).
			SetStructuredData(result.StructuredData).
			ClearLastError().
			ClearProcessingStartedAt()
	})
}

// MarkFailed records a stage failure. Transient failures go to "failed" with
// retry bookkeeping; the row goes to "permanently_failed" when the error is
// permanent, when a schema error repeats back to back, or when retries are
// exhausted.
func (s *DocumentService) MarkFailed(ctx context.Context, id string, stageErr error) error {
	doc, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if models.IsTerminalStatus(doc.Status) {
		return nil
	}

	permanent := models.KindOf(stageErr) == models.KindPermanent ||
		models.IsRepeatedSchemaError(doc.LastError, stageErr) ||
		doc.RetryCount+1 >= doc.MaxRetries

	target := document.StatusFailed
	if permanent {
		target = document.StatusPermanentlyFailed
	}

	n, err := s.db.Document.Update().
		Where(
			document.IDEQ(id),
			document.StatusNotIn(document.StatusCompleted, document.StatusPermanentlyFailed),
		).
		SetStatus(target).
		SetLastError(models.LastErrorText(stageErr)).
		AddRetryCount(1).
		ClearProcessingStartedAt().
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to mark document %s failed: %w", id, err)
	}
	if n == 0 {
		return nil
	}

	slog.Warn("Document stage failed",
		"document_id", id,
		"status", target,
		"retry_count", doc.RetryCount+1,
		"error", stageErr)
	return nil
}

// ResetFailed moves a "failed" document back to its resume status, derived
// from which stage outputs are already persisted. Re-running a completed
// stage is idempotent, so the derivation is conservative.
func (s *DocumentService) ResetFailed(ctx context.Context, doc *ent.Document) error {
	resume := models.ResumeStatus(&models.DocumentSnapshot{
		ExtractedText: doc.ExtractedText,
		DocumentType:  doc.DocumentType,
		Summary:       doc.Summary,
	})
	n, err := s.db.Document.Update().
		Where(document.IDEQ(doc.ID), document.StatusEQ(document.StatusFailed)).
		SetStatus(resume).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to reset document %s: %w", doc.ID, err)
	}
	if n > 0 {
		slog.Info("Reset failed document for retry", "document_id", doc.ID, "resume_status", resume)
	}
	return nil
}

// RecoverStuck resets a document stuck in a progressing status back to the
// stage's entry status, counting the interruption as a retry. Exhausted rows
// go to "permanently_failed".
func (s *DocumentService) RecoverStuck(ctx context.Context, doc *ent.Document) error {
	reset, ok := models.SweepResetStatus(doc.Status)
	if !ok {
		return nil
	}
	target := reset
	if doc.RetryCount+1 >= doc.MaxRetries {
		target = document.StatusPermanentlyFailed
	}

	n, err := s.db.Document.Update().
		Where(
			document.IDEQ(doc.ID),
			document.StatusEQ(doc.Status),
			document.UpdatedAtEQ(doc.UpdatedAt),
		).
		SetStatus(target).
		AddRetryCount(1).
		SetLastError("stage interrupted: exceeded stuck threshold").
		ClearProcessingStartedAt().
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to recover stuck document %s: %w", doc.ID, err)
	}
	if n > 0 {
		slog.Warn("Recovered stuck document",
			"document_id", doc.ID,
			"from", doc.Status,
			"to", target,
			"retry_count", doc.RetryCount+1)
	}
	return nil
}

// Reprocess resets a document for a fresh run from its resume status,
// clearing retry bookkeeping. Rejected while the document is mid-stage.
func (s *DocumentService) Reprocess(ctx context.Context, id string) (*ent.Document, error) {
	doc, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	for _, p := range models.ProgressingStatuses {
		if doc.Status == p {
			return nil, fmt.Errorf("document %s is mid-stage (%s): %w", id, doc.Status,
				&ConflictError{Resource: "document", ID: id, Expected: string(doc.Status), Target: "reprocess"})
		}
	}

	resume := models.ResumeStatus(&models.DocumentSnapshot{
		ExtractedText: doc.ExtractedText,
		DocumentType:  doc.DocumentType,
		Summary:       doc.Summary,
	})
	doc, err = s.db.Document.UpdateOneID(id).
		SetStatus(resume).
		SetRetryCount(0).
		ClearLastError().
		ClearProcessingStartedAt().
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to reprocess document %s: %w", id, err)
	}
	return doc, nil
}

// ListByStatus returns up to limit documents in the given statuses, oldest
// first so intake order is roughly preserved.
func (s *DocumentService) ListByStatus(ctx context.Context, limit int, statuses ...document.Status) ([]*ent.Document, error) {
	docs, err := s.db.Document.Query().
		Where(document.StatusIn(statuses...)).
		Order(ent.Asc(document.FieldCreatedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list documents by status: %w", err)
	}
	return docs, nil
}

// ListStuck returns documents sitting in a progressing status with no write
// since the threshold.
func (s *DocumentService) ListStuck(ctx context.Context, threshold time.Duration) ([]*ent.Document, error) {
	cutoff := time.Now().Add(-threshold)
	docs, err := s.db.Document.Query().
		Where(
			document.StatusIn(models.ProgressingStatuses...),
			document.UpdatedAtLT(cutoff),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list stuck documents: %w", err)
	}
	return docs, nil
}

// ListRecentByType returns the newest documents of a type, for the scoring
// stages' evaluation sample.
func (s *DocumentService) ListRecentByType(ctx context.Context, docType string, limit int) ([]*ent.Document, error) {
	docs, err := s.db.Document.Query().
		Where(document.DocumentTypeEQ(docType)).
		Order(ent.Desc(document.FieldCreatedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent documents of type %s: %w", docType, err)
	}
	return docs, nil
}

// CountByType counts documents of a type that made it past classification.
func (s *DocumentService) CountByType(ctx context.Context, docType string) (int, error) {
	n, err := s.db.Document.Query().
		Where(document.DocumentTypeEQ(docType)).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count documents of type %s: %w", docType, err)
	}
	return n, nil
}

// KnownTypes returns the distinct document types seen so far, fed to the
// classifier prompt so it prefers existing types.
func (s *DocumentService) KnownTypes(ctx context.Context) ([]string, error) {
	types, err := s.db.Document.Query().
		Where(document.DocumentTypeNotNil()).
		Unique(true).
		Select(document.FieldDocumentType).
		Strings(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list document types: %w", err)
	}
	return types, nil
}

// StatusCounts returns document counts grouped by status for the ops
// surface.
func (s *DocumentService) StatusCounts(ctx context.Context) (map[string]int, error) {
	var rows []struct {
		Status string `json:"status"`
		Count  int    `json:"count"`
	}
	err := s.db.Document.Query().
		GroupBy(document.FieldStatus).
		Aggregate(ent.Count()).
		Scan(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("failed to count documents by status: %w", err)
	}
	counts := make(map[string]int, len(rows))
	for _, r := range rows {
		counts[r.Status] = r.Count
	}
	return counts, nil
}
