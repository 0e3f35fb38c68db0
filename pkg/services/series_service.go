package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/docfold/docfold/ent"
	"github.com/docfold/docfold/ent/documentseries"
	"github.com/docfold/docfold/ent/series"
	"github.com/docfold/docfold/pkg/database"
	"github.com/docfold/docfold/pkg/models"
	"github.com/google/uuid"
)

// SeriesService handles recurring-document series. Series identity is the
// (entity, series_type, owner) tuple, so classifier tag drift cannot split
// a series.
type SeriesService struct {
	db *database.Client
}

// NewSeriesService creates a new SeriesService.
func NewSeriesService(db *database.Client) *SeriesService {
	return &SeriesService{db: db}
}

// FindOrCreate returns the series matching a detection's identity tuple,
// creating it on first sight. An existing series keeps its stored title and
// description; detections only fill gaps.
func (s *SeriesService) FindOrCreate(ctx context.Context, det *models.SeriesDetection, owner string, source series.Source) (*ent.Series, error) {
	if det.Entity == "" || det.SeriesType == "" {
		return nil, fmt.Errorf("series detection missing identity: entity=%q series_type=%q", det.Entity, det.SeriesType)
	}

	existing, err := s.db.Series.Query().
		Where(
			series.EntityEQ(det.Entity),
			series.SeriesTypeEQ(det.SeriesType),
			series.OwnerEQ(owner),
		).
		Only(ctx)
	if err == nil {
		return existing, nil
	}
	if !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to query series: %w", err)
	}

	create := s.db.Series.Create().
		SetID(uuid.New().String()).
		SetTitle(det.Title).
		SetEntity(det.Entity).
		SetSeriesType(det.SeriesType).
		SetOwner(owner).
		SetSource(source)
	if det.Frequency != "" {
		create.SetFrequency(det.Frequency)
	}
	if det.Description != "" {
		create.SetDescription(det.Description)
	}
	if det.Metadata != nil {
		create.SetMetadata(det.Metadata)
	}

	created, err := create.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return s.db.Series.Query().
				Where(
					series.EntityEQ(det.Entity),
					series.SeriesTypeEQ(det.SeriesType),
					series.OwnerEQ(owner),
				).
				Only(ctx)
		}
		return nil, fmt.Errorf("failed to create series: %w", err)
	}

	slog.Info("Created series",
		"series_id", created.ID,
		"entity", created.Entity,
		"series_type", created.SeriesType)
	return created, nil
}

// AddDocument links a document into a series and refreshes the series
// bookkeeping (document count, first/last dates). Idempotent per
// (document, series) pair.
func (s *SeriesService) AddDocument(ctx context.Context, seriesID, documentID, addedBy string) error {
	exists, err := s.db.DocumentSeries.Query().
		Where(
			documentseries.DocumentIDEQ(documentID),
			documentseries.SeriesIDEQ(seriesID),
		).
		Exist(ctx)
	if err != nil {
		return fmt.Errorf("failed to check series membership: %w", err)
	}
	if !exists {
		_, err = s.db.DocumentSeries.Create().
			SetID(uuid.New().String()).
			SetDocumentID(documentID).
			SetSeriesID(seriesID).
			SetAddedBy(addedBy).
			Save(ctx)
		if err != nil && !ent.IsConstraintError(err) {
			return fmt.Errorf("failed to add document %s to series %s: %w", documentID, seriesID, err)
		}
	}
	return s.refreshBookkeeping(ctx, seriesID)
}

// refreshBookkeeping recomputes the cached count and date range from the
// junction table. Recomputing instead of incrementing keeps the cache
// correct under concurrent adds and manual removals.
func (s *SeriesService) refreshBookkeeping(ctx context.Context, seriesID string) error {
	count, err := s.db.DocumentSeries.Query().
		Where(documentseries.SeriesIDEQ(seriesID)).
		Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count series documents: %w", err)
	}

	var first, last time.Time
	err = s.db.DB().QueryRowContext(ctx, `
		SELECT COALESCE(MIN(d.created_at), now()), COALESCE(MAX(d.created_at), now())
		FROM document_series ds
		JOIN documents d ON d.document_id = ds.document_id
		WHERE ds.series_id = $1`, seriesID).Scan(&first, &last)
	if err != nil {
		return fmt.Errorf("failed to compute series date range: %w", err)
	}

	_, err = s.db.Series.UpdateOneID(seriesID).
		SetDocumentCount(count).
		SetFirstDocumentDate(first).
		SetLastDocumentDate(last).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to update series bookkeeping: %w", err)
	}
	return nil
}

// Get retrieves a series by ID.
func (s *SeriesService) Get(ctx context.Context, id string) (*ent.Series, error) {
	row, err := s.db.Series.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, NewNotFoundError("series", id)
		}
		return nil, fmt.Errorf("failed to get series %s: %w", id, err)
	}
	return row, nil
}

// List returns all series, newest first.
func (s *SeriesService) List(ctx context.Context) ([]*ent.Series, error) {
	rows, err := s.db.Series.Query().
		Order(ent.Desc(series.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list series: %w", err)
	}
	return rows, nil
}

// Archive marks a series archived. Archived series keep their documents but
// no longer receive new ones from detection.
func (s *SeriesService) Archive(ctx context.Context, id string) error {
	n, err := s.db.Series.Update().
		Where(series.IDEQ(id), series.StatusNEQ(series.StatusArchived)).
		SetStatus(series.StatusArchived).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to archive series %s: %w", id, err)
	}
	if n == 0 {
		exists, err := s.db.Series.Query().Where(series.IDEQ(id)).Exist(ctx)
		if err != nil {
			return fmt.Errorf("failed to check series %s: %w", id, err)
		}
		if !exists {
			return NewNotFoundError("series", id)
		}
	}
	return nil
}
