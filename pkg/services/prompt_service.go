package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/docfold/docfold/ent"
	"github.com/docfold/docfold/ent/file"
	"github.com/docfold/docfold/ent/prompt"
	"github.com/docfold/docfold/pkg/config"
	"github.com/docfold/docfold/pkg/database"
	"github.com/google/uuid"
)

// PromptService handles the versioned prompt store. Prompt rows are
// append-only within a (prompt_type, document_type) scope; a partial unique
// index guarantees at most one active version per scope, so a lost
// deactivate/insert race surfaces as a constraint error instead of two
// active prompts.
type PromptService struct {
	db *database.Client
}

// NewPromptService creates a new PromptService.
func NewPromptService(db *database.Client) *PromptService {
	return &PromptService{db: db}
}

// EnsureSeeds inserts version 1 of each built-in prompt whose scope has no
// active version yet. Called once at startup; idempotent.
func (s *PromptService) EnsureSeeds(ctx context.Context, seeds []config.SeedPrompt) error {
	for _, seed := range seeds {
		active, err := s.getActiveInScope(ctx, prompt.PromptType(seed.PromptType), seed.DocumentType)
		if err != nil {
			return err
		}
		if active != nil {
			continue
		}

		create := s.db.Prompt.Create().
			SetID(uuid.New().String()).
			SetPromptType(prompt.PromptType(seed.PromptType)).
			SetVersion(1).
			SetPromptText(seed.Text).
			SetCanEvolve(seed.CanEvolve).
			SetRegeneratesOnUpdate(seed.RegeneratesOnUpdate).
			SetIsActive(true)
		if seed.DocumentType != nil {
			create.SetDocumentType(*seed.DocumentType)
		}
		if seed.ScoreCeiling != nil {
			create.SetScoreCeiling(*seed.ScoreCeiling)
		}

		if _, err := create.Save(ctx); err != nil {
			if ent.IsConstraintError(err) {
				// Another instance seeded this scope first.
				continue
			}
			return fmt.Errorf("failed to seed prompt %s: %w", seed.PromptType, err)
		}
		slog.Info("Seeded prompt", "prompt_type", seed.PromptType)
	}
	return nil
}

// GetActive returns the active prompt for a type, preferring the
// document-type-scoped version and falling back to the generic one.
func (s *PromptService) GetActive(ctx context.Context, promptType prompt.PromptType, documentType *string) (*ent.Prompt, error) {
	if documentType != nil {
		scoped, err := s.getActiveInScope(ctx, promptType, documentType)
		if err != nil {
			return nil, err
		}
		if scoped != nil {
			return scoped, nil
		}
	}

	generic, err := s.getActiveInScope(ctx, promptType, nil)
	if err != nil {
		return nil, err
	}
	if generic == nil {
		return nil, NewNotFoundError("active prompt", string(promptType))
	}
	return generic, nil
}

func (s *PromptService) getActiveInScope(ctx context.Context, promptType prompt.PromptType, documentType *string) (*ent.Prompt, error) {
	q := s.db.Prompt.Query().
		Where(prompt.PromptTypeEQ(promptType), prompt.IsActive(true))
	if documentType != nil {
		q.Where(prompt.DocumentTypeEQ(*documentType))
	} else {
		q.Where(prompt.DocumentTypeIsNil())
	}

	p, err := q.Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query active prompt %s: %w", promptType, err)
	}
	return p, nil
}

// ListVersions returns all versions in a scope, oldest first.
func (s *PromptService) ListVersions(ctx context.Context, promptType prompt.PromptType, documentType *string) ([]*ent.Prompt, error) {
	q := s.db.Prompt.Query().
		Where(prompt.PromptTypeEQ(promptType)).
		Order(ent.Asc(prompt.FieldVersion))
	if documentType != nil {
		q.Where(prompt.DocumentTypeEQ(*documentType))
	} else {
		q.Where(prompt.DocumentTypeIsNil())
	}

	versions, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list prompt versions: %w", err)
	}
	return versions, nil
}

// EvolutionInput is a scoring run's verdict on the active prompt of a
// scope.
type EvolutionInput struct {
	PromptType   prompt.PromptType
	DocumentType *string

	// Score rates the suggested prompt (or, with no suggestion, the active
	// prompt's current output quality).
	Score float64

	// SuggestedPrompt is the scorer's proposed replacement text; empty means
	// no proposal.
	SuggestedPrompt string

	// Margin is the minimum score improvement required to adopt a proposal.
	Margin float64
}

// EvolutionResult reports what a scoring run changed.
type EvolutionResult struct {
	Evolved bool

	// Active is the prompt active after the run (the new version when
	// Evolved, otherwise the existing one).
	Active *ent.Prompt

	// RegeneratesOnUpdate reports that the adopted version carries the
	// regeneration flag; generated files were flipped to outdated inside
	// the adoption transaction.
	RegeneratesOnUpdate bool
}

// Evolve applies a scoring verdict. With no adoptable proposal the score is
// recorded on the active prompt; otherwise the active version is retired
// and the proposal becomes the next version. Evolution conditions: the
// prompt can evolve, the verdict is below the ceiling, and it clears the
// recorded score by the margin.
func (s *PromptService) Evolve(ctx context.Context, input EvolutionInput) (*EvolutionResult, error) {
	active, err := s.GetActive(ctx, input.PromptType, input.DocumentType)
	if err != nil {
		return nil, err
	}

	activeScore := 0.0
	if active.PerformanceScore != nil {
		activeScore = *active.PerformanceScore
	}
	underCeiling := active.ScoreCeiling == nil || input.Score < *active.ScoreCeiling

	adopt := input.SuggestedPrompt != "" &&
		active.CanEvolve &&
		underCeiling &&
		input.Score > activeScore+input.Margin

	if !adopt {
		// Ratchet: the recorded score is the best observed performance of
		// this version, so a low verdict cannot erode the baseline a
		// replacement has to beat.
		if active.PerformanceScore != nil && input.Score <= *active.PerformanceScore {
			return &EvolutionResult{Evolved: false, Active: active}, nil
		}
		updated, err := s.db.Prompt.UpdateOneID(active.ID).
			SetPerformanceScore(input.Score).
			Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to record prompt score: %w", err)
		}
		return &EvolutionResult{Evolved: false, Active: updated}, nil
	}

	tx, err := s.db.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin prompt evolution tx: %w", err)
	}

	next, err := s.evolveTx(ctx, tx, active, input)
	if err != nil {
		_ = tx.Rollback()
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit prompt evolution: %w", err)
	}

	slog.Info("Evolved prompt",
		"prompt_type", active.PromptType,
		"version", next.Version,
		"score", input.Score)
	return &EvolutionResult{
		Evolved:             true,
		Active:              next,
		RegeneratesOnUpdate: next.RegeneratesOnUpdate,
	}, nil
}

func (s *PromptService) evolveTx(ctx context.Context, tx *ent.Tx, active *ent.Prompt, input EvolutionInput) (*ent.Prompt, error) {
	// CAS deactivate: a concurrent evolution of the same scope makes this
	// update match zero rows, and the run aborts instead of forking history.
	n, err := tx.Prompt.Update().
		Where(prompt.IDEQ(active.ID), prompt.IsActive(true)).
		SetIsActive(false).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to deactivate prompt %s: %w", active.ID, err)
	}
	if n == 0 {
		return nil, &ConflictError{Resource: "prompt", ID: active.ID, Expected: "active", Target: "deactivated"}
	}

	create := tx.Prompt.Create().
		SetID(uuid.New().String()).
		SetPromptType(active.PromptType).
		SetVersion(active.Version + 1).
		SetPromptText(input.SuggestedPrompt).
		SetPerformanceScore(input.Score).
		SetCanEvolve(active.CanEvolve).
		SetRegeneratesOnUpdate(active.RegeneratesOnUpdate).
		SetIsActive(true)
	if active.DocumentType != nil {
		create.SetDocumentType(*active.DocumentType)
	}
	if active.ScoreCeiling != nil {
		create.SetScoreCeiling(*active.ScoreCeiling)
	}

	next, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create prompt version %d: %w", active.Version+1, err)
	}

	// The outdated-cascade commits with the version swap: either the new
	// prompt is active AND stale aggregates are marked for regeneration, or
	// neither happened.
	if next.RegeneratesOnUpdate {
		n, err := tx.File.Update().
			Where(file.StatusEQ(file.StatusGenerated)).
			SetStatus(file.StatusOutdated).
			Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to outdate generated files: %w", err)
		}
		if n > 0 {
			slog.Info("Outdated generated files after prompt evolution",
				"prompt_type", active.PromptType, "files", n)
		}
	}
	return next, nil
}
