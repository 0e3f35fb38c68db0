package stages

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/docfold/docfold/ent"
	"github.com/docfold/docfold/ent/file"
	"github.com/docfold/docfold/ent/prompt"
	"github.com/docfold/docfold/pkg/gate"
	"github.com/docfold/docfold/pkg/models"
)

// RunFileSummary generates the aggregate summary for a file from its member
// documents: pending → generating → generated, or
// outdated → regenerating → generated. A file whose members carry no
// summaries yet fails transiently, so the retry budget bounds how long an
// unready file keeps getting dispatched.
func (r *Runner) RunFileSummary(ctx context.Context, f *ent.File) error {
	target := file.StatusGenerating
	if f.Status == file.StatusOutdated {
		target = file.StatusRegenerating
	}
	if err := r.files.BeginGeneration(ctx, f.ID, target, f.Status); err != nil {
		return err
	}

	members, err := r.files.Members(ctx, f.ID)
	if err != nil {
		return models.Transient("file-summary", err)
	}

	summaries := make([]map[string]interface{}, 0, len(members))
	for _, d := range members {
		if d.Summary == nil {
			continue
		}
		entry := map[string]interface{}{
			"summary":         *d.Summary,
			"structured_data": d.StructuredData,
			"created_at":      d.CreatedAt,
		}
		if d.DocumentType != nil {
			entry["document_type"] = *d.DocumentType
		}
		summaries = append(summaries, entry)
	}

	if len(summaries) == 0 {
		return models.Transient("file-summary",
			fmt.Errorf("no summarized member documents for signature %q", f.TagSignature))
	}

	// Series-backed files (single series:<slug> tag) use the series
	// summarizer, which knows to call out trends across recurrences.
	promptType := prompt.PromptTypeFileSummarizer
	if len(f.Tags) == 1 && strings.HasPrefix(f.Tags[0], "series:") {
		promptType = prompt.PromptTypeSeriesSummarizer
	}
	active, err := r.prompts.GetActive(ctx, promptType, nil)
	if err != nil {
		return models.Transient("file-summary", err)
	}

	input, err := marshalInput("file-summary", map[string]interface{}{
		"tags":      f.Tags,
		"documents": summaries,
	})
	if err != nil {
		return err
	}

	var content string
	err = r.gates.With(ctx, gate.FileGen, func(ctx context.Context) error {
		var err error
		content, err = r.llm.Complete(ctx, active.PromptText, input)
		return err
	})
	if err != nil {
		return models.Transient("file-summary", err)
	}

	var result models.FileSummaryResult
	if err := parseResponse("file-summary", content, &result); err != nil {
		return err
	}
	if result.Summary == "" {
		return models.SchemaErr("file-summary", fmt.Errorf("response missing summary"))
	}

	if err := r.files.SetSummary(ctx, f.ID, &result); err != nil {
		return err
	}

	slog.Info("Generated file summary",
		"file_id", f.ID,
		"signature", f.TagSignature,
		"documents", len(summaries))
	return nil
}
