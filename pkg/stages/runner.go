// Package stages implements the per-document and per-file pipeline stages.
// Each stage claims its row with a compare-and-set status write, performs
// one external call under the appropriate concurrency gate, and persists
// its output. Stages are idempotent: re-running one overwrites the same
// columns with equivalent values.
package stages

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/cenkalti/backoff/v4"
	"github.com/docfold/docfold/pkg/config"
	"github.com/docfold/docfold/pkg/gate"
	"github.com/docfold/docfold/pkg/llm"
	"github.com/docfold/docfold/pkg/models"
	"github.com/docfold/docfold/pkg/ocr"
	"github.com/docfold/docfold/pkg/services"
	"github.com/docfold/docfold/pkg/typelock"
)

// Classifier input is capped so huge OCR outputs do not blow the context
// window.
const maxTextExcerpt = 8000

// Runner bundles the dependencies every stage needs.
type Runner struct {
	docs    *services.DocumentService
	tags    *services.TagService
	series  *services.SeriesService
	files   *services.FileService
	prompts *services.PromptService
	llm     llm.Client
	ocr     ocr.Client
	gates   *gate.Registry
	locker  *typelock.Locker
	cfg     *config.PipelineConfig
}

// NewRunner creates a stage runner.
func NewRunner(
	docs *services.DocumentService,
	tagSvc *services.TagService,
	seriesSvc *services.SeriesService,
	files *services.FileService,
	prompts *services.PromptService,
	llmClient llm.Client,
	ocrClient ocr.Client,
	gates *gate.Registry,
	locker *typelock.Locker,
	cfg *config.PipelineConfig,
) *Runner {
	return &Runner{
		docs:    docs,
		tags:    tagSvc,
		series:  seriesSvc,
		files:   files,
		prompts: prompts,
		llm:     llmClient,
		ocr:     ocrClient,
		gates:   gates,
		locker:  locker,
		cfg:     cfg,
	}
}

// complete performs one LLM call under the LLM gate, retrying transient
// failures with exponential backoff before giving up on the attempt.
func (r *Runner) complete(ctx context.Context, promptText, input string) (string, error) {
	var content string
	err := r.gates.With(ctx, gate.LLM, func(ctx context.Context) error {
		operation := func() error {
			var err error
			content, err = r.llm.Complete(ctx, promptText, input)
			return err
		}
		return backoff.Retry(operation, backoff.WithContext(
			backoff.WithMaxRetries(backoff.NewExponentialBackOff(), 2), ctx))
	})
	return content, err
}

// parseResponse decodes a model response into target. Models wrap JSON in
// markdown fences often enough that the parser extracts the outermost
// object before unmarshalling. Failures are schema errors.
func parseResponse(stage, content string, target interface{}) error {
	trimmed := strings.TrimSpace(content)
	start := strings.Index(trimmed, "{")
	end := strings.LastIndex(trimmed, "}")
	if start < 0 || end < start {
		return models.SchemaErr(stage, fmt.Errorf("response contains no JSON object: %.120s", trimmed))
	}
	if err := json.Unmarshal([]byte(trimmed[start:end+1]), target); err != nil {
		return models.SchemaErr(stage, fmt.Errorf("malformed response: %w", err))
	}
	return nil
}

// marshalInput encodes a stage input payload. Input construction is fully
// under our control, so a failure here is a bug, not a model problem.
func marshalInput(stage string, payload map[string]interface{}) (string, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return "", models.Permanent(stage, fmt.Errorf("marshal input: %w", err))
	}
	return string(raw), nil
}

// excerpt truncates extracted text for LLM input.
func excerpt(text string) string {
	if len(text) <= maxTextExcerpt {
		return text
	}
	return text[:maxTextExcerpt]
}

// isCASLoss reports whether err is a lost claim race or a lock-wait
// timeout; both mean "someone else owns this row right now" and are not
// failures.
func isCASLoss(err error) bool {
	return services.IsConflict(err) || errors.Is(err, typelock.ErrLockTimeout)
}
