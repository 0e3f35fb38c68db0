package models

import (
	"testing"

	"github.com/docfold/docfold/ent/document"
	"github.com/docfold/docfold/ent/file"
	"github.com/stretchr/testify/assert"
)

func TestCanTransitionHappyPath(t *testing.T) {
	path := []document.Status{
		document.StatusPending,
		document.StatusOcrInProgress,
		document.StatusOcrCompleted,
		document.StatusClassifying,
		document.StatusClassified,
		document.StatusSummarizing,
		document.StatusSummarized,
		document.StatusScoringSummary,
		document.StatusScoredSummary,
		document.StatusFiling,
		document.StatusFiled,
		document.StatusCompleted,
	}
	for i := 0; i < len(path)-1; i++ {
		assert.True(t, CanTransition(path[i], path[i+1]),
			"%s → %s must be legal", path[i], path[i+1])
	}
}

func TestCanTransitionBranchInterleavings(t *testing.T) {
	// Both orderings of the post-classification fan-out must be legal:
	// scoring completes first, or summarization completes first.
	sequences := [][]document.Status{
		{
			document.StatusClassified,
			document.StatusScoringClassification,
			document.StatusSummarizing,
			document.StatusScoredClassification,
			document.StatusSummarized,
			document.StatusScoringSummary,
		},
		{
			document.StatusClassified,
			document.StatusSummarizing,
			document.StatusScoringClassification,
			document.StatusSummarized,
			document.StatusScoredClassification,
			document.StatusScoringSummary,
		},
	}
	for _, seq := range sequences {
		for i := 0; i < len(seq)-1; i++ {
			assert.True(t, CanTransition(seq[i], seq[i+1]),
				"%s → %s must be legal", seq[i], seq[i+1])
		}
	}
}

func TestCanTransitionRejectsSkips(t *testing.T) {
	assert.False(t, CanTransition(document.StatusPending, document.StatusClassified))
	assert.False(t, CanTransition(document.StatusOcrCompleted, document.StatusFiled))
	assert.False(t, CanTransition(document.StatusFiling, document.StatusCompleted))
}

func TestCanTransitionFailureEdges(t *testing.T) {
	// failed/permanently_failed are reachable from every non-terminal status.
	for from := range documentTransitions {
		assert.True(t, CanTransition(from, document.StatusFailed))
		assert.True(t, CanTransition(from, document.StatusPermanentlyFailed))
	}
	// Terminal statuses never move.
	assert.False(t, CanTransition(document.StatusCompleted, document.StatusFailed))
	assert.False(t, CanTransition(document.StatusPermanentlyFailed, document.StatusPending))
}

func TestSweepResetStatus(t *testing.T) {
	tests := []struct {
		in   document.Status
		out  document.Status
		isOK bool
	}{
		{document.StatusOcrInProgress, document.StatusPending, true},
		{document.StatusClassifying, document.StatusOcrCompleted, true},
		{document.StatusScoringClassification, document.StatusClassified, true},
		{document.StatusSummarizing, document.StatusClassified, true},
		{document.StatusScoringSummary, document.StatusSummarized, true},
		{document.StatusFiling, document.StatusScoredSummary, true},
		{document.StatusPending, "", false},
		{document.StatusCompleted, "", false},
	}
	for _, tt := range tests {
		out, ok := SweepResetStatus(tt.in)
		assert.Equal(t, tt.isOK, ok, "status %s", tt.in)
		assert.Equal(t, tt.out, out, "status %s", tt.in)
	}

	// Every sweep reset must itself be a legal resume point for dispatch.
	for _, progressing := range ProgressingStatuses {
		reset, ok := SweepResetStatus(progressing)
		assert.True(t, ok)
		assert.Contains(t, LaunchableStatuses, reset)
	}
}

func TestResumeStatus(t *testing.T) {
	text, docType, summary := "text", "bill", "summary"

	assert.Equal(t, document.StatusPending,
		ResumeStatus(&DocumentSnapshot{}))
	assert.Equal(t, document.StatusOcrCompleted,
		ResumeStatus(&DocumentSnapshot{ExtractedText: &text}))
	assert.Equal(t, document.StatusClassified,
		ResumeStatus(&DocumentSnapshot{ExtractedText: &text, DocumentType: &docType}))
	assert.Equal(t, document.StatusSummarized,
		ResumeStatus(&DocumentSnapshot{ExtractedText: &text, DocumentType: &docType, Summary: &summary}))
}

func TestFileSweepResetStatus(t *testing.T) {
	reset, ok := FileSweepResetStatus(file.StatusGenerating)
	assert.True(t, ok)
	assert.Equal(t, file.StatusPending, reset)

	reset, ok = FileSweepResetStatus(file.StatusRegenerating)
	assert.True(t, ok)
	assert.Equal(t, file.StatusOutdated, reset)

	_, ok = FileSweepResetStatus(file.StatusGenerated)
	assert.False(t, ok)
}
