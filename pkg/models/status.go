// Package models holds the pipeline's domain types: the document status
// machine, typed LLM response records, and stage error kinds.
package models

import (
	"github.com/docfold/docfold/ent/document"
	"github.com/docfold/docfold/ent/file"
)

// The document status machine. After "classified" the flow fans out into two
// branches — classification scoring and summarization — that run
// concurrently; the single status column records the latest transition, so
// the legal edges are the product of the two branch machines. The relation is
// encoded once here and asserted by every compare-and-set status write.
var documentTransitions = map[document.Status][]document.Status{
	document.StatusPending:       {document.StatusOcrInProgress},
	document.StatusOcrInProgress: {document.StatusOcrCompleted},
	document.StatusOcrCompleted:  {document.StatusClassifying},
	document.StatusClassifying:   {document.StatusClassified},
	document.StatusClassified: {
		document.StatusScoringClassification,
		document.StatusSummarizing,
	},
	// Branch interleavings: either branch may fire while the other is
	// mid-flight and the column records only the latest event, so each
	// branch status accepts the other branch's start and completion events.
	document.StatusScoringClassification: {
		document.StatusScoredClassification,
		document.StatusSummarizing,
		document.StatusSummarized,
	},
	document.StatusScoredClassification: {
		document.StatusSummarizing,
		document.StatusSummarized,
		document.StatusScoringSummary,
	},
	document.StatusSummarizing: {
		document.StatusSummarized,
		document.StatusScoringClassification,
		document.StatusScoredClassification,
	},
	document.StatusSummarized: {
		document.StatusScoringClassification,
		document.StatusScoredClassification,
		document.StatusScoringSummary,
	},
	document.StatusScoringSummary: {document.StatusScoredSummary},
	document.StatusScoredSummary:  {document.StatusFiling},
	document.StatusFiling:         {document.StatusFiled},
	document.StatusFiled:          {document.StatusCompleted},
	document.StatusFailed: {
		document.StatusPending,
		document.StatusOcrCompleted,
		document.StatusClassified,
		document.StatusSummarized,
	},
}

// CanTransition reports whether from→to is a legal DAG edge. Transitions to
// "failed" (retryable error) and "permanently_failed" are legal from every
// non-terminal status.
func CanTransition(from, to document.Status) bool {
	if IsTerminalStatus(from) {
		return false
	}
	if to == document.StatusFailed || to == document.StatusPermanentlyFailed {
		return true
	}
	for _, next := range documentTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// IsTerminalStatus reports whether a document status is terminal.
func IsTerminalStatus(s document.Status) bool {
	return s == document.StatusCompleted || s == document.StatusPermanentlyFailed
}

// ProgressingStatuses are the statuses a live stage holds while working. A
// row stuck in one of these past the stuck threshold is swept back to its
// branch entry status (or permanently failed once retries are exhausted).
var ProgressingStatuses = []document.Status{
	document.StatusOcrInProgress,
	document.StatusClassifying,
	document.StatusScoringClassification,
	document.StatusSummarizing,
	document.StatusScoringSummary,
	document.StatusFiling,
}

// SweepResetStatus maps a progressing status to the non-progressing status a
// stuck row is reset to for retry.
func SweepResetStatus(s document.Status) (document.Status, bool) {
	switch s {
	case document.StatusOcrInProgress:
		return document.StatusPending, true
	case document.StatusClassifying:
		return document.StatusOcrCompleted, true
	case document.StatusScoringClassification, document.StatusSummarizing:
		return document.StatusClassified, true
	case document.StatusScoringSummary:
		return document.StatusSummarized, true
	case document.StatusFiling:
		return document.StatusScoredSummary, true
	default:
		return "", false
	}
}

// LaunchableStatuses are the resumable, non-progressing, non-terminal
// statuses the orchestrator dispatches Document Flows for.
var LaunchableStatuses = []document.Status{
	document.StatusPending,
	document.StatusOcrCompleted,
	document.StatusClassified,
	document.StatusScoredClassification,
	document.StatusSummarized,
	document.StatusScoredSummary,
	document.StatusFiled,
}

// ResumeStatus derives the status a "failed" row should be reset to for
// redispatch, from the outputs already persisted on the row. Conservative:
// re-running a stage whose output exists is idempotent.
func ResumeStatus(d *DocumentSnapshot) document.Status {
	switch {
	case d.ExtractedText == nil:
		return document.StatusPending
	case d.DocumentType == nil:
		return document.StatusOcrCompleted
	case d.Summary == nil:
		return document.StatusClassified
	default:
		return document.StatusSummarized
	}
}

// DocumentSnapshot is the subset of document fields ResumeStatus inspects.
type DocumentSnapshot struct {
	ExtractedText *string
	DocumentType  *string
	Summary       *string
}

// StatusRank orders statuses along the pipeline for "already past this
// stage" checks in resumable flows. Branch statuses share the post-classify
// band; comparisons across the two branches are not meaningful and callers
// only compare against their own stage's entry/exit.
func StatusRank(s document.Status) int {
	switch s {
	case document.StatusPending:
		return 0
	case document.StatusOcrInProgress:
		return 1
	case document.StatusOcrCompleted:
		return 2
	case document.StatusClassifying:
		return 3
	case document.StatusClassified:
		return 4
	case document.StatusScoringClassification, document.StatusSummarizing:
		return 5
	case document.StatusScoredClassification, document.StatusSummarized:
		return 6
	case document.StatusScoringSummary:
		return 7
	case document.StatusScoredSummary:
		return 8
	case document.StatusFiling:
		return 9
	case document.StatusFiled:
		return 10
	case document.StatusCompleted:
		return 11
	default: // failed / permanently_failed carry no pipeline position
		return -1
	}
}

// File statuses the orchestrator dispatches File Flows for.
var FileLaunchableStatuses = []file.Status{
	file.StatusPending,
	file.StatusOutdated,
}

// FileProgressingStatuses are swept like document progressing statuses.
var FileProgressingStatuses = []file.Status{
	file.StatusGenerating,
	file.StatusRegenerating,
}

// FileSweepResetStatus maps a stuck file status back to its launchable
// predecessor.
func FileSweepResetStatus(s file.Status) (file.Status, bool) {
	switch s {
	case file.StatusGenerating:
		return file.StatusPending, true
	case file.StatusRegenerating:
		return file.StatusOutdated, true
	default:
		return "", false
	}
}
