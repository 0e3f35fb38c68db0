package config

import "time"

// PipelineConfig contains orchestrator and stage tuning. These values
// control how documents and files are polled, dispatched, throttled, and
// recovered.
type PipelineConfig struct {
	// PollInterval is the orchestrator tick interval.
	PollInterval time.Duration `yaml:"poll_interval"`

	// DocumentBatchLimit caps how many launchable documents one tick picks up.
	DocumentBatchLimit int `yaml:"document_batch_limit"`

	// FileBatchLimit caps how many pending/outdated files one tick picks up.
	FileBatchLimit int `yaml:"file_batch_limit"`

	// StuckThreshold is how long a row may sit in a progressing status
	// without an updated_at write before the sweep recovers it.
	StuckThreshold time.Duration `yaml:"stuck_threshold"`

	// MaxRetries is the default retry ceiling for new rows.
	MaxRetries int `yaml:"max_retries"`

	// Gate capacities (named global concurrency limits).
	OCRConcurrency     int `yaml:"ocr_concurrency"`
	LLMConcurrency     int `yaml:"llm_concurrency"`
	FileGenConcurrency int `yaml:"file_gen_concurrency"`

	// LockWaitTimeout bounds waiting for the per-document-type lock.
	LockWaitTimeout time.Duration `yaml:"lock_wait_timeout"`

	// LockPollInterval is the advisory-lock retry cadence.
	LockPollInterval time.Duration `yaml:"lock_poll_interval"`

	// GracefulShutdownTimeout is the max wait for in-flight flows on stop.
	GracefulShutdownTimeout time.Duration `yaml:"graceful_shutdown_timeout"`

	// MinDocumentsForScoring: classification scoring is skipped until this
	// many documents of the type exist.
	MinDocumentsForScoring int `yaml:"min_documents_for_scoring"`

	// ScoreImprovementMargin: a new prompt version requires
	// new_score > active_score + margin.
	ScoreImprovementMargin float64 `yaml:"score_improvement_margin"`

	// PopularTagLimit is the top-N tags fed to the classifier prompt.
	PopularTagLimit int `yaml:"popular_tag_limit"`
}

// DefaultPipelineConfig returns the built-in pipeline defaults.
func DefaultPipelineConfig() *PipelineConfig {
	return &PipelineConfig{
		PollInterval:            10 * time.Second,
		DocumentBatchLimit:      50,
		FileBatchLimit:          20,
		StuckThreshold:          10 * time.Minute,
		MaxRetries:              3,
		OCRConcurrency:          3,
		LLMConcurrency:          5,
		FileGenConcurrency:      2,
		LockWaitTimeout:         300 * time.Second,
		LockPollInterval:        1 * time.Second,
		GracefulShutdownTimeout: 60 * time.Second,
		MinDocumentsForScoring:  5,
		ScoreImprovementMargin:  0.05,
		PopularTagLimit:         20,
	}
}
