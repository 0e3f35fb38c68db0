package models

// Typed records for the per-stage LLM response schemas. Fields the pipeline
// depends on are typed; everything else stays in free-form maps persisted as
// JSON columns.

// ClassificationResult is the classifier stage response.
type ClassificationResult struct {
	DocumentType string   `json:"document_type"`
	Confidence   float64  `json:"confidence"`
	Reasoning    string   `json:"reasoning"`
	Tags         []string `json:"tags"`
}

// SummaryResult is the summarizer stage response.
type SummaryResult struct {
	Summary        string                 `json:"summary"`
	StructuredData map[string]interface{} `json:"structured_data"`
}

// ScoreResult is the response of both scoring stages.
type ScoreResult struct {
	Score           float64 `json:"score"`
	SuggestedPrompt string  `json:"suggested_prompt"`
}

// SeriesDetection is the series-detector stage response.
type SeriesDetection struct {
	Entity      string                 `json:"entity"`
	SeriesType  string                 `json:"series_type"`
	Frequency   string                 `json:"frequency"`
	Title       string                 `json:"title"`
	Description string                 `json:"description"`
	Metadata    map[string]interface{} `json:"metadata"`
}

// FileSummaryResult is the file-summarizer stage response.
type FileSummaryResult struct {
	Summary  string                 `json:"summary"`
	Metadata map[string]interface{} `json:"metadata"`
}
