package config

// SeedPrompt describes a built-in prompt inserted at startup when its
// (prompt_type, document_type) scope has no active version yet.
type SeedPrompt struct {
	PromptType          string
	DocumentType        *string // nil = generic scope
	Text                string
	CanEvolve           bool
	ScoreCeiling        *float64
	RegeneratesOnUpdate bool
}

// SeedPrompts returns the built-in prompt set. Evolving prompts are replaced
// over time by the scoring stages; static prompts never grow new versions.
func SeedPrompts() []SeedPrompt {
	ceiling := 0.95
	return []SeedPrompt{
		{
			PromptType: "classifier",
			Text: `You are a document classifier. Given the extracted text of a scanned
document, the list of known document types, and the most popular tags,
classify the document.

Respond with a single JSON object:
{"document_type": "<snake_case type>", "confidence": <0..1>,
 "reasoning": "<one sentence>", "tags": ["<tag>", ...]}

Prefer an existing document type when one fits. Tags are short lowercase
phrases describing vendor, topic, and purpose.`,
			CanEvolve:    true,
			ScoreCeiling: &ceiling,
		},
		{
			PromptType: "summarizer",
			Text: `You are a document summarizer. Given the extracted text and
classification of a document, produce a one-to-two sentence summary and the
key structured facts.

Respond with a single JSON object:
{"summary": "<text>", "structured_data": {"<key>": <value>, ...}}

For bills include vendor, amount, and due date; for statements include
institution and period; otherwise pick the fields a human filer would want.`,
			CanEvolve:    true,
			ScoreCeiling: &ceiling,
		},
		{
			PromptType: "series_detector",
			Text: `You detect recurring document series. Given a document's summary,
type, structured data, and tags, identify the recurring group it belongs to.

Respond with a single JSON object:
{"entity": "<canonical issuing entity>", "series_type": "<snake_case kind>",
 "frequency": "monthly|quarterly|annual|irregular", "title": "<human title>",
 "description": "<one sentence>", "metadata": {}}

The entity must be the canonical organization name, stable across documents
("Pacific Gas & Electric", not "PG&E" or "PGE").`,
			CanEvolve: false,
		},
		{
			PromptType: "file_summarizer",
			Text: `You summarize a file of related documents. Given the file's tags and
the summaries of its member documents (newest first), produce an aggregate
overview.

Respond with a single JSON object:
{"summary": "<text>", "metadata": {"document_count": <n>, ...}}`,
			CanEvolve: false,
		},
		{
			PromptType: "series_summarizer",
			Text: `You summarize a recurring document series. Given the series record and
its member documents (newest first), describe the series and call out
trends, anomalies, and the latest values.

Respond with a single JSON object:
{"summary": "<text>", "metadata": {"trend": "<text>", ...}}`,
			CanEvolve:           true,
			RegeneratesOnUpdate: true,
		},
	}
}
