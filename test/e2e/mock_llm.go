package e2e

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"
)

// LLMScriptEntry defines a single scripted LLM response.
type LLMScriptEntry struct {
	Text  string        // Response body returned from Complete()
	Error error         // Returned instead of a response
	Delay time.Duration // Simulated model latency, interruptible by ctx
}

// Prompt kinds the router recognizes. Matching is by distinctive substrings
// of the built-in prompt texts, so scripts survive prompt evolution only if
// evolved prompts keep their opening line; evolution tests route the
// replacement explicitly.
const (
	KindClassifier       = "classifier"
	KindSummarizer       = "summarizer"
	KindSeriesDetector   = "series_detector"
	KindFileSummarizer   = "file_summarizer"
	KindClassifierScorer = "classifier_scorer"
	KindSummaryScorer    = "summary_scorer"
)

var kindMatchers = []struct {
	kind   string
	needle string
}{
	{KindClassifierScorer, "evaluate a document-classification prompt"},
	{KindSummaryScorer, "evaluate a document-summarization prompt"},
	{KindClassifier, "document classifier"},
	{KindSummarizer, "document summarizer"},
	{KindSeriesDetector, "detect recurring document series"},
	{KindFileSummarizer, "file of related documents"},
	{KindFileSummarizer, "summarize a recurring document series"},
}

// CapturedCall records one Complete invocation for assertions. Start and
// End bracket the call, including any scripted delay, so tests can check
// whether two calls overlapped in time.
type CapturedCall struct {
	Kind   string
	Prompt string
	Input  string
	Start  time.Time
	End    time.Time
}

// ScriptedLLMClient implements llm.Client with per-kind scripts: each
// prompt kind has a queue of one-shot entries consumed in order, then an
// optional repeating default. Safe for concurrent use — the fan-out stages
// call it from multiple goroutines.
type ScriptedLLMClient struct {
	mu       sync.Mutex
	queues   map[string][]LLMScriptEntry
	defaults map[string]LLMScriptEntry
	captured []CapturedCall
}

// NewScriptedLLMClient creates an empty scripted client.
func NewScriptedLLMClient() *ScriptedLLMClient {
	return &ScriptedLLMClient{
		queues:   make(map[string][]LLMScriptEntry),
		defaults: make(map[string]LLMScriptEntry),
	}
}

// Script queues a one-shot response for a prompt kind.
func (c *ScriptedLLMClient) Script(kind string, entry LLMScriptEntry) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.queues[kind] = append(c.queues[kind], entry)
}

// Default sets the repeating response used once a kind's queue is drained.
func (c *ScriptedLLMClient) Default(kind string, entry LLMScriptEntry) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.defaults[kind] = entry
}

// Complete implements llm.Client.
func (c *ScriptedLLMClient) Complete(ctx context.Context, prompt, input string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	kind := classifyPrompt(prompt)

	c.mu.Lock()
	c.captured = append(c.captured, CapturedCall{Kind: kind, Prompt: prompt, Input: input, Start: time.Now()})
	idx := len(c.captured) - 1
	queue := c.queues[kind]
	var entry LLMScriptEntry
	switch {
	case len(queue) > 0:
		entry = queue[0]
		c.queues[kind] = queue[1:]
	default:
		var ok bool
		entry, ok = c.defaults[kind]
		if !ok {
			c.mu.Unlock()
			return "", fmt.Errorf("no scripted response for prompt kind %q", kind)
		}
	}
	c.mu.Unlock()

	var err error
	if entry.Delay > 0 {
		select {
		case <-time.After(entry.Delay):
		case <-ctx.Done():
			err = ctx.Err()
		}
	}

	c.mu.Lock()
	c.captured[idx].End = time.Now()
	c.mu.Unlock()

	if err != nil {
		return "", err
	}
	if entry.Error != nil {
		return "", entry.Error
	}
	return entry.Text, nil
}

// Close implements llm.Client.
func (c *ScriptedLLMClient) Close() error { return nil }

// Calls returns all captured calls of a kind, or all calls for kind "".
func (c *ScriptedLLMClient) Calls(kind string) []CapturedCall {
	c.mu.Lock()
	defer c.mu.Unlock()
	var out []CapturedCall
	for _, call := range c.captured {
		if kind == "" || call.Kind == kind {
			out = append(out, call)
		}
	}
	return out
}

func classifyPrompt(prompt string) string {
	for _, m := range kindMatchers {
		if strings.Contains(prompt, m.needle) {
			return m.kind
		}
	}
	return "unknown"
}
