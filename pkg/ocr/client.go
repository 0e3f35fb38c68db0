// Package ocr provides the HTTP client for the external OCR provider. The
// provider is idempotent per call: extracting the same folder twice returns
// the same text.
package ocr

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// ExtractResult is the OCR provider's response.
type ExtractResult struct {
	FullText   string  `json:"full_text"`
	Confidence float64 `json:"confidence"`
}

// Client is the interface the OCR stage calls; tests substitute a scripted
// client.
type Client interface {
	// Extract runs text extraction over every page image in folder.
	Extract(ctx context.Context, folder string) (*ExtractResult, error)
}

// StatusError reports a non-2xx response from the OCR service. The stage
// library treats 5xx as transient and 4xx as permanent.
type StatusError struct {
	StatusCode int
	Body       string
}

// Error implements the error interface.
func (e *StatusError) Error() string {
	return fmt.Sprintf("OCR service returned HTTP %d: %s", e.StatusCode, e.Body)
}

// Retryable reports whether the failure is worth retrying.
func (e *StatusError) Retryable() bool {
	return e.StatusCode >= 500
}

// HTTPClient implements Client against the OCR service's REST API.
type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewHTTPClient creates an OCR client for the given base URL.
func NewHTTPClient(baseURL string) *HTTPClient {
	return &HTTPClient{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 120 * time.Second},
	}
}

type extractRequest struct {
	FolderPath string `json:"folder_path"`
}

// Extract implements Client.
func (c *HTTPClient) Extract(ctx context.Context, folder string) (*ExtractResult, error) {
	payload, err := json.Marshal(extractRequest{FolderPath: folder})
	if err != nil {
		return nil, fmt.Errorf("marshal extract request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/v1/extract", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("create extract request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("extract %s: %w", folder, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read extract response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &StatusError{StatusCode: resp.StatusCode, Body: truncate(string(body), 200)}
	}

	var result ExtractResult
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("decode extract response: %w", err)
	}
	return &result, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "…"
}
