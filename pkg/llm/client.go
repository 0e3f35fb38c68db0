// Package llm wraps the gRPC connection to the LLM sidecar service. The
// client is shared read-only across all pipeline tasks and is safe for
// concurrent use.
package llm

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	pb "github.com/docfold/docfold/proto"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// Client is the interface the stage library calls. Implementations must be
// safe for concurrent use; tests substitute a scripted client.
type Client interface {
	// Complete sends one prompt + input payload and returns the model's
	// response body (stages parse it as JSON).
	Complete(ctx context.Context, prompt, input string) (string, error)

	// Close releases the underlying connection.
	Close() error
}

// GRPCClient implements Client over the LLM sidecar's gRPC API.
type GRPCClient struct {
	conn        *grpc.ClientConn
	client      pb.LLMServiceClient
	model       string
	temperature *float32
	maxTokens   *int32
}

// NewGRPCClient creates a new LLM client. Model parameters are read from
// the environment (LLM_MODEL, LLM_TEMPERATURE, LLM_MAX_TOKENS).
// grpc.NewClient dials lazily; the connection is established on first RPC.
func NewGRPCClient(addr string) (*GRPCClient, error) {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to LLM service: %w", err)
	}

	model := os.Getenv("LLM_MODEL")
	if model == "" {
		model = "gemini-2.0-flash"
	}

	var temperature *float32
	if tempStr := os.Getenv("LLM_TEMPERATURE"); tempStr != "" {
		if temp, err := strconv.ParseFloat(tempStr, 32); err == nil {
			temp32 := float32(temp)
			temperature = &temp32
		}
	}

	var maxTokens *int32
	if maxStr := os.Getenv("LLM_MAX_TOKENS"); maxStr != "" {
		if max, err := strconv.ParseInt(maxStr, 10, 32); err == nil {
			max32 := int32(max)
			maxTokens = &max32
		}
	}

	slog.Info("LLM client configured", "model", model)

	return &GRPCClient{
		conn:        conn,
		client:      pb.NewLLMServiceClient(conn),
		model:       model,
		temperature: temperature,
		maxTokens:   maxTokens,
	}, nil
}

// Complete implements Client.
func (c *GRPCClient) Complete(ctx context.Context, prompt, input string) (string, error) {
	resp, err := c.client.Complete(ctx, &pb.CompletionRequest{
		Prompt:      prompt,
		Input:       input,
		Model:       c.model,
		Temperature: c.temperature,
		MaxTokens:   c.maxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("LLM Complete: %w", err)
	}
	return resp.Content, nil
}

// Close closes the gRPC connection.
func (c *GRPCClient) Close() error {
	return c.conn.Close()
}
