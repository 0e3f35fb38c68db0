// Package gate provides named global concurrency limits for the pipeline's
// external resources. Each gate is a counting semaphore with FIFO waiters;
// a cancelled waiter never consumes a permit.
package gate

import (
	"context"
	"fmt"

	"golang.org/x/sync/semaphore"
)

// Gate names recognized by the pipeline.
const (
	OCR     = "ocr"
	LLM     = "llm"
	FileGen = "file-gen"
)

// Registry holds the process-global named gates. Configured once at startup;
// safe for concurrent use.
type Registry struct {
	gates map[string]*semaphore.Weighted
}

// NewRegistry creates a registry with the given permit counts per gate name.
func NewRegistry(limits map[string]int64) *Registry {
	gates := make(map[string]*semaphore.Weighted, len(limits))
	for name, n := range limits {
		gates[name] = semaphore.NewWeighted(n)
	}
	return &Registry{gates: gates}
}

// Acquire blocks until a permit for the named gate is free or ctx is
// cancelled. Waiters are served in arrival order.
func (r *Registry) Acquire(ctx context.Context, name string) error {
	g, ok := r.gates[name]
	if !ok {
		return fmt.Errorf("unknown gate %q", name)
	}
	if err := g.Acquire(ctx, 1); err != nil {
		return fmt.Errorf("acquiring gate %q: %w", name, err)
	}
	return nil
}

// Release returns a permit to the named gate. Must pair with a successful
// Acquire.
func (r *Registry) Release(name string) {
	if g, ok := r.gates[name]; ok {
		g.Release(1)
	}
}

// With runs fn while holding a permit of the named gate.
func (r *Registry) With(ctx context.Context, name string, fn func(context.Context) error) error {
	if err := r.Acquire(ctx, name); err != nil {
		return err
	}
	defer r.Release(name)
	return fn(ctx)
}
