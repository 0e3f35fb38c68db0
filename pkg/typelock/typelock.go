// Package typelock serializes work per document type through the state
// store's advisory-lock primitive. Because the lock lives in PostgreSQL
// rather than process memory, mutual exclusion survives restarts and holds
// across processes sharing the database.
package typelock

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/docfold/docfold/pkg/database"
)

// ErrLockTimeout is returned when the lock is not acquired within the
// configured wait timeout. Callers treat it as transient and retry on a
// later dispatch.
var ErrLockTimeout = errors.New("type lock wait timeout")

// Locker acquires per-document-type advisory locks.
type Locker struct {
	db           *database.Client
	waitTimeout  time.Duration
	pollInterval time.Duration
}

// NewLocker creates a Locker. waitTimeout bounds the total wait;
// pollInterval is the try-acquire cadence.
func NewLocker(db *database.Client, waitTimeout, pollInterval time.Duration) *Locker {
	return &Locker{
		db:           db,
		waitTimeout:  waitTimeout,
		pollInterval: pollInterval,
	}
}

// Key hashes a document type into the 63-bit advisory-lock keyspace.
func Key(docType string) int64 {
	return int64(xxhash.Sum64String("doctype:"+docType) & (1<<63 - 1))
}

// WithTypeLock runs fn while holding the advisory lock for docType. Only one
// caller system-wide executes fn for a given type at a time; others poll
// until the lock frees, the wait timeout elapses (ErrLockTimeout), or ctx is
// cancelled. The lock is released on every exit path, including panics.
func (l *Locker) WithTypeLock(ctx context.Context, docType string, fn func(context.Context) error) error {
	key := Key(docType)
	deadline := time.Now().Add(l.waitTimeout)

	for {
		lock, acquired, err := l.db.TryAdvisoryLock(ctx, key)
		if err != nil {
			return fmt.Errorf("type lock %q: %w", docType, err)
		}
		if acquired {
			defer func() {
				// Background context: release must succeed even when the
				// work context was cancelled mid-body.
				releaseCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				_ = lock.Release(releaseCtx)
			}()
			return fn(ctx)
		}

		if time.Now().After(deadline) {
			return fmt.Errorf("type lock %q: %w", docType, ErrLockTimeout)
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(l.pollInterval):
		}
	}
}
