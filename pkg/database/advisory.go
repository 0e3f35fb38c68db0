package database

import (
	"context"
	stdsql "database/sql"
	"fmt"
	"sync"
)

// AdvisoryLock is a held PostgreSQL session-level advisory lock. The lock is
// pinned to a dedicated pooled connection so acquire and release happen on
// the same session; if the connection drops, PostgreSQL releases the lock.
type AdvisoryLock struct {
	mu   sync.Mutex
	conn *stdsql.Conn
	key  int64
}

// TryAdvisoryLock attempts to acquire the advisory lock for key without
// blocking. Returns (nil, false, nil) when another session holds the lock.
func (c *Client) TryAdvisoryLock(ctx context.Context, key int64) (*AdvisoryLock, bool, error) {
	conn, err := c.db.Conn(ctx)
	if err != nil {
		return nil, false, fmt.Errorf("failed to obtain connection for advisory lock: %w", err)
	}

	var acquired bool
	if err := conn.QueryRowContext(ctx, "SELECT pg_try_advisory_lock($1)", key).Scan(&acquired); err != nil {
		_ = conn.Close()
		return nil, false, fmt.Errorf("pg_try_advisory_lock(%d): %w", key, err)
	}
	if !acquired {
		_ = conn.Close()
		return nil, false, nil
	}

	return &AdvisoryLock{conn: conn, key: key}, true, nil
}

// Release unlocks the advisory lock and returns its connection to the pool.
// Idempotent. The context should not be the (possibly cancelled) work
// context — releasing must succeed even after cancellation.
func (l *AdvisoryLock) Release(ctx context.Context) error {
	l.mu.Lock()
	conn := l.conn
	l.conn = nil
	l.mu.Unlock()
	if conn == nil {
		return nil
	}
	defer func() { _ = conn.Close() }()

	var released bool
	if err := conn.QueryRowContext(ctx, "SELECT pg_advisory_unlock($1)", l.key).Scan(&released); err != nil {
		// Closing the connection tears down the session, which releases the
		// lock server-side anyway.
		return fmt.Errorf("pg_advisory_unlock(%d): %w", l.key, err)
	}
	if !released {
		return fmt.Errorf("pg_advisory_unlock(%d): lock was not held by this session", l.key)
	}
	return nil
}
