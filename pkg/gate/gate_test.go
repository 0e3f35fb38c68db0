package gate

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithLimitsConcurrency(t *testing.T) {
	reg := NewRegistry(map[string]int64{"test": 2})
	ctx := context.Background()

	var current, peak int64
	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := reg.With(ctx, "test", func(ctx context.Context) error {
				n := atomic.AddInt64(&current, 1)
				for {
					p := atomic.LoadInt64(&peak)
					if n <= p || atomic.CompareAndSwapInt64(&peak, p, n) {
						break
					}
				}
				time.Sleep(10 * time.Millisecond)
				atomic.AddInt64(&current, -1)
				return nil
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.LessOrEqual(t, atomic.LoadInt64(&peak), int64(2))
}

func TestWithUnknownGate(t *testing.T) {
	reg := NewRegistry(map[string]int64{LLM: 1})
	err := reg.With(context.Background(), "nonexistent", func(ctx context.Context) error {
		return nil
	})
	require.Error(t, err)
}

func TestAcquireHonorsContext(t *testing.T) {
	reg := NewRegistry(map[string]int64{"test": 1})
	require.NoError(t, reg.Acquire(context.Background(), "test"))
	defer reg.Release("test")

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	err := reg.Acquire(ctx, "test")
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
