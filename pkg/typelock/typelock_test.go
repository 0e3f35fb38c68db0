package typelock

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/docfold/docfold/pkg/database"
	"github.com/docfold/docfold/test/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func newTestLocker(t *testing.T, waitTimeout time.Duration) *Locker {
	entClient, db := util.SetupTestDatabase(t)
	dbClient := database.NewClientFromEnt(entClient, db)
	return NewLocker(dbClient, waitTimeout, 10*time.Millisecond)
}

func TestKeyIsStableAndPositive(t *testing.T) {
	k1 := Key("bill")
	k2 := Key("bill")
	assert.Equal(t, k1, k2)
	assert.GreaterOrEqual(t, k1, int64(0))
	assert.NotEqual(t, Key("bill"), Key("receipt"))
}

func TestWithTypeLockSerializesSameType(t *testing.T) {
	locker := newTestLocker(t, 5*time.Second)
	ctx := context.Background()

	var current, peak int32
	g := errgroup.Group{}
	for i := 0; i < 4; i++ {
		g.Go(func() error {
			return locker.WithTypeLock(ctx, "bill", func(ctx context.Context) error {
				n := atomic.AddInt32(&current, 1)
				if n > atomic.LoadInt32(&peak) {
					atomic.StoreInt32(&peak, n)
				}
				time.Sleep(30 * time.Millisecond)
				atomic.AddInt32(&current, -1)
				return nil
			})
		})
	}
	require.NoError(t, g.Wait())
	assert.Equal(t, int32(1), atomic.LoadInt32(&peak),
		"two holders of the same type lock must never overlap")
}

func TestWithTypeLockAllowsDifferentTypes(t *testing.T) {
	locker := newTestLocker(t, 5*time.Second)
	ctx := context.Background()

	firstHeld := make(chan struct{})
	release := make(chan struct{})

	g := errgroup.Group{}
	g.Go(func() error {
		return locker.WithTypeLock(ctx, "bill", func(ctx context.Context) error {
			close(firstHeld)
			<-release
			return nil
		})
	})

	<-firstHeld
	// A different type must acquire immediately while "bill" is held.
	done := make(chan error, 1)
	go func() {
		done <- locker.WithTypeLock(ctx, "receipt", func(ctx context.Context) error {
			return nil
		})
	}()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("different document type blocked on an unrelated lock")
	}

	close(release)
	require.NoError(t, g.Wait())
}

func TestWithTypeLockTimesOut(t *testing.T) {
	locker := newTestLocker(t, 100*time.Millisecond)
	ctx := context.Background()

	held := make(chan struct{})
	release := make(chan struct{})
	g := errgroup.Group{}
	g.Go(func() error {
		return locker.WithTypeLock(ctx, "bill", func(ctx context.Context) error {
			close(held)
			<-release
			return nil
		})
	})

	<-held
	err := locker.WithTypeLock(ctx, "bill", func(ctx context.Context) error {
		t.Fatal("body must not run after lock timeout")
		return nil
	})
	assert.ErrorIs(t, err, ErrLockTimeout)

	close(release)
	require.NoError(t, g.Wait())
}
