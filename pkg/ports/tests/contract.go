// Package tests holds reusable contract suites for the ports implementations.
package tests

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/aretw0/jsquery/pkg/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RenderCacheContractTest verifies that an adapter complies with ports.RenderCache.
func RenderCacheContractTest(t *testing.T, cache ports.RenderCache) {
	t.Helper()
	ctx := context.Background()

	t.Run("Get_NotFound", func(t *testing.T) {
		_, err := cache.Get(ctx, "missing")
		assert.ErrorIs(t, err, ports.ErrNotFound)
	})

	t.Run("Set_Get", func(t *testing.T) {
		require.NoError(t, cache.Set(ctx, "k1", "$('#a').show()"))
		code, err := cache.Get(ctx, "k1")
		require.NoError(t, err)
		assert.Equal(t, "$('#a').show()", code)
	})

	t.Run("Set_Replaces", func(t *testing.T) {
		require.NoError(t, cache.Set(ctx, "k2", "a"))
		require.NoError(t, cache.Set(ctx, "k2", "b"))
		code, err := cache.Get(ctx, "k2")
		require.NoError(t, err)
		assert.Equal(t, "b", code)
	})

	t.Run("Empty_Code", func(t *testing.T) {
		require.NoError(t, cache.Set(ctx, "k3", ""))
		code, err := cache.Get(ctx, "k3")
		require.NoError(t, err)
		assert.Empty(t, code)
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, cache.Set(ctx, "k4", "x"))
		require.NoError(t, cache.Delete(ctx, "k4"))
		_, err := cache.Get(ctx, "k4")
		assert.ErrorIs(t, err, ports.ErrNotFound)
		assert.NoError(t, cache.Delete(ctx, "k4"))
	})
}

// DistributedLockerContractTest verifies that an adapter complies with ports.DistributedLocker.
func DistributedLockerContractTest(t *testing.T, locker ports.DistributedLocker) {
	t.Helper()
	ctx := context.Background()

	t.Run("Lock_Unlock", func(t *testing.T) {
		unlock, err := locker.Lock(ctx, "a", time.Second)
		require.NoError(t, err)
		require.NoError(t, unlock(ctx))

		unlock, err = locker.Lock(ctx, "a", time.Second)
		require.NoError(t, err)
		require.NoError(t, unlock(ctx))
	})

	t.Run("Held_Lock_Blocks", func(t *testing.T) {
		unlock, err := locker.Lock(ctx, "b", 5*time.Second)
		require.NoError(t, err)
		defer func() { _ = unlock(ctx) }()

		short, cancel := context.WithTimeout(ctx, 300*time.Millisecond)
		defer cancel()
		_, err = locker.Lock(short, "b", time.Second)
		assert.ErrorIs(t, err, context.DeadlineExceeded)

		other, err := locker.Lock(ctx, "c", time.Second)
		require.NoError(t, err)
		require.NoError(t, other(ctx))
	})

	t.Run("Mutual_Exclusion", func(t *testing.T) {
		var (
			wg      sync.WaitGroup
			holders atomic.Int32
			overlap atomic.Bool
		)
		for i := 0; i < 4; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				unlock, err := locker.Lock(ctx, "d", 5*time.Second)
				if !assert.NoError(t, err) {
					return
				}
				if holders.Add(1) > 1 {
					overlap.Store(true)
				}
				time.Sleep(20 * time.Millisecond)
				holders.Add(-1)
				assert.NoError(t, unlock(ctx))
			}()
		}
		wg.Wait()
		assert.False(t, overlap.Load(), "lock was held twice at once")
	})
}
