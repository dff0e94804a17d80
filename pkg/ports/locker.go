package ports

import (
	"context"
	"time"
)

// UnlockFunc releases a lock acquired with DistributedLocker.Lock.
type UnlockFunc func(ctx context.Context) error

// DistributedLocker serializes work on a key across instances (replicas).
type DistributedLocker interface {
	// Lock blocks until the lock for key is acquired or ctx is done.
	// The lock expires after ttl if it is never released.
	// The returned UnlockFunc must be called to release the lock.
	Lock(ctx context.Context, key string, ttl time.Duration) (UnlockFunc, error)
}
