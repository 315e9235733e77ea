package ports

import (
	"context"
	"time"
)

// UnlockFunc releases a lease taken by a Locker.
type UnlockFunc func(ctx context.Context) error

// Locker guards a target address against concurrent drivers sharing the same
// exclusion store (e.g. several hosts on one Redis).
type Locker interface {
	// Lock takes the lease for key or fails immediately if another driver
	// holds it. The lease is kept alive until the returned UnlockFunc is called.
	Lock(ctx context.Context, key string, ttl time.Duration) (UnlockFunc, error)
}
