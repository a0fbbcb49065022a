package lock

import (
	"context"
	"time"
)

// Locker is an advisory lock with expiry.
type Locker interface {
	// Acquire attempts to take the lock for key. It returns false without
	// error when the lock is currently held by someone else. The lock
	// expires on its own after ttl.
	Acquire(ctx context.Context, key string, ttl time.Duration) (bool, error)

	// Release drops the lock for key. Releasing an expired or unheld lock
	// is not an error.
	Release(ctx context.Context, key string) error
}
