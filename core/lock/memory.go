package lock

import (
	"context"
	"sync"
	"time"
)

// MemoryLocker is an in-process TTL lock table. Expired entries are
// reclaimed lazily on the next Acquire for the same key, so no janitor
// goroutine is needed.
type MemoryLocker struct {
	mu    sync.Mutex
	held  map[string]time.Time
	clock func() time.Time
}

// NewMemoryLocker creates an empty lock table.
func NewMemoryLocker() *MemoryLocker {
	return &MemoryLocker{
		held:  make(map[string]time.Time),
		clock: time.Now,
	}
}

// Acquire takes the lock unless a live entry exists for key.
func (l *MemoryLocker) Acquire(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.clock()
	if deadline, ok := l.held[key]; ok && now.Before(deadline) {
		return false, nil
	}

	l.held[key] = now.Add(ttl)
	return true, nil
}

// Release drops the entry for key.
func (l *MemoryLocker) Release(ctx context.Context, key string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	delete(l.held, key)
	return nil
}
