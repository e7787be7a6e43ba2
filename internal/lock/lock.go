// Package lock serializes fmcat runs that target the same catalog tree.
package lock

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"

	"github.com/sleuth-io/fmcat/internal/cache"
)

// ErrLocked is returned when another process holds the lock for a destination
var ErrLocked = errors.New("destination is in use by another fmcat process")

// retryDelay is how often a waiting Acquire polls the lock
const retryDelay = 100 * time.Millisecond

// Lock is an advisory cross-process lock on a destination tree
type Lock struct {
	fileLock *flock.Flock
}

// Acquire takes the lock for destRoot. With wait == 0 it fails immediately
// with ErrLocked when the lock is held; otherwise it retries until wait
// elapses or ctx is done.
func Acquire(ctx context.Context, destRoot string, wait time.Duration) (*Lock, error) {
	lockPath, err := cache.GetLockPath(destRoot)
	if err != nil {
		return nil, fmt.Errorf("failed to get lock path: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(lockPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create lock directory: %w", err)
	}

	fileLock := flock.New(lockPath)

	var locked bool
	if wait <= 0 {
		locked, err = fileLock.TryLock()
	} else {
		waitCtx, cancel := context.WithTimeout(ctx, wait)
		defer cancel()
		locked, err = fileLock.TryLockContext(waitCtx, retryDelay)
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, ErrLocked
		}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to acquire file lock: %w", err)
	}
	if !locked {
		return nil, ErrLocked
	}

	return &Lock{fileLock: fileLock}, nil
}

// Release unlocks. The lock file itself is left in the cache directory.
func (l *Lock) Release() error {
	if l == nil || l.fileLock == nil {
		return nil
	}
	return l.fileLock.Unlock()
}
