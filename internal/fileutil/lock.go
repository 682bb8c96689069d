package fileutil

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gofrs/flock"
)

// ErrLocked is returned when another process holds the output lock past the timeout.
var ErrLocked = errors.New("output is locked by another process")

const lockRetryDelay = 100 * time.Millisecond

// Lock takes an advisory lock on path+".lock", retrying until timeout. The
// returned function releases the lock.
func Lock(ctx context.Context, path string, timeout time.Duration) (func() error, error) {
	lockPath := path + ".lock"
	lock := flock.New(lockPath)

	lockCtx := ctx
	if timeout > 0 {
		var cancel context.CancelFunc
		lockCtx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	ok, err := lock.TryLockContext(lockCtx, lockRetryDelay)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, fmt.Errorf("%w: %s", ErrLocked, lockPath)
		}
		return nil, fmt.Errorf("acquire lock %s: %w", lockPath, err)
	}
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrLocked, lockPath)
	}
	return lock.Unlock, nil
}
