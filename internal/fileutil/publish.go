package fileutil

import (
	"context"
	"fmt"
	"os"
	"time"
)

// PublishOptions controls how Publish replaces an output file.
type PublishOptions struct {
	Mode        os.FileMode
	Lock        bool
	LockTimeout time.Duration
}

// Publish atomically replaces path with data, holding the output lock for
// the duration of the write when opts.Lock is set.
func Publish(ctx context.Context, path string, data []byte, opts PublishOptions) error {
	if opts.Lock {
		release, err := Lock(ctx, path, opts.LockTimeout)
		if err != nil {
			return err
		}
		defer func() { _ = release() }()
	}
	mode := opts.Mode
	if mode == 0 {
		mode = 0o644
	}
	if err := WriteFileAtomic(path, data, mode); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}
