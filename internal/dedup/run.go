package dedup

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"m3umerge/internal/fileutil"
	"m3umerge/internal/logging"
)

var (
	// ErrInputNotFound is returned when the input path does not exist.
	ErrInputNotFound = errors.New("input not found")
	// ErrOutputExists is returned when a different, existing output would be
	// overwritten without Force.
	ErrOutputExists = errors.New("output already exists")
)

// Options configures a deduplication run.
type Options struct {
	Input   string
	Output  string
	Header  bool
	Force   bool
	Publish fileutil.PublishOptions
	Logger  *slog.Logger
}

// Result reports a completed deduplication.
type Result struct {
	Input   string `json:"input"`
	Output  string `json:"output"`
	InPlace bool   `json:"in_place"`
	Bytes   int    `json:"bytes"`
	Stats
}

// Run deduplicates opts.Input into opts.Output. Input and output may be the
// same file; the replacement is atomic either way.
func Run(ctx context.Context, opts Options) (*Result, error) {
	logger := logging.NewComponentLogger(opts.Logger, "dedup")

	exists, err := fileutil.Exists(opts.Input)
	if err != nil {
		return nil, fmt.Errorf("inspect input %s: %w", opts.Input, err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrInputNotFound, opts.Input)
	}

	inPlace := fileutil.SamePath(opts.Input, opts.Output)
	if !inPlace && !opts.Force {
		outExists, err := fileutil.Exists(opts.Output)
		if err != nil {
			return nil, fmt.Errorf("inspect output %s: %w", opts.Output, err)
		}
		if outExists {
			return nil, fmt.Errorf("%w: %s (use --force to overwrite)", ErrOutputExists, opts.Output)
		}
	}

	content, err := os.ReadFile(opts.Input)
	if err != nil {
		return nil, fmt.Errorf("read input %s: %w", opts.Input, err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	lines, stats := Lines(string(content), opts.Header)
	data := []byte(Render(lines, opts.Header))
	if err := fileutil.Publish(ctx, opts.Output, data, opts.Publish); err != nil {
		return nil, err
	}

	for _, name := range stats.Dropped {
		logger.Debug("duplicate dropped", logging.String("channel", name))
	}
	logger.Info("dedup complete",
		logging.String(logging.FieldPath, opts.Output),
		logging.Int("channels", stats.Channels),
		logging.Int("duplicates", stats.Duplicates),
		logging.Bool("in_place", inPlace),
	)

	return &Result{
		Input:   opts.Input,
		Output:  opts.Output,
		InPlace: inPlace,
		Bytes:   len(data),
		Stats:   stats,
	}, nil
}
