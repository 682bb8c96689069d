package appender

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"m3umerge/internal/fileutil"
	"m3umerge/internal/logging"
)

// ErrInputNotFound is returned when the playlist to extend does not exist.
var ErrInputNotFound = errors.New("input not found")

// Options configures an append run.
type Options struct {
	Input     string
	Output    string
	Channels  []Channel
	Group     string
	Rear      bool
	MergeURLs bool
	Publish   fileutil.PublishOptions
	Logger    *slog.Logger
}

// Result reports a completed append.
type Result struct {
	Input    string `json:"input"`
	Output   string `json:"output"`
	Channels int    `json:"channels"`
	Entries  int    `json:"entries"`
	Position string `json:"position"`
}

// Run writes opts.Input extended with opts.Channels to opts.Output.
func Run(ctx context.Context, opts Options) (*Result, error) {
	logger := logging.NewComponentLogger(opts.Logger, "append")

	if len(opts.Channels) == 0 {
		return nil, ErrNoChannels
	}
	exists, err := fileutil.Exists(opts.Input)
	if err != nil {
		return nil, fmt.Errorf("inspect input %s: %w", opts.Input, err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrInputNotFound, opts.Input)
	}
	existing, err := os.ReadFile(opts.Input)
	if err != nil {
		return nil, fmt.Errorf("read input %s: %w", opts.Input, err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	block := Block(opts.Channels, opts.Group, opts.MergeURLs)
	data := Insert(string(existing), block, opts.Rear)
	if err := fileutil.Publish(ctx, opts.Output, []byte(data), opts.Publish); err != nil {
		return nil, err
	}

	res := &Result{
		Input:    opts.Input,
		Output:   opts.Output,
		Channels: len(opts.Channels),
		Entries:  entryCount(opts.Channels, opts.MergeURLs),
		Position: "head",
	}
	if opts.Rear {
		res.Position = "rear"
	}
	logger.Info("channels added",
		logging.String(logging.FieldPath, opts.Output),
		logging.Int("channels", res.Channels),
		logging.Int("entries", res.Entries),
		logging.String("position", res.Position),
		logging.Bool("merge_urls", opts.MergeURLs),
	)
	return res, nil
}

func entryCount(channels []Channel, mergeURLs bool) int {
	if mergeURLs {
		return len(channels)
	}
	n := 0
	for _, ch := range channels {
		n += len(ch.URLs)
	}
	return n
}
