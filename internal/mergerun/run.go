package mergerun

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"

	"m3umerge/internal/config"
	"m3umerge/internal/fileutil"
	"m3umerge/internal/history"
	"m3umerge/internal/logging"
	"m3umerge/internal/merge"
	"m3umerge/internal/playlist"
)

// Options configures a merge run.
type Options struct {
	Inputs []string
	Output string
	Config *config.Config
	Logger *slog.Logger
}

// InputReport describes how one input contributed to the merge.
type InputReport struct {
	Path   string
	Ingest merge.IngestStats
}

// Result summarizes a completed run.
type Result struct {
	RunID      string
	Output     string
	StartedAt  time.Time
	FinishedAt time.Time
	Inputs     []InputReport
	Skipped    []SkippedInput
	Stats      merge.Stats
	Bytes      int64
}

// Run merges opts.Inputs into opts.Output.
func Run(ctx context.Context, opts Options) (*Result, error) {
	output := strings.TrimSpace(opts.Output)
	if output == "" {
		return nil, ErrNoOutput
	}
	cfg := opts.Config
	if cfg == nil {
		defaults := config.Default()
		defaults.History.Enabled = false
		cfg = &defaults
	}

	runID := uuid.NewString()
	ctx = logging.WithRunID(ctx, runID)
	logger := logging.WithContext(ctx, logging.NewComponentLogger(opts.Logger, "merge"))

	result := &Result{
		RunID:     runID,
		Output:    output,
		StartedAt: time.Now().UTC(),
	}

	engine := merge.NewEngine(merge.WithDefaultHeader(cfg.Merge.DefaultHeader))
	for _, input := range opts.Inputs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		file, skip, err := readInput(input, output, cfg.Merge.DefaultGroup)
		if err != nil {
			return nil, err
		}
		if skip != nil {
			result.Skipped = append(result.Skipped, *skip)
			logging.WarnWithContext(logger, "input skipped",
				"input_skipped",
				logging.String(logging.FieldPath, input),
				logging.String("reason", skip.Kind()),
				logging.String(logging.FieldErrorHint, skipHint(*skip)),
				logging.String(logging.FieldImpact, "input not merged; remaining inputs continue"),
			)
			continue
		}

		stats := engine.Ingest(file)
		result.Inputs = append(result.Inputs, InputReport{Path: input, Ingest: stats})
		logger.Debug("input ingested",
			logging.String(logging.FieldPath, input),
			logging.Int("occurrences", stats.Occurrences),
			logging.Int("new_channels", stats.NewChannels),
			logging.Int("updated", stats.Updated),
			logging.Int("reassigned", stats.Reassigned),
		)
	}

	var buf bytes.Buffer
	if _, err := engine.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("render output: %w", err)
	}
	data := buf.Bytes()
	publish := fileutil.PublishOptions{
		Mode:        cfg.OutputFileMode(),
		Lock:        cfg.Output.Lock,
		LockTimeout: cfg.LockTimeout(),
	}
	if err := fileutil.Publish(ctx, output, data, publish); err != nil {
		return nil, err
	}

	result.Stats = engine.Stats()
	result.Bytes = int64(len(data))
	result.FinishedAt = time.Now().UTC()

	logger.Info("merge complete",
		logging.String(logging.FieldPath, output),
		logging.Int("inputs", len(result.Inputs)),
		logging.Int("skipped", len(result.Skipped)),
		logging.Int("groups", result.Stats.Groups),
		logging.Int("channels", result.Stats.Channels),
		logging.Int("urls", result.Stats.URLs),
	)

	recordHistory(ctx, cfg, logger, result)
	return result, nil
}

func readInput(path, output, defaultGroup string) (*playlist.File, *SkippedInput, error) {
	if fileutil.SamePath(path, output) {
		return nil, &SkippedInput{Path: path, Reason: fmt.Errorf("%w: %s", ErrSameFile, path)}, nil
	}
	exists, err := fileutil.Exists(path)
	if err != nil {
		return nil, nil, fmt.Errorf("inspect input %s: %w", path, err)
	}
	if !exists {
		return nil, &SkippedInput{Path: path, Reason: fmt.Errorf("%w: %s", ErrInputNotFound, path)}, nil
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("read input %s: %w", path, err)
	}
	return playlist.Parse(string(content), playlist.WithDefaultGroup(defaultGroup)), nil, nil
}

func recordHistory(ctx context.Context, cfg *config.Config, logger *slog.Logger, result *Result) {
	if !cfg.History.Enabled {
		return
	}
	store, err := history.Open(cfg.History.Path)
	if err != nil {
		logging.WarnWithContext(logger, "history unavailable", "history_open_failed",
			logging.String(logging.FieldPath, cfg.History.Path),
			logging.Error(err),
			logging.String(logging.FieldImpact, "run not recorded in history"),
		)
		return
	}
	defer store.Close()

	run := history.Run{
		ID:         result.RunID,
		StartedAt:  result.StartedAt,
		FinishedAt: result.FinishedAt,
		Output:     result.Output,
		Groups:     result.Stats.Groups,
		Channels:   result.Stats.Channels,
		URLs:       result.Stats.URLs,
	}
	for _, in := range result.Inputs {
		run.Inputs = append(run.Inputs, in.Path)
	}
	for _, skip := range result.Skipped {
		run.Skipped = append(run.Skipped, skip.Path)
	}
	if err := store.Record(ctx, run); err != nil {
		logging.WarnWithContext(logger, "history record failed", "history_record_failed",
			logging.Error(err),
			logging.String(logging.FieldImpact, "run not recorded in history"),
		)
		return
	}
	if removed, err := store.Prune(ctx, cfg.History.KeepRuns); err != nil {
		logger.Debug("history prune failed", logging.Error(err))
	} else if removed > 0 {
		logger.Debug("history pruned", logging.Int("removed", int(removed)))
	}
}

func skipHint(skip SkippedInput) string {
	switch skip.Kind() {
	case "not_found":
		return "check the input path"
	case "same_as_output":
		return "write the merge to a different output path"
	default:
		return "check logs for details"
	}
}
