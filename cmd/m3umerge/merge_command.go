package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"m3umerge/internal/merge"
	"m3umerge/internal/mergerun"
)

type mergeView struct {
	RunID    string             `json:"run_id"`
	Output   string             `json:"output"`
	Duration string             `json:"duration"`
	Bytes    int64              `json:"bytes"`
	Inputs   []mergeInputView   `json:"inputs"`
	Skipped  []mergeSkippedView `json:"skipped"`
	Stats    merge.Stats        `json:"stats"`
}

type mergeInputView struct {
	Path string `json:"path"`
	merge.IngestStats
}

type mergeSkippedView struct {
	Path   string `json:"path"`
	Reason string `json:"reason"`
	Error  string `json:"error"`
}

func newMergeCommand(ctx *commandContext) *cobra.Command {
	var inputs []string
	var output string
	var summary bool
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "merge [input...] -o <output>",
		Short: "Merge playlists into one, matching channels by normalized name",
		Long: "Merge one or more M3U playlists. Channels whose names match after normalization\n" +
			"are combined: their URLs are unioned and the nicer display name is kept.\n" +
			"Per-group order follows the relative order of every input.",
		RunE: func(cmd *cobra.Command, args []string) error {
			all := append(append([]string{}, inputs...), args...)
			if len(all) == 0 {
				return errors.New("at least one input is required (use -i or positional arguments)")
			}
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.logger(cmd)
			if err != nil {
				return err
			}

			res, err := mergerun.Run(cmd.Context(), mergerun.Options{
				Inputs: all,
				Output: output,
				Config: cfg,
				Logger: logger,
			})
			if err != nil {
				return err
			}

			if asJSON {
				return writeJSON(cmd, newMergeView(res))
			}
			out := cmd.OutOrStdout()
			colorize := shouldColorize(out)
			for _, skip := range res.Skipped {
				fmt.Fprintln(out, renderStatusLine("skipped", statusWarn, fmt.Sprintf("%s (%s)", skip.Path, skip.Kind()), colorize))
			}
			fmt.Fprintf(out, "merged %d input(s) into %s\n", len(res.Inputs), res.Output)
			fmt.Fprintf(out, "%d group(s), %d channel(s), %d url(s)\n", res.Stats.Groups, res.Stats.Channels, res.Stats.URLs)
			if summary || cfg.Merge.WriteSummary {
				printGroupSummary(out, res.Stats)
			}
			return nil
		},
	}

	cmd.Flags().StringArrayVarP(&inputs, "input", "i", nil, "Input playlist (repeatable, merged in order)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output playlist path")
	cmd.Flags().BoolVar(&summary, "summary", false, "Print a per-group summary table")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the run result as JSON")
	_ = cmd.MarkFlagRequired("output")
	return cmd
}

func printGroupSummary(out io.Writer, stats merge.Stats) {
	rows := make([][]string, 0, len(stats.PerGroup))
	for _, g := range stats.PerGroup {
		rows = append(rows, []string{g.Group, strconv.Itoa(g.Channels), strconv.Itoa(g.URLs)})
	}
	fmt.Fprintln(out, renderTable(tableSpec{
		headers: []string{"Group", "Channels", "URLs"},
		rows:    rows,
		footer:  []string{"Total", strconv.Itoa(stats.Channels), strconv.Itoa(stats.URLs)},
		aligns:  []columnAlignment{alignLeft, alignRight, alignRight},
	}))
}

func newMergeView(res *mergerun.Result) mergeView {
	view := mergeView{
		RunID:    res.RunID,
		Output:   res.Output,
		Duration: res.FinishedAt.Sub(res.StartedAt).Round(time.Millisecond).String(),
		Bytes:    res.Bytes,
		Inputs:   make([]mergeInputView, 0, len(res.Inputs)),
		Skipped:  make([]mergeSkippedView, 0, len(res.Skipped)),
		Stats:    res.Stats,
	}
	for _, in := range res.Inputs {
		view.Inputs = append(view.Inputs, mergeInputView{Path: in.Path, IngestStats: in.Ingest})
	}
	for _, skip := range res.Skipped {
		view.Skipped = append(view.Skipped, mergeSkippedView{
			Path:   skip.Path,
			Reason: skip.Kind(),
			Error:  skip.Reason.Error(),
		})
	}
	return view
}
