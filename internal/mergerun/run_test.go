package mergerun_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"m3umerge/internal/history"
	"m3umerge/internal/logging"
	"m3umerge/internal/mergerun"
	"m3umerge/internal/testsupport"
)

func TestRunMergesInputsInOrder(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	dir := t.TempDir()
	in1 := testsupport.WritePlaylist(t, dir, "one.m3u", "#EXTM3U\n"+testsupport.Entry("A", "CCTV-1", "http://x/1"))
	in2 := testsupport.WritePlaylist(t, dir, "two.m3u", "#EXTM3U\n"+testsupport.Entry("A", "CCTV1台", "http://x/2"))
	out := filepath.Join(dir, "merged.m3u")

	res, err := mergerun.Run(context.Background(), mergerun.Options{
		Inputs: []string{in1, in2},
		Output: out,
		Config: cfg,
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	want := "#EXTM3U\n#EXTINF:-1 group-title=\"A\",CCTV1台\nhttp://x/1\nhttp://x/2\n"
	if diff := cmp.Diff(want, testsupport.ReadFile(t, out)); diff != "" {
		t.Fatalf("output mismatch (-want +got):\n%s", diff)
	}
	if res.RunID == "" {
		t.Fatal("expected run id")
	}
	if len(res.Inputs) != 2 || len(res.Skipped) != 0 {
		t.Fatalf("unexpected reports: %+v", res)
	}
	if res.Stats.Channels != 1 || res.Stats.URLs != 2 {
		t.Fatalf("unexpected stats: %+v", res.Stats)
	}
	if res.Bytes != int64(len(want)) {
		t.Fatalf("bytes = %d, want %d", res.Bytes, len(want))
	}
}

func TestRunSkipsMissingAndSameFileInputs(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	dir := t.TempDir()
	good := testsupport.WritePlaylist(t, dir, "good.m3u", testsupport.Entry("A", "One", "http://x/1"))
	out := testsupport.WritePlaylist(t, dir, "out.m3u", "#EXTM3U\n"+testsupport.Entry("Old", "Stale", "http://old/1"))
	missing := filepath.Join(dir, "missing.m3u")

	var logs bytes.Buffer
	logger, err := logging.New(logging.Options{Writer: &logs})
	if err != nil {
		t.Fatalf("logger: %v", err)
	}

	res, err := mergerun.Run(context.Background(), mergerun.Options{
		Inputs: []string{missing, out, good},
		Output: out,
		Config: cfg,
		Logger: logger,
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if len(res.Skipped) != 2 {
		t.Fatalf("expected 2 skipped inputs, got %+v", res.Skipped)
	}
	if !errors.Is(res.Skipped[0].Reason, mergerun.ErrInputNotFound) || res.Skipped[0].Kind() != "not_found" {
		t.Fatalf("unexpected first skip: %+v", res.Skipped[0])
	}
	if !errors.Is(res.Skipped[1].Reason, mergerun.ErrSameFile) || res.Skipped[1].Kind() != "same_as_output" {
		t.Fatalf("unexpected second skip: %+v", res.Skipped[1])
	}

	got := testsupport.ReadFile(t, out)
	if strings.Contains(got, "Stale") {
		t.Fatalf("output input must not be merged into itself: %q", got)
	}
	if !strings.Contains(got, ",One\nhttp://x/1\n") {
		t.Fatalf("expected good input in output: %q", got)
	}
	if strings.Count(logs.String(), "input skipped") != 2 {
		t.Fatalf("expected two skip warnings, got %q", logs.String())
	}
}

func TestRunWithNoReadableInputsWritesHeader(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	out := filepath.Join(t.TempDir(), "out.m3u")

	res, err := mergerun.Run(context.Background(), mergerun.Options{
		Inputs: []string{filepath.Join(t.TempDir(), "nope.m3u")},
		Output: out,
		Config: cfg,
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if got := testsupport.ReadFile(t, out); got != "#EXTM3U\n" {
		t.Fatalf("output = %q, want header only", got)
	}
	if res.Stats.Channels != 0 {
		t.Fatalf("expected no channels, got %d", res.Stats.Channels)
	}
}

func TestRunUsesConfiguredDefaultGroup(t *testing.T) {
	cfg := testsupport.NewConfig(t, testsupport.WithDefaultGroup("未分类"))
	dir := t.TempDir()
	in := testsupport.WritePlaylist(t, dir, "in.m3u", "#EXTINF:-1,Plain\nhttp://x/1\n")

	res, err := mergerun.Run(context.Background(), mergerun.Options{
		Inputs: []string{in},
		Output: filepath.Join(dir, "out.m3u"),
		Config: cfg,
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(res.Stats.PerGroup) != 1 || res.Stats.PerGroup[0].Group != "未分类" {
		t.Fatalf("unexpected groups: %+v", res.Stats.PerGroup)
	}
}

func TestRunReadFailureIsFatal(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("permission checks do not apply to root")
	}
	cfg := testsupport.NewConfig(t)
	dir := t.TempDir()
	in := testsupport.WritePlaylist(t, dir, "locked.m3u", testsupport.Entry("A", "One", "http://x/1"))
	if err := os.Chmod(in, 0o000); err != nil {
		t.Fatalf("chmod: %v", err)
	}
	out := filepath.Join(dir, "out.m3u")

	_, err := mergerun.Run(context.Background(), mergerun.Options{Inputs: []string{in}, Output: out, Config: cfg})
	if err == nil {
		t.Fatal("expected read failure")
	}
	if !strings.Contains(err.Error(), in) {
		t.Fatalf("error %q should name the failing path", err)
	}
	if _, statErr := os.Stat(out); !os.IsNotExist(statErr) {
		t.Fatalf("output must not be written on failure: %v", statErr)
	}
}

func TestRunWriteFailureIsFatal(t *testing.T) {
	cfg := testsupport.NewConfig(t, testsupport.WithoutLock())
	out := filepath.Join(t.TempDir(), "missing-dir", "out.m3u")

	_, err := mergerun.Run(context.Background(), mergerun.Options{Output: out, Config: cfg})
	if err == nil || !strings.Contains(err.Error(), "write output") {
		t.Fatalf("expected write failure, got %v", err)
	}
}

func TestRunRequiresOutput(t *testing.T) {
	_, err := mergerun.Run(context.Background(), mergerun.Options{})
	if !errors.Is(err, mergerun.ErrNoOutput) {
		t.Fatalf("expected ErrNoOutput, got %v", err)
	}
}

func TestRunCanceledContext(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	dir := t.TempDir()
	in := testsupport.WritePlaylist(t, dir, "in.m3u", testsupport.Entry("A", "One"))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := mergerun.Run(ctx, mergerun.Options{Inputs: []string{in}, Output: filepath.Join(dir, "out.m3u"), Config: cfg})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestRunDeterministicAcrossRuns(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	dir := t.TempDir()
	in1 := testsupport.WritePlaylist(t, dir, "a.m3u", testsupport.Entry("A", "z", "http://x/9", "http://x/1")+testsupport.Entry("B", "y", "http://x/5"))
	in2 := testsupport.WritePlaylist(t, dir, "b.m3u", testsupport.Entry("B", "y", "http://x/4")+testsupport.Entry("A", "w", "http://x/3"))

	var outputs []string
	for i := 0; i < 3; i++ {
		out := filepath.Join(dir, "out.m3u")
		if _, err := mergerun.Run(context.Background(), mergerun.Options{Inputs: []string{in1, in2}, Output: out, Config: cfg}); err != nil {
			t.Fatalf("Run #%d: %v", i, err)
		}
		outputs = append(outputs, testsupport.ReadFile(t, out))
	}
	if outputs[0] != outputs[1] || outputs[1] != outputs[2] {
		t.Fatalf("outputs differ across runs: %q", outputs)
	}
}

func TestRunRecordsHistory(t *testing.T) {
	cfg := testsupport.NewConfig(t, testsupport.WithHistory())
	dir := t.TempDir()
	in := testsupport.WritePlaylist(t, dir, "in.m3u", testsupport.Entry("A", "One", "http://x/1", "http://x/2"))
	missing := filepath.Join(dir, "missing.m3u")

	res, err := mergerun.Run(context.Background(), mergerun.Options{
		Inputs: []string{in, missing},
		Output: filepath.Join(dir, "out.m3u"),
		Config: cfg,
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	store, err := history.Open(cfg.History.Path)
	if err != nil {
		t.Fatalf("open history: %v", err)
	}
	defer store.Close()

	runs, err := store.List(context.Background(), 0)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("expected one recorded run, got %d", len(runs))
	}
	got := runs[0]
	if got.ID != res.RunID || got.Channels != 1 || got.URLs != 2 {
		t.Fatalf("unexpected run: %+v", got)
	}
	if diff := cmp.Diff([]string{in}, got.Inputs); diff != "" {
		t.Fatalf("inputs mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{missing}, got.Skipped); diff != "" {
		t.Fatalf("skipped mismatch (-want +got):\n%s", diff)
	}
}
