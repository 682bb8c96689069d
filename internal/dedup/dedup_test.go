package dedup

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLinesKeepsFirstBlockPerName(t *testing.T) {
	input := "#EXTM3U\n" +
		"#EXTINF:-1 group-title=\"A\",CCTV1\n" +
		"http://a/1\n" +
		"#EXTVLCOPT:http-user-agent=x\n" +
		"\n" +
		"#EXTINF:-1 group-title=\"B\",CCTV1\n" +
		"http://b/1\n" +
		"#EXTINF:-1,CCTV-1\n" +
		"http://c/1\n"

	lines, stats := Lines(input, true)
	want := []string{
		"#EXTINF:-1 group-title=\"A\",CCTV1",
		"http://a/1",
		"#EXTVLCOPT:http-user-agent=x",
		"",
		"#EXTINF:-1,CCTV-1",
		"http://c/1",
		"",
	}
	if diff := cmp.Diff(want, lines); diff != "" {
		t.Fatalf("lines mismatch (-want +got):\n%s", diff)
	}
	if stats.Channels != 2 || stats.Duplicates != 1 {
		t.Fatalf("unexpected stats: %+v", stats)
	}
	if diff := cmp.Diff([]string{"CCTV1"}, stats.Dropped); diff != "" {
		t.Fatalf("dropped mismatch (-want +got):\n%s", diff)
	}
}

func TestLinesNameUsesFirstComma(t *testing.T) {
	input := "#EXTINF:-1,News, Weather\nhttp://a\n#EXTINF:-1,News, Weather\nhttp://b\n#EXTINF:-1,News\nhttp://c\n"
	_, stats := Lines(input, true)
	if stats.Channels != 2 || stats.Duplicates != 1 {
		t.Fatalf("unexpected stats: %+v", stats)
	}
}

func TestLinesKeepsStrayLines(t *testing.T) {
	input := "#EXTM3U x-tvg-url=\"http://epg\"\n# comment\n#EXTINF:-1,One\nhttp://a\n"

	got, _ := Lines(input, false)
	want := []string{
		"#EXTM3U x-tvg-url=\"http://epg\"", "",
		"# comment", "",
		"#EXTINF:-1,One", "http://a", "",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("lines mismatch (-want +got):\n%s", diff)
	}

	got, _ = Lines(input, true)
	if got[0] != "# comment" {
		t.Fatalf("header should be dropped when a new one is prepended, got %q", got[0])
	}
}

func TestRender(t *testing.T) {
	lines := []string{"#EXTINF:-1,One", "http://a", ""}
	if got, want := Render(lines, true), "#EXTM3U\n#EXTINF:-1,One\nhttp://a\n\n"; got != want {
		t.Fatalf("Render(header) = %q, want %q", got, want)
	}
	if got, want := Render(lines, false), "#EXTINF:-1,One\nhttp://a\n\n"; got != want {
		t.Fatalf("Render(no header) = %q, want %q", got, want)
	}
}

func TestRunInPlace(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "list.m3u")
	writeFile(t, path, "#EXTM3U\n#EXTINF:-1,A\nhttp://1\n#EXTINF:-1,A\nhttp://2\n")

	res, err := Run(context.Background(), Options{Input: path, Output: path, Header: true})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !res.InPlace || res.Channels != 1 || res.Duplicates != 1 {
		t.Fatalf("unexpected result: %+v", res)
	}
	if got, want := readFile(t, path), "#EXTM3U\n#EXTINF:-1,A\nhttp://1\n\n"; got != want {
		t.Fatalf("content = %q, want %q", got, want)
	}
}

func TestRunRefusesExistingOutputWithoutForce(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.m3u")
	out := filepath.Join(dir, "out.m3u")
	writeFile(t, in, "#EXTINF:-1,A\nhttp://1\n")
	writeFile(t, out, "keep me\n")

	_, err := Run(context.Background(), Options{Input: in, Output: out, Header: true})
	if !errors.Is(err, ErrOutputExists) {
		t.Fatalf("expected ErrOutputExists, got %v", err)
	}
	if got := readFile(t, out); got != "keep me\n" {
		t.Fatalf("output modified: %q", got)
	}

	if _, err := Run(context.Background(), Options{Input: in, Output: out, Header: true, Force: true}); err != nil {
		t.Fatalf("Run with force: %v", err)
	}
	if got := readFile(t, out); got != "#EXTM3U\n#EXTINF:-1,A\nhttp://1\n\n" {
		t.Fatalf("forced output = %q", got)
	}
}

func TestRunMissingInput(t *testing.T) {
	dir := t.TempDir()
	_, err := Run(context.Background(), Options{
		Input:  filepath.Join(dir, "nope.m3u"),
		Output: filepath.Join(dir, "out.m3u"),
	})
	if !errors.Is(err, ErrInputNotFound) {
		t.Fatalf("expected ErrInputNotFound, got %v", err)
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return string(data)
}
