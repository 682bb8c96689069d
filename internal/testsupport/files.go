package testsupport

import (
	"os"
	"path/filepath"
	"testing"
)

// WritePlaylist writes content to dir/name and returns the full path.
func WritePlaylist(t testing.TB, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

// ReadFile returns the content of path or fails the test.
func ReadFile(t testing.TB, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return string(data)
}

// Entry formats one #EXTINF block with its URLs.
func Entry(group, name string, urls ...string) string {
	line := `#EXTINF:-1 group-title="` + group + `",` + name + "\n"
	for _, u := range urls {
		line += u + "\n"
	}
	return line
}
