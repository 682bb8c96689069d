package testsupport

import (
	"path/filepath"
	"testing"

	"m3umerge/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a config seeded with unique temp directories per test.
// History is disabled unless WithHistory is passed.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Paths.StateDir = filepath.Join(base, "state")
	cfgVal.History.Enabled = false
	cfgVal.History.Path = filepath.Join(base, "state", "history.db")
	cfgVal.Output.LockTimeoutSeconds = 2

	builder := &configBuilder{
		t:       t,
		baseDir: base,
		cfg:     &cfgVal,
	}

	for _, opt := range opts {
		opt(builder)
	}

	return builder.cfg
}

// WithHistory enables the run history database under the test state dir.
func WithHistory() ConfigOption {
	return func(b *configBuilder) {
		b.cfg.History.Enabled = true
	}
}

// WithoutLock disables output locking.
func WithoutLock() ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Output.Lock = false
	}
}

// WithDefaultGroup overrides the uncategorized group label.
func WithDefaultGroup(label string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Merge.DefaultGroup = label
	}
}
