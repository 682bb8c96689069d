package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeMerge()
	c.normalizeOutput()
	if err := c.normalizeHistory(); err != nil {
		return err
	}
	c.normalizeAppend()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	if strings.TrimSpace(c.Paths.StateDir) == "" {
		c.Paths.StateDir = defaultStateDir
	}
	var err error
	if c.Paths.StateDir, err = expandPath(strings.TrimSpace(c.Paths.StateDir)); err != nil {
		return fmt.Errorf("paths.state_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeMerge() {
	c.Merge.DefaultGroup = strings.TrimSpace(c.Merge.DefaultGroup)
	if c.Merge.DefaultGroup == "" {
		c.Merge.DefaultGroup = defaultMergeGroup
	}
	c.Merge.DefaultHeader = strings.TrimSpace(c.Merge.DefaultHeader)
	if c.Merge.DefaultHeader == "" {
		c.Merge.DefaultHeader = defaultMergeHeader
	}
}

func (c *Config) normalizeOutput() {
	if c.Output.LockTimeoutSeconds <= 0 {
		c.Output.LockTimeoutSeconds = defaultLockTimeoutSeconds
	}
	c.Output.FileMode = strings.TrimSpace(c.Output.FileMode)
	if c.Output.FileMode == "" {
		c.Output.FileMode = defaultFileModeText
	}
}

func (c *Config) normalizeHistory() error {
	c.History.Path = strings.TrimSpace(c.History.Path)
	if c.History.Path == "" {
		c.History.Path = filepath.Join(c.Paths.StateDir, defaultHistoryFile)
	}
	var err error
	if c.History.Path, err = expandPath(c.History.Path); err != nil {
		return fmt.Errorf("history.path: %w", err)
	}
	if c.History.KeepRuns < 0 {
		c.History.KeepRuns = 0
	}
	return nil
}

func (c *Config) normalizeAppend() {
	c.Append.DefaultGroup = strings.TrimSpace(c.Append.DefaultGroup)
	if c.Append.DefaultGroup == "" {
		c.Append.DefaultGroup = defaultAppendGroup
	}
}

func (c *Config) normalizeLogging() {
	if value, ok := os.LookupEnv("M3UMERGE_LOG_LEVEL"); ok && strings.TrimSpace(value) != "" {
		c.Logging.Level = value
	}
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}

func parseFileMode(value string) (os.FileMode, error) {
	parsed, err := strconv.ParseUint(strings.TrimSpace(value), 8, 32)
	if err != nil {
		return 0, err
	}
	return os.FileMode(parsed), nil
}
