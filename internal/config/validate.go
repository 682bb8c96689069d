package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateMerge(); err != nil {
		return err
	}
	if err := c.validateOutput(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateMerge() error {
	if !strings.HasPrefix(c.Merge.DefaultHeader, "#EXTM3U") {
		return fmt.Errorf("merge.default_header must start with #EXTM3U, got %q", c.Merge.DefaultHeader)
	}
	return nil
}

func (c *Config) validateOutput() error {
	mode, err := parseFileMode(c.Output.FileMode)
	if err != nil {
		return fmt.Errorf("output.file_mode must be an octal permission such as 0644: %w", err)
	}
	if mode&^0o777 != 0 {
		return fmt.Errorf("output.file_mode %q has bits outside 0777", c.Output.FileMode)
	}
	if mode&0o600 != 0o600 {
		return errors.New("output.file_mode must keep the file readable and writable by its owner")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn, or error, got %q", c.Logging.Level)
	}
	return nil
}
