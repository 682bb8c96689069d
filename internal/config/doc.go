// Package config loads, normalizes, and validates m3umerge configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours environment fallbacks such as
// M3UMERGE_LOG_LEVEL. Every command obtains its settings through this package
// so merge, dedup, and append runs share the same labels, output locking, and
// history location.
package config
