// Package main hosts the m3umerge CLI entrypoint and command graph.
//
// The Cobra command tree resolves configuration and logging once, then hands
// each invocation to the internal package that owns it: mergerun for the
// multi-file merge, dedup and appender for the single-file tools, and
// history for past runs. Commands here only translate flags and render
// results.
package main
