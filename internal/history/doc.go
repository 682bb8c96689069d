// Package history persists a record of every merge run in SQLite.
//
// Each row captures the run ID, timing, input and output paths, the inputs
// that were skipped, and the resulting group/channel/URL counts, so
// `m3umerge history` can show how a consolidated playlist evolved. Schema
// changes ship as numbered SQL files under migrations/ and are applied in
// order on Open.
package history
