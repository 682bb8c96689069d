// Package appender inserts hand-written channel entries into an existing
// playlist, either right after its header or at the end of the file.
package appender
