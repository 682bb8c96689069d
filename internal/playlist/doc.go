// Package playlist reads and writes the extended M3U text format shared by the
// merge, dedup, and append commands.
//
// Parse turns one file into its header line plus an ordered list of channel
// occurrences. It is deliberately forgiving: blank lines, comments, and
// metadata lines without a usable display name are skipped rather than
// reported, because decorative and half-written entries are common in
// published IPTV lists. Merging repeated occurrences is left to callers.
package playlist
