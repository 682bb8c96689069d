// Package dedup removes repeated channel blocks from a single playlist.
//
// Two blocks are duplicates when the text after the first comma of their
// #EXTINF lines is byte-for-byte identical. No name normalization is
// applied here; the merge engine is the place for that. The first block of
// each name survives together with every line that follows it up to the
// next #EXTINF line.
package dedup
