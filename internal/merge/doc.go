// Package merge folds parsed playlists into one consolidated channel list.
//
// An Engine owns all cross-file state for a run: the channel table keyed by
// normalized identity, the first-seen group order, and one ordered key list per
// group. Each call to Ingest folds one file in: URLs are unioned, the display
// name follows the preference rules in channelname, channels that changed group
// leave their old group's list, and the file's local per-group order is merged
// into the accumulated order with an anchor-insertion pass (see order.go).
//
// The Engine is not safe for concurrent use; a run feeds it files one at a
// time in input order and renders once at the end. Output is a pure function
// of the ordered inputs.
package merge
