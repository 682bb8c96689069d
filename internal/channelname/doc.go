// Package channelname derives channel identity keys from raw playlist display
// names.
//
// Sources spell the same channel differently ("CCTV-1", "CCTV1台", "cctv1").
// Normalize folds those variants onto one key so the merge engine can treat
// them as a single logical channel, while IsPreferred ranks the raw spellings
// when sources disagree on which one to display.
package channelname
