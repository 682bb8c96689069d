// Package mergerun drives one end-to-end merge: it vets the input list, feeds
// each readable playlist to a merge.Engine in order, writes the result
// atomically under an advisory lock, and records the run in the history store.
//
// Missing inputs and inputs that point at the output file are skipped with a
// warning and reported in Result.Skipped. Read and write failures abort the
// run; the output file is either fully replaced or left untouched.
package mergerun
