// Package store provides file-based persistence for .plan documents.
//
// Plans are serialised as indented JSON and written atomically via a
// temp file and rename, so a crash mid-write never leaves a truncated
// mission behind for a ground station to load.
package store
