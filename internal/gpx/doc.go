// Package gpx reads trackpoints out of GPX files.
//
// Parsing is deliberately forgiving: GPX 1.0, GPX 1.1, and
// namespace-free documents are all accepted, and malformed trackpoints
// are skipped with a warning rather than failing the whole file.
package gpx
