// Package geo filters and summarises trackpoint sequences.
package geo
