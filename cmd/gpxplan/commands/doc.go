// Package commands defines the gpxplan CLI command tree.
package commands
