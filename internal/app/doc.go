// Package app wires stores, services, and configuration for the CLI.
package app
