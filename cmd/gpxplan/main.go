package main

import (
	"os"

	"gpxplan/cmd/gpxplan/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
