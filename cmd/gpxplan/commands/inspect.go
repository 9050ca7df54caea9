package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"gpxplan/internal/geo"
)

// inspect <input.gpx>: summarise a track without converting it.
func inspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <input.gpx>",
		Short: "Show point count and bounds of a GPX track",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			track, err := appCtx.Parser.Parse(args[0])
			if err != nil {
				return err
			}
			stats, ok := geo.Stats(track)
			if !ok {
				return fmt.Errorf("%s: track is empty", args[0])
			}
			if stats.Name != "" {
				fmt.Printf("Track:     %s\n", stats.Name)
			}
			fmt.Printf("Points:    %d\n", stats.Points)
			fmt.Printf("Latitude:  %.6f .. %.6f\n", stats.Bounds.MinLat, stats.Bounds.MaxLat)
			fmt.Printf("Longitude: %.6f .. %.6f\n", stats.Bounds.MinLon, stats.Bounds.MaxLon)
			fmt.Printf("Elevation: %.1f .. %.1f m\n", stats.MinEle, stats.MaxEle)
			return nil
		},
	}
}
