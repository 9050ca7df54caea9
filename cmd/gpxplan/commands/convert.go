package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"gpxplan/internal/domain"
)

// convert <input.gpx> <output.plan>: build a rover mission from a track.
func convertCmd() *cobra.Command {
	var (
		step        int
		bbox        string
		alt         float64
		radius      float64
		cruiseSpeed float64
		hold        float64
	)

	cmd := &cobra.Command{
		Use:   "convert <input.gpx> <output.plan>",
		Short: "Convert a GPX track into a .plan mission file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			params := appCtx.Config.MissionParams()
			flags := cmd.Flags()
			if flags.Changed("step") {
				params.Step = step
			}
			if flags.Changed("alt") {
				params.DefaultAlt = alt
			}
			if flags.Changed("radius") {
				params.AcceptanceRadius = radius
			}
			if flags.Changed("cruise-speed") {
				params.CruiseSpeed = cruiseSpeed
			}
			if flags.Changed("hold") {
				params.HoldTime = hold
			}
			if params.Step < 1 {
				return fmt.Errorf("step must be a positive integer (got %d)", params.Step)
			}

			var box *domain.BoundingBox
			if bbox != "" {
				b, err := parseBBox(bbox)
				if err != nil {
					return err
				}
				box = &b
			}

			res, err := appCtx.Convert.Convert(domain.ConvertRequest{
				GPXPath:  args[0],
				PlanPath: args[1],
				Box:      box,
				Params:   params,
			})
			if err != nil {
				return err
			}

			fmt.Printf("Parsed %d points from %s.\n", res.PointsParsed, args[0])
			if box != nil {
				fmt.Printf("%d points inside the bounding box.\n", res.PointsInBox)
			}
			if res.Skipped {
				fmt.Println("No points to convert; no plan file written.")
				return nil
			}
			fmt.Printf("Wrote %s with %d waypoints (every %d-th point).\n", args[1], res.Waypoints, params.Step)
			fmt.Printf("Planned home position: %.6f, %.6f\n", res.PlannedHome[0], res.PlannedHome[1])
			return nil
		},
	}

	cmd.Flags().IntVar(&step, "step", 1, "keep every Nth trackpoint")
	cmd.Flags().StringVar(&bbox, "bbox", "", "bounding box as lat1,lon1,lat2,lon2 (two opposite corners)")
	cmd.Flags().Float64Var(&alt, "alt", 0, "waypoint altitude in metres, relative to home")
	cmd.Flags().Float64Var(&radius, "radius", 2, "waypoint acceptance radius in metres")
	cmd.Flags().Float64Var(&cruiseSpeed, "cruise-speed", 5, "mission cruise speed in m/s")
	cmd.Flags().Float64Var(&hold, "hold", 0, "hold time per waypoint in seconds")
	return cmd
}

// parseBBox parses "lat1,lon1,lat2,lon2" into a normalized box.
func parseBBox(s string) (domain.BoundingBox, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return domain.BoundingBox{}, fmt.Errorf("bbox needs 4 comma-separated values, got %d", len(parts))
	}
	vals := make([]float64, 4)
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return domain.BoundingBox{}, fmt.Errorf("invalid bbox value %q", p)
		}
		vals[i] = v
	}
	return domain.NewBoundingBox(vals[0], vals[1], vals[2], vals[3]), nil
}
