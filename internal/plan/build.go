package plan

import (
	"errors"
	"fmt"

	"gpxplan/internal/domain"
)

var (
	// ErrNoWaypoints is returned when no point is available to build from.
	ErrNoWaypoints = errors.New("plan: no waypoints to build")
	// ErrBadStep is returned for a non-positive sampling step.
	ErrBadStep = errors.New("plan: step must be a positive integer")
)

// Build converts trackpoints into a complete .plan document, keeping
// every params.Step-th point. The planned home position is the first
// kept point at the default altitude, matching the mission's
// relative-to-home altitude mode.
func Build(points []domain.TrackPoint, params domain.MissionParams) (domain.PlanFile, error) {
	if params.Step < 1 {
		return domain.PlanFile{}, fmt.Errorf("%w (got %d)", ErrBadStep, params.Step)
	}
	if len(points) == 0 {
		return domain.PlanFile{}, ErrNoWaypoints
	}

	items := make([]domain.MissionItem, 0, 1+len(points)/params.Step)
	jumpID := 1
	for i := 0; i < len(points); i += params.Step {
		items = append(items, waypoint(points[i], jumpID, params))
		jumpID++
	}

	home := []float64{points[0].Lat, points[0].Lon, params.DefaultAlt}
	p := domain.PlanFile{
		FileType:      domain.PlanFileType,
		GroundStation: domain.PlanGroundStation,
		Version:       domain.PlanVersion,
		Mission: domain.Mission{
			CruiseSpeed:         params.CruiseSpeed,
			FirmwareType:        domain.FirmwareArduRover,
			HoverSpeed:          params.CruiseSpeed,
			Items:               items,
			PlannedHomePosition: home,
			VehicleType:         domain.VehicleRover,
			Version:             domain.MissionVersion,
		},
		GeoFence:    domain.GeoFence{Circles: []any{}, Polygons: []any{}, Version: 1},
		RallyPoints: domain.RallyPoints{Points: []any{}, Version: 1},
	}
	return p, nil
}

// waypoint builds one NAV_WAYPOINT item. GPX elevation is ignored on
// purpose: rover waypoints all sit at the default altitude.
func waypoint(pt domain.TrackPoint, jumpID int, params domain.MissionParams) domain.MissionItem {
	f := func(v float64) *float64 { return &v }
	return domain.MissionItem{
		AMSLAltAboveTerrain: nil,
		Altitude:            params.DefaultAlt,
		AltitudeMode:        domain.AltitudeModeRelative,
		AutoContinue:        true,
		Command:             domain.CmdNavWaypoint,
		DoJumpID:            jumpID,
		Frame:               domain.FrameGlobalRelativeAlt,
		Params: []*float64{
			f(params.HoldTime),
			f(params.AcceptanceRadius),
			f(0), // pass through the waypoint rather than orbit it
			nil,  // yaw unchanged
			f(pt.Lat),
			f(pt.Lon),
			f(params.DefaultAlt),
		},
		Type: "SimpleItem",
	}
}
