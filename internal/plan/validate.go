package plan

import (
	"errors"
	"fmt"

	"gpxplan/internal/domain"
)

// ErrInvalidPlan wraps every validation failure so callers can test for
// the class with errors.Is.
var ErrInvalidPlan = errors.New("plan: invalid")

func invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidPlan, fmt.Sprintf(format, args...))
}

// Validate checks a loaded document for the structure this tool (and
// QGC) expects from a rover mission.
func Validate(p domain.PlanFile) error {
	if p.FileType != domain.PlanFileType {
		return invalidf("fileType %q, want %q", p.FileType, domain.PlanFileType)
	}
	if p.Version != domain.PlanVersion {
		return invalidf("plan version %d, want %d", p.Version, domain.PlanVersion)
	}
	m := p.Mission
	if m.Version != domain.MissionVersion {
		return invalidf("mission version %d, want %d", m.Version, domain.MissionVersion)
	}
	if m.FirmwareType != domain.FirmwareArduRover {
		return invalidf("firmwareType %d, want %d (ArduRover)", m.FirmwareType, domain.FirmwareArduRover)
	}
	if m.VehicleType != domain.VehicleRover {
		return invalidf("vehicleType %d, want %d (Rover)", m.VehicleType, domain.VehicleRover)
	}
	if len(m.PlannedHomePosition) != 3 {
		return invalidf("plannedHomePosition has %d values, want 3", len(m.PlannedHomePosition))
	}
	if len(m.Items) == 0 {
		return invalidf("mission has no items")
	}

	prevJump := 0
	for i, it := range m.Items {
		if err := validateItem(it); err != nil {
			return fmt.Errorf("item %d: %w", i, err)
		}
		if it.DoJumpID <= prevJump {
			return invalidf("item %d: doJumpId %d not increasing", i, it.DoJumpID)
		}
		prevJump = it.DoJumpID
	}
	return nil
}

func validateItem(it domain.MissionItem) error {
	if it.Type != "SimpleItem" {
		return invalidf("type %q, want SimpleItem", it.Type)
	}
	if it.Command != domain.CmdNavWaypoint {
		return invalidf("command %d, want %d (NAV_WAYPOINT)", it.Command, domain.CmdNavWaypoint)
	}
	if it.Frame != domain.FrameGlobalRelativeAlt {
		return invalidf("frame %d, want %d", it.Frame, domain.FrameGlobalRelativeAlt)
	}
	if len(it.Params) != 7 {
		return invalidf("params has %d values, want 7", len(it.Params))
	}
	lat, lon := it.Params[4], it.Params[5]
	if lat == nil || lon == nil {
		return invalidf("lat/lon params must be set")
	}
	if *lat < -90 || *lat > 90 {
		return invalidf("latitude %v out of range", *lat)
	}
	if *lon < -180 || *lon > 180 {
		return invalidf("longitude %v out of range", *lon)
	}
	return nil
}
