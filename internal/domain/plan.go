package domain

// Wire types for the QGroundControl .plan format. Field names and null
// placement match what QGC writes, so files round-trip cleanly.

const (
	// PlanFileType is the fileType value QGC expects.
	PlanFileType = "Plan"
	// PlanGroundStation identifies the producing ground station.
	PlanGroundStation = "QGroundControl"
	// PlanVersion is the top-level plan format version.
	PlanVersion = 1
	// MissionVersion is the mission object format version.
	MissionVersion = 2

	// FirmwareArduRover is the QGC firmwareType for ArduRover.
	FirmwareArduRover = 4
	// VehicleRover is the QGC vehicleType for ground rovers.
	VehicleRover = 4

	// CmdNavWaypoint is MAV_CMD_NAV_WAYPOINT.
	CmdNavWaypoint = 16
	// FrameGlobalRelativeAlt is MAV_FRAME_GLOBAL_RELATIVE_ALT.
	FrameGlobalRelativeAlt = 3
	// AltitudeModeRelative marks altitudes as relative to home.
	AltitudeModeRelative = 1
)

// PlanFile is a complete .plan document.
type PlanFile struct {
	FileType      string      `json:"fileType"`
	GeoFence      GeoFence    `json:"geoFence"`
	GroundStation string      `json:"groundStation"`
	Mission       Mission     `json:"mission"`
	RallyPoints   RallyPoints `json:"rallyPoints"`
	Version       int         `json:"version"`
}

// Mission holds the waypoint list and vehicle defaults.
type Mission struct {
	CruiseSpeed         float64       `json:"cruiseSpeed"`
	FirmwareType        int           `json:"firmwareType"`
	HoverSpeed          float64       `json:"hoverSpeed"`
	Items               []MissionItem `json:"items"`
	PlannedHomePosition []float64     `json:"plannedHomePosition"`
	VehicleType         int           `json:"vehicleType"`
	Version             int           `json:"version"`
}

// MissionItem is one SimpleItem mission entry. Params is always length 7:
// [hold, acceptance radius, pass-through radius, yaw, lat, lon, alt], with
// a nil yaw serialising as JSON null ("leave yaw unchanged").
type MissionItem struct {
	AMSLAltAboveTerrain *float64   `json:"AMSLAltAboveTerrain"`
	Altitude            float64    `json:"Altitude"`
	AltitudeMode        int        `json:"AltitudeMode"`
	AutoContinue        bool       `json:"autoContinue"`
	Command             int        `json:"command"`
	DoJumpID            int        `json:"doJumpId"`
	Frame               int        `json:"frame"`
	Params              []*float64 `json:"params"`
	Type                string     `json:"type"`
}

// GeoFence is carried empty; QGC still requires the structure.
type GeoFence struct {
	Circles  []any `json:"circles"`
	Polygons []any `json:"polygons"`
	Version  int   `json:"version"`
}

// RallyPoints is carried empty; QGC still requires the structure.
type RallyPoints struct {
	Points  []any `json:"points"`
	Version int   `json:"version"`
}
