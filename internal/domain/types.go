package domain

// TrackPoint is a single GPX trackpoint. Ele is metres above sea level
// and defaults to zero when the source file omits or mangles it.
type TrackPoint struct {
	Lat float64
	Lon float64
	Ele float64
}

// Track is an ordered sequence of trackpoints read from one GPX file.
type Track struct {
	Name   string
	Points []TrackPoint
}

// Bounds returns the smallest bounding box containing every point and
// false when the track is empty.
func (t Track) Bounds() (BoundingBox, bool) {
	if len(t.Points) == 0 {
		return BoundingBox{}, false
	}
	b := BoundingBox{
		MinLat: t.Points[0].Lat, MaxLat: t.Points[0].Lat,
		MinLon: t.Points[0].Lon, MaxLon: t.Points[0].Lon,
	}
	for _, p := range t.Points[1:] {
		if p.Lat < b.MinLat {
			b.MinLat = p.Lat
		}
		if p.Lat > b.MaxLat {
			b.MaxLat = p.Lat
		}
		if p.Lon < b.MinLon {
			b.MinLon = p.Lon
		}
		if p.Lon > b.MaxLon {
			b.MaxLon = p.Lon
		}
	}
	return b, true
}

// BoundingBox is a normalized lat/lon rectangle: Min <= Max on both axes.
type BoundingBox struct {
	MinLat float64
	MaxLat float64
	MinLon float64
	MaxLon float64
}

// NewBoundingBox builds a box from two opposite corners given in any order.
func NewBoundingBox(lat1, lon1, lat2, lon2 float64) BoundingBox {
	b := BoundingBox{MinLat: lat1, MaxLat: lat2, MinLon: lon1, MaxLon: lon2}
	if b.MinLat > b.MaxLat {
		b.MinLat, b.MaxLat = b.MaxLat, b.MinLat
	}
	if b.MinLon > b.MaxLon {
		b.MinLon, b.MaxLon = b.MaxLon, b.MinLon
	}
	return b
}

// Contains reports whether the coordinate lies inside the box. Edges count
// as inside, so a zero-area box still contains a point exactly on it.
func (b BoundingBox) Contains(lat, lon float64) bool {
	return lat >= b.MinLat && lat <= b.MaxLat && lon >= b.MinLon && lon <= b.MaxLon
}

// MissionParams are the conversion knobs for building a mission from a track.
type MissionParams struct {
	// Step keeps every Step-th point; must be >= 1.
	Step int
	// DefaultAlt replaces GPX elevation on every waypoint. Rover missions
	// run relative-to-home, so the recorded elevation is not useful.
	DefaultAlt float64
	// AcceptanceRadius is how close the vehicle must get, in metres.
	AcceptanceRadius float64
	// CruiseSpeed is the mission cruise speed in m/s.
	CruiseSpeed float64
	// HoldTime is the per-waypoint hold, in seconds.
	HoldTime float64
}

// Fingerprint is a short identifier for a plan file presented to users.
type Fingerprint string

// String returns the string form of the fingerprint.
func (f Fingerprint) String() string { return string(f) }
