package domain

// TrackParser reads a GPX file into a Track.
type TrackParser interface {
	Parse(path string) (Track, error)
}

// PlanStore persists and inspects .plan files on disk.
type PlanStore interface {
	Save(path string, p PlanFile) error
	Load(path string) (PlanFile, error)
	Fingerprint(path string) (Fingerprint, error)
}

// ConvertRequest describes one GPX-to-plan conversion.
type ConvertRequest struct {
	GPXPath  string
	PlanPath string
	// Box limits the track to a bounding box; nil means no filtering.
	Box    *BoundingBox
	Params MissionParams
}

// ConvertResult reports what a conversion did.
type ConvertResult struct {
	PointsParsed int
	PointsInBox  int
	Waypoints    int
	PlannedHome  []float64
	// Skipped is true when no point survived the bounding box and no
	// plan file was written. That is an outcome, not an error.
	Skipped bool
}

// Converter runs the parse/filter/build/save pipeline.
type Converter interface {
	Convert(req ConvertRequest) (ConvertResult, error)
}
