package convert

import (
	"go.uber.org/zap"

	"gpxplan/internal/domain"
	"gpxplan/internal/geo"
	"gpxplan/internal/plan"
)

// Service runs conversions using a parser and a plan store.
type Service struct {
	parser domain.TrackParser
	plans  domain.PlanStore
	log    *zap.Logger
}

// New returns a converter backed by the given parser and store.
func New(parser domain.TrackParser, plans domain.PlanStore, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{parser: parser, plans: plans, log: log}
}

// Convert parses the GPX file, applies the optional bounding box, builds
// the mission, and writes the plan file.
//
// An empty result after bounding-box filtering is not an error: the
// returned result has Skipped set and no file is written.
func (s *Service) Convert(req domain.ConvertRequest) (domain.ConvertResult, error) {
	track, err := s.parser.Parse(req.GPXPath)
	if err != nil {
		return domain.ConvertResult{}, err
	}

	points := track.Points
	res := domain.ConvertResult{PointsParsed: len(points)}
	s.log.Info("parsed gpx track",
		zap.String("file", req.GPXPath),
		zap.String("track", track.Name),
		zap.Int("points", len(points)))

	if req.Box != nil {
		points = geo.FilterBBox(points, *req.Box)
		s.log.Info("applied bounding box",
			zap.Int("inside", len(points)),
			zap.Int("outside", res.PointsParsed-len(points)))
	}
	res.PointsInBox = len(points)

	if len(points) == 0 {
		res.Skipped = true
		return res, nil
	}

	p, err := plan.Build(points, req.Params)
	if err != nil {
		return res, err
	}
	res.Waypoints = len(p.Mission.Items)
	res.PlannedHome = p.Mission.PlannedHomePosition

	if err := s.plans.Save(req.PlanPath, p); err != nil {
		return res, err
	}
	s.log.Info("wrote plan file",
		zap.String("file", req.PlanPath),
		zap.Int("waypoints", res.Waypoints))
	return res, nil
}

// Compile-time assertion that Service implements domain.Converter.
var _ domain.Converter = (*Service)(nil)
