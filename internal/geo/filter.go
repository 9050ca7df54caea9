package geo

import "gpxplan/internal/domain"

// FilterBBox returns the points inside the box, preserving order.
func FilterBBox(points []domain.TrackPoint, box domain.BoundingBox) []domain.TrackPoint {
	out := make([]domain.TrackPoint, 0, len(points))
	for _, p := range points {
		if box.Contains(p.Lat, p.Lon) {
			out = append(out, p)
		}
	}
	return out
}

// TrackStats summarises a track for display.
type TrackStats struct {
	Name   string
	Points int
	Bounds domain.BoundingBox
	MinEle float64
	MaxEle float64
}

// Stats returns summary statistics for display and false when the track
// is empty.
func Stats(t domain.Track) (TrackStats, bool) {
	bounds, ok := t.Bounds()
	if !ok {
		return TrackStats{}, false
	}
	s := TrackStats{
		Name:   t.Name,
		Points: len(t.Points),
		Bounds: bounds,
		MinEle: t.Points[0].Ele,
		MaxEle: t.Points[0].Ele,
	}
	for _, p := range t.Points[1:] {
		if p.Ele < s.MinEle {
			s.MinEle = p.Ele
		}
		if p.Ele > s.MaxEle {
			s.MaxEle = p.Ele
		}
	}
	return s, true
}
