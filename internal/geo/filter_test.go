package geo_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gpxplan/internal/domain"
	"gpxplan/internal/geo"
)

func TestFilterBBox(t *testing.T) {
	points := []domain.TrackPoint{
		{Lat: 41.70, Lon: -85.03},
		{Lat: 41.705, Lon: -85.025},
		{Lat: 41.72, Lon: -85.03}, // north of the box
		{Lat: 41.705, Lon: -85.00}, // east of the box
		{Lat: 41.71, Lon: -85.02}, // exactly on the max corner
	}
	box := domain.NewBoundingBox(41.70, -85.03, 41.71, -85.02)

	got := geo.FilterBBox(points, box)
	require.Len(t, got, 3)
	assert.Equal(t, points[0], got[0])
	assert.Equal(t, points[1], got[1])
	assert.Equal(t, points[4], got[2])
}

func TestFilterBBox_CornerOrderIrrelevant(t *testing.T) {
	points := []domain.TrackPoint{{Lat: 5, Lon: 5}}

	a := domain.NewBoundingBox(0, 0, 10, 10)
	b := domain.NewBoundingBox(10, 10, 0, 0)
	assert.Equal(t, a, b)
	assert.Len(t, geo.FilterBBox(points, b), 1)
}

func TestFilterBBox_Empty(t *testing.T) {
	box := domain.NewBoundingBox(0, 0, 1, 1)
	assert.Empty(t, geo.FilterBBox(nil, box))
}

func TestFilterBBox_ZeroAreaBox(t *testing.T) {
	box := domain.NewBoundingBox(5, 5, 5, 5)
	points := []domain.TrackPoint{{Lat: 5, Lon: 5}, {Lat: 5.0001, Lon: 5}}
	assert.Len(t, geo.FilterBBox(points, box), 1)
}

func TestStats(t *testing.T) {
	track := domain.Track{
		Name: "loop",
		Points: []domain.TrackPoint{
			{Lat: 1, Lon: 10, Ele: 100},
			{Lat: 3, Lon: 8, Ele: 90},
			{Lat: 2, Lon: 12, Ele: 110},
		},
	}

	s, ok := geo.Stats(track)
	require.True(t, ok)
	assert.Equal(t, "loop", s.Name)
	assert.Equal(t, 3, s.Points)
	assert.Equal(t, domain.BoundingBox{MinLat: 1, MaxLat: 3, MinLon: 8, MaxLon: 12}, s.Bounds)
	assert.Equal(t, 90.0, s.MinEle)
	assert.Equal(t, 110.0, s.MaxEle)
}

func TestStats_EmptyTrack(t *testing.T) {
	_, ok := geo.Stats(domain.Track{})
	assert.False(t, ok)
}
