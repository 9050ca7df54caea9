package gpx_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"gpxplan/internal/gpx"
)

const gpx11 = `<?xml version="1.0" encoding="UTF-8"?>
<gpx xmlns="http://www.topografix.com/GPX/1/1" version="1.1" creator="test">
  <trk>
    <name>Morning loop</name>
    <trkseg>
      <trkpt lat="41.7005" lon="-85.0301"><ele>251.3</ele></trkpt>
      <trkpt lat="41.7006" lon="-85.0302"><ele>251.8</ele></trkpt>
      <trkpt lat="41.7007" lon="-85.0303"/>
    </trkseg>
  </trk>
</gpx>`

const gpxNoNamespace = `<?xml version="1.0"?>
<gpx version="1.0">
  <trk>
    <trkseg>
      <trkpt lat="10.5" lon="20.5"><ele>100</ele></trkpt>
    </trkseg>
  </trk>
</gpx>`

const gpxMixedQuality = `<?xml version="1.0"?>
<gpx>
  <trk>
    <trkseg>
      <trkpt lat="1.0" lon="2.0"><ele>junk</ele></trkpt>
      <trkpt lat="not-a-number" lon="2.0"/>
      <trkpt lon="2.0"/>
      <trkpt lat="3.0" lon="4.0"><ele>15.5</ele></trkpt>
    </trkseg>
  </trk>
</gpx>`

func writeGPX(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "track.gpx")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestParse_Namespaced(t *testing.T) {
	p := gpx.New(zap.NewNop())

	track, err := p.Parse(writeGPX(t, gpx11))
	require.NoError(t, err)

	assert.Equal(t, "Morning loop", track.Name)
	require.Len(t, track.Points, 3)
	assert.Equal(t, 41.7005, track.Points[0].Lat)
	assert.Equal(t, -85.0301, track.Points[0].Lon)
	assert.Equal(t, 251.3, track.Points[0].Ele)
	// Missing <ele> defaults to zero.
	assert.Equal(t, 0.0, track.Points[2].Ele)
}

func TestParse_NoNamespace(t *testing.T) {
	p := gpx.New(zap.NewNop())

	track, err := p.Parse(writeGPX(t, gpxNoNamespace))
	require.NoError(t, err)
	require.Len(t, track.Points, 1)
	assert.Equal(t, 10.5, track.Points[0].Lat)
	assert.Equal(t, 100.0, track.Points[0].Ele)
}

func TestParse_SkipsMalformedPoints(t *testing.T) {
	p := gpx.New(zap.NewNop())

	track, err := p.Parse(writeGPX(t, gpxMixedQuality))
	require.NoError(t, err)

	// Bad ele is tolerated (point kept, ele 0), bad or missing lat/lon is not.
	require.Len(t, track.Points, 2)
	assert.Equal(t, 1.0, track.Points[0].Lat)
	assert.Equal(t, 0.0, track.Points[0].Ele)
	assert.Equal(t, 3.0, track.Points[1].Lat)
	assert.Equal(t, 15.5, track.Points[1].Ele)
}

func TestParse_MissingFile(t *testing.T) {
	p := gpx.New(zap.NewNop())

	_, err := p.Parse(filepath.Join(t.TempDir(), "nope.gpx"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestParse_MalformedXML(t *testing.T) {
	p := gpx.New(zap.NewNop())

	_, err := p.Parse(writeGPX(t, "<gpx><trk><trkseg>"))
	require.Error(t, err)
}

func TestParse_NoUsablePoints(t *testing.T) {
	p := gpx.New(zap.NewNop())

	_, err := p.Parse(writeGPX(t, `<gpx><trk><trkseg></trkseg></trk></gpx>`))
	require.ErrorIs(t, err, gpx.ErrNoTrackPoints)
}
