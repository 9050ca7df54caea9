package gpx

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"gpxplan/internal/domain"
)

// ErrNoTrackPoints is returned when a document parses but contains no
// usable trackpoints.
var ErrNoTrackPoints = errors.New("gpx: no valid trackpoints found")

// Parser reads GPX files into domain tracks.
type Parser struct {
	log *zap.Logger
}

// New returns a parser that reports skipped points through log.
func New(log *zap.Logger) *Parser {
	if log == nil {
		log = zap.NewNop()
	}
	return &Parser{log: log}
}

// Parse reads the GPX file at path. Trackpoints with a missing or
// non-numeric lat/lon are skipped; a bad <ele> falls back to zero.
func (p *Parser) Parse(path string) (domain.Track, error) {
	f, err := os.Open(path)
	if err != nil {
		return domain.Track{}, fmt.Errorf("open gpx file: %w", err)
	}
	defer f.Close()

	track, err := p.decode(f)
	if err != nil {
		return domain.Track{}, fmt.Errorf("parse gpx file %s: %w", path, err)
	}
	if len(track.Points) == 0 {
		return domain.Track{}, fmt.Errorf("%s: %w", path, ErrNoTrackPoints)
	}
	return track, nil
}

// decode walks the token stream so that namespaced and namespace-free
// documents are handled identically: element matching is on local names.
func (p *Parser) decode(r io.Reader) (domain.Track, error) {
	dec := xml.NewDecoder(r)

	var track domain.Track
	skipped := 0
	depth := []string{} // local-name path from the root

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return domain.Track{}, err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			local := t.Name.Local
			switch local {
			case "trkpt":
				pt, ok := p.readTrackPoint(dec, t)
				if ok {
					track.Points = append(track.Points, pt)
				} else {
					skipped++
				}
				// readTrackPoint consumes through </trkpt>; no push.
			case "name":
				if len(depth) > 0 && depth[len(depth)-1] == "trk" && track.Name == "" {
					var name string
					if err := dec.DecodeElement(&name, &t); err != nil {
						return domain.Track{}, err
					}
					track.Name = strings.TrimSpace(name)
				} else {
					depth = append(depth, local)
				}
			default:
				depth = append(depth, local)
			}
		case xml.EndElement:
			if len(depth) > 0 {
				depth = depth[:len(depth)-1]
			}
		}
	}

	if skipped > 0 {
		p.log.Warn("skipped malformed trackpoints",
			zap.Int("skipped", skipped),
			zap.Int("kept", len(track.Points)))
	}
	return track, nil
}

// readTrackPoint consumes one trkpt element, including its end tag, and
// reports whether it produced a usable point.
func (p *Parser) readTrackPoint(dec *xml.Decoder, start xml.StartElement) (domain.TrackPoint, bool) {
	var raw struct {
		Lat string `xml:"lat,attr"`
		Lon string `xml:"lon,attr"`
		Ele string `xml:"ele"`
	}
	if err := dec.DecodeElement(&raw, &start); err != nil {
		p.log.Warn("unreadable trackpoint element", zap.Error(err))
		return domain.TrackPoint{}, false
	}
	if raw.Lat == "" || raw.Lon == "" {
		p.log.Warn("trackpoint missing lat/lon attribute")
		return domain.TrackPoint{}, false
	}

	lat, err := strconv.ParseFloat(raw.Lat, 64)
	if err != nil {
		p.log.Warn("invalid latitude", zap.String("lat", raw.Lat))
		return domain.TrackPoint{}, false
	}
	lon, err := strconv.ParseFloat(raw.Lon, 64)
	if err != nil {
		p.log.Warn("invalid longitude", zap.String("lon", raw.Lon))
		return domain.TrackPoint{}, false
	}

	ele := 0.0
	if s := strings.TrimSpace(raw.Ele); s != "" {
		if v, err := strconv.ParseFloat(s, 64); err == nil {
			ele = v
		} else {
			p.log.Warn("invalid elevation, using 0", zap.String("ele", s))
		}
	}
	return domain.TrackPoint{Lat: lat, Lon: lon, Ele: ele}, true
}

// Compile-time assertion that Parser implements domain.TrackParser.
var _ domain.TrackParser = (*Parser)(nil)
