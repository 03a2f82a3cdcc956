package gpx

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
)

// ErrNoTracks is returned for well-formed XML without any <trk>
// element. Callers treat it like any other per-file parse failure:
// report and skip.
var ErrNoTracks = errors.New("no tracks in file")

// Parse reads and parses a GPX file, extracting its track points in
// document order.
func Parse(filename string) (*Track, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() {
		_ = file.Close()
	}()

	track, err := ParseReader(file)
	if err != nil {
		return nil, err
	}
	track.Name = filename
	return track, nil
}

// ParseReader parses GPX from an io.Reader.
func ParseReader(r io.Reader) (*Track, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	var doc document
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse GPX: %w", err)
	}
	if len(doc.Tracks) == 0 {
		return nil, ErrNoTracks
	}

	track := &Track{Type: doc.Tracks[0].Type}
	for _, trk := range doc.Tracks {
		for _, segment := range trk.Segments {
			for _, raw := range segment.Points {
				point, ok := parsePoint(raw)
				if !ok {
					track.Skipped++
					continue
				}
				track.Points = append(track.Points, point)
			}
		}
	}

	return track, nil
}

// parsePoint converts raw coordinate attributes to a Point. It rejects
// points with a missing or malformed axis and the (0,0) "no GPS fix"
// sentinel. A missing axis is never defaulted to zero; an implicit 0.0
// would masquerade as a valid coordinate and defeat the sentinel check.
func parsePoint(raw trkpt) (Point, bool) {
	lonAttr := raw.Lon
	if lonAttr == "" {
		lonAttr = raw.Lng
	}
	if raw.Lat == "" || lonAttr == "" {
		return Point{}, false
	}

	lat, err := strconv.ParseFloat(raw.Lat, 64)
	if err != nil {
		return Point{}, false
	}
	lon, err := strconv.ParseFloat(lonAttr, 64)
	if err != nil {
		return Point{}, false
	}

	if lat == 0 && lon == 0 {
		return Point{}, false
	}

	return Point{Lat: lat, Lon: lon}, true
}
