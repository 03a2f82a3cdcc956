package gpx

import "encoding/xml"

// document mirrors just enough of the GPX schema to pull out track
// points and the activity label. Coordinate attributes stay strings
// here so one malformed attribute invalidates one point instead of the
// whole file; conversion happens per point in the parser.
type document struct {
	XMLName xml.Name `xml:"gpx"`
	Tracks  []struct {
		Name     string `xml:"name,omitempty"`
		Type     string `xml:"type,omitempty"`
		Segments []struct {
			Points []trkpt `xml:"trkpt"`
		} `xml:"trkseg"`
	} `xml:"trk"`
}

// trkpt carries the raw coordinate attributes of one track point. Some
// producers write "lng" instead of the standard "lon".
type trkpt struct {
	Lat string `xml:"lat,attr"`
	Lon string `xml:"lon,attr"`
	Lng string `xml:"lng,attr"`
}

// Point is one valid parsed track point.
type Point struct {
	Lat float64
	Lon float64
}

// Track is the parsed content of one GPX file: every valid point of
// every segment, in document order.
type Track struct {
	// Name is the source file path; set by Parse.
	Name string

	// Type is the raw <type> label of the first track element, or ""
	// when the file carries none.
	Type string

	Points []Point

	// Skipped counts points dropped for missing, malformed or
	// sentinel (0,0) coordinates.
	Skipped int
}
