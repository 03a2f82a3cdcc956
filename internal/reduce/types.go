package reduce

import (
	"strings"
	"time"
)

// LatLng is a single track coordinate. Coordinates compare with exact
// float equality; the rounding stage quantizes every value first, which
// makes exact matches meaningful rather than accidental.
type LatLng struct {
	Lat float64
	Lng float64
}

// Track is one GPX file reduced to its ordered coordinate sequence.
// Point order is temporal order along the track and is never reordered
// by any stage; stages only shrink the sequence or round values in
// place. Each track exclusively owns its points slice.
type Track struct {
	// Name is the source file path. It correlates the track with its
	// input and names the output artifact.
	Name string

	// Activity is the normalized activity label from the GPX <type>
	// element, or "" when the file carries none.
	Activity string

	Points []LatLng
}

// Canonical activity labels used for partitioned novelty filtering.
const (
	ActivityWalking = "walking"
	ActivityRunning = "running"
	ActivityCycling = "cycling"
)

// KnownActivities lists the activity labels that get their own coverage
// registry when partitioning is enabled.
var KnownActivities = []string{ActivityWalking, ActivityRunning, ActivityCycling}

// NormalizeActivity maps a raw GPX <type> label onto the canonical set.
// "hiking" is the one known synonym and folds into walking. Other
// labels are lowercased and passed through; whether they count as known
// is decided by the novelty stage.
func NormalizeActivity(raw string) string {
	label := strings.ToLower(strings.TrimSpace(raw))
	if label == "hiking" {
		return ActivityWalking
	}
	return label
}

// Config holds reduction pipeline parameters.
type Config struct {
	// OutputDigits is the coordinate precision of emitted points.
	OutputDigits int

	// CoarseDigits is the precision of novelty registry cells. Lower
	// than OutputDigits so nearby re-recordings of the same ground
	// collapse into the same cell.
	CoarseDigits int

	// GroupByActivity runs an independent novelty pass per known
	// activity type and drops tracks with unknown labels.
	GroupByActivity bool
}

// DefaultConfig returns the production configuration.
func DefaultConfig() Config {
	return Config{
		OutputDigits: 6, // ~0.1m, plenty for map rendering
		CoarseDigits: 4, // ~10m novelty cells
	}
}

// Stats reports what happened during a reduction run so callers can
// surface it to users.
type Stats struct {
	TracksParsed     int           `json:"tracks_parsed"`
	PointsParsed     int           `json:"points_parsed"`
	PointsAfterDedup int           `json:"points_after_dedup"`
	TracksDropped    int           `json:"tracks_dropped"`
	FinalTracks      int           `json:"final_tracks"`
	FinalPoints      int           `json:"final_points"`
	ProcessingTime   time.Duration `json:"processing_time_ms"`
}

// Result contains the surviving tracks and run statistics.
type Result struct {
	Tracks []Track
	Stats  Stats
}
