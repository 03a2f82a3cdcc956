package reduce

import (
	"time"

	"go.uber.org/zap"
)

// Run executes the reduction pipeline over all tracks: rounding,
// duplicate collapse, novelty filtering, simplification. The novelty
// stage mutates registry state shared across tracks, so tracks must
// arrive in stable file-enumeration order and that pass is strictly
// sequential; for a given input order the result is deterministic.
func Run(tracks []Track, cfg Config, logger *zap.Logger) Result {
	if logger == nil {
		logger = zap.NewNop()
	}
	start := time.Now()

	stats := Stats{
		TracksParsed: len(tracks),
		PointsParsed: countPoints(tracks),
	}
	logger.Info("loaded tracks",
		zap.Int("tracks", stats.TracksParsed),
		zap.Int("points", stats.PointsParsed))

	RoundTracks(tracks, cfg.OutputDigits)

	CollapseDuplicates(tracks)
	stats.PointsAfterDedup = countPoints(tracks)
	logger.Info("collapsed duplicate points",
		zap.Int("removed", stats.PointsParsed-stats.PointsAfterDedup))

	var survivors []Track
	if cfg.GroupByActivity {
		survivors = FilterNovelByActivity(tracks, cfg, logger)
	} else {
		survivors = FilterNovel(tracks, NewCoverageRegistry(cfg.CoarseDigits), logger)
	}
	stats.TracksDropped = stats.TracksParsed - len(survivors)
	logger.Info("filtered redundant tracks",
		zap.Int("dropped", stats.TracksDropped),
		zap.Int("remaining", len(survivors)))

	SimplifyTracks(survivors)

	stats.FinalTracks = len(survivors)
	stats.FinalPoints = countPoints(survivors)
	stats.ProcessingTime = time.Since(start)
	logger.Info("reduction complete",
		zap.Int("tracks", stats.FinalTracks),
		zap.Int("points", stats.FinalPoints),
		zap.Duration("elapsed", stats.ProcessingTime))

	return Result{Tracks: survivors, Stats: stats}
}

// RoundTracks quantizes every coordinate of every track in place.
// Must run before duplicate collapse and novelty filtering; both
// depend on post-rounding exact equality.
func RoundTracks(tracks []Track, digits int) {
	for i := range tracks {
		points := tracks[i].Points
		for j := range points {
			points[j].Lat = Round(points[j].Lat, digits)
			points[j].Lng = Round(points[j].Lng, digits)
		}
	}
}

// CollapseDuplicates removes immediately-consecutive duplicate points
// within each track. A point equal to a non-adjacent earlier point is
// retained; only adjacent runs collapse.
func CollapseDuplicates(tracks []Track) {
	for i := range tracks {
		tracks[i].Points = collapseRuns(tracks[i].Points)
	}
}

func collapseRuns(points []LatLng) []LatLng {
	if len(points) < 2 {
		return points
	}
	w := 1
	for r := 1; r < len(points); r++ {
		if points[r] == points[w-1] {
			continue
		}
		points[w] = points[r]
		w++
	}
	return points[:w]
}

// FilterNovel drops tracks whose every coarse cell was already claimed
// by an earlier track, preserving the relative order of survivors.
// All of a track's cells are claimed before its verdict is decided, so
// a dropped track still blocks later tracks from those cells. A track
// with zero points claims nothing and is always dropped.
func FilterNovel(tracks []Track, registry *CoverageRegistry, logger *zap.Logger) []Track {
	if logger == nil {
		logger = zap.NewNop()
	}
	kept := tracks[:0]
	for _, track := range tracks {
		if !claimAll(registry, track.Points) {
			logger.Debug("dropping track with no new coverage",
				zap.String("track", track.Name),
				zap.Int("points", len(track.Points)))
			continue
		}
		kept = append(kept, track)
	}
	return kept
}

// FilterNovelByActivity runs an independent novelty pass per known
// activity type, so that e.g. a cycling track cannot suppress a walking
// track covering the same ground. Tracks with unknown or missing
// activity labels are dropped. Relative order of survivors is
// preserved; per-type registries never interact, so a single ordered
// scan is equivalent to separate per-type passes.
func FilterNovelByActivity(tracks []Track, cfg Config, logger *zap.Logger) []Track {
	if logger == nil {
		logger = zap.NewNop()
	}
	registries := make(map[string]*CoverageRegistry, len(KnownActivities))
	for _, label := range KnownActivities {
		registries[label] = NewCoverageRegistry(cfg.CoarseDigits)
	}

	kept := tracks[:0]
	for _, track := range tracks {
		registry, known := registries[track.Activity]
		if !known {
			logger.Debug("dropping track with unclassified activity",
				zap.String("track", track.Name),
				zap.String("activity", track.Activity))
			continue
		}
		if !claimAll(registry, track.Points) {
			logger.Debug("dropping track with no new coverage",
				zap.String("track", track.Name),
				zap.String("activity", track.Activity),
				zap.Int("points", len(track.Points)))
			continue
		}
		kept = append(kept, track)
	}
	return kept
}

// claimAll claims every point's cell and reports whether any claim was
// novel. It always scans the full track: claims are committed even when
// the track ends up dropped.
func claimAll(registry *CoverageRegistry, points []LatLng) bool {
	novel := false
	for _, p := range points {
		if registry.Claim(p) {
			novel = true
		}
	}
	return novel
}

// SimplifyTracks applies collinearity simplification to each track
// independently.
func SimplifyTracks(tracks []Track) {
	for i := range tracks {
		tracks[i].Points = Simplify(tracks[i].Points)
	}
}

// Simplify removes interior points that sit exactly on the line through
// their neighbors. Write-index single pass: when the middle of a triple
// is dropped, the same anchor pair is re-checked against the next
// point, so a maximal straight run collapses to its two endpoints.
// Endpoints are never removed; tracks with fewer than 3 points are
// returned untouched.
func Simplify(points []LatLng) []LatLng {
	if len(points) < 3 {
		return points
	}
	w := 2
	for r := 2; r < len(points); r++ {
		if collinear(points[w-2], points[r], points[w-1]) {
			points[w-1] = points[r]
		} else {
			points[w] = points[r]
			w++
		}
	}
	return points[:w]
}

func countPoints(tracks []Track) int {
	sum := 0
	for _, track := range tracks {
		sum += len(track.Points)
	}
	return sum
}
