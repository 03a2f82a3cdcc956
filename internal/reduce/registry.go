package reduce

// CoverageRegistry records which coarse map cells have been claimed by
// earlier tracks. Semantically a flat set of (lat,lng) pairs; stored as
// a two-level map (coarse latitude, then set of coarse longitudes) to
// keep lookups cheap. The registry only ever grows: cells stay claimed
// even when the claiming track is itself dropped for contributing
// nothing new.
type CoverageRegistry struct {
	digits int
	cells  map[float64]map[float64]struct{}
}

// NewCoverageRegistry returns an empty registry with the given cell
// precision in decimal digits.
func NewCoverageRegistry(digits int) *CoverageRegistry {
	return &CoverageRegistry{
		digits: digits,
		cells:  make(map[float64]map[float64]struct{}),
	}
}

// Claim records the coarse cell containing p and reports whether the
// cell was previously unclaimed.
func (r *CoverageRegistry) Claim(p LatLng) bool {
	lat := Round(p.Lat, r.digits)
	lng := Round(p.Lng, r.digits)

	lngs, ok := r.cells[lat]
	if !ok {
		lngs = make(map[float64]struct{})
		r.cells[lat] = lngs
	}
	if _, seen := lngs[lng]; seen {
		return false
	}
	lngs[lng] = struct{}{}
	return true
}

// Size returns the number of distinct coarse cells claimed so far.
func (r *CoverageRegistry) Size() int {
	n := 0
	for _, lngs := range r.cells {
		n += len(lngs)
	}
	return n
}
