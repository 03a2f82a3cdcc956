package reduce

import "math"

// Round quantizes value to the given number of decimal digits, rounding
// halves away from zero. Idempotent: re-rounding an already-rounded
// value is a no-op.
func Round(value float64, digits int) float64 {
	scale := math.Pow10(digits)
	return math.Round(value*scale) / scale
}

// collinear reports whether three points lie exactly on one line, via
// the cross-product test. Exact float comparison is intentional: the
// rounding stage quantizes coordinates first, so identical slopes
// compare equal instead of almost-equal. No epsilon.
func collinear(a, b, c LatLng) bool {
	return (a.Lat-c.Lat)*(c.Lng-b.Lng) == (c.Lat-b.Lat)*(a.Lng-c.Lng)
}
