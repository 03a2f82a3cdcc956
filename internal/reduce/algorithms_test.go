package reduce

import "testing"

func TestRound(t *testing.T) {
	cases := []struct {
		value  float64
		digits int
		want   float64
	}{
		{1.234567891, 6, 1.234568},
		{51.3297934, 6, 51.329793},
		{-6.5678901, 6, -6.56789},
		{2.5, 0, 3},     // halves round away from zero
		{-2.5, 0, -3},   // also on the negative side
		{1.00004, 4, 1.0},
		{1.00005, 4, 1.0001},
		{0, 6, 0},
	}

	for _, tc := range cases {
		got := Round(tc.value, tc.digits)
		if got != tc.want {
			t.Errorf("Round(%v, %d) = %v, want %v", tc.value, tc.digits, got, tc.want)
		}
	}
}

func TestRoundIdempotent(t *testing.T) {
	values := []float64{51.3297934, -0.1234565, 7.0000001, 179.9999994, -89.9999996, 0.5}

	for _, v := range values {
		once := Round(v, 6)
		twice := Round(once, 6)
		if once != twice {
			t.Errorf("Round not idempotent for %v: %v != %v", v, once, twice)
		}
	}
}

func TestCollinear(t *testing.T) {
	cases := []struct {
		name    string
		a, b, c LatLng
		want    bool
	}{
		{"diagonal slope one", LatLng{0, 1}, LatLng{2, 3}, LatLng{1, 2}, true},
		{"vertical line", LatLng{1, 5}, LatLng{3, 5}, LatLng{2, 5}, true},
		{"horizontal line", LatLng{4, 1}, LatLng{4, 9}, LatLng{4, 3}, true},
		{"identical points", LatLng{2, 2}, LatLng{2, 2}, LatLng{2, 2}, true},
		{"off the line", LatLng{0, 1}, LatLng{2, 3}, LatLng{1, 2.000001}, false},
		{"triangle", LatLng{0, 0}, LatLng{1, 0}, LatLng{0, 1}, false},
	}

	for _, tc := range cases {
		got := collinear(tc.a, tc.b, tc.c)
		if got != tc.want {
			t.Errorf("%s: collinear(%v, %v, %v) = %v, want %v", tc.name, tc.a, tc.b, tc.c, got, tc.want)
		}
	}
}
