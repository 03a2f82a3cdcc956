package reduce

import (
	"fmt"
	"testing"
)

// Benchmark the full pipeline with different synthetic track sizes
func BenchmarkRunSizes(b *testing.B) {
	sizes := []int{1000, 5000, 10000}

	for _, size := range sizes {
		b.Run(fmt.Sprintf("pipeline-%d-points", size), func(b *testing.B) {
			b.ReportAllocs()

			for i := 0; i < b.N; i++ {
				b.StopTimer()
				tracks := syntheticTracks(10, size/10)
				b.StartTimer()

				result := Run(tracks, DefaultConfig(), nil)
				if result.Stats.FinalTracks == 0 {
					b.Fatal("Pipeline dropped all tracks")
				}
			}
		})
	}
}

func BenchmarkSimplify(b *testing.B) {
	base := make([]LatLng, 10000)
	for i := range base {
		// Alternating straight runs and corners so both branches of the
		// collinearity check are exercised.
		lat := 46.0 + float64(i)*0.0001
		lng := 7.0 + float64(i)*0.0001
		if i%17 == 0 {
			lng += 0.001
		}
		base[i] = LatLng{Lat: lat, Lng: lng}
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		b.StopTimer()
		points := make([]LatLng, len(base))
		copy(points, base)
		b.StartTimer()

		result := Simplify(points)
		if len(result) == 0 {
			b.Fatal("Simplify removed all points")
		}
	}
}

func BenchmarkCoverageRegistry(b *testing.B) {
	points := make([]LatLng, 10000)
	for i := range points {
		points[i] = LatLng{
			Lat: 46.0 + float64(i%100)*0.0001,
			Lng: 7.0 + float64(i/100)*0.0001,
		}
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		registry := NewCoverageRegistry(4)
		for _, p := range points {
			registry.Claim(p)
		}
		if registry.Size() == 0 {
			b.Fatal("Registry claimed nothing")
		}
	}
}

func syntheticTracks(count, pointsPerTrack int) []Track {
	tracks := make([]Track, count)
	for t := range tracks {
		points := make([]LatLng, pointsPerTrack)
		for i := range points {
			points[i] = LatLng{
				Lat: 46.0 + float64(t)*0.1 + float64(i)*0.0000501,
				Lng: 7.0 + float64(t)*0.1 + float64(i%7)*0.0001,
			}
		}
		tracks[t] = Track{
			Name:     fmt.Sprintf("track_%03d.gpx", t),
			Activity: ActivityWalking,
			Points:   points,
		}
	}
	return tracks
}
