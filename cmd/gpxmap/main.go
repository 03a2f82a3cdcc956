package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"github.com/schollz/progressbar/v3"
	"go.uber.org/zap"

	"github.com/planbiir/gpxmap/internal/gpx"
	"github.com/planbiir/gpxmap/internal/mapdata"
	"github.com/planbiir/gpxmap/internal/reduce"
)

func main() {
	var (
		inputDir  = flag.String("i", "", "Input directory containing GPX files")
		outputDir = flag.String("o", "", "Output directory for JS coordinate files")
		byType    = flag.Bool("by-type", false, "Filter novelty per activity type and group outputs into coords_<type> subdirectories")
		workers   = flag.Int("workers", runtime.NumCPU(), "Parallel GPX parsers")
		showStats = flag.Bool("stats", false, "Show detailed statistics")
		statsJSON = flag.Bool("stats-json", false, "Output statistics as JSON")
		version   = flag.Bool("version", false, "Show version information")
	)

	flag.Usage = func() {
		fmt.Printf("gpxmap - Reduce GPX archives to map-ready coordinate files\n\n")
		fmt.Printf("usage: gpxmap -i /path/to/gpx-dir -o /path/to/output-dir\n\n")
		fmt.Printf("examples:\n")
		fmt.Printf("  gpxmap -i ./tracks -o ./coords\n")
		fmt.Printf("  gpxmap -i ./tracks -o ./coords -by-type\n\n")
		fmt.Printf("options:\n")
		flag.PrintDefaults()
	}

	flag.Parse()

	if *version {
		fmt.Println("gpxmap v1.0.0 - GPX coordinate reducer")
		fmt.Println("https://github.com/planbiir/gpxmap")
		os.Exit(0)
	}

	if *inputDir == "" || *outputDir == "" {
		flag.Usage()
		os.Exit(2)
	}

	logger := newLogger()
	defer func() {
		_ = logger.Sync()
	}()

	tracks, err := loadTracks(*inputDir, *workers, logger)
	if err != nil {
		logger.Fatal("failed to load tracks", zap.Error(err))
	}

	cfg := reduce.DefaultConfig()
	cfg.GroupByActivity = *byType

	result := reduce.Run(tracks, cfg, logger)

	if err := os.MkdirAll(*outputDir, 0o755); err != nil {
		logger.Fatal("failed to create output directory",
			zap.String("dir", *outputDir), zap.Error(err))
	}

	for _, track := range result.Tracks {
		path, err := mapdata.Write(*outputDir, track, *byType)
		if err != nil {
			logger.Fatal("failed to write track data",
				zap.String("track", track.Name), zap.Error(err))
		}
		logger.Info("wrote track data",
			zap.String("path", path), zap.Int("points", len(track.Points)))
	}

	if *statsJSON {
		jsonData, err := json.MarshalIndent(result.Stats, "", "  ")
		if err != nil {
			logger.Fatal("failed to marshal stats", zap.Error(err))
		}
		fmt.Println(string(jsonData))
	} else if *showStats {
		printStats(result.Stats)
	}
}

// loadTracks parses every .gpx file directly under dir, in lexical
// order. Files are parsed concurrently but results keep enumeration
// order, which the novelty filter depends on. Per-file failures are
// reported and skipped; only an unreadable directory aborts the batch.
func loadTracks(dir string, workers int, logger *zap.Logger) ([]reduce.Track, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read input directory: %w", err)
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		if strings.ToLower(filepath.Ext(entry.Name())) != ".gpx" {
			logger.Info("skipping non-GPX file", zap.String("path", path))
			continue
		}
		paths = append(paths, path)
	}

	bar := progressbar.NewOptions(len(paths),
		progressbar.OptionSetDescription("Parsing GPX"),
		progressbar.OptionShowCount(),
	)

	if workers < 1 {
		workers = 1
	}

	parsed := make([]*gpx.Track, len(paths))
	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				track, err := gpx.Parse(paths[idx])
				if err != nil {
					logger.Warn("skipping unparsable file",
						zap.String("path", paths[idx]), zap.Error(err))
				} else {
					parsed[idx] = track
				}
				_ = bar.Add(1)
			}
		}()
	}
	for idx := range paths {
		jobs <- idx
	}
	close(jobs)
	wg.Wait()

	tracks := make([]reduce.Track, 0, len(parsed))
	for _, track := range parsed {
		if track == nil {
			continue
		}
		if track.Skipped > 0 {
			logger.Warn("skipped invalid track points",
				zap.String("path", track.Name), zap.Int("skipped", track.Skipped))
		}
		points := make([]reduce.LatLng, len(track.Points))
		for i, p := range track.Points {
			points[i] = reduce.LatLng{Lat: p.Lat, Lng: p.Lon}
		}
		tracks = append(tracks, reduce.Track{
			Name:     track.Name,
			Activity: reduce.NormalizeActivity(track.Type),
			Points:   points,
		})
	}
	return tracks, nil
}

// newLogger builds a console logger on stderr so the progress bar and
// stats output on stdout stay clean for shell pipelines.
func newLogger() *zap.Logger {
	cfg := zap.NewDevelopmentConfig()
	cfg.DisableStacktrace = true
	cfg.DisableCaller = true
	logger, err := cfg.Build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build logger: %v\n", err)
		os.Exit(1)
	}
	return logger
}

func printStats(stats reduce.Stats) {
	fmt.Printf("\n📊 Reduction statistics:\n")
	fmt.Printf("📍 Tracks: %d parsed → %d written (%d dropped)\n",
		stats.TracksParsed, stats.FinalTracks, stats.TracksDropped)
	fmt.Printf("🗺️  Points: %d parsed → %d after dedup → %d final\n",
		stats.PointsParsed, stats.PointsAfterDedup, stats.FinalPoints)
	fmt.Printf("⏱️  Processing time: %v\n", stats.ProcessingTime)
}
