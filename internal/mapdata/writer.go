// Package mapdata serializes reduced tracks as JS data files for map
// rendering scripts: one file per track holding a single array-literal
// variable of [lat,lng] pairs.
package mapdata

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/planbiir/gpxmap/internal/reduce"
)

// Encode renders the array literal for a track's points. No trailing
// comma after the last pair; an empty track renders as "[]".
func Encode(varName string, points []reduce.LatLng) string {
	var b strings.Builder
	b.WriteString("var ")
	b.WriteString(varName)
	b.WriteString(" = [")
	for i, p := range points {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteByte('[')
		b.WriteString(strconv.FormatFloat(p.Lat, 'f', -1, 64))
		b.WriteByte(',')
		b.WriteString(strconv.FormatFloat(p.Lng, 'f', -1, 64))
		b.WriteByte(']')
	}
	b.WriteString("];")
	return b.String()
}

// Write emits the data file for one track into outDir, swapping the
// source extension for .js. When byType is set and the track carries an
// activity label, the file lands in a coords_<activity> subdirectory,
// created on demand. Returns the written path.
func Write(outDir string, track reduce.Track, byType bool) (string, error) {
	dir := outDir
	if byType && track.Activity != "" {
		dir = filepath.Join(outDir, "coords_"+track.Activity)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	base := filepath.Base(track.Name)
	name := strings.TrimSuffix(base, filepath.Ext(base))
	outPath := filepath.Join(dir, name+".js")

	if err := os.WriteFile(outPath, []byte(Encode(name, track.Points)), 0o644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", outPath, err)
	}
	return outPath, nil
}
