package geojson

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"time"

	"github.com/bkk-rail-3d/analyzer/internal/analysis"
	"github.com/bkk-rail-3d/analyzer/internal/geo"
)

// Assemble builds the output document from an analysis result. The feature
// order is fixed: network footprint hull first, then for every station a
// point feature immediately followed by its buffer polygon, then every gap
// line, then every desert zone ring in rank order.
func Assemble(res analysis.Result) *FeatureCollection {
	gaps := make([]GapInfo, 0, len(res.Gaps))
	for _, g := range res.Gaps {
		gaps = append(gaps, GapInfo{
			Line:       g.Branch,
			From:       g.From.NameEng,
			To:         g.To.NameEng,
			DistanceKm: g.DistanceKm,
		})
	}

	fc := &FeatureCollection{
		Type: "FeatureCollection",
		Metadata: Metadata{
			Title: "Bangkok Rail Network - Spatial Accessibility Analysis",
			Description: fmt.Sprintf(
				"%v km station buffers, transit desert gaps, and network coverage footprint.",
				res.Params.BufferRadiusKm),
			RunID:               res.RunID,
			GeneratedAt:         res.GeneratedAt.Format(time.RFC3339),
			TransitCoverageSqKm: round2(res.Coverage.AreaSqKm),
			TotalStations:       len(res.Stations),
			BufferRadiusKm:      res.Params.BufferRadiusKm,
			GapThresholdKm:      res.Params.GapThresholdKm,
			TransitDesertGaps:   gaps,
		},
	}

	// A degenerate hull (fewer than 3 distinct stations) cannot be rendered
	// as a polygon and is left out of the document.
	if len(res.Hull) >= 4 {
		fc.Features = append(fc.Features, Feature{
			Type: "Feature",
			Properties: map[string]interface{}{
				"type":        "network_footprint",
				"description": "Convex hull of all rail stations (network extent)",
				"color":       "#1E90FF",
				"fillOpacity": 0.05,
			},
			Geometry: Geometry{Type: "Polygon", Coordinates: [][][2]float64{res.Hull}},
		})
	}

	for _, s := range res.Stations {
		fc.Features = append(fc.Features, Feature{
			Type: "Feature",
			Properties: map[string]interface{}{
				"type":      "station",
				"stationId": s.ID,
				"name":      s.NameEng,
				"nameTH":    s.Name,
				"line":      s.LineName,
				"service":   s.Service,
				"color":     s.LineColor,
			},
			Geometry: Geometry{Type: "Point", Coordinates: [2]float64{s.Lng, s.Lat}},
		})

		ring := res.Proj.CirclePolygon(s.Lat, s.Lng, res.Params.BufferRadiusKm, res.Params.BufferRingPoints)
		fc.Features = append(fc.Features, Feature{
			Type: "Feature",
			Properties: map[string]interface{}{
				"type":      fmt.Sprintf("buffer_%vkm", res.Params.BufferRadiusKm),
				"stationId": s.ID,
				"name":      s.NameEng,
				"line":      s.LineName,
				"color":     s.LineColor,
				"radius_km": res.Params.BufferRadiusKm,
			},
			Geometry: Geometry{Type: "Polygon", Coordinates: []geo.Ring{ring}},
		})
	}

	for _, g := range res.Gaps {
		fc.Features = append(fc.Features, Feature{
			Type: "Feature",
			Properties: map[string]interface{}{
				"type":         "transit_desert_gap",
				"line":         g.From.LineName,
				"from_station": g.From.NameEng,
				"to_station":   g.To.NameEng,
				"gap_km":       g.DistanceKm,
				"color":        "#FF0000",
			},
			Geometry: Geometry{Type: "LineString", Coordinates: [][2]float64{
				{g.From.Lng, g.From.Lat},
				{g.To.Lng, g.To.Lat},
			}},
		})
	}

	for _, z := range res.Zones {
		ring := res.Proj.CirclePolygon(z.Lat, z.Lng, res.Params.DesertRadiusKm, res.Params.DesertRingPoints)
		fc.Features = append(fc.Features, Feature{
			Type: "Feature",
			Properties: map[string]interface{}{
				"type":               "transit_desert_zone",
				"rank":               z.Rank,
				"nearest_station_km": z.NearestKm,
				"color":              "#FF4444",
				"fillOpacity":        0.15,
			},
			Geometry: Geometry{Type: "Polygon", Coordinates: []geo.Ring{ring}},
		})
	}

	return fc
}

// Write marshals the document and writes it through a temp file and rename,
// so a failed run never leaves a partial document at path.
func Write(fc *FeatureCollection, path string) error {
	data, err := json.MarshalIndent(fc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal document: %w", err)
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to move document into place: %w", err)
	}
	return nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
