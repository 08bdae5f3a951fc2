// Package geojson assembles the analysis result into a GeoJSON
// FeatureCollection for map visualization.
package geojson

// FeatureCollection is the output document. The metadata block is not part of
// the GeoJSON standard but is preserved by the viewers this feeds.
type FeatureCollection struct {
	Type     string    `json:"type"`
	Metadata Metadata  `json:"metadata"`
	Features []Feature `json:"features"`
}

// Metadata summarizes the run the document was generated from.
type Metadata struct {
	Title               string    `json:"title"`
	Description         string    `json:"description"`
	RunID               string    `json:"run_id"`
	GeneratedAt         string    `json:"generated_at"`
	TransitCoverageSqKm float64   `json:"transit_coverage_sqkm"`
	TotalStations       int       `json:"total_stations"`
	BufferRadiusKm      float64   `json:"buffer_radius_km"`
	GapThresholdKm      float64   `json:"gap_threshold_km"`
	TransitDesertGaps   []GapInfo `json:"transit_desert_gaps"`
}

// GapInfo is one branch gap in the metadata block.
type GapInfo struct {
	Line       string  `json:"line"`
	From       string  `json:"from"`
	To         string  `json:"to"`
	DistanceKm float64 `json:"distance_km"`
}

// Feature is a single GeoJSON feature.
type Feature struct {
	Type       string                 `json:"type"`
	Properties map[string]interface{} `json:"properties"`
	Geometry   Geometry               `json:"geometry"`
}

// Geometry holds any GeoJSON geometry. Coordinates are always ordered
// longitude before latitude:
//   - Point:      [2]float64
//   - LineString: [][2]float64
//   - Polygon:    one or more rings of [2]float64
type Geometry struct {
	Type        string      `json:"type"`
	Coordinates interface{} `json:"coordinates"`
}
