// Package analysis runs the spatial accessibility pipeline: coverage
// estimation, branch gap detection, isolation scoring, and the network
// footprint hull. The whole run is a single synchronous batch; given the same
// station list and parameters it always produces the same result.
package analysis

import (
	"time"

	"github.com/google/uuid"

	"github.com/bkk-rail-3d/analyzer/internal/geo"
	"github.com/bkk-rail-3d/analyzer/internal/stations"
)

// Params are the run-level knobs of the analysis.
type Params struct {
	BufferRadiusKm float64
	GapThresholdKm float64
	CellSizeKm     float64
	ReferenceLat   float64

	BufferRingPoints int
	DesertRingPoints int
	DesertRadiusKm   float64

	IsolationStride int
	MaxDesertZones  int

	Workers int
}

// DefaultParams returns the parameters the analyzer was calibrated with:
// 1 km walkable buffers, 5 km desert threshold, 100 m grid cells, Bangkok
// reference latitude.
func DefaultParams() Params {
	return Params{
		BufferRadiusKm:   1.0,
		GapThresholdKm:   5.0,
		CellSizeKm:       0.1,
		ReferenceLat:     13.7,
		BufferRingPoints: 64,
		DesertRingPoints: 48,
		DesertRadiusKm:   2.0,
		IsolationStride:  5,
		MaxDesertZones:   10,
	}
}

// Result is the complete, immutable outcome of one analysis run.
type Result struct {
	RunID       string
	GeneratedAt time.Time

	Stations []stations.Station
	Params   Params
	Proj     geo.Projection

	Coverage CoverageResult
	Gaps     []GapRecord
	Zones    []DesertZone

	// Hull is the network footprint over (lng, lat) station positions: a
	// closed CCW ring, or the degenerate point set when fewer than 3 distinct
	// positions exist.
	Hull [][2]float64
}

// Run executes the full pipeline over the given stations. Degenerate inputs
// (empty list, single-station branches) produce well-formed empty results,
// never errors.
func Run(list []stations.Station, p Params) Result {
	proj := geo.NewProjection(p.ReferenceLat)
	grid := NewGrid(list, p.BufferRadiusKm, p.CellSizeKm, proj)

	points := make([][2]float64, len(list))
	for i, s := range list {
		points[i] = [2]float64{s.Lng, s.Lat}
	}

	return Result{
		RunID:       uuid.New().String(),
		GeneratedAt: time.Now().UTC(),
		Stations:    list,
		Params:      p,
		Proj:        proj,
		Coverage:    EstimateCoverage(grid, list, p.BufferRadiusKm, p.Workers),
		Gaps:        FindGaps(stations.GroupByBranch(list), p.GapThresholdKm),
		Zones:       FindDesertZones(grid, list, p.GapThresholdKm, p.IsolationStride, p.MaxDesertZones),
		Hull:        geo.ConvexHull(points),
	}
}
