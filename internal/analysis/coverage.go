package analysis

import (
	"math"
	"runtime"
	"sync"

	"github.com/bkk-rail-3d/analyzer/internal/geo"
	"github.com/bkk-rail-3d/analyzer/internal/stations"
)

// Grid is the uniform sampling lattice laid over the buffered bounding box of
// the whole network. Both the coverage estimate and the isolation scan sample
// it, so it is built once per run.
type Grid struct {
	MinLat, MinLng float64
	Rows, Cols     int
	CellSizeKm     float64
	Proj           geo.Projection
}

// NewGrid computes the bounding box of all stations, expands it by padKm on
// every side so no disk touches the boundary, and divides it into cellKm
// cells. An empty station list collapses to a zero-cell grid.
func NewGrid(list []stations.Station, padKm, cellKm float64, proj geo.Projection) Grid {
	g := Grid{CellSizeKm: cellKm, Proj: proj}
	if len(list) == 0 {
		return g
	}

	minLat, maxLat := list[0].Lat, list[0].Lat
	minLng, maxLng := list[0].Lng, list[0].Lng
	for _, s := range list[1:] {
		minLat = math.Min(minLat, s.Lat)
		maxLat = math.Max(maxLat, s.Lat)
		minLng = math.Min(minLng, s.Lng)
		maxLng = math.Max(maxLng, s.Lng)
	}

	padLat, padLng := proj.KmToDegrees(padKm, padKm)
	g.MinLat = minLat - padLat
	g.MinLng = minLng - padLng

	heightKm, widthKm := proj.DegreesToKm(maxLat+padLat-g.MinLat, maxLng+padLng-g.MinLng)
	g.Rows = int(math.Ceil(heightKm / cellKm))
	g.Cols = int(math.Ceil(widthKm / cellKm))
	return g
}

// StationOffsetsKm returns station positions in km-space relative to the grid
// origin as (y, x) pairs, precomputed once so cell tests are two subtractions
// and two multiplies.
func (g Grid) StationOffsetsKm(list []stations.Station) [][2]float64 {
	out := make([][2]float64, len(list))
	for i, s := range list {
		y, x := g.Proj.DegreesToKm(s.Lat-g.MinLat, s.Lng-g.MinLng)
		out[i] = [2]float64{y, x}
	}
	return out
}

// CellCenterKm returns the center of cell (row, col) in km-space.
func (g Grid) CellCenterKm(row, col int) (y, x float64) {
	return (float64(row) + 0.5) * g.CellSizeKm, (float64(col) + 0.5) * g.CellSizeKm
}

// CellCenterDegrees returns the center of cell (row, col) as (lat, lng).
func (g Grid) CellCenterDegrees(row, col int) (lat, lng float64) {
	y, x := g.CellCenterKm(row, col)
	dLat, dLng := g.Proj.KmToDegrees(y, x)
	return g.MinLat + dLat, g.MinLng + dLng
}

// CoverageResult is the aggregate union-area estimate for one run.
type CoverageResult struct {
	CoveredCells int
	TotalCells   int
	Rows, Cols   int
	CellSizeKm   float64
	AreaSqKm     float64
}

// EstimateCoverage estimates the union area of one radiusKm disk per station
// by counting cells whose center lies inside at least one disk. A cell counts
// once no matter how many disks overlap it, so no double counting is
// possible.
//
// Rows are scanned in parallel bands. Each cell is an independent boolean
// test, so the aggregate count is identical to a sequential scan; workers only
// change how fast it finishes. workers <= 0 means one per CPU.
func EstimateCoverage(g Grid, list []stations.Station, radiusKm float64, workers int) CoverageResult {
	res := CoverageResult{
		TotalCells: g.Rows * g.Cols,
		Rows:       g.Rows,
		Cols:       g.Cols,
		CellSizeKm: g.CellSizeKm,
	}
	if res.TotalCells == 0 || len(list) == 0 {
		return res
	}

	offsets := g.StationOffsetsKm(list)
	radiusSq := radiusKm * radiusKm

	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > g.Rows {
		workers = g.Rows
	}

	counts := make([]int, workers)
	band := (g.Rows + workers - 1) / workers

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		start := w * band
		end := start + band
		if end > g.Rows {
			end = g.Rows
		}
		if start >= end {
			break
		}

		wg.Add(1)
		go func(w, start, end int) {
			defer wg.Done()
			covered := 0
			for r := start; r < end; r++ {
				for c := 0; c < g.Cols; c++ {
					y, x := g.CellCenterKm(r, c)
					for _, p := range offsets {
						dy, dx := y-p[0], x-p[1]
						if dy*dy+dx*dx <= radiusSq {
							covered++
							break
						}
					}
				}
			}
			counts[w] = covered
		}(w, start, end)
	}
	wg.Wait()

	for _, n := range counts {
		res.CoveredCells += n
	}
	res.AreaSqKm = float64(res.CoveredCells) * g.CellSizeKm * g.CellSizeKm
	return res
}
