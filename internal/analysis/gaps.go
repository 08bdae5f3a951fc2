package analysis

import (
	"fmt"
	"math"
	"sort"

	"github.com/bkk-rail-3d/analyzer/internal/geo"
	"github.com/bkk-rail-3d/analyzer/internal/stations"
)

// GapRecord reports two stations that are adjacent on a branch but separated
// by at least the desert threshold.
type GapRecord struct {
	Branch     string // "<line> (<prefix>-branch)"
	From, To   stations.Station
	DistanceKm float64 // rounded to 2 decimals
}

// DesertZone is a sampled grid location far from every station.
type DesertZone struct {
	Lat, Lng  float64
	NearestKm float64 // distance to the nearest station, rounded to 2 decimals
	Rank      int     // 1-based, most isolated first
}

// FindGaps scans every branch group for consecutive pairs at least
// thresholdKm apart. The comparison is inclusive. A branch with a single
// station has no pairs and contributes nothing.
//
// Distances use the haversine great-circle formula on true geographic
// coordinates: gaps can span distances where the flat planar approximation
// visibly errs.
func FindGaps(groups []stations.BranchGroup, thresholdKm float64) []GapRecord {
	var out []GapRecord
	for _, g := range groups {
		for i := 0; i+1 < len(g.Stations); i++ {
			a, b := g.Stations[i], g.Stations[i+1]
			dist := geo.Haversine(a.Lat, a.Lng, b.Lat, b.Lng)
			if dist >= thresholdKm {
				out = append(out, GapRecord{
					Branch:     fmt.Sprintf("%s (%s-branch)", g.Key.Line, g.Key.Prefix),
					From:       a,
					To:         b,
					DistanceKm: round2(dist),
				})
			}
		}
	}
	return out
}

// FindDesertZones samples every stride-th row and column of the coverage grid,
// keeps locations whose nearest station is at least thresholdKm away, and
// returns the maxZones most isolated, ranked from 1. The sort is stable, so
// ties keep sample order. An empty station set or zero-cell grid yields no
// zones.
func FindDesertZones(g Grid, list []stations.Station, thresholdKm float64, stride, maxZones int) []DesertZone {
	if g.Rows == 0 || g.Cols == 0 || len(list) == 0 {
		return nil
	}
	if stride < 1 {
		stride = 1
	}

	offsets := g.StationOffsetsKm(list)

	var zones []DesertZone
	for r := 0; r < g.Rows; r += stride {
		for c := 0; c < g.Cols; c += stride {
			y, x := g.CellCenterKm(r, c)
			nearest := math.MaxFloat64
			for _, p := range offsets {
				d := math.Sqrt((y-p[0])*(y-p[0]) + (x-p[1])*(x-p[1]))
				if d < nearest {
					nearest = d
				}
			}
			if nearest >= thresholdKm {
				lat, lng := g.CellCenterDegrees(r, c)
				zones = append(zones, DesertZone{
					Lat:       lat,
					Lng:       lng,
					NearestKm: round2(nearest),
				})
			}
		}
	}

	sort.SliceStable(zones, func(i, j int) bool {
		return zones[i].NearestKm > zones[j].NearestKm
	})
	if len(zones) > maxZones {
		zones = zones[:maxZones]
	}
	for i := range zones {
		zones[i].Rank = i + 1
	}
	return zones
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
