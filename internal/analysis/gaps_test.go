package analysis

import (
	"math"
	"testing"

	"github.com/bkk-rail-3d/analyzer/internal/stations"
)

// latDeltaForKm converts a great-circle distance to a latitude delta, so
// tests can place stations a known haversine distance apart. A hair of
// headroom keeps at-threshold cases from landing one ulp short.
func latDeltaForKm(km float64) float64 {
	return km / (6371.0 * math.Pi / 180) * (1 + 1e-9)
}

func TestFindGapsTwoStations(t *testing.T) {
	base := 13.70
	tests := []struct {
		name     string
		aheadKm  float64
		wantGaps int
	}{
		{"6 km apart exceeds threshold", 6.0, 1},
		{"4 km apart is under threshold", 4.0, 0},
		{"exactly 5 km is inclusive", 5.0, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			groups := stations.GroupByBranch([]stations.Station{
				{ID: "N1", NameEng: "First", LineName: "Green", Lat: base, Lng: 100.50},
				{ID: "N2", NameEng: "Second", LineName: "Green", Lat: base + latDeltaForKm(tt.aheadKm), Lng: 100.50},
			})

			gaps := FindGaps(groups, 5.0)
			if len(gaps) != tt.wantGaps {
				t.Fatalf("got %d gaps, want %d", len(gaps), tt.wantGaps)
			}
			if tt.wantGaps == 1 {
				g := gaps[0]
				if math.Abs(g.DistanceKm-tt.aheadKm) > 0.01 {
					t.Errorf("distance = %v, want ~%v", g.DistanceKm, tt.aheadKm)
				}
				if g.From.ID != "N1" || g.To.ID != "N2" {
					t.Errorf("gap endpoints %s -> %s, want N1 -> N2", g.From.ID, g.To.ID)
				}
				if g.Branch != "Green (N-branch)" {
					t.Errorf("branch label = %q", g.Branch)
				}
			}
		})
	}
}

func TestFindGapsSingleStationBranch(t *testing.T) {
	groups := stations.GroupByBranch([]stations.Station{
		{ID: "N1", LineName: "Green", Lat: 13.70, Lng: 100.50},
		{ID: "E1", LineName: "Green", Lat: 13.75, Lng: 100.60},
	})

	// Two one-station branches: no pairs anywhere, no gaps, no error.
	if gaps := FindGaps(groups, 5.0); len(gaps) != 0 {
		t.Errorf("expected no gaps across branches, got %v", gaps)
	}
}

func TestFindGapsDoesNotCrossBranches(t *testing.T) {
	// Far-apart stations with different prefixes must never pair up, even on
	// the same line.
	groups := stations.GroupByBranch([]stations.Station{
		{ID: "N1", LineName: "Sukhumvit", Lat: 13.70, Lng: 100.50},
		{ID: "N2", LineName: "Sukhumvit", Lat: 13.71, Lng: 100.50},
		{ID: "E1", LineName: "Sukhumvit", Lat: 13.95, Lng: 100.50},
		{ID: "E2", LineName: "Sukhumvit", Lat: 13.96, Lng: 100.50},
	})

	if gaps := FindGaps(groups, 5.0); len(gaps) != 0 {
		t.Errorf("branch boundary treated as adjacency: %v", gaps)
	}
}

func TestFindDesertZones(t *testing.T) {
	list := []stations.Station{{ID: "CEN", Lat: 13.745568, Lng: 100.534356}}
	g := NewGrid(list, 1.0, 0.1, testProjection())

	// With a 2x2 km grid around one station, corners are ~1.3 km out; a low
	// threshold keeps several candidates.
	zones := FindDesertZones(g, list, 0.9, 1, 5)
	if len(zones) != 5 {
		t.Fatalf("expected zones capped at 5, got %d", len(zones))
	}

	for i, z := range zones {
		if z.Rank != i+1 {
			t.Errorf("zone %d has rank %d", i, z.Rank)
		}
		if z.NearestKm < 0.9 {
			t.Errorf("zone %d below threshold: %v km", i, z.NearestKm)
		}
		if i > 0 && z.NearestKm > zones[i-1].NearestKm {
			t.Errorf("zones not sorted by isolation: %v after %v", z.NearestKm, zones[i-1].NearestKm)
		}
	}
}

func TestFindDesertZonesNoCandidates(t *testing.T) {
	list := []stations.Station{{ID: "CEN", Lat: 13.745568, Lng: 100.534356}}
	g := NewGrid(list, 1.0, 0.1, testProjection())

	// Threshold beyond the grid diagonal: nothing qualifies.
	if zones := FindDesertZones(g, list, 50, 1, 10); len(zones) != 0 {
		t.Errorf("expected no zones, got %d", len(zones))
	}
}

func TestFindDesertZonesEmptyStations(t *testing.T) {
	g := NewGrid(nil, 1.0, 0.1, testProjection())
	if zones := FindDesertZones(g, nil, 5.0, 5, 10); zones != nil {
		t.Errorf("expected nil for empty station set, got %v", zones)
	}
}

func TestFindDesertZonesStride(t *testing.T) {
	list := []stations.Station{{ID: "CEN", Lat: 13.745568, Lng: 100.534356}}
	g := NewGrid(list, 1.0, 0.1, testProjection())

	dense := FindDesertZones(g, list, 0.5, 1, 1000000)
	sparse := FindDesertZones(g, list, 0.5, 5, 1000000)

	if len(sparse) == 0 || len(sparse) >= len(dense) {
		t.Errorf("stride should thin candidates: dense %d, sparse %d", len(dense), len(sparse))
	}
}
