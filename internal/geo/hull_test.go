package geo

import (
	"reflect"
	"testing"
)

func TestConvexHullSquareWithInteriorPoint(t *testing.T) {
	points := [][2]float64{
		{0, 0}, {4, 0}, {4, 4}, {0, 4},
		{2, 2}, // strictly inside, must not appear in the hull
	}

	hull := ConvexHull(points)

	if len(hull) != 5 {
		t.Fatalf("expected 4 corners + closing vertex, got %d: %v", len(hull), hull)
	}
	if hull[0] != hull[len(hull)-1] {
		t.Errorf("hull not closed: %v != %v", hull[0], hull[len(hull)-1])
	}

	for _, corner := range [][2]float64{{0, 0}, {4, 0}, {4, 4}, {0, 4}} {
		if !containsPoint(hull, corner) {
			t.Errorf("hull missing corner %v", corner)
		}
	}
	if containsPoint(hull[:len(hull)-1], [2]float64{2, 2}) {
		t.Error("interior point leaked into the hull")
	}

	if area := signedArea(hull); area <= 0 {
		t.Errorf("hull is not counter-clockwise: signed area %v", area)
	}
}

// TestConvexHullIdempotent: the hull of the hull's own vertices is the hull.
func TestConvexHullIdempotent(t *testing.T) {
	points := [][2]float64{
		{100.47, 13.71}, {100.55, 13.80}, {100.61, 13.66},
		{100.53, 13.74}, {100.50, 13.69}, {100.58, 13.77},
	}

	hull := ConvexHull(points)
	again := ConvexHull(hull)

	if !reflect.DeepEqual(hull, again) {
		t.Errorf("hull not idempotent:\n first: %v\nsecond: %v", hull, again)
	}
}

func TestConvexHullDegenerate(t *testing.T) {
	if got := ConvexHull(nil); len(got) != 0 {
		t.Errorf("hull of nothing = %v, want empty", got)
	}

	one := [][2]float64{{1, 2}}
	if got := ConvexHull(one); !reflect.DeepEqual(got, one) {
		t.Errorf("hull of single point = %v, want %v", got, one)
	}

	// Duplicates of one point still collapse to that point.
	dup := [][2]float64{{1, 2}, {1, 2}, {1, 2}}
	if got := ConvexHull(dup); !reflect.DeepEqual(got, one) {
		t.Errorf("hull of repeated point = %v, want %v", got, one)
	}
}

func TestConvexHullCollinear(t *testing.T) {
	points := [][2]float64{{0, 0}, {1, 1}, {2, 2}, {3, 3}}

	hull := ConvexHull(points)
	want := [][2]float64{{0, 0}, {3, 3}}
	if !reflect.DeepEqual(hull, want) {
		t.Errorf("collinear hull = %v, want the two extremes %v", hull, want)
	}
}

func containsPoint(pts [][2]float64, p [2]float64) bool {
	for _, q := range pts {
		if q == p {
			return true
		}
	}
	return false
}

// signedArea of a closed ring; positive for counter-clockwise winding.
func signedArea(ring [][2]float64) float64 {
	var sum float64
	for i := 0; i+1 < len(ring); i++ {
		sum += ring[i][0]*ring[i+1][1] - ring[i+1][0]*ring[i][1]
	}
	return sum / 2
}
