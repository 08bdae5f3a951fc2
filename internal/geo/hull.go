package geo

import "sort"

// ConvexHull computes the convex hull of a set of [x, y] points with Andrew's
// monotone chain. The hull is returned in counter-clockwise order as a closed
// ring (first vertex repeated at the end).
//
// Degenerate inputs do not fail: zero or one distinct point comes back
// unchanged, and a fully collinear set reduces to its two extreme endpoints.
// Neither degenerate result is closed as a ring.
func ConvexHull(points [][2]float64) [][2]float64 {
	pts := dedupeSorted(points)
	if len(pts) < 3 {
		return pts
	}

	var lower [][2]float64
	for _, p := range pts {
		for len(lower) >= 2 && cross(lower[len(lower)-2], lower[len(lower)-1], p) <= 0 {
			lower = lower[:len(lower)-1]
		}
		lower = append(lower, p)
	}

	var upper [][2]float64
	for i := len(pts) - 1; i >= 0; i-- {
		p := pts[i]
		for len(upper) >= 2 && cross(upper[len(upper)-2], upper[len(upper)-1], p) <= 0 {
			upper = upper[:len(upper)-1]
		}
		upper = append(upper, p)
	}

	// Each chain ends where the other begins; drop the shared endpoints.
	hull := append(lower[:len(lower)-1], upper[:len(upper)-1]...)
	if len(hull) < 3 {
		// All points collinear: the two extremes, not closable as a ring.
		return hull
	}

	return append(hull, hull[0])
}

// cross returns the z component of (a-o) x (b-o). Positive means o->a->b is a
// counter-clockwise turn.
func cross(o, a, b [2]float64) float64 {
	return (a[0]-o[0])*(b[1]-o[1]) - (a[1]-o[1])*(b[0]-o[0])
}

func dedupeSorted(points [][2]float64) [][2]float64 {
	pts := make([][2]float64, len(points))
	copy(pts, points)
	sort.Slice(pts, func(i, j int) bool {
		if pts[i][0] != pts[j][0] {
			return pts[i][0] < pts[j][0]
		}
		return pts[i][1] < pts[j][1]
	})

	out := pts[:0]
	for i, p := range pts {
		if i > 0 && p == pts[i-1] {
			continue
		}
		out = append(out, p)
	}
	return out
}
