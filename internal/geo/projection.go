// Package geo provides the planar projection, great-circle distance, circle
// rasterization, and convex hull used by the accessibility analysis.
package geo

import "math"

const (
	// EarthRadiusKm is the mean Earth radius used for great-circle distances.
	EarthRadiusKm = 6371.0

	// One degree of latitude is close to constant everywhere; one degree of
	// longitude shrinks with the cosine of the latitude.
	kmPerDegLat        = 110.574
	kmPerDegLngEquator = 111.320
)

// Projection converts geographic degrees to local planar kilometers using
// fixed per-degree scale factors computed once for a reference latitude.
//
// This flat-earth approximation is only valid across a bounded metropolitan
// extent (a few tens of km). The constants are deliberately run-level
// configuration, never recomputed per station.
type Projection struct {
	KmPerDegLat float64
	KmPerDegLng float64
}

// NewProjection builds the projection for the given reference latitude.
func NewProjection(refLat float64) Projection {
	return Projection{
		KmPerDegLat: kmPerDegLat,
		KmPerDegLng: math.Cos(refLat*math.Pi/180) * kmPerDegLngEquator,
	}
}

// DegreesToKm converts degree deltas to km deltas (dy north, dx east).
func (p Projection) DegreesToKm(deltaLat, deltaLng float64) (dy, dx float64) {
	return deltaLat * p.KmPerDegLat, deltaLng * p.KmPerDegLng
}

// KmToDegrees is the inverse of DegreesToKm.
func (p Projection) KmToDegrees(dy, dx float64) (deltaLat, deltaLng float64) {
	return dy / p.KmPerDegLat, dx / p.KmPerDegLng
}
