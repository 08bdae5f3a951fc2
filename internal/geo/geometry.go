package geo

import "math"

// Ring is a closed polygon boundary as [lng, lat] vertex pairs with the first
// vertex repeated at the end. Longitude-first ordering is the GeoJSON wire
// convention and is preserved in every geometry this package emits.
type Ring [][2]float64

// Haversine returns the great-circle distance between two points in km.
func Haversine(lat1, lng1, lat2, lng2 float64) float64 {
	phi1 := lat1 * math.Pi / 180
	phi2 := lat2 * math.Pi / 180
	deltaPhi := (lat2 - lat1) * math.Pi / 180
	deltaLambda := (lng2 - lng1) * math.Pi / 180

	a := math.Sin(deltaPhi/2)*math.Sin(deltaPhi/2) +
		math.Cos(phi1)*math.Cos(phi2)*math.Sin(deltaLambda/2)*math.Sin(deltaLambda/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EarthRadiusKm * c
}

// CirclePolygon approximates a disk of radiusKm around (lat, lng) with a
// closed ring of exactly points+1 vertices, evenly spaced in angle. The last
// vertex repeats the first so the ring is closed by construction.
//
// Coordinates are rounded to 8 decimals to bound output size; identical
// inputs always produce identical output.
func (p Projection) CirclePolygon(lat, lng, radiusKm float64, points int) Ring {
	dLat, dLng := p.KmToDegrees(radiusKm, radiusKm)

	ring := make(Ring, 0, points+1)
	for i := 0; i < points; i++ {
		angle := 2 * math.Pi * float64(i) / float64(points)
		ring = append(ring, [2]float64{
			round8(lng + dLng*math.Cos(angle)),
			round8(lat + dLat*math.Sin(angle)),
		})
	}
	ring = append(ring, ring[0])
	return ring
}

func round8(v float64) float64 {
	return math.Round(v*1e8) / 1e8
}
