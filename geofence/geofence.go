package geofence

import (
	"math"

	"go-boatwatch/types"
)

const earthRadiusKM = 6371.0

// Haversine calculates the great-circle distance in kilometers between two
// points on the earth (specified in decimal degrees).
func Haversine(p1, p2 types.GeoPoint) float64 {
	radLat1 := p1.Lat * math.Pi / 180
	radLat2 := p2.Lat * math.Pi / 180

	deltaLat := (p2.Lat - p1.Lat) * math.Pi / 180
	deltaLon := (p2.Lng - p1.Lng) * math.Pi / 180

	a := math.Sin(deltaLat/2)*math.Sin(deltaLat/2) +
		math.Cos(radLat1)*math.Cos(radLat2)*
			math.Sin(deltaLon/2)*math.Sin(deltaLon/2)

	return 2 * earthRadiusKM * math.Asin(math.Sqrt(a))
}

// MinDistanceToBoundary returns the distance in kilometers from p to the
// closest reference vertex of the boundary line. The boundary is deliberately
// approximated by its vertices rather than by point-to-segment distance; the
// ALERT/SAFE threshold semantics are calibrated against that approximation.
// Returns +Inf for an empty line; config validation rejects that at startup.
func MinDistanceToBoundary(p types.GeoPoint, line types.BoundaryLine) float64 {
	minDistance := math.Inf(1)
	for _, vertex := range line {
		if d := Haversine(p, vertex); d < minDistance {
			minDistance = d
		}
	}
	return minDistance
}

// Classify reports whether p is inside the safe zone relative to the boundary
// line. A point exactly at the threshold counts as alert.
func Classify(p types.GeoPoint, line types.BoundaryLine, thresholdKM float64) (types.ZoneStatus, float64) {
	distance := MinDistanceToBoundary(p, line)
	if distance <= thresholdKM {
		return types.ZoneAlert, distance
	}
	return types.ZoneSafe, distance
}
