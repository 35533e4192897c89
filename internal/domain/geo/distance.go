// Package geo provides the shared great-circle distance function and the
// radius search used by every proximity or matching operation. All call
// sites go through this package so distances stay numerically identical.
package geo

import (
	"math"

	"github.com/paulmach/orb"
)

const earthRadiusKm = 6371.0

// DistanceKm calculates the haversine great-circle distance between two
// points in kilometers. Points follow the orb convention: (lon, lat) in
// degrees.
func DistanceKm(a, b orb.Point) float64 {
	lat1Rad := a.Lat() * math.Pi / 180
	lng1Rad := a.Lon() * math.Pi / 180
	lat2Rad := b.Lat() * math.Pi / 180
	lng2Rad := b.Lon() * math.Pi / 180

	deltaLat := lat2Rad - lat1Rad
	deltaLng := lng2Rad - lng1Rad

	h := math.Sin(deltaLat/2)*math.Sin(deltaLat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*
			math.Sin(deltaLng/2)*math.Sin(deltaLng/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadiusKm * c
}

// RoundKm rounds a distance to two decimal places for presentation.
// Filtering and sorting always use the unrounded value to avoid
// boundary-rounding inconsistencies.
func RoundKm(distanceKm float64) float64 {
	return math.Round(distanceKm*100) / 100
}

// IsValidCoordinate checks if a coordinate is within valid geographic bounds.
func IsValidCoordinate(p orb.Point) bool {
	if math.IsNaN(p.Lat()) || math.IsNaN(p.Lon()) ||
		math.IsInf(p.Lat(), 0) || math.IsInf(p.Lon(), 0) {
		return false
	}

	return p.Lat() >= -90 && p.Lat() <= 90 &&
		p.Lon() >= -180 && p.Lon() <= 180
}
