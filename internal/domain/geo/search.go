package geo

import (
	"sort"

	"github.com/paulmach/orb"
)

// Locatable is anything with a geographic coordinate.
type Locatable interface {
	Coordinate() orb.Point
}

// Result pairs a candidate with its distance from the search origin.
// DistanceKm is rounded to two decimals for presentation; HasDistance is
// false when the search ran without an origin.
type Result[T Locatable] struct {
	Item        T
	DistanceKm  float64
	HasDistance bool

	// raw keeps the unrounded distance so sorting and the radius cut-off
	// are not affected by rounding at the boundary.
	raw float64
}

// SearchNearby scans candidates and returns those within radiusKm of origin,
// sorted ascending by distance and truncated to limit after filtering and
// sorting. When origin is nil no distances are computed and the incoming
// order (typically most-recent-first) is preserved. Equality filters are the
// caller's responsibility and must be applied before the scan.
func SearchNearby[T Locatable](candidates []T, origin *orb.Point, radiusKm float64, limit int) []Result[T] {
	results := make([]Result[T], 0, len(candidates))

	for _, candidate := range candidates {
		if origin == nil {
			results = append(results, Result[T]{Item: candidate})

			continue
		}

		distance := DistanceKm(*origin, candidate.Coordinate())
		if distance > radiusKm {
			continue
		}

		results = append(results, Result[T]{
			Item:        candidate,
			DistanceKm:  RoundKm(distance),
			HasDistance: true,
			raw:         distance,
		})
	}

	if origin != nil {
		sort.SliceStable(results, func(i, j int) bool {
			return results[i].raw < results[j].raw
		})
	}

	if limit > 0 && len(results) > limit {
		results = results[:limit]
	}

	return results
}

// Nearest returns the candidate closest to origin, or false when the
// candidate list is empty.
func Nearest[T Locatable](candidates []T, origin orb.Point) (T, float64, bool) {
	var best T
	bestDistance := 0.0
	found := false

	for _, candidate := range candidates {
		distance := DistanceKm(origin, candidate.Coordinate())
		if !found || distance < bestDistance {
			best = candidate
			bestDistance = distance
			found = true
		}
	}

	return best, bestDistance, found
}
