package geo

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type point struct {
	name string
	at   orb.Point
}

func (p point) Coordinate() orb.Point { return p.at }

func TestSearchNearby_FilterSortLimit(t *testing.T) {
	origin := orb.Point{-87.6298, 41.8781}
	candidates := []point{
		{name: "far", at: orb.Point{-118.2437, 34.0522}},
		{name: "near", at: orb.Point{-87.6235, 41.8825}},
		{name: "origin", at: origin},
		{name: "mid", at: orb.Point{-87.6200, 41.8900}},
	}

	results := SearchNearby(candidates, &origin, 25, 0)
	require.Len(t, results, 3)
	assert.Equal(t, "origin", results[0].Item.name)
	assert.Equal(t, "near", results[1].Item.name)
	assert.Equal(t, "mid", results[2].Item.name)

	for _, r := range results {
		assert.True(t, r.HasDistance)
		assert.LessOrEqual(t, r.DistanceKm, 25.0)
	}
}

func TestSearchNearby_LimitAppliesAfterSort(t *testing.T) {
	origin := orb.Point{-87.6298, 41.8781}
	candidates := []point{
		{name: "mid", at: orb.Point{-87.6200, 41.8900}},
		{name: "near", at: orb.Point{-87.6235, 41.8825}},
	}

	results := SearchNearby(candidates, &origin, 25, 1)
	require.Len(t, results, 1)
	assert.Equal(t, "near", results[0].Item.name)
}

func TestSearchNearby_NilOriginPreservesOrder(t *testing.T) {
	candidates := []point{
		{name: "b", at: orb.Point{-87.6200, 41.8900}},
		{name: "a", at: orb.Point{-87.6235, 41.8825}},
	}

	results := SearchNearby(candidates, nil, 25, 0)
	require.Len(t, results, 2)
	assert.Equal(t, "b", results[0].Item.name)
	assert.Equal(t, "a", results[1].Item.name)
	assert.False(t, results[0].HasDistance)
	assert.Zero(t, results[0].DistanceKm)
}

func TestSearchNearby_EmptyCandidates(t *testing.T) {
	origin := orb.Point{-87.6298, 41.8781}

	results := SearchNearby([]point{}, &origin, 25, 10)
	assert.Empty(t, results)
}

func TestSearchNearby_ZeroRadiusKeepsExactMatches(t *testing.T) {
	origin := orb.Point{-87.6298, 41.8781}
	candidates := []point{
		{name: "origin", at: origin},
		{name: "near", at: orb.Point{-87.6235, 41.8825}},
	}

	results := SearchNearby(candidates, &origin, 0, 0)
	require.Len(t, results, 1)
	assert.Equal(t, "origin", results[0].Item.name)
}

func TestNearest(t *testing.T) {
	origin := orb.Point{-87.6298, 41.8781}
	candidates := []point{
		{name: "far", at: orb.Point{-118.2437, 34.0522}},
		{name: "near", at: orb.Point{-87.6235, 41.8825}},
	}

	best, distance, ok := Nearest(candidates, origin)
	require.True(t, ok)
	assert.Equal(t, "near", best.name)
	assert.InDelta(t, 0.66, distance, 0.05)
}

func TestNearest_Empty(t *testing.T) {
	_, _, ok := Nearest([]point{}, orb.Point{0, 0})
	assert.False(t, ok)
}
