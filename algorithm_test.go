// Copyright 2022  Il Sub Bang
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package h3

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaxKringSize(t *testing.T) {
	assert.Equal(t, 1, maxKringSize(0))
	assert.Equal(t, 7, maxKringSize(1))
	assert.Equal(t, 19, maxKringSize(2))
}

func TestKRingIncludesOriginAndIsDeduplicated(t *testing.T) {
	origin := GeoToH3(&sfGeo, 9)
	ring := KRing(origin, 2)

	assert.Len(t, ring, maxKringSize(2))
	assert.Contains(t, ring, origin)

	seen := map[H3Index]int{}
	for _, h := range ring {
		if h != H3_NULL {
			seen[h]++
		}
	}
	for h, count := range seen {
		assert.Equal(t, 1, count, "cell %v appeared more than once", h)
	}
}

func TestHexRingMatchesHexRangeAtDistance(t *testing.T) {
	origin := GeoToH3(&sfGeo, 9)

	full := make([]H3Index, maxKringSize(1))
	require.NoError(t, hexRange(origin, 1, full))

	ring := make([]H3Index, 6)
	require.NoError(t, hexRing(origin, 1, ring))

	assert.ElementsMatch(t, full[1:], ring)
}

func TestNeighborsAreMutual(t *testing.T) {
	origin := GeoToH3(&sfGeo, 8)

	for dir := K_AXES_DIGIT; dir < Direction(NUM_DIGITS); dir++ {
		rotations := 0
		neighbor := h3NeighborRotations(origin, dir, &rotations)
		if neighbor == H3_NULL {
			continue
		}

		foundBack := false
		for backDir := K_AXES_DIGIT; backDir < Direction(NUM_DIGITS); backDir++ {
			backRotations := 0
			if h3NeighborRotations(neighbor, backDir, &backRotations) == origin {
				foundBack = true
				break
			}
		}
		assert.True(t, foundBack, "neighbor in direction %d has no way back to origin", dir)
	}
}

func TestHexRangeDistancesAreMonotonic(t *testing.T) {
	origin := GeoToH3(&sfGeo, 9)
	out := make([]H3Index, maxKringSize(2))
	distances := make([]int, maxKringSize(2))
	require.NoError(t, hexRangeDistances(origin, 2, out, distances))

	assert.Equal(t, 0, distances[0])
	assert.Equal(t, origin, out[0])
	for _, d := range distances {
		assert.GreaterOrEqual(t, d, 0)
		assert.LessOrEqual(t, d, 2)
	}
	for i := 1; i < len(distances); i++ {
		assert.LessOrEqual(t, distances[i-1], distances[i])
	}
}
