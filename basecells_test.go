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

// pentagonEdgeH3 and pentagonBoundaryH3 are the two literal indexes this
// package's seed scenarios are pinned against: both decode (by this
// package's own bit layout in h3index.go) to base cell 14, one of the 12
// pentagons in baseCellData.
const (
	pentagonEdgeH3     H3Index = 0x821c07fffffffff // res 2, base cell 14, all-zero digits
	pentagonBoundaryH3 H3Index = 0x811c0ffffffffff // res 1, base cell 14, all-zero digits
)

func TestPentagonBaseCell4IsAdjacentToBaseCell8(t *testing.T) {
	require.True(t, _isBaseCellPentagon(4))

	bc, rot := _getBaseCellNeighborRotation(4, J_AXES_DIGIT)
	assert.Equal(t, 8, bc)
	assert.GreaterOrEqual(t, rot, 0)
	assert.Less(t, rot, 6)

	// Adjacency must hold at the H3Index level too: a resolution-0 cell on
	// base cell 4 and its J-direction neighbor must be mutual neighbors and
	// must yield a valid edge between them.
	origin := baseCellIndex(4, 0)
	rotations := 0
	destination := h3NeighborRotations(origin, J_AXES_DIGIT, &rotations)
	require.NotEqual(t, H3_NULL, destination)
	assert.Equal(t, 8, destination.GetBaseCell())

	assert.True(t, H3IndexesAreNeighbors(origin, destination))
	edge := GetH3UnidirectionalEdge(origin, destination)
	assert.NotEqual(t, H3_NULL, edge)
	assert.True(t, H3UnidirectionalEdgeIsValid(edge))
}

func TestHexRingAroundSFHasSixDistinctNeighbors(t *testing.T) {
	origin := GeoToH3(&sfGeo, 9)

	ring := make([]H3Index, 6)
	require.NoError(t, hexRing(origin, 1, ring))

	seen := map[H3Index]bool{}
	for _, h := range ring {
		require.NotEqual(t, H3_NULL, h)
		assert.NotEqual(t, origin, h)
		seen[h] = true
	}
	assert.Len(t, seen, 6, "hexRing(origin, 1) must visit 6 distinct neighbors")

	for _, h := range ring {
		assert.True(t, H3IndexesAreNeighbors(origin, h))
	}
}

func TestPentagonEdgeDirectionValidity(t *testing.T) {
	require.Equal(t, H3_HEXAGON_MODE, H3_GET_MODE(pentagonEdgeH3))
	require.True(t, pentagonEdgeH3.IsPentagon())

	validEdge := pentagonEdgeH3
	H3_SET_MODE(&validEdge, H3_UNIEDGE_MODE)
	H3_SET_RESERVED_BITS(&validEdge, int(J_AXES_DIGIT))
	assert.True(t, H3UnidirectionalEdgeIsValid(validEdge),
		"J_AXES_DIGIT is not the pentagon's deleted axis")

	invalidEdge := pentagonEdgeH3
	H3_SET_MODE(&invalidEdge, H3_UNIEDGE_MODE)
	H3_SET_RESERVED_BITS(&invalidEdge, int(K_AXES_DIGIT))
	assert.False(t, H3UnidirectionalEdgeIsValid(invalidEdge),
		"K_AXES_DIGIT is a pentagon's deleted axis and must never validate")
}

func TestPentagonBoundaryEdgesHaveOneDeletedSlot(t *testing.T) {
	require.True(t, pentagonBoundaryH3.IsPentagon())

	edges := make([]H3Index, 6)
	GetH3UnidirectionalEdgesFromHexagon(pentagonBoundaryH3, &edges)

	nullCount := 0
	for i, edge := range edges {
		if edge == H3_NULL {
			nullCount++
			continue
		}
		require.True(t, H3UnidirectionalEdgeIsValid(edge), "edge slot %d", i)

		var gb GeoBoundary
		GetH3UnidirectionalEdgeBoundary(edge, &gb)
		assert.GreaterOrEqual(t, gb.numVerts, 2, "edge slot %d", i)
		assert.LessOrEqual(t, gb.numVerts, 3, "edge slot %d", i)
	}
	assert.Equal(t, 1, nullCount, "exactly one of a pentagon's 6 edge slots is the deleted k-axis")
}
