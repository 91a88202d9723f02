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

const eps = 1e-4

// sfGeo is downtown San Francisco, used across several tests as a stable
// real-world seed coordinate.
var sfGeo = GeoCoord{lat: 37.775938728915946 * M_PI_180, lon: -122.41795063018799 * M_PI_180}

func baseCellIndex(bc, res int) H3Index {
	h := H3_INIT
	h.SetMode(H3_HEXAGON_MODE)
	h.SetResolution(res)
	h.SetBaseCell(bc)
	return h
}

func firstPentagonBaseCell() int {
	for bc := 0; bc < NUM_BASE_CELLS; bc++ {
		if _isBaseCellPentagon(bc) {
			return bc
		}
	}
	return INVALID_BASE_CELL
}

func TestGeoToH3RoundTrip(t *testing.T) {
	for res := 0; res <= MAX_H3_RES; res++ {
		h := GeoToH3(&sfGeo, res)
		require.NotEqual(t, H3_NULL, h, "res %d", res)
		assert.Equal(t, res, H3_GET_RESOLUTION(h))

		var back GeoCoord
		H3ToGeo(h, &back)
		assert.InDelta(t, sfGeo.lat, back.lat, eps)
		assert.InDelta(t, sfGeo.lon, back.lon, eps)
	}
}

func TestGeoToH3BoundaryVertexCount(t *testing.T) {
	h := GeoToH3(&sfGeo, 9)
	var boundary GeoBoundary
	H3ToGeoBoundary(h, &boundary)
	assert.GreaterOrEqual(t, boundary.numVerts, NUM_PENT_VERTS)
	assert.LessOrEqual(t, boundary.numVerts, NUM_HEX_VERTS)
}

func TestParentChildRoundTrip(t *testing.T) {
	h := GeoToH3(&sfGeo, 9)
	parent := H3ToParent(h, 5)
	assert.Equal(t, 5, H3_GET_RESOLUTION(parent))

	children := parent.ToChildren(9)
	assert.Len(t, children, MaxH3ToChildrenSize(parent, 9))
	assert.Contains(t, children, h)

	for _, c := range children {
		assert.Equal(t, parent, H3ToParent(c, 5))
	}
}

func TestCompactUncompactRoundTrip(t *testing.T) {
	base := baseCellIndex(20, 0)
	children := base.ToChildren(3)

	compacted, err := Compact(children)
	require.NoError(t, err)
	assert.LessOrEqual(t, len(compacted), len(children))

	uncompacted, err := Uncompact(compacted, 3)
	require.NoError(t, err)
	assert.ElementsMatch(t, children, uncompacted)
}

func TestIsPentagonOnlyAtAllZeroDigits(t *testing.T) {
	pentBC := firstPentagonBaseCell()
	require.NotEqual(t, INVALID_BASE_CELL, pentBC)

	res0 := baseCellIndex(pentBC, 0)
	assert.True(t, res0.IsPentagon())

	children := res0.ToChildren(1)
	sawPentagonChild := false
	sawHexagonChild := false
	for _, c := range children {
		if c.IsPentagon() {
			sawPentagonChild = true
		} else {
			sawHexagonChild = true
		}
	}
	assert.True(t, sawPentagonChild, "the all-zero-digit child of a pentagon must still be a pentagon")
	assert.True(t, sawHexagonChild, "off-center children of a pentagon must be ordinary hexagons")
}

func TestHexagonBaseCellHasNoPentagonChild(t *testing.T) {
	hexBC := -1
	for bc := 0; bc < NUM_BASE_CELLS; bc++ {
		if !_isBaseCellPentagon(bc) {
			hexBC = bc
			break
		}
	}
	require.NotEqual(t, -1, hexBC)

	for _, c := range baseCellIndex(hexBC, 0).ToChildren(2) {
		assert.False(t, c.IsPentagon())
	}
}

func TestStringRoundTrip(t *testing.T) {
	h := GeoToH3(&sfGeo, 7)
	s := H3ToString(h)
	assert.Equal(t, h, StringToH3(s))
}
