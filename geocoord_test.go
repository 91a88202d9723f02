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

func TestHexAreaShrinksWithResolution(t *testing.T) {
	for res := 0; res < MAX_H3_RES; res++ {
		assert.Greater(t, HexAreaKm2(res), HexAreaKm2(res+1))
		assert.Greater(t, EdgeLengthKm(res), EdgeLengthKm(res+1))
	}
}

func TestNumHexagonsMatchesRecurrence(t *testing.T) {
	assert.Equal(t, int64(122), NumHexagons(0))
	for res := 0; res < MAX_H3_RES; res++ {
		want := (NumHexagons(res)-12)*7 + 12*6
		assert.Equal(t, want, NumHexagons(res+1), "res %d", res+1)
	}
}

func TestCellAreaApproximatesTableValueAtLowResolution(t *testing.T) {
	h := GeoToH3(&sfGeo, 3)
	area := CellAreaKm2(h)
	// A single concrete cell's exact area can't match the globally averaged
	// table value exactly, but it must be the same order of magnitude.
	assert.InDelta(t, HexAreaKm2(3), area, HexAreaKm2(3)*0.5)
}

func TestExactEdgeLengthIsPositiveAndNearTableValue(t *testing.T) {
	origin := GeoToH3(&sfGeo, 7)
	ring := KRing(origin, 1)

	var neighbor H3Index
	for _, h := range ring {
		if h != H3_NULL && h != origin {
			neighbor = h
			break
		}
	}
	require.NotEqual(t, H3_NULL, neighbor)

	edge := GetH3UnidirectionalEdge(origin, neighbor)
	require.NotEqual(t, H3_NULL, edge)

	length := ExactEdgeLengthKm(edge)
	assert.Greater(t, length, 0.0)
	assert.InDelta(t, EdgeLengthKm(7), length, EdgeLengthKm(7)*0.5)
}

func TestPointDistIsSymmetric(t *testing.T) {
	other := GeoCoord{lat: sfGeo.lat + 0.01, lon: sfGeo.lon - 0.02}
	assert.InDelta(t, PointDistKm(&sfGeo, &other), PointDistKm(&other, &sfGeo), eps)
	assert.Greater(t, PointDistM(&sfGeo, &other), PointDistKm(&sfGeo, &other))
}
