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

func TestH3SetToLinkedGeoSingleCellProducesOneClosedLoop(t *testing.T) {
	cell := GeoToH3(&sfGeo, 9)

	polygons, err := H3SetToLinkedGeo([]H3Index{cell})
	require.NoError(t, err)
	require.Len(t, polygons, 1)

	outer := polygons[0].Outer
	require.GreaterOrEqual(t, len(outer.verts), NUM_PENT_VERTS+1)
	assert.Empty(t, polygons[0].Holes)

	var boundary GeoBoundary
	H3ToGeoBoundary(cell, &boundary)
	// A traced loop repeats its start vertex at the end to close the ring.
	assert.Equal(t, boundary.numVerts+1, len(outer.verts))
}

func TestH3SetToLinkedGeoDonutProducesHole(t *testing.T) {
	origin := GeoToH3(&sfGeo, 9)

	disk := KRing(origin, 2)
	innerRing := make([]H3Index, 6)
	require.NoError(t, hexRing(origin, 1, innerRing))

	exclude := map[H3Index]bool{origin: true}
	for _, h := range innerRing {
		exclude[h] = true
	}

	var donut []H3Index
	for _, h := range disk {
		if h != H3_NULL && !exclude[h] {
			donut = append(donut, h)
		}
	}
	require.NotEmpty(t, donut)

	polygons, err := H3SetToLinkedGeo(donut)
	require.NoError(t, err)
	require.Len(t, polygons, 1)
	require.Len(t, polygons[0].Holes, 1)

	var originCenter GeoCoord
	H3ToGeo(origin, &originCenter)
	assert.True(t, loopContainsPoint(&polygons[0].Holes[0], originCenter))
}

func TestH3SetToLinkedGeoEmptySetReturnsNoPolygons(t *testing.T) {
	polygons, err := H3SetToLinkedGeo(nil)
	require.NoError(t, err)
	assert.Empty(t, polygons)
}
