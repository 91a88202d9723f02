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

func degPoly(coords [][2]float64) Geofence {
	verts := make([]GeoCoord, len(coords))
	for i, c := range coords {
		verts[i] = GeoCoord{lat: c[0] * M_PI_180, lon: c[1] * M_PI_180}
	}
	return Geofence{verts: verts}
}

// sfSquare is a roughly 0.02 degree square around downtown San Francisco.
var sfSquare = [][2]float64{
	{37.78, -122.43},
	{37.78, -122.40},
	{37.76, -122.40},
	{37.76, -122.43},
}

func TestPolyfillCellsFallInsideGeofence(t *testing.T) {
	polygon := &GeoPolygon{geofence: degPoly(sfSquare)}

	cells, err := Polyfill(polygon, 9)
	require.NoError(t, err)
	require.NotEmpty(t, cells)

	bbox := geofenceBBox(&polygon.geofence)
	for _, cell := range cells {
		var center GeoCoord
		H3ToGeo(cell, &center)
		assert.True(t, pointInGeofence(&polygon.geofence, &bbox, &center),
			"cell center fell outside the polyfilled geofence")
	}
}

func TestPolyfillRespectsHole(t *testing.T) {
	hole := [][2]float64{
		{37.775, -122.422},
		{37.775, -122.414},
		{37.765, -122.414},
		{37.765, -122.422},
	}
	polygon := &GeoPolygon{
		geofence: degPoly(sfSquare),
		holes:    []Geofence{degPoly(hole)},
	}

	withoutHole, err := Polyfill(&GeoPolygon{geofence: degPoly(sfSquare)}, 10)
	require.NoError(t, err)
	withHole, err := Polyfill(polygon, 10)
	require.NoError(t, err)

	assert.Less(t, len(withHole), len(withoutHole))

	holeBBox := geofenceBBox(&polygon.holes[0])
	for _, cell := range withHole {
		var center GeoCoord
		H3ToGeo(cell, &center)
		assert.False(t, pointInGeofence(&polygon.holes[0], &holeBBox, &center),
			"polyfill returned a cell centered inside a hole")
	}
}

func TestMaxPolyfillSizeBoundsActualResult(t *testing.T) {
	polygon := &GeoPolygon{geofence: degPoly(sfSquare)}
	cells, err := Polyfill(polygon, 8)
	require.NoError(t, err)
	assert.LessOrEqual(t, len(cells), maxPolyfillSize(polygon, 8))
}

func TestPolyfillRejectsDegenerateGeofence(t *testing.T) {
	polygon := &GeoPolygon{geofence: degPoly([][2]float64{{0, 0}, {1, 1}})}
	_, err := Polyfill(polygon, 5)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}
