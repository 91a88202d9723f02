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

// INVALID_VERTEX_NUM marks a direction with no corresponding cell vertex,
// e.g. the center digit or the deleted k-axis direction on a pentagon.
const INVALID_VERTEX_NUM = -1

// vertexNumForDirection returns the start vertex index, into the vertex
// ordering faceIjkToVerts/faceIjkPentToVerts produce, of the edge a cell
// shares with its neighbor in the given direction. direction takes an int,
// matching how callers in h3uniedge.go recover it from an edge index's
// reserved bits.
func vertexNumForDirection(origin H3Index, direction int) int {
	isPentagon := H3IsPentagon(origin)

	if direction == int(CENTER_DIGIT) || direction >= NUM_DIGITS {
		return INVALID_VERTEX_NUM
	}
	if isPentagon && direction == int(K_AXES_DIGIT) {
		return INVALID_VERTEX_NUM
	}

	if isPentagon {
		return direction - 2
	}
	return direction - 1
}
