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
	"github.com/dhconnelly/rtreego"
	"github.com/hexgrid/h3/internal/diagnostics"
)

// LinkedGeoLoop is a single closed ring of vertices, in the winding order
// the contributing cells' own boundaries were walked in.
type LinkedGeoLoop struct {
	verts []GeoCoord
}

// LinkedGeoPolygon is one outer loop plus the holes (if any) that fall
// inside it. H3SetToLinkedGeo returns one of these per contiguous group of
// input cells.
type LinkedGeoPolygon struct {
	Outer LinkedGeoLoop
	Holes []LinkedGeoLoop
}

// vertexGraphBucketCount picks a hash table size proportional to the number
// of cells being traced, mirroring initVertexGraph's sizing in the
// reference compaction/uncompaction callers.
func vertexGraphBucketCount(numCells int) int {
	n := numCells * 2
	if n < 1 {
		n = 1
	}
	return n
}

// H3SetToLinkedGeo traces the outline of a set of cells into one or more
// LinkedGeoPolygons. Interior edges (shared by two cells in the set) cancel
// out via a VertexGraph; what survives is exactly the boundary, which is
// then walked into closed loops and the holes matched to their containing
// outer loop.
func H3SetToLinkedGeo(cells []H3Index) ([]*LinkedGeoPolygon, error) {
	if len(cells) == 0 {
		return nil, nil
	}

	res := H3_GET_RESOLUTION(cells[0])

	var graph VertexGraph
	initVertexGraph(&graph, vertexGraphBucketCount(len(cells)), res)

	for _, cell := range cells {
		var boundary GeoBoundary
		H3ToGeoBoundary(cell, &boundary)

		for i := 0; i < boundary.numVerts; i++ {
			from := boundary.verts[i]
			to := boundary.verts[(i+1)%boundary.numVerts]

			if existing := findNodeForEdge(&graph, &to, &from); existing != nil {
				// The reverse of this edge is already in the graph: it's an
				// interior edge shared with another cell in the set, so it
				// cancels rather than appearing in any traced loop.
				removeVertexNode(&graph, existing)
				continue
			}
			if findNodeForEdge(&graph, &from, &to) != nil {
				// Degenerate input repeated the same directed edge twice;
				// nothing more to add.
				continue
			}
			addVertexNode(&graph, &from, &to)
		}
	}

	loops := traceLoops(&graph)
	diagnostics.Logf("linkedgeo: res=%d cells=%d loops=%d", res, len(cells), len(loops))

	return assembleLoops(loops), nil
}

// traceLoops consumes every remaining edge in graph, walking each
// from->to chain until it closes, and returns the resulting closed rings.
func traceLoops(graph *VertexGraph) []LinkedGeoLoop {
	var loops []LinkedGeoLoop

	for {
		start := firstVertexNode(graph)
		if start == nil {
			break
		}

		loop := LinkedGeoLoop{verts: []GeoCoord{start.from}}
		node := start
		for {
			loop.verts = append(loop.verts, node.to)
			next := findNodeForVertex(graph, &node.to)
			removeVertexNode(graph, node)
			if next == nil || geoAlmostEqual(&node.to, &start.from) {
				break
			}
			node = next
		}
		loops = append(loops, loop)
	}

	return loops
}

// signedArea computes twice the planar shoelace area of a loop treating
// (lon, lat) as planar coordinates, which is accurate enough at cell scale
// to tell winding direction apart; the sign (not the magnitude) is what
// distinguishes an outer loop from a hole.
func signedArea(loop *LinkedGeoLoop) float64 {
	sum := 0.0
	n := len(loop.verts)
	for i := 0; i < n; i++ {
		a := loop.verts[i]
		b := loop.verts[(i+1)%n]
		sum += a.lon*b.lat - b.lon*a.lat
	}
	return sum
}

func loopRect(loop *LinkedGeoLoop) rtreego.Rect {
	g := Geofence{verts: loop.verts}
	bbox := geofenceBBox(&g)
	return geofenceRect(bbox)
}

type indexedOuter struct {
	polygon *LinkedGeoPolygon
	rect    rtreego.Rect
}

func (o indexedOuter) Bounds() rtreego.Rect {
	return o.rect
}

// assembleLoops splits loops into outer boundaries and holes by winding
// sign, then assigns each hole to an outer loop whose bounding box
// intersects it in an R-tree query and whose ring contains the hole's first
// vertex by a direct point-in-ring test; a hole that no candidate contains
// goes to the first outer loop.
func assembleLoops(loops []LinkedGeoLoop) []*LinkedGeoPolygon {
	var polygons []*LinkedGeoPolygon
	var holes []LinkedGeoLoop

	// counter-clockwise loops (positive area) are outer boundaries
	baseline := 1.0

	for _, loop := range loops {
		area := signedArea(&loop)
		if sameSign(area, baseline) {
			polygons = append(polygons, &LinkedGeoPolygon{Outer: loop})
			continue
		}
		holes = append(holes, loop)
	}

	if len(holes) == 0 {
		return polygons
	}

	outerIndex := rtreego.NewTree(2, 2, 4)
	for _, p := range polygons {
		outerIndex.Insert(indexedOuter{polygon: p, rect: loopRect(&p.Outer)})
	}

	for _, hole := range holes {
		rect := loopRect(&hole)
		var owner *LinkedGeoPolygon
		for _, spatial := range outerIndex.SearchIntersect(rect) {
			candidate := spatial.(indexedOuter).polygon
			if loopContainsPoint(&candidate.Outer, hole.verts[0]) {
				owner = candidate
				break
			}
		}
		if owner == nil && len(polygons) > 0 {
			owner = polygons[0]
		}
		if owner != nil {
			owner.Holes = append(owner.Holes, hole)
		}
	}

	return polygons
}

func sameSign(a, b float64) bool {
	return (a >= 0) == (b >= 0)
}

func loopContainsPoint(loop *LinkedGeoLoop, point GeoCoord) bool {
	g := Geofence{verts: loop.verts}
	bbox := geofenceBBox(&g)
	return pointInGeofence(&g, &bbox, &point)
}
