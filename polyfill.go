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

// Geofence is a closed loop of geographic coordinates, lon/lat in radians,
// describing either a polygon's outer boundary or one of its holes.
type Geofence struct {
	verts []GeoCoord
}

// GeoPolygon is a single polygon, described by an outer Geofence and zero or
// more hole Geofences.
type GeoPolygon struct {
	geofence Geofence
	holes    []Geofence
}

// geofenceBBox computes the geographic bounding box of a Geofence,
// detecting an antimeridian crossing the same way a longitude span greater
// than half the globe is conventionally treated: as wraparound rather than
// a polygon that happens to be very wide.
func geofenceBBox(g *Geofence) BBox {
	if len(g.verts) == 0 {
		return BBox{}
	}

	minLat, maxLat := g.verts[0].lat, g.verts[0].lat
	minLon, maxLon := g.verts[0].lon, g.verts[0].lon
	for _, v := range g.verts[1:] {
		if v.lat < minLat {
			minLat = v.lat
		}
		if v.lat > maxLat {
			maxLat = v.lat
		}
		if v.lon < minLon {
			minLon = v.lon
		}
		if v.lon > maxLon {
			maxLon = v.lon
		}
	}

	bbox := BBox{north: maxLat, south: minLat, east: maxLon, west: minLon}
	if maxLon-minLon > M_PI {
		// Likely an antimeridian-spanning ring: re-derive east/west by
		// treating longitudes left of the prime meridian as if they wrapped
		// around past +pi, then normalize the result back into [-pi, pi].
		minLon, maxLon = M_PI, -M_PI
		for _, v := range g.verts {
			lon := v.lon
			if lon < 0 {
				lon += M_2PI
			}
			if lon < minLon {
				minLon = lon
			}
			if lon > maxLon {
				maxLon = lon
			}
		}
		bbox.east = constrainLng(maxLon)
		bbox.west = constrainLng(minLon)
	}
	return bbox
}

// pointInGeofence reports whether point lies inside the ring g, using the
// standard longitude-crossing-number algorithm. When bbox is transmeridian,
// vertex and point longitudes are shifted into a common unwrapped range
// before testing, so a ring spanning the antimeridian is handled the same
// as one that does not.
func pointInGeofence(g *Geofence, bbox *BBox, point *GeoCoord) bool {
	transmeridian := bboxIsTransmeridian(bbox)
	lon := point.lon
	if transmeridian && lon < 0 {
		lon += M_2PI
	}

	contains := false
	n := len(g.verts)
	for i := 0; i < n; i++ {
		a := g.verts[i]
		b := g.verts[(i+1)%n]

		aLon, bLon := a.lon, b.lon
		if transmeridian {
			if aLon < 0 {
				aLon += M_2PI
			}
			if bLon < 0 {
				bLon += M_2PI
			}
		}

		if (a.lat > point.lat) != (b.lat > point.lat) {
			x := aLon + (point.lat-a.lat)/(b.lat-a.lat)*(bLon-aLon)
			if lon < x {
				contains = !contains
			}
		}
	}
	return contains
}

// geofenceRect builds an rtreego.Rect covering a Geofence's bounding box,
// used to prefilter which holes are even worth a full point-in-polygon
// test against a given candidate cell.
func geofenceRect(bbox BBox) rtreego.Rect {
	width := bbox.east - bbox.west
	height := bbox.north - bbox.south
	if width <= 0 {
		width = EPSILON
	}
	if height <= 0 {
		height = EPSILON
	}
	rect, _ := rtreego.NewRect(rtreego.Point{bbox.west, bbox.south}, []float64{width, height})
	return rect
}

// indexedHole adapts a hole Geofence to rtreego.Spatial so the hole set can
// be queried by bounding box before paying for ray casting.
type indexedHole struct {
	idx  int
	bbox BBox
}

func (h indexedHole) Bounds() rtreego.Rect {
	return geofenceRect(h.bbox)
}

// maxPolyfillSize returns an upper bound on the number of cells Polyfill
// could produce for polygon at res. Holes only ever shrink the result, so
// (matching the reference estimator) only the outer geofence's bounding box
// is considered.
func maxPolyfillSize(polygon *GeoPolygon, res int) int {
	bbox := geofenceBBox(&polygon.geofence)
	return bboxHexEstimate(&bbox, res)
}

// findSeed locates one cell whose center lies inside polygon, trying the
// bounding box's center first (the common case for convex or near-convex
// shapes) and falling back to scanning the 1-ring around each boundary
// vertex's own cell, which is guaranteed to include an interior cell for
// any polygon with significant area relative to a cell at res.
func findSeed(polygon *GeoPolygon, outerBBox BBox, contains func(*GeoCoord) bool, res int) (H3Index, bool) {
	var center GeoCoord
	bboxCenter(&outerBBox, &center)
	if contains(&center) {
		seed := GeoToH3(&center, res)
		var seedCenter GeoCoord
		H3ToGeo(seed, &seedCenter)
		if contains(&seedCenter) {
			return seed, true
		}
	}

	for _, v := range polygon.geofence.verts {
		vCell := GeoToH3(&v, res)
		for _, c := range KRing(vCell, 1) {
			if c == H3_NULL {
				continue
			}
			var c2 GeoCoord
			H3ToGeo(c, &c2)
			if contains(&c2) {
				return c, true
			}
		}
	}
	return H3Index(0), false
}

// Polyfill returns the set of resolution-res cells whose center point falls
// within polygon's outer boundary and outside every hole. It floods outward
// from a seed cell found by findSeed (the cell at the polygon's bounding-box
// center, or failing that one near a boundary vertex), so it never
// enumerates more candidates than the result plus its one-cell halo.
func Polyfill(polygon *GeoPolygon, res int) ([]H3Index, error) {
	if len(polygon.geofence.verts) < 3 {
		return nil, ErrInvalidArgument
	}

	outerBBox := geofenceBBox(&polygon.geofence)

	holeBBoxes := make([]BBox, len(polygon.holes))
	holeIndex := rtreego.NewTree(2, 2, 4)
	for i := range polygon.holes {
		holeBBoxes[i] = geofenceBBox(&polygon.holes[i])
		holeIndex.Insert(indexedHole{idx: i, bbox: holeBBoxes[i]})
	}

	contains := func(point *GeoCoord) bool {
		if !bboxContains(&outerBBox, point) || !pointInGeofence(&polygon.geofence, &outerBBox, point) {
			return false
		}
		queryRect := geofenceRect(BBox{north: point.lat, south: point.lat, east: point.lon, west: point.lon})
		for _, spatial := range holeIndex.SearchIntersect(queryRect) {
			h := spatial.(indexedHole)
			if bboxContains(&holeBBoxes[h.idx], point) && pointInGeofence(&polygon.holes[h.idx], &holeBBoxes[h.idx], point) {
				return false
			}
		}
		return true
	}

	seed, ok := findSeed(polygon, outerBBox, contains, res)
	if !ok {
		diagnostics.Logf("polyfill: res=%d outer_verts=%d found no interior seed", res, len(polygon.geofence.verts))
		return nil, nil
	}

	visited := map[H3Index]bool{}
	result := make([]H3Index, 0, maxPolyfillSize(polygon, res))

	queue := []H3Index{seed}
	visited[seed] = true
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		var center GeoCoord
		H3ToGeo(cur, &center)
		if !contains(&center) {
			continue
		}
		result = append(result, cur)

		for dir := K_AXES_DIGIT; dir < Direction(NUM_DIGITS); dir++ {
			rotations := 0
			nb := h3NeighborRotations(cur, dir, &rotations)
			if nb == H3_NULL || visited[nb] {
				continue
			}
			visited[nb] = true
			queue = append(queue, nb)
		}
	}

	diagnostics.Logf("polyfill: res=%d outer_verts=%d holes=%d cells=%d", res, len(polygon.geofence.verts), len(polygon.holes), len(result))
	return result, nil
}
