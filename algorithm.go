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

// h3NeighborRotations returns the neighbor of origin in the given direction,
// or H3_NULL if the direction steps off a pentagon's deleted k-axis. The
// rotations pointer mirrors the reference signature used by callers in
// h3uniedge.go, but this path never needs the caller to apply a follow-up
// rotation: it decodes origin to its FaceIJK address, steps the unit vector
// on the substrate lattice, and lets the real face-overage machinery in
// faceijk.go (_adjustOverageClassII) rotate and translate the coordinate in
// place when the step crosses a face, before re-encoding. Any rotation the
// step needed has already been folded into the returned coordinate, so
// *rotations is simply reset to 0 -- unlike basecells.go's
// baseCellNeighbor60CCWRots, which records the same kind of per-step
// rotation but reports it to its caller instead of applying it inline,
// because localij.go's pentagon unfolding needs the count, not just the
// rotated result.
func h3NeighborRotations(origin H3Index, dir Direction, rotations *int) H3Index {
	if dir == CENTER_DIGIT {
		*rotations = 0
		return origin
	}
	if dir >= Direction(NUM_DIGITS) {
		*rotations = 0
		return H3_NULL
	}
	if H3IsPentagon(origin) && dir == K_AXES_DIGIT {
		*rotations = 0
		return H3_NULL
	}

	res := H3_GET_RESOLUTION(origin)

	var fijk FaceIJK
	_h3ToFaceIjk(origin, &fijk)
	_neighbor(&fijk.coord, dir)

	// if we're in Class III, drop into the next finer Class II grid for the
	// overage check, as _h3ToFaceIjk does
	adjRes := res
	if isResClassIII(res) {
		_downAp7r(&fijk.coord)
		adjRes++
	}

	pentLeading4 := _isBaseCellPentagon(H3_GET_BASE_CELL(origin)) && _h3LeadingNonZeroDigit(origin) == I_AXES_DIGIT
	_adjustOverageClassII(&fijk, adjRes, pentLeading4, false)

	if adjRes != res {
		_upAp7r(&fijk.coord)
	}

	*rotations = 0
	return _faceIjkToH3(&fijk, res)
}

// maxKringSize returns the size of the buffer needed to hold the results of
// KRing for a given k.
func maxKringSize(k int) int {
	return 3*k*(k+1) + 1
}

// ringDirections is the direction cycle hexRing/hexRange walk after stepping
// k units out in the I_AXES_DIGIT direction, per the reference algorithm.
var ringDirections = [6]Direction{
	IK_AXES_DIGIT, IJ_AXES_DIGIT, K_AXES_DIGIT,
	J_AXES_DIGIT, JK_AXES_DIGIT, I_AXES_DIGIT,
}

// ringUnsafe walks the hollow ring of grid distance k around origin into
// out, in ring order. It returns ErrPentagonEncountered (and leaves out
// partially written) the moment the walk would cross a pentagon's deleted
// k-axis, matching hexRing/hexRange's documented refusal to produce output
// in that case.
func ringUnsafe(origin H3Index, k int, out []H3Index) error {
	if k == 0 {
		out[0] = origin
		return nil
	}

	idx := origin
	rotations := 0
	for i := 0; i < k; i++ {
		idx = h3NeighborRotations(idx, I_AXES_DIGIT, &rotations)
		if idx == H3_NULL {
			return ErrPentagonEncountered
		}
	}

	pos := 0
	for face := 0; face < 6; face++ {
		for step := 0; step < k; step++ {
			out[pos] = idx
			pos++
			idx = h3NeighborRotations(idx, ringDirections[face], &rotations)
			if idx == H3_NULL {
				return ErrPentagonEncountered
			}
		}
	}
	return nil
}

// hexRing writes the k'th hollow hex ring around origin into out, which must
// be sized for 1 (k==0) or 6*k cells. It returns ErrPentagonEncountered if
// the ring cannot be completed without crossing a pentagon.
func hexRing(origin H3Index, k int, out []H3Index) error {
	return ringUnsafe(origin, k, out)
}

// hexRange writes the filled disk of grid radius k around origin into out,
// ring by ring (ring 0, then ring 1 in ccw order, etc), which must be sized
// for maxKringSize(k). It returns ErrPentagonEncountered if any ring could
// not be completed; when that happens, callers should fall back to KRing.
func hexRange(origin H3Index, k int, out []H3Index) error {
	offset := 0
	for r := 0; r <= k; r++ {
		size := 1
		if r > 0 {
			size = 6 * r
		}
		if err := ringUnsafe(origin, r, out[offset:offset+size]); err != nil {
			return err
		}
		offset += size
	}
	return nil
}

// hexRangeDistances behaves like hexRange but additionally records, for each
// output cell, its grid distance from origin.
func hexRangeDistances(origin H3Index, k int, out []H3Index, distances []int) error {
	offset := 0
	for r := 0; r <= k; r++ {
		size := 1
		if r > 0 {
			size = 6 * r
		}
		if err := ringUnsafe(origin, r, out[offset:offset+size]); err != nil {
			return err
		}
		for i := 0; i < size; i++ {
			distances[offset+i] = r
		}
		offset += size
	}
	return nil
}

// hexRanges concatenates hexRange(h, k) for every h in set into out, which
// must be sized len(set)*maxKringSize(k). It returns the first
// ErrPentagonEncountered it hits, if any.
func hexRanges(set []H3Index, k int, out []H3Index) error {
	perCell := maxKringSize(k)
	var firstErr error
	for i, h := range set {
		if err := hexRange(h, k, out[i*perCell:(i+1)*perCell]); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// KRing produces the set of cells within grid distance k of origin,
// tolerating pentagons by always walking a BFS over h3NeighborRotations
// that deduplicates by index equality. The returned slice has length
// maxKringSize(k); slots beyond the reached cells are the zero H3Index.
func KRing(origin H3Index, k int) []H3Index {
	out := make([]H3Index, maxKringSize(k))
	kRingDistances(origin, k, out, nil)
	return out
}

// kRingDistances is KRing, additionally recording the BFS distance of each
// output cell into distances (if non-nil; must be the same length as out).
func kRingDistances(origin H3Index, k int, out []H3Index, distances []int) {
	visited := map[H3Index]int{origin: 0}
	queue := []H3Index{origin}

	idx := 0
	out[idx] = origin
	if distances != nil {
		distances[idx] = 0
	}
	idx++

	for q := 0; q < len(queue) && idx < len(out); q++ {
		cur := queue[q]
		d := visited[cur]
		if d >= k {
			continue
		}
		for dir := K_AXES_DIGIT; dir < Direction(NUM_DIGITS); dir++ {
			rotations := 0
			nb := h3NeighborRotations(cur, dir, &rotations)
			if nb == H3_NULL {
				continue
			}
			if _, seen := visited[nb]; seen {
				continue
			}
			visited[nb] = d + 1
			if idx >= len(out) {
				break
			}
			out[idx] = nb
			if distances != nil {
				distances[idx] = d + 1
			}
			idx++
			queue = append(queue, nb)
		}
	}
}
