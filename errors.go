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

import "errors"

var (
	ErrCompactDuplicate     = errors.New("compact duplicated")
	ErrCompactLoopExceeded  = errors.New("compact loop exceeded")
	ErrUncompactResExceeded = errors.New("uncompact resolution exceeded")

	// ErrPentagonEncountered is returned by traversal operations (hexRing,
	// hexRange and their variants) that cannot safely step across a pentagon's
	// deleted k-axis and so cannot guarantee a complete, correctly-ordered
	// result.
	ErrPentagonEncountered = errors.New("pentagon encountered")
	// ErrNotNeighbors names the case of two cells that do not share a
	// boundary. No function in this package returns it.
	ErrNotNeighbors = errors.New("cells are not neighbors")
	// ErrInvalidResolution names a resolution argument outside
	// 0..MAX_H3_RES or incompatible with the operation. No function in this
	// package returns it.
	ErrInvalidResolution = errors.New("invalid resolution")
	// ErrInvalidArgument is returned for malformed input that does not fit
	// one of the other sentinels (e.g. a degenerate polygon ring).
	ErrInvalidArgument = errors.New("invalid argument")
)
