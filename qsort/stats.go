// Copyright 2025 go-qsort Authors
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

package qsort

// Split records the sizes of the two ranges left for further sorting after
// one partition. Elements equal to the pivot that are already in their
// final place are not counted on either side.
type Split struct {
	Left  int
	Right int
}

// Stats counts the work done by one sort call.
type Stats struct {
	// Comparisons is the number of element comparisons.
	Comparisons int

	// Swaps is the number of element exchanges, self-swaps included.
	Swaps int

	// Partitions is the number of partition passes.
	Partitions int

	// MaxDepth is the peak number of ranges pending on the work stack.
	MaxDepth int

	// Splits lists every partition's resulting sub-range sizes in the
	// order the partitions ran.
	Splits []Split
}

// The recording methods accept a nil receiver so the plain sort entry
// points can share the code path without counting.

func (s *Stats) compare() {
	if s != nil {
		s.Comparisons++
	}
}

func (s *Stats) swap() {
	if s != nil {
		s.Swaps++
	}
}

func (s *Stats) split(left, right int) {
	if s != nil {
		s.Partitions++
		s.Splits = append(s.Splits, Split{Left: left, Right: right})
	}
}

func (s *Stats) depth(d int) {
	if s != nil && d > s.MaxDepth {
		s.MaxDepth = d
	}
}
