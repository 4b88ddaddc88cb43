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

import "golang.org/x/exp/constraints"

// Sort sorts data[lo..hi] (inclusive) in ascending order using Lomuto
// partitioning with the last element of each range as pivot.
//
// Sort is a no-op when lo >= hi. Otherwise it panics with an error wrapping
// ErrRange if lo < 0 or hi >= len(data).
//
// Elements equal to the pivot are kept with the smaller group, which makes
// sorted and duplicate-heavy input quadratic. Use Sort3Way for such data.
func Sort[T constraints.Ordered](data []T, lo, hi int) {
	sortLomuto(data, lo, hi, nil)
}

// SortSlice sorts all of data using Sort.
func SortSlice[T constraints.Ordered](data []T) {
	sortLomuto(data, 0, len(data)-1, nil)
}

// SortWithStats is Sort, additionally returning the work it performed.
func SortWithStats[T constraints.Ordered](data []T, lo, hi int) Stats {
	var st Stats
	sortLomuto(data, lo, hi, &st)
	return st
}

// Partition rearranges data[lo..hi] around the pivot data[hi] and returns
// the pivot's final index p, such that:
//   - data[lo:p] <= pivot
//   - data[p] == pivot
//   - data[p+1:hi+1] > pivot
//
// Partition panics with an error wrapping ErrRange unless 0 <= lo <= hi < len(data).
func Partition[T constraints.Ordered](data []T, lo, hi int) int {
	mustCheckBounds(len(data), lo, hi)
	return partitionLomuto(data, lo, hi, nil)
}

func sortLomuto[T constraints.Ordered](data []T, lo, hi int, st *Stats) {
	if lo >= hi {
		return
	}
	mustCheckBounds(len(data), lo, hi)

	var stack workStack
	stack.push(span{lo, hi})
	st.depth(stack.len())

	for stack.len() > 0 {
		s := stack.pop()
		p := partitionLomuto(data, s.lo, s.hi, st)
		st.split(p-s.lo, s.hi-p)

		stack.pushPair(span{s.lo, p - 1}, span{p + 1, s.hi})
		st.depth(stack.len())
	}
}

func partitionLomuto[T constraints.Ordered](data []T, lo, hi int, st *Stats) int {
	pivot := data[hi]

	// data[lo:i+1] holds the elements seen so far that are <= pivot.
	i := lo - 1
	for j := lo; j < hi; j++ {
		st.compare()
		if data[j] <= pivot {
			i++
			data[i], data[j] = data[j], data[i]
			st.swap()
		}
	}

	i++
	data[i], data[hi] = data[hi], data[i]
	st.swap()
	return i
}
