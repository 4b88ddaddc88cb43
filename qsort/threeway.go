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

// Sort3Way sorts data[lo..hi] (inclusive) in ascending order using three-way
// partitioning around the middle element of each range.
//
// Elements equal to the pivot are placed once and never compared again, so
// input with many repeated keys sorts in close to linear time per distinct
// key. Sort3Way is a no-op when lo >= hi, and panics with an error wrapping
// ErrRange if lo < 0 or hi >= len(data) otherwise.
func Sort3Way[T constraints.Ordered](data []T, lo, hi int) {
	sortThreeWay(data, lo, hi, nil)
}

// Sort3WaySlice sorts all of data using Sort3Way.
func Sort3WaySlice[T constraints.Ordered](data []T) {
	sortThreeWay(data, 0, len(data)-1, nil)
}

// Sort3WayWithStats is Sort3Way, additionally returning the work it performed.
func Sort3WayWithStats[T constraints.Ordered](data []T, lo, hi int) Stats {
	var st Stats
	sortThreeWay(data, lo, hi, &st)
	return st
}

// Partition3Way performs 3-way partitioning of data[lo..hi] around the value
// at the middle index lo+(hi-lo)/2.
// Returns (lt, gt) indices where:
//   - data[lo:lt] < pivot
//   - data[lt:gt] == pivot
//   - data[gt:hi+1] > pivot
//
// The equal group is never empty since it holds the pivot itself.
// Partition3Way panics with an error wrapping ErrRange unless
// 0 <= lo <= hi < len(data).
func Partition3Way[T constraints.Ordered](data []T, lo, hi int) (int, int) {
	mustCheckBounds(len(data), lo, hi)
	return partitionThreeWay(data, lo, hi, nil)
}

func sortThreeWay[T constraints.Ordered](data []T, lo, hi int, st *Stats) {
	if lo >= hi {
		return
	}
	mustCheckBounds(len(data), lo, hi)

	var stack workStack
	stack.push(span{lo, hi})
	st.depth(stack.len())

	for stack.len() > 0 {
		s := stack.pop()
		lt, gt := partitionThreeWay(data, s.lo, s.hi, st)
		st.split(lt-s.lo, s.hi-gt+1)

		// data[lt:gt] is final.
		stack.pushPair(span{s.lo, lt - 1}, span{gt, s.hi})
		st.depth(stack.len())
	}
}

// partitionThreeWay is the Dutch national flag pass: data[lo:lt] is less,
// data[lt:i] is equal, data[i:gt] is unclassified and data[gt:hi+1] is greater.
func partitionThreeWay[T constraints.Ordered](data []T, lo, hi int, st *Stats) (int, int) {
	pivot := data[lo+(hi-lo)/2]

	lt, i, gt := lo, lo, hi+1
	for i < gt {
		st.compare()
		if data[i] < pivot {
			data[lt], data[i] = data[i], data[lt]
			st.swap()
			lt++
			i++
			continue
		}

		st.compare()
		if data[i] > pivot {
			gt--
			data[i], data[gt] = data[gt], data[i]
			st.swap()
		} else {
			i++
		}
	}

	return lt, gt
}
