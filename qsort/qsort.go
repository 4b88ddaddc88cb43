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

import (
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
)

// ErrRange is the cause of every index range error reported or raised by
// this package.
var ErrRange = errors.New("qsort: index range out of bounds")

// Algorithm selects one of the partitioning strategies.
type Algorithm int

const (
	// Lomuto selects Sort: last-element pivot, two-way partition.
	Lomuto Algorithm = iota

	// ThreeWay selects Sort3Way: middle-element pivot, three-way partition.
	ThreeWay
)

// String returns the name accepted by ParseAlgorithm.
func (a Algorithm) String() string {
	switch a {
	case Lomuto:
		return "lomuto"
	case ThreeWay:
		return "threeway"
	default:
		return "unknown"
	}
}

// ParseAlgorithm returns the Algorithm with the given name. Matching is case
// insensitive, and "three-way" and "3way" are accepted for ThreeWay.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "lomuto":
		return Lomuto, nil
	case "threeway", "three-way", "3way":
		return ThreeWay, nil
	}
	return Lomuto, errors.Errorf("qsort: unknown algorithm %q (want lomuto or threeway)", name)
}

// Set parses name into a, so that *Algorithm can back a command-line flag.
func (a *Algorithm) Set(name string) error {
	alg, err := ParseAlgorithm(name)
	if err != nil {
		return err
	}
	*a = alg
	return nil
}

// Type names the flag value type.
func (a *Algorithm) Type() string {
	return "algorithm"
}

// SortWith sorts data[lo..hi] (inclusive) with the given algorithm.
// Unknown algorithms fall back to Lomuto.
func SortWith[T constraints.Ordered](alg Algorithm, data []T, lo, hi int) {
	if alg == ThreeWay {
		sortThreeWay(data, lo, hi, nil)
		return
	}
	sortLomuto(data, lo, hi, nil)
}

// MeasureWith is SortWith, additionally returning the work performed.
func MeasureWith[T constraints.Ordered](alg Algorithm, data []T, lo, hi int) Stats {
	if alg == ThreeWay {
		return Sort3WayWithStats(data, lo, hi)
	}
	return SortWithStats(data, lo, hi)
}

// CheckRange reports whether [lo, hi] is a valid range to sort in a slice of
// length n. Empty and single-element ranges (lo >= hi) are always valid.
// The returned error wraps ErrRange.
func CheckRange(n, lo, hi int) error {
	if lo >= hi {
		return nil
	}
	if lo < 0 || hi >= n {
		return errors.Wrapf(ErrRange, "range [%d, %d] with length %d", lo, hi, n)
	}
	return nil
}

func mustCheckBounds(n, lo, hi int) {
	if lo < 0 || hi >= n || lo > hi {
		panic(errors.Wrapf(ErrRange, "range [%d, %d] with length %d", lo, hi, n))
	}
}

// IsSorted reports whether data is sorted in ascending order.
func IsSorted[T constraints.Ordered](data []T) bool {
	for i := 1; i < len(data); i++ {
		if data[i] < data[i-1] {
			return false
		}
	}
	return true
}

// IsSortedRange reports whether data[lo..hi] (inclusive) is sorted in
// ascending order. Empty ranges are sorted.
func IsSortedRange[T constraints.Ordered](data []T, lo, hi int) bool {
	if lo >= hi {
		return true
	}
	return IsSorted(data[lo : hi+1])
}
