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
	"math/bits"
	"math/rand"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"
)

// sorters lists both variants so every property runs against each.
var sorters = []struct {
	name string
	alg  Algorithm
	sort func(data []int, lo, hi int)
}{
	{"Lomuto", Lomuto, Sort[int]},
	{"ThreeWay", ThreeWay, Sort3Way[int]},
}

func randomInts(rng *rand.Rand, n, maxVal int) []int {
	data := make([]int, n)
	for i := range data {
		data[i] = rng.Intn(maxVal)
	}
	return data
}

// TestSortEmpty tests sorting empty slices
func TestSortEmpty(t *testing.T) {
	for _, s := range sorters {
		var empty []int
		s.sort(empty, 0, -1)
		if len(empty) != 0 {
			t.Errorf("%s(empty) should not modify empty slice", s.name)
		}
	}
}

// TestSortSingle tests sorting single element slices
func TestSortSingle(t *testing.T) {
	for _, s := range sorters {
		data := []int{42}
		s.sort(data, 0, 0)
		if data[0] != 42 {
			t.Errorf("%s([42]) = %v, want [42]", s.name, data)
		}
	}
}

func TestSortShapes(t *testing.T) {
	tests := []struct {
		name string
		data []int
		want []int
	}{
		{"example", []int{3, 6, 2, 9, 1}, []int{1, 2, 3, 6, 9}},
		{"sorted", []int{1, 2, 3, 4, 5, 6, 7, 8}, []int{1, 2, 3, 4, 5, 6, 7, 8}},
		{"reverse", []int{8, 7, 6, 5, 4, 3, 2, 1}, []int{1, 2, 3, 4, 5, 6, 7, 8}},
		{"duplicates", []int{3, 1, 4, 1, 5, 9, 2, 6, 5, 3, 5}, []int{1, 1, 2, 3, 3, 4, 5, 5, 5, 6, 9}},
		{"allSame", []int{5, 5, 5, 5, 5}, []int{5, 5, 5, 5, 5}},
		{"pair", []int{2, 1}, []int{1, 2}},
		{"negatives", []int{0, -3, 7, -3, 2}, []int{-3, -3, 0, 2, 7}},
	}
	for _, s := range sorters {
		for _, tt := range tests {
			t.Run(s.name+"/"+tt.name, func(t *testing.T) {
				data := slices.Clone(tt.data)
				s.sort(data, 0, len(data)-1)
				if diff := cmp.Diff(tt.want, data); diff != "" {
					t.Errorf("%s(%v) mismatch (-want +got):\n%s", s.name, tt.data, diff)
				}
			})
		}
	}
}

// TestSortSubRange checks that only data[lo..hi] is touched and that it ends
// up holding the same elements in order.
func TestSortSubRange(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for _, s := range sorters {
		for trial := 0; trial < 200; trial++ {
			n := 1 + rng.Intn(64)
			data := randomInts(rng, n, 20)
			lo := rng.Intn(n)
			hi := lo + rng.Intn(n-lo)

			want := slices.Clone(data)
			slices.Sort(want[lo : hi+1])

			s.sort(data, lo, hi)
			if diff := cmp.Diff(want, data); diff != "" {
				t.Fatalf("%s(n=%d, lo=%d, hi=%d) mismatch (-want +got):\n%s", s.name, n, lo, hi, diff)
			}
		}
	}
}

// TestSortMatchesStdlib verifies both variants produce the same result as slices.Sort
func TestSortMatchesStdlib(t *testing.T) {
	rng := rand.New(rand.NewSource(12345))
	sizes := []int{0, 1, 7, 8, 15, 16, 31, 32, 63, 64, 100, 256, 1000}
	for _, n := range sizes {
		ref := make([]float64, n)
		for i := range ref {
			ref[i] = rng.Float64()*1000 - 500
		}
		want := slices.Clone(ref)
		slices.Sort(want)

		a := slices.Clone(ref)
		SortSlice(a)
		if diff := cmp.Diff(want, a); diff != "" {
			t.Errorf("SortSlice(n=%d) mismatch (-want +got):\n%s", n, diff)
		}

		b := slices.Clone(ref)
		Sort3WaySlice(b)
		if diff := cmp.Diff(want, b); diff != "" {
			t.Errorf("Sort3WaySlice(n=%d) mismatch (-want +got):\n%s", n, diff)
		}
	}
}

func TestSortStrings(t *testing.T) {
	words := []string{"pear", "apple", "fig", "apple", "kiwi", "banana"}
	want := []string{"apple", "apple", "banana", "fig", "kiwi", "pear"}

	a := slices.Clone(words)
	SortSlice(a)
	if diff := cmp.Diff(want, a); diff != "" {
		t.Errorf("SortSlice(strings) mismatch (-want +got):\n%s", diff)
	}

	b := slices.Clone(words)
	Sort3WaySlice(b)
	if diff := cmp.Diff(want, b); diff != "" {
		t.Errorf("Sort3WaySlice(strings) mismatch (-want +got):\n%s", diff)
	}
}

func TestSortIdempotent(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for _, s := range sorters {
		data := randomInts(rng, 300, 50)
		s.sort(data, 0, len(data)-1)
		once := slices.Clone(data)
		s.sort(data, 0, len(data)-1)
		if diff := cmp.Diff(once, data); diff != "" {
			t.Errorf("%s is not idempotent (-first +second):\n%s", s.name, diff)
		}
	}
}

func TestSortNoOpRanges(t *testing.T) {
	tests := []struct {
		name   string
		lo, hi int
	}{
		{"singleton", 2, 2},
		{"inverted", 3, 1},
		{"inverted out of bounds", 10, -5},
	}
	for _, s := range sorters {
		for _, tt := range tests {
			data := []int{4, 3, 2, 1}
			st := MeasureWith(s.alg, data, tt.lo, tt.hi)
			if diff := cmp.Diff([]int{4, 3, 2, 1}, data); diff != "" {
				t.Errorf("%s %s modified data (-want +got):\n%s", s.name, tt.name, diff)
			}
			if st.Comparisons != 0 || st.Partitions != 0 {
				t.Errorf("%s %s: stats = %+v, want no work", s.name, tt.name, st)
			}
		}
	}
}

func TestSortPanicsOnBadRange(t *testing.T) {
	tests := []struct {
		name   string
		lo, hi int
	}{
		{"negative lo", -1, 2},
		{"hi past end", 0, 4},
	}
	for _, s := range sorters {
		for _, tt := range tests {
			t.Run(s.name+"/"+tt.name, func(t *testing.T) {
				defer func() {
					r := recover()
					if r == nil {
						t.Fatalf("expected panic for range [%d, %d]", tt.lo, tt.hi)
					}
					err, ok := r.(error)
					if !ok || errors.Cause(err) != ErrRange {
						t.Errorf("panic value %v does not wrap ErrRange", r)
					}
				}()
				s.sort([]int{4, 3, 2, 1}, tt.lo, tt.hi)
			})
		}
	}
}

func TestCheckRange(t *testing.T) {
	tests := []struct {
		name      string
		n, lo, hi int
		wantErr   bool
	}{
		{"full", 5, 0, 4, false},
		{"inner", 5, 1, 3, false},
		{"empty slice", 0, 0, -1, false},
		{"singleton", 5, 4, 4, false},
		{"inverted", 5, 7, 2, false},
		{"negative lo", 5, -1, 3, true},
		{"hi past end", 5, 0, 5, true},
	}
	for _, tt := range tests {
		err := CheckRange(tt.n, tt.lo, tt.hi)
		if (err != nil) != tt.wantErr {
			t.Errorf("CheckRange(%s) = %v, wantErr %v", tt.name, err, tt.wantErr)
		}
		if err != nil && errors.Cause(err) != ErrRange {
			t.Errorf("CheckRange(%s) = %v, want cause ErrRange", tt.name, err)
		}
	}
}

// TestStackDepthBound checks the work stack stays within floor(log2 n)+1
// entries, including on inputs that make Lomuto maximally unbalanced.
func TestStackDepthBound(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	inputs := map[string]func(n int) []int{
		"random": func(n int) []int { return randomInts(rng, n, n) },
		"sorted": func(n int) []int {
			data := make([]int, n)
			for i := range data {
				data[i] = i
			}
			return data
		},
		"reverse": func(n int) []int {
			data := make([]int, n)
			for i := range data {
				data[i] = n - i
			}
			return data
		},
		"fewKeys": func(n int) []int { return randomInts(rng, n, 3) },
	}
	for name, gen := range inputs {
		for _, n := range []int{2, 3, 10, 100, 1000} {
			for _, s := range sorters {
				data := gen(n)
				st := MeasureWith(s.alg, data, 0, n-1)
				if limit := bits.Len(uint(n)); st.MaxDepth > limit {
					t.Errorf("%s(%s, n=%d): MaxDepth = %d, want <= %d", s.name, name, n, st.MaxDepth, limit)
				}
				if !isSorted(data) {
					t.Errorf("%s(%s, n=%d) produced unsorted result", s.name, name, n)
				}
			}
		}
	}
}

func TestParseAlgorithm(t *testing.T) {
	tests := []struct {
		in      string
		want    Algorithm
		wantErr bool
	}{
		{"lomuto", Lomuto, false},
		{"LOMUTO", Lomuto, false},
		{"threeway", ThreeWay, false},
		{" three-way ", ThreeWay, false},
		{"3way", ThreeWay, false},
		{"heapsort", Lomuto, true},
		{"", Lomuto, true},
	}
	for _, tt := range tests {
		got, err := ParseAlgorithm(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseAlgorithm(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseAlgorithm(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestAlgorithmSet(t *testing.T) {
	var alg Algorithm
	if err := alg.Set("threeway"); err != nil {
		t.Fatalf("Set(threeway): %v", err)
	}
	if alg != ThreeWay || alg.String() != "threeway" {
		t.Errorf("after Set(threeway) alg = %v", alg)
	}
	if err := alg.Set("bogus"); err == nil {
		t.Errorf("Set(bogus) should fail")
	}
	if alg != ThreeWay {
		t.Errorf("failed Set changed alg to %v", alg)
	}
	if got := Algorithm(42).String(); got != "unknown" {
		t.Errorf("Algorithm(42).String() = %q, want unknown", got)
	}
}

func TestSortWith(t *testing.T) {
	for _, alg := range []Algorithm{Lomuto, ThreeWay, Algorithm(42)} {
		data := []int{3, 6, 2, 9, 1}
		SortWith(alg, data, 0, len(data)-1)
		if diff := cmp.Diff([]int{1, 2, 3, 6, 9}, data); diff != "" {
			t.Errorf("SortWith(%v) mismatch (-want +got):\n%s", alg, diff)
		}
	}
}

// TestIsSorted tests the IsSorted function
func TestIsSorted(t *testing.T) {
	tests := []struct {
		name string
		data []float32
		want bool
	}{
		{"empty", []float32{}, true},
		{"single", []float32{1}, true},
		{"sorted", []float32{1, 2, 3, 4, 5}, true},
		{"equal", []float32{2, 2, 2}, true},
		{"unsorted", []float32{1, 3, 2, 4, 5}, false},
		{"reverse", []float32{5, 4, 3, 2, 1}, false},
	}
	for _, tt := range tests {
		if got := IsSorted(tt.data); got != tt.want {
			t.Errorf("IsSorted(%s) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestIsSortedRange(t *testing.T) {
	data := []int{9, 1, 2, 3, 0}
	if !IsSortedRange(data, 1, 3) {
		t.Errorf("IsSortedRange(data, 1, 3) = false, want true")
	}
	if IsSortedRange(data, 0, 3) {
		t.Errorf("IsSortedRange(data, 0, 3) = true, want false")
	}
	if !IsSortedRange(data, 4, 0) {
		t.Errorf("IsSortedRange on empty range = false, want true")
	}
}

// Helper to check if slice is sorted
func isSorted(data []int) bool {
	for i := 1; i < len(data); i++ {
		if data[i] < data[i-1] {
			return false
		}
	}
	return true
}
