// Package qsort provides two in-place quicksort variants over ordered types.
//
// Both variants sort an inclusive index range [lo, hi] of a slice and leave
// every element outside that range untouched.
//
// # Algorithms
//
// Sort uses Lomuto partitioning:
//   - The last element of the range is the pivot
//   - A single scan moves every element <= pivot to the left
//   - The pivot lands between the two groups and is never moved again
//
// Sort3Way uses three-way (Dutch national flag) partitioning:
//   - The middle element of the range is the pivot
//   - The range is split into < pivot, == pivot and > pivot groups
//   - Only the < and > groups are partitioned again
//
// Neither variant recurses. Pending ranges live on an explicit work stack,
// and the smaller of the two sub-ranges is always processed first, so the
// stack never grows beyond O(log n) entries whatever the pivot quality.
//
// # Example Usage
//
//	import "github.com/ajroetker/go-qsort/qsort"
//
//	func Process(data []float64) {
//	    qsort.Sort(data, 0, len(data)-1)    // Lomuto
//	    qsort.Sort3WaySlice(data)           // three-way, full range
//	}
//
// # Performance
//
// Sort groups elements equal to the pivot with the smaller ones. On input
// that is already sorted, reverse sorted or made of one repeated key every
// partition is maximally unbalanced and Sort takes O(n²) comparisons.
// Sort3Way isolates the equal keys and finishes all-equal input in a single
// pass. Neither variant randomizes its pivot or falls back to heapsort.
package qsort
