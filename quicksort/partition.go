// Package quicksort: the Lomuto partitioning primitive shared by every
// engine.
package quicksort

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Partition rearranges data[low..high] in place around the element at
// index high (the pivot) and returns the pivot's settled index p.
//
// Postconditions:
//   - data[low..p-1] ≤ data[p] < data[p+1..high]
//   - the multiset of values in [low, high] is unchanged
//
// A single-element range (low == high) settles immediately: returns low.
// Calling with low > high or indices outside data is a caller bug and
// panics — engines always guard their ranges, so the check never fires on
// any path through this package.
//
// Complexity: O(high−low) comparisons, at most as many swaps, no
// allocation.
func Partition[T constraints.Ordered](data []T, low, high int) int {
	if low < 0 || high >= len(data) || low > high {
		panic(fmt.Sprintf("quicksort: partition range [%d,%d] invalid for length %d", low, high, len(data)))
	}

	// 1) Pivot is the last element of the range.
	pivot := data[high]

	// 2) Sweep once, growing the ≤-pivot prefix at i.
	i := low - 1
	for j := low; j < high; j++ {
		if data[j] <= pivot {
			i++
			data[i], data[j] = data[j], data[i]
		}
	}

	// 3) Settle the pivot right after the prefix.
	data[i+1], data[high] = data[high], data[i+1]

	return i + 1
}
