package analytics

import (
	"fmt"
	"sort"
)

// LineLengthBins are the edges used for sentence-length charts: one bin per
// length from 0 to 14, and a catch-all bin from 15 up to 200.
var LineLengthBins = []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 200}

// Clip limits every value to [lo, hi].
func Clip(values []int, lo, hi int) []int {
	out := make([]int, len(values))
	for i, v := range values {
		switch {
		case v < lo:
			out[i] = lo
		case v > hi:
			out[i] = hi
		default:
			out[i] = v
		}
	}
	return out
}

// Histogram counts values into the bins delimited by edges. Bin i covers
// [edges[i], edges[i+1]); the last bin also includes its upper edge. Values
// outside the edges are not counted.
func Histogram(values []int, edges []int) ([]int, error) {
	if len(edges) < 2 {
		return nil, fmt.Errorf("histogram needs at least 2 edges, got %d", len(edges))
	}
	if !sort.IntsAreSorted(edges) {
		return nil, fmt.Errorf("histogram edges must be ascending: %v", edges)
	}
	counts := make([]int, len(edges)-1)
	last := len(edges) - 1
	for _, v := range values {
		if v < edges[0] || v > edges[last] {
			continue
		}
		if v == edges[last] {
			counts[last-1]++
			continue
		}
		// first edge strictly greater than v closes v's bin
		i := sort.SearchInts(edges, v+1) - 1
		counts[i]++
	}
	return counts, nil
}
