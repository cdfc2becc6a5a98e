package mapreduce

import (
	"cmp"
	"fmt"
	"slices"
)

// Pair is a key with its aggregated count.
type Pair[K cmp.Ordered] struct {
	Key   K   `json:"key" yaml:"key"`
	Count int `json:"count" yaml:"count"`
}

// TopN returns the n highest counts, descending. Equal counts are ordered by
// ascending key; for vocabulary ids that is first-seen order. n < 0 returns
// every entry.
func TopN[K cmp.Ordered](counts map[K]int, n int) []Pair[K] {
	ss := make([]Pair[K], 0, len(counts))
	for k, v := range counts {
		ss = append(ss, Pair[K]{Key: k, Count: v})
	}

	slices.SortFunc(ss, func(a, b Pair[K]) int {
		if a.Count != b.Count {
			return cmp.Compare(b.Count, a.Count)
		}
		return cmp.Compare(a.Key, b.Key)
	})

	if n >= 0 && n < len(ss) {
		ss = ss[:n]
	}
	return ss
}

// TopKeywords formats the top n entries as "label:count" strings
// (e.g. "customer:412"), resolving each key with label.
func TopKeywords[K cmp.Ordered](counts map[K]int, n int, label func(K) string) []string {
	top := TopN(counts, n)
	keywords := make([]string, len(top))
	for i, p := range top {
		keywords[i] = fmt.Sprintf("%s:%d", label(p.Key), p.Count)
	}
	return keywords
}
