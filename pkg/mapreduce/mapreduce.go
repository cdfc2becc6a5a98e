package mapreduce

// Map runs mapper over every document and returns the intermediate
// frequency maps in document order.
func Map[D any, K comparable](docs []D, mapper func(D) map[K]int) []map[K]int {
	out := make([]map[K]int, len(docs))
	for i, d := range docs {
		out[i] = mapper(d)
	}
	return out
}

// Reduce aggregates a slice of frequency maps into a single map by summing
// counts per key. The result does not depend on the order of intermediate.
func Reduce[K comparable](intermediate []map[K]int) map[K]int {
	finalResults := make(map[K]int)

	for _, counts := range intermediate {
		for key, count := range counts {
			finalResults[key] += count
		}
	}

	return finalResults
}
