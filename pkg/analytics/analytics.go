package analytics

import (
	"sort"
)

// WordCount is one entry of a frequency ranking.
type WordCount struct {
	Word  string `json:"word" yaml:"word"`
	Count int    `json:"count" yaml:"count"`
}

// Counts is a bag of words that remembers the order in which words were
// first seen, so rankings break ties the same way on every run.
type Counts struct {
	order  []string
	counts map[string]int
	total  int
}

// Count tallies tokens in sequence order.
func Count(tokens []string) *Counts {
	c := &Counts{counts: make(map[string]int)}
	for _, t := range tokens {
		c.Add(t)
	}
	return c
}

// Add records one occurrence of word.
func (c *Counts) Add(word string) {
	if c.counts == nil {
		c.counts = make(map[string]int)
	}
	if _, seen := c.counts[word]; !seen {
		c.order = append(c.order, word)
	}
	c.counts[word]++
	c.total++
}

// Get returns the count for word and whether word was seen at all.
func (c *Counts) Get(word string) (int, bool) {
	n, ok := c.counts[word]
	return n, ok
}

// Len returns the number of distinct words.
func (c *Counts) Len() int { return len(c.order) }

// Total returns the number of tokens counted.
func (c *Counts) Total() int { return c.total }

// Words returns the distinct words in first-seen order.
func (c *Counts) Words() []string {
	return append([]string(nil), c.order...)
}

// Map returns a plain copy of the counts.
func (c *Counts) Map() map[string]int {
	m := make(map[string]int, len(c.counts))
	for w, n := range c.counts {
		m[w] = n
	}
	return m
}

// MostCommon returns the n most frequent words, highest count first. Words
// with equal counts keep first-seen order. n < 0 returns every word.
func (c *Counts) MostCommon(n int) []WordCount {
	ranked := make([]WordCount, len(c.order))
	for i, w := range c.order {
		ranked[i] = WordCount{Word: w, Count: c.counts[w]}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Count > ranked[j].Count
	})
	if n >= 0 && n < len(ranked) {
		ranked = ranked[:n]
	}
	return ranked
}
