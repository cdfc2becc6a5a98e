package corpus

import (
	"sort"

	"github.com/dtnitsch/lexicorpus/pkg/mapreduce"
)

// DocVector is a sparse bag of words: vocabulary id -> occurrences in one
// document. Ids that are not present have an implicit count of zero.
type DocVector map[int]int

// Count returns the occurrences of id; ok is false when the document never
// contained it.
func (d DocVector) Count(id int) (n int, ok bool) {
	n, ok = d[id]
	return n, ok
}

// Sum returns the total number of counted tokens.
func (d DocVector) Sum() int {
	total := 0
	for _, n := range d {
		total += n
	}
	return total
}

// Pairs returns (id, count) entries ordered by id.
func (d DocVector) Pairs() []mapreduce.Pair[int] {
	pairs := make([]mapreduce.Pair[int], 0, len(d))
	for id, n := range d {
		pairs = append(pairs, mapreduce.Pair[int]{Key: id, Count: n})
	}
	sort.Slice(pairs, func(i, j int) bool { return pairs[i].Key < pairs[j].Key })
	return pairs
}

// Vectorize counts the tokens of one document against vocab. Tokens the
// vocabulary does not know are ignored.
func Vectorize(tokens []string, vocab *Vocabulary) DocVector {
	vec := make(DocVector)
	for _, tok := range tokens {
		if id, ok := vocab.ID(tok); ok {
			vec[id]++
		}
	}
	return vec
}

// Totals sums document vectors elementwise.
func Totals(vectors []DocVector) map[int]int {
	maps := make([]map[int]int, len(vectors))
	for i, v := range vectors {
		maps[i] = v
	}
	return mapreduce.Reduce(maps)
}

// Corpus is a vocabulary plus one vector per document, in document order.
// It is immutable once built.
type Corpus struct {
	Vocab   *Vocabulary
	Vectors []DocVector
}

// Build creates the vocabulary for docs and vectorizes each of them.
func Build(docs [][]string) *Corpus {
	vocab := BuildVocabulary(docs)
	intermediate := mapreduce.Map(docs, func(tokens []string) map[int]int {
		return Vectorize(tokens, vocab)
	})
	vectors := make([]DocVector, len(intermediate))
	for i, m := range intermediate {
		vectors[i] = m
	}
	return &Corpus{Vocab: vocab, Vectors: vectors}
}

// Totals sums the occurrences of every id over all documents.
func (c *Corpus) Totals() map[int]int {
	return Totals(c.Vectors)
}

// TopInDocument ranks the n most frequent ids of document doc; ok is false
// when doc is out of range.
func (c *Corpus) TopInDocument(doc, n int) ([]mapreduce.Pair[int], bool) {
	if doc < 0 || doc >= len(c.Vectors) {
		return nil, false
	}
	return mapreduce.TopN(c.Vectors[doc], n), true
}

// Top ranks the n most frequent ids across the corpus.
func (c *Corpus) Top(n int) []mapreduce.Pair[int] {
	return mapreduce.TopN(c.Totals(), n)
}
