package analyze

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/dtnitsch/lexicorpus/pkg/analytics"
	"github.com/dtnitsch/lexicorpus/pkg/normalize"
	"github.com/dtnitsch/lexicorpus/pkg/tokenize"
)

// SampleAbstract is the text the regex walkthrough runs on when no file is
// given: the abstract of "Quantum supremacy using a programmable
// superconducting processor", Nature 574 (2019).
const SampleAbstract = "A fundamental challenge is to build a high-fidelity processor capable of running quantum algorithms in an exponentially large computational space. Here we report the use of a processor with programmable superconducting qubits to create quantum states on 53 qubits, corresponding to a computational state-space of dimension 2 to the power 53 (about 10 to the power 16)."

// Span is the location of the first match of a pattern.
type Span struct {
	Pattern string `json:"pattern" yaml:"pattern"`
	Found   bool   `json:"found" yaml:"found"`
	Start   int    `json:"start" yaml:"start"`
	End     int    `json:"end" yaml:"end"`
}

func locate(text, pattern string) (*Span, error) {
	if pattern == "" {
		return nil, nil
	}
	start, end, ok, err := tokenize.Locate(text, pattern)
	if err != nil {
		return nil, err
	}
	return &Span{Pattern: pattern, Found: ok, Start: start, End: end}, nil
}

// RegexReport is the result of the regular-expression walkthrough.
type RegexReport struct {
	Sentences   []string `json:"sentences" yaml:"sentences"`
	Capitalized []string `json:"capitalized" yaml:"capitalized"`
	Digits      []string `json:"digits" yaml:"digits"`
	Suffix      string   `json:"suffix,omitempty" yaml:"suffix,omitempty"`
	FollowedBy  []string `json:"followed_by,omitempty" yaml:"followed_by,omitempty"`
	Find        *Span    `json:"find,omitempty" yaml:"find,omitempty"`
}

// Regex splits text into sentences at terminal punctuation, lists the
// capitalized words and the numbers, the numbers immediately followed by
// suffix, and where find first matches.
func Regex(text, suffix, find string) (*RegexReport, error) {
	r := &RegexReport{Suffix: suffix}
	var err error
	if r.Sentences, err = tokenize.Split(text, tokenize.SentenceEndings); err != nil {
		return nil, err
	}
	if r.Capitalized, err = tokenize.Regexp(text, tokenize.CapitalizedWords); err != nil {
		return nil, err
	}
	if r.Digits, err = tokenize.Regexp(text, tokenize.Digits); err != nil {
		return nil, err
	}
	if suffix != "" {
		if r.FollowedBy, err = tokenize.FindAllFollowedBy(text, tokenize.Digits, suffix); err != nil {
			return nil, err
		}
	}
	if r.Find, err = locate(text, find); err != nil {
		return nil, err
	}
	return r, nil
}

// TokenOptions selects what Tokens reports besides the sentence count.
type TokenOptions struct {
	// Sentence is the index of the sentence to split into words.
	Sentence int
	// Find is located in the text when set.
	Find string
	// Pattern is a name known to tokenize.Resolve or a raw expression.
	Pattern string
}

// TokenReport is the result of the tokenizer walkthrough.
type TokenReport struct {
	Sentences      int      `json:"sentences" yaml:"sentences"`
	Sentence       int      `json:"sentence" yaml:"sentence"`
	SentenceTokens []string `json:"sentence_tokens" yaml:"sentence_tokens"`
	Tokens         int      `json:"tokens" yaml:"tokens"`
	Distinct       []string `json:"distinct" yaml:"distinct"`
	Find           *Span    `json:"find,omitempty" yaml:"find,omitempty"`
	Pattern        string   `json:"pattern,omitempty" yaml:"pattern,omitempty"`
	Matches        []string `json:"matches,omitempty" yaml:"matches,omitempty"`
}

// Tokens splits text into sentences and words. Distinct holds each word
// once, in first-seen order.
func Tokens(text string, opts TokenOptions) (*TokenReport, error) {
	sentences := tokenize.Sentences(text)
	if opts.Sentence < 0 || opts.Sentence >= len(sentences) {
		return nil, fmt.Errorf("sentence %d out of range: text has %d sentences", opts.Sentence, len(sentences))
	}

	words := tokenize.Words(text)
	r := &TokenReport{
		Sentences:      len(sentences),
		Sentence:       opts.Sentence,
		SentenceTokens: tokenize.Words(sentences[opts.Sentence]),
		Tokens:         len(words),
		Distinct:       analytics.Count(words).Words(),
	}

	var err error
	if r.Find, err = locate(text, opts.Find); err != nil {
		return nil, err
	}
	if opts.Pattern != "" {
		r.Pattern = tokenize.Resolve(opts.Pattern)
		if r.Matches, err = tokenize.Regexp(text, r.Pattern); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// LinesReport holds per-line word counts and their histogram.
type LinesReport struct {
	Lines  int   `json:"lines" yaml:"lines"`
	Words  []int `json:"words" yaml:"words"`
	Edges  []int `json:"edges" yaml:"edges"`
	Counts []int `json:"counts" yaml:"counts"`
}

// Lines counts the words on every line of text after blanking the lines
// filter matches, then bins the counts with analytics.LineLengthBins.
// Counts above the last edge fall into the overflow bin.
func Lines(text string, filter *regexp.Regexp) (*LinesReport, error) {
	text = normalize.Sanitize(text)
	if filter != nil {
		text = normalize.RemoveSegments(text, filter)
	}

	lines := strings.Split(text, "\n")
	words := make([]int, len(lines))
	for i, line := range lines {
		tokens, err := tokenize.Regexp(line, tokenize.WordChars)
		if err != nil {
			return nil, err
		}
		words[i] = len(tokens)
	}

	edges := analytics.LineLengthBins
	counts, err := analytics.Histogram(analytics.Clip(words, edges[0], edges[len(edges)-1]), edges)
	if err != nil {
		return nil, err
	}
	return &LinesReport{Lines: len(lines), Words: words, Edges: edges, Counts: counts}, nil
}

// Labels names the histogram bins: single lengths for unit-wide bins, a
// range for wider ones.
func (r *LinesReport) Labels() []string {
	labels := make([]string, len(r.Counts))
	for i := range r.Counts {
		lo, hi := r.Edges[i], r.Edges[i+1]
		if hi-lo == 1 {
			labels[i] = fmt.Sprint(lo)
		} else {
			labels[i] = fmt.Sprintf("%d-%d", lo, hi)
		}
	}
	return labels
}

// TopicsReport compares the raw and the cleaned bag of words of a text.
type TopicsReport struct {
	Raw     []analytics.WordCount `json:"raw" yaml:"raw"`
	Cleaned []analytics.WordCount `json:"cleaned" yaml:"cleaned"`
	// Kept is the number of tokens left after cleaning, out of Total.
	Kept  int `json:"kept" yaml:"kept"`
	Total int `json:"total" yaml:"total"`
}

// Topics ranks the lower-cased tokens of text as they come, and again after
// running them through n. Both rankings are cut to top entries.
func Topics(text string, n *normalize.Normalizer, top int) *TopicsReport {
	raw := normalize.FoldCase(normalize.Tokenize(normalize.Sanitize(text), tokenize.Words))
	cleaned := n.Normalize(text)
	return &TopicsReport{
		Raw:     analytics.Count(raw).MostCommon(top),
		Cleaned: analytics.Count(cleaned).MostCommon(top),
		Kept:    len(cleaned),
		Total:   len(raw),
	}
}
