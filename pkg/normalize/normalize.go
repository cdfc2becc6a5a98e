// Package normalize turns raw text into the ordered base-form tokens used
// for frequency analysis.
//
// The pipeline is a fixed sequence of stages, each an exported function:
//
//	RemoveSegments -> Tokenize -> FoldCase -> FilterAlpha -> FilterStopwords -> Lemmatize
//
// Relative order of surviving tokens is always the order they had in the
// text. No stage returns an error.
package normalize

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/dtnitsch/lexicorpus/pkg/lemma"
	"github.com/dtnitsch/lexicorpus/pkg/stopwords"
	"github.com/dtnitsch/lexicorpus/pkg/tokenize"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// ScriptSegments matches the non-dialogue lines of a play script: bracketed
// stage directions, all-caps speaker labels and act headings, and entrances.
var ScriptSegments = regexp.MustCompile(`^\[(.*?)\]$|^[A-Z]{2,}.*|^Enter.*$`)

// Tokenizer splits text into raw tokens.
type Tokenizer func(text string) []string

// Options configures a Normalizer. The zero value tokenizes on word
// boundaries, folds case and does nothing else.
type Options struct {
	// SegmentFilter, when set, blanks every line it matches before
	// tokenization.
	SegmentFilter *regexp.Regexp
	// Tokenizer defaults to tokenize.Words.
	Tokenizer Tokenizer
	// AlphaOnly keeps only tokens made entirely of letters.
	AlphaOnly bool
	// Stopwords are dropped after case folding.
	Stopwords stopwords.Set
	// Reducer maps tokens to base forms. Nil leaves tokens as they are.
	Reducer lemma.Reducer
}

// Normalizer runs the pipeline with a fixed configuration. It holds no
// mutable state and may be shared between goroutines as long as its
// Reducer may.
type Normalizer struct {
	opts Options
}

// New returns a Normalizer for opts.
func New(opts Options) *Normalizer {
	if opts.Tokenizer == nil {
		opts.Tokenizer = tokenize.Words
	}
	return &Normalizer{opts: opts}
}

// Trace holds the output of every stage for one text.
type Trace struct {
	Raw     []string // tokenizer output, malformed bytes removed
	Folded  []string
	Alpha   []string // equals Folded when AlphaOnly is off
	NoStops []string
	Lemmas  []string // final output
}

// Normalize returns the cleaned, base-form tokens of text.
func (n *Normalizer) Normalize(text string) []string {
	return n.Trace(text).Lemmas
}

// Trace runs the pipeline and keeps every intermediate result.
func (n *Normalizer) Trace(text string) Trace {
	var tr Trace
	text = Sanitize(text)
	if n.opts.SegmentFilter != nil {
		text = RemoveSegments(text, n.opts.SegmentFilter)
	}
	tr.Raw = Tokenize(text, n.opts.Tokenizer)
	tr.Folded = FoldCase(tr.Raw)
	tr.Alpha = tr.Folded
	if n.opts.AlphaOnly {
		tr.Alpha = FilterAlpha(tr.Folded)
	}
	tr.NoStops = FilterStopwords(tr.Alpha, n.opts.Stopwords)
	// A base form can itself be a stop word ("beings" -> "being"), so the
	// filter runs again on the lemmas.
	tr.Lemmas = FilterStopwords(Lemmatize(tr.NoStops, n.opts.Reducer), n.opts.Stopwords)
	return tr
}

// Sanitize replaces ill-formed UTF-8 with U+FFFD and composes the text to
// NFC so visually equal words compare equal.
func Sanitize(text string) string {
	repaired, _, err := transform.String(runes.ReplaceIllFormed(), text)
	if err != nil {
		repaired = strings.ToValidUTF8(text, string(unicode.ReplacementChar))
	}
	return norm.NFC.String(repaired)
}

// RemoveSegments blanks every line of text matched by filter. Line count and
// order are preserved; a trailing \r is ignored when matching.
func RemoveSegments(text string, filter *regexp.Regexp) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if filter.MatchString(strings.TrimSuffix(line, "\r")) {
			lines[i] = ""
		}
	}
	return strings.Join(lines, "\n")
}

// Tokenize splits text with tok and drops tokens that consist only of
// replacement characters.
func Tokenize(text string, tok Tokenizer) []string {
	if tok == nil {
		tok = tokenize.Words
	}
	raw := tok(text)
	out := make([]string, 0, len(raw))
	for _, t := range raw {
		if strings.Trim(t, string(unicode.ReplacementChar)) == "" {
			continue
		}
		out = append(out, t)
	}
	return out
}

// FoldCase lower-cases every token.
func FoldCase(tokens []string) []string {
	lower := cases.Lower(language.Und)
	out := make([]string, len(tokens))
	for i, t := range tokens {
		out[i] = lower.String(t)
	}
	return out
}

// FilterAlpha keeps tokens made only of letters.
func FilterAlpha(tokens []string) []string {
	out := make([]string, 0, len(tokens))
	for _, t := range tokens {
		if IsAlpha(t) {
			out = append(out, t)
		}
	}
	return out
}

// IsAlpha reports whether s is non-empty and every rune is a letter.
func IsAlpha(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

// FilterStopwords drops tokens contained in set.
func FilterStopwords(tokens []string, set stopwords.Set) []string {
	out := make([]string, 0, len(tokens))
	for _, t := range tokens {
		if !set.Contains(t) {
			out = append(out, t)
		}
	}
	return out
}

// Lemmatize maps every token through r. A nil reducer copies the input.
func Lemmatize(tokens []string, r lemma.Reducer) []string {
	out := make([]string, len(tokens))
	for i, t := range tokens {
		if r == nil {
			out[i] = t
			continue
		}
		out[i] = r.Reduce(t)
	}
	return out
}

// RegexpTokenizer returns a Tokenizer that keeps only matches of pattern,
// for restrictive passes such as "capitalized words" or "emoji".
func RegexpTokenizer(pattern string) (Tokenizer, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, err
	}
	return func(text string) []string {
		return re.FindAllString(text, -1)
	}, nil
}
