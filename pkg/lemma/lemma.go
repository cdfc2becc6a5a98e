// Package lemma maps surface forms to dictionary base forms.
//
// The Lemmatizer follows WordNet's morphy: a word that is already a base form
// stays as it is, irregular forms come from an exception list, and regular
// inflections are undone by suffix rules whose candidates must exist in the
// lexicon or be listed by the English lemma dictionary for the surface form.
// Words neither source knows pass through unchanged.
package lemma

import (
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"sync"

	"github.com/aaaton/golem/v4"
	"github.com/aaaton/golem/v4/dicts/en"
	"github.com/kljensen/snowball/english"
	"github.com/patrickmn/go-cache"
)

// Dictionary lists the base forms a surface form can have, across parts of
// speech.
type Dictionary interface {
	Lemmas(word string) []string
}

var englishDictionary = sync.OnceValue(func() Dictionary {
	g, err := golem.New(en.New())
	if err != nil {
		slog.Default().Error("Failed to load English lemma dictionary", "error", err)
		return nil
	}
	return g
})

// English returns the shared English lemma dictionary, loaded on first use.
// It is nil if the dictionary failed to load.
func English() Dictionary {
	return englishDictionary()
}

// Reducer turns a folded token into the form used for counting.
type Reducer interface {
	Reduce(word string) string
}

// Lemmatizer is safe for concurrent use. The lexicon and dictionary are
// read-only and the memo is a synchronized cache.
type Lemmatizer struct {
	lex  *Lexicon
	dict Dictionary
	pos  POS
	memo *cache.Cache
}

// NewLemmatizer returns a Lemmatizer that reduces words as the given part of
// speech. A nil lexicon means the embedded default. Suffix rule candidates
// are also checked against the English dictionary.
func NewLemmatizer(lex *Lexicon, pos POS) *Lemmatizer {
	return NewLemmatizerWithDictionary(lex, English(), pos)
}

// NewLemmatizerWithDictionary is NewLemmatizer with an explicit dictionary.
// A nil dictionary leaves the lexicon as the only source of base forms.
func NewLemmatizerWithDictionary(lex *Lexicon, dict Dictionary, pos POS) *Lemmatizer {
	if lex == nil {
		lex = Default()
	}
	return &Lemmatizer{
		lex:  lex,
		dict: dict,
		pos:  pos,
		memo: cache.New(cache.NoExpiration, 0),
	}
}

// Reduce lemmatizes word as the Lemmatizer's configured part of speech.
func (l *Lemmatizer) Reduce(word string) string {
	return l.Lemmatize(word, l.pos)
}

// Lemmatize returns the base form of word for pos, or word itself when the
// lexicon has no entry for it.
func (l *Lemmatizer) Lemmatize(word string, pos POS) string {
	key := string(pos) + ":" + word
	if v, found := l.memo.Get(key); found {
		return v.(string)
	}
	base := l.morphy(word, pos)
	l.memo.Set(key, base, cache.NoExpiration)
	return base
}

func (l *Lemmatizer) morphy(word string, pos POS) string {
	if word == "" || l.lex.Has(pos, word) {
		return word
	}

	var candidates []string
	if forms, ok := l.lex.exceptions(pos, word); ok {
		candidates = forms
	} else {
		var listed []string
		if l.dict != nil {
			listed = l.dict.Lemmas(word)
		}
		for _, r := range rules[pos] {
			if !strings.HasSuffix(word, r.suffix) {
				continue
			}
			cand := word[:len(word)-len(r.suffix)] + r.ending
			if cand != "" && (l.lex.Has(pos, cand) || slices.Contains(listed, cand)) {
				candidates = append(candidates, cand)
			}
		}
	}

	if len(candidates) == 0 {
		return word
	}
	best := candidates[0]
	for _, c := range candidates[1:] {
		if len(c) < len(best) {
			best = c
		}
	}
	return best
}

// Stemmer reduces words with the Snowball English stemmer. Unlike the
// Lemmatizer its output need not be a dictionary word.
type Stemmer struct{}

// Reduce stems word.
func (Stemmer) Reduce(word string) string {
	return english.Stem(word, false)
}

// Identity leaves every word as it is.
type Identity struct{}

// Reduce returns word.
func (Identity) Reduce(word string) string { return word }

// FromName builds the reducer selected in configuration: "wordnet",
// "snowball" or "none".
func FromName(name string, lex *Lexicon, pos POS) (Reducer, error) {
	switch strings.ToLower(name) {
	case "", "wordnet", "lemma":
		return NewLemmatizer(lex, pos), nil
	case "snowball", "stem":
		return Stemmer{}, nil
	case "none":
		return Identity{}, nil
	default:
		return nil, fmt.Errorf("unknown reducer %q (want wordnet, snowball or none)", name)
	}
}
