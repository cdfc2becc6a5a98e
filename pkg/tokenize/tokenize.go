// Package tokenize splits raw text into sentences, words and regex matches.
package tokenize

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/rivo/uniseg"
)

// Words splits text on Unicode word boundaries (UAX #29).
// Whitespace segments are dropped; punctuation and symbols, emoji included,
// come back as their own tokens so later stages can decide what to keep.
// Possessives and contractions are split Treebank-style: "company's" gives
// "company" and "'s", "don't" gives "do" and "n't".
func Words(text string) []string {
	var words []string
	state := -1
	rest := text
	for len(rest) > 0 {
		var word string
		word, rest, state = uniseg.FirstWordInString(rest, state)
		if isBlank(word) {
			continue
		}
		words = append(words, splitClitics(word)...)
	}
	return words
}

// clitics are the suffixes split off after an apostrophe.
var clitics = map[string]bool{"s": true, "m": true, "d": true, "ll": true, "re": true, "ve": true}

func isApostrophe(r rune) bool { return r == '\'' || r == '’' }

// splitClitics separates a trailing clitic from word. Both the ASCII and the
// typographic apostrophe are recognized; other words come back unchanged.
func splitClitics(word string) []string {
	i := strings.LastIndexFunc(word, isApostrophe)
	if i <= 0 {
		return []string{word}
	}
	_, size := utf8.DecodeRuneInString(word[i:])
	suffix := strings.ToLower(word[i+size:])

	if suffix == "t" && i > 1 && (word[i-1] == 'n' || word[i-1] == 'N') {
		return []string{word[:i-1], word[i-1:]}
	}
	if clitics[suffix] {
		return []string{word[:i], word[i:]}
	}
	return []string{word}
}

// Sentences splits text on Unicode sentence boundaries (UAX #29).
// Sentences are trimmed and empty ones dropped.
func Sentences(text string) []string {
	var sentences []string
	state := -1
	rest := text
	for len(rest) > 0 {
		var sentence string
		sentence, rest, state = uniseg.FirstSentenceInString(rest, state)
		sentence = strings.TrimSpace(sentence)
		if sentence != "" {
			sentences = append(sentences, sentence)
		}
	}
	return sentences
}

// Regexp returns every non-overlapping match of pattern in text, in order.
func Regexp(text, pattern string) ([]string, error) {
	re, err := compile(pattern)
	if err != nil {
		return nil, err
	}
	return re.FindAllString(text, -1), nil
}

// Split cuts text around every match of pattern. Empty pieces are kept so
// the result lines up with the separators that produced it.
func Split(text, pattern string) ([]string, error) {
	re, err := compile(pattern)
	if err != nil {
		return nil, err
	}
	return re.Split(text, -1), nil
}

// FindAllFollowedBy returns the matches of pattern that are immediately
// followed by the literal suffix. The suffix is not part of the result.
func FindAllFollowedBy(text, pattern, suffix string) ([]string, error) {
	re, err := compile("(" + pattern + ")" + regexp.QuoteMeta(suffix))
	if err != nil {
		return nil, err
	}
	var found []string
	for _, m := range re.FindAllStringSubmatch(text, -1) {
		found = append(found, m[1])
	}
	return found, nil
}

// Locate reports the byte span of the first match of pattern.
func Locate(text, pattern string) (start, end int, ok bool, err error) {
	re, err := compile(pattern)
	if err != nil {
		return 0, 0, false, err
	}
	loc := re.FindStringIndex(text)
	if loc == nil {
		return 0, 0, false, nil
	}
	return loc[0], loc[1], true, nil
}

func compile(pattern string) (*regexp.Regexp, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid pattern %q: %w", pattern, err)
	}
	return re, nil
}

func isBlank(s string) bool {
	return strings.TrimFunc(s, unicode.IsSpace) == ""
}
