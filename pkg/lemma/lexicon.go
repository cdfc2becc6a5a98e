package lemma

import (
	"bufio"
	_ "embed"
	"fmt"
	"io"
	"strings"
	"sync"
)

//go:embed data/lexicon.txt
var embeddedLexicon string

//go:embed data/exceptions.txt
var embeddedExceptions string

// Lexicon is the knowledge base behind the Lemmatizer: base forms per part
// of speech plus irregular forms. Build it fully before sharing it; lookups
// do not lock.
type Lexicon struct {
	bases      map[POS]map[string]struct{}
	irregulars map[POS]map[string][]string
}

// NewLexicon returns an empty Lexicon.
func NewLexicon() *Lexicon {
	return &Lexicon{
		bases:      make(map[POS]map[string]struct{}),
		irregulars: make(map[POS]map[string][]string),
	}
}

// Add records word as a base form for pos.
func (l *Lexicon) Add(pos POS, word string) {
	m, ok := l.bases[pos]
	if !ok {
		m = make(map[string]struct{})
		l.bases[pos] = m
	}
	m[word] = struct{}{}
}

// AddIrregular maps an irregular surface form to its base forms. The bases
// become lexicon entries too, so lemmatizing them again is a no-op.
func (l *Lexicon) AddIrregular(pos POS, surface string, bases ...string) {
	m, ok := l.irregulars[pos]
	if !ok {
		m = make(map[string][]string)
		l.irregulars[pos] = m
	}
	m[surface] = append(m[surface], bases...)
	for _, b := range bases {
		l.Add(pos, b)
	}
}

// Has reports whether word is a known base form for pos.
func (l *Lexicon) Has(pos POS, word string) bool {
	_, ok := l.bases[pos][word]
	return ok
}

// Size returns the number of base-form entries across all parts of speech.
func (l *Lexicon) Size() int {
	n := 0
	for _, m := range l.bases {
		n += len(m)
	}
	return n
}

func (l *Lexicon) exceptions(pos POS, word string) ([]string, bool) {
	forms, ok := l.irregulars[pos][word]
	return forms, ok
}

// Read loads entries into l. Each non-blank line that does not start with
// '#' is either
//
//	word tags           base form, tags is one or more of n v a r
//	surface tags base…  irregular form and its base forms
func (l *Lexicon) Read(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			return fmt.Errorf("lexicon line %d: want at least 2 fields, got %d", lineNo, len(fields))
		}
		word := strings.ToLower(fields[0])
		for _, tag := range fields[1] {
			pos, err := ParsePOS(string(tag))
			if err != nil {
				return fmt.Errorf("lexicon line %d: %w", lineNo, err)
			}
			if len(fields) == 2 {
				l.Add(pos, word)
			} else {
				l.AddIrregular(pos, word, fields[2:]...)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read lexicon: %w", err)
	}
	return nil
}

// LoadLexicon returns the embedded lexicon extended with the entries in r.
func LoadLexicon(r io.Reader) (*Lexicon, error) {
	lex, err := embedded()
	if err != nil {
		return nil, err
	}
	if err := lex.Read(r); err != nil {
		return nil, err
	}
	return lex, nil
}

var defaultLexicon = sync.OnceValue(func() *Lexicon {
	lex, err := embedded()
	if err != nil {
		panic(err)
	}
	return lex
})

// Default returns the shared embedded lexicon.
func Default() *Lexicon {
	return defaultLexicon()
}

func embedded() (*Lexicon, error) {
	lex := NewLexicon()
	if err := lex.Read(strings.NewReader(embeddedLexicon)); err != nil {
		return nil, fmt.Errorf("embedded lexicon: %w", err)
	}
	if err := lex.Read(strings.NewReader(embeddedExceptions)); err != nil {
		return nil, fmt.Errorf("embedded exceptions: %w", err)
	}
	return lex, nil
}
