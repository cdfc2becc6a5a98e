package lemma

import "fmt"

// POS is a WordNet part of speech.
type POS byte

const (
	Noun      POS = 'n'
	Verb      POS = 'v'
	Adjective POS = 'a'
	Adverb    POS = 'r'
)

// ParsePOS accepts the single-letter WordNet tags and their long names.
func ParsePOS(s string) (POS, error) {
	switch s {
	case "", "n", "noun":
		return Noun, nil
	case "v", "verb":
		return Verb, nil
	case "a", "adj", "adjective":
		return Adjective, nil
	case "r", "adv", "adverb":
		return Adverb, nil
	}
	return 0, fmt.Errorf("unknown part of speech %q", s)
}

type detachment struct {
	suffix string
	ending string
}

// rules are WordNet's detachment rules, tried in order.
var rules = map[POS][]detachment{
	Noun: {
		{"s", ""},
		{"ses", "s"},
		{"ves", "f"},
		{"xes", "x"},
		{"zes", "z"},
		{"ches", "ch"},
		{"shes", "sh"},
		{"men", "man"},
		{"ies", "y"},
	},
	Verb: {
		{"s", ""},
		{"ies", "y"},
		{"es", "e"},
		{"es", ""},
		{"ed", "e"},
		{"ed", ""},
		{"ing", "e"},
		{"ing", ""},
	},
	Adjective: {
		{"er", ""},
		{"est", ""},
		{"er", "e"},
		{"est", "e"},
	},
	Adverb: nil,
}
