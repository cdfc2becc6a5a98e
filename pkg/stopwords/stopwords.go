// Package stopwords holds the word lists excluded from frequency analysis.
//
// A Set is immutable once built, so one value can be shared by every
// pipeline in the process without locking.
package stopwords

// Set is a fixed collection of lower-cased stop words.
type Set struct {
	words map[string]struct{}
}

// New builds a Set from the given words. Words are stored as given; callers
// pass lower-cased input.
func New(words ...string) Set {
	m := make(map[string]struct{}, len(words))
	for _, w := range words {
		m[w] = struct{}{}
	}
	return Set{words: m}
}

// Contains reports whether word is a stop word.
func (s Set) Contains(word string) bool {
	_, exists := s.words[word]
	return exists
}

// Len returns the number of distinct words in the set.
func (s Set) Len() int {
	return len(s.words)
}

// Union returns a new Set holding the words of s and every other set.
func (s Set) Union(others ...Set) Set {
	size := len(s.words)
	for _, o := range others {
		size += len(o.words)
	}
	m := make(map[string]struct{}, size)
	for w := range s.words {
		m[w] = struct{}{}
	}
	for _, o := range others {
		for w := range o.words {
			m[w] = struct{}{}
		}
	}
	return Set{words: m}
}

// English is the modern English list.
func English() Set { return New(englishWords...) }

// EarlyModern covers archaic forms found in Elizabethan scripts.
func EarlyModern() Set { return New(earlyModernWords...) }

// WebNoise covers navigation and UI words scraped along with page text.
func WebNoise() Set { return New(webNoiseWords...) }

// Config selects which lists make up a run's Set.
type Config struct {
	English     bool     `yaml:"english"`
	EarlyModern bool     `yaml:"early_modern"`
	WebNoise    bool     `yaml:"web_noise"`
	Extra       []string `yaml:"extra"`
}

// FromConfig assembles the Set described by cfg.
func FromConfig(cfg Config) Set {
	set := New(cfg.Extra...)
	if cfg.English {
		set = set.Union(English())
	}
	if cfg.EarlyModern {
		set = set.Union(EarlyModern())
	}
	if cfg.WebNoise {
		set = set.Union(WebNoise())
	}
	return set
}
