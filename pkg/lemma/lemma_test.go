package lemma

import (
	"strings"
	"testing"
)

func TestLemmatizeNouns(t *testing.T) {
	l := NewLemmatizer(nil, Noun)

	tests := []struct {
		word string
		want string
	}{
		{"lords", "lord"},
		{"customers", "customer"},
		{"companies", "company"},
		{"businesses", "business"},
		{"boxes", "box"},
		{"churches", "church"},
		{"wishes", "wish"},
		{"wolves", "wolf"},
		{"women", "woman"},
		{"children", "child"},
		{"analyses", "analysis"},
		{"cost", "cost"},
		{"hello", "hello"},     // unknown, passes through
		{"troilus", "troilus"}, // unknown name ending in s
		{"running", "running"}, // nouns have no -ing rule
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			if got := l.Reduce(tt.word); got != tt.want {
				t.Errorf("Reduce(%q) = %q, want %q", tt.word, got, tt.want)
			}
		})
	}
}

func TestLemmatizeDictionaryPlurals(t *testing.T) {
	l := NewLemmatizer(nil, Noun)

	tests := []struct {
		word string
		want string
	}{
		{"greeks", "greek"},
		{"trojans", "trojan"},
		{"daughters", "daughter"},
		{"wounds", "wound"},
		{"arrows", "arrow"},
		{"stars", "star"},
		{"clouds", "cloud"},
		{"rewards", "reward"},
		{"building", "building"}, // verb lemma, no noun rule produces it
	}

	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			if got := l.Reduce(tt.word); got != tt.want {
				t.Errorf("Reduce(%q) = %q, want %q", tt.word, got, tt.want)
			}
		})
	}
}

type mapDictionary map[string][]string

func (d mapDictionary) Lemmas(word string) []string { return d[word] }

func TestLemmatizeWithDictionary(t *testing.T) {
	dict := mapDictionary{
		"vambraces": {"vambrace"},
		"mice":      {"mouse"},
		"glasses":   {"glass", "glasses"},
	}
	l := NewLemmatizerWithDictionary(NewLexicon(), dict, Noun)

	tests := []struct {
		word string
		want string
	}{
		{"vambraces", "vambrace"},
		{"glasses", "glass"},
		{"mice", "mice"}, // listed lemma needs a rule that produces it
		{"gauntlets", "gauntlets"},
	}

	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			if got := l.Reduce(tt.word); got != tt.want {
				t.Errorf("Reduce(%q) = %q, want %q", tt.word, got, tt.want)
			}
		})
	}

	bare := NewLemmatizerWithDictionary(NewLexicon(), nil, Noun)
	if got := bare.Reduce("vambraces"); got != "vambraces" {
		t.Errorf("Reduce(vambraces) without dictionary = %q, want vambraces", got)
	}
}

func TestLemmatizeOtherPOS(t *testing.T) {
	l := NewLemmatizer(nil, Noun)

	tests := []struct {
		word string
		pos  POS
		want string
	}{
		{"running", Verb, "run"},
		{"loved", Verb, "love"},
		{"was", Verb, "be"},
		{"studies", Verb, "study"},
		{"stronger", Adjective, "strong"},
		{"better", Adjective, "good"},
		{"quickly", Adverb, "quickly"},
	}

	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			if got := l.Lemmatize(tt.word, tt.pos); got != tt.want {
				t.Errorf("Lemmatize(%q, %c) = %q, want %q", tt.word, tt.pos, got, tt.want)
			}
		})
	}
}

func TestLemmatizeIsIdempotent(t *testing.T) {
	l := NewLemmatizer(nil, Noun)
	words := []string{"lords", "women", "analyses", "bases", "companies", "wolves", "geese", "troy", "hello", "data"}

	for _, w := range words {
		once := l.Reduce(w)
		twice := l.Reduce(once)
		if once != twice {
			t.Errorf("Reduce(Reduce(%q)) = %q, want %q", w, twice, once)
		}
	}
}

func TestLexiconRead(t *testing.T) {
	lex := NewLexicon()
	input := `
# comment
cressida n
gaol nv
gaols n gaol
`
	if err := lex.Read(strings.NewReader(input)); err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if !lex.Has(Noun, "cressida") || !lex.Has(Verb, "gaol") {
		t.Error("Read() did not record base forms")
	}

	l := NewLemmatizer(lex, Noun)
	if got := l.Reduce("gaols"); got != "gaol" {
		t.Errorf("Reduce(gaols) = %q, want gaol", got)
	}
}

func TestLexiconReadErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"single field", "lonely\n"},
		{"bad tag", "word x\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := NewLexicon().Read(strings.NewReader(tt.input)); err == nil {
				t.Error("Read() should fail")
			}
		})
	}
}

func TestLoadLexiconExtendsDefault(t *testing.T) {
	lex, err := LoadLexicon(strings.NewReader("pandarus n\n"))
	if err != nil {
		t.Fatalf("LoadLexicon() error = %v", err)
	}
	if !lex.Has(Noun, "pandarus") || !lex.Has(Noun, "lord") {
		t.Error("LoadLexicon() should contain both embedded and extra entries")
	}
	if Default().Has(Noun, "pandarus") {
		t.Error("LoadLexicon() must not modify the shared default lexicon")
	}
	if Default().Size() == 0 {
		t.Error("Default() lexicon is empty")
	}
}

func TestFromName(t *testing.T) {
	tests := []struct {
		name    string
		word    string
		want    string
		wantErr bool
	}{
		{"wordnet", "lords", "lord", false},
		{"", "lords", "lord", false},
		{"snowball", "running", "run", false},
		{"none", "lords", "lords", false},
		{"porter3000", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := FromName(tt.name, nil, Noun)
			if (err != nil) != tt.wantErr {
				t.Fatalf("FromName() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if got := r.Reduce(tt.word); got != tt.want {
				t.Errorf("Reduce(%q) = %q, want %q", tt.word, got, tt.want)
			}
		})
	}
}

func TestParsePOS(t *testing.T) {
	if p, err := ParsePOS("verb"); err != nil || p != Verb {
		t.Errorf("ParsePOS(verb) = %c, %v", p, err)
	}
	if _, err := ParsePOS("x"); err == nil {
		t.Error("ParsePOS(x) should fail")
	}
}
