package tokenize

import (
	"reflect"
	"testing"
)

const nature = "A fundamental challenge is to build a high-fidelity processor capable of running quantum algorithms in an exponentially large computational space. Here we report the use of a processor with programmable superconducting qubits to create quantum states on 53 qubits, corresponding to a computational state-space of dimension 2 to the power 53 (about 10 to the power 16)."

func TestWords(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "punctuation becomes tokens",
			text: "Hello! Hello world.",
			want: []string{"Hello", "!", "Hello", "world", "."},
		},
		{
			name: "emoji are distinct tokens",
			text: "Tu viens me chercher STP 😀🙏",
			want: []string{"Tu", "viens", "me", "chercher", "STP", "😀", "🙏"},
		},
		{
			name: "newlines and runs of spaces are separators",
			text: "to  be\n\nor not",
			want: []string{"to", "be", "or", "not"},
		},
		{
			name: "possessives and contractions are split",
			text: "The company's rival won't say they'll pay",
			want: []string{"The", "company", "'s", "rival", "wo", "n't", "say", "they", "'ll", "pay"},
		},
		{
			name: "typographic apostrophe",
			text: "Cressid’s love isn’t",
			want: []string{"Cressid", "’s", "love", "is", "n’t"},
		},
		{
			name: "other apostrophes stay inside the word",
			text: "o'clock",
			want: []string{"o'clock"},
		},
		{
			name: "empty input",
			text: "",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Words(tt.text)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Words(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestSentences(t *testing.T) {
	got := Sentences("Hello there. How are you? Fine!")
	want := []string{"Hello there.", "How are you?", "Fine!"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Sentences() = %q, want %q", got, want)
	}

	if got := Sentences("   \n  "); len(got) != 0 {
		t.Errorf("Sentences(blank) = %q, want empty", got)
	}
}

func TestRegexp(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		pattern string
		want    []string
	}{
		{"digits", nature, Digits, []string{"53", "2", "53", "10", "16"}},
		{"capitalized words", nature, CapitalizedWords, []string{"Here"}},
		{"capital words with accents", "Tu viens me chercher STP 😀🙏", CapitalWordsLatin, []string{"Tu", "STP"}},
		{"emoji only", "Tu viens me chercher STP 😀🙏", Emoji, []string{"😀", "🙏"}},
		{"no match", "lowercase only", CapitalizedWords, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Regexp(tt.text, tt.pattern)
			if err != nil {
				t.Fatalf("Regexp() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Regexp() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRegexpInvalidPattern(t *testing.T) {
	if _, err := Regexp("text", "("); err == nil {
		t.Error("Regexp() with invalid pattern should return error")
	}
}

func TestSplit(t *testing.T) {
	got, err := Split("One. Two? Three!", SentenceEndings)
	if err != nil {
		t.Fatalf("Split() error = %v", err)
	}
	want := []string{"One", " Two", " Three", ""}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Split() = %q, want %q", got, want)
	}
}

func TestFindAllFollowedBy(t *testing.T) {
	got, err := FindAllFollowedBy(nature, Digits, " qubits")
	if err != nil {
		t.Fatalf("FindAllFollowedBy() error = %v", err)
	}
	if want := []string{"53"}; !reflect.DeepEqual(got, want) {
		t.Errorf("FindAllFollowedBy() = %q, want %q", got, want)
	}
}

func TestLocate(t *testing.T) {
	start, end, ok, err := Locate("Enter Hector and Troilus", "Hector")
	if err != nil {
		t.Fatalf("Locate() error = %v", err)
	}
	if !ok || start != 6 || end != 12 {
		t.Errorf("Locate() = (%d, %d, %v), want (6, 12, true)", start, end, ok)
	}

	_, _, ok, err = Locate("Enter Troilus", "Hector")
	if err != nil {
		t.Fatalf("Locate() error = %v", err)
	}
	if ok {
		t.Error("Locate() found a match that is not there")
	}
}

func TestResolve(t *testing.T) {
	if got := Resolve("emoji"); got != Emoji {
		t.Errorf("Resolve(emoji) = %q, want %q", got, Emoji)
	}
	if got := Resolve(`[a-z]+`); got != `[a-z]+` {
		t.Errorf("Resolve(raw) = %q, want it unchanged", got)
	}
}
