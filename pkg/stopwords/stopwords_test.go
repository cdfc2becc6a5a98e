package stopwords

import "testing"

func TestSetContains(t *testing.T) {
	set := English().Union(EarlyModern())

	tests := []struct {
		word string
		want bool
	}{
		{"the", true},
		{"thou", true},
		{"'tis", true},
		{"", true},
		{"troy", false},
		{"The", false}, // sets hold folded words only
	}

	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			if got := set.Contains(tt.word); got != tt.want {
				t.Errorf("Contains(%q) = %v, want %v", tt.word, got, tt.want)
			}
		})
	}
}

func TestUnionDoesNotMutate(t *testing.T) {
	base := New("alpha")
	merged := base.Union(New("beta"))

	if base.Contains("beta") {
		t.Error("Union() modified the receiver")
	}
	if !merged.Contains("alpha") || !merged.Contains("beta") {
		t.Error("Union() result is missing words")
	}
	if merged.Len() != 2 {
		t.Errorf("Len() = %d, want 2", merged.Len())
	}
}

func TestFromConfig(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		word    string
		want    bool
		wantLen int
	}{
		{"empty config", Config{}, "the", false, 0},
		{"extra only", Config{Extra: []string{"lord"}}, "lord", true, 1},
		{"english", Config{English: true}, "the", true, English().Len()},
		{"early modern", Config{EarlyModern: true}, "thee", true, EarlyModern().Len()},
		{"web noise", Config{WebNoise: true}, "homepage", true, WebNoise().Len()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set := FromConfig(tt.cfg)
			if got := set.Contains(tt.word); got != tt.want {
				t.Errorf("Contains(%q) = %v, want %v", tt.word, got, tt.want)
			}
			if set.Len() != tt.wantLen {
				t.Errorf("Len() = %d, want %d", set.Len(), tt.wantLen)
			}
		})
	}
}

func TestZeroSetIsEmpty(t *testing.T) {
	var set Set
	if set.Contains("the") {
		t.Error("zero Set should contain nothing")
	}
}
