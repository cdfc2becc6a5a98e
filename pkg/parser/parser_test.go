package parser

import (
	"strings"
	"testing"
)

const samplePage = `<html><head><title>Customer service</title></head>
<body>
<nav><p>Home | About | Contact</p></nav>
<article>
<h1>Customer service</h1>
<p>Customer service is the assistance and advice
   provided by a company to those people who buy or use its products.</p>
<p>The perception of success of such interactions depends on employees who
can adjust themselves to the personality of the customer.</p>
<p>Customer service concerns the priority an organization assigns to
customer service relative to components such as product innovation and
pricing. In this sense, an organization that values good customer service
may spend more money in training employees than the average organization.</p>
</article>
<footer><p>Copyright 2024</p></footer>
</body></html>`

func TestParagraphs(t *testing.T) {
	got, err := Paragraphs(samplePage)
	if err != nil {
		t.Fatalf("Paragraphs() error = %v", err)
	}

	lines := strings.Split(got, "\n")
	if len(lines) != 5 {
		t.Fatalf("Paragraphs() returned %d lines, want 5: %q", len(lines), got)
	}
	if lines[0] != "Home | About | Contact" {
		t.Errorf("line 0 = %q", lines[0])
	}
	want := "Customer service is the assistance and advice provided by a company to those people who buy or use its products."
	if lines[1] != want {
		t.Errorf("line 1 = %q, want %q", lines[1], want)
	}
	if lines[4] != "Copyright 2024" {
		t.Errorf("line 4 = %q", lines[4])
	}
}

func TestParagraphsNone(t *testing.T) {
	got, err := Paragraphs("<html><body><div>no paragraphs</div></body></html>")
	if err != nil {
		t.Fatalf("Paragraphs() error = %v", err)
	}
	if got != "" {
		t.Errorf("Paragraphs() = %q, want empty", got)
	}
}

func TestReadable(t *testing.T) {
	got, err := Readable(samplePage, "https://en.wikipedia.org/wiki/Customer_service")
	if err != nil {
		t.Fatalf("Readable() error = %v", err)
	}
	if !strings.Contains(got, "assistance and advice") {
		t.Errorf("Readable() lost the article body: %q", got)
	}
}

func TestExtract(t *testing.T) {
	tests := []struct {
		name    string
		mode    string
		wantErr bool
	}{
		{"default", "", false},
		{"paragraphs", ModeParagraphs, false},
		{"readability", ModeReadability, false},
		{"unknown", "markdown", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Extract(tt.mode, samplePage, "https://example.com/")
			if (err != nil) != tt.wantErr {
				t.Errorf("Extract(%q) error = %v, wantErr %v", tt.mode, err, tt.wantErr)
			}
		})
	}
}

func TestNormalizeText(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"  a\n  b \n\n c ", "a b c"},
		{"", ""},
		{"single", "single"},
	}
	for _, tt := range tests {
		if got := normalizeText(tt.in); got != tt.want {
			t.Errorf("normalizeText(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
