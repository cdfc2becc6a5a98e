package corpus

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	lexcorpus "github.com/dtnitsch/lexicorpus/pkg/corpus"
	"gopkg.in/yaml.v3"
)

func sampleOutcome() *Outcome {
	return &Outcome{
		Sources: []Result{
			{Index: 0, URL: "https://en.wikipedia.org/wiki/Revenue", Text: "Cost cost benefit.", Tokens: []string{"cost", "cost", "benefit"}},
			{Index: 1, URL: "https://en.wikipedia.org/wiki/Net_Promoter", Error: errors.New("status 404"), ErrorType: ErrorTypeFetch},
			{Index: 2, URL: "https://en.wikipedia.org/wiki/Benchmarking", Text: "Benefit analysis.", Tokens: []string{"benefit", "analysis"}},
		},
		Invalid:   []string{"htp:/broken"},
		Documents: []int{0, 2},
		Corpus:    lexcorpus.Build([][]string{{"cost", "cost", "benefit"}, {"benefit", "analysis"}}),
	}
}

func TestBuildOutput(t *testing.T) {
	final := BuildOutput(sampleOutcome(), OutputOptions{Lookup: "cost", Doc: 1, Top: 10, ShowDoc: true, Previews: true})

	if final.Retrieved != 2 || final.Failed != 2 || final.VocabularySize != 3 {
		t.Errorf("summary = %d/%d/%d, want 2/2/3", final.Retrieved, final.Failed, final.VocabularySize)
	}
	if len(final.Sources) != 4 {
		t.Fatalf("Sources = %d, want 4", len(final.Sources))
	}
	if d := final.Sources[2].Document; d == nil || *d != 1 {
		t.Errorf("third source document = %v, want 1", d)
	}
	if final.Sources[3].ErrorType != "invalid_url" {
		t.Errorf("invalid source = %+v", final.Sources[3])
	}

	if lk := final.Lookup; lk == nil || !lk.Found || *lk.ID != 0 {
		t.Errorf("Lookup = %+v, want cost -> 0", final.Lookup)
	}

	doc := final.Document
	if doc == nil || doc.URL != "https://en.wikipedia.org/wiki/Benchmarking" {
		t.Fatalf("Document = %+v", doc)
	}
	if len(doc.Pairs) != 2 || doc.Pairs[0].Key != 1 || doc.Pairs[1].Key != 2 {
		t.Errorf("Document pairs = %v, want ids 1, 2", doc.Pairs)
	}

	wantTop := []WordCount{{0, "cost", 2}, {1, "benefit", 2}, {2, "analysis", 1}}
	for i, w := range wantTop {
		if final.Top[i] != w {
			t.Errorf("Top[%d] = %+v, want %+v", i, final.Top[i], w)
		}
	}
}

func TestBuildOutputAbsentLookupAndDoc(t *testing.T) {
	final := BuildOutput(sampleOutcome(), OutputOptions{Lookup: "revenue", Doc: 9, Top: 1, ShowDoc: true})

	if lk := final.Lookup; lk == nil || lk.Found || lk.ID != nil {
		t.Errorf("Lookup = %+v, want not found", final.Lookup)
	}
	if final.Document != nil {
		t.Errorf("Document = %+v, want nil for out-of-range index", final.Document)
	}
	if len(final.Top) != 1 {
		t.Errorf("Top = %v, want 1 entry", final.Top)
	}
}

func TestWriteOutput(t *testing.T) {
	final := BuildOutput(sampleOutcome(), OutputOptions{Lookup: "cost", Top: 3, ShowDoc: true, Previews: true})

	t.Run("text", func(t *testing.T) {
		var buf bytes.Buffer
		if err := WriteOutput(&buf, "text", final); err != nil {
			t.Fatalf("WriteOutput() error = %v", err)
		}
		out := buf.String()
		for _, want := range []string{
			"Number of articles retrieved: 2",
			"Article 0: Cost cost benefit.",
			"Net_Promoter (fetch_error)",
			`Token "cost" has id 0`,
			"(0, 2) (1, 1)",
		} {
			if !strings.Contains(out, want) {
				t.Errorf("text output missing %q:\n%s", want, out)
			}
		}
	})

	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		if err := WriteOutput(&buf, "json", final); err != nil {
			t.Fatalf("WriteOutput() error = %v", err)
		}
		var got FinalOutput
		if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
			t.Fatalf("output is not JSON: %v", err)
		}
		if got.Retrieved != 2 || len(got.Top) != 3 {
			t.Errorf("json output = %+v", got)
		}
	})

	t.Run("yaml", func(t *testing.T) {
		var buf bytes.Buffer
		if err := WriteOutput(&buf, "yaml", final); err != nil {
			t.Fatalf("WriteOutput() error = %v", err)
		}
		var got map[string]any
		if err := yaml.Unmarshal(buf.Bytes(), &got); err != nil {
			t.Fatalf("output is not YAML: %v", err)
		}
		if got["vocabulary_size"] != 3 {
			t.Errorf("vocabulary_size = %v, want 3", got["vocabulary_size"])
		}
	})

	t.Run("unknown", func(t *testing.T) {
		if err := WriteOutput(&bytes.Buffer{}, "xml", final); err == nil {
			t.Error("WriteOutput(xml) error = nil")
		}
	})
}

func TestSplitList(t *testing.T) {
	got := splitList(" a, b,,c ")
	if len(got) != 3 || got[0] != "a" || got[2] != "c" {
		t.Errorf("splitList() = %v", got)
	}
}
