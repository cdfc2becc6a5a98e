package corpus

import (
	"github.com/dtnitsch/lexicorpus/pkg/mapreduce"
)

// Error types recorded for skipped sources.
const (
	ErrorTypeFetch    = "fetch_error"
	ErrorTypeExtract  = "extract_error"
	ErrorTypeLanguage = "language_skipped"
)

type Job struct {
	Index int
	URL   string
}

// Result holds the outcome of one source. Tokens is nil unless the source
// made it into the corpus.
type Result struct {
	Index      int
	URL        string
	Text       string
	Tokens     []string
	RawTokens  int
	Language   string
	Cached     bool
	StatusCode int
	Error      error
	ErrorType  string
}

// OK reports whether the source contributed a document.
func (r Result) OK() bool { return r.Error == nil }

// SourceOutput is the structured output for one source.
type SourceOutput struct {
	URL       string `json:"url" yaml:"url"`
	Status    string `json:"status" yaml:"status"`
	Document  *int   `json:"document,omitempty" yaml:"document,omitempty"`
	Preview   string `json:"preview,omitempty" yaml:"preview,omitempty"`
	Language  string `json:"language,omitempty" yaml:"language,omitempty"`
	Cached    bool   `json:"cached,omitempty" yaml:"cached,omitempty"`
	Error     string `json:"error,omitempty" yaml:"error,omitempty"`
	ErrorType string `json:"error_type,omitempty" yaml:"error_type,omitempty"`
}

// WordCount is a resolved (word, count) row.
type WordCount struct {
	ID    int    `json:"id" yaml:"id"`
	Word  string `json:"word" yaml:"word"`
	Count int    `json:"count" yaml:"count"`
}

// Lookup reports the id of a requested token.
type Lookup struct {
	Token string `json:"token" yaml:"token"`
	ID    *int   `json:"id" yaml:"id"`
	Found bool   `json:"found" yaml:"found"`
}

// DocumentOutput describes one document of the corpus.
type DocumentOutput struct {
	Index int                   `json:"index" yaml:"index"`
	URL   string                `json:"url" yaml:"url"`
	Pairs []mapreduce.Pair[int] `json:"pairs" yaml:"pairs"`
	Top   []WordCount           `json:"top" yaml:"top"`
}

// FinalOutput is the structured output for the entire run.
type FinalOutput struct {
	Retrieved      int             `json:"retrieved" yaml:"retrieved"`
	Failed         int             `json:"failed" yaml:"failed"`
	VocabularySize int             `json:"vocabulary_size" yaml:"vocabulary_size"`
	Sources        []SourceOutput  `json:"sources" yaml:"sources"`
	Lookup         *Lookup         `json:"lookup,omitempty" yaml:"lookup,omitempty"`
	Document       *DocumentOutput `json:"document,omitempty" yaml:"document,omitempty"`
	Top            []WordCount     `json:"top" yaml:"top"`
}
