package common

import (
	"fmt"
	"os"
	"regexp"

	"github.com/dtnitsch/lexicorpus/models"
	"github.com/dtnitsch/lexicorpus/pkg/lemma"
	"github.com/dtnitsch/lexicorpus/pkg/normalize"
	"github.com/dtnitsch/lexicorpus/pkg/stopwords"
)

// SegmentFilter resolves the configured filter. "script" is the play-script
// pattern; anything else is compiled as a regular expression.
func SegmentFilter(expr string) (*regexp.Regexp, error) {
	switch expr {
	case "":
		return nil, nil
	case "script":
		return normalize.ScriptSegments, nil
	}
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("invalid segment_filter %q: %w", expr, err)
	}
	return re, nil
}

// Reducer builds the base-form reducer described by cfg, loading the extra
// lexicon file when one is configured.
func Reducer(cfg *models.Config) (lemma.Reducer, error) {
	pos, err := lemma.ParsePOS(cfg.LemmaPOS)
	if err != nil {
		return nil, err
	}

	var lex *lemma.Lexicon
	if cfg.LexiconPath != "" {
		f, err := os.Open(cfg.LexiconPath)
		if err != nil {
			return nil, fmt.Errorf("opening lexicon: %w", err)
		}
		defer f.Close()
		if lex, err = lemma.LoadLexicon(f); err != nil {
			return nil, fmt.Errorf("loading lexicon %s: %w", cfg.LexiconPath, err)
		}
	}

	return lemma.FromName(cfg.Reducer, lex, pos)
}

// NewNormalizer assembles the text pipeline from cfg.
func NewNormalizer(cfg *models.Config) (*normalize.Normalizer, error) {
	filter, err := SegmentFilter(cfg.SegmentFilter)
	if err != nil {
		return nil, err
	}
	reducer, err := Reducer(cfg)
	if err != nil {
		return nil, err
	}
	return normalize.New(normalize.Options{
		SegmentFilter: filter,
		AlphaOnly:     cfg.AlphaOnly,
		Stopwords:     stopwords.FromConfig(cfg.Stopwords),
		Reducer:       reducer,
	}), nil
}
