// Package langdetect identifies the natural language of a document so corpus
// builds can be restricted to the languages a stop-word list and lexicon
// exist for.
package langdetect

import (
	"fmt"
	"strings"

	"github.com/pemistahl/lingua-go"
)

// DefaultLanguages are the candidates used when none are configured. lingua
// needs at least two.
var DefaultLanguages = []string{"en", "fr", "de", "es", "it", "pt", "nl"}

// Detector is read-only after construction and safe for concurrent use.
type Detector struct {
	detector lingua.LanguageDetector
	allowed  map[string]struct{}
}

// New builds a detector over the given ISO 639-1 codes. Codes are case
// insensitive. When fewer than two candidates are given the defaults are
// added, since a single-language detector cannot reject anything.
func New(codes ...string) (*Detector, error) {
	byCode := make(map[string]lingua.Language)
	for _, l := range lingua.AllLanguages() {
		byCode[strings.ToLower(l.IsoCode639_1().String())] = l
	}

	allowed := make(map[string]struct{}, len(codes))
	var langs []lingua.Language
	add := func(code string) error {
		code = strings.ToLower(strings.TrimSpace(code))
		l, ok := byCode[code]
		if !ok {
			return fmt.Errorf("unknown language code %q", code)
		}
		for _, have := range langs {
			if have == l {
				return nil
			}
		}
		langs = append(langs, l)
		return nil
	}

	for _, c := range codes {
		if err := add(c); err != nil {
			return nil, err
		}
		allowed[strings.ToLower(strings.TrimSpace(c))] = struct{}{}
	}
	if len(langs) < 2 {
		for _, c := range DefaultLanguages {
			if err := add(c); err != nil {
				return nil, err
			}
		}
	}

	return &Detector{
		detector: lingua.NewLanguageDetectorBuilder().FromLanguages(langs...).Build(),
		allowed:  allowed,
	}, nil
}

// Detect returns the lower-case ISO 639-1 code of text. ok is false when
// the text is too short or ambiguous to decide.
func (d *Detector) Detect(text string) (code string, ok bool) {
	lang, ok := d.detector.DetectLanguageOf(text)
	if !ok {
		return "", false
	}
	return strings.ToLower(lang.IsoCode639_1().String()), true
}

// Allowed reports whether code was one of the languages the detector was
// built with. A detector built without codes allows everything.
func (d *Detector) Allowed(code string) bool {
	if len(d.allowed) == 0 {
		return true
	}
	_, ok := d.allowed[strings.ToLower(code)]
	return ok
}

// Accept detects the language of text and reports whether it is allowed.
// Undecidable text is accepted; the gate only drops documents it is sure
// about.
func (d *Detector) Accept(text string) (code string, ok bool) {
	code, decided := d.Detect(text)
	if !decided {
		return "", true
	}
	return code, d.Allowed(code)
}
