package tokenize

// Patterns used by the regex walkthrough and the restrictive tokenizers.
// Word characters are Unicode-aware; RE2's \w only covers ASCII.
const (
	SentenceEndings   = `[.?!]`
	CapitalizedWords  = `[A-Z][\p{L}\p{N}_]+`
	CapitalWordsLatin = `[A-ZÀ-ÖØ-Þ][\p{L}\p{N}_]+`
	Digits            = `\d+`
	WordChars         = `[\p{L}\p{N}_]+`
	Emoji             = `[\x{1F300}-\x{1F5FF}\x{1F600}-\x{1F64F}\x{1F680}-\x{1F6FF}\x{2600}-\x{26FF}\x{2700}-\x{27BF}]`
)

// named maps the short names accepted on the command line to patterns.
var named = map[string]string{
	"sentence-endings": SentenceEndings,
	"capitalized":      CapitalizedWords,
	"capital-latin":    CapitalWordsLatin,
	"digits":           Digits,
	"words":            WordChars,
	"emoji":            Emoji,
}

// Resolve turns a pattern name into its expression. Anything that is not a
// known name is treated as a raw regular expression.
func Resolve(nameOrPattern string) string {
	if p, ok := named[nameOrPattern]; ok {
		return p
	}
	return nameOrPattern
}
