package analyze

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/dtnitsch/lexicorpus/internal/common"
	"github.com/dtnitsch/lexicorpus/models"
	"github.com/dtnitsch/lexicorpus/pkg/analytics"
	"github.com/dtnitsch/lexicorpus/pkg/report"
	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"
)

func newLogger(c *cli.Context) *slog.Logger {
	logLevel := slog.LevelInfo
	if c.Bool("quiet") {
		logLevel = slog.LevelError
	}
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
}

// readInput returns the contents of --file ("-" reads stdin). fallback is
// used when no file was given; an empty fallback makes --file required.
func readInput(c *cli.Context, fallback string) (string, error) {
	path := c.String("file")
	switch path {
	case "":
		if fallback == "" {
			return "", cli.Exit("no input: pass --file <path> or --file - for stdin", 1)
		}
		return fallback, nil
	case "-":
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	return string(data), nil
}

// write renders v as yaml or json, or calls text for the default format.
func write(w io.Writer, format string, v any, text func() string) error {
	switch format {
	case "", "text":
		_, err := io.WriteString(w, text()+"\n")
		return err
	case "yaml":
		data, err := yaml.Marshal(v)
		if err != nil {
			return fmt.Errorf("failed to marshal output: %w", err)
		}
		_, err = w.Write(data)
		return err
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	default:
		return fmt.Errorf("unknown format %q (want text, yaml or json)", format)
	}
}

// RegexAction runs the regular-expression walkthrough.
func RegexAction(c *cli.Context) error {
	text, err := readInput(c, SampleAbstract)
	if err != nil {
		return err
	}
	r, err := Regex(text, c.String("followed-by"), c.String("find"))
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}
	newLogger(c).Info("Regex walkthrough finished", "sentences", len(r.Sentences), "digits", len(r.Digits))
	return write(os.Stdout, c.String("format"), r, r.Text)
}

// Text renders r for the terminal.
func (r *RegexReport) Text() string {
	blocks := []string{
		report.List("Sentences", quoteAll(r.Sentences)),
		report.List("Capitalized words", r.Capitalized),
		report.List("Numbers", r.Digits),
	}
	if r.Suffix != "" {
		blocks = append(blocks, report.List(fmt.Sprintf("Numbers followed by %q", r.Suffix), r.FollowedBy))
	}
	if r.Find != nil {
		blocks = append(blocks, r.Find.Text())
	}
	return strings.Join(blocks, "\n\n")
}

// Text renders s as a single line.
func (s *Span) Text() string {
	if !s.Found {
		return fmt.Sprintf("%q not found", s.Pattern)
	}
	return fmt.Sprintf("%q found at %d-%d", s.Pattern, s.Start, s.End)
}

// TokenizeAction runs the tokenizer walkthrough.
func TokenizeAction(c *cli.Context) error {
	text, err := readInput(c, "")
	if err != nil {
		return err
	}
	r, err := Tokens(text, TokenOptions{
		Sentence: c.Int("sentence"),
		Find:     c.String("find"),
		Pattern:  c.String("pattern"),
	})
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}
	newLogger(c).Info("Tokenized input", "sentences", r.Sentences, "tokens", r.Tokens, "distinct", len(r.Distinct))
	return write(os.Stdout, c.String("format"), r, r.Text)
}

// Text renders r for the terminal.
func (r *TokenReport) Text() string {
	blocks := []string{
		fmt.Sprintf("Sentences: %d", r.Sentences),
		report.List(fmt.Sprintf("Sentence %d: %d tokens", r.Sentence, len(r.SentenceTokens)), []string{strings.Join(r.SentenceTokens, " ")}),
		fmt.Sprintf("Tokens: %d (distinct: %d)", r.Tokens, len(r.Distinct)),
	}
	if r.Find != nil {
		blocks = append(blocks, r.Find.Text())
	}
	if r.Pattern != "" {
		blocks = append(blocks, report.List(fmt.Sprintf("Matches of %s", r.Pattern), r.Matches))
	}
	return strings.Join(blocks, "\n\n")
}

// LinesAction charts how many words each line of a file holds.
func LinesAction(c *cli.Context) error {
	text, err := readInput(c, "")
	if err != nil {
		return err
	}
	filter, err := common.SegmentFilter(c.String("segment-filter"))
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}
	r, err := Lines(text, filter)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}
	newLogger(c).Info("Counted words per line", "lines", r.Lines)
	return write(os.Stdout, c.String("format"), r, r.Text)
}

// Text renders the histogram as bars.
func (r *LinesReport) Text() string {
	return report.Histogram(fmt.Sprintf("Words per line (%d lines)", r.Lines), r.Labels(), r.Counts)
}

// TopicsAction ranks the words of a file before and after cleaning.
func TopicsAction(c *cli.Context) error {
	logger := newLogger(c)
	text, err := readInput(c, "")
	if err != nil {
		return err
	}

	cfg, err := models.LoadConfig(c.String("config"))
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}
	if c.IsSet("segment-filter") || cfg.SegmentFilter == "" {
		cfg.SegmentFilter = c.String("segment-filter")
	}
	if c.Bool("early-modern") {
		cfg.Stopwords.EarlyModern = true
	}
	if c.IsSet("reducer") {
		cfg.Reducer = c.String("reducer")
	}
	cfg.Top = c.Int("top")

	n, err := common.NewNormalizer(cfg)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}
	r := Topics(text, n, cfg.Top)
	logger.Info("Built bags of words", "tokens", r.Total, "kept", r.Kept, "reducer", cfg.Reducer)
	return write(os.Stdout, c.String("format"), r, r.Text)
}

// Text renders both rankings.
func (r *TopicsReport) Text() string {
	return strings.Join([]string{
		report.Ranked(fmt.Sprintf("Most common tokens (%d total)", r.Total), entries(r.Raw)),
		report.Ranked(fmt.Sprintf("Most common after cleaning (%d kept)", r.Kept), entries(r.Cleaned)),
	}, "\n\n")
}

func entries(words []analytics.WordCount) []report.Entry {
	out := make([]report.Entry, len(words))
	for i, w := range words {
		out[i] = report.Entry{Label: w.Word, Count: w.Count}
	}
	return out
}

func quoteAll(ss []string) []string {
	out := make([]string, len(ss))
	for i, s := range ss {
		out[i] = fmt.Sprintf("%q", s)
	}
	return out
}
