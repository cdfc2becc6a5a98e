package corpus

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/dtnitsch/lexicorpus/internal/common"
	"github.com/dtnitsch/lexicorpus/models"
	lexcorpus "github.com/dtnitsch/lexicorpus/pkg/corpus"
	"github.com/dtnitsch/lexicorpus/pkg/db"
	"github.com/dtnitsch/lexicorpus/pkg/fetcher"
	"github.com/dtnitsch/lexicorpus/pkg/langdetect"
	"github.com/dtnitsch/lexicorpus/pkg/mapreduce"
	"github.com/dtnitsch/lexicorpus/pkg/metrics"
	"github.com/dtnitsch/lexicorpus/pkg/report"
	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"
)

const (
	previewLen  = 70
	pairsShown  = 10
	docTopWords = 5
)

// OutputOptions selects what the corpus report shows beyond the summary.
type OutputOptions struct {
	Lookup   string
	Doc      int
	Top      int
	ShowDoc  bool
	Previews bool
}

// CorpusAction builds a corpus from the configured URLs and prints it.
func CorpusAction(c *cli.Context) error {
	logLevel := slog.LevelInfo
	if c.Bool("quiet") {
		logLevel = slog.LevelError
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))

	cfg, err := models.LoadConfig(c.String("config"))
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}
	applyFlags(c, cfg)

	normalizer, err := common.NewNormalizer(cfg)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	deps := Deps{
		Fetcher:    fetcher.New(fetcher.Options{Timeout: cfg.Timeout, UserAgent: cfg.UserAgent}),
		Normalizer: normalizer,
		Metrics:    metrics.New(),
	}

	if cfg.DB != "" {
		database, err := db.Open(cfg.DB)
		if err != nil {
			logger.Error("failed to open database", "error", err)
			return cli.Exit(err.Error(), 2)
		}
		defer database.Close()
		deps.DB = database
	}

	if len(cfg.Languages) > 0 {
		detector, err := langdetect.New(cfg.Languages...)
		if err != nil {
			return cli.Exit(err.Error(), 1)
		}
		deps.Detector = detector
	}

	out, runErr := Run(c.Context, logger, cfg, deps)
	if runErr != nil && !errors.Is(runErr, ErrNoDocuments) {
		return runErr
	}

	if cfg.MetricsFile != "" {
		if err := deps.Metrics.WriteTextfile(cfg.MetricsFile); err != nil {
			logger.Warn("Failed to write metrics", "path", cfg.MetricsFile, "error", err)
		}
	}

	final := BuildOutput(out, OutputOptions{
		Lookup:   c.String("lookup"),
		Doc:      c.Int("doc"),
		Top:      cfg.Top,
		ShowDoc:  true,
		Previews: true,
	})
	if err := WriteOutput(os.Stdout, c.String("format"), final); err != nil {
		return err
	}

	if runErr != nil {
		return cli.Exit(runErr.Error(), 2)
	}
	return nil
}

// applyFlags overrides file configuration with flags the user set.
func applyFlags(c *cli.Context, cfg *models.Config) {
	if c.IsSet("urls") {
		cfg.URLs = splitList(c.String("urls"))
	}
	if c.IsSet("workers") {
		cfg.Workers = c.Int("workers")
	}
	if c.IsSet("timeout") {
		cfg.Timeout = c.Duration("timeout")
	}
	if c.IsSet("extract") {
		cfg.Extract = c.String("extract")
	}
	if c.IsSet("reducer") {
		cfg.Reducer = c.String("reducer")
	}
	if c.IsSet("languages") {
		cfg.Languages = splitList(c.String("languages"))
	}
	if c.IsSet("top") {
		cfg.Top = c.Int("top")
	}
	if c.IsSet("db") {
		cfg.DB = c.String("db")
	}
	if c.IsSet("max-age") {
		cfg.MaxAge = c.Duration("max-age")
	}
	if c.Bool("force-fetch") {
		cfg.MaxAge = 0
	}
	if c.IsSet("metrics-file") {
		cfg.MetricsFile = c.String("metrics-file")
	}
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// BuildOutput resolves ids to words and assembles the report for out.
func BuildOutput(out *Outcome, opts OutputOptions) *FinalOutput {
	vocab := out.Corpus.Vocab
	final := &FinalOutput{
		Retrieved:      len(out.Documents),
		Failed:         out.Failed() + len(out.Invalid),
		VocabularySize: vocab.Len(),
	}

	docOf := make(map[int]int, len(out.Documents))
	for d, src := range out.Documents {
		docOf[src] = d
	}
	for i, r := range out.Sources {
		so := SourceOutput{URL: r.URL, Language: r.Language, Cached: r.Cached}
		if r.OK() {
			d := docOf[i]
			so.Status = "ok"
			so.Document = &d
			if opts.Previews {
				so.Preview = common.Preview(r.Text, previewLen)
			}
		} else {
			so.Status = "failed"
			so.Error = r.Error.Error()
			so.ErrorType = r.ErrorType
		}
		final.Sources = append(final.Sources, so)
	}
	for _, u := range out.Invalid {
		final.Sources = append(final.Sources, SourceOutput{URL: u, Status: "failed", ErrorType: "invalid_url"})
	}

	if opts.Lookup != "" {
		lk := &Lookup{Token: opts.Lookup}
		if id, ok := vocab.ID(opts.Lookup); ok {
			lk.ID = &id
			lk.Found = true
		}
		final.Lookup = lk
	}

	if opts.ShowDoc {
		if top, ok := out.Corpus.TopInDocument(opts.Doc, docTopWords); ok {
			src, _ := out.Document(opts.Doc)
			pairs := out.Corpus.Vectors[opts.Doc].Pairs()
			if len(pairs) > pairsShown {
				pairs = pairs[:pairsShown]
			}
			final.Document = &DocumentOutput{
				Index: opts.Doc,
				URL:   src.URL,
				Pairs: pairs,
				Top:   resolve(vocab, top),
			}
		}
	}

	final.Top = resolve(vocab, out.Corpus.Top(opts.Top))
	return final
}

func resolve(vocab *lexcorpus.Vocabulary, pairs []mapreduce.Pair[int]) []WordCount {
	words := make([]WordCount, len(pairs))
	for i, p := range pairs {
		words[i] = WordCount{ID: p.Key, Word: vocab.Label(p.Key), Count: p.Count}
	}
	return words
}

// WriteOutput renders final as text, yaml or json.
func WriteOutput(w io.Writer, format string, final *FinalOutput) error {
	switch format {
	case "", "text":
		_, err := io.WriteString(w, renderText(final))
		return err
	case "yaml":
		data, err := yaml.Marshal(final)
		if err != nil {
			return fmt.Errorf("failed to marshal output: %w", err)
		}
		_, err = w.Write(data)
		return err
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(final)
	default:
		return fmt.Errorf("unknown format %q (want text, yaml or json)", format)
	}
}

func renderText(final *FinalOutput) string {
	var blocks []string
	blocks = append(blocks, fmt.Sprintf("Number of articles retrieved: %d (failed: %d, vocabulary: %d)",
		final.Retrieved, final.Failed, final.VocabularySize))

	var articles, failures []string
	for _, s := range final.Sources {
		if s.Document != nil {
			articles = append(articles, fmt.Sprintf("Article %d: %s", *s.Document, s.Preview))
			continue
		}
		failures = append(failures, fmt.Sprintf("%s (%s)", s.URL, s.ErrorType))
	}
	blocks = append(blocks, report.List("Articles", articles))
	if len(failures) > 0 {
		blocks = append(blocks, report.List("Skipped", failures))
	}

	if lk := final.Lookup; lk != nil {
		if lk.Found {
			blocks = append(blocks, fmt.Sprintf("Token %q has id %d", lk.Token, *lk.ID))
		} else {
			blocks = append(blocks, fmt.Sprintf("Token %q is not in the vocabulary", lk.Token))
		}
	}

	if d := final.Document; d != nil {
		pairs := make([][2]int, len(d.Pairs))
		for i, p := range d.Pairs {
			pairs[i] = [2]int{p.Key, p.Count}
		}
		blocks = append(blocks,
			report.Pairs(fmt.Sprintf("Document %d: first %d (id, count)", d.Index, len(pairs)), pairs, 5),
			report.Ranked(fmt.Sprintf("Document %d: top words", d.Index), entries(d.Top)),
		)
	}

	blocks = append(blocks, report.Ranked("Corpus: top words", entries(final.Top)))
	return strings.Join(blocks, "\n\n") + "\n"
}

func entries(words []WordCount) []report.Entry {
	out := make([]report.Entry, len(words))
	for i, w := range words {
		out[i] = report.Entry{Label: w.Word, Count: w.Count}
	}
	return out
}
