package corpus

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/dtnitsch/lexicorpus/internal/common"
	"github.com/dtnitsch/lexicorpus/models"
	lexcorpus "github.com/dtnitsch/lexicorpus/pkg/corpus"
	"github.com/dtnitsch/lexicorpus/pkg/db"
	"github.com/dtnitsch/lexicorpus/pkg/fetcher"
	"github.com/dtnitsch/lexicorpus/pkg/langdetect"
	"github.com/dtnitsch/lexicorpus/pkg/mapreduce"
	"github.com/dtnitsch/lexicorpus/pkg/metrics"
	"github.com/dtnitsch/lexicorpus/pkg/normalize"
	"github.com/dtnitsch/lexicorpus/pkg/parser"
)

// ErrNoDocuments is returned when every source failed or was skipped.
var ErrNoDocuments = errors.New("no documents retrieved")

var errLanguage = errors.New("document language not allowed")

// Getter fetches raw page bodies.
type Getter interface {
	Get(ctx context.Context, url string) ([]byte, error)
}

// Deps are the collaborators of a run. Fetcher and Normalizer are required;
// DB, Detector and Metrics are optional.
type Deps struct {
	Fetcher    Getter
	Normalizer *normalize.Normalizer
	DB         *db.DB
	Detector   *langdetect.Detector
	Metrics    *metrics.Metrics
}

// Outcome is everything a run produced.
type Outcome struct {
	// Sources holds one result per valid URL, in input order.
	Sources []Result
	// Invalid are configured URLs that failed validation.
	Invalid []string
	// Documents maps corpus document index to its index in Sources.
	Documents []int
	Corpus    *lexcorpus.Corpus
}

// Document returns the source result behind corpus document i.
func (o *Outcome) Document(i int) (Result, bool) {
	if i < 0 || i >= len(o.Documents) {
		return Result{}, false
	}
	return o.Sources[o.Documents[i]], true
}

// Failed counts the sources that did not make it into the corpus.
func (o *Outcome) Failed() int {
	return len(o.Sources) - len(o.Documents)
}

// Run fetches, extracts and normalizes every configured URL with a pool of
// workers, then builds the corpus from the documents that succeeded. Failed
// sources are logged, recorded and skipped. The corpus is built in input
// order so ids do not depend on scheduling.
func Run(ctx context.Context, logger *slog.Logger, cfg *models.Config, deps Deps) (*Outcome, error) {
	urls, invalid := common.SanitizeAndValidateURLs(cfg.URLs)
	for _, u := range invalid {
		logger.Warn("Skipping invalid URL", "url", u)
	}
	out := &Outcome{Invalid: invalid}

	workers := cfg.Workers
	if workers > len(urls) {
		workers = len(urls)
	}
	if workers < 1 {
		workers = 1
	}
	logger.Info("Starting concurrent fetch phase", "url_count", len(urls), "workers", workers, "extract", cfg.Extract)

	var wg sync.WaitGroup
	jobs := make(chan Job, len(urls))
	results := make(chan Result, len(urls))

	for w := 1; w <= workers; w++ {
		wg.Add(1)
		go worker(ctx, w, logger, cfg, deps, &wg, jobs, results)
	}
	for i, u := range urls {
		jobs <- Job{Index: i, URL: u}
	}
	close(jobs)

	wg.Wait()
	close(results)
	logger.Info("All fetch workers finished")

	out.Sources = make([]Result, len(urls))
	for r := range results {
		out.Sources[r.Index] = r
	}

	var docs [][]string
	for i, r := range out.Sources {
		if !r.OK() {
			continue
		}
		out.Documents = append(out.Documents, i)
		docs = append(docs, r.Tokens)
	}
	out.Corpus = lexcorpus.Build(docs)

	if m := deps.Metrics; m != nil {
		m.DocumentsTotal.Add(float64(len(docs)))
		m.VocabularySize.Set(float64(out.Corpus.Vocab.Len()))
	}
	logger.Info("Corpus built", "doc_count", len(docs), "failed", out.Failed(), "vocabulary_size", out.Corpus.Vocab.Len(),
		"top_keywords", mapreduce.TopKeywords(out.Corpus.Totals(), 5, out.Corpus.Vocab.Label))

	if len(docs) == 0 {
		return out, ErrNoDocuments
	}
	return out, nil
}

func worker(ctx context.Context, id int, logger *slog.Logger, cfg *models.Config, deps Deps, wg *sync.WaitGroup, jobs <-chan Job, results chan<- Result) {
	defer wg.Done()
	for job := range jobs {
		logger.Info("Worker started job", "worker_id", id, "url", job.URL)
		results <- process(ctx, id, logger, cfg, deps, job)
	}
}

func process(ctx context.Context, id int, logger *slog.Logger, cfg *models.Config, deps Deps, job Job) Result {
	result := Result{Index: job.Index, URL: job.URL}

	var urlID int64
	if deps.DB != nil {
		var err error
		if urlID, err = deps.DB.InsertURL(job.URL); err != nil {
			logger.Warn("Failed to insert URL to DB", "url", job.URL, "error", err)
		}
	}
	record := func(status int, errorType string, success bool) {
		if deps.DB == nil || urlID == 0 {
			return
		}
		if err := deps.DB.RecordAccess(urlID, status, errorType, success); err != nil {
			logger.Warn("Failed to record access to DB", "url", job.URL, "error", err)
		}
	}
	count := func(outcome string) {
		if deps.Metrics != nil {
			deps.Metrics.FetchTotal.WithLabelValues(outcome).Inc()
		}
	}

	body, cached, err := fetchPage(ctx, deps, cfg.MaxAge, job.URL)
	if err != nil {
		logger.Error("Error fetching HTML", "worker_id", id, "url", job.URL, "error", err)
		result.Error = err
		result.ErrorType = ErrorTypeFetch
		var se *fetcher.StatusError
		if errors.As(err, &se) {
			result.StatusCode = se.StatusCode
		}
		record(result.StatusCode, ErrorTypeFetch, false)
		count(metrics.OutcomeFailed)
		return result
	}
	result.Cached = cached
	result.StatusCode = 200
	if !cached && deps.DB != nil && urlID > 0 {
		if err := deps.DB.SavePage(urlID, body); err != nil {
			logger.Warn("Failed to cache page", "url", job.URL, "error", err)
		}
	}

	text, err := parser.Extract(cfg.Extract, string(body), job.URL)
	if err != nil {
		logger.Error("Error extracting text", "worker_id", id, "url", job.URL, "error", err)
		result.Error = err
		result.ErrorType = ErrorTypeExtract
		record(result.StatusCode, ErrorTypeExtract, false)
		count(metrics.OutcomeFailed)
		return result
	}
	result.Text = text

	if deps.Detector != nil {
		lang, ok := deps.Detector.Accept(text)
		result.Language = lang
		if !ok {
			logger.Warn("Skipping document in other language", "worker_id", id, "url", job.URL, "language", lang)
			result.Error = fmt.Errorf("%w: %s", errLanguage, lang)
			result.ErrorType = ErrorTypeLanguage
			record(result.StatusCode, ErrorTypeLanguage, false)
			count(metrics.OutcomeSkipped)
			return result
		}
	}

	tr := deps.Normalizer.Trace(text)
	result.Tokens = tr.Lemmas
	result.RawTokens = len(tr.Raw)
	if deps.Metrics != nil {
		deps.Metrics.TokensTotal.WithLabelValues(metrics.StageRaw).Add(float64(len(tr.Raw)))
		deps.Metrics.TokensTotal.WithLabelValues(metrics.StageNormalized).Add(float64(len(tr.Lemmas)))
	}

	record(result.StatusCode, "", true)
	if cached {
		count(metrics.OutcomeCached)
	} else {
		count(metrics.OutcomeFetched)
	}
	logger.Info("Worker finished processing", "worker_id", id, "url", job.URL, "tokens", len(result.Tokens), "cached", cached)
	return result
}

// fetchPage returns the body of url from the page cache when it is younger
// than maxAge, and from the network otherwise. maxAge 0 always fetches.
func fetchPage(ctx context.Context, deps Deps, maxAge time.Duration, url string) ([]byte, bool, error) {
	if deps.DB != nil && maxAge > 0 {
		body, ok, err := deps.DB.CachedPage(url, maxAge)
		if err == nil && ok {
			return body, true, nil
		}
	}

	if err := ctx.Err(); err != nil {
		return nil, false, err
	}

	start := time.Now()
	body, err := deps.Fetcher.Get(ctx, url)
	if deps.Metrics != nil {
		deps.Metrics.FetchDuration.Observe(time.Since(start).Seconds())
	}
	if err != nil {
		return nil, false, err
	}

	return body, false, nil
}
