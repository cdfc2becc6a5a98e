package fetcher

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/sync/singleflight"
)

const (
	DefaultTimeout   = 15 * time.Second
	DefaultUserAgent = "lexicorpus/1.0 (+https://github.com/dtnitsch/lexicorpus)"

	// maxBodyBytes caps a single page; anything longer is truncated.
	maxBodyBytes = 8 << 20
)

// StatusError is returned for any non-2xx response.
type StatusError struct {
	URL        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("fetching %s: status code %d", e.URL, e.StatusCode)
}

type Options struct {
	Timeout   time.Duration
	UserAgent string
	// Client overrides the HTTP client; tests use it to reach httptest servers.
	Client *http.Client
}

type Fetcher struct {
	client    *http.Client
	userAgent string
	group     singleflight.Group
}

func New(opts Options) *Fetcher {
	client := opts.Client
	if client == nil {
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = DefaultTimeout
		}
		client = &http.Client{Timeout: timeout}
	}
	ua := opts.UserAgent
	if ua == "" {
		ua = DefaultUserAgent
	}
	return &Fetcher{client: client, userAgent: ua}
}

// Get returns the body of url. Concurrent calls for the same url share one
// request and its result.
func (f *Fetcher) Get(ctx context.Context, url string) ([]byte, error) {
	v, err, _ := f.group.Do(url, func() (interface{}, error) {
		return f.get(ctx, url)
	})
	if err != nil {
		return nil, err
	}
	return v.([]byte), nil
}

func (f *Fetcher) get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml;q=0.9,*/*;q=0.8")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to make HTTP request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{URL: url, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	return body, nil
}
