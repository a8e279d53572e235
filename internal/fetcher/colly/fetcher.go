// Package collyfetcher implements scraper.Fetcher using gocolly.
package collyfetcher

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/gocolly/colly/v2"

	"github.com/leadlens/sitescraper/internal/scraper"
)

// Config controls collector behavior.
type Config struct {
	UserAgent string
	Timeout   time.Duration
}

// Fetcher issues a single GET per call, following redirects transparently.
type Fetcher struct {
	cfg           Config
	baseCollector *colly.Collector
}

// New builds a Fetcher with a pooled transport shared across calls.
func New(cfg Config) *Fetcher {
	// Revisits must stay allowed: upsert semantics mean the same URL is
	// fetched again on every scrape request.
	c := colly.NewCollector(colly.Async(false), colly.AllowURLRevisit())
	c.IgnoreRobotsTxt = true
	c.WithTransport(newHTTPTransport())

	return &Fetcher{
		cfg:           cfg,
		baseCollector: c,
	}
}

// Fetch executes one HTTP GET. It returns the final post-redirect URL and
// the full body, a *scraper.FetchError on a non-success status, or a
// *scraper.NetworkError on transport failure. Nothing is retried.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (scraper.FetchResult, error) {
	var (
		result   scraper.FetchResult
		fetchErr error
	)
	start := time.Now()

	collector := f.baseCollector.Clone()
	if f.cfg.UserAgent != "" {
		collector.UserAgent = f.cfg.UserAgent
	}
	collector.IgnoreRobotsTxt = true
	timeout := f.cfg.Timeout
	if timeout == 0 {
		timeout = 15 * time.Second
	}
	collector.SetRequestTimeout(timeout)

	collector.OnResponse(func(r *colly.Response) {
		result = scraper.FetchResult{
			FinalURL:   r.Request.URL.String(),
			StatusCode: r.StatusCode,
			Body:       append([]byte(nil), r.Body...),
			Duration:   time.Since(start),
		}
	})

	collector.OnError(func(r *colly.Response, err error) {
		if r != nil && r.StatusCode > 0 {
			fetchErr = &scraper.FetchError{
				StatusCode: r.StatusCode,
				Status:     http.StatusText(r.StatusCode),
			}
			return
		}
		fetchErr = &scraper.NetworkError{URL: rawURL, Err: err}
	})

	done := make(chan error, 1)
	go func() {
		done <- collector.Visit(rawURL)
	}()

	select {
	case <-ctx.Done():
		return scraper.FetchResult{}, &scraper.NetworkError{
			URL: rawURL,
			Err: fmt.Errorf("fetch canceled: %w", ctx.Err()),
		}
	case err := <-done:
		if fetchErr != nil {
			return scraper.FetchResult{}, fetchErr
		}
		if err != nil {
			return scraper.FetchResult{}, &scraper.NetworkError{URL: rawURL, Err: err}
		}
		return result, nil
	}
}

func newHTTPTransport() *http.Transport {
	return &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   10 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		TLSHandshakeTimeout:   15 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
		MaxIdleConns:          100,
		IdleConnTimeout:       90 * time.Second,
	}
}
