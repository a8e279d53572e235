// Package pipeline executes the scrape flow for one request: validate,
// fetch, refuse parking pages, extract, persist, then best-effort archive
// and notify. The flow is a single linear pass with no retries.
package pipeline

import (
	"bytes"
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/leadlens/sitescraper/internal/extract"
	"github.com/leadlens/sitescraper/internal/metrics"
	"github.com/leadlens/sitescraper/internal/scraper"
)

// Config controls Pipeline behavior.
type Config struct {
	BlobPrefix  string
	ContentType string
	Topic       string
}

// Pipeline wires the fetcher, extractor, and persistence collaborators.
type Pipeline struct {
	fetcher   scraper.Fetcher
	store     scraper.RecordStore
	blobs     scraper.BlobStore
	publisher scraper.Publisher
	hasher    scraper.Hasher
	clock     scraper.Clock
	cfg       Config
	logger    *zap.Logger
}

// New constructs a Pipeline. blobs and publisher may be nil; archival and
// notification are then skipped.
func New(
	fetcher scraper.Fetcher,
	store scraper.RecordStore,
	blobs scraper.BlobStore,
	publisher scraper.Publisher,
	hasher scraper.Hasher,
	clock scraper.Clock,
	cfg Config,
	logger *zap.Logger,
) *Pipeline {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.ContentType == "" {
		cfg.ContentType = "text/html; charset=utf-8"
	}
	if cfg.BlobPrefix == "" {
		cfg.BlobPrefix = "pages"
	}
	return &Pipeline{
		fetcher:   fetcher,
		store:     store,
		blobs:     blobs,
		publisher: publisher,
		hasher:    hasher,
		clock:     clock,
		cfg:       cfg,
		logger:    logger,
	}
}

// Scrape runs the full flow for one request. Every failure is terminal for
// the invocation; errors carry the taxonomy the API boundary maps to a
// response.
func (p *Pipeline) Scrape(ctx context.Context, req scraper.ScrapeRequest) (scraper.ScrapeOutcome, error) {
	if req.WebsiteURL == "" {
		return scraper.ScrapeOutcome{}, &scraper.ValidationError{Field: "websiteUrl"}
	}
	if req.UserID == "" {
		return scraper.ScrapeOutcome{}, &scraper.ValidationError{Field: "userId"}
	}

	fetched, err := p.fetcher.Fetch(ctx, req.WebsiteURL)
	if err != nil {
		metrics.ObserveScrape(req.WebsiteURL, "fetch_error", 0, 0)
		return scraper.ScrapeOutcome{}, err
	}

	markup := string(fetched.Body)
	if extract.IsParkingPage(markup) {
		metrics.ObserveScrape(fetched.FinalURL, "parking_page", len(fetched.Body), fetched.Duration)
		return scraper.ScrapeOutcome{}, &scraper.ParkingPageError{URL: fetched.FinalURL}
	}

	now := p.clock.Now()
	result := extract.Extract(markup, fetched.FinalURL, now)

	hash, err := p.hasher.Hash(fetched.Body)
	if err != nil {
		// Hashing raw bytes cannot realistically fail; degrade to empty.
		p.logger.Warn("content hash failed", zap.Error(err))
		hash = ""
	}

	record := scraper.ScrapeRecord{
		UserID:        req.UserID,
		WebsiteURL:    req.WebsiteURL,
		Extraction:    result,
		ContentHash:   hash,
		LastScrapedAt: now,
		UpdatedAt:     now,
	}
	if err := p.store.Upsert(ctx, record); err != nil {
		metrics.ObserveScrape(fetched.FinalURL, "persist_error", len(fetched.Body), fetched.Duration)
		return scraper.ScrapeOutcome{}, &scraper.PersistenceError{Err: err}
	}

	p.archive(ctx, req.UserID, hash, fetched.Body)
	p.notify(ctx, scraper.ScrapeEvent{
		UserID:      req.UserID,
		WebsiteURL:  req.WebsiteURL,
		ContentHash: hash,
		ExtractedAt: now,
	})

	metrics.ObserveScrape(fetched.FinalURL, "success", len(fetched.Body), fetched.Duration)
	return scraper.ScrapeOutcome{
		Result:   result,
		InputURL: req.WebsiteURL,
		FinalURL: fetched.FinalURL,
	}, nil
}

// archive stores the raw markup when a blob store is configured. Failures
// are logged, never surfaced: the scrape already succeeded.
func (p *Pipeline) archive(ctx context.Context, userID, hash string, body []byte) {
	if p.blobs == nil || len(body) == 0 {
		return
	}
	name := hash
	if len(name) > 16 {
		name = name[:16]
	}
	path := fmt.Sprintf("%s/%s/%s.html", p.cfg.BlobPrefix, userID, name)
	uri, err := p.blobs.PutObject(ctx, path, p.cfg.ContentType, bytes.NewReader(body))
	if err != nil {
		p.logger.Warn("raw markup archive failed", zap.String("path", path), zap.Error(err))
		return
	}
	p.logger.Debug("raw markup archived", zap.String("uri", uri))
}

func (p *Pipeline) notify(ctx context.Context, event scraper.ScrapeEvent) {
	if p.publisher == nil || p.cfg.Topic == "" {
		return
	}
	if _, err := p.publisher.Publish(ctx, p.cfg.Topic, event); err != nil {
		p.logger.Warn("scrape event publish failed", zap.Error(err))
	}
}
