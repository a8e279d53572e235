// Package scraper defines core types shared across subsystems.
package scraper

import (
	"context"
	"io"
	"time"
)

// ExtractionResult holds the heuristic signals pulled from a single page.
// It is immutable once produced; re-running the extractor on the same markup
// and URL yields the same result for a fixed clock.
type ExtractionResult struct {
	URL              string    `json:"url"`
	Title            string    `json:"title"`
	Description      string    `json:"description"`
	MainContent      string    `json:"mainContent"`
	BusinessKeywords []string  `json:"businessKeywords"`
	CompanyTerms     []string  `json:"companyTerms"`
	NavigationItems  []string  `json:"navigationItems"`
	ExtractedAt      time.Time `json:"extractedAt"`
	WordCount        int       `json:"wordCount"`
}

// ScrapeRecord is the row persisted per (user, website) pair. A later scrape
// overwrites the prior record for the same key; no history is retained.
type ScrapeRecord struct {
	UserID        string           `json:"user_id"`
	WebsiteURL    string           `json:"website_url"`
	Extraction    ExtractionResult `json:"extraction"`
	ContentHash   string           `json:"content_hash"`
	LastScrapedAt time.Time        `json:"last_scraped_at"`
	UpdatedAt     time.Time        `json:"updated_at"`
}

// ScrapeEvent is published after a successful scrape.
type ScrapeEvent struct {
	UserID      string    `json:"user_id"`
	WebsiteURL  string    `json:"website_url"`
	ContentHash string    `json:"content_hash"`
	ExtractedAt time.Time `json:"extracted_at"`
}

// ScrapeRequest captures one inbound scrape invocation.
type ScrapeRequest struct {
	WebsiteURL string `json:"websiteUrl"`
	UserID     string `json:"userId"`
}

// ScrapeOutcome is returned by the pipeline on success.
type ScrapeOutcome struct {
	Result   ExtractionResult
	InputURL string
	FinalURL string
}

// Redirected reports whether the fetch ended somewhere other than the
// requested URL.
func (o ScrapeOutcome) Redirected() bool {
	return o.FinalURL != "" && o.FinalURL != o.InputURL
}

// FetchResult is returned by a Fetcher implementation. FinalURL is the URL
// after redirects, which may differ from the requested one.
type FetchResult struct {
	FinalURL   string
	StatusCode int
	Body       []byte
	Duration   time.Duration
}

// Fetcher retrieves a single page.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (FetchResult, error)
}

// RecordStore upserts scrape records keyed by (user_id, website_url).
type RecordStore interface {
	Upsert(ctx context.Context, record ScrapeRecord) error
}

// BlobStore persists raw artifacts and returns a URI.
type BlobStore interface {
	PutObject(ctx context.Context, path string, contentType string, r io.Reader) (string, error)
}

// Publisher emits scrape notifications.
type Publisher interface {
	Publish(ctx context.Context, topic string, payload any) (string, error)
}

// IDGenerator produces unique identifiers for request correlation.
type IDGenerator interface {
	NewID() (string, error)
}

// Hasher produces a content digest.
type Hasher interface {
	Hash(data []byte) (string, error)
}

// Clock abstracts time.Now for deterministic tests.
type Clock interface {
	Now() time.Time
}
