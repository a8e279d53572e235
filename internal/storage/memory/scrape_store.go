// Package memory provides in-memory stores for development and tests.
package memory

import (
	"context"
	"sync"

	"github.com/leadlens/sitescraper/internal/scraper"
)

type recordKey struct {
	userID     string
	websiteURL string
}

// ScrapeStore keeps scrape records in a map, latest write wins per key.
type ScrapeStore struct {
	mu      sync.RWMutex
	records map[recordKey]scraper.ScrapeRecord
}

// NewScrapeStore creates an empty in-memory ScrapeStore.
func NewScrapeStore() *ScrapeStore {
	return &ScrapeStore{records: make(map[recordKey]scraper.ScrapeRecord)}
}

// Upsert stores the record under its (user, url) key.
func (s *ScrapeStore) Upsert(_ context.Context, record scraper.ScrapeRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[recordKey{userID: record.UserID, websiteURL: record.WebsiteURL}] = record
	return nil
}

// Get returns the stored record for the key, if any.
func (s *ScrapeStore) Get(userID, websiteURL string) (scraper.ScrapeRecord, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.records[recordKey{userID: userID, websiteURL: websiteURL}]
	return rec, ok
}

// Len reports the number of stored records.
func (s *ScrapeStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}
