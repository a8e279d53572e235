package postgres

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/require"

	"github.com/leadlens/sitescraper/internal/scraper"
)

func TestUpsertWritesRow(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	store, err := NewScrapeStoreWithPool(mock, "website_scrapes")
	require.NoError(t, err)

	now := time.Unix(1700000000, 0).UTC()
	rec := scraper.ScrapeRecord{
		UserID:     "user-1",
		WebsiteURL: "https://example.com",
		Extraction: scraper.ExtractionResult{
			URL:              "https://example.com",
			Title:            "Example",
			Description:      "An example",
			MainContent:      "Example content",
			BusinessKeywords: []string{"services"},
			CompanyTerms:     []string{"Example Inc"},
			NavigationItems:  []string{"Home"},
			ExtractedAt:      now,
			WordCount:        2,
		},
		ContentHash:   "abc123",
		LastScrapedAt: now,
		UpdatedAt:     now,
	}

	extractionJSON, err := json.Marshal(rec.Extraction)
	require.NoError(t, err)

	mock.ExpectExec("INSERT INTO website_scrapes").
		WithArgs(
			rec.UserID,
			rec.WebsiteURL,
			extractionJSON,
			rec.ContentHash,
			rec.LastScrapedAt,
			rec.UpdatedAt,
		).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err = store.Upsert(context.Background(), rec)
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpsertRequiresKey(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	store, err := NewScrapeStoreWithPool(mock, "")
	require.NoError(t, err)

	err = store.Upsert(context.Background(), scraper.ScrapeRecord{WebsiteURL: "https://example.com"})
	require.Error(t, err)

	err = store.Upsert(context.Background(), scraper.ScrapeRecord{UserID: "user-1"})
	require.Error(t, err)
}

func TestNewScrapeStoreWithPoolValidatesTable(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	_, err = NewScrapeStoreWithPool(mock, "bad;table")
	require.Error(t, err)

	_, err = NewScrapeStoreWithPool(nil, "website_scrapes")
	require.Error(t, err)
}
