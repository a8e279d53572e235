// Package postgres provides Postgres-backed persistence implementations.
package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/leadlens/sitescraper/internal/scraper"
)

var validTableName = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)

// ScrapeStoreConfig controls the Postgres connection pool used for scrape
// records.
type ScrapeStoreConfig struct {
	DSN             string
	Table           string
	MaxConns        int32
	MinConns        int32
	MaxConnLifetime time.Duration
}

type execCloser interface {
	Exec(context.Context, string, ...any) (pgconn.CommandTag, error)
	Close()
}

// ScrapeStore upserts scrape records into Postgres, one row per
// (user_id, website_url) pair.
type ScrapeStore struct {
	pool  execCloser
	table string
}

// NewScrapeStore creates a Postgres-backed ScrapeStore using the provided config.
func NewScrapeStore(ctx context.Context, cfg ScrapeStoreConfig) (*ScrapeStore, error) {
	if cfg.DSN == "" {
		return nil, fmt.Errorf("database.dsn is required")
	}
	table := cfg.Table
	if table == "" {
		table = "website_scrapes"
	}
	if !validTableName.MatchString(table) {
		return nil, fmt.Errorf("invalid table name %q", table)
	}
	poolCfg, err := pgxpool.ParseConfig(cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("parse postgres dsn: %w", err)
	}
	if cfg.MaxConns > 0 {
		poolCfg.MaxConns = cfg.MaxConns
	}
	if cfg.MinConns > 0 {
		poolCfg.MinConns = cfg.MinConns
	}
	if cfg.MaxConnLifetime > 0 {
		poolCfg.MaxConnLifetime = cfg.MaxConnLifetime
	}
	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}
	return &ScrapeStore{
		pool:  pool,
		table: table,
	}, nil
}

// NewScrapeStoreWithPool constructs a store from an existing pool (primarily for testing).
func NewScrapeStoreWithPool(pool execCloser, table string) (*ScrapeStore, error) {
	if pool == nil {
		return nil, fmt.Errorf("pool is required")
	}
	if table == "" {
		table = "website_scrapes"
	}
	if !validTableName.MatchString(table) {
		return nil, fmt.Errorf("invalid table name %q", table)
	}
	return &ScrapeStore{pool: pool, table: table}, nil
}

// Close releases the underlying pool resources.
func (s *ScrapeStore) Close() {
	if s == nil || s.pool == nil {
		return
	}
	s.pool.Close()
}

// Upsert writes the record, overwriting any prior row for the same
// (user_id, website_url) key. No history is retained.
func (s *ScrapeStore) Upsert(ctx context.Context, record scraper.ScrapeRecord) error {
	if s == nil || s.pool == nil {
		return fmt.Errorf("scrape store is not configured")
	}
	if record.UserID == "" {
		return fmt.Errorf("record user id is required")
	}
	if record.WebsiteURL == "" {
		return fmt.Errorf("record website url is required")
	}
	extractionJSON, err := json.Marshal(record.Extraction)
	if err != nil {
		return fmt.Errorf("marshal extraction: %w", err)
	}
	query := fmt.Sprintf(`
INSERT INTO %s (
	user_id,
	website_url,
	extraction,
	content_hash,
	last_scraped_at,
	updated_at
) VALUES (
	$1,$2,$3,$4,$5,$6
)
ON CONFLICT (user_id, website_url) DO UPDATE SET
	extraction = EXCLUDED.extraction,
	content_hash = EXCLUDED.content_hash,
	last_scraped_at = EXCLUDED.last_scraped_at,
	updated_at = EXCLUDED.updated_at`, s.table)

	args := []any{
		record.UserID,
		record.WebsiteURL,
		extractionJSON,
		record.ContentHash,
		record.LastScrapedAt,
		record.UpdatedAt,
	}
	if _, err := s.pool.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert scrape record: %w", err)
	}
	return nil
}
