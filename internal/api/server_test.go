package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/leadlens/sitescraper/internal/config"
	"github.com/leadlens/sitescraper/internal/id/uuid"
	"github.com/leadlens/sitescraper/internal/scraper"
)

type stubPipeline struct {
	outcome scraper.ScrapeOutcome
	err     error
	gotReq  scraper.ScrapeRequest
}

func (s *stubPipeline) Scrape(_ context.Context, req scraper.ScrapeRequest) (scraper.ScrapeOutcome, error) {
	s.gotReq = req
	if s.err != nil {
		return scraper.ScrapeOutcome{}, s.err
	}
	return s.outcome, nil
}

func newTestServer(t *testing.T, pipeline Scraper) *Server {
	t.Helper()
	cfg, err := config.Load("")
	require.NoError(t, err)
	return NewServer(pipeline, uuid.New(), cfg, zap.NewNop())
}

func postScrape(t *testing.T, srv *Server, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/v1/scrape", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)
	return rec
}

func TestScrapeSuccess(t *testing.T) {
	t.Parallel()

	now := time.Unix(1700000000, 0).UTC()
	stub := &stubPipeline{
		outcome: scraper.ScrapeOutcome{
			Result: scraper.ExtractionResult{
				URL:         "https://example.com",
				Title:       "Example",
				ExtractedAt: now,
			},
			InputURL: "https://example.com",
			FinalURL: "https://example.com",
		},
	}
	srv := newTestServer(t, stub)

	rec := postScrape(t, srv, `{"websiteUrl":"https://example.com","userId":"u1"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp scrapeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.True(t, resp.Success)
	require.Equal(t, "Example", resp.ExtractedData.Title)
	require.Empty(t, resp.FinalURL, "finalUrl omitted when it matches the input")
	require.Equal(t, "https://example.com", stub.gotReq.WebsiteURL)
}

func TestScrapeReportsFinalURLOnRedirect(t *testing.T) {
	t.Parallel()

	stub := &stubPipeline{
		outcome: scraper.ScrapeOutcome{
			Result:   scraper.ExtractionResult{URL: "https://www.example.com"},
			InputURL: "https://example.com",
			FinalURL: "https://www.example.com",
		},
	}
	srv := newTestServer(t, stub)

	rec := postScrape(t, srv, `{"websiteUrl":"https://example.com","userId":"u1"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp scrapeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, "https://www.example.com", resp.FinalURL)
}

func TestScrapeFailureMapsTo500(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
	}{
		{name: "validation", err: &scraper.ValidationError{Field: "userId"}},
		{name: "fetch", err: &scraper.FetchError{StatusCode: 503, Status: "Service Unavailable"}},
		{name: "parking", err: &scraper.ParkingPageError{URL: "https://parked.example"}},
		{name: "persistence", err: &scraper.PersistenceError{Err: context.DeadlineExceeded}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			srv := newTestServer(t, &stubPipeline{err: tt.err})
			rec := postScrape(t, srv, `{"websiteUrl":"https://example.com","userId":"u1"}`)
			require.Equal(t, http.StatusInternalServerError, rec.Code)

			var resp map[string]string
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			require.Equal(t, tt.err.Error(), resp["error"])
		})
	}
}

func TestScrapeInvalidJSON(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, &stubPipeline{})
	rec := postScrape(t, srv, `{not json`)
	require.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestCORSPreflight(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, &stubPipeline{})
	req := httptest.NewRequest(http.MethodOptions, "/v1/scrape", nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	require.Empty(t, rec.Body.String())
}

func TestCORSHeadersOnPost(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, &stubPipeline{})
	rec := postScrape(t, srv, `{"websiteUrl":"https://example.com","userId":"u1"}`)
	require.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestHealthEndpoints(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, &stubPipeline{})
	for _, path := range []string{"/healthz", "/readyz"} {
		rec := httptest.NewRecorder()
		srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		require.Equal(t, http.StatusOK, rec.Code, path)
	}
}

func TestRequestIDHeader(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, &stubPipeline{})
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	require.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}
