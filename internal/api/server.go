// Package api exposes the HTTP interface for the scraper service.
package api

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/leadlens/sitescraper/internal/config"
	"github.com/leadlens/sitescraper/internal/metrics"
	"github.com/leadlens/sitescraper/internal/scraper"
)

// Scraper runs the scrape pipeline for one request.
type Scraper interface {
	Scrape(ctx context.Context, req scraper.ScrapeRequest) (scraper.ScrapeOutcome, error)
}

// Server wires HTTP handlers to the scrape pipeline.
type Server struct {
	router   chi.Router
	pipeline Scraper
	idGen    scraper.IDGenerator
	cfg      config.Config
	logger   *zap.Logger
}

// NewServer constructs a Server with middleware and routes.
func NewServer(pipeline Scraper, idGen scraper.IDGenerator, cfg config.Config, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Server{
		pipeline: pipeline,
		idGen:    idGen,
		cfg:      cfg,
		logger:   logger,
	}
	r := chi.NewRouter()
	r.Use(s.requestIDMiddleware)
	r.Use(corsMiddleware)
	r.Use(s.loggingMiddleware)
	r.Use(s.recoverMiddleware)
	r.Use(metrics.Middleware)
	// The handler budget leaves headroom over the outbound fetch timeout so
	// slow sites surface as fetch errors, not request timeouts.
	r.Use(timeoutMiddleware(cfg.FetchTimeout() + 45*time.Second))

	r.Get("/healthz", s.healthz)
	r.Get("/readyz", s.readyz)
	r.Method(http.MethodGet, "/metrics", metrics.Handler())

	r.Route("/v1", func(r chi.Router) {
		r.Post("/scrape", s.scrape)
	})

	s.router = r
	return s
}

// Handler returns the Router for use with http.Server.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) healthz(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) readyz(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
}

type scrapeResponse struct {
	Success       bool                     `json:"success"`
	Message       string                   `json:"message"`
	ExtractedData scraper.ExtractionResult `json:"extractedData"`
	FinalURL      string                   `json:"finalUrl,omitempty"`
}

// scrape handles POST /v1/scrape. Every failure kind maps to a 500 carrying
// the error message; the taxonomy lives in the pipeline errors, not in
// status codes.
func (s *Server) scrape(w http.ResponseWriter, r *http.Request) {
	var req scraper.ScrapeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, "invalid JSON body")
		return
	}

	outcome, err := s.pipeline.Scrape(r.Context(), req)
	if err != nil {
		s.logger.Warn("scrape failed",
			zap.String("website_url", req.WebsiteURL),
			zap.String("user_id", req.UserID),
			zap.Error(err),
		)
		s.writeError(w, err.Error())
		return
	}

	resp := scrapeResponse{
		Success:       true,
		Message:       "website scraped and saved",
		ExtractedData: outcome.Result,
	}
	if outcome.Redirected() {
		resp.FinalURL = outcome.FinalURL
	}
	s.writeJSON(w, http.StatusOK, resp)
}

func (s *Server) requestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID, err := s.idGen.NewID()
		if err != nil {
			reqID = "unknown"
		}
		ctx := context.WithValue(r.Context(), requestIDKey{}, reqID)
		w.Header().Set("X-Request-ID", reqID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// corsMiddleware allows all origins. Preflight requests get an empty 200.
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := &responseWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(ww, r)
		s.logger.Info("request completed",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", ww.status),
			zap.Int64("duration_ms", time.Since(start).Milliseconds()),
		)
	})
}

func (s *Server) recoverMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				s.logger.Error("panic recovered", zap.Any("error", rec))
				s.writeError(w, "internal server error")
			}
		}()
		next.ServeHTTP(w, r)
	})
}

func timeoutMiddleware(d time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.TimeoutHandler(next, d, "request timed out")
	}
}

type responseWriter struct {
	http.ResponseWriter
	status int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.status = code
	rw.ResponseWriter.WriteHeader(code)
}

type requestIDKey struct{}

func (s *Server) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.Error("write JSON failed", zap.Error(err))
	}
}

func (s *Server) writeError(w http.ResponseWriter, msg string) {
	s.writeJSON(w, http.StatusInternalServerError, map[string]string{"error": msg})
}
