// Package api provides the HTTP REST API server for MarketPulse.
//
// It exposes the news sentiment analysis endpoint plus health, source
// inventory and key status endpoints.
package api

import (
	"context"
	"encoding/json"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/sirupsen/logrus"

	"github.com/seenimoa/marketpulse/internal/config"
	"github.com/seenimoa/marketpulse/internal/source"
	"github.com/seenimoa/marketpulse/pkg/models"
	"github.com/seenimoa/marketpulse/pkg/utils"
)

// analyzeTimeout bounds one full pipeline run, scraping included.
const analyzeTimeout = 90 * time.Second

// Analyzer runs one news sentiment analysis. The pipeline orchestrator
// satisfies it; tests substitute a stub.
type Analyzer interface {
	Analyze(ctx context.Context, query models.CompanyQuery) models.AnalysisResult
}

// Server is the HTTP API server.
type Server struct {
	router   chi.Router
	cfg      *config.Config
	analyzer Analyzer
	log      *logrus.Logger
}

// NewServer creates a configured API server with all routes and middleware.
func NewServer(cfg *config.Config, analyzer Analyzer, log *logrus.Logger) *Server {
	if log == nil {
		log = logrus.StandardLogger()
	}
	srv := &Server{
		cfg:      cfg,
		analyzer: analyzer,
		log:      log,
	}
	srv.router = srv.buildRouter()
	return srv
}

// Router returns the chi router for testing.
func (s *Server) Router() chi.Router {
	return s.router
}

// ListenAndServe starts the HTTP server with graceful shutdown.
func (s *Server) ListenAndServe(addr string) error {
	httpSrv := &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			s.log.WithError(err).Fatal("HTTP server error")
		}
	}()
	s.log.WithField("addr", addr).Info("API server listening")

	<-done
	s.log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	return httpSrv.Shutdown(ctx)
}

// buildRouter configures all routes and middleware.
func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(120 * time.Second))

	// CORS
	origins := []string{"*"}
	if len(s.cfg.API.CORSOrigins) > 0 {
		origins = s.cfg.API.CORSOrigins
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Health check
	r.Get("/health", s.handleHealth)

	// Legacy path kept for clients of the original deployment.
	r.Get("/api/news", s.handleNews)

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", s.handleHealth)
		r.Get("/news", s.handleNews)
		r.Get("/sources", s.handleSources)
		r.Get("/config/keys", s.handleGetConfigKeys)
	})

	return r
}

// APIResponse is the standard JSON envelope for the auxiliary endpoints. The
// news endpoint writes its result unwrapped so the payload shape matches the
// original deployment.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// handleNews runs the analysis pipeline for GET /api/v1/news?company=X.
// An empty company is the only hard failure; everything upstream degrades
// inside the pipeline and still yields a 200.
func (s *Server) handleNews(w http.ResponseWriter, r *http.Request) {
	company := r.URL.Query().Get("company")
	if company == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{
			"error": "Company name required",
		})
		return
	}

	query := models.CompanyQuery{
		Name:      company,
		DateRange: r.URL.Query().Get("date_range"),
	}

	ctx, cancel := context.WithTimeout(r.Context(), analyzeTimeout)
	defer cancel()

	result := s.analyzer.Analyze(ctx, query)
	writeJSON(w, http.StatusOK, result)
}

// handleHealth reports static capability info without running the pipeline.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, APIResponse{
		Success: true,
		Data: map[string]interface{}{
			"status":             "ok",
			"service":            "marketpulse",
			"version":            "dev",
			"newsapi_configured": s.cfg.NewsAPI.Key != "",
			"rss_feeds":          len(source.DefaultFeeds),
			"scrape_sources":     len(source.DefaultScrapeTargets),
			"time_ist":           utils.FormatDateTimeIST(utils.NowIST()),
			"endpoints": []string{
				"/api/v1/news?company=X&date_range=1d",
				"/api/v1/sources",
				"/api/v1/config/keys",
				"/api/v1/health",
			},
		},
	})
}

// SourceInfo describes one configured upstream source.
type SourceInfo struct {
	Name      string `json:"name"`
	Kind      string `json:"kind"` // "rss" or "scrape"
	URL       string `json:"url"`
	TrustRank int    `json:"trust_rank"`
}

// handleSources lists the configured feeds and scrape targets with their
// trust ranks.
func (s *Server) handleSources(w http.ResponseWriter, r *http.Request) {
	var sources []SourceInfo
	for _, f := range source.DefaultFeeds {
		sources = append(sources, SourceInfo{
			Name:      f.Name,
			Kind:      "rss",
			URL:       f.URL,
			TrustRank: source.TrustRank(f.Name),
		})
	}
	for _, t := range source.DefaultScrapeTargets {
		sources = append(sources, SourceInfo{
			Name:      t.Name,
			Kind:      "scrape",
			URL:       t.BaseURL,
			TrustRank: source.TrustRank(t.Name),
		})
	}

	writeJSON(w, http.StatusOK, APIResponse{
		Success: true,
		Data:    sources,
	})
}

// handleGetConfigKeys returns the status of all sensitive API keys, masked.
func (s *Server) handleGetConfigKeys(w http.ResponseWriter, r *http.Request) {
	keys := config.CheckAPIKeys(s.cfg)
	writeJSON(w, http.StatusOK, APIResponse{
		Success: true,
		Data:    keys,
	})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logrus.WithError(err).Error("failed to write JSON response")
	}
}
