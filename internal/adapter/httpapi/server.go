// Package httpapi exposes the ranking service over HTTP: the getaway query
// endpoint plus health, readiness, and metrics routes.
package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/couchcryptid/weekend-getaway-ranker/internal/domain"
)

// Ranker produces a getaway report for a source city.
type Ranker interface {
	Rank(ctx context.Context, sourceCity string, topN int) (domain.Report, error)
}

// ReadinessChecker reports whether the service is ready to serve traffic.
type ReadinessChecker interface {
	CheckReadiness(ctx context.Context) error
}

// Server exposes the getaway API plus health, readiness, and metrics endpoints.
type Server struct {
	httpServer  *http.Server
	logger      *slog.Logger
	ranker      Ranker
	defaultTopN int
}

// NewServer creates an HTTP server with /healthz, /readyz, /metrics, and
// /api/v1/getaways routes. defaultTopN applies when the request omits the
// top parameter.
func NewServer(addr string, ranker Ranker, ready ReadinessChecker, defaultTopN int, logger *slog.Logger) *Server {
	if defaultTopN <= 0 {
		defaultTopN = domain.DefaultTopN
	}

	s := &Server{
		logger:      logger,
		ranker:      ranker,
		defaultTopN: defaultTopN,
	}

	r := mux.NewRouter()
	r.HandleFunc("/healthz", s.handleHealth).Methods(http.MethodGet)
	r.HandleFunc("/readyz", handleReady(ready)).Methods(http.MethodGet)
	r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)
	r.HandleFunc("/api/v1/getaways", s.handleGetaways).Methods(http.MethodGet)

	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      handlers.RecoveryHandler()(handlers.LoggingHandler(os.Stdout, r)),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s
}

// Start begins listening. Returns http.ErrServerClosed on graceful shutdown.
func (s *Server) Start() error {
	s.logger.Info("http server starting", "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully drains connections within the given context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// ServeHTTP delegates to the underlying handler, useful for testing.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.httpServer.Handler.ServeHTTP(w, r)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

func handleReady(checker ReadinessChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := checker.CheckReadiness(ctx); err != nil {
			writeJSON(w, http.StatusServiceUnavailable, map[string]string{
				"status": "not ready",
				"error":  err.Error(),
			})
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
	}
}

func (s *Server) handleGetaways(w http.ResponseWriter, r *http.Request) {
	city := r.URL.Query().Get("city")
	if domain.NormalizeKey(city) == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{
			"error": "city query parameter is required",
		})
		return
	}

	topN := s.defaultTopN
	if raw := r.URL.Query().Get("top"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			writeJSON(w, http.StatusBadRequest, map[string]string{
				"error": "top must be a positive integer",
			})
			return
		}
		topN = n
	}

	report, err := s.ranker.Rank(r.Context(), city, topN)
	if err != nil {
		if errors.Is(err, domain.ErrSourceCityNotFound) {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": err.Error()})
			return
		}
		s.logger.Error("ranking failed", "source_city", city, "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal error"})
		return
	}

	writeJSON(w, http.StatusOK, report)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck // best-effort response body
}
