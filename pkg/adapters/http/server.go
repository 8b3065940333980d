// Package http exposes the pipeline as a JSON API.
package http

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/shlokkku/Ageis-AI/pkg/domain"
)

// Pipeline is the engine surface the HTTP adapter needs.
type Pipeline interface {
	Ask(ctx context.Context, q domain.Query) (*domain.Answer, error)
}

// QueryRequest is the POST /v1/query body.
type QueryRequest struct {
	Text     string `json:"text"`
	Identity string `json:"identity"`
}

// ErrorResponse is the JSON error envelope.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Server wires the pipeline into a chi router.
type Server struct {
	pipeline Pipeline
	logger   *slog.Logger
}

// NewHandler creates the HTTP handler. gatherer backs the /metrics
// endpoint; pass nil to use the default registry.
func NewHandler(pipeline Pipeline, logger *slog.Logger, gatherer prometheus.Gatherer) http.Handler {
	if logger == nil {
		logger = slog.Default()
	}
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}

	s := &Server{pipeline: pipeline, logger: logger}

	r := chi.NewRouter()
	r.Post("/v1/query", s.handleQuery)
	r.Get("/health", s.handleHealth)
	r.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	return enableCORS(r)
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) handleQuery(w http.ResponseWriter, r *http.Request) {
	var body QueryRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body")
		s.logger.Warn("query: invalid request body", "err", err)
		return
	}

	ans, err := s.pipeline.Ask(r.Context(), domain.Query{Text: body.Text, Identity: body.Identity})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrEmptyQuery), errors.Is(err, domain.ErrMissingIdentity):
			s.writeError(w, http.StatusBadRequest, err.Error())
		case domain.IsProtocolViolation(err):
			// Internal sequencing bug; never blame the caller.
			s.writeError(w, http.StatusInternalServerError, "internal pipeline error")
			s.logger.Error("protocol violation", "err", err)
		default:
			s.writeError(w, http.StatusInternalServerError, "query failed")
			s.logger.Error("query failed", "err", err)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(ans); err != nil {
		s.logger.Error("query response encode failed", "err", err)
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

func (s *Server) writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(ErrorResponse{Error: msg})
}
