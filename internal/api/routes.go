package api

import (
	"log/slog"
	"net/http"

	"crossgen/internal/store"
)

// Config holds API server configuration.
type Config struct {
	Store  store.Store
	Logger *slog.Logger
}

// NewRouter creates a new HTTP router with all routes configured.
func NewRouter(cfg Config) http.Handler {
	handler := NewHandler(cfg.Store)

	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", handler.HealthCheck)
	mux.HandleFunc("GET /v1/sessions/best", handler.GetBest)
	mux.HandleFunc("GET /v1/sessions/{id}", handler.GetSession)
	mux.HandleFunc("GET /v1/sessions", handler.ListSessions)

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	var h http.Handler = mux
	h = CORS(h)
	h = Gzip(h)
	h = Logger(logger)(h)
	h = Recover(logger)(h)

	return h
}
