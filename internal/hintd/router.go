// Package hintd serves board analysis over HTTP.
package hintd

import (
	"io"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/mux"

	"github.com/vovakirdan/tui-2048/internal/analysis"
)

// RouterConfig holds the router's dependencies.
type RouterConfig struct {
	Analyzer analysis.Analyzer
	Timeout  time.Duration // Per-request provider deadline, 0 for none
	Logger   *log.Logger
}

// NewRouter returns the hintd HTTP handler.
func NewRouter(cfg RouterConfig) http.Handler {
	logger := cfg.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	r := mux.NewRouter()
	h := &analyzeHandler{analyzer: cfg.Analyzer, timeout: cfg.Timeout, logger: logger}

	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(Recovery(logger))
	api.Use(Logging(logger))

	api.HandleFunc("/analyze", h.analyze).Methods(http.MethodPost)
	api.HandleFunc("/health", health).Methods(http.MethodGet)

	return r
}
