package analysis

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-2048/internal/config"
)

// FromConfig builds the provider selected by cfg.
func FromConfig(cfg config.HintConfig, logger *log.Logger) (Analyzer, error) {
	httpClient := &http.Client{Timeout: cfg.Timeout}

	var a Analyzer
	switch cfg.Provider {
	case "", config.HintLocal:
		a = NewLocal()
	case config.HintRemote:
		a = &RemoteClient{BaseURL: cfg.RemoteURL, HTTP: httpClient}
	case config.HintLLM:
		key := os.Getenv(cfg.LLM.APIKeyEnv)
		if key == "" {
			return nil, fmt.Errorf("analysis: %s is not set", cfg.LLM.APIKeyEnv)
		}
		a = &ChatClient{BaseURL: cfg.LLM.BaseURL, Model: cfg.LLM.Model, APIKey: key, HTTP: httpClient}
	default:
		return nil, fmt.Errorf("analysis: unknown provider %q", cfg.Provider)
	}

	if logger != nil {
		a = Logged(a, logger.WithPrefix("hint"))
	}
	return a, nil
}

// Logged wraps a so every call is logged.
func Logged(a Analyzer, logger *log.Logger) Analyzer {
	return AnalyzerFunc(func(ctx context.Context, req Request) (Response, error) {
		resp, err := a.Analyze(ctx, req)
		if err != nil {
			logger.Warn("analysis failed", "size", len(req.BoardState), "score", req.Score, "err", err)
			return resp, err
		}
		logger.Debug("analysis done", "size", len(req.BoardState), "score", req.Score, "show", resp.ShouldShowAnalysis)
		return resp, nil
	})
}
