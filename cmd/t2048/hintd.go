package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/hintd"
)

var flagHintdAddr string

var hintdCmd = &cobra.Command{
	Use:   "hintd",
	Short: "Serve board analysis over HTTP",
	Long: `Start an HTTP server that analyzes boards for remote clients.

Endpoints:
  POST /api/v1/analyze  {"boardState": [[...]], "score": N}
  GET  /api/v1/health

The server answers with the configured local or LLM provider. Clients
select it with hint.provider: remote and hint.remote_url in their config.

Examples:
  t2048 hintd
  t2048 hintd --addr 127.0.0.1:9000`,
	Run: runHintd,
}

func init() {
	hintdCmd.Flags().StringVar(&flagHintdAddr, "addr", "", "Listen address (overrides config)")
}

func runHintd(_ *cobra.Command, _ []string) {
	a, err := newApp(appOptions{LogToStderr: true})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer a.close()

	if a.cfg.Hint.Provider == config.HintRemote {
		a.logger.Warn("hint.provider is remote; hintd will answer with local analysis")
		a.cfg.Hint.Provider = config.HintLocal
	}

	srvCfg := a.cfg.Server
	if flagHintdAddr != "" {
		srvCfg.Address = flagHintdAddr
	}

	router := hintd.NewRouter(hintd.RouterConfig{
		Analyzer: a.analyzer(),
		Timeout:  a.cfg.Hint.Timeout,
		Logger:   a.logger.WithPrefix("hintd"),
	})
	server := hintd.NewServer(router, srvCfg, a.logger.WithPrefix("hintd"))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := server.ListenAndServe(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		a.close()
		os.Exit(1)
	}
}
