package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-2048/internal/analysis"
	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/registry"
	"github.com/vovakirdan/tui-2048/internal/storage"
	redisstore "github.com/vovakirdan/tui-2048/internal/storage/redis"
)

// app bundles what every command needs.
type app struct {
	cfg     config.T2048Config
	logger  *log.Logger
	backend storage.Backend
	logOut  io.Closer
}

// appOptions controls how newApp sets up a command.
type appOptions struct {
	// LogToStderr is false for interactive commands so log lines do not
	// tear the screen.
	LogToStderr bool
	// RequireStorage makes an unavailable store an error instead of a
	// fall back to memory. Commands that only read or write storage set it.
	RequireStorage bool
}

// newApp loads config, sets up logging and opens storage.
func newApp(opts appOptions) (*app, error) {
	cfg, err := config.LoadT2048(flagConfig)
	if err != nil {
		return nil, err
	}
	if flagDifficulty != "" {
		config.ApplyT2048Preset(&cfg, config.ParsePreset(flagDifficulty))
	}
	if flagDBPath != "" {
		cfg.Storage.Driver = config.DriverSQLite
		cfg.Storage.Path = flagDBPath
	}
	cfg.Normalize()

	a := &app{cfg: cfg}
	if err := a.setupLogger(opts.LogToStderr); err != nil {
		return nil, err
	}

	backend, err := openBackend(cfg.Storage)
	if err != nil {
		if opts.RequireStorage {
			a.close()
			return nil, err
		}
		a.logger.Warn("storage unavailable, progress will not be kept", "driver", cfg.Storage.Driver, "err", err)
		backend = storage.NewMemory()
	}
	a.backend = backend
	return a, nil
}

func (a *app) setupLogger(toStderr bool) error {
	var out io.Writer = io.Discard
	switch {
	case flagLogFile != "":
		if err := os.MkdirAll(filepath.Dir(flagLogFile), 0o755); err != nil {
			return fmt.Errorf("cannot create log directory: %w", err)
		}
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return fmt.Errorf("cannot open log file: %w", err)
		}
		out = f
		a.logOut = f
	case toStderr:
		out = os.Stderr
	}

	level, err := log.ParseLevel(strings.ToLower(flagLogLevel))
	if err != nil {
		level = log.InfoLevel
	}

	a.logger = log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "t2048",
		Level:           level,
	})
	return nil
}

// close releases storage and the log file.
func (a *app) close() {
	if a.backend != nil {
		if err := a.backend.Close(); err != nil {
			a.logger.Warn("closing storage", "err", err)
		}
	}
	if a.logOut != nil {
		a.logOut.Close()
	}
}

// openBackend opens the configured store.
func openBackend(cfg config.StorageConfig) (storage.Backend, error) {
	switch cfg.Driver {
	case config.DriverMemory:
		return storage.NewMemory(), nil

	case config.DriverRedis:
		rc := redisstore.DefaultConfig()
		rc.URL = cfg.Redis.URL
		rc.KeyPrefix = cfg.Redis.KeyPrefix
		st, err := redisstore.New(rc)
		if err != nil {
			return nil, err
		}
		return st, nil

	default:
		st, err := storage.Open(cfg.Path)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", cfg.Path, err)
		}
		return st, nil
	}
}

// analyzer builds the configured hint provider, falling back to the local
// one when it cannot be set up.
func (a *app) analyzer() analysis.Analyzer {
	an, err := analysis.FromConfig(a.cfg.Hint, a.logger)
	if err != nil {
		a.logger.Warn("hint provider unavailable, using local analysis", "provider", a.cfg.Hint.Provider, "err", err)
		return analysis.Logged(analysis.NewLocal(), a.logger.WithPrefix("hint"))
	}
	return an
}

// gameOptions returns registry options bound to store.
func (a *app) gameOptions(store storage.StateStore) registry.Options {
	return registry.Options{Store: store, Config: a.cfg, Logger: a.logger}
}

// runtimeConfig sizes the screen to the terminal.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// variantArg returns the variant named in args, defaulting to the classic
// board, and exits on an unknown id.
func variantArg(args []string) string {
	id := "2048"
	if len(args) > 0 {
		id = args[0]
	}
	if !registry.Exists(id) {
		fmt.Fprintf(os.Stderr, "Error: unknown board %q\n", id)
		fmt.Fprintln(os.Stderr, "Run 't2048 list' to see available boards.")
		os.Exit(1)
	}
	return id
}
