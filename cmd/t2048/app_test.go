package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

// unopenableDB returns a database path whose parent is a regular file.
func unopenableDB(t *testing.T) string {
	t.Helper()
	blocker := filepath.Join(t.TempDir(), "blocker")
	if err := os.WriteFile(blocker, []byte("x"), 0o600); err != nil {
		t.Fatal(err)
	}
	return filepath.Join(blocker, "data", "t2048.db")
}

func withDBFlag(t *testing.T, path string) {
	t.Helper()
	prev := flagDBPath
	flagDBPath = path
	t.Cleanup(func() { flagDBPath = prev })
}

func TestOpenBackendReportsSQLiteFailure(t *testing.T) {
	_, err := openBackend(config.StorageConfig{Driver: config.DriverSQLite, Path: unopenableDB(t)})
	if err == nil {
		t.Fatal("expected an error for an unopenable database")
	}

	b, err := openBackend(config.StorageConfig{Driver: config.DriverMemory})
	if err != nil {
		t.Fatalf("memory driver: %v", err)
	}
	b.Close()
}

func TestNewAppRequireStorage(t *testing.T) {
	withDBFlag(t, unopenableDB(t))

	if _, err := newApp(appOptions{RequireStorage: true}); err == nil {
		t.Fatal("storage commands should fail when the database cannot be opened")
	}

	a, err := newApp(appOptions{})
	if err != nil {
		t.Fatalf("interactive commands should fall back: %v", err)
	}
	defer a.close()
	if _, ok := a.backend.(*storage.MemoryStore); !ok {
		t.Errorf("backend = %T, want *storage.MemoryStore", a.backend)
	}
}

func TestNewAppOpensSQLite(t *testing.T) {
	withDBFlag(t, filepath.Join(t.TempDir(), "t2048.db"))

	a, err := newApp(appOptions{RequireStorage: true})
	if err != nil {
		t.Fatalf("newApp: %v", err)
	}
	defer a.close()
	if _, ok := a.backend.(*storage.Store); !ok {
		t.Errorf("backend = %T, want *storage.Store", a.backend)
	}
}
