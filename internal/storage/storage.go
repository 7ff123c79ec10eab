package storage

import (
	"errors"
	"time"
)

// ErrNotFound is returned by StateStore.Get when the key has no value.
var ErrNotFound = errors.New("storage: key not found")

// StateStore persists small string values by key.
// It backs saved games and best scores.
type StateStore interface {
	Get(key string) (string, error)
	Set(key, value string) error
	Delete(key string) error
}

// ScoreBoard records finished games.
type ScoreBoard interface {
	SaveScore(gameID string, score int) (int64, error)
	TopScores(gameID string, limit int) ([]ScoreEntry, error)
	HighScore(gameID string) (int, error)
	ClearScores(gameID string) error
}

// Backend is a store that holds both game state and the score table.
type Backend interface {
	StateStore
	ScoreBoard
	Close() error
}

// ScoreEntry represents a single high score record.
type ScoreEntry struct {
	ID        int64
	GameID    string
	Score     int
	CreatedAt time.Time
}

// Ensure the built-in stores implement Backend
var (
	_ Backend = (*Store)(nil)
	_ Backend = (*MemoryStore)(nil)
)
