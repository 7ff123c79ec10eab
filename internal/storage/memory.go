package storage

import (
	"sort"
	"sync"
	"time"
)

// MemoryStore keeps state and scores in process memory.
// Used when no database is available and in tests.
type MemoryStore struct {
	mu     sync.RWMutex
	state  map[string]string
	scores []ScoreEntry
	nextID int64
}

// NewMemory creates an empty in-memory store.
func NewMemory() *MemoryStore {
	return &MemoryStore{
		state:  make(map[string]string),
		nextID: 1,
	}
}

func (m *MemoryStore) Get(key string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.state[key]
	if !ok {
		return "", ErrNotFound
	}
	return v, nil
}

func (m *MemoryStore) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state[key] = value
	return nil
}

func (m *MemoryStore) Delete(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.state, key)
	return nil
}

func (m *MemoryStore) SaveScore(gameID string, score int) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	id := m.nextID
	m.nextID++
	m.scores = append(m.scores, ScoreEntry{
		ID:        id,
		GameID:    gameID,
		Score:     score,
		CreatedAt: time.Now().UTC(),
	})
	return id, nil
}

func (m *MemoryStore) TopScores(gameID string, limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	m.mu.RLock()
	var entries []ScoreEntry
	for _, e := range m.scores {
		if e.GameID == gameID {
			entries = append(entries, e)
		}
	}
	m.mu.RUnlock()

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Score > entries[j].Score
	})
	if len(entries) > limit {
		entries = entries[:limit]
	}
	return entries, nil
}

func (m *MemoryStore) HighScore(gameID string) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	high := 0
	for _, e := range m.scores {
		if e.GameID == gameID && e.Score > high {
			high = e.Score
		}
	}
	return high, nil
}

func (m *MemoryStore) ClearScores(gameID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	kept := m.scores[:0]
	for _, e := range m.scores {
		if e.GameID != gameID {
			kept = append(kept, e)
		}
	}
	m.scores = kept
	return nil
}

func (m *MemoryStore) Close() error {
	return nil
}
