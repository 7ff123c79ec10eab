// Package redis provides a Redis-backed state store and score board.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/vovakirdan/tui-2048/internal/storage"
)

// Storage is a Redis-backed implementation of storage.Backend
type Storage struct {
	client *redis.Client
	cfg    Config
}

// scoreMember is the sorted-set member for one finished game.
// The score itself is the sorted-set score.
type scoreMember struct {
	ID        int64     `json:"id"`
	CreatedAt time.Time `json:"created_at"`
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("storage: invalid redis url: %w", err)
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("storage: cannot connect to redis: %w", err)
	}

	return NewWithClient(client, cfg), nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	if cfg.OpTimeout <= 0 {
		cfg.OpTimeout = DefaultConfig().OpTimeout
	}
	return &Storage{
		client: client,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.Backend = (*Storage)(nil)

func (s *Storage) opContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), s.cfg.OpTimeout)
}

// State operations

func (s *Storage) Get(key string) (string, error) {
	ctx, cancel := s.opContext()
	defer cancel()

	v, err := s.client.Get(ctx, s.stateKey(key)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", storage.ErrNotFound
		}
		return "", fmt.Errorf("storage: cannot read %s: %w", key, err)
	}
	return v, nil
}

func (s *Storage) Set(key, value string) error {
	ctx, cancel := s.opContext()
	defer cancel()

	if err := s.client.Set(ctx, s.stateKey(key), value, 0).Err(); err != nil {
		return fmt.Errorf("storage: cannot write %s: %w", key, err)
	}
	return nil
}

func (s *Storage) Delete(key string) error {
	ctx, cancel := s.opContext()
	defer cancel()

	if err := s.client.Del(ctx, s.stateKey(key)).Err(); err != nil {
		return fmt.Errorf("storage: cannot delete %s: %w", key, err)
	}
	return nil
}

// Score operations

func (s *Storage) SaveScore(gameID string, score int) (int64, error) {
	ctx, cancel := s.opContext()
	defer cancel()

	id, err := s.client.Incr(ctx, s.scoreSeqKey()).Result()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot allocate score id: %w", err)
	}

	member, err := json.Marshal(scoreMember{ID: id, CreatedAt: time.Now().UTC()})
	if err != nil {
		return 0, err
	}

	err = s.client.ZAdd(ctx, s.scoresKey(gameID), redis.Z{
		Score:  float64(score),
		Member: string(member),
	}).Err()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save score: %w", err)
	}
	return id, nil
}

func (s *Storage) TopScores(gameID string, limit int) ([]storage.ScoreEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	ctx, cancel := s.opContext()
	defer cancel()

	zs, err := s.client.ZRevRangeWithScores(ctx, s.scoresKey(gameID), 0, int64(limit-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}

	entries := make([]storage.ScoreEntry, 0, len(zs))
	for _, z := range zs {
		raw, ok := z.Member.(string)
		if !ok {
			continue
		}
		var m scoreMember
		if err := json.Unmarshal([]byte(raw), &m); err != nil {
			continue
		}
		entries = append(entries, storage.ScoreEntry{
			ID:        m.ID,
			GameID:    gameID,
			Score:     int(z.Score),
			CreatedAt: m.CreatedAt,
		})
	}
	return entries, nil
}

func (s *Storage) HighScore(gameID string) (int, error) {
	top, err := s.TopScores(gameID, 1)
	if err != nil {
		return 0, err
	}
	if len(top) == 0 {
		return 0, nil
	}
	return top[0].Score, nil
}

func (s *Storage) ClearScores(gameID string) error {
	ctx, cancel := s.opContext()
	defer cancel()

	if err := s.client.Del(ctx, s.scoresKey(gameID)).Err(); err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	return nil
}
