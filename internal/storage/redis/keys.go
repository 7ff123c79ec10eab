package redis

import "fmt"

// stateKey returns the Redis key for a state value
func (s *Storage) stateKey(key string) string {
	return fmt.Sprintf("%s:state:%s", s.cfg.KeyPrefix, key)
}

// scoresKey returns the Redis key for the sorted set of a game's scores
func (s *Storage) scoresKey(gameID string) string {
	return fmt.Sprintf("%s:scores:%s", s.cfg.KeyPrefix, gameID)
}

// scoreSeqKey returns the Redis key for the score id counter
func (s *Storage) scoreSeqKey() string {
	return fmt.Sprintf("%s:seq:scores", s.cfg.KeyPrefix)
}
