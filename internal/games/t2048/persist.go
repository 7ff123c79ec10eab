package t2048

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/vovakirdan/tui-2048/internal/storage"
)

// StateKey is where the in-progress game of a variant is stored.
func StateKey(variant string) string { return variant + ":gameState" }

// BestKey is where the best score of a variant is stored.
func BestKey(variant string) string { return variant + ":bestScore" }

func (s *Session) stateKey() string { return StateKey(s.variant) }
func (s *Session) bestKey() string  { return BestKey(s.variant) }

// ReadBestScore returns the stored best score for variant, or 0 when none
// is stored or the value is not a non-negative integer.
func ReadBestScore(store storage.StateStore, variant string) (int, error) {
	raw, err := store.Get(BestKey(variant))
	if errors.Is(err, storage.ErrNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	best, err := strconv.Atoi(raw)
	if err != nil || best < 0 {
		return 0, nil
	}
	return best, nil
}

// ClearBestScore stores a best score of 0 for variant.
func ClearBestScore(store storage.StateStore, variant string) error {
	return store.Set(BestKey(variant), "0")
}

// ErrInvalidState is returned for a saved game that cannot be resumed.
var ErrInvalidState = errors.New("t2048: invalid saved state")

// EncodeState serializes a session state.
func EncodeState(st State) (string, error) {
	data, err := json.Marshal(State{Tiles: SettleTiles(st.Tiles), Score: st.Score})
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// DecodeState parses and validates a saved state for a board of the given
// size.
func DecodeState(raw string, size int) (State, error) {
	var st State
	if err := json.Unmarshal([]byte(raw), &st); err != nil {
		return State{}, fmt.Errorf("%w: %v", ErrInvalidState, err)
	}
	if err := ValidateState(st, size); err != nil {
		return State{}, err
	}
	st.Tiles = SettleTiles(st.Tiles)
	return st, nil
}

// ValidateState checks that st could have been produced by a session.
func ValidateState(st State, size int) error {
	if st.Score < 0 {
		return fmt.Errorf("%w: negative score %d", ErrInvalidState, st.Score)
	}
	if len(st.Tiles) == 0 {
		return fmt.Errorf("%w: no tiles", ErrInvalidState)
	}
	seen := make(map[int]bool, len(st.Tiles))
	for _, t := range st.Tiles {
		if t.ID <= 0 || seen[t.ID] {
			return fmt.Errorf("%w: bad tile id %d", ErrInvalidState, t.ID)
		}
		seen[t.ID] = true
		if !isPowerOfTwo(t.Value) {
			return fmt.Errorf("%w: tile %d has value %d", ErrInvalidState, t.ID, t.Value)
		}
	}
	if _, err := TilesToGrid(st.Tiles, size); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidState, err)
	}
	return nil
}

// loadState reads the saved game. A malformed one is deleted.
func (s *Session) loadState() (State, bool) {
	if s.store == nil {
		return State{}, false
	}
	raw, err := s.store.Get(s.stateKey())
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			s.logger.Warn("cannot load saved game", "variant", s.variant, "err", err)
		}
		return State{}, false
	}
	st, err := DecodeState(raw, s.size)
	if err != nil {
		s.logger.Debug("discarding saved game", "variant", s.variant, "err", err)
		s.deleteState()
		return State{}, false
	}
	return st, true
}

func (s *Session) saveState() {
	if s.store == nil {
		return
	}
	raw, err := EncodeState(State{Tiles: s.tiles, Score: s.score})
	if err != nil {
		s.logger.Warn("cannot encode game", "variant", s.variant, "err", err)
		return
	}
	if err := s.store.Set(s.stateKey(), raw); err != nil {
		s.logger.Warn("cannot save game", "variant", s.variant, "err", err)
	}
}

func (s *Session) deleteState() {
	if s.store == nil {
		return
	}
	if err := s.store.Delete(s.stateKey()); err != nil {
		s.logger.Warn("cannot clear saved game", "variant", s.variant, "err", err)
	}
}

// loadBest reads the best score. Missing or unparsable means 0.
func (s *Session) loadBest() int {
	if s.store == nil {
		return 0
	}
	best, err := ReadBestScore(s.store, s.variant)
	if err != nil {
		s.logger.Warn("cannot load best score", "variant", s.variant, "err", err)
		return 0
	}
	return best
}

func (s *Session) saveBest() {
	if s.store == nil {
		return
	}
	if err := s.store.Set(s.bestKey(), strconv.Itoa(s.best)); err != nil {
		s.logger.Warn("cannot save best score", "variant", s.variant, "err", err)
	}
}
