package t2048

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-2048/internal/storage"
)

// Status is the session state machine.
type Status int

const (
	StatusPlaying Status = iota
	StatusGameOver
)

func (s Status) String() string {
	if s == StatusGameOver {
		return "game_over"
	}
	return "playing"
}

// State is the persisted part of a session.
type State struct {
	Tiles []Tile `json:"tiles"`
	Score int    `json:"score"`
}

// SessionOptions configures a Session.
type SessionOptions struct {
	Variant         string             // Key namespace, e.g. "2048"
	Size            int                // Board dimension, DefaultSize if 0
	Store           storage.StateStore // nil keeps state in memory only
	Rand            Rand               // nil seeds from the clock
	FourProbability float64
	MaxUndo         int // 0 = unlimited
	Logger          *log.Logger
}

// Session owns one player's game: tiles, score, best score and undo
// history. It is not safe for concurrent use.
type Session struct {
	variant  string
	size     int
	store    storage.StateStore
	rng      Rand
	fourProb float64
	maxUndo  int
	logger   *log.Logger

	tiles   []Tile
	score   int
	best    int
	status  Status
	history []State
	ids     *IDAllocator

	lastTrail []Step
}

// NewSession creates a session and restores any saved game from the store.
// A missing or malformed saved game starts a new one.
func NewSession(opts SessionOptions) *Session {
	if opts.Size <= 0 {
		opts.Size = DefaultSize
	}
	if opts.Variant == "" {
		opts.Variant = "2048"
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.MaxUndo < 0 {
		opts.MaxUndo = 0
	}

	s := &Session{
		variant:  opts.Variant,
		size:     opts.Size,
		store:    opts.Store,
		rng:      opts.Rand,
		fourProb: opts.FourProbability,
		maxUndo:  opts.MaxUndo,
		logger:   opts.Logger,
		ids:      NewIDAllocator(),
	}

	s.best = s.loadBest()
	if st, ok := s.loadState(); ok {
		s.restore(st)
	} else {
		s.StartNewGame()
	}
	return s
}

// StartNewGame clears the board, score and history and spawns two tiles.
// The best score is kept.
func (s *Session) StartNewGame() {
	s.score = 0
	s.history = nil
	s.ids.Reset()
	s.tiles = nil
	s.status = StatusPlaying
	s.lastTrail = nil

	s.deleteState()

	s.spawn()
	s.spawn()
	s.saveState()
}

// Move applies dir. It returns true if the board changed. Moves are ignored
// after game over and for invalid directions.
func (s *Session) Move(dir Direction) bool {
	if s.status == StatusGameOver || !dir.Valid() {
		return false
	}

	res := ApplyMove(s.tiles, s.size, dir)
	if !res.Moved {
		return false
	}

	s.pushHistory(State{Tiles: SettleTiles(s.tiles), Score: s.score})
	s.tiles = res.Tiles
	s.score += res.ScoreDelta
	s.lastTrail = res.Trail
	if s.score > s.best {
		s.best = s.score
		s.saveBest()
	}

	s.spawn()

	if len(s.tiles) == s.size*s.size && IsGameOver(s.Grid()) {
		s.status = StatusGameOver
		s.logger.Debug("game over", "variant", s.variant, "score", s.score)
	}

	s.saveState()
	return true
}

// Undo restores the state before the last move and always resumes play.
// It returns false when there is nothing to undo.
func (s *Session) Undo() bool {
	prev, ok := s.popHistory()
	if !ok {
		return false
	}

	s.tiles = SettleTiles(prev.Tiles)
	s.score = prev.Score
	s.status = StatusPlaying
	s.lastTrail = nil

	s.saveState()
	return true
}

// ResetBestScore sets the best score to 0.
func (s *Session) ResetBestScore() {
	s.best = 0
	s.saveBest()
}

// pushHistory records prev, dropping the oldest entry past the undo limit.
func (s *Session) pushHistory(prev State) {
	s.history = append(s.history, prev)
	if s.maxUndo > 0 && len(s.history) > s.maxUndo {
		s.history = append([]State(nil), s.history[len(s.history)-s.maxUndo:]...)
	}
}

func (s *Session) popHistory() (State, bool) {
	if len(s.history) == 0 {
		return State{}, false
	}
	last := s.history[len(s.history)-1]
	s.history = s.history[:len(s.history)-1]
	return last, true
}

func (s *Session) spawn() {
	s.tiles, _ = SpawnTile(s.tiles, s.size, s.rng, s.fourProb, s.ids)
}

// restore installs a validated saved state.
func (s *Session) restore(st State) {
	s.tiles = SettleTiles(st.Tiles)
	s.score = st.Score
	s.history = nil
	s.ids.Reset()
	s.ids.FastForward(HighestID(s.tiles))
	s.status = StatusPlaying
	if len(s.tiles) == s.size*s.size && IsGameOver(s.Grid()) {
		s.status = StatusGameOver
	}
}

// Accessors

// Variant returns the key namespace of this session.
func (s *Session) Variant() string { return s.variant }

// Size returns the board dimension.
func (s *Session) Size() int { return s.size }

// Tiles returns a copy of the current tiles.
func (s *Session) Tiles() []Tile { return CloneTiles(s.tiles) }

// Grid returns the current board as a dense grid.
func (s *Session) Grid() Grid {
	g, err := TilesToGrid(s.tiles, s.size)
	if err != nil {
		// Tiles are validated on every entry point; this cannot happen.
		panic(err)
	}
	return g
}

func (s *Session) Score() int       { return s.score }
func (s *Session) BestScore() int   { return s.best }
func (s *Session) Status() Status   { return s.status }
func (s *Session) IsGameOver() bool { return s.status == StatusGameOver }
func (s *Session) CanUndo() bool    { return len(s.history) > 0 }
func (s *Session) HistoryLen() int  { return len(s.history) }

// LastTrail returns how tiles travelled in the most recent move, or nil
// after a new game or undo.
func (s *Session) LastTrail() []Step {
	return append([]Step(nil), s.lastTrail...)
}
