package t2048

import (
	"errors"
	"testing"

	"github.com/vovakirdan/tui-2048/internal/storage"
)

// fixedRand always picks the first empty cell; value is 2 unless four is set.
type fixedRand struct {
	four bool
}

func (r fixedRand) Intn(int) int { return 0 }

func (r fixedRand) Float64() float64 {
	if r.four {
		return 0
	}
	return 0.99
}

// newTestSession restores a session from a saved board.
func newTestSession(t *testing.T, store storage.StateStore, g Grid, score int) *Session {
	t.Helper()
	raw, err := EncodeState(State{Tiles: TilesFromGrid(g), Score: score})
	if err != nil {
		t.Fatal(err)
	}
	if err := store.Set("2048:gameState", raw); err != nil {
		t.Fatal(err)
	}
	return NewSession(SessionOptions{
		Variant:         "2048",
		Size:            g.Size(),
		Store:           store,
		Rand:            fixedRand{},
		FourProbability: DefaultFourProbability,
	})
}

func TestNewSessionStartsFreshGame(t *testing.T) {
	store := storage.NewMemory()
	s := NewSession(SessionOptions{Store: store, Rand: fixedRand{}, FourProbability: 0.1})

	if len(s.Tiles()) != 2 {
		t.Fatalf("new game should have 2 tiles, got %d", len(s.Tiles()))
	}
	if s.Score() != 0 || s.IsGameOver() || s.CanUndo() {
		t.Errorf("unexpected fresh state: score=%d over=%v undo=%v", s.Score(), s.IsGameOver(), s.CanUndo())
	}
	ids := []int{s.Tiles()[0].ID, s.Tiles()[1].ID}
	if !(ids[0] == 1 && ids[1] == 2) && !(ids[0] == 2 && ids[1] == 1) {
		t.Errorf("fresh ids = %v, want 1 and 2", ids)
	}
	for _, tile := range s.Tiles() {
		if !tile.IsNew || tile.Value != 2 {
			t.Errorf("spawned tile = %+v", tile)
		}
	}

	raw, err := store.Get("2048:gameState")
	if err != nil {
		t.Fatalf("fresh game should be saved: %v", err)
	}
	st, err := DecodeState(raw, 4)
	if err != nil || !sameTiles(st.Tiles, s.Tiles()) {
		t.Errorf("saved state does not match: %v", err)
	}
}

func TestSessionMoveExample(t *testing.T) {
	store := storage.NewMemory()
	s := newTestSession(t, store, Grid{
		{2, 2, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}, 0)

	if !s.Move(DirLeft) {
		t.Fatal("Move(Left) should change the board")
	}
	if s.Score() != 4 || s.BestScore() != 4 {
		t.Errorf("score = %d best = %d, want 4 and 4", s.Score(), s.BestScore())
	}
	if s.HistoryLen() != 1 {
		t.Errorf("HistoryLen() = %d, want 1", s.HistoryLen())
	}

	g := s.Grid()
	if g[0][0] != 4 {
		t.Errorf("grid = %v, want 4 at (0,0)", g)
	}
	// One spawned tile at the first empty cell
	if g[0][1] != 2 || len(s.Tiles()) != 2 {
		t.Errorf("expected one spawned 2 at (0,1), grid = %v", g)
	}

	if v, _ := store.Get("2048:bestScore"); v != "4" {
		t.Errorf("best score saved as %q", v)
	}
}

func TestSessionNoopMove(t *testing.T) {
	store := storage.NewMemory()
	s := newTestSession(t, store, Grid{
		{2, 4, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}, 12)
	before := s.Tiles()
	saved, _ := store.Get("2048:gameState")

	if s.Move(DirLeft) || s.Move(DirUp) {
		t.Fatal("packed board should not move Left or Up")
	}
	if s.Score() != 12 {
		t.Errorf("no-op changed score to %d", s.Score())
	}
	if !sameTiles(before, s.Tiles()) || len(s.Tiles()) != 2 {
		t.Error("no-op should not change or spawn tiles")
	}
	if s.HistoryLen() != 0 || s.CanUndo() {
		t.Error("no-op should not grow history")
	}
	if now, _ := store.Get("2048:gameState"); now != saved {
		t.Error("no-op should not rewrite the saved game")
	}
}

func TestSessionInvalidDirectionIgnored(t *testing.T) {
	s := newTestSession(t, storage.NewMemory(), Grid{{2, 0}, {0, 0}}, 0)
	if s.Move(DirNone) || s.Move(Direction(99)) {
		t.Error("invalid directions should be ignored")
	}
	if s.HistoryLen() != 0 {
		t.Error("invalid direction should not touch history")
	}
}

func TestSessionUndo(t *testing.T) {
	s := newTestSession(t, storage.NewMemory(), Grid{
		{2, 2, 0, 0},
		{0, 4, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 8},
	}, 100)
	before := s.Tiles()

	if s.Undo() {
		t.Error("Undo with empty history should be ignored")
	}

	if !s.Move(DirLeft) {
		t.Fatal("move should succeed")
	}
	if !s.Move(DirUp) {
		t.Fatal("second move should succeed")
	}
	if s.HistoryLen() != 2 {
		t.Fatalf("HistoryLen() = %d, want 2", s.HistoryLen())
	}
	best := s.BestScore()

	s.Undo()
	if !s.Undo() {
		t.Fatal("second Undo should succeed")
	}
	if !sameTiles(before, s.Tiles()) {
		t.Errorf("undo did not restore tiles:\n got %+v\nwant %+v", s.Tiles(), before)
	}
	if s.Score() != 100 {
		t.Errorf("undo restored score %d, want 100", s.Score())
	}
	if s.BestScore() != best {
		t.Error("undo should not lower the best score")
	}
	if s.CanUndo() {
		t.Error("history should be empty")
	}
}

// lockingBoard becomes a locked board after Move(Right) spawns a 4 at (3,0).
var lockingBoard = Grid{
	{2, 4, 2, 4},
	{4, 2, 4, 2},
	{2, 4, 2, 4},
	{8, 16, 32, 0},
}

func TestSessionGameOverAndUndo(t *testing.T) {
	store := storage.NewMemory()
	raw, _ := EncodeState(State{Tiles: TilesFromGrid(lockingBoard), Score: 50})
	store.Set("2048:gameState", raw)
	s := NewSession(SessionOptions{Store: store, Rand: fixedRand{four: true}, FourProbability: 0.1})

	if !s.Move(DirRight) {
		t.Fatal("Move(Right) should shift the last row")
	}
	if !s.IsGameOver() || s.Status() != StatusGameOver {
		t.Fatalf("expected game over, grid = %v", s.Grid())
	}

	tiles := s.Tiles()
	for _, dir := range Directions {
		if s.Move(dir) {
			t.Errorf("Move(%v) should be ignored after game over", dir)
		}
	}
	if !sameTiles(tiles, s.Tiles()) {
		t.Error("moves after game over must not change tiles")
	}

	if !s.Undo() {
		t.Fatal("Undo should work after game over")
	}
	if s.IsGameOver() {
		t.Error("Undo should resume play")
	}
	if !s.Move(DirRight) {
		t.Error("play should continue after undo")
	}
}

func TestSessionUndoForcesPlayingOnTerminalState(t *testing.T) {
	locked := Grid{
		{2, 4, 2, 4},
		{4, 2, 4, 2},
		{2, 4, 2, 4},
		{4, 2, 4, 2},
	}
	s := newTestSession(t, storage.NewMemory(), locked, 0)
	if !s.IsGameOver() {
		t.Fatal("restoring a locked board should be game over")
	}

	// Undo always resumes play even if the restored board is itself locked.
	s.StartNewGame()
	s.history = []State{{Tiles: TilesFromGrid(locked), Score: 3}}
	if !s.Undo() || s.IsGameOver() {
		t.Error("undo must resume play")
	}
	if !s.Grid().Equal(locked) {
		t.Error("undo should restore the locked board")
	}
}

func TestSessionStartNewGame(t *testing.T) {
	store := storage.NewMemory()
	s := newTestSession(t, store, Grid{
		{2, 2, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}, 40)
	s.Move(DirLeft)
	best := s.BestScore()

	s.StartNewGame()
	if s.Score() != 0 || s.CanUndo() || s.IsGameOver() {
		t.Error("new game should reset score, history and status")
	}
	if s.BestScore() != best {
		t.Errorf("best score %d should survive a new game, got %d", best, s.BestScore())
	}
	if HighestID(s.Tiles()) != 2 {
		t.Errorf("ids should restart at 1, tiles = %+v", s.Tiles())
	}
	if len(s.LastTrail()) != 0 {
		t.Error("trail should be cleared")
	}
}

func TestSessionRestoreFastForwardsIDs(t *testing.T) {
	store := storage.NewMemory()
	raw, _ := EncodeState(State{
		Tiles: []Tile{
			{ID: 7, Value: 2, Row: 0, Col: 0},
			{ID: 19, Value: 2, Row: 0, Col: 1},
		},
		Score: 8,
	})
	store.Set("2048:gameState", raw)

	s := NewSession(SessionOptions{Store: store, Rand: fixedRand{}})
	if s.Score() != 8 || len(s.Tiles()) != 2 {
		t.Fatalf("saved game not restored: score=%d tiles=%d", s.Score(), len(s.Tiles()))
	}

	s.Move(DirLeft)
	if got := HighestID(s.Tiles()); got != 20 {
		t.Errorf("spawned tile id = %d, want 20", got)
	}
}

func TestSessionMalformedStateStartsNewGame(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"not json", "{tiles"},
		{"overlap", `{"tiles":[{"id":1,"value":2,"row":0,"col":0},{"id":2,"value":4,"row":0,"col":0}],"score":0}`},
		{"out of bounds", `{"tiles":[{"id":1,"value":2,"row":4,"col":0}],"score":0}`},
		{"not a power of two", `{"tiles":[{"id":1,"value":6,"row":0,"col":0}],"score":0}`},
		{"duplicate id", `{"tiles":[{"id":1,"value":2,"row":0,"col":0},{"id":1,"value":2,"row":1,"col":0}],"score":0}`},
		{"negative score", `{"tiles":[{"id":1,"value":2,"row":0,"col":0}],"score":-4}`},
		{"no tiles", `{"tiles":[],"score":0}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := storage.NewMemory()
			store.Set("2048:gameState", tt.raw)
			store.Set("2048:bestScore", "256")

			s := NewSession(SessionOptions{Store: store, Rand: fixedRand{}})
			if len(s.Tiles()) != 2 || s.Score() != 0 {
				t.Errorf("expected a fresh game, got %d tiles score %d", len(s.Tiles()), s.Score())
			}
			if s.BestScore() != 256 {
				t.Errorf("best score should still load, got %d", s.BestScore())
			}
			raw, err := store.Get("2048:gameState")
			if err != nil || raw == tt.raw {
				t.Error("malformed state should be replaced by the fresh game")
			}
		})
	}
}

func TestSessionBestScore(t *testing.T) {
	store := storage.NewMemory()
	store.Set("2048:bestScore", "not a number")

	s := newTestSession(t, store, Grid{
		{4, 4, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}, 0)
	if s.BestScore() != 0 {
		t.Fatalf("unparsable best score should load as 0, got %d", s.BestScore())
	}

	s.Move(DirLeft)
	if s.BestScore() != 8 {
		t.Fatalf("best = %d, want 8", s.BestScore())
	}

	s.Undo()
	if s.BestScore() != 8 {
		t.Error("best score only goes up")
	}

	s.ResetBestScore()
	if s.BestScore() != 0 {
		t.Error("reset should force best to 0")
	}
	if v, _ := store.Get("2048:bestScore"); v != "0" {
		t.Errorf("reset not persisted: %q", v)
	}

	// A later higher score raises it again
	s.Move(DirLeft)
	if s.BestScore() != s.Score() || s.Score() != 8 {
		t.Errorf("best = %d score = %d, want both 8", s.BestScore(), s.Score())
	}

	// Best score is independent of the saved game
	again := NewSession(SessionOptions{Store: store, Rand: fixedRand{}})
	if again.BestScore() != 8 {
		t.Errorf("reloaded best = %d", again.BestScore())
	}
}

func TestSessionMaxUndo(t *testing.T) {
	s := newTestSession(t, storage.NewMemory(), Grid{
		{2, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}, 0)
	s.maxUndo = 2

	moves := 0
	for _, dir := range []Direction{DirRight, DirDown, DirLeft, DirUp, DirRight} {
		if s.Move(dir) {
			moves++
		}
	}
	if moves < 3 {
		t.Fatalf("expected at least 3 moves, got %d", moves)
	}
	if s.HistoryLen() != 2 {
		t.Errorf("HistoryLen() = %d, want 2", s.HistoryLen())
	}
}

func TestSessionNoopMoveKeepsCappedHistory(t *testing.T) {
	s := newTestSession(t, storage.NewMemory(), Grid{
		{2, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}, 0)
	s.maxUndo = 1

	if !s.Move(DirRight) {
		t.Fatal("Right should move")
	}
	// Row 0 is now 2 0 0 2; nothing can move up.
	before := s.Tiles()
	if s.Move(DirUp) {
		t.Fatal("Up should be a no-op")
	}
	if s.HistoryLen() != 1 || !s.CanUndo() {
		t.Fatalf("no-op move changed history: len=%d canUndo=%v", s.HistoryLen(), s.CanUndo())
	}
	if !sameTiles(s.Tiles(), before) {
		t.Error("no-op move changed the board")
	}

	if !s.Undo() {
		t.Fatal("Undo should succeed")
	}
	want := Grid{
		{2, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}
	if got := s.Grid(); !got.Equal(want) {
		t.Errorf("after undo grid = %v, want %v", got, want)
	}
}

func TestSessionSnapshotIsIndependent(t *testing.T) {
	s := newTestSession(t, storage.NewMemory(), Grid{
		{2, 2, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}, 0)

	snap := s.Snapshot()
	s.Move(DirLeft)

	if snap.Board[0][0] != 2 || snap.Board[0][1] != 2 || snap.Score != 0 {
		t.Errorf("snapshot changed after move: %v score %d", snap.Board, snap.Score)
	}
}

func TestSessionVariantsUseSeparateKeys(t *testing.T) {
	store := storage.NewMemory()
	a := NewSession(SessionOptions{Variant: "2048", Store: store, Rand: fixedRand{}})
	b := NewSession(SessionOptions{Variant: "2048_5x5", Size: 5, Store: store, Rand: fixedRand{}})
	a.ResetBestScore()

	if _, err := store.Get("2048_5x5:gameState"); err != nil {
		t.Errorf("5x5 game not saved under its own key: %v", err)
	}
	if b.Size() != 5 || b.Grid().Size() != 5 {
		t.Error("5x5 session has the wrong size")
	}
}

// failingStore fails every call.
type failingStore struct{}

var errBroken = errors.New("broken")

func (failingStore) Get(string) (string, error) { return "", errBroken }
func (failingStore) Set(string, string) error   { return errBroken }
func (failingStore) Delete(string) error        { return errBroken }

func TestSessionSurvivesStorageFailures(t *testing.T) {
	s := NewSession(SessionOptions{Store: failingStore{}, Rand: fixedRand{}})
	if len(s.Tiles()) != 2 {
		t.Fatal("storage failure should still start a game")
	}
	for _, dir := range Directions {
		s.Move(dir)
	}
	s.Undo()
	s.ResetBestScore()
}

func TestSessionWithoutStore(t *testing.T) {
	s := NewSession(SessionOptions{Size: 3})
	if s.Variant() != "2048" || s.Size() != 3 {
		t.Errorf("defaults: variant %q size %d", s.Variant(), s.Size())
	}
	if len(s.Tiles()) != 2 {
		t.Error("new game should spawn two tiles")
	}
}

func TestEncodeStateDropsFlags(t *testing.T) {
	raw, err := EncodeState(State{Tiles: []Tile{{ID: 1, Value: 2, IsNew: true}}, Score: 0})
	if err != nil {
		t.Fatal(err)
	}
	want := `{"tiles":[{"id":1,"value":2,"row":0,"col":0}],"score":0}`
	if raw != want {
		t.Errorf("EncodeState() = %s, want %s", raw, want)
	}
	if _, err := DecodeState(raw, 4); err != nil {
		t.Errorf("DecodeState() error: %v", err)
	}
	if _, err := DecodeState(`{"tiles":[{"id":1,"value":3}],"score":0}`, 4); !errors.Is(err, ErrInvalidState) {
		t.Errorf("expected ErrInvalidState, got %v", err)
	}
}

func TestReadAndClearBestScore(t *testing.T) {
	store := storage.NewMemory()

	if best, err := ReadBestScore(store, "2048_5x5"); err != nil || best != 0 {
		t.Fatalf("missing best = %d, %v", best, err)
	}

	store.Set(BestKey("2048_5x5"), "4096")
	if best, _ := ReadBestScore(store, "2048_5x5"); best != 4096 {
		t.Errorf("best = %d, want 4096", best)
	}

	store.Set(BestKey("2048"), "-3")
	if best, _ := ReadBestScore(store, "2048"); best != 0 {
		t.Errorf("negative best should read as 0, got %d", best)
	}

	if err := ClearBestScore(store, "2048_5x5"); err != nil {
		t.Fatal(err)
	}
	if v, _ := store.Get("2048_5x5:bestScore"); v != "0" {
		t.Errorf("cleared best = %q", v)
	}

	if _, err := ReadBestScore(failingStore{}, "2048"); err == nil {
		t.Error("storage failure should be reported")
	}
}
