package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/games/t2048"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

func sendSession(m SessionModel, msg tea.Msg) (SessionModel, tea.Cmd) {
	next, cmd := m.Update(msg)
	return next.(SessionModel), cmd
}

func newTestSession(store *storage.MemoryStore) SessionModel {
	deps := Deps{Scores: store, Config: config.DefaultT2048Config()}
	return NewSessionModel(store, deps, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1})
}

func TestMenuListsVariantsWithBest(t *testing.T) {
	store := storage.NewMemory()
	store.Set(t2048.BestKey("2048_5x5"), "512")

	m := NewMenuModel(store, core.RuntimeConfig{ScreenW: 80, ScreenH: 24})
	if len(m.items) < 4 {
		t.Fatalf("items = %+v, want every variant", m.items)
	}
	if m.items[0].GameID != "2048" {
		t.Errorf("first item = %q, want the classic board", m.items[0].GameID)
	}
	for _, it := range m.items {
		if it.GameID == "2048_5x5" && it.Best != 512 {
			t.Errorf("5x5 best = %d, want 512", it.Best)
		}
	}
	if !strings.Contains(m.View(), "2048 (5x5)") {
		t.Error("menu should show variant titles")
	}
}

func TestMenuNavigation(t *testing.T) {
	m := NewMenuModel(nil, core.RuntimeConfig{ScreenW: 80, ScreenH: 24})

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyUp})
	m = next.(MenuModel)
	if m.cursor != 0 {
		t.Error("cursor should stay at the top")
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = next.(MenuModel)
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(MenuModel)
	if m.Selected() == nil || m.Selected().GameID != m.items[1].GameID || cmd == nil {
		t.Errorf("enter should select the second item, got %+v", m.Selected())
	}

	next, _ = m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	m = next.(MenuModel)
	if m.Config().ScreenW != 100 || m.Config().ScreenH != 40 {
		t.Errorf("config = %+v", m.Config())
	}
}

func TestSessionFlow(t *testing.T) {
	store := storage.NewMemory()
	m := newTestSession(store)

	// Menu -> classic board
	m, cmd := sendSession(m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.view != viewGame || m.game == nil || cmd == nil {
		t.Fatalf("enter should start a game, view = %v", m.view)
	}
	if m.lastGame != "2048" {
		t.Errorf("lastGame = %q", m.lastGame)
	}

	// Starting a game saves it for the user
	if _, err := store.Get(t2048.StateKey("2048")); err != nil {
		t.Errorf("new game should be saved: %v", err)
	}

	m, _ = sendSession(m, TickMsg{Loop: m.game.loop})
	if !strings.Contains(m.View(), "2048") {
		t.Error("game view should show the board title")
	}

	// Back to the menu
	m, _ = sendSession(m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.view != viewMenu || m.game != nil {
		t.Fatalf("esc should return to the menu, view = %v", m.view)
	}

	// Score table opens on the last board
	m, _ = sendSession(m, tea.KeyMsg{Type: tea.KeyTab})
	if m.view != viewScores {
		t.Fatalf("tab should open scores, view = %v", m.view)
	}
	if got := m.scores.current.variant.ID; got != "2048" {
		t.Errorf("scores opened on %q", got)
	}

	m, _ = sendSession(m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.view != viewMenu {
		t.Fatalf("esc should leave scores, view = %v", m.view)
	}

	m, cmd = sendSession(m, runes("q"))
	if !m.quitting || cmd == nil || m.View() != "" {
		t.Error("q should end the session")
	}
}

func TestScoreboardShowsScores(t *testing.T) {
	store := storage.NewMemory()
	store.SaveScore("2048_3x3", 256)
	store.SaveScore("2048_3x3", 1024)
	store.Set(t2048.BestKey("2048_3x3"), "2048")

	m := NewScoreboardModel(store, store, "2048_3x3", 100, 30)
	if len(m.current.scores) != 2 || m.current.scores[0].Score != 1024 {
		t.Fatalf("scores = %+v", m.current.scores)
	}
	view := m.View()
	for _, want := range []string{"3x3", "best 2048", "top finish 1024", "50%", "12%"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}

	// Boards are ordered by size: 3x3 then 4x4.
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(ScoreboardModel)
	if m.current.variant.Size != 4 {
		t.Fatalf("tab should open the 4x4 board, got %+v", m.current.variant)
	}
	if len(m.current.scores) != 0 || !strings.Contains(m.View(), "No finished games yet") {
		t.Errorf("4x4 should have no scores, got %+v", m.current.scores)
	}

	// Left from the smallest board wraps to the largest.
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	next, _ = next.Update(tea.KeyMsg{Type: tea.KeyLeft})
	m = next.(ScoreboardModel)
	if m.current.variant.Size != 6 {
		t.Errorf("wrap should reach 6x6, got %+v", m.current.variant)
	}
}

func TestScoreboardBestNeverBelowTopFinish(t *testing.T) {
	store := storage.NewMemory()
	store.SaveScore("2048", 512)
	t2048.ClearBestScore(store, "2048")

	m := NewScoreboardModel(store, store, "2048", 100, 30)
	if m.current.best != 512 {
		t.Errorf("best = %d, want 512", m.current.best)
	}
	if got := ofBest(512, m.current.best); got != "100%" {
		t.Errorf("ofBest = %q", got)
	}
	if ofBest(10, 0) != "-" {
		t.Error("no best should render a dash")
	}
}

func TestScoreboardBackAndQuit(t *testing.T) {
	m := NewScoreboardModel(nil, nil, "", 80, 24)
	if m.current.variant.ID != "2048" {
		t.Errorf("default board = %q", m.current.variant.ID)
	}

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if sb := next.(ScoreboardModel); !sb.IsGoingBack() || cmd == nil || sb.View() != "" {
		t.Error("esc should go back")
	}
	next, _ = m.Update(runes("q"))
	if !next.(ScoreboardModel).IsQuitting() {
		t.Error("q should quit")
	}
}
