package t2048

import (
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/registry"
)

// Game adapts a Session to the platform's tick loop and screen buffer.
type Game struct {
	variant Variant
	opts    registry.Options
	session *Session
	tick    uint64

	// Screen dimensions
	screenW int
	screenH int

	paused   bool
	tooSmall bool

	anim animator
}

// New creates a game for the given variant. The session is created on the
// first Reset.
func New(v Variant, opts registry.Options) *Game {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	return &Game{variant: v, opts: opts}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return g.variant.ID
}

// Title returns the display name.
func (g *Game) Title() string {
	return g.variant.Title
}

// Reset restores the saved game on the first call and starts a new game on
// later calls.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.tick = 0
	g.paused = false
	g.anim.stop()
	g.Resize(cfg.ScreenW, cfg.ScreenH)

	if g.session != nil {
		g.session.StartNewGame()
		return
	}

	g.session = NewSession(SessionOptions{
		Variant:         g.variant.ID,
		Size:            g.variant.Size,
		Store:           g.opts.Store,
		Rand:            rand.New(rand.NewSource(cfg.Seed)),
		FourProbability: g.opts.Config.Spawn.FourProbability,
		MaxUndo:         g.opts.Config.Undo.MaxDepth,
		Logger:          g.opts.Logger.With("variant", g.variant.ID),
	})
}

// Resize updates the screen size and checks that the board fits.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.checkScreenSize()
}

// checkScreenSize checks if the screen is large enough.
func (g *Game) checkScreenSize() {
	// Board plus HUD above and status line below
	minW := g.variant.Size*cellWidth + 1 + 2
	minH := g.variant.Size*cellHeight + 1 + hudHeight + 2
	g.tooSmall = g.screenW < minW || g.screenH < minH
}

// Session exposes the underlying session.
func (g *Game) Session() *Session {
	return g.session
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++
	g.anim.update()

	if g.session == nil || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	moved := false
	for _, a := range in.Ordered() {
		if a == core.ActionPause {
			g.paused = !g.paused
			continue
		}
		if g.paused {
			continue
		}
		if g.apply(a) {
			moved = true
		}
	}

	return core.StepResult{State: g.State(), Moved: moved}
}

// apply runs a single action against the session. It reports whether the
// board moved.
func (g *Game) apply(a core.Action) bool {
	switch a {
	case core.ActionRestart:
		g.session.StartNewGame()
		g.anim.stop()
	case core.ActionResetBest:
		g.session.ResetBestScore()
	case core.ActionUndo:
		if g.session.Undo() {
			g.anim.stop()
		}
	default:
		dir := DirectionFromAction(a)
		if dir == DirNone || !g.session.Move(dir) {
			return false
		}
		g.anim.start(g.session.LastTrail(), g.session.Tiles())
		return true
	}
	return false
}

// DirectionFromAction maps a platform action to a move direction.
func DirectionFromAction(a core.Action) Direction {
	switch a {
	case core.ActionUp:
		return DirUp
	case core.ActionDown:
		return DirDown
	case core.ActionLeft:
		return DirLeft
	case core.ActionRight:
		return DirRight
	default:
		return DirNone
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.session == nil {
		return core.GameState{Paused: g.paused || g.tooSmall}
	}
	return core.GameState{
		Score:     g.session.Score(),
		BestScore: g.session.BestScore(),
		GameOver:  g.session.IsGameOver(),
		Paused:    g.paused || g.tooSmall,
		CanUndo:   g.session.CanUndo(),
	}
}
