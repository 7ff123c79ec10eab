package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-2048/internal/analysis"
	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/registry"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

const resetBestPrompt = "Reset best score? y/n"

// Deps are the collaborators a game model talks to. Every field is optional.
type Deps struct {
	Scores   storage.ScoreBoard
	Analyzer analysis.Analyzer
	Config   config.T2048Config
	Logger   *log.Logger
}

// Model is the Bubble Tea model for playing one board.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	deps       Deps
	config     core.RuntimeConfig
	keys       GameKeyMap
	help       help.Model
	swipe      *core.SwipeTracker
	hint       hintDialog
	inputFrame core.InputFrame
	gameState  core.GameState
	loop       uint64

	confirmReset bool
	quitting     bool
	backToMenu   bool
	scoreSaved   bool // Whether the score has been saved for the current game over
}

// NewModel creates a model for game.
func NewModel(game registry.Game, deps Deps, cfg core.RuntimeConfig) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if deps.Logger == nil {
		deps.Logger = log.New(io.Discard)
	}

	in := deps.Config.Input
	m := Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, boardHeight(cfg.ScreenH)),
		deps:       deps,
		config:     cfg,
		keys:       DefaultGameKeyMap(),
		help:       help.New(),
		swipe:      core.NewSwipeTracker(in.SwipeThresholdPx, in.CellWidthPx, in.CellHeightPx),
		hint:       newHintDialog(),
		inputFrame: core.NewInputFrame(),
		loop:       nextLoop(),
	}
	m.help.Width = cfg.ScreenW
	m.hint.resize(cfg.ScreenW)
	return m
}

// boardHeight leaves one line for the help bar.
func boardHeight(h int) int {
	return max(0, h-1)
}

// Init restores the saved game and starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(core.RuntimeConfig{
		ScreenW:  m.config.ScreenW,
		ScreenH:  boardHeight(m.config.ScreenH),
		TickRate: m.config.TickRate,
		Seed:     m.config.Seed,
	})
	return tickCmd(m.loop, m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		if msg.Loop != m.loop {
			return m, nil
		}
		return m.handleTick()

	case hintResultMsg:
		if msg.err != nil {
			m.deps.Logger.Warn("hint failed", "game", m.game.ID(), "err", msg.err)
		}
		m.hint.accept(msg)
		return m, nil
	}

	if m.hint.isOpen() {
		var cmd tea.Cmd
		m.hint, cmd = m.hint.update(msg)
		return m, cmd
	}
	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	case "ctrl+s":
		m.saveScreenshot()
		return m, nil
	}

	if m.hint.isOpen() {
		return m.handleHintKey(msg)
	}

	if m.confirmReset {
		switch msg.String() {
		case "y", "Y", "enter":
			m.inputFrame.Set(core.ActionResetBest)
		}
		m.confirmReset = false
		return m, nil
	}

	action := m.keys.MapKey(msg)
	switch action {
	case core.ActionNone:
		return m, nil
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionBack:
		m.backToMenu = true
		return m, nil
	case core.ActionResetBest:
		m.confirmReset = true
		return m, nil
	case core.ActionHint:
		return m.openHint()
	case core.ActionRestart:
		m.scoreSaved = false
	}

	m.inputFrame.Set(action)
	return m, nil
}

func (m Model) handleHintKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter", "esc", "q", " ":
		m.hint.close()
		return m, nil
	}
	var cmd tea.Cmd
	m.hint, cmd = m.hint.update(msg)
	return m, cmd
}

func (m Model) openHint() (tea.Model, tea.Cmd) {
	seq := m.hint.open()
	snap := m.game.Snapshot()
	return m, tea.Batch(
		m.hint.spinner.Tick,
		requestHint(m.deps.Analyzer, m.deps.Config.Hint.Timeout, seq, snap),
	)
}

// handleMouse turns a press/release drag into a move.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.hint.isOpen() || m.confirmReset || msg.Button != tea.MouseButtonLeft && msg.Action != tea.MouseActionRelease {
		return m, nil
	}

	switch msg.Action {
	case tea.MouseActionPress:
		m.swipe.Begin(msg.X, msg.Y)
	case tea.MouseActionRelease:
		if action, ok := m.swipe.End(msg.X, msg.Y); ok {
			m.inputFrame.Set(action)
		}
	}
	return m, nil
}

// handleResize updates the screen without touching the board.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, boardHeight(msg.Height))
	m.game.Resize(msg.Width, boardHeight(msg.Height))
	m.help.Width = msg.Width
	m.hint.resize(msg.Width)
	return m, nil
}

// handleTick steps the game with the actions collected since the last tick.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	if !m.gameState.GameOver {
		m.scoreSaved = false
	} else if !m.scoreSaved {
		m.saveScore()
		m.scoreSaved = true
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.loop, m.config.TickRate)
}

func (m *Model) saveScore() {
	if m.deps.Scores == nil || m.gameState.Score <= 0 {
		return
	}
	if _, err := m.deps.Scores.SaveScore(m.game.ID(), m.gameState.Score); err != nil {
		m.deps.Logger.Warn("could not save score", "game", m.game.ID(), "err", err)
	}
}

// saveScreenshot writes the current board as plain text.
func (m *Model) saveScreenshot() {
	m.screen.Clear()
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.deps.Logger.Warn("could not create screenshot dir", "err", err)
		return
	}

	name := fmt.Sprintf("%s_%s.txt", m.game.ID(), time.Now().Format("20060102_150405"))
	if err := os.WriteFile(filepath.Join(dir, name), []byte(m.screen.String()), 0o600); err != nil {
		m.deps.Logger.Warn("could not save screenshot", "err", err)
	}
}

// View renders the current state.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.hint.isOpen() {
		return lipgloss.Place(m.config.ScreenW, m.config.ScreenH,
			lipgloss.Center, lipgloss.Center, m.hint.view())
	}

	m.screen.Clear()
	m.game.Render(m.screen)
	if m.confirmReset {
		y := m.screen.Height() - 1
		for x := range m.screen.Width() {
			m.screen.Set(x, y, ' ')
		}
		m.screen.DrawTextCentered(y, resetBestPrompt)
	}

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// IsQuitting reports whether the user asked to quit.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu reports whether the user asked to return to the menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run plays game in the current terminal until the user quits or goes back.
// It reports whether the user asked for the menu.
func Run(game registry.Game, deps Deps, cfg core.RuntimeConfig) (backToMenu bool, err error) {
	p := tea.NewProgram(
		NewModel(game, deps, cfg),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	final, err := p.Run()
	if err != nil {
		return false, err
	}
	m, ok := final.(Model)
	return ok && m.BackToMenu(), nil
}
