package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-2048/internal/games/t2048"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

const maxScores = 100

// ScoreboardKeyMap defines the key bindings for the score table.
type ScoreboardKeyMap struct {
	Scroll key.Binding
	Next   key.Binding
	Prev   key.Binding
	Back   key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Scroll, k.Prev, k.Next, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Scroll: key.NewBinding(
			key.WithKeys("up", "down", "k", "j"),
			key.WithHelp("↑/↓", "scroll"),
		),
		Next: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("→/tab", "bigger board"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("←", "smaller board"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// boardScores is what the table shows for one board size.
type boardScores struct {
	variant t2048.Variant
	best    int // Current best score, kept even when no game finished
	scores  []storage.ScoreEntry
	err     error
}

// ScoreboardModel lists finished games per board size.
type ScoreboardModel struct {
	boards    []t2048.Variant
	cursor    int
	scores    storage.ScoreBoard // Nil shows an empty table
	bests     storage.StateStore // Nil hides best scores
	current   boardScores
	table     table.Model
	help      help.Model
	keys      ScoreboardKeyMap
	width     int
	height    int
	quitting  bool
	goingBack bool
}

// NewScoreboardModel opens the table on startID, or on the classic board
// when startID is unknown.
func NewScoreboardModel(scores storage.ScoreBoard, bests storage.StateStore, startID string, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		boards: t2048.BySize(),
		scores: scores,
		bests:  bests,
		keys:   DefaultScoreboardKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	for i, v := range m.boards {
		if v.ID == startID || startID == "" && v.ID == t2048.Variants[0].ID {
			m.cursor = i
		}
	}
	m.table = newScoreTable(width, height)
	m.load()
	return m
}

func newScoreTable(width, height int) table.Model {
	finished := 18
	if width > 60 {
		finished = min(width-40, 24)
	}
	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "#", Width: 4},
			{Title: "Score", Width: 8},
			{Title: "Of best", Width: 8},
			{Title: "Finished", Width: finished},
		}),
		table.WithFocused(true),
		table.WithHeight(max(height-9, 3)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)
	return t
}

// load reads scores and the best score of the selected board.
func (m *ScoreboardModel) load() {
	if len(m.boards) == 0 {
		return
	}
	b := boardScores{variant: m.boards[m.cursor]}
	if m.bests != nil {
		b.best, _ = t2048.ReadBestScore(m.bests, b.variant.ID)
	}
	if m.scores != nil {
		b.scores, b.err = m.scores.TopScores(b.variant.ID, maxScores)
	}
	// A reset best can sit below old finishes.
	if len(b.scores) > 0 && b.scores[0].Score > b.best {
		b.best = b.scores[0].Score
	}
	m.current = b

	rows := make([]table.Row, len(b.scores))
	for i, s := range b.scores {
		rows[i] = table.Row{
			strconv.Itoa(i + 1),
			strconv.Itoa(s.Score),
			ofBest(s.Score, b.best),
			s.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

func ofBest(score, best int) string {
	if best <= 0 {
		return "-"
	}
	return fmt.Sprintf("%d%%", score*100/best)
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Next):
			m.step(1)
			return m, nil
		case key.Matches(msg, m.keys.Prev):
			m.step(-1)
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.table = newScoreTable(msg.Width, msg.Height)
		m.load()
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m *ScoreboardModel) step(d int) {
	if len(m.boards) == 0 {
		return
	}
	m.cursor = (m.cursor + d + len(m.boards)) % len(m.boards)
	m.load()
}

var (
	sbTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	sbTabStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Padding(0, 1)
	sbActiveStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57")).Padding(0, 1)
	sbMutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	sbErrStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Padding(1, 2)
	sbBoxStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)
)

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}
	if len(m.boards) == 0 {
		return "No boards registered.\n"
	}

	var b strings.Builder
	b.WriteString(centerText(sbTitleStyle.Render("SCORES"), m.width))
	b.WriteString("\n\n")

	tabs := make([]string, len(m.boards))
	for i, v := range m.boards {
		label := fmt.Sprintf("%dx%d", v.Size, v.Size)
		if i == m.cursor {
			tabs[i] = sbActiveStyle.Render(label)
		} else {
			tabs[i] = sbTabStyle.Render(label)
		}
	}
	b.WriteString(centerText(lipgloss.JoinHorizontal(lipgloss.Top, tabs...), m.width))
	b.WriteString("\n\n")

	b.WriteString(centerText(m.summary(), m.width))
	b.WriteString("\n")
	b.WriteString(centerText(sbBoxStyle.Render(m.body()), m.width))
	b.WriteString("\n")
	b.WriteString(sbMutedStyle.Render(m.help.View(m.keys)))
	return b.String()
}

func (m ScoreboardModel) summary() string {
	c := m.current
	line := fmt.Sprintf("%s   best %d", c.variant.Title, c.best)
	if len(c.scores) > 0 {
		line += fmt.Sprintf("   top finish %d   listed %d", c.scores[0].Score, len(c.scores))
	}
	return sbMutedStyle.Render(line)
}

func (m ScoreboardModel) body() string {
	switch {
	case m.current.err != nil:
		return sbErrStyle.Render("Could not load scores:\n" + m.current.err.Error())
	case len(m.current.scores) == 0:
		return sbMutedStyle.Italic(true).Padding(1, 2).
			Render("No finished games yet.\nScores are recorded when a board locks up.")
	}
	return m.table.View()
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard shows the score table on its own.
// Returns true if user wants to go back to menu, false if quitting.
func RunScoreboard(store storage.Backend, startID string, width, height int) (goBack bool, err error) {
	p := tea.NewProgram(NewScoreboardModel(store, store, startID, width, height), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return false, err
	}
	m, ok := final.(ScoreboardModel)
	return ok && m.IsGoingBack(), nil
}
