package tui

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-2048/internal/analysis"
	"github.com/vovakirdan/tui-2048/internal/core"
)

const (
	hintTitle       = "Board Analysis"
	hintLoadingText = "Analyzing your board..."
	hintDismissText = "enter: got it, thanks!"
	hintMaxWidth    = 60
	hintBodyHeight  = 8
)

type hintState int

const (
	hintClosed hintState = iota
	hintLoading
	hintReady
)

// hintResultMsg carries a provider answer back to the model. seq ties it
// to the request that produced it.
type hintResultMsg struct {
	seq  int
	resp analysis.Response
	err  error
}

// hintDialog is the modal that shows board analysis.
type hintDialog struct {
	state    hintState
	seq      int
	text     string
	spinner  spinner.Model
	viewport viewport.Model
	width    int
}

func newHintDialog() hintDialog {
	sp := spinner.New(spinner.WithSpinner(spinner.Dot))
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	d := hintDialog{spinner: sp}
	d.resize(hintMaxWidth + 4)
	return d
}

func (d *hintDialog) resize(screenW int) {
	d.width = max(20, min(hintMaxWidth, screenW-4))
	d.viewport = viewport.New(d.width, hintBodyHeight)
	if d.text != "" {
		d.setText(d.text)
	}
}

// open starts a new request and returns its sequence number.
func (d *hintDialog) open() int {
	d.seq++
	d.state = hintLoading
	d.text = ""
	return d.seq
}

func (d *hintDialog) close() {
	d.state = hintClosed
}

func (d *hintDialog) isOpen() bool {
	return d.state != hintClosed
}

// accept applies a result. Results for a closed dialog or an older
// request are dropped.
func (d *hintDialog) accept(msg hintResultMsg) bool {
	if d.state != hintLoading || msg.seq != d.seq {
		return false
	}
	d.state = hintReady
	d.setText(msg.resp.Text())
	return true
}

func (d *hintDialog) setText(text string) {
	d.text = text
	wrapped := lipgloss.NewStyle().Width(d.width).Render(text)
	d.viewport.SetContent(wrapped)
	d.viewport.GotoTop()
}

func (d hintDialog) update(msg tea.Msg) (hintDialog, tea.Cmd) {
	var cmd tea.Cmd
	switch d.state {
	case hintLoading:
		d.spinner, cmd = d.spinner.Update(msg)
	case hintReady:
		d.viewport, cmd = d.viewport.Update(msg)
	}
	return d, cmd
}

func (d hintDialog) view() string {
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	footStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("62")).
		Padding(0, 1).
		Width(d.width + 2)

	var body string
	if d.state == hintLoading {
		body = d.spinner.View() + " " + hintLoadingText
	} else {
		body = d.viewport.View()
	}

	parts := []string{titleStyle.Render(hintTitle), "", body}
	if d.state == hintReady {
		parts = append(parts, "", footStyle.Render(hintDismissText))
	}
	return box.Render(strings.Join(parts, "\n"))
}

// requestHint asks a for analysis of snap off the UI goroutine.
func requestHint(a analysis.Analyzer, timeout time.Duration, seq int, snap core.BoardSnapshot) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		if timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, timeout)
			defer cancel()
		}
		req := analysis.Request{BoardState: snap.Board, Score: snap.Score}
		resp, err := analysis.Advise(ctx, a, req)
		return hintResultMsg{seq: seq, resp: resp, err: err}
	}
}
