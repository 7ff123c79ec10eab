package t2048

import (
	"fmt"
	"math"
	"strconv"

	"github.com/vovakirdan/tui-2048/internal/core"
)

const (
	cellWidth  = 7 // Width of each cell (including left border)
	cellHeight = 2 // Height of each cell (including top border)
	hudHeight  = 3 // Title, score line, blank
)

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	// Check screen size
	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}
	if g.session == nil {
		return
	}

	size := g.variant.Size
	boardW := size*cellWidth + 1  // +1 for right border
	boardH := size*cellHeight + 1 // +1 for bottom border

	boardX := (g.screenW - boardW) / 2
	boardY := hudHeight

	g.renderHUD(dst, boardX, boardW)
	g.renderGrid(dst, boardX, boardY)

	if g.anim.phase == PhaseSlide {
		g.renderSliding(dst, boardX, boardY)
	} else {
		g.renderTiles(dst, boardX, boardY)
	}

	g.renderOverlays(dst, boardX, boardY, boardW, boardH)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, "Please resize terminal")
}

// renderHUD draws the title, score and best score.
func (g *Game) renderHUD(dst *core.Screen, boardX, boardW int) {
	title := g.variant.Title
	dst.DrawTextColored(boardX+(boardW-len(title))/2, 0, title, core.ColorBrightYellow)

	dst.DrawText(boardX, 1, fmt.Sprintf("Score: %d", g.session.Score()))

	best := fmt.Sprintf("Best: %d", g.session.BestScore())
	dst.DrawText(max(boardX, boardX+boardW-len(best)), 1, best)
}

// renderGrid draws cell borders.
func (g *Game) renderGrid(dst *core.Screen, boardX, boardY int) {
	size := g.variant.Size
	for y := range size + 1 {
		for x := range size + 1 {
			px := boardX + x*cellWidth
			py := boardY + y*cellHeight

			var corner rune
			switch {
			case y == 0 && x == 0:
				corner = '┌'
			case y == 0 && x == size:
				corner = '┐'
			case y == size && x == 0:
				corner = '└'
			case y == size && x == size:
				corner = '┘'
			case y == 0:
				corner = '┬'
			case y == size:
				corner = '┴'
			case x == 0:
				corner = '├'
			case x == size:
				corner = '┤'
			default:
				corner = '┼'
			}
			dst.SetColored(px, py, corner, core.ColorGray)

			if x < size {
				for i := 1; i < cellWidth; i++ {
					dst.SetColored(px+i, py, '─', core.ColorGray)
				}
			}
			if y < size {
				for i := 1; i < cellHeight; i++ {
					dst.SetColored(px, py+i, '│', core.ColorGray)
				}
			}
		}
	}
}

// renderTiles draws settled tiles, highlighting popping ones.
func (g *Game) renderTiles(dst *core.Screen, boardX, boardY int) {
	for _, t := range g.session.tiles {
		text := strconv.Itoa(t.Value)
		if g.anim.popping(t.ID) {
			text = "[" + text + "]"
		}
		drawValue(dst, boardX, boardY, float64(t.Row), float64(t.Col), text, core.TileColor(t.Value))
	}
}

// renderSliding draws tiles part way along their trail.
func (g *Game) renderSliding(dst *core.Screen, boardX, boardY int) {
	for _, a := range g.anim.slides {
		row, col := a.position()
		drawValue(dst, boardX, boardY, row, col, strconv.Itoa(a.Value), core.TileColor(a.Value))
	}
}

// drawValue centers text in the cell at a possibly fractional position.
func drawValue(dst *core.Screen, boardX, boardY int, row, col float64, text string, c core.Color) {
	cellX := boardX + int(math.Round(col*cellWidth)) + 1
	cellY := boardY + int(math.Round(row*cellHeight)) + 1

	padLeft := max((cellWidth-1-len(text))/2, 0)
	dst.DrawTextColored(cellX+padLeft, cellY, text, c)
}

// renderOverlays draws game state overlays.
func (g *Game) renderOverlays(dst *core.Screen, boardX, boardY, boardW, boardH int) {
	centerX := boardX + boardW/2
	centerY := boardY + boardH/2

	if g.paused {
		g.drawOverlay(dst, centerX, centerY, "PAUSED", "Press P to resume")
		return
	}

	if g.session.IsGameOver() {
		g.drawOverlay(dst, centerX, centerY,
			"Game Over!",
			"You've run out of moves.",
			fmt.Sprintf("Your final score is %d", g.session.Score()),
			"U: undo  N: new game",
		)
	}
}

// drawOverlay draws a centered text overlay.
func (g *Game) drawOverlay(dst *core.Screen, centerX, centerY int, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = max(maxLen, len(line))
	}

	boxW := maxLen + 4
	boxH := len(lines) + 2
	box := core.NewRect(centerX-boxW/2, centerY-boxH/2, boxW, boxH)

	// Clear area behind overlay
	dst.DrawRect(box, ' ')
	dst.DrawBox(box)

	for i, line := range lines {
		dst.DrawText(centerX-len(line)/2, box.Y+1+i, line)
	}
}
