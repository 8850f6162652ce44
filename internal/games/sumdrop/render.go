package sumdrop

import (
	"fmt"

	"github.com/tuigames/sumdrop/internal/core"
)

const (
	cellWidth = 4 // Columns per cell including the separator
	hudHeight = 3
)

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	boardW := g.grid.Cols()*cellWidth + 1
	boardH := g.grid.Rows() + 2 // top and bottom border

	boardX := (g.screenW - boardW) / 2
	boardY := hudHeight + 1

	g.renderHUD(dst, boardX, boardW)
	g.renderBoard(dst, boardX, boardY)
	g.renderOverlays(dst, boardX, boardY, boardW, boardH)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	msg := "Window too small"
	x := (g.screenW - len(msg)) / 2
	y := g.screenH / 2
	dst.DrawText(x, y, msg)

	hint := "Please resize terminal"
	hintX := (g.screenW - len(hint)) / 2
	dst.DrawText(hintX, y+1, hint)
}

// renderHUD draws the score, target and timer info.
func (g *Game) renderHUD(dst *core.Screen, boardX, boardW int) {
	title := "SUMDROP"
	titleX := boardX + (boardW-len(title))/2
	dst.DrawText(titleX, 0, title)

	scoreStr := fmt.Sprintf("Score: %d", g.score)
	dst.DrawText(boardX, 1, scoreStr)

	targetStr := fmt.Sprintf("Target: %d", g.target)
	targetX := boardX + boardW - len(targetStr)
	if targetX < boardX {
		targetX = boardX
	}
	dst.DrawTextColored(targetX, 1, targetStr, core.ColorBrightCyan)

	// Selection progress toward the target.
	sum := g.grid.SelectionSum()
	sumStr := fmt.Sprintf("Picked: %d", sum)
	sumColor := core.ColorGray
	if sum > 0 {
		sumColor = core.ColorBrightYellow
	}
	dst.DrawTextColored(boardX, 2, sumStr, sumColor)

	if g.mode == ModeTimed {
		timerStr := fmt.Sprintf("Next row in: %ds", g.timeLeft)
		timerColor := core.ColorGreen
		if g.timeLeft <= 5 {
			timerColor = core.ColorBrightRed
		}
		timerX := boardX + boardW - len(timerStr)
		if timerX < boardX {
			timerX = boardX
		}
		dst.DrawTextColored(timerX, 2, timerStr, timerColor)
	} else {
		modeStr := "Classic"
		modeX := boardX + boardW - len(modeStr)
		dst.DrawTextColored(modeX, 2, modeStr, core.ColorGray)
	}
}

// renderBoard draws the grid, tiles, selection and cursor.
func (g *Game) renderBoard(dst *core.Screen, boardX, boardY int) {
	boardW := g.grid.Cols()*cellWidth + 1
	boardH := g.grid.Rows() + 2

	dst.DrawBox(core.NewRect(boardX, boardY, boardW, boardH))

	// Danger line marker under the top border.
	for x := boardX + 1; x < boardX+boardW-1; x++ {
		if g.grid.TopRowOccupied() {
			dst.SetColored(x, boardY, '═', core.ColorBrightRed)
		}
	}

	for row := 0; row < g.grid.Rows(); row++ {
		y := boardY + 1 + row
		for col := 0; col < g.grid.Cols(); col++ {
			x := boardX + 1 + col*cellWidth
			g.renderCell(dst, x, y, row, col)
		}
	}
}

// renderCell draws a single cell: value, selection marker, and cursor.
func (g *Game) renderCell(dst *core.Screen, x, y, row, col int) {
	t := g.grid.At(row, col)
	underCursor := row == g.cursorRow && col == g.cursorCol && g.status == StatusPlaying

	if t.Empty() {
		if underCursor {
			dst.SetColored(x, y, '[', core.ColorBrightCyan)
			dst.SetColored(x+2, y, ']', core.ColorBrightCyan)
		}
		return
	}

	valueColor := core.ColorWhite
	if t.Selected {
		valueColor = core.ColorBrightYellow
	} else if row == 0 {
		valueColor = core.ColorBrightRed
	}

	left, right := ' ', ' '
	bracketColor := valueColor
	switch {
	case underCursor:
		left, right = '[', ']'
		bracketColor = core.ColorBrightCyan
	case t.Selected:
		left, right = '(', ')'
	}

	dst.SetColored(x, y, left, bracketColor)
	dst.SetColored(x+1, y, rune('0'+t.Value), valueColor)
	dst.SetColored(x+2, y, right, bracketColor)
}

// renderOverlays draws pause and game-over overlays on top of the board.
func (g *Game) renderOverlays(dst *core.Screen, boardX, boardY, boardW, boardH int) {
	switch {
	case g.paused:
		g.renderCenteredOverlay(dst, boardX, boardY, boardW, boardH,
			"PAUSED", "Press P to resume")
	case g.status == StatusGameOver:
		g.renderCenteredOverlay(dst, boardX, boardY, boardW, boardH,
			"GAME OVER", fmt.Sprintf("Score: %d - R to restart", g.score))
	}
}

func (g *Game) renderCenteredOverlay(dst *core.Screen, boardX, boardY, boardW, boardH int, line1, line2 string) {
	midY := boardY + boardH/2

	w := core.Max(len(line1), len(line2)) + 4
	x := boardX + (boardW-w)/2
	dst.DrawRect(core.NewRect(x, midY-1, w, 4), ' ')
	dst.DrawBox(core.NewRect(x, midY-1, w, 4))

	dst.DrawTextColored(boardX+(boardW-len(line1))/2, midY, line1, core.ColorBrightWhite)
	dst.DrawText(boardX+(boardW-len(line2))/2, midY+1, line2)
}
