package ndmines

import (
	"fmt"

	platformcore "github.com/vovakirdan/ndsweeper/internal/core"
	"github.com/vovakirdan/ndsweeper/internal/games/ndmines/core"
)

// Rows taken by the HUD above and the status line below the board box.
const (
	hudRows    = 2
	footerRows = 1
)

// Render draws the HUD, the visible part of the current slice and the
// status line.
func (g *Game) Render(dst *platformcore.Screen) {
	if g.game == nil {
		dst.DrawTextCenteredColored(dst.Height()/2, truncate(fmt.Sprintf("cannot build board: %v", g.err), dst.Width()), platformcore.ColorRed)
		return
	}

	g.renderHUD(dst)

	if !g.renderBoard(dst) {
		dst.DrawTextCenteredColored(dst.Height()/2, "window too small", platformcore.ColorYellow)
	}

	if g.message != "" {
		color := platformcore.ColorWhite
		switch g.game.Phase() {
		case core.Lost:
			color = platformcore.ColorBrightRed
		case core.Won:
			color = platformcore.ColorBrightGreen
		}
		dst.DrawTextColored(0, dst.Height()-1, truncate(g.message, dst.Width()), color)
	}
}

func (g *Game) renderHUD(dst *platformcore.Screen) {
	dst.DrawTextColored(0, 0, truncate(fmt.Sprintf("%s  %s", g.Title(), g.dims), dst.Width()), platformcore.ColorBrightCyan)

	status := fmt.Sprintf("mines %d  time %s  %s", g.game.RemainingMineEstimate(), formatClock(g.Elapsed()), g.game.Phase())
	if g.paused {
		status += " (paused)"
	}
	if x := dst.Width() - len([]rune(status)); x > 0 {
		dst.DrawText(x, 0, status)
	}

	label := fmt.Sprintf("%s  cursor %s", g.view.Label(g.cursor), g.cursor)
	dst.DrawTextColored(0, 1, truncate(label, dst.Width()), platformcore.ColorGray)
}

// renderBoard draws the slice through the cursor, scrolled so the cursor
// stays visible. Returns false if not even one cell fits.
func (g *Game) renderBoard(dst *platformcore.Screen) bool {
	cols, rows := g.view.planeSize(g.dims)
	pitch := g.cellWidth + 1

	visCols := platformcore.Min(cols, (dst.Width()-3)/pitch)
	visRows := platformcore.Min(rows, dst.Height()-hudRows-footerRows-2)
	if visCols < 1 || visRows < 1 {
		return false
	}

	curCol := g.cursor[g.view.X]
	curRow := 0
	if g.view.Y >= 0 {
		curRow = g.cursor[g.view.Y]
	}
	startCol := platformcore.Clamp(curCol-visCols/2, 0, cols-visCols)
	startRow := platformcore.Clamp(curRow-visRows/2, 0, rows-visRows)

	box := platformcore.NewRect(0, hudRows, visCols*pitch+3, visRows+2)
	box.X = platformcore.Max(0, (dst.Width()-box.W)/2)

	frame := platformcore.ColorGray
	switch g.game.Phase() {
	case core.Lost:
		frame = platformcore.ColorRed
	case core.Won:
		frame = platformcore.ColorGreen
	}
	dst.DrawBoxColored(box, frame)

	for r := 0; r < visRows; r++ {
		row := startRow + r
		y := box.Y + 1 + r
		for c := 0; c < visCols; c++ {
			col := startCol + c
			x := box.X + 1 + c*pitch + 1

			cv, err := g.game.Cell(g.view.at(g.cursor, col, row))
			if err != nil {
				continue
			}
			text, color := Glyph(cv, g.cellWidth)
			dst.DrawTextColored(x, y, text, color)

			if col == curCol && row == curRow {
				dst.SetColored(x-1, y, '[', platformcore.ColorBrightWhite)
				dst.SetColored(x+g.cellWidth, y, ']', platformcore.ColorBrightWhite)
			}
		}
	}

	// Scroll hints when part of the plane is off screen
	if startCol > 0 {
		dst.SetColored(box.X, box.Y+1+visRows/2, '<', platformcore.ColorYellow)
	}
	if startCol+visCols < cols {
		dst.SetColored(box.Right()-1, box.Y+1+visRows/2, '>', platformcore.ColorYellow)
	}
	if startRow > 0 {
		dst.SetColored(box.X+box.W/2, box.Y, '^', platformcore.ColorYellow)
	}
	if startRow+visRows < rows {
		dst.SetColored(box.X+box.W/2, box.Bottom()-1, 'v', platformcore.ColorYellow)
	}
	return true
}
