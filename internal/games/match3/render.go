package match3

import (
	"fmt"

	"github.com/vovakirdan/match3-arcade/internal/core"
	engine "github.com/vovakirdan/match3-arcade/internal/games/match3/core"
)

const (
	cellWidth = 3 // Each cell is drawn as marker, glyph, marker
	hudHeight = 3
	minWidth  = 44
)

// layoutSize returns the screen size needed for a board of n x n cells.
func layoutSize(n int) (w, h int) {
	w = core.Max(n*cellWidth+2, minWidth)
	h = hudHeight + n + 2 + 2 // board box, status and help lines
	return w, h
}

// boardOrigin returns the top-left corner of the first cell.
func (g *Game) boardOrigin() (x, y int) {
	n := g.engine.Options().Size
	boardW := n*cellWidth + 2
	return (g.runtime.ScreenW-boardW)/2 + 1, hudHeight + 1
}

// cellAt maps a screen position to a board cell.
func (g *Game) cellAt(x, y int) (engine.Coord, bool) {
	if g.engine == nil || g.tooSmall {
		return engine.Coord{}, false
	}
	ox, oy := g.boardOrigin()
	n := g.engine.Options().Size
	area := core.NewRect(ox, oy, n*cellWidth, n)
	if !area.Contains(x, y) {
		return engine.Coord{}, false
	}
	return engine.At(y-oy, (x-ox)/cellWidth), true
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	n := g.engine.Options().Size
	ox, oy := g.boardOrigin()

	g.renderHUD(dst)
	dst.DrawBox(core.NewRect(ox-1, oy-1, n*cellWidth+2, n+2), core.ColorGray)
	g.renderBoard(dst, ox, oy)

	statusY := oy + n + 1
	dst.DrawTextCentered(statusY, g.status)
	dst.DrawTextCenteredColored(statusY+1, g.Controls(), core.ColorGray)

	g.renderOverlays(dst, ox+n*cellWidth/2, oy+n/2)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	w, h := layoutSize(g.engine.Options().Size)
	y := g.runtime.ScreenH / 2
	dst.DrawTextCentered(y-1, "Window too small")
	dst.DrawTextCentered(y, fmt.Sprintf("Need %dx%d", w, h))
}

// renderHUD draws level, score, moves and the active windows.
func (g *Game) renderHUD(dst *core.Screen) {
	s := g.engine.Session()
	dst.DrawTextCentered(0, "MATCH-3")
	dst.DrawTextCentered(1, fmt.Sprintf("Level %d  Score %d/%d  Moves %d", s.Level, s.Score, s.Target, s.MovesRemaining))

	line := fmt.Sprintf("Combo %d  Best %d", s.Combo, s.MaxCombo)
	color := core.ColorDefault
	switch {
	case s.CrazyActive:
		line += "  CRAZY"
		color = core.ColorPink
	case s.FeverActive:
		line += "  FEVER"
		color = core.ColorOrange
	}
	dst.DrawTextCenteredColored(2, line, color)
}

// renderBoard draws every cell with its cursor, selection and hint markers.
func (g *Game) renderBoard(dst *core.Screen, ox, oy int) {
	n := g.engine.Options().Size
	sel, hasSel := g.engine.Selection()

	for r := range n {
		for c := range n {
			at := engine.At(r, c)
			x := ox + c*cellWidth
			y := oy + r

			glyph, color := cellGlyph(g.engine.Cell(r, c))
			if g.flash[at] {
				glyph, color = '✶', core.ColorBrightWhite
			}
			dst.SetColored(x+1, y, glyph, color)

			left, right, mc := g.markers(at, sel, hasSel)
			if left != 0 {
				dst.SetColored(x, y, left, mc)
				dst.SetColored(x+2, y, right, mc)
			}
		}
	}
}

// markers returns the bracket pair drawn around a cell, if any.
func (g *Game) markers(at, sel engine.Coord, hasSel bool) (rune, rune, core.Color) {
	switch {
	case at == g.cursor && !g.engine.Session().GameOver:
		return '[', ']', core.ColorBrightWhite
	case hasSel && at == sel:
		return '<', '>', core.ColorBrightYellow
	case g.hintTicks > 0 && (at == g.hintA || at == g.hintB):
		return '(', ')', core.ColorGreen
	}
	return 0, 0, core.ColorDefault
}

func cellGlyph(c engine.Cell) (rune, core.Color) {
	switch c.Kind {
	case engine.KindToken:
		return '●', core.TokenColor(c.Color)
	case engine.KindBomb:
		return '◆', core.ColorGold
	case engine.KindRainbow:
		return '★', core.ColorPink
	default:
		return ' ', core.ColorDefault
	}
}

// renderOverlays draws game state overlays.
func (g *Game) renderOverlays(dst *core.Screen, centerX, centerY int) {
	if g.paused {
		g.drawOverlay(dst, centerX, centerY, "PAUSED", "Press P to resume")
		return
	}

	if g.State().GameOver {
		s := g.engine.Session()
		g.drawOverlay(dst, centerX, centerY,
			"GAME OVER",
			fmt.Sprintf("Level %d  Score %d", s.Level, s.Score),
			"Press R to restart")
	}
}

// drawOverlay draws a centered text box.
func (g *Game) drawOverlay(dst *core.Screen, centerX, centerY int, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = core.Max(maxLen, len(line))
	}

	box := core.NewRect(centerX-(maxLen+4)/2, centerY-(len(lines)+2)/2, maxLen+4, len(lines)+2)
	for y := box.Y; y < box.Bottom(); y++ {
		for x := box.X; x < box.Right(); x++ {
			dst.Set(x, y, ' ')
		}
	}
	dst.DrawBox(box, core.ColorBrightWhite)

	for i, line := range lines {
		dst.DrawText(centerX-len(line)/2, box.Y+1+i, line)
	}
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "Arrows: Move  Space: Pick  S: Shuffle  ?: Hint  P: Pause  Q: Quit"
}
