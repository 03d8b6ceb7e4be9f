package chase

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-chase/internal/core"
	"github.com/vovakirdan/tui-chase/internal/games/chase/sim"
)

// Render draws the HUD, the maze, both agents and any end-of-round overlay.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.sim == nil {
		return
	}

	theme := g.cfg.Theme
	tileW := g.tileWidth()
	grid := g.sim.Grid()
	mapW, mapH := g.mapSize()

	g.renderHUD(dst)

	area := mapArea(dst.Width(), dst.Height())
	if !area.Fits(mapW, mapH) {
		g.renderOverlay(dst, "Window too small", fmt.Sprintf("Need %dx%d", mapW, mapH+hudHeight), theme.Text)
		return
	}

	offX := (area.W - mapW) / 2
	offY := area.Y + (area.H-mapH)/2

	for r := range grid.Rows() {
		for c := range grid.Cols() {
			x := offX + c*tileW
			switch grid.At(r, c) {
			case sim.CellWall:
				g.drawTile(dst, x, offY+r, tileW, theme.WallGlyph, theme.Wall, true)
			case sim.CellCollectible:
				g.drawTile(dst, x, offY+r, tileW, theme.CollectibleGlyph, theme.Collectible, false)
			}
		}
	}

	player, pursuer := g.sim.Player(), g.sim.Pursuer()
	g.drawTile(dst, offX+player.Col*tileW, offY+player.Row, tileW, theme.PlayerGlyph, theme.Player, false)
	// The pursuer is drawn last so a capture shows the pursuer on top.
	g.drawTile(dst, offX+pursuer.Col*tileW, offY+pursuer.Row, tileW, theme.PursuerGlyph, theme.Pursuer, false)

	switch g.sim.State() {
	case sim.Won:
		g.renderOverlay(dst, "YOU WIN!", "Press R to restart", theme.Player)
	case sim.Lost:
		g.renderOverlay(dst, "GAME OVER", "Press R to restart", theme.Pursuer)
	}
}

// tileWidth is the number of terminal columns per maze tile.
func (g *Game) tileWidth() int {
	return core.Clamp(g.cfg.Theme.CellWidth, 1, 4)
}

// mapSize returns the maze size in terminal cells.
func (g *Game) mapSize() (w, h int) {
	rows, cols := g.maze.Size()
	return cols * g.tileWidth(), rows
}

// fits reports whether the maze and HUD fit a screen of the given size.
func (g *Game) fits(screenW, screenH int) bool {
	w, h := g.mapSize()
	return mapArea(screenW, screenH).Fits(w, h)
}

// mapArea is the part of the screen below the HUD.
func mapArea(screenW, screenH int) core.Rect {
	return core.NewRect(0, hudHeight, screenW, screenH-hudHeight)
}

// drawTile draws one maze tile. Solid tiles repeat the glyph across the
// tile width, other tiles draw it once.
func (g *Game) drawTile(dst *core.Screen, x, y, tileW int, glyph rune, c core.Color, solid bool) {
	for i := range tileW {
		r := ' '
		if solid || i == 0 {
			r = glyph
		}
		dst.SetColored(x+i, y, r, c)
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	state := g.State()
	hud := fmt.Sprintf(" %s   Dots: %d   Time: %.1fs", g.Title(), state.Remaining, state.Elapsed.Seconds())
	dst.DrawTextColored(0, 0, hud, g.cfg.Theme.Text)
	dst.DrawTextColored(0, 1, strings.Repeat("─", dst.Width()), g.cfg.Theme.Text)
}

// renderOverlay draws a centered box with a headline and a hint.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string, c core.Color) {
	boxW := max(len(line1), len(line2)) + 4
	box := core.CenteredRect(dst.Width(), dst.Height(), boxW, 5)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box, g.cfg.Theme.Text)
	dst.DrawTextCentered(box.Y+1, line1, c)
	dst.DrawTextCentered(box.Y+3, line2, g.cfg.Theme.Text)
}
