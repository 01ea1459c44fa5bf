package breakout

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/physics"
)

// Visual characters for rendering
const (
	PaddleChar  = '='
	BallChar    = '●'
	BorderVert  = '│'
	BorderHoriz = '─'
	BorderTL    = '┌'
	BorderTR    = '┐'
)

// Brick glyphs by row (cycling through)
var BrickGlyphs = []rune{'█', '▓', '▒', '░', '#', '+', '*', '='}

// Hard brick glyph
const HardBrickGlyph = '▓'

// Solid brick glyph
const SolidBrickGlyph = '█'

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.screenTooSmall {
		msg := "Window too small"
		hint := fmt.Sprintf("Need %dx%d", g.minScreenW, g.minScreenH)
		dst.DrawTextCentered(dst.Height()/2-1, msg)
		dst.DrawTextCentered(dst.Height()/2+1, hint)
		return
	}

	g.renderHUD(dst)
	g.renderWalls(dst)
	g.renderBricks(dst)
	g.renderPickups(dst)
	g.renderPaddle(dst)
	g.renderBalls(dst)
	g.renderOverlay(dst)
}

// renderHUD draws the score, lives, and level indicator.
func (g *Game) renderHUD(dst *core.Screen) {
	dst.DrawText(1, 0, fmt.Sprintf("Score: %d", g.score))
	dst.DrawTextCentered(0, fmt.Sprintf("Lives: %d", g.lives))

	var levelText string
	if g.mode == ModeEndless {
		levelText = fmt.Sprintf("Level: %d", g.LevelNumber())
	} else {
		levelText = fmt.Sprintf("Level: %d/%d", g.levelIndex+1, LevelCount())
	}
	dst.DrawText(dst.Width()-len(levelText)-1, 0, levelText)

	if effects := g.effectsString(); effects != "" {
		dst.DrawTextColored(1, 1, effects, core.ColorCyan)
	} else {
		dst.DrawText(1, 1, g.level.Name)
	}
}

// effectsString creates a compact effects display.
func (g *Game) effectsString() string {
	effects := g.powerups.Effects()
	parts := make([]string, 0, len(effects))
	for _, e := range effects {
		secs := e.TicksRemaining(g.tickCount) / max(g.runtime.TickRate, 1)
		parts = append(parts, fmt.Sprintf("%s(%d)", e.Type, secs))
	}
	return strings.Join(parts, " ")
}

// cells returns the screen columns and row range covered by a transform.
func (g *Game) cells(t physics.Transform) (x0, x1, y0, y1 int) {
	half := t.Scale.Mul(0.5)
	minP := t.Position.Sub(half)
	maxP := t.Position.Add(half)
	x0, y1 = g.arena.toScreen(minP)
	x1, y0 = g.arena.toScreen(physics.V(math.Ceil(maxP.X())-1, math.Ceil(maxP.Y())-1))
	return x0, x1, y0, y1
}

// fill draws glyph over every cell covered by t.
func (g *Game) fill(dst *core.Screen, t physics.Transform, glyph rune, color core.Color) {
	x0, x1, y0, y1 := g.cells(t)
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			dst.SetColored(x, y, glyph, color)
		}
	}
}

// renderWalls draws the side and top walls.
func (g *Game) renderWalls(dst *core.Screen) {
	top := hudRows
	w := dst.Width()
	dst.DrawHLine(1, top, w-2, BorderHoriz)
	dst.DrawVLine(0, top+1, dst.Height()-top-1, BorderVert)
	dst.DrawVLine(w-1, top+1, dst.Height()-top-1, BorderVert)
	dst.Set(0, top, BorderTL)
	dst.Set(w-1, top, BorderTR)
}

// renderBricks draws all live bricks, colored by row.
func (g *Game) renderBricks(dst *core.Screen) {
	for e, st := range g.bricks {
		t, ok := g.world.Transform(e)
		if !ok {
			continue
		}

		glyph := BrickGlyphs[st.row%len(BrickGlyphs)]
		color := core.RowColors[st.row%len(core.RowColors)]
		switch st.brick.Type {
		case BrickHard:
			if st.brick.HP > 1 {
				glyph = HardBrickGlyph
				color = core.ColorWhite
			}
		case BrickSolid:
			glyph = SolidBrickGlyph
			color = core.ColorGray
		}
		g.fill(dst, t, glyph, color)
	}
}

// renderPickups draws falling power-ups.
func (g *Game) renderPickups(dst *core.Screen) {
	for e, typ := range g.pickups {
		t, ok := g.world.Transform(e)
		if !ok {
			continue
		}
		x, y := g.arena.toScreen(t.Position)
		dst.SetColored(x, y, typ.Glyph(), core.ColorMagenta)
	}
}

// renderPaddle draws the player's paddle.
func (g *Game) renderPaddle(dst *core.Screen) {
	if t, ok := g.world.Transform(g.paddle); ok {
		g.fill(dst, t, PaddleChar, core.ColorWhite)
	}
}

// renderBalls draws every ball, or the waiting ball while serving.
func (g *Game) renderBalls(dst *core.Screen) {
	if g.state == StateServe {
		x, y := g.arena.toScreen(g.servePosition())
		dst.SetColored(x, y, BallChar, core.ColorYellow)
		return
	}
	for _, ball := range g.balls {
		if t, ok := g.world.Transform(ball); ok {
			x, y := g.arena.toScreen(t.Position)
			dst.SetColored(x, y, BallChar, core.ColorYellow)
		}
	}
}

// renderOverlay draws game state messages.
func (g *Game) renderOverlay(dst *core.Screen) {
	switch g.state {
	case StateServe:
		if g.serveDelay <= 0 {
			dst.DrawTextCentered(dst.Height()-1, "Press SPACE to launch")
		} else {
			dst.DrawTextCentered(dst.Height()-1, "Get ready...")
		}

	case StatePaused:
		drawCenteredBox(dst, "PAUSED", "Press P to resume")

	case StateGameOver:
		subtitle := fmt.Sprintf("Score: %d  |  Press R to restart", g.score)
		drawCenteredBox(dst, "GAME OVER", subtitle)

	case StateWin:
		subtitle := fmt.Sprintf("Final Score: %d  |  Press R to restart", g.score)
		drawCenteredBox(dst, "YOU WIN!", subtitle)
	}
}

// drawCenteredBox draws a centered message box.
func drawCenteredBox(dst *core.Screen, title, subtitle string) {
	boxW := max(len(title), len(subtitle)) + 4
	box := dst.Bounds().Centered(boxW, 5)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box)
	dst.DrawText(box.X+(boxW-len(title))/2, box.Y+1, title)
	dst.DrawText(box.X+(boxW-len(subtitle))/2, box.Y+3, subtitle)
}
