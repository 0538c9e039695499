package ballz

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-ballz/internal/core"
)

// Glyphs used by the renderer.
const (
	glyphBall     = '●'
	glyphParticle = '·'
	glyphPickup   = '◆'
	glyphLauncher = '▲'
	glyphAimDot   = '•'
	glyphBlock    = '█'
	glyphBarrier  = '▒'
)

// Render draws the current game state into the provided screen buffer.
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
	g.renderBlocks(dst)
	g.renderBarriers(dst)
	g.renderAim(dst)
	g.renderLauncher(dst)
	g.renderBalls(dst)
	g.renderParticles(dst)
	g.renderOverlay(dst)
}

// logicalToScreen maps a logical play-area point onto field cells below the
// HUD.
func (g *Game) logicalToScreen(dst *core.Screen, lx, ly float64) (int, int) {
	fieldH := core.Max(1, dst.Height()-hudRows)
	sx := int(lx / g.cfg.Board.PlayWidth * float64(dst.Width()))
	sy := hudRows + int(ly/g.cfg.Board.PlayHeight*float64(fieldH))
	return sx, sy
}

// renderHUD draws the score, chain, and turn indicators with a separator.
func (g *Game) renderHUD(dst *core.Screen) {
	scoreText := fmt.Sprintf("Score: %d", g.score)
	dst.DrawText(1, 0, scoreText)

	chainText := fmt.Sprintf("Balls: %d", g.chain)
	dst.DrawTextCentered(0, chainText)

	turnText := fmt.Sprintf("Turn: %d", g.turn)
	dst.DrawText(dst.Width()-len(turnText)-1, 0, turnText)

	dst.DrawHLine(0, 1, dst.Width(), '─')
}

// renderBlocks draws each block as a filled cell rectangle with its
// strength printed in the middle. Pickups render as a single diamond.
func (g *Game) renderBlocks(dst *core.Screen) {
	for _, blk := range g.blocks {
		rect := blk.Bounds(g.cellSize)
		x0, y0 := g.logicalToScreen(dst, rect.MinX, rect.MinY)
		x1, y1 := g.logicalToScreen(dst, rect.MaxX, rect.MaxY)
		w := core.Max(1, x1-x0)
		h := core.Max(1, y1-y0)

		if blk.Kind == BlockPickup {
			cx, cy := g.logicalToScreen(dst, rect.Center().X, rect.Center().Y)
			dst.SetColored(cx, cy, glyphPickup, core.ColorBrightYellow)
			continue
		}

		color := blockColor(blk.Strength)
		for yy := y0; yy < y0+h; yy++ {
			for xx := x0; xx < x0+w; xx++ {
				dst.SetColored(xx, yy, glyphBlock, color)
			}
		}

		label := fmt.Sprintf("%d", blk.Strength)
		lx := x0 + (w-len(label))/2
		ly := y0 + h/2
		dst.DrawTextColored(lx, ly, label, core.ColorBrightWhite)
	}
}

// blockColor maps remaining strength to a heat color.
func blockColor(strength int) core.Color {
	switch {
	case strength >= 10:
		return core.ColorBrightRed
	case strength >= 6:
		return core.ColorRed
	case strength >= 3:
		return core.ColorOrange
	default:
		return core.ColorYellow
	}
}

// renderBarriers draws each barrier as a shaded square with its strength.
func (g *Game) renderBarriers(dst *core.Screen) {
	for _, bar := range g.barriers {
		rect := bar.Bounds()
		x0, y0 := g.logicalToScreen(dst, rect.MinX, rect.MinY)
		x1, y1 := g.logicalToScreen(dst, rect.MaxX, rect.MaxY)
		w := core.Max(1, x1-x0)
		h := core.Max(1, y1-y0)

		for yy := y0; yy < y0+h; yy++ {
			for xx := x0; xx < x0+w; xx++ {
				dst.SetColored(xx, yy, glyphBarrier, core.ColorBrightMagenta)
			}
		}

		label := fmt.Sprintf("%d", bar.Strength)
		lx := x0 + (w-len(label))/2
		ly := y0 + h/2
		dst.DrawTextColored(lx, ly, label, core.ColorBrightWhite)
	}
}

// renderAim draws a dotted guide line along the current aim.
func (g *Game) renderAim(dst *core.Screen) {
	if g.phase != PhaseAiming || g.aim == nil {
		return
	}

	// Sample points along the aim ray. Stop at the first block or barrier
	// so the guide does not suggest a path through solid entities.
	dir := core.Vec2{X: math.Cos(*g.aim), Y: math.Sin(*g.aim)}
	origin := core.Vec2{X: g.baseX, Y: g.baseY - g.cfg.Physics.BallRadius}
	step := g.cellSize / 2

	for i := 1; i <= 12; i++ {
		p := origin.Add(dir.Scale(step * float64(i)))
		if p.X < 0 || p.X > g.cfg.Board.PlayWidth || p.Y < 0 {
			break
		}
		if g.hitsSolid(p) {
			break
		}
		sx, sy := g.logicalToScreen(dst, p.X, p.Y)
		dst.SetColored(sx, sy, glyphAimDot, core.ColorGray)
	}
}

// hitsSolid reports whether a point lies inside any block or barrier.
func (g *Game) hitsSolid(p core.Vec2) bool {
	for _, blk := range g.blocks {
		if blk.Bounds(g.cellSize).IntersectsCircle(p, 0) {
			return true
		}
	}
	for _, bar := range g.barriers {
		if bar.Bounds().IntersectsCircle(p, 0) {
			return true
		}
	}
	return false
}

// renderLauncher draws the launcher marker at the base line.
func (g *Game) renderLauncher(dst *core.Screen) {
	sx, _ := g.logicalToScreen(dst, g.baseX, 0)
	dst.SetColored(sx, dst.Height()-1, glyphLauncher, core.ColorBrightGreen)
}

// renderBalls draws every live ball.
func (g *Game) renderBalls(dst *core.Screen) {
	for _, b := range g.balls {
		sx, sy := g.logicalToScreen(dst, b.Pos.X, b.Pos.Y)
		dst.SetColored(sx, core.Min(sy, dst.Height()-1), glyphBall, core.ColorBrightCyan)
	}
}

// renderParticles draws the cosmetic burst debris.
func (g *Game) renderParticles(dst *core.Screen) {
	for _, p := range g.particles {
		if p.Pos.Y < 0 || p.Pos.Y > g.cfg.Board.PlayHeight {
			continue
		}
		sx, sy := g.logicalToScreen(dst, p.Pos.X, p.Pos.Y)
		dst.SetColored(sx, sy, glyphParticle, p.Color)
	}
}

// renderOverlay draws the pause and game-over messages.
func (g *Game) renderOverlay(dst *core.Screen) {
	if g.paused {
		dst.DrawTextCentered(dst.Height()/2, "PAUSED")
		return
	}
	if g.phase != PhaseGameOver {
		return
	}

	lines := []string{
		"GAME OVER",
		fmt.Sprintf("Score: %d  Turns: %d", g.score, g.turn),
		"Press R to restart",
	}
	boxW := 0
	for _, l := range lines {
		if len(l) > boxW {
			boxW = len(l)
		}
	}
	boxW += 4
	boxH := len(lines) + 2
	x0 := (dst.Width() - boxW) / 2
	y0 := (dst.Height() - boxH) / 2

	dst.DrawRect(x0, y0, boxW, boxH, ' ')
	dst.DrawBox(x0, y0, boxW, boxH)
	for i, l := range lines {
		dst.DrawTextCentered(y0+1+i, l)
	}
}
