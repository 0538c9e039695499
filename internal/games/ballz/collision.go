package ballz

import "github.com/vovakirdan/tui-ballz/internal/core"

// reflectAxis selects which velocity component a hit inverts.
type reflectAxis int

const (
	reflectY reflectAxis = iota // Horizontal face: invert vertical velocity
	reflectX                    // Vertical face: invert horizontal velocity
)

// resolveAxis disambiguates the collision face using the ball's pre-update
// center: a center that was fully above or below the rectangle's vertical
// span must have entered through a horizontal face.
func resolveAxis(prev core.Vec2, r core.RectF) reflectAxis {
	if prev.Y <= r.MinY || prev.Y >= r.MaxY {
		return reflectY
	}
	return reflectX
}

// reflect applies the bounce for the given axis.
func reflect(b *Ball, axis reflectAxis) {
	switch axis {
	case reflectY:
		b.Vel.Y = -b.Vel.Y
	case reflectX:
		b.Vel.X = -b.Vel.X
	}
}

// collideBall runs one ball's collision pass over every live block and
// barrier. Simultaneous hits resolve in a fixed order: blocks in slice
// order, then barriers in slice order. Strength changes apply immediately,
// but destroyed entities stay in the collections until the compaction at
// the end of the pass, so this ball sees an entity it just destroyed
// exactly once. Barrier destructions queue forced replenishment spawns,
// applied after compaction.
func (g *Game) collideBall(b *Ball) {
	radius := g.cfg.Physics.BallRadius
	replenish := 0

	for _, blk := range g.blocks {
		if blk.Destroyed {
			continue
		}
		rect := blk.Bounds(g.cellSize)
		if !rect.IntersectsCircle(b.Pos, radius) {
			continue
		}
		contact := rect.ClosestPoint(b.Pos)
		reflect(b, resolveAxis(b.PrevPos, rect))

		if blk.Kind == BlockPickup {
			blk.Destroyed = true
			g.chain++
			g.score += g.cfg.Scoring.PickupAward
			g.burst(contact, burstExplosion, core.ColorBrightYellow)
			g.emit(PickupCollectedEvent{Chain: g.chain})
			continue
		}

		blk.Strength--
		g.score += g.cfg.Scoring.HitAward
		g.burst(contact, burstHit, core.ColorBrightCyan)
		g.emit(BlockHitEvent{Col: blk.Col, Row: blk.Row, Strength: blk.Strength})
		if blk.Strength <= 0 {
			blk.Destroyed = true
			g.burst(contact, burstExplosion, core.ColorOrange)
			g.emit(BlockDestroyedEvent{Col: blk.Col, Row: blk.Row})
		}
	}

	for _, bar := range g.barriers {
		if bar.Destroyed {
			continue
		}
		rect := bar.Bounds()
		if !rect.IntersectsCircle(b.Pos, radius) {
			continue
		}
		contact := rect.ClosestPoint(b.Pos)
		reflect(b, resolveAxis(b.PrevPos, rect))

		bar.Strength--
		g.score += g.cfg.Scoring.HitAward
		g.burst(contact, burstHit, core.ColorBrightMagenta)
		g.emit(BarrierHitEvent{X: bar.Pos.X, Y: bar.Pos.Y, Strength: bar.Strength})
		if bar.Strength <= 0 {
			bar.Destroyed = true
			g.burst(contact, burstExplosion, core.ColorBrightRed)
			g.emit(BarrierDestroyedEvent{X: bar.Pos.X, Y: bar.Pos.Y})
			replenish++
		}
	}

	g.pruneDestroyed()
	for i := 0; i < replenish; i++ {
		g.spawnBarrier(true)
	}
}

// pruneDestroyed compacts the block and barrier collections in place,
// dropping entities marked destroyed during the pass.
func (g *Game) pruneDestroyed() {
	blocks := g.blocks[:0]
	for _, blk := range g.blocks {
		if !blk.Destroyed {
			blocks = append(blocks, blk)
		}
	}
	g.blocks = blocks

	barriers := g.barriers[:0]
	for _, bar := range g.barriers {
		if !bar.Destroyed {
			barriers = append(barriers, bar)
		}
	}
	g.barriers = barriers
}
