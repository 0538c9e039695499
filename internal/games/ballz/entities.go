package ballz

import "github.com/vovakirdan/tui-ballz/internal/core"

// BlockKind distinguishes standard blocks from pickups.
type BlockKind int

const (
	BlockStandard BlockKind = iota
	BlockPickup             // Collected on contact, grows the chain
)

// Block is a grid-addressed destructible. Its position is derived from its
// column and row; only the grid address is stored.
type Block struct {
	Col       int
	Row       int
	Strength  int
	Kind      BlockKind
	Destroyed bool
}

// Bounds returns the block's rectangle for the given cell size.
func (b *Block) Bounds(cell float64) core.RectF {
	return core.NewRectF(float64(b.Col)*cell, float64(b.Row)*cell, cell, cell)
}

// Barrier is a freely-positioned destructible, not locked to the grid.
// Barriers are stored oldest-first; eviction at the population cap removes
// the head of the slice.
type Barrier struct {
	Pos       core.Vec2 // Center
	Size      float64
	Strength  int
	Destroyed bool
}

// Bounds returns the barrier's rectangle.
func (b *Barrier) Bounds() core.RectF {
	half := b.Size / 2
	return core.RectF{
		MinX: b.Pos.X - half,
		MinY: b.Pos.Y - half,
		MaxX: b.Pos.X + half,
		MaxY: b.Pos.Y + half,
	}
}

// Ball is a transient projectile. PrevPos holds the center before the last
// integration step; the collision resolver uses it to pick the reflection
// axis.
type Ball struct {
	Pos     core.Vec2
	Vel     core.Vec2
	PrevPos core.Vec2
	Resting bool
}

// Update integrates one step and reflects off the side and top boundaries.
// A ball moving downward whose lower edge reaches the base line comes to
// rest there. Returns true if a wall bounce occurred this step.
func (b *Ball) Update(dt, radius, playW, baseY float64) bool {
	if b.Resting {
		return false
	}

	b.PrevPos = b.Pos
	b.Pos = b.Pos.Add(b.Vel.Scale(dt))

	bounced := false
	if b.Pos.X-radius < 0 {
		b.Pos.X = radius
		b.Vel.X = -b.Vel.X
		bounced = true
	} else if b.Pos.X+radius > playW {
		b.Pos.X = playW - radius
		b.Vel.X = -b.Vel.X
		bounced = true
	}
	if b.Pos.Y-radius < 0 {
		b.Pos.Y = radius
		b.Vel.Y = -b.Vel.Y
		bounced = true
	}

	if b.Vel.Y > 0 && b.Pos.Y+radius >= baseY {
		b.Resting = true
		b.Vel = core.Vec2{}
		b.Pos.Y = baseY - radius
	}

	return bounced
}

// Particle is a purely cosmetic transient. Gameplay logic never reads it.
type Particle struct {
	Pos   core.Vec2
	Vel   core.Vec2
	Life  float64 // Seconds remaining
	Color core.Color
}

// particleGravity pulls bursts downward so they read as debris.
const particleGravity = 260.0

// Update integrates the particle and burns lifetime.
func (p *Particle) Update(dt float64) {
	p.Vel.Y += particleGravity * dt
	p.Pos = p.Pos.Add(p.Vel.Scale(dt))
	p.Life -= dt
}

// Dead reports whether the particle should be removed.
func (p *Particle) Dead() bool {
	return p.Life <= 0
}
