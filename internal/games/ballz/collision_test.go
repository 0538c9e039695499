package ballz

import (
	"testing"

	"github.com/vovakirdan/tui-ballz/internal/core"
)

func newTestGame(t *testing.T, seed int64) *Game {
	t.Helper()
	g := New()
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: seed})
	return g
}

// clearField empties the board and disables barrier spawning so tests can
// place entities by hand.
func clearField(g *Game) {
	g.blocks = g.blocks[:0]
	g.barriers = g.barriers[:0]
	g.cfg.Barriers.MaxCount = 0
}

func TestCollideReflectsVerticallyFromAbove(t *testing.T) {
	g := newTestGame(t, 1)
	clearField(g)

	// Block at col 3, row 3 occupies 180..240 on both axes.
	g.blocks = append(g.blocks, &Block{Col: 3, Row: 3, Strength: 5, Kind: BlockStandard})

	b := &Ball{
		Pos:     core.Vec2{X: 210, Y: 176},
		PrevPos: core.Vec2{X: 210, Y: 168},
		Vel:     core.Vec2{X: 0, Y: 100},
	}
	g.collideBall(b)

	if b.Vel.Y != -100 {
		t.Errorf("Vertical velocity not inverted: got %v", b.Vel.Y)
	}
	if b.Vel.X != 0 {
		t.Errorf("Horizontal velocity changed: got %v", b.Vel.X)
	}
	if g.blocks[0].Strength != 4 {
		t.Errorf("Strength after hit: got %d, want 4", g.blocks[0].Strength)
	}
	if g.score != g.cfg.Scoring.HitAward {
		t.Errorf("Score after hit: got %d, want %d", g.score, g.cfg.Scoring.HitAward)
	}
}

func TestCollideReflectsHorizontallyFromSide(t *testing.T) {
	g := newTestGame(t, 1)
	clearField(g)
	g.blocks = append(g.blocks, &Block{Col: 3, Row: 3, Strength: 5, Kind: BlockStandard})

	// Pre-update center vertically inside the block's span forces a
	// vertical-face resolution.
	b := &Ball{
		Pos:     core.Vec2{X: 176, Y: 210},
		PrevPos: core.Vec2{X: 168, Y: 210},
		Vel:     core.Vec2{X: 100, Y: 0},
	}
	g.collideBall(b)

	if b.Vel.X != -100 {
		t.Errorf("Horizontal velocity not inverted: got %v", b.Vel.X)
	}
	if b.Vel.Y != 0 {
		t.Errorf("Vertical velocity changed: got %v", b.Vel.Y)
	}
}

func TestCollideMissesOutsideRadius(t *testing.T) {
	g := newTestGame(t, 1)
	clearField(g)
	g.blocks = append(g.blocks, &Block{Col: 3, Row: 3, Strength: 5, Kind: BlockStandard})

	// Closest point distance is 8, one past the ball radius of 7.
	b := &Ball{
		Pos:     core.Vec2{X: 210, Y: 172},
		PrevPos: core.Vec2{X: 210, Y: 164},
		Vel:     core.Vec2{X: 0, Y: 100},
	}
	g.collideBall(b)

	if b.Vel.Y != 100 {
		t.Errorf("Velocity changed on a miss: got %v", b.Vel.Y)
	}
	if g.blocks[0].Strength != 5 {
		t.Errorf("Strength changed on a miss: got %d", g.blocks[0].Strength)
	}
	if g.score != 0 {
		t.Errorf("Score changed on a miss: got %d", g.score)
	}
}

func TestCollideDepletesStrengthExactly(t *testing.T) {
	g := newTestGame(t, 1)
	clearField(g)
	g.blocks = append(g.blocks, &Block{Col: 3, Row: 3, Strength: 3, Kind: BlockStandard})

	hit := func() {
		b := &Ball{
			Pos:     core.Vec2{X: 210, Y: 176},
			PrevPos: core.Vec2{X: 210, Y: 168},
			Vel:     core.Vec2{X: 0, Y: 100},
		}
		g.collideBall(b)
	}

	hit()
	hit()
	if len(g.blocks) != 1 || g.blocks[0].Strength != 1 {
		t.Fatalf("After 2 hits: blocks=%d strength=%d, want 1 block at strength 1",
			len(g.blocks), g.blocks[0].Strength)
	}

	hit()
	if len(g.blocks) != 0 {
		t.Errorf("Block survived its final hit: %d blocks remain", len(g.blocks))
	}
	if g.score != 3*g.cfg.Scoring.HitAward {
		t.Errorf("Score: got %d, want %d", g.score, 3*g.cfg.Scoring.HitAward)
	}
}

func TestCollidePickupCollectedOnContact(t *testing.T) {
	g := newTestGame(t, 1)
	clearField(g)
	// Strength value on a pickup is irrelevant; contact collects it.
	g.blocks = append(g.blocks, &Block{Col: 3, Row: 3, Strength: 99, Kind: BlockPickup})

	b := &Ball{
		Pos:     core.Vec2{X: 210, Y: 176},
		PrevPos: core.Vec2{X: 210, Y: 168},
		Vel:     core.Vec2{X: 0, Y: 100},
	}
	g.collideBall(b)

	if len(g.blocks) != 0 {
		t.Error("Pickup not removed on contact")
	}
	if g.chain != 2 {
		t.Errorf("Chain after pickup: got %d, want 2", g.chain)
	}
	if g.score != g.cfg.Scoring.PickupAward {
		t.Errorf("Score after pickup: got %d, want %d", g.score, g.cfg.Scoring.PickupAward)
	}
	if b.Vel.Y != -100 {
		t.Errorf("Pickup contact did not reflect: got vy %v", b.Vel.Y)
	}
}

func TestCollideDestroyedEntitySkipped(t *testing.T) {
	g := newTestGame(t, 1)
	clearField(g)
	g.blocks = append(g.blocks, &Block{Col: 3, Row: 3, Strength: 5, Kind: BlockStandard, Destroyed: true})

	b := &Ball{
		Pos:     core.Vec2{X: 210, Y: 176},
		PrevPos: core.Vec2{X: 210, Y: 168},
		Vel:     core.Vec2{X: 0, Y: 100},
	}
	g.events = g.events[:0]
	g.collideBall(b)

	if b.Vel.Y != 100 {
		t.Error("Destroyed block still collided")
	}
	if len(g.events) != 0 {
		t.Errorf("Destroyed block emitted %d events", len(g.events))
	}
	if len(g.blocks) != 0 {
		t.Error("Destroyed block not pruned by the pass")
	}
}

func TestCollideBarrierReplenishes(t *testing.T) {
	g := newTestGame(t, 1)
	g.blocks = g.blocks[:0]
	g.barriers = g.barriers[:0]
	g.barriers = append(g.barriers, &Barrier{
		Pos:      core.Vec2{X: 210, Y: 210},
		Size:     g.cfg.Barriers.Size,
		Strength: 1,
	})

	b := &Ball{
		Pos:     core.Vec2{X: 210, Y: 191},
		PrevPos: core.Vec2{X: 210, Y: 183},
		Vel:     core.Vec2{X: 0, Y: 100},
	}
	g.events = g.events[:0]
	g.collideBall(b)

	if len(g.barriers) != 1 {
		t.Fatalf("Barriers after destroy+replenish: got %d, want 1", len(g.barriers))
	}
	if g.barriers[0].Strength < 2 {
		t.Errorf("Replacement barrier strength %d < 2", g.barriers[0].Strength)
	}

	destroyed := false
	for _, ev := range g.events {
		if ev.EventName() == "barrier_destroyed" {
			destroyed = true
		}
	}
	if !destroyed {
		t.Error("No barrier_destroyed event emitted")
	}
}

func TestCollideEmitsEvents(t *testing.T) {
	g := newTestGame(t, 1)
	clearField(g)
	g.blocks = append(g.blocks, &Block{Col: 3, Row: 3, Strength: 1, Kind: BlockStandard})

	b := &Ball{
		Pos:     core.Vec2{X: 210, Y: 176},
		PrevPos: core.Vec2{X: 210, Y: 168},
		Vel:     core.Vec2{X: 0, Y: 100},
	}
	g.events = g.events[:0]
	g.collideBall(b)

	names := make(map[string]bool)
	for _, ev := range g.events {
		names[ev.EventName()] = true
	}
	if !names["block_hit"] {
		t.Error("Missing block_hit event")
	}
	if !names["block_destroyed"] {
		t.Error("Missing block_destroyed event")
	}
}
