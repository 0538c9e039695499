package ballz

import (
	"math"

	"github.com/vovakirdan/tui-ballz/internal/config"
	"github.com/vovakirdan/tui-ballz/internal/core"
)

// SpawnPlanner decides block and barrier placement. All randomness comes
// from the single seeded generator, so a seed fully determines every
// placement the planner will ever make.
type SpawnPlanner struct {
	rng *XorShift
	cfg config.BallzConfig
}

// NewSpawnPlanner creates a planner over the given generator and config.
func NewSpawnPlanner(rng *XorShift, cfg config.BallzConfig) *SpawnPlanner {
	return &SpawnPlanner{rng: rng, cfg: cfg}
}

// PlanRow generates the blocks for a fresh top row on the given turn.
// Between min(3, columns) and max(3, floor(columns*0.85)) distinct columns
// get a standard block; one additional RNG draw above the pickup threshold
// places a pickup in a still-free column. Strength scales with the turn
// number and the difficulty factor (1.0 by default).
func (p *SpawnPlanner) PlanRow(turn int, scale float64) []*Block {
	cols := p.cfg.Board.Columns
	lo := core.Min(3, cols)
	hi := core.Max(3, int(float64(cols)*0.85))
	count := lo + p.rng.Intn(hi-lo+1)

	free := make([]int, cols)
	for i := range free {
		free[i] = i
	}

	blocks := make([]*Block, 0, count+1)
	for i := 0; i < count && len(free) > 0; i++ {
		idx := p.rng.Intn(len(free))
		col := free[idx]
		free = append(free[:idx], free[idx+1:]...)
		blocks = append(blocks, &Block{
			Col:      col,
			Row:      0,
			Strength: blockStrength(turn, p.rng.Float(), scale),
			Kind:     BlockStandard,
		})
	}

	if p.rng.Float() > p.cfg.Blocks.PickupThreshold && len(free) > 0 {
		idx := p.rng.Intn(len(free))
		blocks = append(blocks, &Block{
			Col:      free[idx],
			Row:      0,
			Strength: 1,
			Kind:     BlockPickup,
		})
	}

	return blocks
}

// blockStrength is max(1, round(turn * (0.5 + draw)) ), scaled by the
// difficulty factor.
func blockStrength(turn int, draw, scale float64) int {
	s := int(math.Round(float64(turn) * (0.5 + draw) * scale))
	if s < 1 {
		return 1
	}
	return s
}

// PlanBarrier picks a position for a new barrier inside padded bounds in
// the upper portion of the play area, retrying a bounded number of times
// when the candidate overlaps an existing barrier. The last candidate is
// accepted even if it still overlaps after the attempt budget runs out.
func (p *SpawnPlanner) PlanBarrier(turn int, existing []*Barrier, scale float64) *Barrier {
	bc := p.cfg.Barriers
	pad := bc.Size/2 + bc.Margin
	spanX := p.cfg.Board.PlayWidth - 2*pad
	spanY := p.cfg.Board.PlayHeight*bc.HeightFraction - 2*pad

	var pos core.Vec2
	for attempt := 0; attempt < bc.PlaceAttempts; attempt++ {
		pos = core.Vec2{
			X: pad + p.rng.Float()*spanX,
			Y: bc.TopOffset + pad + p.rng.Float()*spanY,
		}
		if !overlapsAny(pos, existing, bc.Size+bc.Margin) {
			break
		}
	}

	return &Barrier{
		Pos:      pos,
		Size:     bc.Size,
		Strength: barrierStrength(turn, p.rng.Float(), scale),
	}
}

// barrierStrength is max(2, round((turn+2) * (0.6 + draw))), scaled by the
// difficulty factor.
func barrierStrength(turn int, draw, scale float64) int {
	s := int(math.Round(float64(turn+2) * (0.6 + draw) * scale))
	if s < 2 {
		return 2
	}
	return s
}

// overlapsAny reports whether pos sits closer than minDist to any existing
// barrier center (squared-distance test).
func overlapsAny(pos core.Vec2, existing []*Barrier, minDist float64) bool {
	for _, b := range existing {
		if b.Pos.Sub(pos).LenSq() < minDist*minDist {
			return true
		}
	}
	return false
}
