package ballz

import (
	"math"

	"github.com/vovakirdan/tui-ballz/internal/core"
)

// Snapshot contains the complete game state for replay/save support.
// Uses primitive types only for stable serialization. Float coordinates
// are carried as raw IEEE 754 bits so a restored state is bit-exact.
type Snapshot struct {
	Tick    uint64
	Mode    int // 0=Classic, 1=Zen
	Phase   string
	Turn    int
	Score   int
	Chain   int
	BaseX   uint64 // Float bits
	Pending int
	Paused  bool

	// Launch state
	Aiming      bool
	AimAngle    uint64 // Float bits, valid when Aiming
	LaunchAngle uint64 // Float bits
	LaunchTimer uint64 // Float bits
	HasLanding  bool
	LandingX    uint64 // Float bits, valid when HasLanding

	// Block states (each block is 5 ints: Col, Row, Strength, Kind, Destroyed)
	BlockCount int
	BlockData  []int

	// Barrier states (each barrier is 5 values: XBits, YBits, SizeBits,
	// Strength, Destroyed)
	BarrierCount int
	BarrierData  []uint64

	// Ball states (each ball is 7 values: XBits, YBits, VXBits, VYBits,
	// PrevXBits, PrevYBits, Resting)
	BallCount int
	BallData  []uint64

	// Generator states
	RNGState uint32
	FXState  uint32
}

// Snapshot returns the current game state as a Snapshot. Particles are
// cosmetic and excluded.
func (g *Game) Snapshot() Snapshot {
	blockData := make([]int, len(g.blocks)*5)
	for i, blk := range g.blocks {
		idx := i * 5
		blockData[idx] = blk.Col
		blockData[idx+1] = blk.Row
		blockData[idx+2] = blk.Strength
		blockData[idx+3] = int(blk.Kind)
		if blk.Destroyed {
			blockData[idx+4] = 1
		}
	}

	barrierData := make([]uint64, len(g.barriers)*5)
	for i, bar := range g.barriers {
		idx := i * 5
		barrierData[idx] = math.Float64bits(bar.Pos.X)
		barrierData[idx+1] = math.Float64bits(bar.Pos.Y)
		barrierData[idx+2] = math.Float64bits(bar.Size)
		barrierData[idx+3] = uint64(bar.Strength) //#nosec G115 -- strength is non-negative
		if bar.Destroyed {
			barrierData[idx+4] = 1
		}
	}

	ballData := make([]uint64, len(g.balls)*7)
	for i, b := range g.balls {
		idx := i * 7
		ballData[idx] = math.Float64bits(b.Pos.X)
		ballData[idx+1] = math.Float64bits(b.Pos.Y)
		ballData[idx+2] = math.Float64bits(b.Vel.X)
		ballData[idx+3] = math.Float64bits(b.Vel.Y)
		ballData[idx+4] = math.Float64bits(b.PrevPos.X)
		ballData[idx+5] = math.Float64bits(b.PrevPos.Y)
		if b.Resting {
			ballData[idx+6] = 1
		}
	}

	snap := Snapshot{
		Tick:    g.tick,
		Mode:    int(g.mode),
		Phase:   g.phase.String(),
		Turn:    g.turn,
		Score:   g.score,
		Chain:   g.chain,
		BaseX:   math.Float64bits(g.baseX),
		Pending: g.pending,
		Paused:  g.paused,

		LaunchAngle: math.Float64bits(g.launchAngle),
		LaunchTimer: math.Float64bits(g.launchTimer),

		BlockCount:   len(g.blocks),
		BlockData:    blockData,
		BarrierCount: len(g.barriers),
		BarrierData:  barrierData,
		BallCount:    len(g.balls),
		BallData:     ballData,

		RNGState: g.spawner.rng.State(),
		FXState:  g.fxRNG.State(),
	}

	if g.aim != nil {
		snap.Aiming = true
		snap.AimAngle = math.Float64bits(*g.aim)
	}
	if g.landingX != nil {
		snap.HasLanding = true
		snap.LandingX = math.Float64bits(*g.landingX)
	}

	return snap
}

// ApplySnapshot restores game state from a snapshot. Particles are not
// restored; the live set decays on its own.
func (g *Game) ApplySnapshot(snap Snapshot) {
	g.tick = snap.Tick
	g.mode = GameMode(snap.Mode)
	g.phase = parsePhase(snap.Phase)
	g.turn = snap.Turn
	g.score = snap.Score
	g.chain = snap.Chain
	g.baseX = math.Float64frombits(snap.BaseX)
	g.pending = snap.Pending
	g.paused = snap.Paused

	g.launchAngle = math.Float64frombits(snap.LaunchAngle)
	g.launchTimer = math.Float64frombits(snap.LaunchTimer)

	g.aim = nil
	if snap.Aiming {
		a := math.Float64frombits(snap.AimAngle)
		g.aim = &a
	}
	g.landingX = nil
	if snap.HasLanding {
		x := math.Float64frombits(snap.LandingX)
		g.landingX = &x
	}

	g.blocks = make([]*Block, 0, snap.BlockCount)
	for i := 0; i < snap.BlockCount; i++ {
		idx := i * 5
		if idx+4 >= len(snap.BlockData) {
			break
		}
		g.blocks = append(g.blocks, &Block{
			Col:       snap.BlockData[idx],
			Row:       snap.BlockData[idx+1],
			Strength:  snap.BlockData[idx+2],
			Kind:      BlockKind(snap.BlockData[idx+3]),
			Destroyed: snap.BlockData[idx+4] == 1,
		})
	}

	g.barriers = make([]*Barrier, 0, snap.BarrierCount)
	for i := 0; i < snap.BarrierCount; i++ {
		idx := i * 5
		if idx+4 >= len(snap.BarrierData) {
			break
		}
		g.barriers = append(g.barriers, &Barrier{
			Pos: core.Vec2{
				X: math.Float64frombits(snap.BarrierData[idx]),
				Y: math.Float64frombits(snap.BarrierData[idx+1]),
			},
			Size:      math.Float64frombits(snap.BarrierData[idx+2]),
			Strength:  int(snap.BarrierData[idx+3]), //#nosec G115 -- strength fits in int
			Destroyed: snap.BarrierData[idx+4] == 1,
		})
	}

	g.balls = make([]*Ball, 0, snap.BallCount)
	for i := 0; i < snap.BallCount; i++ {
		idx := i * 7
		if idx+6 >= len(snap.BallData) {
			break
		}
		g.balls = append(g.balls, &Ball{
			Pos: core.Vec2{
				X: math.Float64frombits(snap.BallData[idx]),
				Y: math.Float64frombits(snap.BallData[idx+1]),
			},
			Vel: core.Vec2{
				X: math.Float64frombits(snap.BallData[idx+2]),
				Y: math.Float64frombits(snap.BallData[idx+3]),
			},
			PrevPos: core.Vec2{
				X: math.Float64frombits(snap.BallData[idx+4]),
				Y: math.Float64frombits(snap.BallData[idx+5]),
			},
			Resting: snap.BallData[idx+6] == 1,
		})
	}

	g.particles = g.particles[:0]
	g.spawner.rng.state = snap.RNGState
	g.fxRNG.state = snap.FXState
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.Mode)    //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Turn)    //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score)   //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Chain)   //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Pending) //#nosec G115 -- hash computation
	h = h*31 + snap.BaseX
	h = h*31 + snap.LaunchAngle
	h = h*31 + snap.LaunchTimer
	if snap.Aiming {
		h = h*31 + snap.AimAngle + 1
	}
	if snap.HasLanding {
		h = h*31 + snap.LandingX + 1
	}
	for _, c := range snap.Phase {
		h = h*31 + uint64(c)
	}

	h = h*31 + uint64(snap.BlockCount) //#nosec G115 -- hash computation
	for _, v := range snap.BlockData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	h = h*31 + uint64(snap.BarrierCount) //#nosec G115 -- hash computation
	for _, v := range snap.BarrierData {
		h = h*31 + v
	}
	h = h*31 + uint64(snap.BallCount) //#nosec G115 -- hash computation
	for _, v := range snap.BallData {
		h = h*31 + v
	}

	h = h*31 + uint64(snap.RNGState)
	h = h*31 + uint64(snap.FXState)

	return h
}

// parsePhase is the inverse of Phase.String.
func parsePhase(s string) Phase {
	switch s {
	case "aiming":
		return PhaseAiming
	case "launching":
		return PhaseLaunching
	case "game_over":
		return PhaseGameOver
	default:
		return PhaseIdle
	}
}
