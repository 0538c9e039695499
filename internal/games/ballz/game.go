// Package ballz implements the chain-shot block breaker: a launcher fires a
// chain of balls at a chosen angle, balls bounce off walls and wear down
// grid blocks and floating barriers, and surviving blocks descend one row
// per turn until one reaches the base line.
package ballz

import (
	"math"

	"github.com/vovakirdan/tui-ballz/internal/config"
	"github.com/vovakirdan/tui-ballz/internal/core"
	"github.com/vovakirdan/tui-ballz/internal/registry"
)

// GameMode represents the game variant.
type GameMode int

const (
	ModeClassic GameMode = iota // Block reaching the base line ends the game
	ModeZen                     // Rows crossing the base line are cleared instead
)

// Phase is the turn state. The phases are mutually exclusive by
// construction; there are no separate aiming/launching flags to keep in
// sync.
type Phase int

const (
	PhaseIdle Phase = iota // Between turns, waiting for an aim
	PhaseAiming
	PhaseLaunching
	PhaseGameOver
)

// String returns a short phase name.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseAiming:
		return "aiming"
	case PhaseLaunching:
		return "launching"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Aim arc bounds in radians. Straight up is -π/2; the clamp keeps shots
// from going near-horizontal or downward.
const (
	aimMin = -math.Pi + 0.35
	aimMax = -0.35
)

// aimKeyStep is the per-tick rotation applied while a keyboard aim key is
// held.
const aimKeyStep = 0.03

// hudRows is the number of terminal rows reserved for the HUD above the
// play field.
const hudRows = 2

// Particle burst sizes.
const (
	burstHit       = 6
	burstExplosion = 18
)

// configPath stores the custom config path set via CLI.
var configPath string

// difficultyPreset stores the difficulty preset set via CLI.
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	switch preset {
	case "easy":
		difficultyPreset = config.DifficultyEasy
	case "normal":
		difficultyPreset = config.DifficultyNormal
	case "hard":
		difficultyPreset = config.DifficultyHard
	case "fixed":
		difficultyPreset = config.DifficultyFixed
	default:
		difficultyPreset = ""
	}
}

// Game is the session: it owns every entity collection and all turn-state
// scalars. Entities never hold a reference back to the session.
type Game struct {
	mode GameMode

	// Entity collections
	blocks    []*Block
	barriers  []*Barrier
	balls     []*Ball
	particles []*Particle

	// Spawn planning. The planner's generator drives all placement; the fx
	// stream only feeds cosmetic bursts so visuals can never perturb
	// placement determinism.
	spawner *SpawnPlanner
	fxRNG   *XorShift

	// Turn state
	phase       Phase
	turn        int
	score       int
	chain       int
	baseX       float64  // Launcher x, shifts to the prior chain's landing point
	aim         *float64 // Set only while aiming
	launchAngle float64
	pending     int // Balls still to spawn this turn
	launchTimer float64
	landingX    *float64 // First landing x of the current chain
	tick        uint64
	paused      bool

	// Configuration
	runtime core.RuntimeConfig
	cfg     config.BallzConfig
	diff    *config.DifficultyManager

	// Derived board geometry
	cellSize float64
	baseY    float64
	rowLimit int

	minScreenW     int
	minScreenH     int
	screenTooSmall bool

	// Events accumulated during the current step
	events []core.Event
}

// New creates a classic-mode game instance.
func New() *Game {
	return &Game{mode: ModeClassic}
}

// NewZen creates a zen-mode game instance.
func NewZen() *Game {
	return &Game{mode: ModeZen}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.mode == ModeZen {
		return "ballz_zen"
	}
	return "ballz"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.mode == ModeZen {
		return "Ballz (Zen)"
	}
	return "Ballz"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadBallz(configPath)
	if err != nil {
		cfg = config.DefaultBallzConfig()
	}
	if difficultyPreset != "" {
		config.ApplyBallzPreset(&cfg, difficultyPreset)
	}
	g.cfg = cfg
	g.diff = config.NewDifficultyManager(cfg.Difficulty)

	g.cellSize = cfg.Board.PlayWidth / float64(cfg.Board.Columns)
	g.baseY = cfg.Board.PlayHeight
	g.rowLimit = int(cfg.Board.PlayHeight/g.cellSize) - 1

	g.minScreenW = 40
	g.minScreenH = 16
	g.screenTooSmall = runtime.ScreenW < g.minScreenW || runtime.ScreenH < g.minScreenH

	seed := uint32(runtime.Seed)
	g.spawner = NewSpawnPlanner(NewXorShift(seed), cfg)
	g.fxRNG = NewXorShift(seed + 1)

	g.blocks = g.blocks[:0]
	g.barriers = g.barriers[:0]
	g.balls = g.balls[:0]
	g.particles = g.particles[:0]

	g.phase = PhaseIdle
	g.turn = 1
	g.score = 0
	g.chain = 1
	g.baseX = cfg.Board.PlayWidth / 2
	g.aim = nil
	g.pending = 0
	g.launchTimer = 0
	g.landingX = nil
	g.tick = 0
	g.paused = false
	g.events = g.events[:0]

	g.spawnRow()
	for i := 0; i < cfg.Barriers.InitialCount; i++ {
		g.spawnBarrier(false)
	}
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.events = g.events[:0]

	if g.screenTooSmall {
		return core.StepResult{State: g.State()}
	}

	// Restart is the only input honored after game over.
	if in.Has(core.ActionRestart) && g.phase == PhaseGameOver {
		g.Reset(g.runtime)
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) && g.phase != PhaseGameOver {
		g.paused = !g.paused
	}
	if g.paused || g.phase == PhaseGameOver {
		return core.StepResult{State: g.State()}
	}

	g.tick++
	dt := g.stepSize()

	g.handleInput(in)
	g.advance(dt)

	return core.StepResult{
		State:  g.State(),
		Events: append([]core.Event(nil), g.events...),
	}
}

// stepSize derives the integration step. Ticks arrive at a fixed rate, but
// a stalled terminal stretches the real time between them, so the step is
// capped at MaxStep rather than accumulated and replayed as catch-up steps.
func (g *Game) stepSize() float64 {
	dt := 1.0 / float64(core.Max(1, g.runtime.TickRate))
	if dt > g.cfg.Physics.MaxStep {
		dt = g.cfg.Physics.MaxStep
	}
	return dt
}

// handleInput applies pointer commands and keyboard aiming. Inputs that do
// not fit the current phase are silently ignored.
func (g *Game) handleInput(in core.InputFrame) {
	for _, ev := range in.Pointers {
		lx, ly := g.deviceToLogical(ev.X, ev.Y)
		switch ev.Kind {
		case core.PointerDown:
			g.pointerDown(lx, ly)
		case core.PointerMove:
			g.pointerMove(lx, ly)
		case core.PointerUp:
			g.pointerUp()
		}
	}

	// Keyboard aiming drives the same transitions as the pointer.
	if in.Has(core.ActionLeft) {
		g.rotateAim(-aimKeyStep)
	}
	if in.Has(core.ActionRight) {
		g.rotateAim(aimKeyStep)
	}
	if in.Has(core.ActionLaunch) {
		switch g.phase {
		case PhaseAiming:
			g.pointerUp()
		case PhaseIdle:
			// Launch straight up without a prior aim.
			a := -math.Pi / 2
			g.aim = &a
			g.phase = PhaseAiming
			g.pointerUp()
		}
	}
}

// deviceToLogical maps a terminal cell position onto the logical play area.
// The top hudRows rows belong to the HUD, not the field.
func (g *Game) deviceToLogical(x, y int) (float64, float64) {
	w := core.Max(1, g.runtime.ScreenW)
	h := core.Max(1, g.runtime.ScreenH-hudRows)
	lx := (float64(x) + 0.5) / float64(w) * g.cfg.Board.PlayWidth
	ly := (float64(y-hudRows) + 0.5) / float64(h) * g.cfg.Board.PlayHeight
	return lx, ly
}

// pointerDown begins aiming from the idle phase. A press in any other
// phase is a no-op.
func (g *Game) pointerDown(lx, ly float64) {
	if g.phase != PhaseIdle {
		return
	}
	a := clampAim(math.Atan2(ly-g.baseY, lx-g.baseX))
	g.aim = &a
	g.phase = PhaseAiming
}

// pointerMove updates the aim while aiming.
func (g *Game) pointerMove(lx, ly float64) {
	if g.phase != PhaseAiming || g.aim == nil {
		return
	}
	a := clampAim(math.Atan2(ly-g.baseY, lx-g.baseX))
	*g.aim = a
}

// pointerUp commits the current aim and starts the launch sequence.
func (g *Game) pointerUp() {
	if g.phase != PhaseAiming || g.aim == nil {
		return
	}
	g.launchAngle = *g.aim
	g.aim = nil
	g.phase = PhaseLaunching
	g.pending = g.chain
	g.launchTimer = g.cfg.Physics.LaunchInterval // Primed so the first ball fires without delay
	g.landingX = nil
}

// rotateAim adjusts the aim by delta radians, entering the aiming phase
// from idle with a straight-up aim.
func (g *Game) rotateAim(delta float64) {
	switch g.phase {
	case PhaseIdle:
		a := clampAim(-math.Pi/2 + delta)
		g.aim = &a
		g.phase = PhaseAiming
	case PhaseAiming:
		if g.aim != nil {
			*g.aim = clampAim(*g.aim + delta)
		}
	}
}

// clampAim bounds an angle to the upward arc. Angles below the base line
// mirror upward so a drag under the launcher still aims.
func clampAim(a float64) float64 {
	if a > 0 {
		a = -a
	}
	return core.ClampF(a, aimMin, aimMax)
}

// advance runs one simulation step: launch sequencing, ball integration and
// collision, particles, and the turn-advance check.
func (g *Game) advance(dt float64) {
	if g.phase == PhaseLaunching {
		g.advanceLaunch(dt)
	}
	g.updateBalls(dt)
	g.updateParticles(dt)

	if g.phase == PhaseLaunching && g.pending == 0 && g.allBallsResting() {
		g.finishTurn()
	}
}

// advanceLaunch spawns at most one chain ball per launch interval. Each
// spawn forces a barrier replenishment.
func (g *Game) advanceLaunch(dt float64) {
	if g.pending <= 0 {
		return
	}
	g.launchTimer += dt
	if g.launchTimer < g.cfg.Physics.LaunchInterval {
		return
	}
	g.launchTimer -= g.cfg.Physics.LaunchInterval

	x := g.baseX
	if g.landingX != nil {
		x = *g.landingX
	}

	speed := g.cfg.Physics.LaunchSpeed
	b := &Ball{
		Pos: core.Vec2{X: x, Y: g.baseY - g.cfg.Physics.BallRadius},
		Vel: core.Vec2{
			X: speed * math.Cos(g.launchAngle),
			Y: speed * math.Sin(g.launchAngle),
		},
	}
	b.PrevPos = b.Pos
	g.balls = append(g.balls, b)
	g.pending--

	g.spawnBarrier(true)
}

// updateBalls integrates every live ball and runs its collision pass.
// Balls never interact with each other.
func (g *Game) updateBalls(dt float64) {
	radius := g.cfg.Physics.BallRadius
	for _, b := range g.balls {
		if b.Resting {
			continue
		}
		if b.Update(dt, radius, g.cfg.Board.PlayWidth, g.baseY) {
			g.emit(WallBounceEvent{X: b.Pos.X, Y: b.Pos.Y})
		}
		if b.Resting {
			if g.landingX == nil {
				x := b.Pos.X
				g.landingX = &x
			}
			continue
		}
		g.collideBall(b)
	}
}

// updateParticles ages and compacts the cosmetic particle set.
func (g *Game) updateParticles(dt float64) {
	alive := g.particles[:0]
	for _, p := range g.particles {
		p.Update(dt)
		if !p.Dead() {
			alive = append(alive, p)
		}
	}
	g.particles = alive
}

// allBallsResting reports whether every spawned ball has settled.
func (g *Game) allBallsResting() bool {
	for _, b := range g.balls {
		if !b.Resting {
			return false
		}
	}
	return true
}

// finishTurn advances to the next turn once the chain has settled: the
// launcher moves to the landing point, rows descend, and a fresh row
// spawns. Calling it outside the launching phase is a no-op, so the
// transition is idempotent.
func (g *Game) finishTurn() {
	if g.phase != PhaseLaunching {
		return
	}

	if g.landingX != nil {
		g.baseX = *g.landingX
	}
	g.balls = g.balls[:0]
	g.pending = 0
	g.landingX = nil
	g.turn++

	g.advanceRows()
	if g.phase == PhaseGameOver {
		return
	}

	g.spawnRow()
	g.phase = PhaseIdle
	g.emit(TurnAdvancedEvent{Turn: g.turn})
}

// advanceRows shifts every surviving block down one row. In classic mode a
// block crossing the bottom threshold ends the game; zen mode clears such
// blocks instead. The full descent applies before the threshold check so
// the frozen game-over board is not left mid-descent.
func (g *Game) advanceRows() {
	over := false
	keep := g.blocks[:0]
	for _, blk := range g.blocks {
		blk.Row++
		if blk.Row >= g.rowLimit {
			if g.mode == ModeClassic {
				over = true
				keep = append(keep, blk)
			}
			continue // Zen: cleared at the base line
		}
		keep = append(keep, blk)
	}
	g.blocks = keep
	if over {
		g.setGameOver()
	}
}

// setGameOver freezes the simulation. Only Reset leaves this phase.
func (g *Game) setGameOver() {
	g.phase = PhaseGameOver
	g.aim = nil
	g.pending = 0
	g.emit(GameOverEvent{Turn: g.turn, Score: g.score})
}

// spawnRow asks the planner for a new top row.
func (g *Game) spawnRow() {
	g.blocks = append(g.blocks, g.spawner.PlanRow(g.turn, g.strengthScale())...)
}

// spawnBarrier inserts a planned barrier subject to the population cap.
// Unforced spawns at the cap are dropped before any RNG draw; forced
// spawns evict the oldest barrier to make room.
func (g *Game) spawnBarrier(forced bool) {
	if g.cfg.Barriers.MaxCount <= 0 {
		return
	}
	if len(g.barriers) >= g.cfg.Barriers.MaxCount {
		if !forced {
			return
		}
		g.barriers = g.barriers[1:]
	}
	g.barriers = append(g.barriers, g.spawner.PlanBarrier(g.turn, g.barriers, g.strengthScale()))
}

// strengthScale is the difficulty multiplier applied to spawn strength.
func (g *Game) strengthScale() float64 {
	return g.diff.StrengthScale(g.score, int(g.tick))
}

// burst emits a cosmetic particle burst at the given point.
func (g *Game) burst(at core.Vec2, count int, color core.Color) {
	for i := 0; i < count; i++ {
		ang := g.fxRNG.Float() * 2 * math.Pi
		spd := 40 + g.fxRNG.Float()*120
		g.particles = append(g.particles, &Particle{
			Pos:   at,
			Vel:   core.Vec2{X: math.Cos(ang) * spd, Y: math.Sin(ang) * spd},
			Life:  0.25 + g.fxRNG.Float()*0.3,
			Color: color,
		})
	}
}

// emit queues an event for this step's result.
func (g *Game) emit(ev core.Event) {
	g.events = append(g.events, ev)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Chain:    g.chain,
		Turn:     g.turn,
		GameOver: g.phase == PhaseGameOver,
		Paused:   g.paused,
	}
}

// Register the game variants with the registry.
func init() {
	registry.Register("ballz", func() registry.Game {
		return New()
	})
	registry.Register("ballz_zen", func() registry.Game {
		return NewZen()
	})
}
