package ballz

// Discrete gameplay events published with each step result. Rendering, HUD
// and audio collaborators subscribe independently; nothing here feeds back
// into the simulation.

// WallBounceEvent fires when a ball reflects off a side or top boundary.
type WallBounceEvent struct {
	X, Y float64
}

// EventName implements core.Event.
func (WallBounceEvent) EventName() string { return "wall_bounce" }

// BlockHitEvent fires when a ball strikes a standard block.
type BlockHitEvent struct {
	Col, Row int
	Strength int // Remaining strength after the hit
}

// EventName implements core.Event.
func (BlockHitEvent) EventName() string { return "block_hit" }

// BlockDestroyedEvent fires when a standard block's strength reaches zero.
type BlockDestroyedEvent struct {
	Col, Row int
}

// EventName implements core.Event.
func (BlockDestroyedEvent) EventName() string { return "block_destroyed" }

// PickupCollectedEvent fires when a pickup block is touched.
type PickupCollectedEvent struct {
	Chain int // Chain count after collection
}

// EventName implements core.Event.
func (PickupCollectedEvent) EventName() string { return "pickup_collected" }

// BarrierHitEvent fires when a ball strikes a barrier.
type BarrierHitEvent struct {
	X, Y     float64
	Strength int // Remaining strength after the hit
}

// EventName implements core.Event.
func (BarrierHitEvent) EventName() string { return "barrier_hit" }

// BarrierDestroyedEvent fires when a barrier's strength reaches zero.
type BarrierDestroyedEvent struct {
	X, Y float64
}

// EventName implements core.Event.
func (BarrierDestroyedEvent) EventName() string { return "barrier_destroyed" }

// TurnAdvancedEvent fires after a settled chain ends a turn.
type TurnAdvancedEvent struct {
	Turn int
}

// EventName implements core.Event.
func (TurnAdvancedEvent) EventName() string { return "turn_advanced" }

// GameOverEvent fires when a block row reaches the base line.
type GameOverEvent struct {
	Turn, Score int
}

// EventName implements core.Event.
func (GameOverEvent) EventName() string { return "game_over" }
