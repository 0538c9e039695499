// Package config provides YAML-based game configuration loading and
// difficulty management for the ballz platform.
package config

// BallzConfig contains all configuration for the ballz game.
type BallzConfig struct {
	Board      BallzBoard       `yaml:"board"`
	Physics    BallzPhysics     `yaml:"physics"`
	Blocks     BallzBlocks      `yaml:"blocks"`
	Barriers   BallzBarriers    `yaml:"barriers"`
	Scoring    BallzScoring     `yaml:"scoring"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// BallzBoard defines the logical play-area geometry. Pointer input arrives
// in terminal cells and is mapped onto this fixed coordinate space.
type BallzBoard struct {
	Columns    int     `yaml:"columns"`
	PlayWidth  float64 `yaml:"play_width"`
	PlayHeight float64 `yaml:"play_height"`
}

// BallzPhysics defines ball integration parameters.
type BallzPhysics struct {
	BallRadius     float64 `yaml:"ball_radius"`
	LaunchSpeed    float64 `yaml:"launch_speed"`
	LaunchInterval float64 `yaml:"launch_interval"` // Seconds between chain balls
	MaxStep        float64 `yaml:"max_step"`        // Upper bound on one integration step
}

// BallzBlocks defines grid block spawn parameters.
type BallzBlocks struct {
	// PickupThreshold is the RNG draw a row spawn must exceed to also
	// place a pickup block in a free column.
	PickupThreshold float64 `yaml:"pickup_threshold"`
}

// BallzBarriers defines floating barrier spawn parameters.
type BallzBarriers struct {
	Size           float64 `yaml:"size"`
	Margin         float64 `yaml:"margin"`
	TopOffset      float64 `yaml:"top_offset"`
	HeightFraction float64 `yaml:"height_fraction"` // Upper portion of play height usable
	InitialCount   int     `yaml:"initial_count"`
	MaxCount       int     `yaml:"max_count"`
	PlaceAttempts  int     `yaml:"place_attempts"`
}

// BallzScoring defines score awards.
type BallzScoring struct {
	HitAward    int `yaml:"hit_award"`
	PickupAward int `yaml:"pickup_award"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	// StrengthMultiplier is added to the block/barrier strength scale at
	// max difficulty. At level 0 the base spawn formulas apply unchanged.
	StrengthMultiplier float64 `yaml:"strength_multiplier"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
