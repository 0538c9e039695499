package config

import (
	_ "embed"
)

//go:embed defaults/ballz.yaml
var defaultBallzYAML []byte

// DefaultBallzConfig returns the default ballz configuration.
func DefaultBallzConfig() BallzConfig {
	return BallzConfig{
		Board: BallzBoard{
			Columns:    7,
			PlayWidth:  420,
			PlayHeight: 600,
		},
		Physics: BallzPhysics{
			BallRadius:     7,
			LaunchSpeed:    520,
			LaunchInterval: 0.1,
			MaxStep:        0.033,
		},
		Blocks: BallzBlocks{
			PickupThreshold: 0.65,
		},
		Barriers: BallzBarriers{
			Size:           26,
			Margin:         14,
			TopOffset:      40,
			HeightFraction: 0.6,
			InitialCount:   3,
			MaxCount:       6,
			PlaceAttempts:  12,
		},
		Scoring: BallzScoring{
			HitAward:    10,
			PickupAward: 25,
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "time",
				MaxAt: 36000, // 10 minutes at 60 ticks/sec
			},
			Scaling: ScalingConfig{
				StrengthMultiplier: 0.5,
			},
		},
	}
}
