package config

import (
	_ "embed"
	"math"
)

//go:embed defaults/breakout.yaml
var defaultBreakoutYAML []byte

// DefaultBreakoutConfig returns the built-in configuration. It matches the
// embedded defaults/breakout.yaml.
func DefaultBreakoutConfig() BreakoutConfig {
	return BreakoutConfig{
		Physics: BreakoutPhysics{
			BallSpeed:       24,
			MaxBallSpeed:    40,
			BallDiameter:    1,
			PaddleSpeed:     120,
			PaddleCurvature: math.Pi / 3,
			MovingPolicy:    "elastic",
			Bounciness: Bounce{
				Ball:   1,
				Paddle: 1,
				Wall:   1,
				Brick:  1,
			},
		},
		Paddle: BreakoutPaddle{
			Width:  9,
			Height: 1,
			Lift:   2,
		},
		Arena: BreakoutArena{
			BrickHeight: 1,
			TopMargin:   1,
			MinWidth:    30,
			MinHeight:   15,
		},
		Gameplay: BreakoutGameplay{
			Lives:          3,
			Balls:          2,
			ServeDelay:     60,
			EndlessSpeedUp: 1.5,
		},
		PowerUps: PowerUpConfig{
			DropChance:     18,
			FallSpeed:      8,
			Duration:       720, // 12 seconds
			WidenAmount:    4,
			ShrinkAmount:   3,
			MinPaddleWidth: 4,
			MaxPaddleWidth: 16,
			SpeedFactor:    1.5,
			MultiballCount: 2,
			Weights: PowerUpWeights{
				Widen:     25,
				Shrink:    10,
				Multiball: 20,
				SpeedUp:   10,
				SlowDown:  15,
				ExtraLife: 5,
			},
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 1000,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.5,
				PaddleShrink:    2,
			},
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultBreakoutYAML
}
