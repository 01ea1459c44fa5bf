// Package config loads the breakout game configuration from YAML or TOML,
// applies difficulty presets and computes difficulty progression.
package config

// BreakoutConfig contains all configuration for the breakout game.
// Distances are in screen cells, speeds in cells per second, angles in
// radians and durations in ticks.
type BreakoutConfig struct {
	Physics    BreakoutPhysics  `yaml:"physics" toml:"physics"`
	Paddle     BreakoutPaddle   `yaml:"paddle" toml:"paddle"`
	Arena      BreakoutArena    `yaml:"arena" toml:"arena"`
	Gameplay   BreakoutGameplay `yaml:"gameplay" toml:"gameplay"`
	PowerUps   PowerUpConfig    `yaml:"powerups" toml:"powerups"`
	Difficulty DifficultyConfig `yaml:"difficulty" toml:"difficulty"`
}

// BreakoutPhysics tunes the collision engine.
type BreakoutPhysics struct {
	BallSpeed       float64 `yaml:"ball_speed" toml:"ball_speed"`
	MaxBallSpeed    float64 `yaml:"max_ball_speed" toml:"max_ball_speed"`
	BallDiameter    float64 `yaml:"ball_diameter" toml:"ball_diameter"`
	PaddleSpeed     float64 `yaml:"paddle_speed" toml:"paddle_speed"`
	PaddleCurvature float64 `yaml:"paddle_curvature" toml:"paddle_curvature"`
	MovingPolicy    string  `yaml:"moving_policy" toml:"moving_policy"` // "elastic" or "fatal"
	Bounciness      Bounce  `yaml:"bounciness" toml:"bounciness"`
}

// Bounce holds the bounciness of each body kind. The two values of a
// colliding pair multiply.
type Bounce struct {
	Ball   float64 `yaml:"ball" toml:"ball"`
	Paddle float64 `yaml:"paddle" toml:"paddle"`
	Wall   float64 `yaml:"wall" toml:"wall"`
	Brick  float64 `yaml:"brick" toml:"brick"`
}

// BreakoutPaddle defines the paddle size and placement.
type BreakoutPaddle struct {
	Width  float64 `yaml:"width" toml:"width"`
	Height float64 `yaml:"height" toml:"height"`
	Lift   int     `yaml:"lift" toml:"lift"` // Rows between the bottom edge and the paddle
}

// BreakoutArena defines the brick area layout.
type BreakoutArena struct {
	BrickHeight int `yaml:"brick_height" toml:"brick_height"`
	TopMargin   int `yaml:"top_margin" toml:"top_margin"` // Empty rows between the top wall and the bricks
	MinWidth    int `yaml:"min_width" toml:"min_width"`
	MinHeight   int `yaml:"min_height" toml:"min_height"`
}

// BreakoutGameplay defines rules outside the physics.
type BreakoutGameplay struct {
	Lives          int     `yaml:"lives" toml:"lives"`
	Balls          int     `yaml:"balls" toml:"balls"`             // Balls launched per serve
	ServeDelay     int     `yaml:"serve_delay" toml:"serve_delay"` // Ticks before a serve is allowed after a miss
	EndlessSpeedUp float64 `yaml:"endless_speed_up" toml:"endless_speed_up"`
}

// PowerUpConfig defines power-up drops and effects.
type PowerUpConfig struct {
	DropChance     int            `yaml:"drop_chance" toml:"drop_chance"` // Percent per destroyed brick
	FallSpeed      float64        `yaml:"fall_speed" toml:"fall_speed"`
	Duration       int            `yaml:"duration" toml:"duration"`
	WidenAmount    float64        `yaml:"widen_amount" toml:"widen_amount"`
	ShrinkAmount   float64        `yaml:"shrink_amount" toml:"shrink_amount"`
	MinPaddleWidth float64        `yaml:"min_paddle_width" toml:"min_paddle_width"`
	MaxPaddleWidth float64        `yaml:"max_paddle_width" toml:"max_paddle_width"`
	SpeedFactor    float64        `yaml:"speed_factor" toml:"speed_factor"`
	MultiballCount int            `yaml:"multiball_count" toml:"multiball_count"`
	Weights        PowerUpWeights `yaml:"weights" toml:"weights"`
}

// PowerUpWeights are relative drop weights; higher is more common.
type PowerUpWeights struct {
	Widen     int `yaml:"widen" toml:"widen"`
	Shrink    int `yaml:"shrink" toml:"shrink"`
	Multiball int `yaml:"multiball" toml:"multiball"`
	SpeedUp   int `yaml:"speed_up" toml:"speed_up"`
	SlowDown  int `yaml:"slow_down" toml:"slow_down"`
	ExtraLife int `yaml:"extra_life" toml:"extra_life"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled" toml:"enabled"`
	InitialLevel float64           `yaml:"initial_level" toml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression" toml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling" toml:"scaling"`
}

// ProgressionConfig defines how difficulty increases.
type ProgressionConfig struct {
	Type  string `yaml:"type" toml:"type"`     // "score", "time", or "none"
	MaxAt int    `yaml:"max_at" toml:"max_at"` // Score or ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier" toml:"speed_multiplier"` // Added to ball speed factor at max difficulty
	PaddleShrink    float64 `yaml:"paddle_shrink" toml:"paddle_shrink"`       // Cells removed from the paddle at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset validates a preset name. An empty name means no preset.
func ParsePreset(name string) (DifficultyPreset, bool) {
	switch p := DifficultyPreset(name); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, true
	default:
		return "", false
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}
