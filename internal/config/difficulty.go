package config

import "github.com/go-gl/mathgl/mgl64"

// progressors map a progression type to the fraction of the way to maximum
// difficulty, before clamping.
var progressors = map[string]func(score, ticks int, maxAt float64) float64{
	"score": func(score, _ int, maxAt float64) float64 { return float64(score) / maxAt },
	"time":  func(_, ticks int, maxAt float64) float64 { return float64(ticks) / maxAt },
}

// DifficultyManager turns score and elapsed ticks into ball speed and
// paddle width.
type DifficultyManager struct {
	scaling  ScalingConfig
	floor    float64 // Level at the start of a game
	maxAt    float64
	progress func(score, ticks int, maxAt float64) float64 // nil when static
}

// NewDifficultyManager creates a manager for cfg.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	d := &DifficultyManager{
		scaling: cfg.Scaling,
		floor:   mgl64.Clamp(cfg.InitialLevel, 0, 1),
		maxAt:   max(float64(cfg.Progression.MaxAt), 1),
	}
	if cfg.Enabled {
		d.progress = progressors[cfg.Progression.Type]
	}
	return d
}

// IsEnabled reports whether the level changes during a game.
func (d *DifficultyManager) IsEnabled() bool {
	return d.progress != nil
}

// Level returns the difficulty in [0, 1]. It rises linearly from the
// initial level to 1 as score or ticks approach max_at.
func (d *DifficultyManager) Level(score, ticks int) float64 {
	if d.progress == nil {
		return d.floor
	}
	t := mgl64.Clamp(d.progress(score, ticks, d.maxAt), 0, 1)
	return d.floor + t*(1-d.floor)
}

// Speed scales baseSpeed by up to 1 + speed_multiplier.
func (d *DifficultyManager) Speed(baseSpeed float64, score, ticks int) float64 {
	return baseSpeed * (1 + d.Level(score, ticks)*d.scaling.SpeedMultiplier)
}

// PaddleWidth narrows baseWidth by up to paddle_shrink cells, stopping at
// minWidth.
func (d *DifficultyManager) PaddleWidth(baseWidth, minWidth float64, score, ticks int) float64 {
	return max(baseWidth-d.Level(score, ticks)*d.scaling.PaddleShrink, minWidth)
}
