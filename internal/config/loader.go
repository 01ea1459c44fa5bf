package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

const breakoutFile = "breakout.yaml"

// LoadBreakout loads the breakout configuration.
// Search order: customPath -> ~/.breakout/breakout.yaml ->
// ./configs/breakout.yaml -> embedded default. Files only need to set the
// keys they change; everything else keeps its default value.
func LoadBreakout(customPath string) (BreakoutConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultBreakoutConfig(), fmt.Errorf("config: cannot read %s: %w", customPath, err)
		}
		cfg, err := decodeBreakout(customPath, data)
		if err != nil {
			return DefaultBreakoutConfig(), err
		}
		return cfg, nil
	}

	// Try user config directory, then the local configs directory
	for _, path := range []string{userConfigPath(breakoutFile), filepath.Join("configs", breakoutFile)} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := decodeBreakout(path, data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := decodeBreakout(breakoutFile, defaultBreakoutYAML)
	if err != nil {
		return DefaultBreakoutConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// decodeBreakout parses data over the defaults, as TOML when the path ends
// in .toml and as YAML otherwise.
func decodeBreakout(path string, data []byte) (BreakoutConfig, error) {
	cfg := DefaultBreakoutConfig()

	var err error
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		err = toml.Unmarshal(data, &cfg)
	} else {
		err = yaml.Unmarshal(data, &cfg)
	}
	if err != nil {
		return cfg, fmt.Errorf("config: cannot parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects values the game cannot run with.
func (c BreakoutConfig) Validate() error {
	switch {
	case c.Physics.BallSpeed <= 0:
		return fmt.Errorf("physics.ball_speed must be positive, got %v", c.Physics.BallSpeed)
	case c.Physics.MaxBallSpeed < c.Physics.BallSpeed:
		return fmt.Errorf("physics.max_ball_speed %v is below ball_speed %v", c.Physics.MaxBallSpeed, c.Physics.BallSpeed)
	case c.Physics.BallDiameter <= 0:
		return fmt.Errorf("physics.ball_diameter must be positive, got %v", c.Physics.BallDiameter)
	case c.Physics.MovingPolicy != "elastic" && c.Physics.MovingPolicy != "fatal":
		return fmt.Errorf("physics.moving_policy must be elastic or fatal, got %q", c.Physics.MovingPolicy)
	case c.Paddle.Width <= 0 || c.Paddle.Height <= 0:
		return fmt.Errorf("paddle size must be positive, got %vx%v", c.Paddle.Width, c.Paddle.Height)
	case c.Arena.BrickHeight <= 0:
		return fmt.Errorf("arena.brick_height must be positive, got %d", c.Arena.BrickHeight)
	case c.Gameplay.Lives <= 0 || c.Gameplay.Balls <= 0:
		return fmt.Errorf("gameplay.lives and gameplay.balls must be positive")
	case c.PowerUps.DropChance < 0 || c.PowerUps.DropChance > 100:
		return fmt.Errorf("powerups.drop_chance must be within 0-100, got %d", c.PowerUps.DropChance)
	}
	return nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".breakout", filename)
}

// ApplyBreakoutPreset modifies the config based on a difficulty preset.
func ApplyBreakoutPreset(cfg *BreakoutConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust gameplay based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.Lives = 5
		cfg.Paddle.Width = 12
		cfg.Physics.BallSpeed = 20
	case DifficultyHard:
		cfg.Gameplay.Lives = 2
		cfg.Paddle.Width = 7
		cfg.Physics.BallSpeed = 32
	}
}
