package flappy

import (
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/registry"
)

// Mode identifiers.
const (
	ModeClassic = "flappy"
	ModeRush    = "flappy_rush"
)

// NewClassic creates the canonical mode with a fixed obstacle speed.
func NewClassic(cfg config.FlappyConfig) *Game {
	cfg.Difficulty.Enabled = false
	return New(ModeClassic, "Flappy Bird", cfg)
}

// NewRush creates the mode whose obstacle speed grows with progress.
func NewRush(cfg config.FlappyConfig) *Game {
	cfg.Difficulty.Enabled = true
	if cfg.Difficulty.Progression.Type == "" || cfg.Difficulty.Progression.Type == "none" {
		cfg.Difficulty.Progression.Type = "score"
	}
	return New(ModeRush, "Flappy Rush", cfg)
}

func init() {
	registry.Register(ModeClassic, func(cfg config.FlappyConfig) registry.Game {
		return NewClassic(cfg)
	})
	registry.Register(ModeRush, func(cfg config.FlappyConfig) registry.Game {
		return NewRush(cfg)
	})
}
