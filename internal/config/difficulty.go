package config

import "math"

// DifficultyManager calculates dynamic game parameters from score or elapsed time.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: clampF(cfg.InitialLevel, 0.0, 1.0),
	}
}

// SetEnabled enables or disables difficulty progression.
func (d *DifficultyManager) SetEnabled(enabled bool) {
	d.cfg.Enabled = enabled
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the current difficulty level (0.0 to 1.0).
// elapsed is the running time of the session in seconds.
func (d *DifficultyManager) Level(score int, elapsed float64) float64 {
	if !d.IsEnabled() {
		return d.initialLevel
	}

	maxAt := d.cfg.Progression.MaxAt
	if maxAt <= 0 {
		maxAt = 1 // Prevent division by zero
	}

	var progress float64
	switch d.cfg.Progression.Type {
	case "score":
		progress = float64(score) / maxAt
	case "time":
		progress = elapsed / maxAt
	default:
		return d.initialLevel
	}

	progress = clampF(progress, 0.0, 1.0)

	// Interpolate from initial level to 1.0
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// Speed returns the obstacle speed for the current difficulty level.
// With progression disabled the base speed is returned unchanged.
func (d *DifficultyManager) Speed(baseSpeed float64, score int, elapsed float64) float64 {
	if !d.IsEnabled() {
		return baseSpeed
	}
	level := d.Level(score, elapsed)
	return baseSpeed * (1.0 + level*d.cfg.Scaling.SpeedMultiplier)
}

func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
