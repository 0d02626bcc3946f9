// Package config provides YAML-based game configuration loading and
// difficulty management.
package config

// FlappyConfig contains all tunables of the game world, in world units and seconds.
type FlappyConfig struct {
	World      WorldConfig      `yaml:"world"`
	Physics    PhysicsConfig    `yaml:"physics"`
	Obstacles  ObstacleConfig   `yaml:"obstacles"`
	Player     PlayerConfig     `yaml:"player"`
	Animation  AnimationConfig  `yaml:"animation"`
	Parallax   []ParallaxLayer  `yaml:"parallax"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// WorldConfig is the fixed logical resolution of the game world.
// Render surfaces scale it to whatever they draw on.
type WorldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PhysicsConfig defines the avatar's vertical motion.
type PhysicsConfig struct {
	Gravity     float64 `yaml:"gravity"`      // Downward acceleration, units/s²
	FlapImpulse float64 `yaml:"flap_impulse"` // Velocity assigned on flap (negative = up)
	MaxDelta    float64 `yaml:"max_delta"`    // Clamp ceiling for one step, seconds
}

// ObstacleConfig defines obstacle geometry, spawning and motion.
type ObstacleConfig struct {
	Width        float64 `yaml:"width"`
	Spacing      float64 `yaml:"spacing"`       // Horizontal gap between consecutive obstacles
	GapHeight    float64 `yaml:"gap_height"`    // Constant for a session
	Margin       float64 `yaml:"margin"`        // Minimum distance from the gap to top/bottom edges
	Speed        float64 `yaml:"speed"`         // Leftward speed, units/s
	StartOffset  float64 `yaml:"start_offset"`  // Distance of the first obstacle ahead of the avatar
	BufferMargin float64 `yaml:"buffer_margin"` // Spawn-ahead distance past the visible width
	EvictMargin  float64 `yaml:"evict_margin"`  // Distance past the left edge before removal
}

// PlayerConfig defines the avatar's fixed column, start height and size.
type PlayerConfig struct {
	X      float64 `yaml:"x"`
	StartY float64 `yaml:"start_y"` // 0 means the middle of the world
	Radius float64 `yaml:"radius"`
}

// AnimationConfig defines the sprite sequences.
type AnimationConfig struct {
	FlapOrder          []int   `yaml:"flap_order"`
	FlapFrameDuration  float64 `yaml:"flap_frame_duration"`
	IdleFrame          int     `yaml:"idle_frame"`
	DeathFrames        int     `yaml:"death_frames"`
	DeathFrameDuration float64 `yaml:"death_frame_duration"`
}

// ParallaxLayer is a decorative background layer scrolling at a fraction of obstacle speed.
type ParallaxLayer struct {
	Name  string  `yaml:"name"`
	Speed float64 `yaml:"speed"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases.
type ProgressionConfig struct {
	Type  string  `yaml:"type"`   // "score", "time", or "none"
	MaxAt float64 `yaml:"max_at"` // Score or seconds at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Added to the speed factor at max difficulty
}

// StartY returns the avatar's starting height, defaulting to the world's middle.
func (c FlappyConfig) StartY() float64 {
	if c.Player.StartY > 0 {
		return c.Player.StartY
	}
	return c.World.Height / 2
}

// Pitch returns the distance between the left edges of consecutive obstacles.
func (c FlappyConfig) Pitch() float64 {
	return c.Obstacles.Width + c.Obstacles.Spacing
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

// ParsePreset converts a flag value into a preset. Empty means no preset.
func ParsePreset(s string) (DifficultyPreset, bool) {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, true
	}
	return "", false
}
