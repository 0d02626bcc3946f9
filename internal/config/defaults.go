package config

import (
	_ "embed"
)

//go:embed defaults/flappy.yaml
var defaultFlappyYAML []byte

// DefaultFlappyConfig returns the built-in configuration.
// It mirrors defaults/flappy.yaml and is used when the embedded file cannot be parsed.
func DefaultFlappyConfig() FlappyConfig {
	return FlappyConfig{
		World: WorldConfig{
			Width:  480,
			Height: 640,
		},
		Physics: PhysicsConfig{
			Gravity:     1500,
			FlapImpulse: -400,
			MaxDelta:    0.1,
		},
		Obstacles: ObstacleConfig{
			Width:        60,
			Spacing:      200,
			GapHeight:    180,
			Margin:       100,
			Speed:        150,
			StartOffset:  300,
			BufferMargin: 260,
			EvictMargin:  60,
		},
		Player: PlayerConfig{
			X:      100,
			StartY: 320,
			Radius: 15,
		},
		Animation: AnimationConfig{
			FlapOrder:          []int{0, 1, 2, 3, 2, 1, 0},
			FlapFrameDuration:  0.05,
			IdleFrame:          0,
			DeathFrames:        4,
			DeathFrameDuration: 0.12,
		},
		Parallax: []ParallaxLayer{
			{Name: "clouds", Speed: 0.2},
			{Name: "hills", Speed: 0.5},
			{Name: "ground", Speed: 1.0},
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 50,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 1.0,
			},
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultFlappyYAML
}
