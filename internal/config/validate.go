package config

import (
	"errors"
	"fmt"
)

// Validate checks that the configuration describes a playable world.
// All problems are reported together.
func (c FlappyConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.World.Width > 0 && c.World.Height > 0,
		"world: size must be positive, got %vx%v", c.World.Width, c.World.Height)
	check(c.Physics.MaxDelta > 0, "physics: max_delta must be positive, got %v", c.Physics.MaxDelta)

	o := c.Obstacles
	check(o.Width > 0, "obstacles: width must be positive, got %v", o.Width)
	check(o.Spacing >= 0, "obstacles: spacing must not be negative, got %v", o.Spacing)
	check(o.GapHeight > 0, "obstacles: gap_height must be positive, got %v", o.GapHeight)
	check(o.Margin >= 0, "obstacles: margin must not be negative, got %v", o.Margin)
	check(o.Speed >= 0, "obstacles: speed must not be negative, got %v", o.Speed)
	check(o.BufferMargin >= 0 && o.EvictMargin >= 0, "obstacles: buffer/evict margins must not be negative")
	check(2*o.Margin+o.GapHeight <= c.World.Height,
		"obstacles: gap_height %v with margin %v does not fit a world of height %v", o.GapHeight, o.Margin, c.World.Height)

	p := c.Player
	check(p.Radius > 0, "player: radius must be positive, got %v", p.Radius)
	check(p.X >= 0 && p.X <= c.World.Width, "player: x %v outside world width %v", p.X, c.World.Width)
	check(p.StartY >= 0 && p.StartY <= c.World.Height, "player: start_y %v outside world height %v", p.StartY, c.World.Height)

	a := c.Animation
	check(len(a.FlapOrder) > 0, "animation: flap_order must not be empty")
	check(a.FlapFrameDuration > 0, "animation: flap_frame_duration must be positive, got %v", a.FlapFrameDuration)
	check(a.DeathFrames > 0, "animation: death_frames must be positive, got %d", a.DeathFrames)
	check(a.DeathFrameDuration > 0, "animation: death_frame_duration must be positive, got %v", a.DeathFrameDuration)

	switch c.Difficulty.Progression.Type {
	case "", "none", "score", "time":
	default:
		errs = append(errs, fmt.Errorf("difficulty: unknown progression type %q", c.Difficulty.Progression.Type))
	}

	return errors.Join(errs...)
}
