package flappy

import "github.com/vovakirdan/tui-flappy/internal/config"

// AnimMode is the sequence the avatar sprite is currently showing.
type AnimMode int

const (
	AnimIdle AnimMode = iota
	AnimFlap
	AnimDeath
)

// Frame is what a renderer needs to pick the avatar sprite.
type Frame struct {
	Mode   AnimMode
	Index  int  // Sprite index within the flap sheet or the death sheet
	Hidden bool // Death sequence finished; draw nothing
}

// Animator sequences the flap and death sprite frames on fixed per-frame timers,
// independently of the physics step size.
type Animator struct {
	cfg config.AnimationConfig

	flapPos     int // Position in FlapOrder
	flapPlaying bool
	flapElapsed float64

	dying        bool
	deathFrame   int
	deathElapsed float64
	hidden       bool
}

// NewAnimator creates an idle animator.
func NewAnimator(cfg config.AnimationConfig) Animator {
	return Animator{cfg: cfg}
}

// Reset returns to the idle state, clearing any death sequence.
func (a *Animator) Reset() {
	*a = Animator{cfg: a.cfg}
}

// StartFlap restarts the flap cycle from its first frame, even mid-sequence.
// It has no effect once the death sequence has started.
func (a *Animator) StartFlap() {
	if a.dying {
		return
	}
	a.flapPos = 0
	a.flapElapsed = 0
	a.flapPlaying = len(a.cfg.FlapOrder) > 0
}

// StartDeath begins the one-shot death sequence. Repeated calls are ignored.
func (a *Animator) StartDeath() {
	if a.dying {
		return
	}
	a.dying = true
	a.flapPlaying = false
	a.deathFrame = 0
	a.deathElapsed = 0
}

// Update advances whichever sequence is active by dt seconds.
func (a *Animator) Update(dt float64) {
	if a.dying {
		a.updateDeath(dt)
		return
	}
	if !a.flapPlaying {
		return
	}

	a.flapElapsed += dt
	if a.flapElapsed <= a.cfg.FlapFrameDuration {
		return
	}
	a.flapElapsed = 0
	a.flapPos++
	if a.flapPos >= len(a.cfg.FlapOrder) {
		a.flapPos = len(a.cfg.FlapOrder) - 1
		a.flapPlaying = false
	}
}

func (a *Animator) updateDeath(dt float64) {
	if a.hidden {
		return
	}

	a.deathElapsed += dt
	if a.deathElapsed <= a.cfg.DeathFrameDuration {
		return
	}
	a.deathElapsed = 0
	a.deathFrame++
	if a.deathFrame >= a.cfg.DeathFrames {
		a.deathFrame = a.cfg.DeathFrames - 1
		a.hidden = true
	}
}

// Playing reports whether the flap cycle is in progress.
func (a *Animator) Playing() bool {
	return a.flapPlaying
}

// Frame returns the sprite to draw.
func (a *Animator) Frame() Frame {
	switch {
	case a.dying:
		return Frame{Mode: AnimDeath, Index: a.deathFrame, Hidden: a.hidden}
	case a.flapPlaying:
		return Frame{Mode: AnimFlap, Index: a.cfg.FlapOrder[a.flapPos]}
	default:
		return Frame{Mode: AnimIdle, Index: a.cfg.IdleFrame}
	}
}
