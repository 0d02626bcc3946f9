package flappy

// Autopilot decides when to flap by steering toward the centre of the next gap.
// It only reads snapshots, so it behaves the same on any driver.
type Autopilot struct {
	// Slack is how far below the target line the avatar may sink before flapping.
	Slack float64
}

// NewAutopilot returns an autopilot tuned for the default world.
func NewAutopilot() Autopilot {
	return Autopilot{Slack: 20}
}

// ShouldActivate reports whether the driver should call Activate this frame.
// It starts a ready session, restarts after a game over only when restart is true,
// and while running flaps when the avatar is falling below the target line.
func (p Autopilot) ShouldActivate(s Snapshot, restart bool) bool {
	switch s.Phase {
	case PhaseNotStarted:
		return true
	case PhaseGameOver:
		return restart
	}

	target := s.World.Height / 2
	if o, ok := s.NextObstacle(); ok {
		target = (o.Top + o.Bottom) / 2
	}

	return s.Avatar.Velocity >= 0 && s.Avatar.Y > target+p.Slack
}
