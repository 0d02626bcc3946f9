package flappy

import "github.com/vovakirdan/tui-flappy/internal/core"

// Phase is the session lifecycle state.
type Phase int

const (
	PhaseNotStarted Phase = iota // Avatar parked at the start height, obstacles static
	PhaseRunning                 // Physics, obstacles, collisions and scoring active
	PhaseGameOver                // Frozen at the moment of collision, death animation playing
)

// String returns the phase name used in GameState and logs.
func (p Phase) String() string {
	switch p {
	case PhaseNotStarted:
		return "ready"
	case PhaseRunning:
		return "running"
	case PhaseGameOver:
		return "over"
	default:
		return "unknown"
	}
}

// Avatar is the player-controlled entity. X never changes during a session.
type Avatar struct {
	X        float64 // Fixed horizontal position (centre)
	Y        float64 // Vertical position (centre), world units, down is positive
	Velocity float64 // Vertical velocity, units/s
	Radius   float64 // Collision half-extent
}

// Bounds returns the avatar's collision box.
func (a Avatar) Bounds() core.RectF {
	return core.RectF{
		X: a.X - a.Radius,
		Y: a.Y - a.Radius,
		W: 2 * a.Radius,
		H: 2 * a.Radius,
	}
}

// Obstacle is a top/bottom barrier pair separated by a vertical gap.
type Obstacle struct {
	X      float64 // Left edge
	Width  float64
	Top    float64 // Gap top boundary; the upper barrier covers [0, Top)
	Bottom float64 // Gap bottom boundary; the lower barrier covers (Bottom, world height]
	Passed bool    // Scored already
}

// Right returns the x-coordinate of the obstacle's right edge.
func (o Obstacle) Right() float64 {
	return o.X + o.Width
}

// GapHeight returns the distance between the gap boundaries.
func (o Obstacle) GapHeight() float64 {
	return o.Bottom - o.Top
}

// TopRect returns the blocked region above the gap.
func (o Obstacle) TopRect() core.RectF {
	return core.RectF{X: o.X, Y: 0, W: o.Width, H: o.Top}
}

// BottomRect returns the blocked region below the gap, down to worldH.
func (o Obstacle) BottomRect(worldH float64) core.RectF {
	return core.RectF{X: o.X, Y: o.Bottom, W: o.Width, H: worldH - o.Bottom}
}

// Session is the complete mutable state of one play-through.
// The Game owns exactly one and passes it explicitly to every update step.
type Session struct {
	Phase        Phase
	Avatar       Avatar
	Obstacles    []Obstacle // Ascending by X
	Score        int
	HighScore    int
	Elapsed      float64 // Seconds spent running
	Scroll       float64 // Total distance the world has scrolled, for parallax
	Speed        float64 // Obstacle speed used on the last running frame
	RecordBroken bool    // HighScore was beaten during this session
	Anim         Animator
}
