package flappy

// Collision identifies what ended a session.
type Collision int

const (
	CollisionNone     Collision = iota
	CollisionCeiling            // Avatar left the world through the top
	CollisionGround             // Avatar left the world through the bottom
	CollisionObstacle           // Avatar hit an obstacle barrier
)

// String returns the collision name used in logs.
func (c Collision) String() string {
	switch c {
	case CollisionNone:
		return "none"
	case CollisionCeiling:
		return "ceiling"
	case CollisionGround:
		return "ground"
	case CollisionObstacle:
		return "obstacle"
	default:
		return "unknown"
	}
}

// Integrate advances the avatar by dt with semi-implicit Euler:
// velocity first, then position from the new velocity.
func (a *Avatar) Integrate(gravity, dt float64) {
	a.Velocity += gravity * dt
	a.Y += a.Velocity * dt
}

// Flap assigns the impulse velocity, overriding whatever the avatar had.
func (a *Avatar) Flap(impulse float64) {
	a.Velocity = impulse
}

// Collide checks the avatar against the world bounds and then against each
// obstacle in order. The first hit wins.
func Collide(a Avatar, obstacles []Obstacle, worldH float64) Collision {
	top := a.Y - a.Radius
	bottom := a.Y + a.Radius

	if top < 0 {
		return CollisionCeiling
	}
	if bottom > worldH {
		return CollisionGround
	}

	left := a.X - a.Radius
	right := a.X + a.Radius
	for _, o := range obstacles {
		if !o.TopRect().OverlapsSpan(left, right) {
			continue
		}
		if top < o.Top || bottom > o.Bottom {
			return CollisionObstacle
		}
	}
	return CollisionNone
}
