package flappy

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

// Generator produces obstacle geometry and maintains the rolling obstacle window.
// It owns only the RNG; the obstacle slice belongs to the Session and is passed in.
type Generator struct {
	rng     *rand.Rand
	cfg     config.ObstacleConfig
	world   config.WorldConfig
	avatarX float64
}

// NewGenerator creates a generator with the given RNG seed.
func NewGenerator(seed int64, cfg config.FlappyConfig) *Generator {
	return &Generator{
		rng:     rand.New(rand.NewSource(seed)),
		cfg:     cfg.Obstacles,
		world:   cfg.World,
		avatarX: cfg.Player.X,
	}
}

// Reseed restarts the random sequence.
func (g *Generator) Reseed(seed int64) {
	g.rng = rand.New(rand.NewSource(seed))
}

// GapRange returns the inclusive bounds for an obstacle's gap top, keeping the
// whole gap at least Margin away from both world edges.
func (g *Generator) GapRange() (minTop, maxTop float64) {
	minTop = g.cfg.Margin
	maxTop = g.world.Height - g.cfg.Margin - g.cfg.GapHeight
	if maxTop < minTop {
		maxTop = minTop // Edge case for very short worlds
	}
	return minTop, maxTop
}

// Generate creates one unpassed obstacle at x with a random gap placement.
// The gap top is quantized to whole units.
func (g *Generator) Generate(x float64) Obstacle {
	minTop, maxTop := g.GapRange()
	lo := int(math.Ceil(minTop))
	hi := int(math.Floor(maxTop))

	top := lo
	if hi > lo {
		top = lo + g.rng.Intn(hi-lo+1)
	}

	return Obstacle{
		X:      x,
		Width:  g.cfg.Width,
		Top:    float64(top),
		Bottom: float64(top) + g.cfg.GapHeight,
	}
}

func (g *Generator) pitch() float64 {
	return g.cfg.Width + g.cfg.Spacing
}

// horizon is the x below which the rightmost obstacle triggers a new spawn.
func (g *Generator) horizon() float64 {
	return g.world.Width + g.cfg.BufferMargin
}

// SpawnInitial returns a fresh obstacle sequence starting StartOffset ahead of
// the avatar and covering the visible width plus the buffer margin.
// dst is reused as backing storage.
func (g *Generator) SpawnInitial(dst []Obstacle) []Obstacle {
	obstacles := dst[:0]

	first := g.avatarX + g.cfg.StartOffset
	n := 1
	if span := g.horizon() - first; span > 0 && g.pitch() > 0 {
		n = int(math.Ceil(span/g.pitch())) + 1
	}

	for i := 0; i < n; i++ {
		obstacles = append(obstacles, g.Generate(first+float64(i)*g.pitch()))
	}
	return obstacles
}

// BufferAhead appends exactly one obstacle to the right of the rightmost one
// when that obstacle has come within the visible width plus buffer margin.
// It reports whether an obstacle was added.
func (g *Generator) BufferAhead(obstacles []Obstacle) ([]Obstacle, bool) {
	if len(obstacles) == 0 {
		return append(obstacles, g.Generate(g.horizon())), true
	}

	last := obstacles[len(obstacles)-1]
	if last.X >= g.horizon() {
		return obstacles, false
	}
	return append(obstacles, g.Generate(last.X+g.pitch())), true
}

// AdvanceAndRecycle moves every obstacle left by speed*dt and removes, in place,
// those that are scored and whose right edge is EvictMargin past the left edge.
// Returns the updated slice and how many obstacles were removed.
func (g *Generator) AdvanceAndRecycle(obstacles []Obstacle, speed, dt float64) ([]Obstacle, int) {
	dx := speed * dt
	for i := range obstacles {
		obstacles[i].X -= dx
	}

	kept := obstacles[:0]
	for _, o := range obstacles {
		if o.Passed && o.Right() < -g.cfg.EvictMargin {
			continue
		}
		kept = append(kept, o)
	}
	return kept, len(obstacles) - len(kept)
}

// ScorePassed marks every unpassed obstacle whose right edge is behind avatarX
// and returns how many were newly marked.
func ScorePassed(obstacles []Obstacle, avatarX float64) int {
	passed := 0
	for i := range obstacles {
		if !obstacles[i].Passed && obstacles[i].Right() < avatarX {
			obstacles[i].Passed = true
			passed++
		}
	}
	return passed
}
