package core

import (
	"context"
	"time"
)

// DefaultMaxDelta bounds a single simulation step after a stall or a suspended window.
const DefaultMaxDelta = 0.1

// FrameClock turns successive frame timestamps into clamped delta times.
type FrameClock struct {
	maxDelta float64
	last     time.Time
	started  bool
}

// NewFrameClock creates a clock clamping deltas to maxDelta seconds.
// A non-positive maxDelta selects DefaultMaxDelta.
func NewFrameClock(maxDelta float64) *FrameClock {
	if maxDelta <= 0 {
		maxDelta = DefaultMaxDelta
	}
	return &FrameClock{maxDelta: maxDelta}
}

// Sample records a frame timestamp and returns the seconds elapsed since the
// previous one. The first sample returns 0.
func (c *FrameClock) Sample(now time.Time) float64 {
	if !c.started {
		c.started = true
		c.last = now
		return 0
	}
	dt := now.Sub(c.last).Seconds()
	c.last = now
	return c.Clamp(dt)
}

// Clamp restricts a delta to [0, maxDelta].
func (c *FrameClock) Clamp(dt float64) float64 {
	return ClampF(dt, 0, c.maxDelta)
}

// MaxDelta returns the clamp ceiling in seconds.
func (c *FrameClock) MaxDelta() float64 {
	return c.maxDelta
}

// Reset forgets the previous timestamp so the next sample returns 0.
func (c *FrameClock) Reset() {
	c.started = false
	c.last = time.Time{}
}

// Drive calls tick once per frame at the given rate until ctx is cancelled.
// Deltas come from the wall clock and are clamped by clock.
func Drive(ctx context.Context, fps int, clock *FrameClock, tick func(dt float64)) error {
	if fps <= 0 {
		fps = 60
	}
	ticker := time.NewTicker(time.Second / time.Duration(fps))
	defer ticker.Stop()

	clock.Sample(time.Now())
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case now := <-ticker.C:
			tick(clock.Sample(now))
		}
	}
}

// Step calls tick frames times with the same synthetic delta.
func Step(frames int, dt float64, tick func(dt float64)) {
	for i := 0; i < frames; i++ {
		tick(dt)
	}
}
