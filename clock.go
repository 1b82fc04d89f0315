package crtfx

import "time"

// Clock supplies the time value that drives grain animation.
type Clock interface {
	Elapsed() float32
}

// WallClock reports seconds since it was created.
type WallClock struct {
	start time.Time
}

func NewWallClock() *WallClock {
	return &WallClock{start: time.Now()}
}

func (c *WallClock) Elapsed() float32 {
	return float32(time.Since(c.start).Seconds())
}

// FixedClock steps through time at a fixed frame rate, for reproducible
// sequences.
type FixedClock struct {
	Start float32
	FPS   float32
	Frame int
}

// Elapsed returns Start plus Frame/FPS. A non positive FPS freezes time at
// Start.
func (c *FixedClock) Elapsed() float32 {
	if c.FPS <= 0 {
		return c.Start
	}
	return c.Start + float32(c.Frame)/c.FPS
}

func (c *FixedClock) Advance() {
	c.Frame++
}
