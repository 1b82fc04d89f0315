package crtfx

import "github.com/go-gl/mathgl/mgl32"

// grainDrift scales the vertical scroll of the grain field relative to the
// horizontal one so the two axes drift independently instead of along a
// fixed diagonal.
const grainDrift = 1234.5

// Grain returns the film grain offset for uv at the given time, a value in
// roughly [-intensity, intensity]. The offset is meant to be added to R, G
// and B alike. Animation comes only from moving the sampling coordinate over
// time, so nothing is stored per pixel.
func Grain(uv mgl32.Vec2, time, intensity, speed, coarseness float32) float32 {
	t := time * speed
	p := uv.Mul(coarseness).Add(mgl32.Vec2{t, t * grainDrift})
	return (Hash(p)*2 - 1) * intensity
}
