package crtfx

import "github.com/go-gl/mathgl/mgl32"

// VignetteFalloff is the width of the band, inside the vignette radius, over
// which the frame fades from full brightness to full darkening.
const VignetteFalloff = 0.3

var center = mgl32.Vec2{0.5, 0.5}

// VignetteFactor returns the multiplier in [1-intensity, 1] for uv. Points
// closer to the center than radius-VignetteFalloff get 1, points at radius
// or beyond get 1-intensity, with a smoothstep in between.
func VignetteFactor(uv mgl32.Vec2, intensity, radius float32) float32 {
	d := uv.Sub(center).Len()
	s := 1 - smoothstep(radius-VignetteFalloff, radius, d)
	return mix(1-intensity, 1, s)
}

// smoothstep is the Hermite interpolation of x between edge0 < edge1. When
// the edges coincide (a tiny or enormous radius can round them together) it
// degrades to a hard step at edge1.
func smoothstep(edge0, edge1, x float32) float32 {
	if !(edge1 > edge0) {
		if x < edge1 {
			return 0
		}
		return 1
	}
	t := clamp01((x - edge0) / (edge1 - edge0))
	return t * t * (3 - 2*t)
}

func mix(a, b, t float32) float32 {
	return a + (b-a)*t
}
