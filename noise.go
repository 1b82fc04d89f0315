package crtfx

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	hashScale  = 0.1031
	hashOffset = 33.33
)

// Hash returns a deterministic pseudo random value in [0,1) for p. Nearby
// inputs give uncorrelated outputs, so sampling it on a pixel grid reads as
// white noise. It is defined for every finite input.
func Hash(p mgl32.Vec2) float32 {
	p3 := fract3(mgl32.Vec3{p.X(), p.Y(), p.X()}.Mul(hashScale))
	yzx := mgl32.Vec3{p3.Y(), p3.Z(), p3.X()}
	d := p3.Dot(yzx.Add(mgl32.Vec3{hashOffset, hashOffset, hashOffset}))
	p3 = p3.Add(mgl32.Vec3{d, d, d})
	return fract((p3.X() + p3.Y()) * p3.Z())
}

// fract returns x - floor(x). Values that have no fractional part to speak
// of (NaN, ±Inf) map to 0 so nothing non-finite leaves the hash.
func fract(x float32) float32 {
	f := x - float32(math.Floor(float64(x)))
	if !(f >= 0 && f < 1) {
		return 0
	}
	return f
}

func fract3(v mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{fract(v.X()), fract(v.Y()), fract(v.Z())}
}
