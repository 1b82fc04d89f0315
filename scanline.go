package crtfx

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// ScanlineFactor returns the multiplier in [1-intensity, 1] for the
// horizontal band at uv.Y.
//
// The sine argument is uv.Y*count*π, so count is a number of half periods:
// the image shows count/2 bright and dark pairs and the pattern repeats every
// 2/count in uv.Y.
func ScanlineFactor(uv mgl32.Vec2, count, intensity float32) float32 {
	line := float32(math.Sin(float64(uv.Y()*count)*math.Pi))*0.5 + 0.5
	return 1 - (1-line)*intensity
}
