package crtfx

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func near(a, b, tol float32) bool {
	return float32(math.Abs(float64(a-b))) <= tol
}

func assertColorNear(t *testing.T, got, want Color, tol float32) {
	t.Helper()
	if !near(got.R, want.R, tol) || !near(got.G, want.G, tol) || !near(got.B, want.B, tol) || !near(got.A, want.A, tol) {
		t.Errorf("color = %+v, want %+v (±%g)", got, want, tol)
	}
}

// nearByte reports whether two 8-bit channels differ by at most one step.
func nearByte(a, b uint8) bool {
	return a == b || a+1 == b || b+1 == a
}

func assertInUnitRange(t *testing.T, c Color) {
	t.Helper()
	for i, v := range [4]float32{c.R, c.G, c.B, c.A} {
		if !(v >= 0 && v <= 1) {
			t.Fatalf("channel %d = %v, want in [0,1] (color %+v)", i, v, c)
		}
	}
}

// gridUVs returns the pixel center coordinates of a w x h grid.
func gridUVs(w, h int) []mgl32.Vec2 {
	uvs := make([]mgl32.Vec2, 0, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			uvs = append(uvs, mgl32.Vec2{(float32(x) + 0.5) / float32(w), (float32(y) + 0.5) / float32(h)})
		}
	}
	return uvs
}
