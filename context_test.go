package crtfx

import (
	"bytes"
	"image/color"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestContext_UV(t *testing.T) {
	dc := NewContext(4, 2, PassthroughShader{})
	tests := []struct {
		x, y int
		want mgl32.Vec2
	}{
		{0, 0, mgl32.Vec2{0.125, 0.25}},
		{3, 1, mgl32.Vec2{0.875, 0.75}},
	}
	for _, tt := range tests {
		if got := dc.UV(tt.x, tt.y); got != tt.want {
			t.Errorf("UV(%d, %d) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestContext_PassthroughReproducesSource(t *testing.T) {
	src := checker(7, 5)
	for _, filter := range []Filter{FilterNearest, FilterBilinear} {
		dc := NewContext(7, 5, PassthroughShader{})
		dc.Source = NewImageTexture(src)
		dc.Filter = filter
		dc.Render()
		if !bytes.Equal(dc.ColorBuffer.Pix, src.Pix) {
			t.Errorf("filter %d: passthrough render differs from source", filter)
		}
	}
}

func TestContext_NoEffectsReproducesSource(t *testing.T) {
	src := checker(6, 6)
	dc := NewContext(6, 6, NewPostProcessShader(noEffects()))
	dc.Source = NewImageTexture(src)
	dc.Filter = FilterNearest
	dc.Render()
	if !bytes.Equal(dc.ColorBuffer.Pix, src.Pix) {
		t.Error("render with zero intensities differs from source")
	}
}

func TestContext_ParallelMatchesSerial(t *testing.T) {
	s := DefaultSettings().WithTime(7.5)
	s.GrainIntensity = 0.1
	s.ScanlineCount = 16
	s.ScanlineIntensity = 0.4
	src := NewImageTexture(checker(25, 19))

	render := func(workers int) []uint8 {
		dc := NewContext(64, 48, NewPostProcessShader(s))
		dc.Source = src
		dc.Workers = workers
		dc.Render()
		return dc.ColorBuffer.Pix
	}
	serial := render(1)
	for _, workers := range []int{0, 3, 8, 200} {
		if !bytes.Equal(render(workers), serial) {
			t.Errorf("render with %d workers differs from serial render", workers)
		}
	}
}

func TestContext_ShaderSeesEveryPixelOnce(t *testing.T) {
	const w, h = 13, 9
	seen := make([]int32, w*h)
	shader := ShaderFunc(func(src Color, uv mgl32.Vec2) Color {
		x := int(uv.X() * w)
		y := int(uv.Y() * h)
		// each pixel belongs to exactly one worker, so this is race free
		seen[y*w+x]++
		return src
	})
	dc := NewContext(w, h, shader)
	dc.Workers = 4
	dc.Render()
	for i, n := range seen {
		if n != 1 {
			t.Fatalf("pixel %d shaded %d times", i, n)
		}
	}
}

func TestContext_NoSourceUsesClearColor(t *testing.T) {
	dc := NewContext(2, 2, PassthroughShader{})
	dc.ClearColor = HexColor("ff0000")
	dc.Render()
	if got := dc.ColorBuffer.NRGBAAt(1, 1); got != (color.NRGBA{255, 0, 0, 255}) {
		t.Errorf("pixel = %v", got)
	}
}

func TestContext_ClearColorBuffer(t *testing.T) {
	dc := NewContext(3, 2, PassthroughShader{})
	dc.ClearColor = HexColor("102030")
	dc.ClearColorBuffer()
	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			if got := dc.ColorBuffer.NRGBAAt(x, y); got != (color.NRGBA{0x10, 0x20, 0x30, 0xff}) {
				t.Fatalf("pixel (%d,%d) = %v", x, y, got)
			}
		}
	}
}

func TestContext_TranslucentOverClearColor(t *testing.T) {
	half := ShaderFunc(func(src Color, uv mgl32.Vec2) Color {
		return Color{0, 0, 1, 0.5}
	})
	dc := NewContext(4, 3, half)
	dc.ClearColor = HexColor("ff0000")
	dc.Render()
	first := append([]uint8(nil), dc.ColorBuffer.Pix...)
	if got, want := dc.ColorBuffer.NRGBAAt(2, 1), (color.NRGBA{128, 0, 128, 255}); !nearByte(got.R, want.R) || got.G != 0 || !nearByte(got.B, want.B) || got.A != 255 {
		t.Errorf("pixel = %v, want %v", got, want)
	}

	// a second pass starts from the clear color, not the previous frame
	dc.Render()
	if !bytes.Equal(first, dc.ColorBuffer.Pix) {
		t.Error("re-render blended over the previous frame")
	}

	dc.ClearColor = Transparent
	dc.Render()
	if got := dc.ColorBuffer.NRGBAAt(0, 0); got != (color.NRGBA{0, 0, 255, 128}) {
		t.Errorf("over transparent = %v, want the shader output", got)
	}
}

func TestContext_ZeroSize(t *testing.T) {
	dc := NewContext(0, 0, PassthroughShader{})
	dc.Render()
	if b := dc.Image().Bounds(); !b.Empty() {
		t.Errorf("bounds = %v", b)
	}
}
