package crtfx

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"
)

// checker returns a w x h image with pixel (x, y) set to (x*10, y*10, 0).
func checker(w, h int) *image.NRGBA {
	im := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			im.SetNRGBA(x, y, color.NRGBA{uint8(x * 10), uint8(y * 10), 0, 255})
		}
	}
	return im
}

func TestImageTexture_Sample(t *testing.T) {
	tex := NewImageTexture(checker(4, 4))
	tests := []struct {
		name string
		u, v float32
		want color.NRGBA
	}{
		{"top left", 0, 0, color.NRGBA{0, 0, 0, 255}},
		{"pixel center", 0.375, 0.625, color.NRGBA{10, 20, 0, 255}},
		{"bottom right edge", 1, 1, color.NRGBA{30, 30, 0, 255}},
		{"clamped low", -5, -5, color.NRGBA{0, 0, 0, 255}},
		{"clamped high", 7, 0.1, color.NRGBA{30, 0, 0, 255}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tex.Sample(tt.u, tt.v).NRGBA(); got != tt.want {
				t.Errorf("Sample(%v, %v) = %v, want %v", tt.u, tt.v, got, tt.want)
			}
		})
	}
}

func TestImageTexture_BilinearSample(t *testing.T) {
	tex := NewImageTexture(checker(4, 4))

	// On a texel center the bilinear sample equals the texel.
	if got := tex.BilinearSample(0.375, 0.625).NRGBA(); got != (color.NRGBA{10, 20, 0, 255}) {
		t.Errorf("texel center = %v", got)
	}
	// Halfway between texel 1 and 2 horizontally.
	got := tex.BilinearSample(0.5, 0.125)
	assertColorNear(t, got, Color{15.0 / 255, 0, 0, 1}, 1e-5)
	// Outside the image the edge texel is repeated.
	if got := tex.BilinearSample(-1, 2).NRGBA(); got != (color.NRGBA{0, 30, 0, 255}) {
		t.Errorf("clamped = %v", got)
	}
}

func TestNewImageTexture_ConvertsOffsetImages(t *testing.T) {
	src := image.NewRGBA(image.Rect(10, 20, 13, 22))
	src.Set(10, 20, color.RGBA{255, 0, 0, 255})
	src.Set(12, 21, color.RGBA{0, 0, 255, 255})
	tex := NewImageTexture(src)
	if tex.Width != 3 || tex.Height != 2 {
		t.Fatalf("size = %dx%d, want 3x2", tex.Width, tex.Height)
	}
	if got := tex.Sample(0, 0).NRGBA(); got != (color.NRGBA{255, 0, 0, 255}) {
		t.Errorf("top left = %v", got)
	}
	if got := tex.Sample(0.99, 0.99).NRGBA(); got != (color.NRGBA{0, 0, 255, 255}) {
		t.Errorf("bottom right = %v", got)
	}
}

func TestImageTexture_Empty(t *testing.T) {
	tex := NewImageTexture(image.NewNRGBA(image.Rect(0, 0, 0, 0)))
	if got := tex.Sample(0.5, 0.5); got != Transparent {
		t.Errorf("Sample = %+v", got)
	}
	if got := tex.BilinearSample(0.5, 0.5); got != Transparent {
		t.Errorf("BilinearSample = %+v", got)
	}
}

func TestTexFromBytes(t *testing.T) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, checker(3, 5)); err != nil {
		t.Fatal(err)
	}
	tex, err := TexFromBytes(buf.Bytes())
	if err != nil {
		t.Fatal(err)
	}
	if tex.Width != 3 || tex.Height != 5 {
		t.Errorf("size = %dx%d, want 3x5", tex.Width, tex.Height)
	}

	if _, err := TexFromBytes([]byte("not an image")); err == nil {
		t.Error("decoding garbage succeeded")
	}
}

func TestLoadTexture_Missing(t *testing.T) {
	if _, err := LoadTexture(t.TempDir() + "/missing.png"); err == nil {
		t.Error("loading a missing file succeeded")
	}
}
