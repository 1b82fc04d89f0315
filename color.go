package crtfx

import (
	"fmt"
	"image/color"
	"strings"
)

var (
	Transparent = Color{}
	Black       = Color{0, 0, 0, 1}
	White       = Color{1, 1, 1, 1}
)

// Color is a straight (non premultiplied) RGBA value. Channels are nominally
// in [0,1] but may leave that range until Clamp is applied.
type Color struct {
	R, G, B, A float32
}

// MakeColor converts any color.Color to a straight alpha Color.
func MakeColor(c color.Color) Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	const d = 0xff
	return Color{float32(n.R) / d, float32(n.G) / d, float32(n.B) / d, float32(n.A) / d}
}

// HexColor parses "rgb", "rrggbb" or "rrggbbaa", with or without a leading
// '#'. Unparseable input yields Black.
func HexColor(x string) Color {
	x = strings.TrimPrefix(x, "#")
	var r, g, b, a int
	a = 255
	var err error
	switch len(x) {
	case 3:
		_, err = fmt.Sscanf(x, "%1x%1x%1x", &r, &g, &b)
		r, g, b = r*17, g*17, b*17
	case 6:
		_, err = fmt.Sscanf(x, "%02x%02x%02x", &r, &g, &b)
	case 8:
		_, err = fmt.Sscanf(x, "%02x%02x%02x%02x", &r, &g, &b, &a)
	default:
		return Black
	}
	if err != nil {
		return Black
	}
	const d = 0xff
	return Color{float32(r) / d, float32(g) / d, float32(b) / d, float32(a) / d}
}

func (c Color) NRGBA() color.NRGBA {
	const d = 0xff
	c = c.Clamp()
	return color.NRGBA{
		uint8(c.R*d + 0.5),
		uint8(c.G*d + 0.5),
		uint8(c.B*d + 0.5),
		uint8(c.A*d + 0.5),
	}
}

// AddRGB adds x to the color channels and leaves alpha alone.
func (c Color) AddRGB(x float32) Color {
	return Color{c.R + x, c.G + x, c.B + x, c.A}
}

// MulRGB scales the color channels and leaves alpha alone.
func (c Color) MulRGB(x float32) Color {
	return Color{c.R * x, c.G * x, c.B * x, c.A}
}

func (c Color) Add(b Color) Color {
	return Color{c.R + b.R, c.G + b.G, c.B + b.B, c.A + b.A}
}

func (c Color) Sub(b Color) Color {
	return Color{c.R - b.R, c.G - b.G, c.B - b.B, c.A - b.A}
}

func (c Color) MulScalar(b float32) Color {
	return Color{c.R * b, c.G * b, c.B * b, c.A * b}
}

func (c Color) Lerp(b Color, t float32) Color {
	return c.Add(b.Sub(c).MulScalar(t))
}

func (c Color) Alpha(a float32) Color {
	return Color{c.R, c.G, c.B, a}
}

// Over composites c onto the backdrop b with the source-over operator, in
// straight alpha. An opaque c or a fully transparent b returns c unchanged.
func (c Color) Over(b Color) Color {
	if c.A >= 1 || b.A <= 0 {
		return c
	}
	a := c.A + b.A*(1-c.A)
	rgb := c.MulScalar(c.A).Add(b.MulScalar(b.A * (1 - c.A))).MulScalar(1 / a)
	return rgb.Alpha(a)
}

// Clamp limits every channel, alpha included, to [0,1]. NaN becomes 0.
func (c Color) Clamp() Color {
	return Color{clamp01(c.R), clamp01(c.G), clamp01(c.B), clamp01(c.A)}
}

// Luminance returns the Rec. 709 luma of the color channels.
func (c Color) Luminance() float32 {
	return 0.2126*c.R + 0.7152*c.G + 0.0722*c.B
}

func clamp01(x float32) float32 {
	// written so that NaN fails both comparisons and falls through to 0
	if x >= 1 {
		return 1
	}
	if x > 0 {
		return x
	}
	return 0
}
