package crtfx

import "github.com/go-gl/mathgl/mgl32"

// Shader computes the output color of one pixel from the sampled source
// color and the pixel's normalized coordinate. Fragment is called from many
// goroutines at once and must not modify shared state.
type Shader interface {
	Fragment(src Color, uv mgl32.Vec2) Color
}

// ShaderFunc adapts a plain function to the Shader interface.
type ShaderFunc func(src Color, uv mgl32.Vec2) Color

// Fragment f
func (fn ShaderFunc) Fragment(src Color, uv mgl32.Vec2) Color {
	return fn(src, uv)
}

// PassthroughShader returns the source color clamped to [0,1].
type PassthroughShader struct{}

func (PassthroughShader) Fragment(src Color, uv mgl32.Vec2) Color {
	return src.Clamp()
}

// PostProcessShader applies film grain, scanlines and vignette using a fixed
// Settings value.
type PostProcessShader struct {
	Settings Settings
}

// NewPostProcessShader f
func NewPostProcessShader(settings Settings) *PostProcessShader {
	return &PostProcessShader{Settings: settings}
}

// Fragment f
func (shader *PostProcessShader) Fragment(src Color, uv mgl32.Vec2) Color {
	return Process(src, uv, shader.Settings)
}

// Process composites the three effects onto src. Each step works on the
// result of the previous one: grain is added to R, G and B, the scanline
// and vignette factors multiply them, and finally all four channels are
// clamped to [0,1]. Alpha passes through unchanged apart from the clamp.
func Process(src Color, uv mgl32.Vec2, s Settings) Color {
	c := src.AddRGB(Grain(uv, s.Time, s.GrainIntensity, s.GrainSpeed, s.GrainCoarseness))
	c = c.MulRGB(ScanlineFactor(uv, s.ScanlineCount, s.ScanlineIntensity))
	c = c.MulRGB(VignetteFactor(uv, s.VignetteIntensity, s.VignetteRadius))
	return c.Clamp()
}
