package crtfx

import (
	"image"
	"runtime"
	"sync"

	"github.com/go-gl/mathgl/mgl32"
)

type Filter int

const (
	_ Filter = iota
	FilterNearest
	FilterBilinear
)

// Context evaluates a Shader once per pixel of its color buffer, reading the
// source through Source. Translucent shader output is composited over
// ClearColor.
type Context struct {
	Width       int
	Height      int
	Shader      Shader
	Source      Texture
	ColorBuffer *image.NRGBA
	ClearColor  Color
	Filter      Filter
	Workers     int
}

func NewContext(width, height int, shader Shader) *Context {
	dc := &Context{}
	dc.Width = width
	dc.Height = height
	dc.Shader = shader
	dc.ColorBuffer = image.NewNRGBA(image.Rect(0, 0, width, height))
	dc.ClearColor = Transparent
	dc.Filter = FilterBilinear
	dc.Workers = runtime.NumCPU()
	return dc
}

func (dc *Context) Image() image.Image {
	return dc.ColorBuffer
}

// ClearColorBufferWith fills the color buffer with c. Only the first row is
// written pixel by pixel; the others are copied from it.
func (dc *Context) ClearColorBufferWith(c Color) {
	pix, stride := dc.ColorBuffer.Pix, dc.ColorBuffer.Stride
	if dc.Width <= 0 || dc.Height <= 0 {
		return
	}
	n := c.NRGBA()
	first := pix[:dc.Width*4]
	for i := 0; i < len(first); i += 4 {
		first[i+0], first[i+1], first[i+2], first[i+3] = n.R, n.G, n.B, n.A
	}
	for y := 1; y < dc.Height; y++ {
		copy(pix[y*stride:], first)
	}
}

// ClearColorBuffer fills the color buffer with ClearColor.
func (dc *Context) ClearColorBuffer() {
	dc.ClearColorBufferWith(dc.ClearColor)
}

// UV returns the normalized coordinate of the center of pixel (x, y).
func (dc *Context) UV(x, y int) mgl32.Vec2 {
	return mgl32.Vec2{
		(float32(x) + 0.5) / float32(dc.Width),
		(float32(y) + 0.5) / float32(dc.Height),
	}
}

func (dc *Context) sample(uv mgl32.Vec2) Color {
	if dc.Source == nil {
		return dc.ClearColor
	}
	if dc.Filter == FilterNearest {
		return dc.Source.Sample(uv.X(), uv.Y())
	}
	return dc.Source.BilinearSample(uv.X(), uv.Y())
}

func (dc *Context) shadeRow(y int) {
	pix := dc.ColorBuffer.Pix
	i := y * dc.ColorBuffer.Stride
	for x := 0; x < dc.Width; x++ {
		uv := dc.UV(x, y)
		c := dc.Shader.Fragment(dc.sample(uv), uv)
		setPixel(pix, i, c)
		i += 4
	}
}

// Inlined pixel setting for speed. A translucent c is blended over what the
// buffer already holds at i.
func setPixel(pix []uint8, i int, c Color) {
	if c.A < 1 {
		const d = 0xff
		dst := Color{float32(pix[i+0]) / d, float32(pix[i+1]) / d, float32(pix[i+2]) / d, float32(pix[i+3]) / d}
		c = c.Over(dst)
	}
	nrgba := c.NRGBA()
	pix[i+0] = nrgba.R
	pix[i+1] = nrgba.G
	pix[i+2] = nrgba.B
	pix[i+3] = nrgba.A
}

// Render clears the color buffer to ClearColor and shades every pixel over
// it. Rows are dealt out to the workers round robin; each row is written by
// exactly one goroutine, so the buffer needs no locking.
func (dc *Context) Render() {
	dc.ClearColorBuffer()
	wn := dc.Workers
	if wn < 1 {
		wn = 1
	}
	if wn > dc.Height {
		wn = dc.Height
	}
	var wg sync.WaitGroup
	wg.Add(wn)

	// Batch processing for less goroutine overhead
	for wi := 0; wi < wn; wi++ {
		go func(wi int) {
			defer wg.Done()
			for y := wi; y < dc.Height; y += wn {
				dc.shadeRow(y)
			}
		}(wi)
	}
	wg.Wait()
	Logger().Debug("crtfx: frame rendered", "width", dc.Width, "height", dc.Height, "workers", wn)
}
