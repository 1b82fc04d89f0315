package crtfx

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif" // Ensure decoders are present
	_ "image/jpeg"
	_ "image/png"
	"io"
	"math"
	"net/http"
	"os"
	"time"

	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Texture is the source image as seen by a shader, addressed by normalized
// coordinates with the origin at the top left. Coordinates outside [0,1]
// clamp to the edge.
type Texture interface {
	Sample(u, v float32) Color
	BilinearSample(u, v float32) Color
}

type ImageTexture struct {
	Width  int
	Height int
	Image  *image.NRGBA
}

// NewImageTexture wraps im. Images that are not already *image.NRGBA with a
// zero origin are converted once up front so sampling can index Pix directly.
func NewImageTexture(im image.Image) *ImageTexture {
	nrgba, ok := im.(*image.NRGBA)
	if !ok || nrgba.Rect.Min != (image.Point{}) {
		b := im.Bounds()
		nrgba = image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
		draw.Draw(nrgba, nrgba.Rect, im, b.Min, draw.Src)
	}
	return &ImageTexture{
		Width:  nrgba.Rect.Dx(),
		Height: nrgba.Rect.Dy(),
		Image:  nrgba,
	}
}

func LoadImage(path string) (image.Image, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	im, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	return im, nil
}

func LoadTexture(path string) (*ImageTexture, error) {
	im, err := LoadImage(path)
	if err != nil {
		return nil, err
	}
	return NewImageTexture(im), nil
}

func LoadTextureFromReader(r io.Reader) (*ImageTexture, error) {
	im, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decoding texture: %w", err)
	}
	return NewImageTexture(im), nil
}

func TexFromBytes(data []byte) (*ImageTexture, error) {
	return LoadTextureFromReader(bytes.NewReader(data))
}

func LoadTextureFromURL(url string) (*ImageTexture, error) {
	client := http.Client{
		Timeout: 10 * time.Second, // Prevent hanging
	}
	resp, err := client.Get(url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching %s: %s", url, resp.Status)
	}
	return LoadTextureFromReader(resp.Body)
}

func (t *ImageTexture) texel(x, y int) Color {
	x = ClampInt(x, 0, t.Width-1)
	y = ClampInt(y, 0, t.Height-1)
	i := t.Image.PixOffset(x, y)
	p := t.Image.Pix[i : i+4 : i+4]
	const d = 0xff
	return Color{float32(p[0]) / d, float32(p[1]) / d, float32(p[2]) / d, float32(p[3]) / d}
}

// Sample returns the texel containing (u, v).
func (t *ImageTexture) Sample(u, v float32) Color {
	if t.Width == 0 || t.Height == 0 {
		return Transparent
	}
	x := int(math.Floor(float64(u * float32(t.Width))))
	y := int(math.Floor(float64(v * float32(t.Height))))
	return t.texel(x, y)
}

// BilinearSample blends the four texels around (u, v), treating texel
// centers as lying at half integer positions.
func (t *ImageTexture) BilinearSample(u, v float32) Color {
	if t.Width == 0 || t.Height == 0 {
		return Transparent
	}
	x := float64(u*float32(t.Width)) - 0.5
	y := float64(v*float32(t.Height)) - 0.5
	x0 := math.Floor(x)
	y0 := math.Floor(y)
	fx := float32(x - x0)
	fy := float32(y - y0)
	ix, iy := int(x0), int(y0)

	c00 := t.texel(ix, iy)
	c10 := t.texel(ix+1, iy)
	c01 := t.texel(ix, iy+1)
	c11 := t.texel(ix+1, iy+1)
	return c00.Lerp(c10, fx).Lerp(c01.Lerp(c11, fx), fy)
}

func ClampInt(x, lo, hi int) int {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
