package crtfx

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"

	"github.com/nfnt/resize"
)

// Frame renders post processed frames of a single source image.
type Frame struct {
	Context  *Context
	Shader   *PostProcessShader
	Settings Settings
	Clock    Clock

	// Resampled is set when the source was resized up front and is read
	// texel for texel.
	Resampled bool
}

// NewFrame returns a frame that outputs width x height pixels. A zero width
// or height keeps the source dimension. The source is read through the
// bilinear sampler, so any size difference is absorbed at sampling time.
func NewFrame(source image.Image, width, height int, settings Settings) *Frame {
	width, height = frameSize(source, width, height)
	shader := NewPostProcessShader(settings)
	context := NewContext(width, height, shader)
	context.Source = NewImageTexture(source)
	return &Frame{
		Context:  context,
		Shader:   shader,
		Settings: settings,
	}
}

// NewResampledFrame is like NewFrame but, when the output size differs from
// the source, resamples the source once with interp and then reads it texel
// for texel.
func NewResampledFrame(source image.Image, width, height int, settings Settings, interp resize.InterpolationFunction) *Frame {
	b := source.Bounds()
	width, height = frameSize(source, width, height)
	if width == b.Dx() && height == b.Dy() {
		return NewFrame(source, width, height, settings)
	}
	resampled := resize.Resize(uint(width), uint(height), source, interp)
	Logger().Debug("crtfx: source resampled", "from", b.Size(), "width", width, "height", height)
	f := NewFrame(resampled, width, height, settings)
	f.Context.Filter = FilterNearest
	f.Resampled = true
	return f
}

func frameSize(source image.Image, width, height int) (int, int) {
	b := source.Bounds()
	if width <= 0 {
		width = b.Dx()
	}
	if height <= 0 {
		height = b.Dy()
	}
	return width, height
}

// Render shades the frame for the clock's current time, or for
// Settings.Time when no clock is set.
func (f *Frame) Render() image.Image {
	s := f.Settings
	if f.Clock != nil {
		s = s.WithTime(f.Clock.Elapsed())
	}
	f.Shader.Settings = s
	f.Context.Render()
	return f.Context.Image()
}

// Draw renders the frame and writes it to path as PNG.
func (f *Frame) Draw(path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := f.DrawToWriter(file); err != nil {
		file.Close()
		return err
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}
	Logger().Debug("crtfx: frame written", "path", path)
	return nil
}

// DrawToWriter renders the frame and encodes it to writer as PNG.
func (f *Frame) DrawToWriter(writer io.Writer) error {
	if err := png.Encode(writer, f.Render()); err != nil {
		return fmt.Errorf("encoding png: %w", err)
	}
	return nil
}

// DrawSequence renders frames consecutive frames at fps into dir, named
// frame_0000.png and so on, starting at Settings.Time. The frame's clock is
// replaced for the duration of the call. It returns the written paths.
// A negative frames is an error; zero writes nothing.
func (f *Frame) DrawSequence(dir string, frames int, fps float32) ([]string, error) {
	if frames < 0 {
		return nil, fmt.Errorf("crtfx: negative frame count %d", frames)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating %s: %w", dir, err)
	}
	prev := f.Clock
	defer func() { f.Clock = prev }()

	clock := &FixedClock{Start: f.Settings.Time, FPS: fps}
	f.Clock = clock
	paths := make([]string, 0, frames)
	for i := 0; i < frames; i++ {
		path := filepath.Join(dir, fmt.Sprintf("frame_%04d.png", i))
		if err := f.Draw(path); err != nil {
			return paths, err
		}
		paths = append(paths, path)
		clock.Advance()
	}
	return paths, nil
}

// GenerateFrame post processes source with settings at its own size and
// writes the result to writer as PNG.
func GenerateFrame(writer io.Writer, source image.Image, settings Settings) error {
	return NewFrame(source, 0, 0, settings).DrawToWriter(writer)
}

// GenerateFrameFile is GenerateFrame writing to a file.
func GenerateFrameFile(path string, source image.Image, settings Settings) error {
	return NewFrame(source, 0, 0, settings).Draw(path)
}
