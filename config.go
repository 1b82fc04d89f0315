package crtfx

import (
	_ "embed"
	"errors"
	"fmt"
	"image"
	"io/fs"
	"os"

	"github.com/nfnt/resize"
	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds everything a host needs to post process frames.
type Config struct {
	PostProcess PostProcessConfig `yaml:"post_process"`
	Output      OutputConfig      `yaml:"output"`
}

// PostProcessConfig holds the effect tunables. Time is not configurable; it
// comes from the clock each frame.
type PostProcessConfig struct {
	GrainIntensity    float32 `yaml:"grain_intensity"`
	GrainSpeed        float32 `yaml:"grain_speed"`
	GrainCoarseness   float32 `yaml:"grain_coarseness"`
	ScanlineIntensity float32 `yaml:"scanline_intensity"`
	ScanlineCount     float32 `yaml:"scanline_count"`
	VignetteIntensity float32 `yaml:"vignette_intensity"`
	VignetteRadius    float32 `yaml:"vignette_radius"`
}

// OutputConfig controls frame size, sampling and sequence length.
type OutputConfig struct {
	Width      int     `yaml:"width"`    // 0 = source width
	Height     int     `yaml:"height"`   // 0 = source height
	Filter     string  `yaml:"filter"`   // nearest | bilinear
	Resample   string  `yaml:"resample"` // none | nearest | bilinear | bicubic | lanczos3
	ClearColor string  `yaml:"clear_color"`
	FPS        float32 `yaml:"fps"`
	Frames     int     `yaml:"frames"`
}

// DefaultConfig returns the embedded defaults.
func DefaultConfig() *Config {
	cfg, err := ParseConfig(nil)
	if err != nil {
		panic(fmt.Sprintf("crtfx: embedded defaults: %v", err))
	}
	return cfg
}

// ParseConfig applies data on top of the embedded defaults. Only keys
// present in data override a default.
func ParseConfig(data []byte) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config: %w", err)
		}
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadConfig reads path and applies it on top of the defaults. An empty path
// returns the defaults. A missing file is logged and also falls back to the
// defaults; any other read or parse error is returned.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return ParseConfig(nil)
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		Logger().Warn("crtfx: config file not found, using defaults", "path", path)
		return ParseConfig(nil)
	}
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if _, err := c.Output.filter(); err != nil {
		return err
	}
	if _, _, err := c.Output.resample(); err != nil {
		return err
	}
	if c.Output.Width < 0 || c.Output.Height < 0 {
		return fmt.Errorf("output size %dx%d is negative", c.Output.Width, c.Output.Height)
	}
	if c.Output.Frames < 0 {
		return fmt.Errorf("output frames %d is negative", c.Output.Frames)
	}
	return nil
}

// Settings returns the effect settings for the frame at time t.
func (c *Config) Settings(t float32) Settings {
	p := c.PostProcess
	return Settings{
		GrainIntensity:    p.GrainIntensity,
		GrainSpeed:        p.GrainSpeed,
		GrainCoarseness:   p.GrainCoarseness,
		ScanlineIntensity: p.ScanlineIntensity,
		ScanlineCount:     p.ScanlineCount,
		VignetteIntensity: p.VignetteIntensity,
		VignetteRadius:    p.VignetteRadius,
		Time:              t,
	}
}

func (o OutputConfig) filter() (Filter, error) {
	switch o.Filter {
	case "", "bilinear":
		return FilterBilinear, nil
	case "nearest":
		return FilterNearest, nil
	}
	return 0, fmt.Errorf("unknown filter %q", o.Filter)
}

func (o OutputConfig) resample() (resize.InterpolationFunction, bool, error) {
	switch o.Resample {
	case "", "none":
		return 0, false, nil
	case "nearest":
		return resize.NearestNeighbor, true, nil
	case "bilinear":
		return resize.Bilinear, true, nil
	case "bicubic":
		return resize.Bicubic, true, nil
	case "lanczos3":
		return resize.Lanczos3, true, nil
	}
	return 0, false, fmt.Errorf("unknown resample %q", o.Resample)
}

// NewFrame builds a frame for source sized and sampled as configured, with
// settings for time t.
func (c *Config) NewFrame(source image.Image, t float32) *Frame {
	var f *Frame
	if interp, ok, _ := c.Output.resample(); ok {
		f = NewResampledFrame(source, c.Output.Width, c.Output.Height, c.Settings(t), interp)
	} else {
		f = NewFrame(source, c.Output.Width, c.Output.Height, c.Settings(t))
	}
	if !f.Resampled {
		f.Context.Filter, _ = c.Output.filter()
	}
	f.Context.ClearColor = HexColor(c.Output.ClearColor)
	return f
}
