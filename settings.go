package crtfx

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
)

// SettingsSize is the size in bytes of the binary form of Settings.
const SettingsSize = 8 * 4

var ErrShortSettings = errors.New("crtfx: settings block too short")

// Settings holds the effect parameters for one frame. It is passed by value
// and never changes while a frame is being evaluated.
//
// Field order matches the uniform block layout used by MarshalBinary.
type Settings struct {
	GrainIntensity    float32 // amplitude of the additive noise, typically 0 to 0.2
	GrainSpeed        float32 // how fast the noise field scrolls through time
	GrainCoarseness   float32 // spatial frequency of the noise sampling coordinate
	ScanlineIntensity float32 // darkening between bands, 0 to 1
	ScanlineCount     float32 // half periods across the vertical extent
	VignetteIntensity float32 // darkening at the frame edge, 0 to 1
	VignetteRadius    float32 // distance from center where full darkening is reached
	Time              float32 // seconds, supplied by the host clock
}

// DefaultSettings returns a subtle preset: barely visible grain, faint
// scanlines and soft corners.
func DefaultSettings() Settings {
	return Settings{
		GrainIntensity:    0.006,
		GrainSpeed:        0.8,
		GrainCoarseness:   180,
		ScanlineIntensity: 0.08,
		ScanlineCount:     320,
		VignetteIntensity: 0.20,
		VignetteRadius:    0.60,
	}
}

// WithTime returns a copy of s for the frame at time t.
func (s Settings) WithTime(t float32) Settings {
	s.Time = t
	return s
}

// Effect selects one of the three effects.
type Effect int

const (
	_ Effect = iota
	EffectGrain
	EffectScanline
	EffectVignette
)

func (e Effect) String() string {
	switch e {
	case EffectGrain:
		return "grain"
	case EffectScanline:
		return "scanline"
	case EffectVignette:
		return "vignette"
	}
	return fmt.Sprintf("Effect(%d)", int(e))
}

// ParseEffect maps "grain", "scanline" or "vignette" to an Effect.
func ParseEffect(name string) (Effect, error) {
	for _, e := range []Effect{EffectGrain, EffectScanline, EffectVignette} {
		if e.String() == name {
			return e, nil
		}
	}
	return 0, fmt.Errorf("crtfx: unknown effect %q", name)
}

// Only returns a copy of s with the intensity of every effect other than e
// set to zero.
func (s Settings) Only(e Effect) Settings {
	if e != EffectGrain {
		s.GrainIntensity = 0
	}
	if e != EffectScanline {
		s.ScanlineIntensity = 0
	}
	if e != EffectVignette {
		s.VignetteIntensity = 0
	}
	return s
}

func (s Settings) fields() [8]float32 {
	return [8]float32{
		s.GrainIntensity,
		s.GrainSpeed,
		s.GrainCoarseness,
		s.ScanlineIntensity,
		s.ScanlineCount,
		s.VignetteIntensity,
		s.VignetteRadius,
		s.Time,
	}
}

// MarshalBinary encodes s as eight little-endian IEEE-754 single precision
// floats in field order, the layout a GPU uniform buffer expects.
func (s Settings) MarshalBinary() ([]byte, error) {
	b := make([]byte, SettingsSize)
	for i, f := range s.fields() {
		binary.LittleEndian.PutUint32(b[i*4:], math.Float32bits(f))
	}
	return b, nil
}

// UnmarshalBinary decodes the layout written by MarshalBinary. Trailing
// bytes, such as uniform buffer padding, are ignored.
func (s *Settings) UnmarshalBinary(b []byte) error {
	if len(b) < SettingsSize {
		return fmt.Errorf("%w: got %d bytes, want %d", ErrShortSettings, len(b), SettingsSize)
	}
	var f [8]float32
	for i := range f {
		f[i] = math.Float32frombits(binary.LittleEndian.Uint32(b[i*4:]))
	}
	*s = Settings{f[0], f[1], f[2], f[3], f[4], f[5], f[6], f[7]}
	return nil
}
