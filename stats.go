package crtfx

import (
	"fmt"
	"image"

	"gonum.org/v1/gonum/stat"
)

// ChannelStats is the mean and standard deviation of one channel.
type ChannelStats struct {
	Mean   float64
	StdDev float64
}

// FrameStats summarizes the color distribution of an image.
type FrameStats struct {
	Pixels    int
	R, G, B   ChannelStats
	A         ChannelStats
	Luminance ChannelStats
}

func (s FrameStats) String() string {
	return fmt.Sprintf("pixels=%d luma=%.4f±%.4f r=%.4f g=%.4f b=%.4f a=%.4f",
		s.Pixels, s.Luminance.Mean, s.Luminance.StdDev, s.R.Mean, s.G.Mean, s.B.Mean, s.A.Mean)
}

// Analyze computes per channel statistics of im, with channels scaled to
// [0,1].
func Analyze(im image.Image) FrameStats {
	t := NewImageTexture(im)
	n := t.Width * t.Height
	r := make([]float64, 0, n)
	g := make([]float64, 0, n)
	b := make([]float64, 0, n)
	a := make([]float64, 0, n)
	l := make([]float64, 0, n)
	for y := 0; y < t.Height; y++ {
		for x := 0; x < t.Width; x++ {
			c := t.texel(x, y)
			r = append(r, float64(c.R))
			g = append(g, float64(c.G))
			b = append(b, float64(c.B))
			a = append(a, float64(c.A))
			l = append(l, float64(c.Luminance()))
		}
	}
	return FrameStats{
		Pixels:    n,
		R:         channelStats(r),
		G:         channelStats(g),
		B:         channelStats(b),
		A:         channelStats(a),
		Luminance: channelStats(l),
	}
}

func channelStats(x []float64) ChannelStats {
	if len(x) == 0 {
		return ChannelStats{}
	}
	if len(x) == 1 {
		return ChannelStats{Mean: x[0]}
	}
	mean, std := stat.MeanStdDev(x, nil)
	return ChannelStats{Mean: mean, StdDev: std}
}
