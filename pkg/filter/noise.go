package filter

import (
	"math"

	"CommLab/pkg/series"

	"golang.org/x/exp/rand"
)

const (
	DefaultNoisePoints = 500
	noiseTimeScale     = 20.0
)

// StableNoise is the repeatable interference of the filter demo:
// level·(sin(13t) + cos(29t))/2 at t = i/20. It does not change between
// redraws, unlike random noise.
func StableNoise(level float64, points int) series.Series {
	if points <= 0 {
		points = DefaultNoisePoints
	}
	out := series.New(points)
	for i := 0; i < points; i++ {
		t := float64(i) / noiseTimeScale
		out = append(out, series.Sample{X: float64(i), Y: (math.Sin(t*13) + math.Cos(t*29)) * 0.5 * level})
	}
	return out
}

// NoisySine is sin(t) plus StableNoise on the same axis.
func NoisySine(level float64, points int) series.Series {
	out := StableNoise(level, points)
	for i := range out {
		out[i].Y += math.Sin(float64(i) / noiseTimeScale)
	}
	return out
}

// UniformNoise draws one value in [−amplitude, amplitude) for each x of like.
// The same seed always gives the same noise.
func UniformNoise(seed uint64, amplitude float64, like series.Series) series.Series {
	src := rand.New(rand.NewSource(seed))
	return like.Map(func(float64) float64 {
		return (src.Float64() - 0.5) * 2 * amplitude
	})
}

// NoisyResult is the SNR page: a clean signal, the noise and their sum.
type NoisyResult struct {
	Pure     series.Series
	Noise    series.Series
	Combined series.Series
}

func AddNoise(pure series.Series, seed uint64, amplitude float64) NoisyResult {
	noise := UniformNoise(seed, amplitude, pure)
	return NoisyResult{
		Pure:     pure,
		Noise:    noise,
		Combined: Add(pure, noise),
	}
}
