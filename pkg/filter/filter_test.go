package filter

import (
	"math"
	"testing"

	"CommLab/pkg/commerr"
	"CommLab/pkg/series"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ramp(ys ...float64) series.Series {
	s := make(series.Series, len(ys))
	for i, y := range ys {
		s[i] = series.Sample{X: float64(i), Y: y}
	}
	return s
}

func TestMovingAverage(t *testing.T) {
	s := ramp(3, 6, 9, 12, 0)

	got, err := MovingAverage(s, 2)
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 4.5, 7.5, 10.5, 6}, got.Ys())
	assert.Equal(t, s.Xs(), got.Xs())

	got, err = MovingAverage(s, 3)
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 4.5, 6, 9, 7}, got.Ys())
}

func TestMovingAverageWindowOneIsIdentity(t *testing.T) {
	s := NoisySine(1, 50)
	got, err := MovingAverage(s, 1)
	require.NoError(t, err)
	assert.Equal(t, s, got)
}

func TestMovingAverageClipsLongWindow(t *testing.T) {
	s := ramp(1, 2, 3, 6)
	got, err := MovingAverage(s, 100)
	require.NoError(t, err)
	// a window longer than the series is a running mean
	assert.Equal(t, []float64{1, 1.5, 2, 3}, got.Ys())

	empty, err := MovingAverage(nil, 3)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestMovingAverageRejectsEmptyWindow(t *testing.T) {
	_, err := MovingAverage(ramp(1, 2), 0)
	assert.ErrorIs(t, err, ErrWindow)
	assert.ErrorIs(t, err, commerr.ErrDomain)
}

func TestMovingAverageReducesNoise(t *testing.T) {
	clean := NoisySine(0, DefaultNoisePoints)
	noisy := NoisySine(1, DefaultNoisePoints)

	smooth, err := MovingAverage(noisy, 10)
	require.NoError(t, err)

	residual := func(s series.Series) float64 {
		return Power(Add(s, clean.Map(func(y float64) float64 { return -y })))
	}
	assert.Less(t, residual(smooth), residual(noisy))
}

func TestStableNoise(t *testing.T) {
	a := StableNoise(0.5, 0)
	b := StableNoise(0.5, 0)
	require.Len(t, a, DefaultNoisePoints)
	assert.Equal(t, a, b)

	tt := 7.0 / 20
	assert.InDelta(t, (math.Sin(13*tt)+math.Cos(29*tt))*0.25, a[7].Y, 1e-12)
	assert.Equal(t, 0.0, StableNoise(0, 10).Peak())

	noisy := NoisySine(0.5, 0)
	assert.InDelta(t, math.Sin(tt)+a[7].Y, noisy[7].Y, 1e-12)
}

func TestUniformNoise(t *testing.T) {
	like := ramp(make([]float64, 1000)...)

	a := UniformNoise(42, 2, like)
	b := UniformNoise(42, 2, like)
	c := UniformNoise(43, 2, like)

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.LessOrEqual(t, a.Peak(), 2.0)
	assert.Equal(t, like.Xs(), a.Xs())

	// uniform on [-2, 2) has power 4/3
	assert.InDelta(t, 4.0/3, Power(a), 0.15)
}

func TestAddNoise(t *testing.T) {
	pure := ramp(1, 1, 1)
	r := AddNoise(pure, 7, 0.5)
	for i := range pure {
		assert.InDelta(t, pure[i].Y+r.Noise[i].Y, r.Combined[i].Y, 1e-12)
	}
	assert.Equal(t, pure, r.Pure)
}

func TestPowerAndAdd(t *testing.T) {
	assert.Equal(t, 0.0, Power(nil))
	assert.Equal(t, 5.0, Power(ramp(1, 3)))

	sum := Add(ramp(1, 2, 3), ramp(10, 20))
	assert.Equal(t, ramp(11, 22), sum)
}
