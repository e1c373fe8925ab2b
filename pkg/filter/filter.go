// Package filter smooths series and produces the noise used by the filter and
// SNR demonstrations.
package filter

import (
	"fmt"

	"CommLab/pkg/commerr"
	"CommLab/pkg/series"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

var ErrWindow = fmt.Errorf("%w: moving average window must be at least 1", commerr.ErrDomain)

// MovingAverage is a causal low-pass filter: sample i becomes the mean of the
// last window samples up to and including i. Near the start fewer samples are
// available and the mean covers only those, so a window longer than s is
// valid. The output lags the input by roughly window/2 samples.
func MovingAverage(s series.Series, window int) (series.Series, error) {
	if window < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrWindow, window)
	}
	ys := s.Ys()
	out := make([]float64, len(ys))
	for i := range ys {
		lo := max(0, i-window+1)
		out[i] = stat.Mean(ys[lo:i+1], nil)
	}
	return s.FromYs(out), nil
}

// Power is the mean square of the y values.
func Power(s series.Series) float64 {
	if len(s) == 0 {
		return 0
	}
	ys := s.Ys()
	return floats.Dot(ys, ys) / float64(len(ys))
}

// Add sums two series point by point, keeping the x values of a.
func Add(a, b series.Series) series.Series {
	n := min(len(a), len(b))
	ys := a[:n].Ys()
	floats.Add(ys, b[:n].Ys())
	return a[:n].FromYs(ys)
}
