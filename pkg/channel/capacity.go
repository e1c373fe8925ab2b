// Package channel holds the closed-form channel metrics: Nyquist and Shannon
// limits, signal-to-noise ratio and delay/latency.
package channel

import (
	"fmt"
	"math"

	"CommLab/pkg/commerr"
)

var (
	ErrLevels    = fmt.Errorf("%w: signal levels must be at least 2", commerr.ErrDomain)
	ErrBandwidth = fmt.Errorf("%w: bandwidth must not be negative", commerr.ErrDomain)
)

// NyquistRate is the noiseless limit C = 2·B·log2(L) in bits per second.
func NyquistRate(bandwidth float64, levels int) (float64, error) {
	if levels < 2 {
		return 0, fmt.Errorf("%w: got %d", ErrLevels, levels)
	}
	if bandwidth < 0 || math.IsNaN(bandwidth) {
		return 0, fmt.Errorf("%w: got %v", ErrBandwidth, bandwidth)
	}
	return 2 * bandwidth * math.Log2(float64(levels)), nil
}

// ShannonCapacity is the noisy-channel limit C = B·log2(1 + SNR) with the
// SNR given in decibels. An SNR of −∞ dB gives 0.
func ShannonCapacity(bandwidth, snrDb float64) (float64, error) {
	if bandwidth < 0 || math.IsNaN(bandwidth) {
		return 0, fmt.Errorf("%w: got %v", ErrBandwidth, bandwidth)
	}
	return bandwidth * math.Log2(1+SNRLinear(snrDb)), nil
}

// LevelsFor is the smallest number of levels whose Nyquist rate reaches
// capacity over bandwidth. It is how the Nyquist and Shannon limits are used
// together: Shannon gives the ceiling, Nyquist the levels needed to reach it.
func LevelsFor(bandwidth, capacity float64) (int, error) {
	if bandwidth <= 0 || math.IsNaN(bandwidth) {
		return 0, fmt.Errorf("%w: got %v", ErrBandwidth, bandwidth)
	}
	l := int(math.Ceil(math.Exp2(capacity / (2 * bandwidth))))
	return max(l, 2), nil
}
