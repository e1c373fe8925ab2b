package channel

import (
	"fmt"
	"math"
	"strconv"

	"CommLab/pkg/commerr"
)

var ErrPower = fmt.Errorf("%w: power must not be negative", commerr.ErrDomain)

// SNRLinear converts decibels to a power ratio, 10^(dB/10).
func SNRLinear(db float64) float64 {
	return math.Pow(10, db/10)
}

// SNRdB is 10·log10(signal/noise). A noiseless channel has an infinite SNR
// and is reported as +Inf rather than an error. Silence over silence is
// also +Inf.
func SNRdB(signalPower, noisePower float64) (float64, error) {
	if signalPower < 0 || noisePower < 0 {
		return 0, fmt.Errorf("%w: signal %v, noise %v", ErrPower, signalPower, noisePower)
	}
	if noisePower == 0 {
		return math.Inf(1), nil
	}
	return 10 * math.Log10(signalPower/noisePower), nil
}

// SNRFromAmplitudes treats amplitude² as power. This is a teaching proxy for
// a sinusoid and uniform noise of those peak values, not a measured power.
func SNRFromAmplitudes(signalAmplitude, noiseAmplitude float64) (float64, error) {
	return SNRdB(signalAmplitude*signalAmplitude, noiseAmplitude*noiseAmplitude)
}

// FormatSNR renders an SNR in dB, using "∞" for an infinite ratio.
func FormatSNR(db float64) string {
	switch {
	case math.IsInf(db, 1):
		return "∞"
	case math.IsInf(db, -1):
		return "-∞"
	case math.IsNaN(db):
		return "NaN"
	}
	return strconv.FormatFloat(db, 'f', 2, 64) + " dB"
}

type Quality int

const (
	Poor Quality = iota
	Good
	Excellent
)

func (q Quality) String() string {
	switch q {
	case Excellent:
		return "Excellent Signal Quality"
	case Good:
		return "Good Quality"
	}
	return "Poor / Unusable"
}

// Rate grades an SNR: above 20 dB excellent, above 10 dB good.
func Rate(db float64) Quality {
	switch {
	case db > 20:
		return Excellent
	case db > 10:
		return Good
	}
	return Poor
}
