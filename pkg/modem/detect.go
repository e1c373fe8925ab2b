package modem

import (
	"fmt"

	"CommLab/pkg/bits"
	"CommLab/pkg/commerr"
	"CommLab/pkg/series"

	"gonum.org/v1/gonum/floats"
)

var ErrSignalLength = fmt.Errorf("%w: signal is not a whole number of bits", commerr.ErrDomain)

// Detect recovers the bits of a keyed waveform with a correlation receiver:
// each bit interval is correlated with the carriers for 1 and 0, and the
// difference is compared with half the difference of their energies.
// d.Bits is ignored; Amplitude, Frequency and SamplesPerBit must match the
// transmitter. A zero frequency carrier is silent and detects as all zeros.
func (d Digital) Detect(s series.Series, kind Kind) (bits.Bits, error) {
	if !kind.Digital() {
		return nil, fmt.Errorf("%w %v for a bit sequence", ErrUnknownKind, kind)
	}
	spb := d.SamplesPerBit
	if spb <= 0 {
		spb = DefaultSamplesPerBit
	}
	if len(s)%spb != 0 {
		return nil, fmt.Errorf("%w: %d samples, %d per bit", ErrSignalLength, len(s), spb)
	}

	ys := s.Ys()
	out := make(bits.Bits, len(s)/spb)
	for i := range out {
		window := ys[i*spb : (i+1)*spb]
		one := d.carrier(kind, true, i*spb, spb).New()
		zero := d.carrier(kind, false, i*spb, spb).New()

		metric := floats.Dot(window, one) - floats.Dot(window, zero)
		threshold := (floats.Dot(one, one) - floats.Dot(zero, zero)) / 2
		out[i] = metric > threshold
	}
	return out, nil
}
