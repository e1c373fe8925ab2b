package modem

import (
	"fmt"
	"math"

	"CommLab/pkg/bits"
	"CommLab/pkg/series"
)

const (
	DefaultSamplesPerBit = 100
	DigitalTimeScale     = 50.0
)

// Digital keys a carrier of the given Amplitude and Frequency with Bits.
// Sample x is taken at t = x/50 on one global axis, so the carrier phase is
// continuous across bit boundaries.
type Digital struct {
	Bits          bits.Bits
	Amplitude     float64
	Frequency     float64
	SamplesPerBit int
}

// carrier picks the carrier of one bit for the given keying.
func (d Digital) carrier(kind Kind, bit bool, offset, size int) CarrierConfig {
	c := CarrierConfig{
		Amplitude: d.Amplitude,
		Freq:      d.Frequency,
		TimeScale: DigitalTimeScale,
		Offset:    offset,
		Size:      size,
	}
	switch kind {
	case ASK:
		if !bit {
			c.Amplitude = 0
		}
	case FSK:
		if bit {
			c.Freq = 2 * d.Frequency
		}
	case PSK:
		if !bit {
			c.Phase = math.Pi
		}
	}
	return c
}

// Modulate returns the ASK, FSK or PSK waveform.
func (d Digital) Modulate(kind Kind) (series.Series, error) {
	if !kind.Digital() {
		return nil, fmt.Errorf("%w %v for a bit sequence", ErrUnknownKind, kind)
	}
	spb := d.SamplesPerBit
	if spb <= 0 {
		spb = DefaultSamplesPerBit
	}

	ys := make([]float64, 0, len(d.Bits)*spb)
	for i, bit := range d.Bits {
		ys = append(ys, d.carrier(kind, bit, i*spb, spb).New()...)
	}
	return indexed(ys), nil
}
