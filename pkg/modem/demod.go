package modem

import (
	"math"

	"CommLab/pkg/series"
)

// Rectify passes only the positive half of s, as a diode would.
func Rectify(s series.Series) series.Series {
	return s.Map(func(y float64) float64 { return math.Max(0, y) })
}

// EnvelopeDemo is the AM demodulation walkthrough: the signal
// (1 + Depth·sin(MessageFreq·t))·sin(CarrierFreq·t) is rectified and its
// envelope extracted.
//
// The envelope is not produced by simulating a diode and RC filter. It is the
// ideal output such a detector approaches, 1 + Depth·m(t), computed directly.
type EnvelopeDemo struct {
	CarrierFreq float64
	MessageFreq float64
	Depth       float64 // zero leaves a flat envelope
	Points      int
}

type EnvelopeResult struct {
	Modulated series.Series
	Rectified series.Series
	Envelope  series.Series
}

func (e EnvelopeDemo) New() EnvelopeResult {

	a := Analog{
		CarrierAmplitude: 1,
		CarrierFreq:      e.CarrierFreq,
		MessageAmplitude: e.Depth,
		MessageFreq:      e.MessageFreq,
		Points:           e.Points,
	}
	modulated, _ := a.Modulate(AM)
	return EnvelopeResult{
		Modulated: modulated,
		Rectified: Rectify(modulated),
		Envelope:  IdealEnvelope(a),
	}
}

// IdealEnvelope is Ac + m(t), the curve an envelope detector tracks for AM.
func IdealEnvelope(a Analog) series.Series {
	return a.generate(func(t float64) float64 { return a.CarrierAmplitude + a.message(t) })
}
