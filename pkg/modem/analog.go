package modem

import (
	"fmt"
	"math"

	"CommLab/pkg/series"
)

const (
	DefaultAnalogPoints = 500
	AnalogTimeScale     = 50.0

	// Starting sensitivities of the modulation page. Analog takes Kf and Kp
	// as given, so zero is a bare carrier.
	DefaultKf = 2.0
	DefaultKp = 2.0
)

// Analog describes a message m(t) = MessageAmplitude·sin(MessageFreq·t)
// riding on a carrier CarrierAmplitude·sin(CarrierFreq·t). Sample i is taken
// at t = i/50 and plotted at x = i.
type Analog struct {
	CarrierAmplitude float64
	CarrierFreq      float64
	MessageAmplitude float64
	MessageFreq      float64

	Kf     float64 // frequency sensitivity
	Kp     float64 // phase sensitivity
	Points int
}

func (a Analog) withDefaults() Analog {
	if a.Points <= 0 {
		a.Points = DefaultAnalogPoints
	}
	return a
}

func (a Analog) message(t float64) float64 {
	return a.MessageAmplitude * math.Sin(a.MessageFreq*t)
}

// messageIntegral is ∫m(t)dt = −Am/fm·cos(fm·t), dropping the integration
// constant. A DC message (fm = 0) has m = 0 and so a zero integral.
func (a Analog) messageIntegral(t float64) float64 {
	if a.MessageFreq == 0 {
		return 0
	}
	return -a.MessageAmplitude / a.MessageFreq * math.Cos(a.MessageFreq*t)
}

func (a Analog) sample(kind Kind, t float64) float64 {
	wc := a.CarrierFreq * t
	switch kind {
	case AM:
		return (a.CarrierAmplitude + a.message(t)) * math.Sin(wc)
	case FM:
		return a.CarrierAmplitude * math.Sin(wc+a.Kf*a.messageIntegral(t))
	case PM:
		return a.CarrierAmplitude * math.Sin(wc+a.Kp*a.message(t))
	}
	return math.NaN()
}

func (a Analog) generate(f func(t float64) float64) series.Series {
	a = a.withDefaults()
	out := series.New(a.Points)
	for i := 0; i < a.Points; i++ {
		out = append(out, series.Sample{X: float64(i), Y: f(float64(i) / AnalogTimeScale)})
	}
	return out
}

// Modulate returns the AM, FM or PM waveform.
func (a Analog) Modulate(kind Kind) (series.Series, error) {
	switch kind {
	case AM, FM, PM:
	default:
		return nil, fmt.Errorf("%w %v for an analog message", ErrUnknownKind, kind)
	}
	a = a.withDefaults()
	return a.generate(func(t float64) float64 { return a.sample(kind, t) }), nil
}

func (a Analog) Message() series.Series {
	return a.generate(a.message)
}

func (a Analog) Carrier() series.Series {
	a = a.withDefaults()
	return indexed(CarrierConfig{
		Amplitude: a.CarrierAmplitude,
		Freq:      a.CarrierFreq,
		TimeScale: AnalogTimeScale,
		Size:      a.Points,
	}.New())
}

// indexed plots ys against their sample index.
func indexed(ys []float64) series.Series {
	out := make(series.Series, len(ys))
	for i, y := range ys {
		out[i] = series.Sample{X: float64(i), Y: y}
	}
	return out
}
