package modem

import "math"

// CarrierConfig is a sinusoid sampled on the angular time axis used by the
// modulation pages: sample i is taken at t = (Offset+i)/TimeScale.
type CarrierConfig struct {
	Amplitude float64
	Freq      float64
	Phase     float64
	TimeScale float64
	Offset    int
	Size      int
}

func (p CarrierConfig) At(i int) float64 {
	t := float64(p.Offset+i) / p.TimeScale
	return p.Amplitude * math.Sin(p.Freq*t+p.Phase)
}

func (p CarrierConfig) New() []float64 {
	signal := make([]float64, p.Size)
	for i := range signal {
		signal[i] = p.At(i)
	}
	return signal
}
