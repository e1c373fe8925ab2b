package series

import "gonum.org/v1/gonum/floats"

// Sample is one plotted point.
type Sample struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// Series is an ordered run of samples with non-decreasing X.
type Series []Sample

func New(size int) Series {
	return make(Series, 0, size)
}

func (s Series) Xs() []float64 {
	xs := make([]float64, len(s))
	for i, p := range s {
		xs[i] = p.X
	}
	return xs
}

func (s Series) Ys() []float64 {
	ys := make([]float64, len(s))
	for i, p := range s {
		ys[i] = p.Y
	}
	return ys
}

// FromYs pairs ys with the x values of s. Extra values on either side are dropped.
func (s Series) FromYs(ys []float64) Series {
	out := make(Series, min(len(s), len(ys)))
	for i := range out {
		out[i] = Sample{X: s[i].X, Y: ys[i]}
	}
	return out
}

// Map applies f to every y value.
func (s Series) Map(f func(float64) float64) Series {
	out := make(Series, len(s))
	for i, p := range s {
		out[i] = Sample{X: p.X, Y: f(p.Y)}
	}
	return out
}

func (s Series) Monotonic() bool {
	for i := 1; i < len(s); i++ {
		if s[i].X < s[i-1].X {
			return false
		}
	}
	return true
}

// Peak returns the largest absolute y value.
func (s Series) Peak() float64 {
	if len(s) == 0 {
		return 0
	}
	ys := s.Ys()
	return max(floats.Max(ys), -floats.Min(ys))
}
