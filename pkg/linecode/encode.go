// Package linecode maps bit sequences to line-code voltage levels and back.
//
// Encoding is a fold over the bits: every scheme starts from its own initial
// State and a transition function turns (state, bit) into the levels of one
// bit interval plus the next state. The output is a step function sampled at
// half-bit resolution, two points per bit for schemes without a mid-bit
// transition and four points per bit for RZ, Manchester and Diff-Manchester.
package linecode

import (
	"fmt"

	"CommLab/pkg/bits"
	"CommLab/pkg/series"
)

// State carries the memory of the schemes that need it. Each field is only
// meaningful for the schemes noted.
type State struct {
	Level       float64 // NRZ-I, Diff-Manchester, MLT-3
	LastOne     float64 // AMI
	LastZero    float64 // Pseudoternary
	LastNonZero float64 // MLT-3
}

// interval is the levels of one bit: first and second half.
type interval struct {
	first, second float64
}

type transition func(State, bool) (State, interval)

func initialState(s Scheme) State {
	switch s {
	case MLT3:
		return State{Level: 0, LastNonZero: -1}
	default:
		return State{Level: 1, LastOne: -1, LastZero: -1}
	}
}

func transitionOf(s Scheme) (transition, error) {
	switch s {
	case NRZL:
		return nrzl, nil
	case NRZI:
		return nrzi, nil
	case RZ:
		return rz, nil
	case Manchester:
		return manchester, nil
	case DiffManchester:
		return diffManchester, nil
	case AMI:
		return ami, nil
	case Pseudoternary:
		return pseudoternary, nil
	case MLT3:
		return mlt3, nil
	}
	return nil, fmt.Errorf("%w %v", ErrUnknownScheme, s)
}

func level(bit bool, one, zero float64) float64 {
	if bit {
		return one
	}
	return zero
}

func flat(v float64) interval {
	return interval{v, v}
}

func nrzl(st State, bit bool) (State, interval) {
	return st, flat(level(bit, -1, 1))
}

func nrzi(st State, bit bool) (State, interval) {
	if bit {
		st.Level = -st.Level
	}
	return st, flat(st.Level)
}

func rz(st State, bit bool) (State, interval) {
	return st, interval{level(bit, 1, -1), 0}
}

func manchester(st State, bit bool) (State, interval) {
	if bit {
		return st, interval{-1, 1}
	}
	return st, interval{1, -1}
}

func diffManchester(st State, bit bool) (State, interval) {
	if !bit {
		st.Level = -st.Level
	}
	first := st.Level
	st.Level = -st.Level
	return st, interval{first, st.Level}
}

func ami(st State, bit bool) (State, interval) {
	if !bit {
		return st, flat(0)
	}
	st.LastOne = -st.LastOne
	return st, flat(st.LastOne)
}

func pseudoternary(st State, bit bool) (State, interval) {
	if bit {
		return st, flat(0)
	}
	st.LastZero = -st.LastZero
	return st, flat(st.LastZero)
}

func mlt3(st State, bit bool) (State, interval) {
	if bit {
		if st.Level != 0 {
			st.LastNonZero = st.Level
			st.Level = 0
		} else {
			st.Level = -st.LastNonZero
		}
	}
	return st, flat(st.Level)
}

// Encode folds bits through the scheme's state machine and returns the
// resulting step series together with the final state.
func Encode(b bits.Bits, scheme Scheme) (series.Series, State, error) {
	step, err := transitionOf(scheme)
	if err != nil {
		return nil, State{}, err
	}

	st := initialState(scheme)
	out := series.New(len(b) * scheme.PointsPerBit())
	for i, bit := range b {
		var iv interval
		st, iv = step(st, bit)

		start, end := float64(i), float64(i+1)
		if scheme.MidBit() {
			mid := start + 0.5
			out = append(out,
				series.Sample{X: start, Y: iv.first},
				series.Sample{X: mid, Y: iv.first},
				series.Sample{X: mid, Y: iv.second},
				series.Sample{X: end, Y: iv.second},
			)
		} else {
			out = append(out,
				series.Sample{X: start, Y: iv.first},
				series.Sample{X: end, Y: iv.second},
			)
		}
	}
	return out, st, nil
}

// EncodeString sanitises text with bits.Parse and encodes what is left.
func EncodeString(text string, scheme Scheme) (series.Series, error) {
	b, _ := bits.Parse(text)
	s, _, err := Encode(b, scheme)
	return s, err
}

// EncodeNamed resolves the scheme by name first.
func EncodeNamed(text, scheme string) (series.Series, error) {
	s, err := ParseScheme(scheme)
	if err != nil {
		return nil, err
	}
	return EncodeString(text, s)
}
