package linecode

import (
	"fmt"

	"CommLab/pkg/bits"
	"CommLab/pkg/commerr"
	"CommLab/pkg/series"
)

var ErrMalformedSeries = fmt.Errorf("%w: series length does not match scheme", commerr.ErrDomain)

// Decode reads the levels of an encoded series back into bits. Levels are
// compared by sign only, so scaled or slightly noisy series still decode.
func Decode(s series.Series, scheme Scheme) (bits.Bits, error) {
	if !scheme.valid() {
		return nil, fmt.Errorf("%w %v", ErrUnknownScheme, scheme)
	}
	per := scheme.PointsPerBit()
	if len(s)%per != 0 {
		return nil, fmt.Errorf("%w: %d samples for %v", ErrMalformedSeries, len(s), scheme)
	}

	n := len(s) / per
	out := make(bits.Bits, 0, n)
	prev := initialState(scheme).Level
	for i := 0; i < n; i++ {
		first := sign(s[i*per].Y)
		last := sign(s[i*per+per-1].Y)

		var bit bool
		switch scheme {
		case NRZL:
			bit = first < 0
		case NRZI:
			bit = first != prev
		case RZ:
			bit = first > 0
		case Manchester:
			bit = first < 0
		case DiffManchester:
			bit = first == prev
		case AMI:
			bit = first != 0
		case Pseudoternary:
			bit = first == 0
		case MLT3:
			bit = first != prev
		}
		out = append(out, bit)
		prev = last
	}
	return out, nil
}

// Transitions counts level changes, including the jumps between the end of
// one interval and the start of the next.
func Transitions(s series.Series) int {
	n := 0
	for i := 1; i < len(s); i++ {
		if sign(s[i].Y) != sign(s[i-1].Y) {
			n++
		}
	}
	return n
}

func sign(v float64) float64 {
	const eps = 1e-9
	switch {
	case v > eps:
		return 1
	case v < -eps:
		return -1
	}
	return 0
}
