package linecode

import (
	"errors"
	"testing"

	"CommLab/pkg/bits"
	"CommLab/pkg/commerr"
	"CommLab/pkg/series"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// halves returns the (first, second) half level of every bit interval.
func halves(s series.Series, scheme Scheme) [][2]float64 {
	per := scheme.PointsPerBit()
	out := make([][2]float64, 0, len(s)/per)
	for i := 0; i+per <= len(s); i += per {
		out = append(out, [2]float64{s[i].Y, s[i+per-1].Y})
	}
	return out
}

func TestEncodeLevels(t *testing.T) {
	input := bits.MustParse("01101")

	tests := []struct {
		scheme Scheme
		want   [][2]float64
	}{
		{NRZL, [][2]float64{{1, 1}, {-1, -1}, {-1, -1}, {1, 1}, {-1, -1}}},
		{NRZI, [][2]float64{{1, 1}, {-1, -1}, {1, 1}, {1, 1}, {-1, -1}}},
		{RZ, [][2]float64{{-1, 0}, {1, 0}, {1, 0}, {-1, 0}, {1, 0}}},
		{Manchester, [][2]float64{{1, -1}, {-1, 1}, {-1, 1}, {1, -1}, {-1, 1}}},
		{DiffManchester, [][2]float64{{-1, 1}, {1, -1}, {-1, 1}, {-1, 1}, {1, -1}}},
		{AMI, [][2]float64{{0, 0}, {1, 1}, {-1, -1}, {0, 0}, {1, 1}}},
		{Pseudoternary, [][2]float64{{1, 1}, {0, 0}, {0, 0}, {-1, -1}, {0, 0}}},
		{MLT3, [][2]float64{{0, 0}, {1, 1}, {0, 0}, {0, 0}, {-1, -1}}},
	}

	for _, tt := range tests {
		t.Run(tt.scheme.String(), func(t *testing.T) {
			s, _, err := Encode(input, tt.scheme)
			require.NoError(t, err)
			assert.Equal(t, tt.want, halves(s, tt.scheme))
		})
	}
}

func TestTransitionPlacement(t *testing.T) {
	// Mid-bit schemes put the change at x = i + 0.5 with a duplicated point.
	s, _, err := Encode(bits.MustParse("0"), Manchester)
	require.NoError(t, err)
	assert.Equal(t, series.Series{{X: 0, Y: 1}, {X: 0.5, Y: 1}, {X: 0.5, Y: -1}, {X: 1, Y: -1}}, s)

	s, _, err = Encode(bits.MustParse("1"), RZ)
	require.NoError(t, err)
	assert.Equal(t, series.Series{{X: 0, Y: 1}, {X: 0.5, Y: 1}, {X: 0.5, Y: 0}, {X: 1, Y: 0}}, s)

	// NRZ-I changes at the start of the interval, never in the middle.
	s, _, err = Encode(bits.MustParse("11"), NRZI)
	require.NoError(t, err)
	assert.Equal(t, series.Series{{X: 0, Y: -1}, {X: 1, Y: -1}, {X: 1, Y: 1}, {X: 2, Y: 1}}, s)

	// Diff-Manchester: a run of ones still transitions once per bit at the middle.
	s, _, err = Encode(bits.MustParse("11"), DiffManchester)
	require.NoError(t, err)
	assert.Equal(t, series.Series{
		{X: 0, Y: 1}, {X: 0.5, Y: 1}, {X: 0.5, Y: -1}, {X: 1, Y: -1},
		{X: 1, Y: -1}, {X: 1.5, Y: -1}, {X: 1.5, Y: 1}, {X: 2, Y: 1},
	}, s)
}

func TestAMIExample(t *testing.T) {
	s, err := EncodeString("10", AMI)
	require.NoError(t, err)
	assert.Equal(t, series.Series{{X: 0, Y: 1}, {X: 1, Y: 1}, {X: 1, Y: 0}, {X: 2, Y: 0}}, s)
}

func TestPointsPerBit(t *testing.T) {
	input := bits.MustParse("1001110100101100")
	for _, scheme := range Schemes {
		s, _, err := Encode(input, scheme)
		require.NoError(t, err)
		assert.Len(t, s, len(input)*scheme.PointsPerBit(), scheme.String())
		assert.True(t, s.Monotonic(), scheme.String())
	}
	assert.Equal(t, 4, Manchester.PointsPerBit())
	assert.Equal(t, 2, MLT3.PointsPerBit())
}

func TestAMIAlternates(t *testing.T) {
	for _, text := range []string{"1", "111111", "1010011101", "0000", "10000001"} {
		b := bits.MustParse(text)
		s, _, err := Encode(b, AMI)
		require.NoError(t, err)

		last := 0.0
		for i, iv := range halves(s, AMI) {
			if !b[i] {
				assert.Equal(t, 0.0, iv[0], "zero bit %d of %s", i, text)
				continue
			}
			assert.NotEqual(t, 0.0, iv[0])
			assert.NotEqual(t, last, iv[0], "mark %d of %s repeats polarity", i, text)
			last = iv[0]
		}
	}
}

func TestMLT3Cycle(t *testing.T) {
	b := bits.MustParse("1111111110011")
	s, st, err := Encode(b, MLT3)
	require.NoError(t, err)

	levels := halves(s, MLT3)
	prev := 0.0
	lastNonZero := 0.0
	for i, iv := range levels {
		cur := iv[0]
		if !b[i] {
			assert.Equal(t, prev, cur, "bit %d is zero but level moved", i)
			continue
		}
		assert.NotEqual(t, prev, cur, "bit %d is one but level held", i)
		assert.False(t, prev != 0 && cur != 0, "jumped between nonzero levels at bit %d", i)
		if cur != 0 {
			assert.NotEqual(t, lastNonZero, cur, "nonzero level repeated at bit %d", i)
			lastNonZero = cur
		}
		prev = cur
	}
	assert.Equal(t, prev, st.Level)
}

func TestRoundTrip(t *testing.T) {
	s, err := EncodeString("1011", NRZL)
	require.NoError(t, err)

	got, err := Decode(s, NRZL)
	require.NoError(t, err)
	assert.Equal(t, "1011", got.String())

	inputs := []string{"0", "1", "10110100", "0000000011111111", "1100101000111"}
	for _, scheme := range Schemes {
		for _, text := range inputs {
			s, _, err := Encode(bits.MustParse(text), scheme)
			require.NoError(t, err)
			got, err := Decode(s, scheme)
			require.NoError(t, err)
			assert.Equal(t, text, got.String(), "%v %s", scheme, text)
		}
	}
}

func TestDecodeRejectsTruncatedSeries(t *testing.T) {
	s, _, err := Encode(bits.MustParse("101"), Manchester)
	require.NoError(t, err)

	_, err = Decode(s[:5], Manchester)
	assert.ErrorIs(t, err, ErrMalformedSeries)
	assert.ErrorIs(t, err, commerr.ErrDomain)
}

func TestTransitions(t *testing.T) {
	s, _, err := Encode(bits.MustParse("0000"), Manchester)
	require.NoError(t, err)
	// one mid-bit change per bit plus one boundary change between bits
	assert.Equal(t, 7, Transitions(s))

	s, _, err = Encode(bits.MustParse("0000"), NRZL)
	require.NoError(t, err)
	assert.Equal(t, 0, Transitions(s))
}

func TestSanitizedInput(t *testing.T) {
	s, err := EncodeString("1 0-x", AMI)
	require.NoError(t, err)
	assert.Len(t, s, 4)

	empty, err := EncodeString("abc", NRZL)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestUnknownScheme(t *testing.T) {
	_, err := EncodeNamed("101", "4B5B")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownScheme))
	assert.True(t, errors.Is(err, commerr.ErrConfiguration))

	_, _, err = Encode(bits.MustParse("1"), Scheme(99))
	assert.ErrorIs(t, err, ErrUnknownScheme)

	_, err = Decode(nil, Scheme(99))
	assert.ErrorIs(t, err, ErrUnknownScheme)
}

func TestParseScheme(t *testing.T) {
	for _, scheme := range Schemes {
		got, err := ParseScheme(scheme.String())
		require.NoError(t, err)
		assert.Equal(t, scheme, got)
	}

	for name, want := range map[string]Scheme{
		"nrzl":                    NRZL,
		"nrz_i":                   NRZI,
		"MLT3":                    MLT3,
		"differential manchester": DiffManchester,
		"diff-manchester":         DiffManchester,
		" pseudoternary ":         Pseudoternary,
	} {
		got, err := ParseScheme(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}

	var s Scheme
	require.NoError(t, s.UnmarshalText([]byte("manchester")))
	assert.Equal(t, Manchester, s)
	text, err := AMI.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "AMI", string(text))
}
