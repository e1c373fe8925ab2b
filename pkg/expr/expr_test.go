package expr

import (
	"math"
	"testing"

	"CommLab/pkg/commerr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEval(t *testing.T) {
	tests := []struct {
		src  string
		t    float64
		want float64
	}{
		{"1 + 2 * 3", 0, 7},
		{"(1 + 2) * 3", 0, 9},
		{"t", 4, 4},
		{"2t", 4, 8},
		{"2 t + 1", 4, 9},
		{"-t^2", 3, -9},
		{"2^3^2", 0, 512},
		{"10 / 4 / 5", 0, 0.5},
		{"3 - 2 - 1", 0, 0},
		{"sin(pi/2)", 0, 1},
		{"2sin(t)", math.Pi / 2, 2},
		{"cos(2 pi t)", 1, 1},
		{"(t+1)(t-1)", 3, 8},
		{"sin(t) + 0.5cos(3t)", 0, 0.5},
		{"e", 0, math.E},
		{"1e3", 0, 1000},
		{"1E+3", 0, 1000},
		{"2.5e-2sin(t)", math.Pi / 2, 0.025},
		{"2e", 0, 2 * math.E},
		{"2e-t", 1, 2*math.E - 1},
		{"+-t", 2, -2},
		{"SIN(T)", math.Pi / 2, 1},
		{".5t", 2, 1},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			n, err := Parse(tt.src)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, n.Eval(tt.t), 1e-12)
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		src  string
		want error
	}{
		{"", ErrSyntax},
		{"   ", ErrSyntax},
		{"1 +", ErrSyntax},
		{"1e+", ErrSyntax},
		{"(t", ErrSyntax},
		{"t)", ErrSyntax},
		{"sin t", ErrSyntax},
		{"1..2", ErrSyntax},
		{"t % 2", ErrSyntax},
		{"alert(1)", ErrIdentifier},
		{"x", ErrIdentifier},
		{"tan(t)", ErrIdentifier},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			_, err := Parse(tt.src)
			assert.ErrorIs(t, err, tt.want)
			assert.ErrorIs(t, err, commerr.ErrConfiguration)
		})
	}
}

func TestString(t *testing.T) {
	n := MustParse("2sin(t) - 1")
	assert.Equal(t, "((2 * sin(t)) - 1)", n.String())
	assert.Equal(t, "(-t)", MustParse("-t").String())
	assert.Panics(t, func() { MustParse("(") })
}

func TestSample(t *testing.T) {
	got := Sample(MustParse("t^2"), []float64{0, 1, 2, 3})
	assert.Equal(t, []float64{0, 1, 4, 9}, got)
}
