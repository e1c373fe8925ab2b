package modem

import (
	"math"
	"testing"

	"CommLab/pkg/bits"
	"CommLab/pkg/commerr"
	"CommLab/pkg/series"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var analog = Analog{
	CarrierAmplitude: 1,
	CarrierFreq:      10,
	MessageAmplitude: 1,
	MessageFreq:      1,
	Kf:               DefaultKf,
	Kp:               DefaultKp,
}

func TestAnalogDefaults(t *testing.T) {
	for _, kind := range []Kind{AM, FM, PM} {
		s, err := Modulate(kind, Params{Analog: analog})
		require.NoError(t, err)
		require.Len(t, s, DefaultAnalogPoints, kind.String())
		assert.Equal(t, 0.0, s[0].X)
		assert.Equal(t, 499.0, s[499].X)
	}
}

func TestAM(t *testing.T) {
	s, err := analog.Modulate(AM)
	require.NoError(t, err)

	for _, i := range []int{0, 37, 123, 499} {
		tt := float64(i) / 50
		want := (1 + math.Sin(tt)) * math.Sin(10*tt)
		assert.InDelta(t, want, s[i].Y, 1e-12)
	}
	// envelope never exceeds Ac + Am
	assert.LessOrEqual(t, s.Peak(), 2.0)
}

func TestFMUsesMessageIntegral(t *testing.T) {
	a := analog
	a.MessageAmplitude = 2
	a.MessageFreq = 4
	s, err := a.Modulate(FM)
	require.NoError(t, err)

	for _, i := range []int{0, 10, 250} {
		tt := float64(i) / 50
		want := math.Sin(10*tt + DefaultKf*(-2.0/4.0)*math.Cos(4*tt))
		assert.InDelta(t, want, s[i].Y, 1e-12)
	}
	assert.LessOrEqual(t, s.Peak(), 1.0)
}

func TestFMWithDCMessageIsCarrier(t *testing.T) {
	a := analog
	a.MessageFreq = 0
	fm, err := a.Modulate(FM)
	require.NoError(t, err)
	assert.Equal(t, a.Carrier().Ys(), fm.Ys())
}

func TestPM(t *testing.T) {
	a := analog
	a.Kp = 0.5
	s, err := a.Modulate(PM)
	require.NoError(t, err)

	tt := 77.0 / 50
	assert.InDelta(t, math.Sin(10*tt+0.5*math.Sin(tt)), s[77].Y, 1e-12)
}

func TestZeroMessageLeavesCarrier(t *testing.T) {
	a := analog
	a.MessageAmplitude = 0
	carrier := a.Carrier()
	for _, kind := range []Kind{AM, FM, PM} {
		s, err := a.Modulate(kind)
		require.NoError(t, err)
		for i := range s {
			assert.InDelta(t, carrier[i].Y, s[i].Y, 1e-12, "%v sample %d", kind, i)
		}
	}
}

func TestMessageAndCarrier(t *testing.T) {
	a := analog
	a.Points = 10
	m := a.Message()
	c := a.Carrier()
	require.Len(t, m, 10)
	require.Len(t, c, 10)
	assert.InDelta(t, math.Sin(9.0/50), m[9].Y, 1e-12)
	assert.InDelta(t, math.Sin(90.0/50), c[9].Y, 1e-12)
}

func TestDigital(t *testing.T) {
	d := Digital{Bits: bits.MustParse("10"), Amplitude: 1.5, Frequency: 2}

	ask, err := Modulate(ASK, Params{Digital: d})
	require.NoError(t, err)
	require.Len(t, ask, 2*DefaultSamplesPerBit)

	fsk, err := d.Modulate(FSK)
	require.NoError(t, err)
	psk, err := d.Modulate(PSK)
	require.NoError(t, err)

	for x := 0; x < 200; x++ {
		tt := float64(x) / 50
		assert.Equal(t, float64(x), ask[x].X)
		if x < 100 {
			assert.InDelta(t, 1.5*math.Sin(2*tt), ask[x].Y, 1e-12)
			assert.InDelta(t, 1.5*math.Sin(4*tt), fsk[x].Y, 1e-12)
			assert.InDelta(t, 1.5*math.Sin(2*tt), psk[x].Y, 1e-12)
		} else {
			assert.Equal(t, 0.0, ask[x].Y)
			assert.InDelta(t, 1.5*math.Sin(2*tt), fsk[x].Y, 1e-12)
			assert.InDelta(t, -1.5*math.Sin(2*tt), psk[x].Y, 1e-9)
		}
	}
}

func TestDigitalSamplesPerBit(t *testing.T) {
	d := Digital{Bits: bits.MustParse("101"), Amplitude: 1, Frequency: 1, SamplesPerBit: 7}
	s, err := d.Modulate(PSK)
	require.NoError(t, err)
	assert.Len(t, s, 21)
	assert.True(t, s.Monotonic())
}

func TestModulateRejectsUnknownKind(t *testing.T) {
	_, err := Modulate(Kind(17), Params{})
	assert.ErrorIs(t, err, ErrUnknownKind)
	assert.ErrorIs(t, err, commerr.ErrConfiguration)

	_, err = analog.Modulate(ASK)
	assert.ErrorIs(t, err, ErrUnknownKind)
	_, err = Digital{}.Modulate(AM)
	assert.ErrorIs(t, err, ErrUnknownKind)

	_, err = ParseKind("QAM")
	assert.ErrorIs(t, err, commerr.ErrConfiguration)
	k, err := ParseKind(" fsk")
	require.NoError(t, err)
	assert.Equal(t, FSK, k)
}

func TestEnvelopeDemo(t *testing.T) {
	r := EnvelopeDemo{CarrierFreq: 10, MessageFreq: 1, Depth: 0.5}.New()

	require.Len(t, r.Modulated, DefaultAnalogPoints)
	require.Len(t, r.Rectified, DefaultAnalogPoints)
	require.Len(t, r.Envelope, DefaultAnalogPoints)

	for i := range r.Modulated {
		tt := float64(i) / 50
		assert.InDelta(t, (1+0.5*math.Sin(tt))*math.Sin(10*tt), r.Modulated[i].Y, 1e-12)
		assert.GreaterOrEqual(t, r.Rectified[i].Y, 0.0)
		assert.InDelta(t, 1+0.5*math.Sin(tt), r.Envelope[i].Y, 1e-12)
		// the rectified signal never rises above the envelope it tracks
		assert.LessOrEqual(t, r.Rectified[i].Y, r.Envelope[i].Y+1e-12)
	}
}

func TestDetectRecoversBits(t *testing.T) {
	want := bits.MustParse("1011001110")
	for _, kind := range []Kind{ASK, FSK, PSK} {
		d := Digital{Bits: want, Amplitude: 1, Frequency: 10}
		s, err := d.Modulate(kind)
		require.NoError(t, err)

		// a little interference the receiver must ride through
		for i := range s {
			s[i].Y += 0.2 * math.Sin(float64(i)/7)
		}

		got, err := Digital{Amplitude: 1, Frequency: 10}.Detect(s, kind)
		require.NoError(t, err, kind.String())
		assert.Equal(t, want.String(), got.String(), kind.String())
	}
}

func TestDetectErrors(t *testing.T) {
	d := Digital{Amplitude: 1, Frequency: 10, SamplesPerBit: 10}
	_, err := d.Detect(make(series.Series, 15), ASK)
	assert.ErrorIs(t, err, ErrSignalLength)
	assert.ErrorIs(t, err, commerr.ErrDomain)

	_, err = d.Detect(make(series.Series, 20), AM)
	assert.ErrorIs(t, err, ErrUnknownKind)

	got, err := d.Detect(nil, PSK)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestZeroSensitivityIsBareCarrier(t *testing.T) {
	a := analog
	a.Kf, a.Kp = 0, 0
	carrier := make([]float64, DefaultAnalogPoints)
	for i := range carrier {
		carrier[i] = math.Sin(10 * float64(i) / AnalogTimeScale)
	}
	for _, kind := range []Kind{FM, PM} {
		s, err := a.Modulate(kind)
		require.NoError(t, err)
		for i := range s {
			assert.InDelta(t, carrier[i], s[i].Y, 1e-12, kind.String())
		}
	}

	r := EnvelopeDemo{CarrierFreq: 10, MessageFreq: 1}.New()
	for i := range r.Envelope {
		assert.InDelta(t, 1.0, r.Envelope[i].Y, 1e-12)
	}
}
