package transmission

import (
	"testing"
	"time"

	"CommLab/pkg/bits"
	"CommLab/pkg/commerr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFrame(t *testing.T) {
	data := bits.MustParse("10110011")
	assert.Equal(t, "10110011", Frame(data, Serial).String())
	assert.Equal(t, "10110011", Frame(data, Parallel).String())
	assert.Equal(t, "0101100111", Frame(data, Asynchronous).String())
	assert.Equal(t, "01", Frame(nil, Asynchronous).String())

	framed := Frame(data, Serial)
	framed[0] = false
	assert.True(t, data[0])
}

func TestScheduleSerial(t *testing.T) {
	p := Schedule(bits.MustParse("101"), Serial, 2*time.Second)
	require.Len(t, p.Events, 3)
	for i, e := range p.Events {
		assert.Equal(t, 0, e.Lane)
		assert.Equal(t, time.Duration(i)*600*time.Millisecond, e.Depart)
		assert.Equal(t, e.Depart+2*time.Second, e.Arrive)
		assert.Equal(t, DataBit, e.Role)
	}
	assert.Equal(t, 1500*time.Millisecond+2*time.Second+500*time.Millisecond, p.Duration)
	assert.Equal(t, "101", p.Received.String())
}

func TestScheduleAsynchronous(t *testing.T) {
	p := Schedule(bits.MustParse("11"), Asynchronous, time.Second)
	require.Len(t, p.Events, 4)
	assert.Equal(t, StartBit, p.Events[0].Role)
	assert.False(t, p.Events[0].Bit)
	assert.Equal(t, DataBit, p.Events[1].Role)
	assert.Equal(t, StopBit, p.Events[3].Role)
	assert.True(t, p.Events[3].Bit)
	assert.Equal(t, 1800*time.Millisecond, p.Events[3].Depart)
	assert.Equal(t, 2*time.Second+time.Second+500*time.Millisecond, p.Duration)
	assert.Equal(t, "11", p.Received.String())
}

func TestScheduleParallel(t *testing.T) {
	p := Schedule(bits.MustParse("10110011"), Parallel, 2*time.Second)
	require.Len(t, p.Events, 8)
	for i, e := range p.Events {
		assert.Equal(t, i, e.Lane)
		assert.Zero(t, e.Depart)
		assert.Equal(t, 2*time.Second, e.Arrive)
	}
	assert.Equal(t, 2500*time.Millisecond, p.Duration)
}

func TestDurationCoversLastArrival(t *testing.T) {
	data := bits.MustParse("1011001110110011")
	for _, mode := range []Mode{Serial, Asynchronous} {
		p := Schedule(data, mode, 2*time.Second)
		last := p.Events[len(p.Events)-1]
		assert.GreaterOrEqual(t, p.Duration, last.Arrive+Settle, mode.String())
	}

	p := Schedule(data, Serial, 2*time.Second)
	assert.Equal(t, 11500*time.Millisecond, p.Duration)
	assert.Equal(t, 2500*time.Millisecond, Duration(0, Serial, 2*time.Second))
}

func TestParseMode(t *testing.T) {
	for name, want := range map[string]Mode{
		"serial":       Serial,
		" Async ":      Asynchronous,
		"ASYNCHRONOUS": Asynchronous,
		"parallel":     Parallel,
	} {
		got, err := ParseMode(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
		if name == "serial" {
			assert.Equal(t, name, got.String())
		}
	}

	_, err := ParseMode("duplex")
	assert.ErrorIs(t, err, ErrUnknownMode)
	assert.ErrorIs(t, err, commerr.ErrConfiguration)
}
