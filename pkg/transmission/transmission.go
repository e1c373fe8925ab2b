// Package transmission shows how a bit string crosses a link in serial,
// asynchronous and parallel mode.
package transmission

import (
	"fmt"
	"strings"
	"time"

	"CommLab/pkg/bits"
	"CommLab/pkg/commerr"
)

type Mode int

const (
	Serial Mode = iota
	Asynchronous
	Parallel
)

var ErrUnknownMode = fmt.Errorf("%w: unknown transmission mode", commerr.ErrConfiguration)

func (m Mode) String() string {
	switch m {
	case Serial:
		return "serial"
	case Asynchronous:
		return "asynchronous"
	case Parallel:
		return "parallel"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

func ParseMode(name string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "serial":
		return Serial, nil
	case "asynchronous", "async":
		return Asynchronous, nil
	case "parallel":
		return Parallel, nil
	}
	return 0, fmt.Errorf("%w %q", ErrUnknownMode, name)
}

const (
	// BitSpacing separates departures on a single wire.
	BitSpacing = 600 * time.Millisecond
	// BitCost is the per-bit share of the total run time on a single wire.
	BitCost = 500 * time.Millisecond
	// Settle is added to every run after the last bit lands.
	Settle = 500 * time.Millisecond
)

type Role int

const (
	DataBit Role = iota
	StartBit
	StopBit
)

func (r Role) String() string {
	switch r {
	case StartBit:
		return "start"
	case StopBit:
		return "stop"
	}
	return "data"
}

// Frame returns the bits as they go on the wire. Asynchronous mode wraps the
// data in a 0 start bit and a 1 stop bit.
func Frame(data bits.Bits, mode Mode) bits.Bits {
	if mode != Asynchronous {
		return append(bits.Bits(nil), data...)
	}
	framed := make(bits.Bits, 0, len(data)+2)
	framed = append(framed, false)
	framed = append(framed, data...)
	return append(framed, true)
}

// BitEvent is one bit's trip across the link.
type BitEvent struct {
	Index  int
	Lane   int
	Bit    bool
	Role   Role
	Depart time.Duration
	Arrive time.Duration
}

type Plan struct {
	Mode     Mode
	Framed   bits.Bits
	Events   []BitEvent
	Duration time.Duration
	// Received is what the receiver hands up once the run ends: the data
	// without framing bits.
	Received bits.Bits
}

// Schedule plans the trip of data across a link whose bits take travel to
// cross. Serial and asynchronous bits share lane 0 and leave BitSpacing
// apart; parallel bits each get their own lane and leave together.
func Schedule(data bits.Bits, mode Mode, travel time.Duration) Plan {
	framed := Frame(data, mode)
	p := Plan{
		Mode:     mode,
		Framed:   framed,
		Events:   make([]BitEvent, len(framed)),
		Duration: Duration(len(framed), mode, travel),
		Received: append(bits.Bits(nil), data...),
	}
	for i, bit := range framed {
		e := BitEvent{Index: i, Bit: bit}
		if mode == Parallel {
			e.Lane = i
		} else {
			e.Depart = time.Duration(i) * BitSpacing
		}
		e.Arrive = e.Depart + travel
		if mode == Asynchronous {
			switch i {
			case 0:
				e.Role = StartBit
			case len(framed) - 1:
				e.Role = StopBit
			}
		}
		p.Events[i] = e
	}
	return p
}

// Duration is how long a run of n framed bits keeps the link busy. It is
// n·BitCost + travel + Settle on a single wire, stretched when needed so the
// run never ends before the last bit, which departs (n-1)·BitSpacing in, has
// landed and settled.
func Duration(n int, mode Mode, travel time.Duration) time.Duration {
	if mode == Parallel || n <= 0 {
		return travel + Settle
	}
	last := time.Duration(n-1)*BitSpacing + travel + Settle
	return max(time.Duration(n)*BitCost+travel+Settle, last)
}
