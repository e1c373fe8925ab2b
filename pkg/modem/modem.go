// Package modem generates analog (AM/FM/PM) and digital (ASK/FSK/PSK)
// modulated waveforms and the envelope-detector demodulation demo.
package modem

import (
	"fmt"
	"strings"

	"CommLab/pkg/commerr"
	"CommLab/pkg/series"
)

type Kind int

const (
	AM Kind = iota
	FM
	PM
	ASK
	FSK
	PSK
)

var ErrUnknownKind = fmt.Errorf("%w: unknown modulation kind", commerr.ErrConfiguration)

var kindNames = map[Kind]string{
	AM:  "AM",
	FM:  "FM",
	PM:  "PM",
	ASK: "ASK",
	FSK: "FSK",
	PSK: "PSK",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Digital reports whether k keys a bit sequence rather than an analog message.
func (k Kind) Digital() bool {
	return k == ASK || k == FSK || k == PSK
}

func ParseKind(name string) (Kind, error) {
	key := strings.ToUpper(strings.TrimSpace(name))
	for k, n := range kindNames {
		if n == key {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w %q", ErrUnknownKind, name)
}

// Params carries the inputs of either family; only the half matching the
// kind is read.
type Params struct {
	Analog  Analog
	Digital Digital
}

// Modulate dispatches to the analog or digital generator for kind.
func Modulate(kind Kind, p Params) (series.Series, error) {
	switch kind {
	case AM, FM, PM:
		return p.Analog.Modulate(kind)
	case ASK, FSK, PSK:
		return p.Digital.Modulate(kind)
	}
	return nil, fmt.Errorf("%w %v", ErrUnknownKind, kind)
}
