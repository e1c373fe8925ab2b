package linecode

import (
	"fmt"
	"strings"

	"CommLab/pkg/commerr"
)

type Scheme int

const (
	NRZL Scheme = iota
	NRZI
	RZ
	Manchester
	DiffManchester
	AMI
	Pseudoternary
	MLT3
)

var ErrUnknownScheme = fmt.Errorf("%w: unknown encoding scheme", commerr.ErrConfiguration)

// Schemes lists every scheme in display order.
var Schemes = []Scheme{NRZL, NRZI, RZ, Manchester, DiffManchester, AMI, Pseudoternary, MLT3}

var schemeNames = map[Scheme]string{
	NRZL:           "NRZ-L",
	NRZI:           "NRZ-I",
	RZ:             "RZ",
	Manchester:     "Manchester",
	DiffManchester: "Diff-Manchester",
	AMI:            "AMI",
	Pseudoternary:  "Pseudoternary",
	MLT3:           "MLT-3",
}

func (s Scheme) String() string {
	if name, ok := schemeNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Scheme(%d)", int(s))
}

// MidBit reports whether the scheme may change level at the middle of a bit.
func (s Scheme) MidBit() bool {
	switch s {
	case RZ, Manchester, DiffManchester:
		return true
	}
	return false
}

// PointsPerBit is the number of samples Encode emits for each bit.
func (s Scheme) PointsPerBit() int {
	if s.MidBit() {
		return 4
	}
	return 2
}

func (s Scheme) valid() bool {
	_, ok := schemeNames[s]
	return ok
}

func normalize(name string) string {
	r := strings.NewReplacer("-", "", "_", "", " ", "")
	return strings.ToLower(r.Replace(strings.TrimSpace(name)))
}

// ParseScheme matches a scheme name ignoring case, spaces, dashes and underscores.
func ParseScheme(name string) (Scheme, error) {
	key := normalize(name)
	for s, n := range schemeNames {
		if normalize(n) == key {
			return s, nil
		}
	}
	switch key {
	case "differentialmanchester":
		return DiffManchester, nil
	case "bipolarami":
		return AMI, nil
	}
	return 0, fmt.Errorf("%w %q", ErrUnknownScheme, name)
}

func (s Scheme) MarshalText() ([]byte, error) {
	if !s.valid() {
		return nil, fmt.Errorf("%w %d", ErrUnknownScheme, int(s))
	}
	return []byte(s.String()), nil
}

func (s *Scheme) UnmarshalText(text []byte) (err error) {
	*s, err = ParseScheme(string(text))
	return
}
