// Package wave synthesises the basic analog and digital test signals.
package wave

import (
	"fmt"
	"math"
	"strings"

	"CommLab/pkg/commerr"
	"CommLab/pkg/series"
)

type Kind int

const (
	Sine Kind = iota
	Square
	Chirp
)

const DefaultPoints = 100

var ErrUnknownKind = fmt.Errorf("%w: unknown wave kind", commerr.ErrConfiguration)

var kindNames = map[Kind]string{
	Sine:   "sine",
	Square: "square",
	Chirp:  "chirp",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ParseKind accepts the kind names case-insensitively, plus the page labels
// "analog" (sine) and "digital" (square).
func ParseKind(name string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "sine", "sin", "analog":
		return Sine, nil
	case "square", "digital":
		return Square, nil
	case "chirp":
		return Chirp, nil
	}
	return 0, fmt.Errorf("%w %q", ErrUnknownKind, name)
}

// Config describes one window of a periodic signal. Sample i sits at angle
// (i/Points)·2π and is plotted at x = i/10.
type Config struct {
	Kind      Kind
	Frequency float64
	Amplitude float64
	Phase     float64
	Points    int

	// EndFrequency is the final frequency of a Chirp sweep.
	EndFrequency float64
}

func (c Config) New() (series.Series, error) {
	n := c.Points
	if n <= 0 {
		n = DefaultPoints
	}

	var f func(i int) float64
	switch c.Kind {
	case Sine:
		f = func(i int) float64 {
			return c.Amplitude * math.Sin(c.Frequency*angle(i, n)+c.Phase)
		}
	case Square:
		f = func(i int) float64 {
			if math.Sin(c.Frequency*angle(i, n)) >= 0 {
				return c.Amplitude
			}
			return -c.Amplitude
		}
	case Chirp:
		rate := c.EndFrequency - c.Frequency
		f = func(i int) float64 {
			tau := float64(i) / float64(n)
			return c.Amplitude * math.Sin(2*math.Pi*(rate/2*tau+c.Frequency)*tau+c.Phase)
		}
	default:
		return nil, fmt.Errorf("%w %v", ErrUnknownKind, c.Kind)
	}

	out := series.New(n)
	for i := 0; i < n; i++ {
		out = append(out, series.Sample{X: X(i), Y: f(i)})
	}
	return out, nil
}

// Generate is the positional form of Config.New.
func Generate(kind Kind, frequency, amplitude, phase float64, points int) (series.Series, error) {
	return Config{
		Kind:      kind,
		Frequency: frequency,
		Amplitude: amplitude,
		Phase:     phase,
		Points:    points,
	}.New()
}

// X is the plotted position of sample i, rounded to two decimals.
func X(i int) float64 {
	return math.Round(float64(i)*10) / 100
}

func angle(i, n int) float64 {
	return float64(i) / float64(n) * 2 * math.Pi
}
