package mux

import (
	"fmt"
	"math"
	"math/cmplx"

	"CommLab/pkg/commerr"
	"CommLab/pkg/expr"
	"CommLab/pkg/series"

	"github.com/mjibson/go-dsp/fft"
	"gonum.org/v1/gonum/floats"
)

var (
	ErrBandwidth = fmt.Errorf("%w: bandwidth must be a non-negative number", commerr.ErrDomain)
	ErrGuardBand = fmt.Errorf("%w: guard band must be a non-negative number", commerr.ErrDomain)
)

type BlockKind int

const (
	SignalBlock BlockKind = iota
	GuardBlock
)

func (k BlockKind) String() string {
	if k == GuardBlock {
		return "guard"
	}
	return "signal"
}

// SpectrumBlock is one allocation on the frequency axis. Owner is the sender
// id for signal blocks and -1 for guard bands.
type SpectrumBlock struct {
	Kind      BlockKind
	StartFreq float64
	EndFreq   float64
	Owner     int
}

func (b SpectrumBlock) Width() float64  { return b.EndFreq - b.StartFreq }
func (b SpectrumBlock) Center() float64 { return (b.StartFreq + b.EndFreq) / 2 }

func badWidth(w float64) bool {
	return w < 0 || math.IsNaN(w) || math.IsInf(w, 0)
}

// LayoutFDM places each sender's band side by side starting at 0, with a
// guard band between neighbours.
func LayoutFDM(senders []Sender, guardBand float64) ([]SpectrumBlock, error) {
	return LayoutFDMFrom(0, senders, guardBand)
}

func LayoutFDMFrom(base float64, senders []Sender, guardBand float64) ([]SpectrumBlock, error) {
	if badWidth(guardBand) {
		return nil, fmt.Errorf("%w: got %v", ErrGuardBand, guardBand)
	}
	if err := validateSenders(senders); err != nil {
		return nil, err
	}

	blocks := make([]SpectrumBlock, 0, max(2*len(senders)-1, 0))
	at := base
	for i, s := range senders {
		if badWidth(s.Bandwidth) {
			return nil, fmt.Errorf("%w: sender %d has %v", ErrBandwidth, s.ID, s.Bandwidth)
		}
		if i > 0 && guardBand > 0 {
			blocks = append(blocks, SpectrumBlock{Kind: GuardBlock, StartFreq: at, EndFreq: at + guardBand, Owner: -1})
			at += guardBand
		}
		blocks = append(blocks, SpectrumBlock{Kind: SignalBlock, StartFreq: at, EndFreq: at + s.Bandwidth, Owner: s.ID})
		at += s.Bandwidth
	}
	return blocks, nil
}

// TotalWidth is the span from the first block's start to the last block's end.
func TotalWidth(blocks []SpectrumBlock) float64 {
	if len(blocks) == 0 {
		return 0
	}
	return blocks[len(blocks)-1].EndFreq - blocks[0].StartFreq
}

type CompositeConfig struct {
	Points    int     // default 500
	TimeScale float64 // x per t, default 50
	// ShiftByBand multiplies each channel by cos(ShiftScale·center·t) so
	// bands look different on screen.
	ShiftByBand bool
	ShiftScale  float64 // default 0.01
}

type CompositeResult struct {
	Channels map[int]series.Series
	Sum      series.Series
}

// Composite sums the senders' waveforms sample by sample. A sender with an
// Equation is drawn from it; otherwise it is Amplitude·sin((k+1)t) for the
// k-th sender. This is a display approximation: nothing is actually
// translated to its band.
func Composite(senders []Sender, blocks []SpectrumBlock, cfg CompositeConfig) (CompositeResult, error) {
	if cfg.Points <= 0 {
		cfg.Points = 500
	}
	if cfg.TimeScale == 0 {
		cfg.TimeScale = 50
	}
	if cfg.ShiftScale == 0 {
		cfg.ShiftScale = 0.01
	}

	centers := make(map[int]float64, len(blocks))
	for _, b := range blocks {
		if b.Kind == SignalBlock {
			centers[b.Owner] = b.Center()
		}
	}

	ts := make([]float64, cfg.Points)
	for i := range ts {
		ts[i] = float64(i) / cfg.TimeScale
	}

	res := CompositeResult{Channels: make(map[int]series.Series, len(senders))}
	sum := make([]float64, cfg.Points)
	for k, s := range senders {
		ys, err := channelWave(s, k, ts)
		if err != nil {
			return CompositeResult{}, err
		}
		if center, ok := centers[s.ID]; ok && cfg.ShiftByBand {
			for i, t := range ts {
				ys[i] *= math.Cos(cfg.ShiftScale * center * t)
			}
		}
		res.Channels[s.ID] = indexed(ys)
		floats.Add(sum, ys)
	}
	res.Sum = indexed(sum)
	return res, nil
}

func channelWave(s Sender, k int, ts []float64) ([]float64, error) {
	if s.Equation != "" {
		node, err := expr.Parse(s.Equation)
		if err != nil {
			return nil, fmt.Errorf("sender %d: %w", s.ID, err)
		}
		return expr.Sample(node, ts), nil
	}
	amp := s.Amplitude
	if amp == 0 {
		amp = 1
	}
	ys := make([]float64, len(ts))
	for i, t := range ts {
		ys[i] = amp * math.Sin(float64(k+1)*t)
	}
	return ys, nil
}

func indexed(ys []float64) series.Series {
	s := make(series.Series, len(ys))
	for i, y := range ys {
		s[i] = series.Sample{X: float64(i), Y: y}
	}
	return s
}

// Spectrum returns the single-sided magnitude spectrum of s sampled at
// sampleRate. X is frequency, Y is amplitude.
func Spectrum(s series.Series, sampleRate float64) series.Series {
	n := len(s)
	if n == 0 {
		return nil
	}
	bins := fft.FFTReal(s.Ys())
	out := make(series.Series, n/2+1)
	for k := range out {
		mag := cmplx.Abs(bins[k]) / float64(n)
		if k != 0 && 2*k != n {
			mag *= 2
		}
		out[k] = series.Sample{X: float64(k) * sampleRate / float64(n), Y: mag}
	}
	return out
}
