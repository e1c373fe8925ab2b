package main

import (
	"fmt"

	"CommLab/pkg/bits"
	"CommLab/pkg/filter"
	"CommLab/pkg/linecode"
	"CommLab/pkg/modem"
	"CommLab/pkg/wave"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func init() {
	var (
		kind                  string
		freq, amp, phase, end float64
		points                int
	)
	waveCmd := &cobra.Command{
		Use:   "wave",
		Short: "Generate a sine, square or chirp wave",
		RunE: func(cmd *cobra.Command, args []string) error {
			c := &cfg.Wave
			override(cmd, "kind", &c.Kind, kind)
			override(cmd, "frequency", &c.Frequency, freq)
			override(cmd, "amplitude", &c.Amplitude, amp)
			override(cmd, "phase", &c.Phase, phase)
			override(cmd, "end-frequency", &c.EndFrequency, end)
			override(cmd, "points", &c.Points, points)

			k, err := wave.ParseKind(c.Kind)
			if err != nil {
				return err
			}
			s, err := wave.Config{
				Kind:         k,
				Frequency:    c.Frequency,
				Amplitude:    c.Amplitude,
				Phase:        c.Phase,
				Points:       c.Points,
				EndFrequency: c.EndFrequency,
			}.New()
			if err != nil {
				return err
			}
			logger.Debug("wave generated", zap.Stringer("kind", k), zap.Int("points", len(s)))
			return writeSeries(cmd.OutOrStdout(), s)
		},
	}
	waveCmd.Flags().StringVarP(&kind, "kind", "k", "sine", "sine (analog), square (digital) or chirp")
	waveCmd.Flags().Float64Var(&freq, "frequency", 1, "cycles per window")
	waveCmd.Flags().Float64Var(&amp, "amplitude", 1, "peak amplitude")
	waveCmd.Flags().Float64Var(&phase, "phase", 0, "phase in radians")
	waveCmd.Flags().Float64Var(&end, "end-frequency", 10, "final frequency of a chirp")
	waveCmd.Flags().IntVarP(&points, "points", "n", wave.DefaultPoints, "number of samples")
	rootCmd.AddCommand(waveCmd)
}

func init() {
	var input, scheme string
	encodeCmd := &cobra.Command{
		Use:   "encode",
		Short: "Line-code a bit string",
		RunE: func(cmd *cobra.Command, args []string) error {
			c := &cfg.LineCode
			override(cmd, "bits", &c.Bits, input)
			override(cmd, "scheme", &c.Scheme, scheme)

			sch, err := linecode.ParseScheme(c.Scheme)
			if err != nil {
				return err
			}
			b, dropped := bits.Parse(c.Bits)
			if dropped > 0 {
				logger.Warn("non-bit characters dropped", zap.Int("dropped", dropped), zap.String("bits", b.String()))
			}
			s, st, err := linecode.Encode(b, sch)
			if err != nil {
				return err
			}
			logger.Debug("line coded",
				zap.Stringer("scheme", sch),
				zap.Int("bits", len(b)),
				zap.Int("transitions", linecode.Transitions(s)),
				zap.Float64("final_level", st.Level),
			)
			return writeSeries(cmd.OutOrStdout(), s)
		},
	}
	encodeCmd.Flags().StringVarP(&input, "bits", "b", "", "bits to encode; other characters are dropped")
	encodeCmd.Flags().StringVarP(&scheme, "scheme", "s", "nrz-l", "nrz-l, nrz-i, rz, manchester, diff-manchester, ami, pseudoternary or mlt-3")
	rootCmd.AddCommand(encodeCmd)
}

func init() {
	var (
		kind, input string
		ac, fc      float64
		am, fm      float64
		kf, kp      float64
		points, spb int
		detect      bool
	)
	modulateCmd := &cobra.Command{
		Use:   "modulate",
		Short: "Generate an AM, FM, PM, ASK, FSK or PSK waveform",
		RunE: func(cmd *cobra.Command, args []string) error {
			c := &cfg.Modulation
			override(cmd, "kind", &c.Kind, kind)
			override(cmd, "bits", &c.Bits, input)
			override(cmd, "carrier-amplitude", &c.CarrierAmplitude, ac)
			override(cmd, "carrier-freq", &c.CarrierFreq, fc)
			override(cmd, "message-amplitude", &c.MessageAmplitude, am)
			override(cmd, "message-freq", &c.MessageFreq, fm)
			override(cmd, "kf", &c.Kf, kf)
			override(cmd, "kp", &c.Kp, kp)
			override(cmd, "points", &c.Points, points)
			override(cmd, "samples-per-bit", &c.SamplesPerBit, spb)

			k, err := modem.ParseKind(c.Kind)
			if err != nil {
				return err
			}
			b, _ := bits.Parse(c.Bits)
			s, err := modem.Modulate(k, modem.Params{
				Analog: modem.Analog{
					CarrierAmplitude: c.CarrierAmplitude,
					CarrierFreq:      c.CarrierFreq,
					MessageAmplitude: c.MessageAmplitude,
					MessageFreq:      c.MessageFreq,
					Kf:               c.Kf,
					Kp:               c.Kp,
					Points:           c.Points,
				},
				Digital: modem.Digital{
					Bits:          b,
					Amplitude:     c.CarrierAmplitude,
					Frequency:     c.CarrierFreq,
					SamplesPerBit: c.SamplesPerBit,
				},
			})
			if err != nil {
				return err
			}
			logger.Debug("modulated", zap.Stringer("kind", k), zap.Int("points", len(s)))
			if detect && k.Digital() {
				got, err := modem.Digital{
					Amplitude:     c.CarrierAmplitude,
					Frequency:     c.CarrierFreq,
					SamplesPerBit: c.SamplesPerBit,
				}.Detect(s, k)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.ErrOrStderr(), "sent %s, detected %s\n", b, got)
			}
			return writeSeries(cmd.OutOrStdout(), s)
		},
	}
	f := modulateCmd.Flags()
	f.StringVarP(&kind, "kind", "k", "AM", "AM, FM, PM, ASK, FSK or PSK")
	f.StringVarP(&input, "bits", "b", "", "bits keyed by ASK, FSK and PSK")
	f.Float64Var(&ac, "carrier-amplitude", 1, "carrier amplitude")
	f.Float64Var(&fc, "carrier-freq", 10, "carrier frequency")
	f.Float64Var(&am, "message-amplitude", 0.5, "message amplitude")
	f.Float64Var(&fm, "message-freq", 1, "message frequency")
	f.Float64Var(&kf, "kf", modem.DefaultKf, "FM frequency sensitivity")
	f.Float64Var(&kp, "kp", modem.DefaultKp, "PM phase sensitivity")
	f.IntVarP(&points, "points", "n", modem.DefaultAnalogPoints, "samples of an analog waveform")
	f.IntVar(&spb, "samples-per-bit", 100, "samples per keyed bit")
	f.BoolVar(&detect, "detect", false, "run the correlation receiver on a keyed waveform")
	rootCmd.AddCommand(modulateCmd)
}

func init() {
	var (
		part   string
		fc     float64
		depth  float64
		points int
	)
	demodCmd := &cobra.Command{
		Use:   "demod",
		Short: "Envelope detector demo: modulated, rectified or envelope",
		RunE: func(cmd *cobra.Command, args []string) error {
			c := &cfg.Modulation
			override(cmd, "carrier-freq", &c.CarrierFreq, fc)
			override(cmd, "depth", &c.Depth, depth)
			override(cmd, "points", &c.Points, points)

			res := modem.EnvelopeDemo{
				CarrierFreq: c.CarrierFreq,
				MessageFreq: c.MessageFreq,
				Depth:       c.Depth,
				Points:      c.Points,
			}.New()
			switch part {
			case "modulated":
				return writeSeries(cmd.OutOrStdout(), res.Modulated)
			case "rectified":
				return writeSeries(cmd.OutOrStdout(), res.Rectified)
			case "envelope":
				return writeSeries(cmd.OutOrStdout(), res.Envelope)
			}
			return fmt.Errorf("unknown part %q", part)
		},
	}
	demodCmd.Flags().StringVar(&part, "part", "envelope", "modulated, rectified or envelope")
	demodCmd.Flags().Float64Var(&fc, "carrier-freq", 10, "carrier frequency")
	demodCmd.Flags().Float64Var(&depth, "depth", 0.5, "modulation depth")
	demodCmd.Flags().IntVarP(&points, "points", "n", modem.DefaultAnalogPoints, "number of samples")
	rootCmd.AddCommand(demodCmd)
}

func init() {
	var (
		window      int
		level, amp  float64
		seed        uint64
		points      int
		random, raw bool
	)
	filterCmd := &cobra.Command{
		Use:   "filter",
		Short: "Moving-average low-pass over a noisy sine",
		RunE: func(cmd *cobra.Command, args []string) error {
			c := &cfg.Filter
			override(cmd, "window", &c.Window, window)
			override(cmd, "noise-level", &c.NoiseLevel, level)
			override(cmd, "noise-amplitude", &c.NoiseAmplitude, amp)
			override(cmd, "seed", &c.Seed, seed)
			override(cmd, "points", &c.Points, points)

			noisy := filter.NoisySine(c.NoiseLevel, c.Points)
			if random {
				clean := filter.NoisySine(0, c.Points)
				noisy = filter.AddNoise(clean, c.Seed, c.NoiseAmplitude).Combined
			}
			if raw {
				return writeSeries(cmd.OutOrStdout(), noisy)
			}
			smooth, err := filter.MovingAverage(noisy, c.Window)
			if err != nil {
				return err
			}
			logger.Debug("filtered",
				zap.Int("window", c.Window),
				zap.Float64("power_in", filter.Power(noisy)),
				zap.Float64("power_out", filter.Power(smooth)),
			)
			return writeSeries(cmd.OutOrStdout(), smooth)
		},
	}
	f := filterCmd.Flags()
	f.IntVarP(&window, "window", "w", 5, "moving-average window")
	f.Float64Var(&level, "noise-level", 0.5, "level of the repeatable interference")
	f.Float64Var(&amp, "noise-amplitude", 0.3, "amplitude of random noise")
	f.Uint64Var(&seed, "seed", 1, "random noise seed")
	f.IntVarP(&points, "points", "n", filter.DefaultNoisePoints, "number of samples")
	f.BoolVar(&random, "random", false, "use seeded random noise instead of the repeatable interference")
	f.BoolVar(&raw, "raw", false, "print the noisy input instead of the filtered output")
	rootCmd.AddCommand(filterCmd)
}
