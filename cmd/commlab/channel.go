package main

import (
	"fmt"

	"CommLab/pkg/channel"

	"github.com/spf13/cobra"
)

func init() {
	var (
		bandwidth, snr float64
		levels         int
	)
	capacityCmd := &cobra.Command{
		Use:   "capacity",
		Short: "Nyquist bit rate and Shannon capacity of a channel",
		RunE: func(cmd *cobra.Command, args []string) error {
			c := &cfg.Channel
			override(cmd, "bandwidth", &c.Bandwidth, bandwidth)
			override(cmd, "levels", &c.Levels, levels)
			override(cmd, "snr", &c.SNRdB, snr)

			nyquist, err := channel.NyquistRate(c.Bandwidth, c.Levels)
			if err != nil {
				return err
			}
			shannon, err := channel.ShannonCapacity(c.Bandwidth, c.SNRdB)
			if err != nil {
				return err
			}
			need, err := channel.LevelsFor(c.Bandwidth, shannon)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "Nyquist (%d levels): %.2f bps\n", c.Levels, nyquist)
			fmt.Fprintf(w, "Shannon (%.2f dB):   %.2f bps\n", c.SNRdB, shannon)
			fmt.Fprintf(w, "Levels to reach Shannon: %d\n", need)
			return nil
		},
	}
	capacityCmd.Flags().Float64Var(&bandwidth, "bandwidth", 3000, "bandwidth in Hz")
	capacityCmd.Flags().IntVarP(&levels, "levels", "L", 2, "signal levels")
	capacityCmd.Flags().Float64Var(&snr, "snr", 30, "SNR in dB")
	rootCmd.AddCommand(capacityCmd)
}

func init() {
	var (
		signal, noise float64
		amplitudes    bool
	)
	snrCmd := &cobra.Command{
		Use:   "snr",
		Short: "Signal-to-noise ratio in dB with a quality rating",
		RunE: func(cmd *cobra.Command, args []string) error {
			c := &cfg.Channel
			override(cmd, "signal", &c.SignalPower, signal)
			override(cmd, "noise", &c.NoisePower, noise)

			var (
				db  float64
				err error
			)
			if amplitudes {
				db, err = channel.SNRFromAmplitudes(c.SignalPower, c.NoisePower)
			} else {
				db, err = channel.SNRdB(c.SignalPower, c.NoisePower)
			}
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "SNR: %s (%v)\n", channel.FormatSNR(db), channel.Rate(db))
			return nil
		},
	}
	snrCmd.Flags().Float64Var(&signal, "signal", 10, "signal power")
	snrCmd.Flags().Float64Var(&noise, "noise", 1, "noise power")
	snrCmd.Flags().BoolVar(&amplitudes, "amplitudes", false, "treat signal and noise as amplitudes")
	rootCmd.AddCommand(snrCmd)
}

func init() {
	var data, bw, dist, speed float64
	delayCmd := &cobra.Command{
		Use:   "delay",
		Short: "Transmission and propagation delay of a link",
		RunE: func(cmd *cobra.Command, args []string) error {
			c := &cfg.Channel
			override(cmd, "data", &c.DataMB, data)
			override(cmd, "bandwidth", &c.BandwidthMbps, bw)
			override(cmd, "distance", &c.DistanceKm, dist)
			override(cmd, "speed", &c.SpeedKmPerS, speed)

			l, err := channel.Link{
				DataMB:        c.DataMB,
				BandwidthMbps: c.BandwidthMbps,
				DistanceKm:    c.DistanceKm,
				SpeedKmPerS:   c.SpeedKmPerS,
			}.Latency()
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "Transmission: %.6f s\n", l.Transmission)
			fmt.Fprintf(w, "Propagation:  %.6f s\n", l.Propagation)
			fmt.Fprintf(w, "Total:        %.6f s (%v)\n", l.Total(), l.Duration())
			return nil
		},
	}
	f := delayCmd.Flags()
	f.Float64Var(&data, "data", 10, "data size in MB")
	f.Float64Var(&bw, "bandwidth", 100, "bandwidth in Mbps")
	f.Float64Var(&dist, "distance", 1000, "distance in km")
	f.Float64Var(&speed, "speed", 200000, "propagation speed in km/s")
	rootCmd.AddCommand(delayCmd)
}
