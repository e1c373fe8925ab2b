package main

import (
	"fmt"
	"time"

	"CommLab/pkg/bits"
	"CommLab/pkg/transmission"

	"github.com/spf13/cobra"
)

func init() {
	asciiCmd := &cobra.Command{
		Use:   "ascii TEXT",
		Short: "Character codes and bits of a text, with its CRC-8",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			for _, cc := range bits.FromASCII(args[0]) {
				fmt.Fprintf(w, "%-4s %5d  %s\n", cc.Char, cc.Code, cc.Binary)
			}
			b := bits.TextBits(args[0])
			fmt.Fprintf(w, "bits  %s\n", b)
			fmt.Fprintf(w, "crc8  %#02x\n", bits.CRC8(b.Bytes()))
			return nil
		},
	}
	rootCmd.AddCommand(asciiCmd)
}

func init() {
	var mode, data string
	var travel float64
	transmitCmd := &cobra.Command{
		Use:   "transmit",
		Short: "Plan a serial, asynchronous or parallel transmission",
		RunE: func(cmd *cobra.Command, args []string) error {
			c := &cfg.Transmission
			override(cmd, "mode", &c.Mode, mode)
			override(cmd, "data", &c.Data, data)
			if cmd.Flags().Changed("travel") {
				c.Travel = secondsToDuration(travel)
			}

			m, err := transmission.ParseMode(c.Mode)
			if err != nil {
				return err
			}
			b, _ := bits.Parse(c.Data)
			p := transmission.Schedule(b, m, c.Travel)

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "%v: %s on the wire\n", p.Mode, p.Framed)
			for _, e := range p.Events {
				bit := "0"
				if e.Bit {
					bit = "1"
				}
				fmt.Fprintf(w, "lane %-2d bit %s %-5v depart %-6v arrive %v\n", e.Lane, bit, e.Role, e.Depart, e.Arrive)
			}
			fmt.Fprintf(w, "received %s after %v\n", p.Received, p.Duration)
			return nil
		},
	}
	f := transmitCmd.Flags()
	f.StringVarP(&mode, "mode", "m", "serial", "serial, asynchronous or parallel")
	f.StringVarP(&data, "data", "d", "10110011", "bits to send")
	f.Float64Var(&travel, "travel", 2, "seconds a bit takes to cross the link")
	rootCmd.AddCommand(transmitCmd)
}

func secondsToDuration(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}
