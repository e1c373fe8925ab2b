package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"CommLab/internel/callbacks"
	"CommLab/internel/utils"
	"CommLab/pkg/mux"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// link carries frames as bytes: sent frames are encoded and kept until their
// delivery event, when the receiver decodes them.
type link struct {
	w        io.Writer
	demux    *mux.Demux
	inFlight map[int][]byte
}

func (l *link) handle(e mux.Event) error {
	switch e.Kind {
	case mux.FrameSent:
		data, err := mux.EncodeFrame(e.Frame)
		if err != nil {
			return err
		}
		l.inFlight[e.Frame.Tick] = data
		fmt.Fprintf(l.w, "%8v  sent       %v  (%d bytes)\n", e.At, e.Frame, len(data))
	case mux.FrameDelivered:
		data := l.inFlight[e.Frame.Tick]
		delete(l.inFlight, e.Frame.Tick)
		if err := l.demux.DeliverBytes(data); err != nil {
			return err
		}
		fmt.Fprintf(l.w, "%8v  delivered  %v\n", e.At, e.Frame)
	case mux.Complete:
		fmt.Fprintf(l.w, "%8v  complete\n", e.At)
	}
	return nil
}

func init() {
	var (
		slotSize int
		stuffing bool
		scale    float64
		play     bool
	)
	tdmCmd := &cobra.Command{
		Use:   "tdm",
		Short: "Time-division multiplex the configured senders",
		RunE: func(cmd *cobra.Command, args []string) error {
			c := &cfg.TDM
			override(cmd, "slot-size", &c.SlotSize, slotSize)
			override(cmd, "stuffing", &c.PulseStuffing, stuffing)
			override(cmd, "scale", &c.Scale, scale)

			frames, err := mux.ScheduleTDMWith(c.Senders, mux.TDMConfig{
				SlotSize:      c.SlotSize,
				PulseStuffing: c.PulseStuffing,
				Logger:        logger,
			})
			if err != nil {
				return err
			}
			events := mux.Timeline(frames, mux.TimelineConfig{
				FrameInterval: c.FrameInterval,
				TravelDelay:   c.TravelDelay,
				Scale:         c.Scale,
			})

			w := cmd.OutOrStdout()
			l := &link{w: w, demux: mux.NewDemux(c.Senders), inFlight: make(map[int][]byte)}
			rec := &callbacks.Recorder{}
			var linkErr error
			emit := func(e mux.Event) {
				rec.Update(e)
				if err := l.handle(e); err != nil && linkErr == nil {
					linkErr = err
				}
			}

			player := &callbacks.Player{Events: events}
			if play {
				ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
				defer stop()
				ctx, cancel := context.WithCancel(ctx)
				defer cancel()
				go func() {
					select {
					case <-utils.WaitEnterAsync(os.Stdin):
						cancel()
					case <-ctx.Done():
					}
				}()
				fmt.Fprintln(w, "Press Enter to stop.")
				if err := player.Play(ctx, 20*time.Millisecond, emit); err != nil {
					logger.Info("playback stopped", zap.Int("events", len(rec.Events)), zap.Error(err))
				}
			} else {
				for _, e := range player.Update(events[len(events)-1].At) {
					emit(e)
				}
			}
			if linkErr != nil {
				return linkErr
			}

			fmt.Fprintln(w)
			for _, s := range c.Senders {
				fmt.Fprintf(w, "%-10v received %q", s, l.demux.Received(s.ID))
				if n := l.demux.Stuffed(s.ID); n > 0 {
					fmt.Fprintf(w, ", %d stuffed slots", n)
				}
				fmt.Fprintln(w)
			}
			return nil
		},
	}
	f := tdmCmd.Flags()
	f.IntVar(&slotSize, "slot-size", 1, "characters per slot")
	f.BoolVar(&stuffing, "stuffing", false, "fill slots of exhausted senders with stuffing")
	f.Float64Var(&scale, "scale", 1, "multiplier on the frame interval and travel delay, above 1 is slower")
	f.BoolVar(&play, "play", false, "pace events in real time")
	rootCmd.AddCommand(tdmCmd)
}

func init() {
	var (
		guard    float64
		shift    bool
		spectrum bool
	)
	fdmCmd := &cobra.Command{
		Use:   "fdm",
		Short: "Frequency-division layout and composite signal of the configured senders",
		RunE: func(cmd *cobra.Command, args []string) error {
			c := &cfg.FDM
			override(cmd, "guard-band", &c.GuardBand, guard)
			override(cmd, "shift", &c.ShiftByBand, shift)

			blocks, err := mux.LayoutFDMFrom(c.BaseFreq, c.Senders, c.GuardBand)
			if err != nil {
				return err
			}
			res, err := mux.Composite(c.Senders, blocks, mux.CompositeConfig{
				Points:      c.Points,
				ShiftByBand: c.ShiftByBand,
			})
			if err != nil {
				return err
			}

			if cfg.Output.Path == "" {
				w := cmd.ErrOrStderr()
				for _, b := range blocks {
					owner := ""
					if b.Kind == mux.SignalBlock {
						owner = fmt.Sprintf(" sender %d", b.Owner)
					}
					fmt.Fprintf(w, "%-6v %10.2f - %10.2f Hz%s\n", b.Kind, b.StartFreq, b.EndFreq, owner)
				}
				fmt.Fprintf(w, "total width %.2f Hz\n", mux.TotalWidth(blocks))
			}

			if spectrum {
				// Composite takes 50 samples per unit of t, so X is in cycles per unit of t.
				return writeSeries(cmd.OutOrStdout(), mux.Spectrum(res.Sum, 50))
			}
			return writeSeries(cmd.OutOrStdout(), res.Sum)
		},
	}
	f := fdmCmd.Flags()
	f.Float64Var(&guard, "guard-band", 10, "guard band between senders in Hz")
	f.BoolVar(&shift, "shift", false, "tint each channel by its band centre")
	f.BoolVar(&spectrum, "spectrum", false, "print the magnitude spectrum of the composite")
	rootCmd.AddCommand(fdmCmd)
}
