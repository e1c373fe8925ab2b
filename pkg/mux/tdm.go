package mux

import (
	"fmt"
	"strings"

	"CommLab/pkg/commerr"

	"go.uber.org/zap"
)

var ErrSlotSize = fmt.Errorf("%w: slot size must be at least 1", commerr.ErrDomain)

// Slot is one sender's share of a frame: a chunk of its payload, or a
// stuffing marker once the payload is used up.
type Slot struct {
	Sender  int
	Data    string
	Stuffed bool
}

// Frame is what one scheduling tick puts on the channel.
type Frame struct {
	Tick  int
	Slots []Slot
}

// DataSlots counts the slots that carry payload.
func (f Frame) DataSlots() int {
	n := 0
	for _, s := range f.Slots {
		if !s.Stuffed {
			n++
		}
	}
	return n
}

func (f Frame) String() string {
	parts := make([]string, len(f.Slots))
	for i, s := range f.Slots {
		if s.Stuffed {
			parts[i] = fmt.Sprintf("%d:-", s.Sender)
		} else {
			parts[i] = fmt.Sprintf("%d:%q", s.Sender, s.Data)
		}
	}
	return fmt.Sprintf("#%d[%s]", f.Tick, strings.Join(parts, " "))
}

type TDMConfig struct {
	SlotSize      int // runes per slot
	PulseStuffing bool
	Logger        *zap.Logger
}

// Scheduler builds TDM frames one tick at a time. Each tick visits the
// senders in order and takes SlotsPerFrame chunks of SlotSize runes from each.
//
// Scheduling continues until every payload is used up. With pulse stuffing an
// exhausted sender still fills its slots with stuffing markers, so every frame
// has the same number of slots; without it those slots are left out. A tick
// never produces a frame that carries no data.
type Scheduler struct {
	senders  []Sender
	payloads [][]rune
	cursors  []int
	cfg      TDMConfig
	logger   *zap.Logger

	tick    int
	aborted bool
}

func NewScheduler(senders []Sender, cfg TDMConfig) (*Scheduler, error) {
	if cfg.SlotSize < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrSlotSize, cfg.SlotSize)
	}
	if err := validateSenders(senders); err != nil {
		return nil, err
	}

	s := &Scheduler{
		senders:  senders,
		payloads: make([][]rune, len(senders)),
		cursors:  make([]int, len(senders)),
		cfg:      cfg,
		logger:   cfg.Logger,
	}
	if s.logger == nil {
		s.logger = zap.NewNop()
	}
	for i, sender := range senders {
		s.payloads[i] = []rune(sender.Payload)
	}
	return s, nil
}

func (s *Scheduler) exhausted(i int) bool {
	return s.cursors[i] >= len(s.payloads[i])
}

// Done reports whether Next will return no more frames.
func (s *Scheduler) Done() bool {
	if s.aborted {
		return true
	}
	for i := range s.senders {
		if !s.exhausted(i) {
			return false
		}
	}
	return true
}

// Abort stops scheduling; frames already returned stay valid.
func (s *Scheduler) Abort() {
	if !s.aborted {
		s.logger.Info("TDM scheduling aborted", zap.Int("tick", s.tick))
	}
	s.aborted = true
}

// Next returns the frame of the next tick, or false once all senders are
// exhausted or the run was aborted.
func (s *Scheduler) Next() (Frame, bool) {
	if s.Done() {
		return Frame{}, false
	}

	frame := Frame{Tick: s.tick}
	for i, sender := range s.senders {
		for k := 0; k < sender.slots(); k++ {
			if s.exhausted(i) {
				if s.cfg.PulseStuffing {
					frame.Slots = append(frame.Slots, Slot{Sender: sender.ID, Stuffed: true})
				}
				continue
			}
			end := min(s.cursors[i]+s.cfg.SlotSize, len(s.payloads[i]))
			frame.Slots = append(frame.Slots, Slot{Sender: sender.ID, Data: string(s.payloads[i][s.cursors[i]:end])})
			s.cursors[i] = end
		}
	}
	s.tick++

	s.logger.Debug("TDM frame scheduled",
		zap.Int("tick", frame.Tick),
		zap.Int("slots", len(frame.Slots)),
		zap.Int("data", frame.DataSlots()),
	)
	return frame, true
}

// ScheduleTDM runs a Scheduler to the end and returns all frames.
func ScheduleTDM(senders []Sender, slotSize int, pulseStuffing bool) ([]Frame, error) {
	return ScheduleTDMWith(senders, TDMConfig{SlotSize: slotSize, PulseStuffing: pulseStuffing})
}

func ScheduleTDMWith(senders []Sender, cfg TDMConfig) ([]Frame, error) {
	s, err := NewScheduler(senders, cfg)
	if err != nil {
		return nil, err
	}
	var frames []Frame
	for {
		f, ok := s.Next()
		if !ok {
			return frames, nil
		}
		frames = append(frames, f)
	}
}
