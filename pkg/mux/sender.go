// Package mux shares one channel between several senders, by time slot (TDM)
// or by frequency band (FDM).
package mux

import (
	"fmt"

	"CommLab/pkg/commerr"
)

var (
	ErrDuplicateSender = fmt.Errorf("%w: duplicate sender id", commerr.ErrConfiguration)
	ErrSlots           = fmt.Errorf("%w: slots per frame must not be negative", commerr.ErrDomain)
)

// Sender is one user of the shared channel. Payload feeds TDM; Equation,
// Amplitude and Bandwidth feed FDM.
type Sender struct {
	ID            int     `yaml:"id"`
	Name          string  `yaml:"name"`
	Payload       string  `yaml:"payload"`
	Equation      string  `yaml:"equation"`
	Color         string  `yaml:"color"`
	SlotsPerFrame int     `yaml:"slots_per_frame"`
	Bandwidth     float64 `yaml:"bandwidth"`
	Amplitude     float64 `yaml:"amplitude"`
}

func (s Sender) String() string {
	if s.Name != "" {
		return s.Name
	}
	return fmt.Sprintf("Sender %d", s.ID)
}

func (s Sender) slots() int {
	if s.SlotsPerFrame == 0 {
		return 1
	}
	return s.SlotsPerFrame
}

func validateSenders(senders []Sender) error {
	seen := make(map[int]bool, len(senders))
	for _, s := range senders {
		if seen[s.ID] {
			return fmt.Errorf("%w %d", ErrDuplicateSender, s.ID)
		}
		seen[s.ID] = true
		if s.SlotsPerFrame < 0 {
			return fmt.Errorf("%w: sender %d has %d", ErrSlots, s.ID, s.SlotsPerFrame)
		}
	}
	return nil
}
