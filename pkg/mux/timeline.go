package mux

import (
	"sort"
	"time"
)

type EventKind int

const (
	FrameDelivered EventKind = iota
	FrameSent
	Complete
)

func (k EventKind) String() string {
	switch k {
	case FrameSent:
		return "sent"
	case FrameDelivered:
		return "delivered"
	case Complete:
		return "complete"
	}
	return "unknown"
}

// Event is one moment of a TDM run. Frame is unset for Complete.
type Event struct {
	At    time.Duration
	Kind  EventKind
	Frame Frame
}

// TimelineConfig paces a run: frame i leaves at i·FrameInterval and arrives
// TravelDelay later. Scale multiplies both, so 2 runs at half speed and 0.5
// at double; 0 means 1.
type TimelineConfig struct {
	FrameInterval time.Duration
	TravelDelay   time.Duration
	Scale         float64
}

var DefaultTimeline = TimelineConfig{
	FrameInterval: time.Second,
	TravelDelay:   1500 * time.Millisecond,
	Scale:         1,
}

func (c TimelineConfig) scale(d time.Duration) time.Duration {
	if c.Scale == 0 {
		return d
	}
	return time.Duration(float64(d) * c.Scale)
}

// Timeline lays the frames out in time. Events are ordered by time; at equal
// times deliveries come before sends, and Complete is always last, at the
// final delivery.
func Timeline(frames []Frame, cfg TimelineConfig) []Event {
	events := make([]Event, 0, 2*len(frames)+1)
	var end time.Duration
	for i, f := range frames {
		sent := cfg.scale(time.Duration(i) * cfg.FrameInterval)
		arrived := sent + cfg.scale(cfg.TravelDelay)
		events = append(events,
			Event{At: sent, Kind: FrameSent, Frame: f},
			Event{At: arrived, Kind: FrameDelivered, Frame: f},
		)
		end = max(end, arrived)
	}
	sort.SliceStable(events, func(i, j int) bool {
		if events[i].At != events[j].At {
			return events[i].At < events[j].At
		}
		return events[i].Kind < events[j].Kind
	})
	return append(events, Event{At: end, Kind: Complete})
}
