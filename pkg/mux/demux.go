package mux

import (
	"strings"
)

// Demux splits delivered frames back into per-sender receive buffers. The
// buffers only grow, in arrival order.
type Demux struct {
	order   []int
	buffers map[int]*strings.Builder
	stuffed map[int]int
}

func NewDemux(senders []Sender) *Demux {
	d := &Demux{
		buffers: make(map[int]*strings.Builder, len(senders)),
		stuffed: make(map[int]int, len(senders)),
	}
	for _, s := range senders {
		d.buffer(s.ID)
	}
	return d
}

func (d *Demux) buffer(id int) *strings.Builder {
	b, ok := d.buffers[id]
	if !ok {
		b = &strings.Builder{}
		d.buffers[id] = b
		d.order = append(d.order, id)
	}
	return b
}

// Deliver appends every data slot of f to its sender's buffer. Stuffing
// markers are counted and dropped.
func (d *Demux) Deliver(f Frame) {
	for _, slot := range f.Slots {
		if slot.Stuffed {
			d.buffer(slot.Sender)
			d.stuffed[slot.Sender]++
			continue
		}
		d.buffer(slot.Sender).WriteString(slot.Data)
	}
}

// DeliverBytes decodes a wire frame and delivers it.
func (d *Demux) DeliverBytes(data []byte) error {
	f, err := DecodeFrame(data)
	if err != nil {
		return err
	}
	d.Deliver(f)
	return nil
}

// Replay delivers every FrameDelivered event in order.
func (d *Demux) Replay(events []Event) {
	for _, e := range events {
		if e.Kind == FrameDelivered {
			d.Deliver(e.Frame)
		}
	}
}

func (d *Demux) Received(id int) string {
	if b, ok := d.buffers[id]; ok {
		return b.String()
	}
	return ""
}

// Stuffed is the number of stuffing slots seen for sender id.
func (d *Demux) Stuffed(id int) int {
	return d.stuffed[id]
}

// Senders lists sender ids in the order their buffers were created.
func (d *Demux) Senders() []int {
	return append([]int(nil), d.order...)
}
