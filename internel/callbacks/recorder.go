package callbacks

import "CommLab/pkg/mux"

// Recorder keeps every event it is given and feeds deliveries to Demux.
type Recorder struct {
	Demux  *mux.Demux
	Events []mux.Event
}

func (r *Recorder) Update(e mux.Event) {
	r.Events = append(r.Events, e)
	if e.Kind == mux.FrameDelivered && r.Demux != nil {
		r.Demux.Deliver(e.Frame)
	}
}
