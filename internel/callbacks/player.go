package callbacks

import (
	"context"
	"time"

	"CommLab/pkg/mux"
)

// Player releases timeline events as the clock passes them.
type Player struct {
	idx    int
	Events []mux.Event
}

// Update returns the events due at or before now, each exactly once.
func (p *Player) Update(now time.Duration) []mux.Event {
	start := p.idx
	for p.idx < len(p.Events) && p.Events[p.idx].At <= now {
		p.idx++
	}
	return p.Events[start:p.idx]
}

func (p *Player) Done() bool {
	return p.idx >= len(p.Events)
}

func (p *Player) Reset() {
	p.idx = 0
}

// Play paces the remaining events against wall-clock time, checking every
// tick. It returns ctx.Err() if cancelled before the last event.
func (p *Player) Play(ctx context.Context, tick time.Duration, emit func(mux.Event)) error {
	if tick <= 0 {
		tick = 10 * time.Millisecond
	}
	ticker := time.NewTicker(tick)
	defer ticker.Stop()

	start := time.Now()
	for !p.Done() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
		for _, e := range p.Update(time.Since(start)) {
			emit(e)
		}
	}
	return nil
}
