package core

import "time"

// Pacer releases simulation rounds at a steady rate independent of the frame
// rate of the caller.
type Pacer struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
}

// NewPacer constructs a Pacer targeting rps rounds per second. The first call
// to Due reports true so the caller does not wait a full period to start.
func NewPacer(rps int) *Pacer {
	p := &Pacer{}
	p.SetRate(rps)
	p.accumulator = p.step
	return p
}

// SetRate changes the round rate. Non-positive rates fall back to 60.
func (p *Pacer) SetRate(rps int) {
	if rps <= 0 {
		rps = 60
	}
	p.step = time.Second / time.Duration(rps)
}

// Period returns the time between two rounds.
func (p *Pacer) Period() time.Duration { return p.step }

// Due reports whether a round should run at the given instant. At most one
// round is released per call; surplus time carries over.
func (p *Pacer) Due(now time.Time) bool {
	if p.last.IsZero() {
		p.last = now
	}
	p.accumulator += now.Sub(p.last)
	p.last = now
	if p.accumulator >= p.step {
		p.accumulator -= p.step
		return true
	}
	return false
}

// Ready is Due evaluated against the wall clock.
func (p *Pacer) Ready() bool { return p.Due(time.Now()) }
