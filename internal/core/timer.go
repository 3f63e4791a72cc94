package core

import "time"

const (
	minTPS = 1
	maxTPS = 240

	maxCatchUp = 8
)

// Pacer decides when a viewer should advance its sim so that steps happen at
// a steady rate independent of how often the UI redraws.
type Pacer struct {
	tps         int
	step        time.Duration
	accumulator time.Duration
	last        time.Time
}

// NewPacer constructs a Pacer targeting the given ticks per second.
func NewPacer(tps int) *Pacer {
	p := &Pacer{}
	p.SetTPS(tps)
	p.accumulator = p.step
	return p
}

// SetTPS changes the tick rate, clamped to a usable range.
func (p *Pacer) SetTPS(tps int) {
	if tps <= 0 {
		tps = 60
	}
	p.tps = min(max(tps, minTPS), maxTPS)
	p.step = time.Second / time.Duration(p.tps)
}

// TPS returns the current tick rate.
func (p *Pacer) TPS() int { return p.tps }

// Faster doubles the tick rate.
func (p *Pacer) Faster() { p.SetTPS(p.tps * 2) }

// Slower halves the tick rate.
func (p *Pacer) Slower() { p.SetTPS(max(p.tps/2, minTPS)) }

// Due reports how many steps should run at time now. The first call after
// construction is always due once. After a long stall at most maxCatchUp
// steps are reported and the backlog is dropped.
func (p *Pacer) Due(now time.Time) int {
	if p.last.IsZero() {
		p.last = now
	}
	p.accumulator += now.Sub(p.last)
	p.last = now
	n := int(p.accumulator / p.step)
	if n > maxCatchUp {
		p.accumulator = 0
		return maxCatchUp
	}
	p.accumulator -= time.Duration(n) * p.step
	return n
}
