// Package clock provides microsecond time sources for the transmitter.
package clock

import (
	"sync/atomic"
	"time"
)

// Fake is a manually driven clock for tests. Every Micros call advances it
// by Step before reading, so a spin wait on it always terminates.
type Fake struct {
	now  uint32
	step uint32
}

// NewFake returns a Fake starting at start and advancing step µs per read.
// A zero step is raised to 1.
func NewFake(start uint32, step time.Duration) *Fake {
	s := uint32(step / time.Microsecond)
	if s == 0 {
		s = 1
	}
	return &Fake{now: start, step: s}
}

// Micros advances the clock by one step and returns the new reading.
func (f *Fake) Micros() uint32 {
	return atomic.AddUint32(&f.now, f.step)
}

// Now returns the last reading without advancing.
func (f *Fake) Now() uint32 {
	return atomic.LoadUint32(&f.now)
}

// Advance moves the clock forward by d.
func (f *Fake) Advance(d time.Duration) {
	atomic.AddUint32(&f.now, uint32(d/time.Microsecond))
}

// Step returns the per-read increment.
func (f *Fake) Step() time.Duration {
	return time.Duration(f.step) * time.Microsecond
}
