//go:build !linux

package clock

import "time"

var epoch = time.Now()

// Monotonic reads the monotonic part of the Go runtime clock.
type Monotonic struct{}

// NewMonotonic returns the system monotonic clock.
func NewMonotonic() Monotonic {
	return Monotonic{}
}

// Micros returns the time since process start in microseconds truncated to 32 bits.
func (Monotonic) Micros() uint32 {
	return uint32(time.Since(epoch).Microseconds())
}
