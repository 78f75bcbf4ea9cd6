//go:build linux

package clock

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// Monotonic reads CLOCK_MONOTONIC_RAW, which is not slewed by NTP.
type Monotonic struct{}

// NewMonotonic returns the system monotonic clock.
func NewMonotonic() Monotonic {
	return Monotonic{}
}

// Micros returns the clock in microseconds truncated to 32 bits. It panics
// when neither CLOCK_MONOTONIC_RAW nor CLOCK_MONOTONIC can be read, since a
// stuck clock would hang every wait on it.
func (Monotonic) Micros() uint32 {
	return readMicros(unix.ClockGettime)
}

func readMicros(gettime func(clockid int32, ts *unix.Timespec) error) uint32 {
	var ts unix.Timespec
	if err := gettime(unix.CLOCK_MONOTONIC_RAW, &ts); err != nil {
		if err := gettime(unix.CLOCK_MONOTONIC, &ts); err != nil {
			panic(fmt.Sprintf("clock: monotonic clock unavailable: %v", err))
		}
	}
	return uint32(ts.Nano() / 1000)
}
