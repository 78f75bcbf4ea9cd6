//go:build linux

package clock

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/sys/unix"
)

func TestReadMicrosFallsBackToMonotonic(t *testing.T) {
	var ids []int32
	got := readMicros(func(clockid int32, ts *unix.Timespec) error {
		ids = append(ids, clockid)
		if clockid == unix.CLOCK_MONOTONIC_RAW {
			return unix.EINVAL
		}
		*ts = unix.NsecToTimespec(5_000_000)
		return nil
	})
	assert.Equal(t, uint32(5000), got)
	assert.Equal(t, []int32{unix.CLOCK_MONOTONIC_RAW, unix.CLOCK_MONOTONIC}, ids)
}

func TestReadMicrosPanicsWithoutClock(t *testing.T) {
	assert.PanicsWithValue(t, "clock: monotonic clock unavailable: invalid argument", func() {
		readMicros(func(int32, *unix.Timespec) error { return unix.EINVAL })
	})
}
