//go:build deadlock

package syncutil

import deadlock "github.com/sasha-s/go-deadlock"

// Mutex reports lock order violations and long waits through go-deadlock.
type Mutex struct {
	deadlock.Mutex
}
