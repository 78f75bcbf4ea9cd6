//go:build !deadlock

// Package syncutil holds the lock used to serialize transmitters. Building
// with -tags=deadlock swaps in github.com/sasha-s/go-deadlock.
package syncutil

import "sync"

// Mutex is a plain sync.Mutex unless built with -tags=deadlock.
type Mutex struct {
	sync.Mutex
}
