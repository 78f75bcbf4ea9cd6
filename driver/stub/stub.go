// Package stub implements a recording pin driver for host side runs and tests.
package stub

import (
	"fmt"
	"sync"

	"github.com/jdevelop/go-manchester-tx/manchester"
)

// Event is one recorded level change.
type Event struct {
	Pin   int
	Level manchester.Level
	// At is the Timestamp reading at the time of the write, zero without one.
	At uint32
}

// Driver records every pin write in memory.
type Driver struct {
	// Timestamp stamps recorded events when set.
	Timestamp func() uint32
	// OnSet runs after an event has been recorded.
	OnSet func(Event)

	mu         sync.Mutex
	configured map[int]bool
	failing    map[int]error
	events     []Event
}

func New() *Driver {
	return &Driver{
		configured: make(map[int]bool),
		failing:    make(map[int]error),
	}
}

// Fail makes every operation on pin return err. A nil err clears it.
func (d *Driver) Fail(pin int, err error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if err == nil {
		delete(d.failing, pin)
		return
	}
	d.failing[pin] = err
}

func (d *Driver) ConfigureOutput(pin int) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if err := d.failing[pin]; err != nil {
		return err
	}
	d.configured[pin] = true
	return nil
}

func (d *Driver) SetLevel(pin int, level manchester.Level) error {
	d.mu.Lock()
	if err := d.failing[pin]; err != nil {
		d.mu.Unlock()
		return err
	}
	if !d.configured[pin] {
		d.mu.Unlock()
		return fmt.Errorf("pin %d is not an output", pin)
	}
	evt := Event{Pin: pin, Level: level}
	if d.Timestamp != nil {
		evt.At = d.Timestamp()
	}
	d.events = append(d.events, evt)
	onSet := d.OnSet
	d.mu.Unlock()

	if onSet != nil {
		onSet(evt)
	}
	return nil
}

// Configured reports whether pin has been put into output mode.
func (d *Driver) Configured(pin int) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.configured[pin]
}

// Events returns a copy of the recorded writes.
func (d *Driver) Events() []Event {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]Event, len(d.events))
	copy(out, d.events)
	return out
}

// Reset drops the recorded writes.
func (d *Driver) Reset() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.events = nil
}

// Symbols decodes recorded writes back into symbols, two writes per symbol.
func Symbols(events []Event) ([]manchester.Symbol, error) {
	if len(events)%2 != 0 {
		return nil, fmt.Errorf("odd number of transitions: %d", len(events))
	}
	out := make([]manchester.Symbol, 0, len(events)/2)
	for i := 0; i < len(events); i += 2 {
		first, second := events[i].Level, events[i+1].Level
		switch {
		case first == manchester.High && second == manchester.Low:
			out = append(out, manchester.Zero)
		case first == manchester.Low && second == manchester.High:
			out = append(out, manchester.One)
		default:
			return nil, fmt.Errorf("transition %d: no mid-bit edge (%s, %s)", i, first, second)
		}
	}
	return out, nil
}
