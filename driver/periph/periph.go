// Package periph drives the transmit pin through periph.io host drivers.
package periph

import (
	"errors"
	"fmt"
	"strconv"
	"sync"

	"github.com/golang/glog"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/host/v3"

	"github.com/jdevelop/go-manchester-tx/manchester"
)

// Driver implements manchester.PinDriver on top of the periph.io GPIO registry.
// Pins are addressed by their number, e.g. 17 for GPIO17.
type Driver struct {
	lookup func(name string) gpio.PinIO

	mu   sync.Mutex
	pins map[int]gpio.PinIO
}

// Open initializes the periph host drivers. A failure here leaves no way to
// transmit and is fatal to the caller.
func Open() (*Driver, error) {
	state, err := host.Init()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize periph host: %w", err)
	}
	if glog.V(2) {
		for _, d := range state.Loaded {
			glog.Infof("periph driver loaded: %s", d)
		}
	}
	return newDriver(gpioreg.ByName), nil
}

func newDriver(lookup func(string) gpio.PinIO) *Driver {
	return &Driver{
		lookup: lookup,
		pins:   make(map[int]gpio.PinIO),
	}
}

func (d *Driver) ConfigureOutput(pin int) error {
	p := d.lookup(strconv.Itoa(pin))
	if p == nil {
		return fmt.Errorf("gpio %d: %w", pin, manchester.ErrInvalidPin)
	}
	if err := p.Out(gpio.Low); err != nil {
		return fmt.Errorf("gpio %d: set output: %w", pin, err)
	}
	d.mu.Lock()
	d.pins[pin] = p
	d.mu.Unlock()
	return nil
}

func (d *Driver) SetLevel(pin int, level manchester.Level) error {
	d.mu.Lock()
	p := d.pins[pin]
	d.mu.Unlock()
	if p == nil {
		return fmt.Errorf("gpio %d is not configured", pin)
	}
	return p.Out(gpio.Level(level == manchester.High))
}

// Close halts every configured pin.
func (d *Driver) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	var errs []error
	for n, p := range d.pins {
		if err := p.Halt(); err != nil {
			errs = append(errs, fmt.Errorf("gpio %d: %w", n, err))
		}
		delete(d.pins, n)
	}
	return errors.Join(errs...)
}
