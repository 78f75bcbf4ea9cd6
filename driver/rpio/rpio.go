// Package rpio drives the transmit pin through /dev/gpiomem on a Raspberry Pi.
package rpio

import (
	"fmt"

	"github.com/stianeikeland/go-rpio/v4"

	"github.com/jdevelop/go-manchester-tx/manchester"
)

// maxPin is the highest BCM GPIO number of the BCM283x family.
const maxPin = 53

// Driver implements manchester.PinDriver with memory mapped GPIO registers.
// Pin numbers are BCM numbers.
type Driver struct{}

// Open maps the GPIO registers.
func Open() (*Driver, error) {
	if err := rpio.Open(); err != nil {
		return nil, fmt.Errorf("failed to map gpio memory: %w", err)
	}
	return &Driver{}, nil
}

func (d *Driver) ConfigureOutput(pin int) error {
	if err := checkPin(pin); err != nil {
		return err
	}
	p := rpio.Pin(pin)
	p.Output()
	p.Low()
	return nil
}

func (d *Driver) SetLevel(pin int, level manchester.Level) error {
	if err := checkPin(pin); err != nil {
		return err
	}
	if level == manchester.High {
		rpio.Pin(pin).High()
	} else {
		rpio.Pin(pin).Low()
	}
	return nil
}

// Close unmaps the GPIO registers.
func (d *Driver) Close() error {
	return rpio.Close()
}

func checkPin(pin int) error {
	if pin < 0 || pin > maxPin {
		return fmt.Errorf("bcm %d: %w", pin, manchester.ErrInvalidPin)
	}
	return nil
}
