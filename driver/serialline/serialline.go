// Package serialline uses a modem control line of a serial port as the
// transmit pin, for USB serial adapters wired to the ASK module data input.
package serialline

import (
	"fmt"
	"strings"

	"go.bug.st/serial"

	"github.com/jdevelop/go-manchester-tx/manchester"
)

// Control line numbers accepted as pins.
const (
	RTS = 0
	DTR = 1
)

// port is the part of serial.Port the driver needs.
type port interface {
	SetRTS(rts bool) error
	SetDTR(dtr bool) error
	Close() error
}

// Driver implements manchester.PinDriver on the RTS and DTR lines.
type Driver struct {
	port port
}

// Open opens the serial port by name, e.g. /dev/ttyUSB0.
func Open(name string) (*Driver, error) {
	p, err := serial.Open(name, &serial.Mode{BaudRate: 9600})
	if err != nil {
		return nil, fmt.Errorf("failed to open serial port %s: %w", name, err)
	}
	return &Driver{port: p}, nil
}

// ParseLine maps a line name to its pin number.
func ParseLine(name string) (int, error) {
	switch strings.ToLower(name) {
	case "rts":
		return RTS, nil
	case "dtr":
		return DTR, nil
	default:
		return 0, fmt.Errorf("serial line %q: %w", name, manchester.ErrInvalidPin)
	}
}

func (d *Driver) ConfigureOutput(pin int) error {
	return d.SetLevel(pin, manchester.Low)
}

func (d *Driver) SetLevel(pin int, level manchester.Level) error {
	on := level == manchester.High
	switch pin {
	case RTS:
		return d.port.SetRTS(on)
	case DTR:
		return d.port.SetDTR(on)
	default:
		return fmt.Errorf("serial line %d: %w", pin, manchester.ErrInvalidPin)
	}
}

func (d *Driver) Close() error {
	return d.port.Close()
}
