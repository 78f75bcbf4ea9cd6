// Package txflags holds the command line flags shared by the transmitter
// commands and turns them into a ready Transmitter.
package txflags

import (
	"flag"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/golang/glog"

	"github.com/jdevelop/go-manchester-tx/clock"
	"github.com/jdevelop/go-manchester-tx/driver/periph"
	"github.com/jdevelop/go-manchester-tx/driver/rpio"
	"github.com/jdevelop/go-manchester-tx/driver/serialline"
	"github.com/jdevelop/go-manchester-tx/driver/stub"
	"github.com/jdevelop/go-manchester-tx/manchester"
)

// Driver names accepted by -driver.
const (
	DriverPeriph = "periph"
	DriverRPIO   = "rpio"
	DriverSerial = "serial"
	DriverStub   = "stub"
)

// Config describes the pin driver and the transmitter settings.
type Config struct {
	Driver     string
	Pin        int
	HalfBit    time.Duration
	SerialPort string
	SerialLine string
}

var flagConfig = Config{
	Driver:     DriverPeriph,
	Pin:        manchester.DefaultPin,
	HalfBit:    manchester.DefaultHalfBitInterval,
	SerialPort: "/dev/ttyUSB0",
	SerialLine: "rts",
}

// SetupFlags registers the transmitter flags on the default flag set.
func SetupFlags() {
	flag.StringVar(&flagConfig.Driver, "driver", flagConfig.Driver, "Pin driver: periph, rpio, serial or stub")
	flag.IntVar(&flagConfig.Pin, "pin", flagConfig.Pin, "Transmit pin (GPIO number)")
	flag.DurationVar(&flagConfig.HalfBit, "half-bit", flagConfig.HalfBit, "Interval between two transitions")
	flag.StringVar(&flagConfig.SerialPort, "serial-port", flagConfig.SerialPort, "Serial port for -driver=serial")
	flag.StringVar(&flagConfig.SerialLine, "serial-line", flagConfig.SerialLine, "Control line for -driver=serial: rts or dtr")
}

// NewConfig returns a copy of the flag values.
func NewConfig() *Config {
	c := flagConfig
	return &c
}

// Device is an opened pin driver with its transmitter.
type Device struct {
	Transmitter *manchester.Transmitter
	Driver      manchester.PinDriver

	closer io.Closer
}

// Close releases the pin driver.
func (d *Device) Close() error {
	if d.closer == nil {
		return nil
	}
	return d.closer.Close()
}

// Open opens the pin driver and configures the transmit pin.
func (c *Config) Open() (*Device, error) {
	pin := c.Pin
	var (
		drv    manchester.PinDriver
		closer io.Closer
	)
	switch strings.ToLower(c.Driver) {
	case DriverPeriph:
		d, err := periph.Open()
		if err != nil {
			return nil, err
		}
		drv, closer = d, d
	case DriverRPIO:
		d, err := rpio.Open()
		if err != nil {
			return nil, err
		}
		drv, closer = d, d
	case DriverSerial:
		line, err := serialline.ParseLine(c.SerialLine)
		if err != nil {
			return nil, err
		}
		d, err := serialline.Open(c.SerialPort)
		if err != nil {
			return nil, err
		}
		drv, closer, pin = d, d, line
	case DriverStub:
		d := stub.New()
		d.Timestamp = clock.NewMonotonic().Micros
		drv = d
	default:
		return nil, fmt.Errorf("unsupported pin driver: %s", c.Driver)
	}

	tx, err := manchester.NewTransmitter(drv, manchester.Config{
		Pin:             pin,
		HalfBitInterval: c.HalfBit,
		Clock:           clock.NewMonotonic(),
	})
	if err != nil {
		if closer != nil {
			_ = closer.Close()
		}
		return nil, err
	}
	glog.V(1).Infof("%s driver ready, pin %d, half bit %v", c.Driver, pin, tx.HalfBitInterval())
	return &Device{Transmitter: tx, Driver: drv, closer: closer}, nil
}
