package manchester

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang/glog"
)

type (
	// Symbol is one Manchester coded data bit on the line.
	Symbol uint8
	// Level is the output level of a pin. Could be Low or High.
	Level uint8
)

const (
	// Zero drives the pin High for the first half bit and Low for the second.
	Zero Symbol = iota
	// One drives the pin Low for the first half bit and High for the second.
	One
)

const (
	// Low pin level
	Low Level = iota
	// High pin level
	High
)

const (
	// DefaultPin is the output pin used when none is configured.
	DefaultPin = 11
	// DefaultHalfBitInterval is the nominal time between two transitions.
	DefaultHalfBitInterval = 1000 * time.Microsecond
	// StartMargin delays the first transition of a frame.
	StartMargin = 10 * time.Microsecond
)

var (
	// ErrPinWrite is returned when the driver fails to change the pin level.
	ErrPinWrite = errors.New("manchester: pin write failed")
	// ErrNoDriver is returned by NewTransmitter without a pin driver.
	ErrNoDriver = errors.New("manchester: no pin driver")
	// ErrNoClock is returned by NewTransmitter without a clock.
	ErrNoClock = errors.New("manchester: no clock")
	// ErrInvalidPin is returned by drivers for pins they can't drive.
	ErrInvalidPin = errors.New("manchester: invalid pin")
)

// PinDriver is the digital output capability the transmitter drives.
type PinDriver interface {
	// ConfigureOutput puts the pin into output mode.
	ConfigureOutput(pin int) error
	// SetLevel sets the instantaneous output level of a configured pin.
	SetLevel(pin int, level Level) error
}

// Clock is a monotonic microsecond counter. It wraps around at 2^32.
type Clock interface {
	Micros() uint32
}

func (s Symbol) String() string {
	if s == One {
		return "1"
	}
	return "0"
}

// Levels returns the pin levels of the first and the second half bit.
func (s Symbol) Levels() (first, second Level) {
	if s == One {
		return Low, High
	}
	return High, Low
}

func (l Level) String() string {
	if l == High {
		return "high"
	}
	return "low"
}

// Config holds the transmitter settings.
type Config struct {
	// Pin is the output pin.
	Pin int
	// HalfBitInterval is the time between two transitions, DefaultHalfBitInterval when zero.
	HalfBitInterval time.Duration
	// Clock is the time source, required.
	Clock Clock
}

// DefaultConfig returns a configuration for DefaultPin at the default rate.
// The clock still has to be set.
func DefaultConfig() Config {
	return Config{
		Pin:             DefaultPin,
		HalfBitInterval: DefaultHalfBitInterval,
	}
}

// Stats counts the work done by a Transmitter.
type Stats struct {
	Frames          uint64
	Symbols         uint64
	LateTransitions uint64
}

// Transmitter is the Manchester encoder driving one output pin.
//
// A Transmitter is not safe for concurrent use; see Shared.
type Transmitter struct {
	driver  PinDriver
	clock   Clock
	pin     int
	halfBit uint32
	// last is the clock reading taken right after the previous transition.
	last  uint32
	stats Stats
}

// NewTransmitter creates the transmitter and configures its pin as an output.
//
//	driver the pin capability the symbols are written to.
//	cfg the transmitter configuration.
func NewTransmitter(driver PinDriver, cfg Config) (*Transmitter, error) {
	if driver == nil {
		return nil, ErrNoDriver
	}
	if cfg.Clock == nil {
		return nil, ErrNoClock
	}
	if cfg.HalfBitInterval == 0 {
		cfg.HalfBitInterval = DefaultHalfBitInterval
	}
	if cfg.HalfBitInterval < time.Microsecond || cfg.HalfBitInterval > time.Second {
		return nil, fmt.Errorf("manchester: half bit interval %v out of range", cfg.HalfBitInterval)
	}
	if err := driver.ConfigureOutput(cfg.Pin); err != nil {
		return nil, fmt.Errorf("configure pin %d: %w", cfg.Pin, err)
	}
	return &Transmitter{
		driver:  driver,
		clock:   cfg.Clock,
		pin:     cfg.Pin,
		halfBit: uint32(cfg.HalfBitInterval / time.Microsecond),
		last:    cfg.Clock.Micros(),
	}, nil
}

// SetTransmitPin switches the output to another pin. The previous pin stays
// selected when the driver can't configure the new one.
func (t *Transmitter) SetTransmitPin(pin int) error {
	if err := t.driver.ConfigureOutput(pin); err != nil {
		return fmt.Errorf("configure pin %d: %w", pin, err)
	}
	glog.V(1).Infof("transmit pin %d -> %d", t.pin, pin)
	t.pin = pin
	return nil
}

// Pin returns the current output pin.
func (t *Transmitter) Pin() int {
	return t.pin
}

// HalfBitInterval returns the configured interval between transitions.
func (t *Transmitter) HalfBitInterval() time.Duration {
	return time.Duration(t.halfBit) * time.Microsecond
}

// Stats returns the counters collected so far.
func (t *Transmitter) Stats() Stats {
	return t.stats
}

// SendSymbol writes one symbol. Each level is held for one half bit counted
// from the clock reading taken after its write, so overhead between calls
// shortens the next wait instead of adding up.
//
//	s the symbol to send.
func (t *Transmitter) SendSymbol(s Symbol) error {
	first, second := s.Levels()

	if t.waitUntil(t.last + t.halfBit) {
		t.stats.LateTransitions++
	}
	if err := t.write(first); err != nil {
		return err
	}

	if t.waitUntil(t.clock.Micros() + t.halfBit) {
		t.stats.LateTransitions++
	}
	if err := t.write(second); err != nil {
		return err
	}

	t.last = t.clock.Micros()
	t.stats.Symbols++
	return nil
}

func (t *Transmitter) write(level Level) error {
	if err := t.driver.SetLevel(t.pin, level); err != nil {
		return fmt.Errorf("%w: pin %d %s: %w", ErrPinWrite, t.pin, level, err)
	}
	return nil
}

// waitUntil spins on the clock until target is reached. It reports whether
// the target had already passed on the first check.
func (t *Transmitter) waitUntil(target uint32) (late bool) {
	now := t.clock.Micros()
	if int32(now-target) > 0 {
		return true
	}
	for int32(now-target) < 0 {
		now = t.clock.Micros()
	}
	return false
}
