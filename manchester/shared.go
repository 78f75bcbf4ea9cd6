package manchester

import "github.com/jdevelop/go-manchester-tx/internal/syncutil"

// Shared serializes access to a Transmitter so several goroutines can
// submit frames. A frame in flight always completes before the next starts.
type Shared struct {
	mu syncutil.Mutex
	tx *Transmitter
}

// NewShared wraps tx. tx must not be used directly afterwards.
func NewShared(tx *Transmitter) *Shared {
	return &Shared{tx: tx}
}

// TransmitFrame sends payload as one frame, waiting for any frame in flight.
func (s *Shared) TransmitFrame(payload []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tx.TransmitFrame(payload)
}

// TransmitU16 sends v as a two byte frame, high byte first.
func (s *Shared) TransmitU16(v uint16) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tx.TransmitU16(v)
}

// SetTransmitPin switches the output pin between frames.
func (s *Shared) SetTransmitPin(pin int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tx.SetTransmitPin(pin)
}

// Pin returns the current output pin.
func (s *Shared) Pin() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tx.Pin()
}

// Stats returns the counters of the wrapped transmitter.
func (s *Shared) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tx.Stats()
}
