package manchester

import (
	"time"

	"github.com/golang/glog"
)

const (
	// PreambleZeros is the count of Zero symbols letting the receiver AGC settle.
	PreambleZeros = 14
	// TerminatorZeros is the count of Zero symbols closing a frame.
	TerminatorZeros = 2
	// overheadSymbols is preamble + start marker + terminator.
	overheadSymbols = PreambleZeros + 1 + TerminatorZeros
)

// SymbolWriter consumes the symbols of a frame in line order.
type SymbolWriter func(Symbol) error

// WriteFrame sequences a frame: the capture preamble, a single One as start
// marker, every payload byte least significant bit first, and the terminator.
// It stops at the first error returned by w.
func WriteFrame(payload []byte, w SymbolWriter) error {
	for i := 0; i < PreambleZeros; i++ {
		if err := w(Zero); err != nil {
			return err
		}
	}
	if err := w(One); err != nil {
		return err
	}
	for _, v := range payload {
		for i := uint(0); i < 8; i++ {
			s := Zero
			if v&(1<<i) != 0 {
				s = One
			}
			if err := w(s); err != nil {
				return err
			}
		}
	}
	for i := 0; i < TerminatorZeros; i++ {
		if err := w(Zero); err != nil {
			return err
		}
	}
	return nil
}

// FrameSymbols returns the symbols WriteFrame produces for payload.
func FrameSymbols(payload []byte) []Symbol {
	dst := make([]Symbol, 0, FrameLen(len(payload)))
	_ = WriteFrame(payload, func(s Symbol) error {
		dst = append(dst, s)
		return nil
	})
	return dst
}

// FrameLen is the number of symbols in a frame carrying n payload bytes.
func FrameLen(n int) int {
	return overheadSymbols + 8*n
}

// FrameDuration is the nominal time from the first to the last transition
// of a frame carrying n payload bytes.
func FrameDuration(n int, halfBit time.Duration) time.Duration {
	return time.Duration(2*FrameLen(n)-1) * halfBit
}

// TransmitFrame sends payload as one frame and returns once the last
// transition has been written.
func (t *Transmitter) TransmitFrame(payload []byte) error {
	glog.V(1).Infof("frame: %d bytes on pin %d", len(payload), t.pin)
	late := t.stats.LateTransitions

	t.last = t.clock.Micros() - t.halfBit + uint32(StartMargin/time.Microsecond)
	if err := WriteFrame(payload, t.SendSymbol); err != nil {
		return err
	}
	t.stats.Frames++

	if n := t.stats.LateTransitions - late; n > 0 {
		glog.V(2).Infof("frame: %d late transitions", n)
	}
	return nil
}

// TransmitU16 sends v as a two byte frame, high byte first.
func (t *Transmitter) TransmitU16(v uint16) error {
	return t.TransmitFrame([]byte{byte(v >> 8), byte(v & 0xFF)})
}
