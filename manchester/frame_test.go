package manchester

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func repeat(s Symbol, n int) []Symbol {
	out := make([]Symbol, n)
	for i := range out {
		out[i] = s
	}
	return out
}

func concat(parts ...[]Symbol) []Symbol {
	var out []Symbol
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

var (
	preamble   = concat(repeat(Zero, PreambleZeros), []Symbol{One})
	terminator = repeat(Zero, TerminatorZeros)
)

func TestEmptyFrame(t *testing.T) {
	symbols := FrameSymbols(nil)
	assert.Len(t, symbols, 17)
	assert.Equal(t, concat(preamble, terminator), symbols)
}

func TestFrameBitOrder(t *testing.T) {
	// least significant bit goes first
	assert.Equal(t,
		concat(preamble, []Symbol{One}, repeat(Zero, 7), terminator),
		FrameSymbols([]byte{0x01}))
	assert.Equal(t,
		concat(preamble, repeat(Zero, 7), []Symbol{One}, terminator),
		FrameSymbols([]byte{0x80}))
}

func TestFrameByteOrder(t *testing.T) {
	// 0x04 then 0xD2 (11010010), each LSB first
	payload := concat(
		[]Symbol{Zero, Zero, One, Zero, Zero, Zero, Zero, Zero},
		[]Symbol{Zero, One, Zero, Zero, One, Zero, One, One},
	)
	assert.Equal(t, concat(preamble, payload, terminator), FrameSymbols([]byte{0x04, 0xD2}))
}

func TestFrameLen(t *testing.T) {
	for n := 0; n < 5; n++ {
		payload := make([]byte, n)
		assert.Len(t, FrameSymbols(payload), FrameLen(n))
	}
	assert.Equal(t, 33, FrameLen(2))
}

func TestFrameDuration(t *testing.T) {
	assert.Equal(t, 33*time.Millisecond, FrameDuration(0, DefaultHalfBitInterval))
	assert.Equal(t, 65*time.Millisecond, FrameDuration(2, DefaultHalfBitInterval))
}

func TestWriteFrameStopsOnError(t *testing.T) {
	boom := errors.New("boom")
	count := 0
	err := WriteFrame([]byte{0xFF}, func(Symbol) error {
		count++
		if count == 20 {
			return boom
		}
		return nil
	})
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 20, count)
}

func TestSymbolLevels(t *testing.T) {
	first, second := Zero.Levels()
	assert.Equal(t, High, first)
	assert.Equal(t, Low, second)
	first, second = One.Levels()
	assert.Equal(t, Low, first)
	assert.Equal(t, High, second)
	assert.Equal(t, "0", Zero.String())
	assert.Equal(t, "1", One.String())
	assert.Equal(t, "high", High.String())
}
