package main

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jdevelop/go-manchester-tx/clock"
	"github.com/jdevelop/go-manchester-tx/driver/stub"
	"github.com/jdevelop/go-manchester-tx/manchester"
)

func newTransmitter(t *testing.T) (*manchester.Transmitter, *stub.Driver) {
	t.Helper()
	d := stub.New()
	cfg := manchester.DefaultConfig()
	cfg.Clock = clock.NewFake(0, 5*time.Microsecond)
	tx, err := manchester.NewTransmitter(d, cfg)
	require.NoError(t, err)
	return tx, d
}

func sentSymbols(t *testing.T, d *stub.Driver) []manchester.Symbol {
	t.Helper()
	symbols, err := stub.Symbols(d.Events())
	require.NoError(t, err)
	d.Reset()
	return symbols
}

func TestSendCommands(t *testing.T) {
	tx, d := newTransmitter(t)

	out, err := sendText(tx, []string{"hi", "there"})
	require.NoError(t, err)
	assert.Equal(t, "sent 8 bytes", out)
	assert.Equal(t, manchester.FrameSymbols([]byte("hi there")), sentSymbols(t, d))

	out, err = sendHex(tx, []string{"04", "d2"})
	require.NoError(t, err)
	assert.Equal(t, "sent 04 D2", out)
	assert.Equal(t, manchester.FrameSymbols([]byte{0x04, 0xD2}), sentSymbols(t, d))

	out, err = sendU16(tx, []string{"1234"})
	require.NoError(t, err)
	assert.Equal(t, "sent 1234", out)
	assert.Equal(t, manchester.FrameSymbols([]byte{0x04, 0xD2}), sentSymbols(t, d))

	_, err = sendU16(tx, nil)
	assert.True(t, errors.Is(err, errUsage))
	_, err = sendHex(tx, []string{"q"})
	assert.Error(t, err)
	assert.Empty(t, d.Events())
}

func TestPinCommand(t *testing.T) {
	tx, d := newTransmitter(t)

	out, err := setPin(tx, nil)
	require.NoError(t, err)
	assert.Equal(t, "pin 11", out)

	out, err = setPin(tx, []string{"4"})
	require.NoError(t, err)
	assert.Equal(t, "pin 4", out)
	assert.True(t, d.Configured(4))

	_, err = setPin(tx, []string{"four"})
	assert.Error(t, err)
	_, err = setPin(tx, []string{"1", "2"})
	assert.ErrorIs(t, err, errUsage)
	assert.Equal(t, 4, tx.Pin())
}

func TestStatsCommand(t *testing.T) {
	tx, _ := newTransmitter(t)
	_, err := sendU16(tx, []string{"1"})
	require.NoError(t, err)
	out, err := showStats(tx, nil)
	require.NoError(t, err)
	assert.Equal(t, "frames 1, symbols 33, late transitions 0", out)
}
