package stub

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jdevelop/go-manchester-tx/manchester"
)

func TestRecordsWrites(t *testing.T) {
	var ts uint32
	d := New()
	d.Timestamp = func() uint32 { ts += 5; return ts }
	require.NoError(t, d.ConfigureOutput(4))
	assert.True(t, d.Configured(4))
	assert.False(t, d.Configured(5))

	require.NoError(t, d.SetLevel(4, manchester.High))
	require.NoError(t, d.SetLevel(4, manchester.Low))
	assert.Equal(t, []Event{
		{Pin: 4, Level: manchester.High, At: 5},
		{Pin: 4, Level: manchester.Low, At: 10},
	}, d.Events())

	d.Reset()
	assert.Empty(t, d.Events())
}

func TestRejectsUnconfiguredPin(t *testing.T) {
	d := New()
	assert.Error(t, d.SetLevel(3, manchester.High))
}

func TestFail(t *testing.T) {
	boom := errors.New("boom")
	d := New()
	d.Fail(7, boom)
	assert.ErrorIs(t, d.ConfigureOutput(7), boom)
	d.Fail(7, nil)
	assert.NoError(t, d.ConfigureOutput(7))
}

func TestSymbols(t *testing.T) {
	events := []Event{
		{Level: manchester.High}, {Level: manchester.Low},
		{Level: manchester.Low}, {Level: manchester.High},
	}
	symbols, err := Symbols(events)
	require.NoError(t, err)
	assert.Equal(t, []manchester.Symbol{manchester.Zero, manchester.One}, symbols)

	_, err = Symbols(events[:3])
	assert.Error(t, err)

	_, err = Symbols([]Event{{Level: manchester.High}, {Level: manchester.High}})
	assert.Error(t, err)
}
