package payload

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseU16(t *testing.T) {
	tests := []struct {
		in      string
		want    uint16
		wantErr bool
	}{
		{in: "1234", want: 1234},
		{in: " 0x04D2 ", want: 1234},
		{in: "0b11", want: 3},
		{in: "65535", want: 65535},
		{in: "65536", wantErr: true},
		{in: "-1", wantErr: true},
		{in: "abc", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseU16(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseHex(t *testing.T) {
	for _, in := range []string{"04d2", "04 D2", "04:d2", "0x04d2", "04-d2"} {
		got, err := ParseHex(in)
		require.NoError(t, err, in)
		assert.Equal(t, []byte{0x04, 0xD2}, got, in)
	}
	got, err := ParseHex("")
	require.NoError(t, err)
	assert.Empty(t, got)

	_, err = ParseHex("4d2")
	assert.Error(t, err)
	_, err = ParseHex("zz")
	assert.Error(t, err)
}
