// Package payload parses frame payloads given as text by the commands.
package payload

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
)

// ParseU16 parses a 16 bit value in decimal, 0x hex, 0o octal or 0b binary.
func ParseU16(s string) (uint16, error) {
	v, err := strconv.ParseUint(strings.TrimSpace(s), 0, 16)
	if err != nil {
		return 0, fmt.Errorf("invalid 16 bit value %q: %w", s, err)
	}
	return uint16(v), nil
}

// ParseHex decodes hex bytes. Spaces, colons and dashes between bytes are ignored,
// so "04 d2", "04:D2" and "04d2" are the same payload.
func ParseHex(s string) ([]byte, error) {
	clean := strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', ':', '-':
			return -1
		}
		return r
	}, s)
	clean = strings.TrimPrefix(strings.TrimPrefix(clean, "0x"), "0X")
	b, err := hex.DecodeString(clean)
	if err != nil {
		return nil, fmt.Errorf("invalid hex payload %q: %w", s, err)
	}
	return b, nil
}
