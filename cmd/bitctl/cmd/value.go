package cmd

import (
	"fmt"
	"strconv"
	"strings"
)

// hexValue is a fixed-width unsigned value parsed from a hex literal. The
// width is inferred from the digit count so "0034" addresses a 16-bit value
// while "34" addresses an 8-bit one.
type hexValue struct {
	v     uint64
	width uint
}

func parseHexValue(s string) (hexValue, error) {
	clean := strings.TrimPrefix(strings.ToLower(s), "0x")
	v, err := strconv.ParseUint(clean, 16, 64)
	if err != nil {
		return hexValue{}, fmt.Errorf("invalid hex value %q: %w", s, err)
	}

	var width uint
	switch {
	case len(clean) <= 2:
		width = 8
	case len(clean) <= 4:
		width = 16
	case len(clean) <= 8:
		width = 32
	case len(clean) <= 16:
		width = 64
	default:
		return hexValue{}, fmt.Errorf("hex value %q exceeds 64 bits", s)
	}
	return hexValue{v: v, width: width}, nil
}

func parseOffset(s string) (uint, error) {
	n, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid bit offset %q: %w", s, err)
	}
	return uint(n), nil
}

// format renders v back at its declared width.
func (h hexValue) format(v uint64) string {
	return fmt.Sprintf("0x%0*X", h.width/4, v)
}
