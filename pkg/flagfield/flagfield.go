// Package flagfield interprets named bit-flag registers carried inside
// BER-TLV (Basic Encoding Rules - Tag-Length-Value) payloads, such as the
// EMV Application Interchange Profile. A Layout names each meaningful bit
// the way specification tables do (byte number from the first transmitted
// byte, bit number from the least-significant bit); Parse locates the tag,
// loads the payload into a register and answers flag queries through the
// bit-range engine.
package flagfield

import (
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/moov-io/bertlv"

	"github.com/gregLibert/bit-manip/pkg/bits"
	"github.com/gregLibert/bit-manip/pkg/endian"
)

// Flag names one bit inside a multi-byte register. Byte counts from the
// first transmitted (most-significant) byte starting at 1; Bit is the
// 1-based position from the least-significant bit of that byte. This is the
// numbering convention of EMV specification tables.
type Flag struct {
	Name string
	Byte uint
	Bit  uint
}

// Layout describes a flag register carried in a BER-TLV payload.
type Layout struct {
	Name  string
	Tag   string
	Size  uint // expected payload length in bytes
	Flags []Flag
}

// Register is a decoded flag register.
type Register struct {
	Layout Layout
	Raw    []byte
	Value  uint64
}

// Parse locates the layout's tag in raw BER-TLV data, including inside
// constructed templates, and decodes the register.
func Parse(layout Layout, data []byte) (*Register, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("empty data cannot be parsed")
	}

	packets, err := bertlv.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("BER-TLV decode failed: %w", err)
	}

	payload, found := findTag(packets, layout.Tag)
	if !found {
		return nil, fmt.Errorf("tag %s not found", layout.Tag)
	}
	if uint(len(payload)) != layout.Size {
		return nil, fmt.Errorf("tag %s: expected %d bytes, got %d", layout.Tag, layout.Size, len(payload))
	}
	if layout.Size > 8 {
		return nil, fmt.Errorf("layout %s: %d bytes exceed the register width", layout.Name, layout.Size)
	}

	// TLV payloads transmit the most-significant byte first. Padding the
	// high end up to the register width keeps the read full-size so the
	// reconstruction does not depend on the platform layout.
	var padded [8]byte
	copy(padded[8-len(payload):], payload)
	var value uint64
	endian.ReadBytes(padded[:], &value, endian.OrderFor(binary.BigEndian))

	return &Register{Layout: layout, Raw: payload, Value: value}, nil
}

// findTag walks the decoded packets depth-first and returns the payload of
// the first packet matching tag.
func findTag(packets []bertlv.TLV, tag string) ([]byte, bool) {
	for _, p := range packets {
		if strings.EqualFold(p.Tag, tag) {
			return p.Value, true
		}
		if payload, found := findTag(p.TLVs, tag); found {
			return payload, true
		}
	}
	return nil, false
}

// bitIndex converts a flag's table position into an absolute bit index from
// the least-significant end of the register. A flag addressing a byte beyond
// the layout's size maps to an out-of-range index, which the engine treats
// as never set.
func (r *Register) bitIndex(f Flag) uint {
	if f.Byte < 1 || f.Byte > r.Layout.Size || f.Bit < 1 {
		return bits.Width[uint64]()
	}
	return (r.Layout.Size-f.Byte)*8 + (f.Bit - 1)
}

// IsSet reports whether the named flag is set. Unknown names report false.
func (r *Register) IsSet(name string) bool {
	for _, f := range r.Layout.Flags {
		if f.Name == name {
			return bits.IsBitSet(r.Value, r.bitIndex(f))
		}
	}
	return false
}

// SetNames returns the names of all set flags, in layout order.
func (r *Register) SetNames() []string {
	var names []string
	for _, f := range r.Layout.Flags {
		if bits.IsBitSet(r.Value, r.bitIndex(f)) {
			names = append(names, f.Name)
		}
	}
	return names
}

// Describe generates a detailed, standardized report of the register content.
func (r *Register) Describe() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "=== %s (Tag %s) ===\n", r.Layout.Name, r.Layout.Tag)
	fmt.Fprintf(&sb, "    Raw: %X\n", r.Raw)

	for _, f := range r.Layout.Flags {
		state := " "
		if bits.IsBitSet(r.Value, r.bitIndex(f)) {
			state = "x"
		}
		fmt.Fprintf(&sb, "    [%s] Byte %d Bit %d: %s\n", state, f.Byte, f.Bit, f.Name)
	}

	return strings.TrimRight(sb.String(), "\n")
}
