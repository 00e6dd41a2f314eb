// Package bits manipulates contiguous bit ranges inside fixed-width unsigned
// integers: getting, setting, clearing and filling arbitrary ranges, plus
// byte/word/dword-granularity accessors and combiners derived from them.
//
// A bit range is the span [begin, begin+count) counted from the
// least-significant bit (bit 0). Out-of-range addressing never faults:
// a read beyond the value's width yields zero and a mutation beyond it is a
// no-op, so callers running generic bit-indexed loops do not need bounds
// checks before every call.
package bits

import mathbits "math/bits"

// Unsigned is the closed set of fixed-width unsigned integer types the
// engine operates on.
type Unsigned interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Width returns the bit width of T (8, 16, 32 or 64).
func Width[T Unsigned]() uint {
	return uint(mathbits.Len64(uint64(^T(0))))
}

// rangeMask builds a mask of count contiguous one bits starting at begin.
// Callers guarantee begin < width and count < width.
func rangeMask[T Unsigned](begin, count uint) T {
	return ((T(1) << count) - 1) << begin
}

// GetBits returns the count bits of val starting at bit begin, shifted down
// to bit 0. If begin is at or beyond the width of T the result is 0; if
// count covers the full width or more, val is returned unchanged.
func GetBits[T Unsigned](val T, begin, count uint) T {
	width := Width[T]()
	if begin >= width {
		return 0
	}
	if count >= width {
		return val
	}
	return (val & rangeMask[T](begin, count)) >> begin
}

// ClearBits returns val with the bits in [begin, begin+count) cleared.
// If begin is at or beyond the width of T, val is returned unchanged; if
// count covers the full width or more, the whole value is cleared.
func ClearBits[T Unsigned](val T, begin, count uint) T {
	width := Width[T]()
	if begin >= width {
		return val
	}
	if count >= width {
		return 0
	}
	return val &^ rangeMask[T](begin, count)
}

// SetBits returns val with the bits in [begin, begin+count) overwritten by
// the low count bits of bits. The target range is cleared first so no
// residual bits survive. If begin is at or beyond the width of T, val is
// returned unchanged; a range that crosses the width boundary is clamped to
// [begin, width).
func SetBits[T, B Unsigned](val T, bits B, begin, count uint) T {
	width := Width[T]()
	if begin >= width {
		return val
	}
	if count > width-begin {
		count = width - begin
	}
	if count == width {
		return T(bits)
	}
	mask := rangeMask[T](begin, count)
	return (val &^ mask) | ((T(bits) << begin) & mask)
}

// FillBits returns val with every bit in [begin, begin+count) set to one.
// The same boundary policy as SetBits applies.
func FillBits[T Unsigned](val T, begin, count uint) T {
	return SetBits(val, ^T(0), begin, count)
}

// IsBitSet reports whether bit idx of val is set. An index at or beyond the
// width of T reports false.
func IsBitSet[T Unsigned](val T, idx uint) bool {
	if idx >= Width[T]() {
		return false
	}
	return val&(T(1)<<idx) != 0
}

// SetBit returns val with bit idx set. Out-of-range indices are a no-op.
func SetBit[T Unsigned](val T, idx uint) T {
	if idx >= Width[T]() {
		return val
	}
	return val | T(1)<<idx
}

// ClearBit returns val with bit idx cleared. Out-of-range indices are a no-op.
func ClearBit[T Unsigned](val T, idx uint) T {
	if idx >= Width[T]() {
		return val
	}
	return val &^ (T(1) << idx)
}

// AssignBit returns val with bit idx set or cleared depending on on.
func AssignBit[T Unsigned](val T, idx uint, on bool) T {
	if on {
		return SetBit(val, idx)
	}
	return ClearBit(val, idx)
}

// FillBitsAt returns val with each listed bit set. Indices may appear in any
// order and may repeat; setting an already-set bit is idempotent.
func FillBitsAt[T Unsigned](val T, idxs ...uint) T {
	for _, idx := range idxs {
		val = SetBit(val, idx)
	}
	return val
}

// ClearBitsAt returns val with each listed bit cleared.
func ClearBitsAt[T Unsigned](val T, idxs ...uint) T {
	for _, idx := range idxs {
		val = ClearBit(val, idx)
	}
	return val
}

// IsAnyBitSet reports whether at least one of the listed bits is set.
func IsAnyBitSet[T Unsigned](val T, idxs ...uint) bool {
	for _, idx := range idxs {
		if IsBitSet(val, idx) {
			return true
		}
	}
	return false
}

// AreAllBitsSet reports whether every listed bit is set.
func AreAllBitsSet[T Unsigned](val T, idxs ...uint) bool {
	for _, idx := range idxs {
		if !IsBitSet(val, idx) {
			return false
		}
	}
	return true
}

// IsNoneBitSet reports whether none of the listed bits is set.
func IsNoneBitSet[T Unsigned](val T, idxs ...uint) bool {
	return !IsAnyBitSet(val, idxs...)
}
