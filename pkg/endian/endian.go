// Package endian serializes arithmetic values to and from byte buffers in a
// caller-selected byte order, tolerating undersized buffers gracefully.
//
// The byte order is expressed relative to the running platform: Native keeps
// the in-memory layout, Swapped reverses it. When a buffer is too small the
// operation still performs a best-effort partial transfer with documented
// truncation semantics and reports the shortfall through its boolean result,
// so callers that ignore the result still get deterministic output.
package endian

import (
	"encoding/binary"
	"fmt"
	"math"
)

// Order selects the byte order of a serialized value relative to the
// platform's in-memory representation.
type Order int

const (
	// Native keeps the platform's in-memory byte order.
	Native Order = iota
	// Swapped reverses the platform's in-memory byte order.
	Swapped
)

func (o Order) String() string {
	switch o {
	case Native:
		return "native"
	case Swapped:
		return "swapped"
	default:
		return fmt.Sprintf("Order(%d)", int(o))
	}
}

// nativeLittle reports whether the platform stores multi-byte values
// least-significant byte first.
var nativeLittle = func() bool {
	var probe [2]byte
	binary.NativeEndian.PutUint16(probe[:], 0x0102)
	return probe[0] == 0x02
}()

// NativeByteOrder returns the absolute byte order of the running platform.
func NativeByteOrder() binary.ByteOrder {
	if nativeLittle {
		return binary.LittleEndian
	}
	return binary.BigEndian
}

// OrderFor returns the tag that selects the given absolute byte order on
// this platform: Native if bo matches the in-memory order, Swapped otherwise.
func OrderFor(bo binary.ByteOrder) Order {
	if isLittle(bo) == nativeLittle {
		return Native
	}
	return Swapped
}

// byteOrder resolves the relative tag to an absolute encoding/binary order.
func (o Order) byteOrder() binary.ByteOrder {
	little := nativeLittle
	if o == Swapped {
		little = !little
	}
	if little {
		return binary.LittleEndian
	}
	return binary.BigEndian
}

func isLittle(bo binary.ByteOrder) bool {
	var probe [2]byte
	bo.PutUint16(probe[:], 0x0102)
	return probe[0] == 0x02
}

// Arithmetic is the closed set of value types the codec serializes. The
// members are exact types, not underlying-type sets, so the internal
// per-type dispatch is total.
type Arithmetic interface {
	uint8 | uint16 | uint32 | uint64 |
		int8 | int16 | int32 | int64 |
		float32 | float64
}

// Size returns the number of bytes in the in-memory representation of T.
func Size[T Arithmetic]() int {
	var v T
	switch any(v).(type) {
	case uint8, int8:
		return 1
	case uint16, int16:
		return 2
	case uint32, int32, float32:
		return 4
	default:
		return 8
	}
}

// encode lays out value in buf using the absolute order bo. Floats are
// reinterpreted through their IEEE 754 bit pattern, never converted.
func encode[T Arithmetic](value T, bo binary.ByteOrder, buf []byte) {
	switch v := any(value).(type) {
	case uint8:
		buf[0] = v
	case int8:
		buf[0] = uint8(v)
	case uint16:
		bo.PutUint16(buf, v)
	case int16:
		bo.PutUint16(buf, uint16(v))
	case uint32:
		bo.PutUint32(buf, v)
	case int32:
		bo.PutUint32(buf, uint32(v))
	case uint64:
		bo.PutUint64(buf, v)
	case int64:
		bo.PutUint64(buf, uint64(v))
	case float32:
		bo.PutUint32(buf, math.Float32bits(v))
	case float64:
		bo.PutUint64(buf, math.Float64bits(v))
	}
}

// decode reinterprets buf as a value of type T using the absolute order bo.
func decode[T Arithmetic](buf []byte, bo binary.ByteOrder) T {
	var value T
	switch p := any(&value).(type) {
	case *uint8:
		*p = buf[0]
	case *int8:
		*p = int8(buf[0])
	case *uint16:
		*p = bo.Uint16(buf)
	case *int16:
		*p = int16(bo.Uint16(buf))
	case *uint32:
		*p = bo.Uint32(buf)
	case *int32:
		*p = int32(bo.Uint32(buf))
	case *uint64:
		*p = bo.Uint64(buf)
	case *int64:
		*p = int64(bo.Uint64(buf))
	case *float32:
		*p = math.Float32frombits(bo.Uint32(buf))
	case *float64:
		*p = math.Float64frombits(bo.Uint64(buf))
	}
	return value
}

// WriteBytes serializes value into dst in the requested byte order and
// reports whether dst had room for the whole value.
//
// When dst is shorter than the value, the least-significant bytes are
// written and false is returned; truncation always drops the
// most-significant end, never the least-significant one.
func WriteBytes[T Arithmetic](value T, dst []byte, order Order) bool {
	size := Size[T]()
	if size == 1 {
		// Byte order is irrelevant for a single byte.
		if len(dst) == 0 {
			return false
		}
		var raw [1]byte
		encode(value, binary.LittleEndian, raw[:])
		dst[0] = raw[0]
		return true
	}

	bo := order.byteOrder()
	var scratch [8]byte
	encode(value, bo, scratch[:size])

	n := size
	if len(dst) < n {
		n = len(dst)
	}
	if isLittle(bo) {
		// Least-significant bytes sit at the head of a little-endian layout.
		copy(dst, scratch[:n])
	} else {
		copy(dst, scratch[size-n:size])
	}
	return len(dst) >= size
}

// ReadBytes deserializes a value of src's byte order into *value and reports
// whether src covered the whole value.
//
// When src is shorter than the value, the missing most-significant bytes are
// zero-padded; *value still receives the well-defined reconstruction and
// false is returned.
func ReadBytes[T Arithmetic](src []byte, value *T, order Order) bool {
	size := Size[T]()
	if size == 1 {
		if len(src) == 0 {
			return false
		}
		*value = decode[T](src[:1], binary.LittleEndian)
		return true
	}

	var scratch [8]byte
	n := size
	if len(src) < n {
		n = len(src)
	}
	if order == Swapped {
		// The available bytes land at the tail of the scratch layout so the
		// positions that flip to the most-significant end stay zero.
		copy(scratch[size-n:size], src[:n])
	} else {
		copy(scratch[:n], src[:n])
	}
	*value = decode[T](scratch[:size], order.byteOrder())
	return len(src) >= size
}
