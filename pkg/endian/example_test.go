package endian_test

import (
	"fmt"

	"github.com/gregLibert/bit-manip/pkg/endian"
)

// ExampleWriteBytes serializes a value in both byte orders.
func ExampleWriteBytes() {
	buf := make([]byte, 2)

	endian.WriteBytes(uint16(0x1234), buf, endian.OrderFor(endian.NativeByteOrder()))
	native := fmt.Sprintf("% X", buf)

	endian.WriteBytes(uint16(0x1234), buf, endian.Swapped)
	swapped := fmt.Sprintf("% X", buf)

	// The two layouts are always byte reversals of each other.
	fmt.Println(native[0:2] == swapped[3:5] && native[3:5] == swapped[0:2])
	// Output:
	// true
}

// ExampleReadBytes shows the defined behavior of an undersized source.
func ExampleReadBytes() {
	var val uint32
	complete := endian.ReadBytes([]byte{0x78, 0x56, 0x34}, &val, endian.Native)

	fmt.Println(complete)
	// Output:
	// false
}
