package bits

// Combiners pack two equal-width values into one value of twice the width.
// Go generics cannot express the doubled-width relation between two type
// parameters, so the combiners are a closed set of concrete functions.

// CombineBytes packs a high and a low byte into a word.
func CombineBytes(high, low uint8) uint16 {
	return uint16(high)<<byteWidth | uint16(low)
}

// CombineWords packs a high and a low word into a dword.
func CombineWords(high, low uint16) uint32 {
	return uint32(high)<<wordWidth | uint32(low)
}

// CombineDwords packs a high and a low dword into a qword.
func CombineDwords(high, low uint32) uint64 {
	return uint64(high)<<dwordWidth | uint64(low)
}
