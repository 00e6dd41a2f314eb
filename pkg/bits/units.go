package bits

// Unit accessors read and write byte, word and dword spans at an arbitrary
// bit offset. The container must be strictly wider than the unit; the
// constraint sets below enforce that at compile time.

// WiderThanByte is the set of containers a byte accessor may operate on.
type WiderThanByte interface {
	~uint16 | ~uint32 | ~uint64
}

// WiderThanWord is the set of containers a word accessor may operate on.
type WiderThanWord interface {
	~uint32 | ~uint64
}

// WiderThanDword is the set of containers a dword accessor may operate on.
type WiderThanDword interface {
	~uint64
}

const (
	byteWidth  = 8
	wordWidth  = 16
	dwordWidth = 32
)

// GetByte returns the byte of val starting at bit begin.
func GetByte[T WiderThanByte](val T, begin uint) uint8 {
	return uint8(GetBits(val, begin, byteWidth))
}

// GetWord returns the word of val starting at bit begin.
func GetWord[T WiderThanWord](val T, begin uint) uint16 {
	return uint16(GetBits(val, begin, wordWidth))
}

// GetDword returns the dword of val starting at bit begin.
func GetDword[T WiderThanDword](val T, begin uint) uint32 {
	return uint32(GetBits(val, begin, dwordWidth))
}

// SetByte returns val with the byte starting at bit begin replaced by b.
func SetByte[T WiderThanByte](val T, b uint8, begin uint) T {
	return SetBits(val, b, begin, byteWidth)
}

// SetWord returns val with the word starting at bit begin replaced by w.
func SetWord[T WiderThanWord](val T, w uint16, begin uint) T {
	return SetBits(val, w, begin, wordWidth)
}

// SetDword returns val with the dword starting at bit begin replaced by d.
func SetDword[T WiderThanDword](val T, d uint32, begin uint) T {
	return SetBits(val, d, begin, dwordWidth)
}

// ClearByte returns val with the byte starting at bit begin cleared.
func ClearByte[T WiderThanByte](val T, begin uint) T {
	return ClearBits(val, begin, byteWidth)
}

// ClearWord returns val with the word starting at bit begin cleared.
func ClearWord[T WiderThanWord](val T, begin uint) T {
	return ClearBits(val, begin, wordWidth)
}

// ClearDword returns val with the dword starting at bit begin cleared.
func ClearDword[T WiderThanDword](val T, begin uint) T {
	return ClearBits(val, begin, dwordWidth)
}

// FillByte returns val with the byte starting at bit begin filled with ones.
func FillByte[T WiderThanByte](val T, begin uint) T {
	return FillBits(val, begin, byteWidth)
}

// FillWord returns val with the word starting at bit begin filled with ones.
func FillWord[T WiderThanWord](val T, begin uint) T {
	return FillBits(val, begin, wordWidth)
}

// FillDword returns val with the dword starting at bit begin filled with ones.
func FillDword[T WiderThanDword](val T, begin uint) T {
	return FillBits(val, begin, dwordWidth)
}
