package bits

// Low/high half accessors, the inverses of the combiners.

// GetLowByte returns the low byte of a word.
func GetLowByte(val uint16) uint8 {
	return GetByte(val, 0)
}

// GetHighByte returns the high byte of a word.
func GetHighByte(val uint16) uint8 {
	return GetByte(val, byteWidth)
}

// GetLowWord returns the low word of a dword.
func GetLowWord(val uint32) uint16 {
	return GetWord(val, 0)
}

// GetHighWord returns the high word of a dword.
func GetHighWord(val uint32) uint16 {
	return GetWord(val, wordWidth)
}

// GetLowDword returns the low dword of a qword.
func GetLowDword(val uint64) uint32 {
	return GetDword(val, 0)
}

// GetHighDword returns the high dword of a qword.
func GetHighDword(val uint64) uint32 {
	return GetDword(val, dwordWidth)
}

// SetLowByte returns val with its low byte replaced by b.
func SetLowByte(val uint16, b uint8) uint16 {
	return SetByte(val, b, 0)
}

// SetHighByte returns val with its high byte replaced by b.
func SetHighByte(val uint16, b uint8) uint16 {
	return SetByte(val, b, byteWidth)
}

// SetLowWord returns val with its low word replaced by w.
func SetLowWord(val uint32, w uint16) uint32 {
	return SetWord(val, w, 0)
}

// SetHighWord returns val with its high word replaced by w.
func SetHighWord(val uint32, w uint16) uint32 {
	return SetWord(val, w, wordWidth)
}

// SetLowDword returns val with its low dword replaced by d.
func SetLowDword(val uint64, d uint32) uint64 {
	return SetDword(val, d, 0)
}

// SetHighDword returns val with its high dword replaced by d.
func SetHighDword(val uint64, d uint32) uint64 {
	return SetDword(val, d, dwordWidth)
}

// ClearLowByte returns val with its low byte cleared.
func ClearLowByte(val uint16) uint16 {
	return ClearByte(val, 0)
}

// ClearHighByte returns val with its high byte cleared.
func ClearHighByte(val uint16) uint16 {
	return ClearByte(val, byteWidth)
}

// ClearLowWord returns val with its low word cleared.
func ClearLowWord(val uint32) uint32 {
	return ClearWord(val, 0)
}

// ClearHighWord returns val with its high word cleared.
func ClearHighWord(val uint32) uint32 {
	return ClearWord(val, wordWidth)
}

// ClearLowDword returns val with its low dword cleared.
func ClearLowDword(val uint64) uint64 {
	return ClearDword(val, 0)
}

// ClearHighDword returns val with its high dword cleared.
func ClearHighDword(val uint64) uint64 {
	return ClearDword(val, dwordWidth)
}

// FillLowByte returns val with its low byte filled with ones.
func FillLowByte(val uint16) uint16 {
	return FillByte(val, 0)
}

// FillHighByte returns val with its high byte filled with ones.
func FillHighByte(val uint16) uint16 {
	return FillByte(val, byteWidth)
}

// FillLowWord returns val with its low word filled with ones.
func FillLowWord(val uint32) uint32 {
	return FillWord(val, 0)
}

// FillHighWord returns val with its high word filled with ones.
func FillHighWord(val uint32) uint32 {
	return FillWord(val, wordWidth)
}

// FillLowDword returns val with its low dword filled with ones.
func FillLowDword(val uint64) uint64 {
	return FillDword(val, 0)
}

// FillHighDword returns val with its high dword filled with ones.
func FillHighDword(val uint64) uint64 {
	return FillDword(val, dwordWidth)
}
