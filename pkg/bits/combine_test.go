package bits

import "testing"

func TestCombine(t *testing.T) {
	if got := CombineBytes(0x12, 0x34); got != 0x1234 {
		t.Errorf("CombineBytes = 0x%04X; want 0x1234", got)
	}
	if got := CombineWords(0x1234, 0x5678); got != 0x12345678 {
		t.Errorf("CombineWords = 0x%08X; want 0x12345678", got)
	}
	if got := CombineDwords(0x01234567, 0x89ABCDEF); got != 0x0123456789ABCDEF {
		t.Errorf("CombineDwords = 0x%016X; want 0x0123456789ABCDEF", got)
	}
}

func TestCombineSplitRoundTrip(t *testing.T) {
	vals := []uint64{0, 1, 0x0123456789ABCDEF, 0xFFFFFFFFFFFFFFFF}
	for _, v := range vals {
		if got := CombineDwords(GetHighDword(v), GetLowDword(v)); got != v {
			t.Errorf("split/combine qword = 0x%016X; want 0x%016X", got, v)
		}
		d := GetLowDword(v)
		if got := CombineWords(GetHighWord(d), GetLowWord(d)); got != d {
			t.Errorf("split/combine dword = 0x%08X; want 0x%08X", got, d)
		}
		w := GetLowWord(d)
		if got := CombineBytes(GetHighByte(w), GetLowByte(w)); got != w {
			t.Errorf("split/combine word = 0x%04X; want 0x%04X", got, w)
		}
	}
}

func TestHalfAccessors(t *testing.T) {
	if got := GetLowByte(0x1234); got != 0x34 {
		t.Errorf("GetLowByte = 0x%02X; want 0x34", got)
	}
	if got := GetHighByte(0x1234); got != 0x12 {
		t.Errorf("GetHighByte = 0x%02X; want 0x12", got)
	}
	if got := GetLowWord(0x12345678); got != 0x5678 {
		t.Errorf("GetLowWord = 0x%04X; want 0x5678", got)
	}
	if got := GetHighWord(0x12345678); got != 0x1234 {
		t.Errorf("GetHighWord = 0x%04X; want 0x1234", got)
	}
	if got := GetLowDword(0x0123456789ABCDEF); got != 0x89ABCDEF {
		t.Errorf("GetLowDword = 0x%08X; want 0x89ABCDEF", got)
	}
	if got := GetHighDword(0x0123456789ABCDEF); got != 0x01234567 {
		t.Errorf("GetHighDword = 0x%08X; want 0x01234567", got)
	}
}

func TestHalfMutators(t *testing.T) {
	if got := SetLowByte(0x1234, 0xAB); got != 0x12AB {
		t.Errorf("SetLowByte = 0x%04X; want 0x12AB", got)
	}
	if got := SetHighByte(0x1234, 0xAB); got != 0xAB34 {
		t.Errorf("SetHighByte = 0x%04X; want 0xAB34", got)
	}
	if got := SetLowWord(0x12345678, 0xBEEF); got != 0x1234BEEF {
		t.Errorf("SetLowWord = 0x%08X; want 0x1234BEEF", got)
	}
	if got := SetHighWord(0x12345678, 0xBEEF); got != 0xBEEF5678 {
		t.Errorf("SetHighWord = 0x%08X; want 0xBEEF5678", got)
	}
	if got := SetLowDword(0x0123456789ABCDEF, 0xDEADBEEF); got != 0x01234567DEADBEEF {
		t.Errorf("SetLowDword = 0x%016X; want 0x01234567DEADBEEF", got)
	}
	if got := SetHighDword(0x0123456789ABCDEF, 0xDEADBEEF); got != 0xDEADBEEF89ABCDEF {
		t.Errorf("SetHighDword = 0x%016X; want 0xDEADBEEF89ABCDEF", got)
	}

	if got := ClearLowByte(0x1234); got != 0x1200 {
		t.Errorf("ClearLowByte = 0x%04X; want 0x1200", got)
	}
	if got := ClearHighByte(0x1234); got != 0x0034 {
		t.Errorf("ClearHighByte = 0x%04X; want 0x0034", got)
	}
	if got := ClearLowWord(0x12345678); got != 0x12340000 {
		t.Errorf("ClearLowWord = 0x%08X; want 0x12340000", got)
	}
	if got := ClearHighWord(0x12345678); got != 0x00005678 {
		t.Errorf("ClearHighWord = 0x%08X; want 0x00005678", got)
	}
	if got := ClearLowDword(0x0123456789ABCDEF); got != 0x0123456700000000 {
		t.Errorf("ClearLowDword = 0x%016X; want 0x0123456700000000", got)
	}
	if got := ClearHighDword(0x0123456789ABCDEF); got != 0x0000000089ABCDEF {
		t.Errorf("ClearHighDword = 0x%016X; want 0x0000000089ABCDEF", got)
	}

	if got := FillLowByte(0x1234); got != 0x12FF {
		t.Errorf("FillLowByte = 0x%04X; want 0x12FF", got)
	}
	if got := FillHighByte(0x1234); got != 0xFF34 {
		t.Errorf("FillHighByte = 0x%04X; want 0xFF34", got)
	}
	if got := FillLowWord(0x12345678); got != 0x1234FFFF {
		t.Errorf("FillLowWord = 0x%08X; want 0x1234FFFF", got)
	}
	if got := FillHighWord(0x12345678); got != 0xFFFF5678 {
		t.Errorf("FillHighWord = 0x%08X; want 0xFFFF5678", got)
	}
	if got := FillLowDword(0x0123456789ABCDEF); got != 0x01234567FFFFFFFF {
		t.Errorf("FillLowDword = 0x%016X; want 0x01234567FFFFFFFF", got)
	}
	if got := FillHighDword(0x0123456789ABCDEF); got != 0xFFFFFFFF89ABCDEF {
		t.Errorf("FillHighDword = 0x%016X; want 0xFFFFFFFF89ABCDEF", got)
	}
}
