package flagfield

// AIP returns the layout of the EMV Application Interchange Profile
// (tag 82), the two-byte register a card returns in its GET PROCESSING
// OPTIONS response to announce which authentication and verification
// methods it supports. RFU bits are left unnamed.
func AIP() Layout {
	return Layout{
		Name: "Application Interchange Profile",
		Tag:  "82",
		Size: 2,
		Flags: []Flag{
			{Name: "SDA supported", Byte: 1, Bit: 7},
			{Name: "DDA supported", Byte: 1, Bit: 6},
			{Name: "Cardholder verification supported", Byte: 1, Bit: 5},
			{Name: "Terminal risk management required", Byte: 1, Bit: 4},
			{Name: "Issuer authentication supported", Byte: 1, Bit: 3},
			{Name: "CDA supported", Byte: 1, Bit: 1},
			{Name: "EMV mode supported", Byte: 2, Bit: 8},
		},
	}
}
