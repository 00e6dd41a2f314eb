package main

import (
	"fmt"
	"log"

	"github.com/gregLibert/bit-manip/pkg/bits"
	"github.com/gregLibert/bit-manip/pkg/endian"
	"github.com/gregLibert/bit-manip/pkg/flagfield"
)

// Sample GET PROCESSING OPTIONS response captured from a contact EMV
// session: a Format 2 template (77) carrying the Application Interchange
// Profile (82) and the Application File Locator (94).
var sampleGPOResponse = flagfield.Hex(
	"77 0A",
	"82 02 1980",
	"94 04 08010100",
)

func main() {
	// --- 1. Decode the flag register carried in the TLV response ---
	reg := step1DecodeAIP()

	// --- 2. Pick the register apart with the bit-range engine ---
	step2InspectRegister(reg)

	// --- 3. Serialize it in both byte orders ---
	step3SerializeRegister(reg)

	fmt.Println("\n>> Demo Finished Successfully")
}

// step1DecodeAIP parses the Application Interchange Profile out of the
// embedded GPO response and reports its named flags.
func step1DecodeAIP() *flagfield.Register {
	fmt.Println("=============================================")
	fmt.Println(" Step 1: DECODE APPLICATION INTERCHANGE PROFILE")
	fmt.Println("=============================================")

	reg, err := flagfield.Parse(flagfield.AIP(), sampleGPOResponse)
	if err != nil {
		log.Fatalf("Error decoding AIP: %v", err)
	}

	fmt.Println(reg.Describe())
	return reg
}

// step2InspectRegister splits the register into halves, rewrites a range and
// reassembles it, exercising the bit-range engine end to end.
func step2InspectRegister(reg *flagfield.Register) {
	fmt.Println("\n=============================================")
	fmt.Println(" Step 2: INSPECT THE REGISTER BIT BY BIT")
	fmt.Println("=============================================")

	word := uint16(reg.Value)
	high, low := bits.GetHighByte(word), bits.GetLowByte(word)
	fmt.Printf("Register 0x%04X splits into high 0x%02X and low 0x%02X\n", word, high, low)

	recombined := bits.CombineBytes(high, low)
	fmt.Printf("CombineBytes(0x%02X, 0x%02X) = 0x%04X\n", high, low, recombined)

	// Force the cardholder-verification bit off and report the difference.
	const cvmBit = 12 // byte 1, bit 5
	modified := bits.ClearBit(word, cvmBit)
	fmt.Printf("Clearing bit %d: 0x%04X -> 0x%04X\n", cvmBit, word, modified)
	fmt.Printf("Low byte survives untouched: 0x%02X\n", bits.GetLowByte(modified))
}

// step3SerializeRegister writes the register into byte buffers in both
// orders, including a deliberately undersized buffer.
func step3SerializeRegister(reg *flagfield.Register) {
	fmt.Println("\n=============================================")
	fmt.Println(" Step 3: SERIALIZE IN BOTH BYTE ORDERS")
	fmt.Println("=============================================")

	word := uint16(reg.Value)

	buf := make([]byte, 2)
	endian.WriteBytes(word, buf, endian.Native)
	fmt.Printf("Native layout:  % X\n", buf)

	endian.WriteBytes(word, buf, endian.Swapped)
	fmt.Printf("Swapped layout: % X\n", buf)

	short := make([]byte, 1)
	if !endian.WriteBytes(word, short, endian.Native) {
		fmt.Printf("Undersized buffer keeps the low byte: % X\n", short)
	}

	var back uint16
	endian.WriteBytes(word, buf, endian.Swapped)
	endian.ReadBytes(buf, &back, endian.Swapped)
	fmt.Printf("Round trip through swapped order: 0x%04X\n", back)
}
