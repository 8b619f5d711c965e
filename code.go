package canonhuff

import (
	"fmt"
	"strconv"
)

// MaxCodeLength is the longest code, in bits, that this package will assign
// or decode.
const MaxCodeLength = 62

// Code represents a sequence of bits.
type Code struct {
	// Size holds the number of valid bits.
	Size byte

	// Bits holds the actual values of the bits.  The most significant of
	// the Size low bits is the first bit on the wire, so that codes of
	// equal Size compare in the same order as their canonical rank.
	Bits uint64
}

// MakeCode is a convenience function that constructs a Code.
func MakeCode(size byte, bits uint64) Code {
	return Code{Size: size, Bits: bits}
}

// Bit returns the i'th bit of the code, counting from the first bit sent.
func (hc Code) Bit(i byte) byte {
	return byte(hc.Bits>>(hc.Size-1-i)) & 1
}

// String returns the string representation of this Code.
func (hc Code) String() string {
	if hc.Size == 0 {
		return "\"\""
	}
	format := "%0" + strconv.FormatUint(uint64(hc.Size), 10) + "b"
	return strconv.Quote(fmt.Sprintf(format, hc.Bits))
}

// GoString returns a Go expression that reconstructs this Code.
func (hc Code) GoString() string {
	return fmt.Sprintf("MakeCode(%d, 0x%x)", hc.Size, hc.Bits)
}

var (
	_ fmt.Stringer   = Code{}
	_ fmt.GoStringer = Code{}
)
