package canonhuff

import (
	"errors"
	"fmt"
	"io"
)

// BitSource produces bits on demand, one per call.  ReadBit returns 0 or 1,
// or io.EOF once no bits remain.
type BitSource interface {
	ReadBit() (byte, error)
}

// BitSourceFunc adapts an ordinary function to the BitSource interface.
type BitSourceFunc func() (byte, error)

// ReadBit calls fn().
func (fn BitSourceFunc) ReadBit() (byte, error) {
	return fn()
}

// BitsOf returns a BitSource that yields the bits of hc, first bit first,
// and then io.EOF.
func BitsOf(hc Code) BitSource {
	return &codeSource{hc: hc}
}

type codeSource struct {
	hc  Code
	pos byte
}

func (src *codeSource) ReadBit() (byte, error) {
	if src.pos >= src.hc.Size {
		return 0, io.EOF
	}
	bit := src.hc.Bit(src.pos)
	src.pos++
	return bit, nil
}

// Decode reads exactly one code from src and returns its rank: its position
// in the canonical order of h, which is also its position in a Table's
// entries.
//
// Decode reads one bit per code length tried and never reads past the end of
// the matched code.  Possible failures:
//
//   - ErrSourceExhausted if src returns io.EOF before a code is complete
//   - ErrMalformedCode if the bits read match no code in h
//   - any other error from src, returned as-is
//
// On failure the bits already consumed are lost; h itself is unaffected.
func (h Histogram) Decode(src BitSource) (int, error) {
	if len(h) > MaxCodeLength {
		return -1, fmt.Errorf("%w: %d bits, max %d", ErrCodeTooLong, len(h), MaxCodeLength)
	}

	// accumulator is the offset of the bits read so far from the first
	// code of the current length; it goes negative once it lands inside
	// the range of codes of that length.
	var accumulator, rangeEnd int64
	for index, count := range h {
		bit, err := src.ReadBit()
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return -1, fmt.Errorf("%w: after %d bits: %w", ErrSourceExhausted, index, err)
		}
		if err != nil {
			return -1, err
		}
		if bit > 1 {
			return -1, fmt.Errorf("%w: bit source returned %d", ErrMalformedCode, bit)
		}

		rangeEnd += int64(count)
		accumulator = ((accumulator << 1) | int64(bit)) - int64(count)
		if accumulator < 0 {
			return int(accumulator + rangeEnd), nil
		}
	}
	return -1, fmt.Errorf("%w: no match within %d bits", ErrMalformedCode, len(h))
}
