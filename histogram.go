package canonhuff

import (
	"bytes"
	"encoding"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/cespare/xxhash/v2"
)

// Histogram holds the number of codes of each bit length: element L-1 is the
// number of codes that are L bits long.  The last element is always nonzero.
//
// A Histogram is all that a receiver needs to reconstruct a canonical code.
type Histogram []uint32

// HistogramOf tallies a list of code lengths.  Every length must be in the
// range 1 .. MaxCodeLength.
func HistogramOf(lengths []byte) (Histogram, error) {
	if len(lengths) == 0 {
		return nil, ErrNoSymbols
	}

	var maxLength byte
	for index, length := range lengths {
		if length == 0 {
			return nil, fmt.Errorf("%w: symbol %d has length 0", ErrInvalidHistogram, index)
		}
		if length > MaxCodeLength {
			return nil, fmt.Errorf("%w: symbol %d has length %d, max %d", ErrCodeTooLong, index, length, MaxCodeLength)
		}
		if maxLength < length {
			maxLength = length
		}
	}

	h := make(Histogram, maxLength)
	for _, length := range lengths {
		h[length-1]++
	}
	return h, nil
}

// NumSymbols returns the total number of codes.
func (h Histogram) NumSymbols() int {
	var sum int
	for _, count := range h {
		sum += int(count)
	}
	return sum
}

// MinLength is the bit length of the shortest code.
func (h Histogram) MinLength() byte {
	for index, count := range h {
		if count != 0 {
			return byte(index + 1)
		}
	}
	return 0
}

// MaxLength is the bit length of the longest code.
func (h Histogram) MaxLength() byte {
	return byte(len(h))
}

// Validate checks that h describes a prefix code, i.e. that Kraft's
// inequality holds.  Codes that leave some bit sequences unused are
// permitted.
func (h Histogram) Validate() error {
	_, err := h.unused()
	return err
}

// Complete reports whether h describes a complete prefix code, i.e. whether
// Kraft's equality holds and every bit sequence decodes to some symbol.
func (h Histogram) Complete() bool {
	unused, err := h.unused()
	return err == nil && unused == 0
}

// unused returns the number of MaxLength()-bit sequences that no code
// covers.
func (h Histogram) unused() (uint64, error) {
	if len(h) == 0 {
		return 0, fmt.Errorf("%w: no codes", ErrInvalidHistogram)
	}
	if len(h) > MaxCodeLength {
		return 0, fmt.Errorf("%w: %d bits, max %d", ErrCodeTooLong, len(h), MaxCodeLength)
	}
	if h[len(h)-1] == 0 {
		return 0, fmt.Errorf("%w: trailing zero count for length %d", ErrInvalidHistogram, len(h))
	}

	available := uint64(1)
	for index, count := range h {
		available <<= 1
		if uint64(count) > available {
			return 0, fmt.Errorf("%w: %d codes of length %d, only %d available", ErrInvalidHistogram, count, index+1, available)
		}
		available -= uint64(count)
	}
	return available, nil
}

// Codes returns the canonical codes in rank order: shorter codes first, and
// consecutive values within each length.
func (h Histogram) Codes() []Code {
	out := make([]Code, 0, h.NumSymbols())
	var endingCode uint64
	for index, count := range h {
		startingCode := endingCode << 1
		endingCode = startingCode + uint64(count)
		for bits := startingCode; bits < endingCode; bits++ {
			out = append(out, MakeCode(byte(index+1), bits))
		}
	}
	return out
}

// Fingerprint returns a 64-bit hash of the histogram.  Equal histograms
// always have equal fingerprints.
func (h Histogram) Fingerprint() uint64 {
	d := xxhash.New()
	h.writeHash(d)
	return d.Sum64()
}

func (h Histogram) writeHash(d *xxhash.Digest) {
	var scratch [binary.MaxVarintLen64]byte
	_, _ = d.Write(binary.AppendUvarint(scratch[:0], uint64(len(h))))
	for _, count := range h {
		_, _ = d.Write(binary.AppendUvarint(scratch[:0], uint64(count)))
	}
}

// String returns a compact representation such as "[1 2]".
func (h Histogram) String() string {
	var buf bytes.Buffer
	buf.WriteByte('[')
	for index, count := range h {
		if index > 0 {
			buf.WriteByte(' ')
		}
		buf.WriteString(strconv.FormatUint(uint64(count), 10))
	}
	buf.WriteByte(']')
	return buf.String()
}

// GoString returns a Go expression that reconstructs this Histogram.
func (h Histogram) GoString() string {
	var buf bytes.Buffer
	buf.WriteString("Histogram{")
	for index, count := range h {
		if index > 0 {
			buf.WriteByte(',')
		}
		buf.WriteString(strconv.FormatUint(uint64(count), 10))
	}
	buf.WriteByte('}')
	return buf.String()
}

// Dump writes a programmer-readable debugging dump of the Histogram to the
// given writer.
func (h Histogram) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Histogram{\n")
	fmt.Fprintf(&buf, "\tNumSymbols() = %d\n", h.NumSymbols())
	fmt.Fprintf(&buf, "\tMaxLength() = %d\n", h.MaxLength())
	var endingCode uint64
	var rank int
	for index, count := range h {
		startingCode := endingCode << 1
		endingCode = startingCode + uint64(count)
		if count == 0 {
			continue
		}
		first := MakeCode(byte(index+1), startingCode)
		last := MakeCode(byte(index+1), endingCode-1)
		fmt.Fprintf(&buf, "\tLength(%d) = %d codes %s .. %s, ranks %d .. %d\n", index+1, count, first, last, rank, rank+int(count)-1)
		rank += int(count)
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// MarshalJSON encodes the Histogram as a JSON array of counts.
func (h Histogram) MarshalJSON() ([]byte, error) {
	return json.Marshal([]uint32(h))
}

// UnmarshalJSON decodes a JSON array of counts and validates it.
func (h *Histogram) UnmarshalJSON(raw []byte) error {
	var counts []uint32
	if err := json.Unmarshal(raw, &counts); err != nil {
		return err
	}
	tmp := Histogram(counts)
	if err := tmp.Validate(); err != nil {
		return err
	}
	*h = tmp
	return nil
}

// MarshalBinary encodes the Histogram as a uvarint element count followed by
// one uvarint per element.
func (h Histogram) MarshalBinary() ([]byte, error) {
	out := make([]byte, 0, 1+len(h)*2)
	out = binary.AppendUvarint(out, uint64(len(h)))
	for _, count := range h {
		out = binary.AppendUvarint(out, uint64(count))
	}
	return out, nil
}

// UnmarshalBinary decodes the format written by MarshalBinary and validates
// the result.
func (h *Histogram) UnmarshalBinary(raw []byte) error {
	n, consumed := binary.Uvarint(raw)
	if consumed <= 0 {
		return fmt.Errorf("%w: bad length prefix", ErrInvalidHistogram)
	}
	raw = raw[consumed:]
	if n > MaxCodeLength {
		return fmt.Errorf("%w: %d bits, max %d", ErrCodeTooLong, n, MaxCodeLength)
	}

	tmp := make(Histogram, n)
	for index := range tmp {
		count, consumed := binary.Uvarint(raw)
		if consumed <= 0 {
			return fmt.Errorf("%w: truncated at length %d", ErrInvalidHistogram, index+1)
		}
		if count > uint64(^uint32(0)) {
			return fmt.Errorf("%w: count %d for length %d overflows", ErrInvalidHistogram, count, index+1)
		}
		raw = raw[consumed:]
		tmp[index] = uint32(count)
	}
	if len(raw) != 0 {
		return fmt.Errorf("%w: %d trailing bytes", ErrInvalidHistogram, len(raw))
	}
	if err := tmp.Validate(); err != nil {
		return err
	}
	*h = tmp
	return nil
}

var (
	_ fmt.Stringer               = Histogram(nil)
	_ fmt.GoStringer             = Histogram(nil)
	_ json.Marshaler             = Histogram(nil)
	_ json.Unmarshaler           = (*Histogram)(nil)
	_ encoding.BinaryMarshaler   = Histogram(nil)
	_ encoding.BinaryUnmarshaler = (*Histogram)(nil)
)
