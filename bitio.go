package canonhuff

import (
	"io"

	"github.com/icza/bitio"
)

// BitSink consumes bits.  WriteBits writes the n low bits of r, most
// significant first.  *bitio.Writer satisfies this interface.
type BitSink interface {
	WriteBits(r uint64, n uint8) error
}

var _ BitSink = (*bitio.Writer)(nil)

// NewBitReader returns a BitSource that reads the bits of r, most significant
// bit of each byte first.
func NewBitReader(r io.Reader) BitSource {
	return bitReader{bitio.NewReader(r)}
}

type bitReader struct {
	r *bitio.Reader
}

func (br bitReader) ReadBit() (byte, error) {
	b, err := br.r.ReadBool()
	if err != nil {
		return 0, err
	}
	if b {
		return 1, nil
	}
	return 0, nil
}

// WriteCode writes the bits of hc to sink, first bit first.
func WriteCode(sink BitSink, hc Code) error {
	return sink.WriteBits(hc.Bits, hc.Size)
}
