package canonhuff

import (
	"bytes"
	"cmp"
	"encoding/binary"
	"fmt"
	"io"
	"slices"

	"github.com/cespare/xxhash/v2"
	"github.com/chronos-tachyon/assert"
	"github.com/icza/bitio"
)

// Table is a canonical Huffman code over an alphabet of symbols of type S.
//
// Entries are kept in rank order: sorted by code length, then by input
// index.  A Table is immutable once built and may be shared freely between
// goroutines, provided each decode has its own BitSource.
type Table[S any] struct {
	entries []Entry[S]
	ranks   []int
	hist    Histogram
}

// Build constructs the canonical Huffman code for pairs.  The position of
// each pair in the slice is its symbol index, which breaks ties between
// equal weights and between equal code lengths.
//
// Nothing is returned unless construction succeeds completely.
func Build[S any](pairs []Weighted[S]) (*Table[S], error) {
	weights := make([]uint64, len(pairs))
	for index, pair := range pairs {
		weights[index] = pair.Weight
	}

	tree, err := BuildTree(weights)
	if err != nil {
		return nil, err
	}

	lengths := tree.CodeLengths()
	for index, length := range lengths {
		assert.Assertf(length != 0, "symbol %d of %d has code length 0", index, len(lengths))
	}

	codes, hist, err := AssignCodes(lengths)
	if err != nil {
		return nil, err
	}

	order := canonicalOrder(lengths)
	entries := make([]Entry[S], len(pairs))
	ranks := make([]int, len(pairs))
	for rank, index := range order {
		entries[rank] = Entry[S]{
			Symbol: pairs[index].Symbol,
			Index:  index,
			Weight: pairs[index].Weight,
			Code:   codes[index],
		}
		ranks[index] = rank
	}

	return &Table[S]{
		entries: entries,
		ranks:   ranks,
		hist:    hist,
	}, nil
}

// BuildMap constructs the canonical Huffman code for a map from symbols to
// weights.  Symbols are indexed in ascending order.
func BuildMap[S cmp.Ordered](m map[S]uint64) (*Table[S], error) {
	keys := make([]S, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	slices.Sort(keys)

	pairs := make([]Weighted[S], len(keys))
	for index, key := range keys {
		pairs[index] = Weighted[S]{key, m[key]}
	}
	return Build(pairs)
}

// BuildWeights constructs the canonical Huffman code for a plain list of
// weights.  Each symbol is its own index.
func BuildWeights(weights []uint64) (*Table[int], error) {
	pairs := make([]Weighted[int], len(weights))
	for index, weight := range weights {
		pairs[index] = Weighted[int]{index, weight}
	}
	return Build(pairs)
}

// Len returns the number of symbols.
func (t *Table[S]) Len() int {
	return len(t.entries)
}

// Histogram returns a copy of the codes-per-length histogram.
func (t *Table[S]) Histogram() Histogram {
	return slices.Clone(t.hist)
}

// Entries returns a copy of the table rows in rank order.
func (t *Table[S]) Entries() []Entry[S] {
	return slices.Clone(t.entries)
}

// Entry returns the row with the given rank.
func (t *Table[S]) Entry(rank int) Entry[S] {
	return t.entries[rank]
}

// Rank returns the rank of the symbol with the given input index.
func (t *Table[S]) Rank(index int) (int, error) {
	if index < 0 || index >= len(t.ranks) {
		return -1, fmt.Errorf("%w: %d not in [0, %d)", ErrSymbolRange, index, len(t.ranks))
	}
	return t.ranks[index], nil
}

// CodeOf returns the code assigned to the symbol with the given input index.
func (t *Table[S]) CodeOf(index int) (Code, error) {
	rank, err := t.Rank(index)
	if err != nil {
		return Code{}, err
	}
	return t.entries[rank].Code, nil
}

// Lengths returns the code length of every symbol, in input order.
func (t *Table[S]) Lengths() []byte {
	out := make([]byte, len(t.entries))
	for _, e := range t.entries {
		out[e.Index] = e.Code.Size
	}
	return out
}

// Cost returns the sum of length × weight over all symbols: the number of
// bits needed to encode every symbol as many times as its weight says.
func (t *Table[S]) Cost() uint64 {
	var sum uint64
	for _, e := range t.entries {
		sum = addSaturating(sum, uint64(e.Code.Size)*e.Weight)
	}
	return sum
}

// Encode writes the code for the symbol with the given input index to sink.
func (t *Table[S]) Encode(sink BitSink, index int) error {
	hc, err := t.CodeOf(index)
	if err != nil {
		return err
	}
	return WriteCode(sink, hc)
}

// Decode reads one code from src and returns the matching row.
func (t *Table[S]) Decode(src BitSource) (Entry[S], error) {
	rank, err := t.hist.Decode(src)
	if err != nil {
		var zero Entry[S]
		return zero, err
	}
	return t.entries[rank], nil
}

// EncodeAll writes the codes for a sequence of input indices to w, padding
// the final byte with zero bits and flushing any buffered output.
func (t *Table[S]) EncodeAll(w io.Writer, indices []int) error {
	bw := bitio.NewWriter(w)
	for _, index := range indices {
		if err := t.Encode(bw, index); err != nil {
			return err
		}
	}
	return bw.Close()
}

// DecodeAll reads n codes from r and returns their input indices.  Unless r
// is an io.ByteReader, bytes past the last code may be buffered and lost.
func (t *Table[S]) DecodeAll(r io.Reader, n int) ([]int, error) {
	src := NewBitReader(r)
	out := make([]int, 0, n)
	for i := 0; i < n; i++ {
		e, err := t.Decode(src)
		if err != nil {
			return out, fmt.Errorf("symbol %d of %d: %w", i, n, err)
		}
		out = append(out, e.Index)
	}
	return out, nil
}

// Verify decodes the code of every row and checks that it yields that row's
// rank, consuming exactly the code's bits.
func (t *Table[S]) Verify() error {
	for rank, e := range t.entries {
		src := BitsOf(e.Code)
		got, err := t.hist.Decode(src)
		if err != nil {
			return fmt.Errorf("rank %d, code %s: %w", rank, e.Code, err)
		}
		if got != rank {
			return fmt.Errorf("%w: code %s decoded to rank %d, expected %d", ErrMalformedCode, e.Code, got, rank)
		}
		if _, err := src.ReadBit(); err != io.EOF {
			return fmt.Errorf("%w: code %s decoded before its last bit", ErrMalformedCode, e.Code)
		}
	}
	return nil
}

// Fingerprint returns a 64-bit hash of the histogram and the order of symbol
// indices.  Building the same input twice always gives the same fingerprint.
func (t *Table[S]) Fingerprint() uint64 {
	d := xxhash.New()
	t.hist.writeHash(d)
	var scratch [binary.MaxVarintLen64]byte
	for _, e := range t.entries {
		_, _ = d.Write(binary.AppendUvarint(scratch[:0], uint64(e.Index)))
	}
	return d.Sum64()
}

// Dump writes a programmer-readable debugging dump of the Table to the given
// writer.
func (t *Table[S]) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Table{\n")
	fmt.Fprintf(&buf, "\tMinLength() = %d\n", t.hist.MinLength())
	fmt.Fprintf(&buf, "\tMaxLength() = %d\n", t.hist.MaxLength())
	fmt.Fprintf(&buf, "\tHistogram() = %s\n", t.hist)
	for rank, e := range t.entries {
		fmt.Fprintf(&buf, "\tEntry(%d) = {%v, %d, %d, %s}\n", rank, e.Symbol, e.Index, e.Weight, e.Code)
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}
