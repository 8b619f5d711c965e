package main

import (
	"bytes"
	"fmt"
	"slices"

	"github.com/chronos-tachyon/canonhuff"
)

type options struct {
	bytewise  bool
	codeLimit int
}

type report struct {
	name  string
	size  int
	after int
	saved int
	text  string
}

// analyze builds a code for data, checks that it decodes, and estimates how
// much it would save.
func analyze(name string, data []byte, opts options) (report, error) {
	var pairs []canonhuff.Weighted[int]
	var stream []int
	if opts.bytewise {
		counts := canonhuff.Tally(data)
		pairs = canonhuff.Present[int](counts[:])
		stream = make([]int, len(data))
		for i, b := range data {
			stream[i] = int(b)
		}
	} else {
		counts := canonhuff.TallyNibbles(data)
		pairs = canonhuff.Present[int](counts[:])
		stream = canonhuff.Nibbles(data)
	}

	table, err := canonhuff.Build(pairs)
	if err != nil {
		return report{}, fmt.Errorf("%s: %w", name, err)
	}

	indexBySymbol := make(map[int]int, len(pairs))
	for index, pair := range pairs {
		indexBySymbol[pair.Symbol] = index
	}
	indices := make([]int, len(stream))
	for i, symbol := range stream {
		indices[i] = indexBySymbol[symbol]
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "%s\n", name)
	for rank := 0; rank < table.Len() && rank < opts.codeLimit; rank++ {
		e := table.Entry(rank)
		fmt.Fprintf(&buf, "%x x%3d: %0*b\n", e.Symbol, e.Weight, int(e.Code.Size), e.Code.Bits)
	}
	cost := table.Cost()
	fmt.Fprintf(&buf, "code counts %s; weightsum %d\n", table.Histogram(), cost)

	if err := table.Verify(); err != nil {
		fmt.Fprintf(&buf, "decode: fail (%v)\n", err)
	} else {
		fmt.Fprintf(&buf, "decode: pass\n")
	}

	var packed bytes.Buffer
	if err := table.EncodeAll(&packed, indices); err != nil {
		return report{}, fmt.Errorf("%s: encode: %w", name, err)
	}
	decoded, err := table.DecodeAll(bytes.NewReader(packed.Bytes()), len(indices))
	if err != nil {
		return report{}, fmt.Errorf("%s: decode: %w", name, err)
	}
	if !slices.Equal(decoded, indices) {
		return report{}, fmt.Errorf("%s: round trip mismatch", name)
	}
	fmt.Fprintf(&buf, "round trip: %d symbols in %d bytes\n", len(indices), packed.Len())

	after, saved := canonhuff.EstimateSavings(len(data), cost)
	fmt.Fprintf(&buf, "would compress %d bytes to %d saving %d\n", len(data), after, saved)

	return report{
		name:  name,
		size:  len(data),
		after: after,
		saved: saved,
		text:  buf.String(),
	}, nil
}
