package canonhuff

import (
	"sort"

	"github.com/chronos-tachyon/assert"
)

// AssignCodes turns one code length per symbol into canonical codes, returned
// in the same symbol order, along with the Histogram that describes them.
//
// Symbols are ranked by (length, index) ascending.  Ranks are then handed
// the consecutive codes of each length in turn, the first code of each
// length being the value after the last code of the previous length, shifted
// left by one.
//
// A zero length is only meaningful for an alphabet of one symbol, where it
// is treated as length 1.  Anywhere else it is rejected with
// ErrInvalidHistogram, as are lengths that violate Kraft's inequality.
func AssignCodes(lengths []byte) ([]Code, Histogram, error) {
	if len(lengths) == 1 && lengths[0] == 0 {
		lengths = []byte{1}
	}
	h, err := HistogramOf(lengths)
	if err != nil {
		return nil, nil, err
	}
	if err := h.Validate(); err != nil {
		return nil, nil, err
	}

	order := canonicalOrder(lengths)
	codes := make([]Code, len(lengths))
	for rank, hc := range h.Codes() {
		index := order[rank]
		assert.Assertf(lengths[index] == hc.Size, "rank %d: symbol %d has length %d, tier has %d", rank, index, lengths[index], hc.Size)
		codes[index] = hc
	}
	return codes, h, nil
}

// canonicalOrder returns the symbol indices sorted by (length, index).
func canonicalOrder(lengths []byte) []int {
	sorted := make(bySize, len(lengths))
	for index, length := range lengths {
		sorted[index] = indexAndSize{index, length}
	}
	sorted.Sort()

	out := make([]int, len(sorted))
	for rank, item := range sorted {
		out[rank] = item.index
	}
	return out
}

// type indexAndSize + type bySize {{{

type indexAndSize struct {
	index int
	size  byte
}

type bySize []indexAndSize

func (list bySize) Len() int {
	return len(list)
}

func (list bySize) Swap(i, j int) {
	list[i], list[j] = list[j], list[i]
}

func (list bySize) Less(i, j int) bool {
	a, b := list[i], list[j]
	if a.size != b.size {
		return a.size < b.size
	}
	return a.index < b.index
}

func (list bySize) Sort() {
	sort.Sort(list)
}

var _ sort.Interface = bySize(nil)

// }}}
