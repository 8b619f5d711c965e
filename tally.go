package canonhuff

// Tally counts the occurrences of each byte value in data.
func Tally(data []byte) [256]uint64 {
	var counts [256]uint64
	for _, b := range data {
		counts[b]++
	}
	return counts
}

// TallyNibbles counts the occurrences of each 4-bit value in data, taking
// the high nibble of each byte before the low one.
func TallyNibbles(data []byte) [16]uint64 {
	var counts [16]uint64
	for _, b := range data {
		counts[b>>4]++
		counts[b&0x0f]++
	}
	return counts
}

// Nibbles splits data into 4-bit values, high nibble first.
func Nibbles(data []byte) []int {
	out := make([]int, 0, 2*len(data))
	for _, b := range data {
		out = append(out, int(b>>4), int(b&0x0f))
	}
	return out
}

// Present returns one Weighted pair for each nonzero count, in ascending
// symbol order.
func Present[S ~int | ~uint8](counts []uint64) []Weighted[S] {
	var out []Weighted[S]
	for symbol, count := range counts {
		if count != 0 {
			out = append(out, Weighted[S]{S(symbol), count})
		}
	}
	return out
}

// HeaderBytes is the size assumed for a stored code description when
// estimating savings: one count per length, up to 16 lengths.
const HeaderBytes = 16

// EstimateSavings estimates the compressed size of an input of n bytes whose
// symbols cost the given number of bits, and how many bytes that saves.
// The saving is negative when compression would not pay.
func EstimateSavings(n int, costBits uint64) (after int, saved int) {
	after = HeaderBytes + int(costBits/8)
	return after, n - after
}
