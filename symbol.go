package canonhuff

// Weighted pairs a symbol from an arbitrary alphabet with its weight, i.e.
// the number of times it occurs.
type Weighted[S any] struct {
	Symbol S
	Weight uint64
}

// Entry is one row of a canonical Table.
type Entry[S any] struct {
	// Symbol is the caller's symbol.
	Symbol S

	// Index is the position of Symbol in the input the Table was built
	// from.
	Index int

	// Weight is the weight Symbol was given.
	Weight uint64

	// Code is the canonical code assigned to Symbol.
	Code Code
}
