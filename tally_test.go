package canonhuff

import (
	"reflect"
	"testing"
)

func TestTally(t *testing.T) {
	counts := Tally([]byte("abracadabra"))
	expect := map[byte]uint64{'a': 5, 'b': 2, 'r': 2, 'c': 1, 'd': 1}
	for b, count := range counts {
		if count != expect[byte(b)] {
			t.Errorf("byte %q: expected %d, got %d", byte(b), expect[byte(b)], count)
		}
	}
}

func TestTallyNibbles(t *testing.T) {
	data := []byte{0x12, 0x21, 0xff}
	counts := TallyNibbles(data)
	expect := [16]uint64{1: 2, 2: 2, 15: 2}
	if counts != expect {
		t.Errorf("wrong counts:\n\texpect: %v\n\tactual: %v", expect, counts)
	}

	expectNibbles := []int{1, 2, 2, 1, 15, 15}
	if actual := Nibbles(data); !reflect.DeepEqual(expectNibbles, actual) {
		t.Errorf("wrong nibbles:\n\texpect: %v\n\tactual: %v", expectNibbles, actual)
	}
}

func TestPresent(t *testing.T) {
	counts := TallyNibbles([]byte{0x12, 0x21, 0xff})
	expect := []Weighted[uint8]{{1, 2}, {2, 2}, {15, 2}}
	if actual := Present[uint8](counts[:]); !reflect.DeepEqual(expect, actual) {
		t.Errorf("wrong pairs:\n\texpect: %v\n\tactual: %v", expect, actual)
	}
	if actual := Present[int](make([]uint64, 4)); actual != nil {
		t.Errorf("expected nil, got %v", actual)
	}
}

func TestEstimateSavings(t *testing.T) {
	type testRow struct {
		n     int
		cost  uint64
		after int
		saved int
	}

	testData := [...]testRow{
		{n: 100, cost: 400, after: 66, saved: 34},
		{n: 10, cost: 80, after: 26, saved: -16},
		{n: 0, cost: 0, after: 16, saved: -16},
	}
	for _, row := range testData {
		after, saved := EstimateSavings(row.n, row.cost)
		if after != row.after || saved != row.saved {
			t.Errorf("EstimateSavings(%d, %d): expected (%d, %d), got (%d, %d)", row.n, row.cost, row.after, row.saved, after, saved)
		}
	}
}

func TestRosetta(t *testing.T) {
	text := []byte("this is an example for huffman encoding")
	counts := Tally(text)
	table, err := Build(Present[byte](counts[:]))
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if table.Len() != 19 {
		t.Errorf("expected 19 symbols, got %d", table.Len())
	}
	if err := table.Verify(); err != nil {
		t.Errorf("Verify failed: %v", err)
	}
	if first := table.Entry(0); first.Symbol != ' ' {
		t.Errorf("expected space to have the shortest code, got %q", first.Symbol)
	}
	if !table.Histogram().Complete() {
		t.Errorf("histogram %v is not complete", table.Histogram())
	}
}
