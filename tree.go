package canonhuff

import (
	"container/heap"

	"github.com/chronos-tachyon/assert"
)

// ParentMap is a Huffman tree stored as a flat array of parent links.
//
// Ids 0 through N-1 are the leaves, in the same order as the weights passed
// to BuildTree.  Ids N through 2N-2 are internal nodes, in order of creation,
// so every child has a lower id than its parent.  The root is the last
// element and is its own parent.
type ParentMap []int

// NumLeaves returns the number of leaves in the tree.
func (pm ParentMap) NumLeaves() int {
	return len(pm)/2 + 1
}

// Root returns the id of the root node.
func (pm ParentMap) Root() int {
	return len(pm) - 1
}

// BuildTree runs the greedy Huffman construction over weights and returns
// the resulting tree.  Ties between equal weights are broken by node id,
// lower id first, so the same weights always produce the same tree.
func BuildTree(weights []uint64) (ParentMap, error) {
	numLeaves := len(weights)
	if numLeaves == 0 {
		return nil, ErrNoSymbols
	}

	parents := make(ParentMap, numLeaves, 2*numLeaves-1)
	nodes := make([]nodeAndWeight, numLeaves)
	for id, weight := range weights {
		parents[id] = id
		nodes[id] = nodeAndWeight{id, weight}
	}

	h := weightHeap{nodes}
	h.Init()

	for h.Len() > 1 {
		a := heap.Pop(&h).(nodeAndWeight)
		b := heap.Pop(&h).(nodeAndWeight)

		newID := len(parents)
		parents = append(parents, newID)
		parents[a.id] = newID
		parents[b.id] = newID
		heap.Push(&h, nodeAndWeight{newID, addSaturating(a.weight, b.weight)})
	}

	assert.Assertf(len(parents) == 2*numLeaves-1, "tree has %d nodes, expected %d", len(parents), 2*numLeaves-1)
	return parents, nil
}

// CodeLengths returns the depth of every leaf, in leaf order.
//
// A tree with a single leaf has no edges at all; that leaf is reported as
// having length 1 so that it still occupies one bit on the wire.
func (pm ParentMap) CodeLengths() []byte {
	if len(pm) == 1 {
		return []byte{1}
	}

	// Parents always have higher ids than their children, so walking the
	// ids downward from the root visits every parent first.
	depths := make([]byte, len(pm))
	for id := pm.Root(); id >= 0; id-- {
		parent := pm[id]
		if parent == id {
			continue
		}
		assert.Assertf(parent > id, "node %d has parent %d with lower id", id, parent)
		depth := depths[parent]
		if depth < 0xff {
			depth++
		}
		depths[id] = depth
	}
	return depths[:pm.NumLeaves()]
}

// type nodeAndWeight + type weightHeap {{{

type nodeAndWeight struct {
	id     int
	weight uint64
}

type weightHeap struct {
	list []nodeAndWeight
}

func (h *weightHeap) Init() {
	heap.Init(h)
}

func (h *weightHeap) Len() int {
	return len(h.list)
}

func (h *weightHeap) Swap(i, j int) {
	h.list[i], h.list[j] = h.list[j], h.list[i]
}

func (h *weightHeap) Less(i, j int) bool {
	a, b := h.list[i], h.list[j]
	if a.weight != b.weight {
		return a.weight < b.weight
	}
	return a.id < b.id
}

func (h *weightHeap) Push(x interface{}) {
	h.list = append(h.list, x.(nodeAndWeight))
}

func (h *weightHeap) Pop() interface{} {
	last := len(h.list) - 1
	x := h.list[last]
	h.list = h.list[:last]
	return x
}

var _ heap.Interface = (*weightHeap)(nil)

// }}}
