// Package ring provides the circular container backing the ship and
// ripple populations.
//
// The ring is an arena of index-linked nodes with an explicit head: no
// pointer linkage, O(1) insert/remove/rotate. Every traversal in the
// engine uses the same idiom: process Len() elements, each step reading
// or removing the head, optionally re-inserting a replacement at the new
// head, then rotating exactly once. Rotating once per element examined
// guarantees the walk terminates after Len() steps and visits every
// element present at walk start exactly once, even while elements are
// removed and re-inserted mid-walk.
package ring

const noHead = -1

type node[T any] struct {
	val  T
	next int
	prev int
}

// Ring is a circular ordered multiset with head insertion, head removal
// and rotation. The zero value is an empty ring ready for use.
type Ring[T any] struct {
	nodes []node[T]
	free  []int
	head  int
	size  int
}

// New returns an empty ring with capacity for n elements preallocated.
func New[T any](n int) *Ring[T] {
	return &Ring[T]{
		nodes: make([]node[T], 0, n),
		head:  noHead,
	}
}

// IsEmpty reports whether the ring holds no elements.
func (r *Ring[T]) IsEmpty() bool {
	return r.size == 0
}

// Len returns the live element count.
func (r *Ring[T]) Len() int {
	return r.size
}

// alloc claims an arena slot, reusing freed slots before growing.
func (r *Ring[T]) alloc(v T) int {
	if n := len(r.free); n > 0 {
		idx := r.free[n-1]
		r.free = r.free[:n-1]
		r.nodes[idx].val = v
		return idx
	}
	r.nodes = append(r.nodes, node[T]{val: v})
	return len(r.nodes) - 1
}

// InsertAtHead places v as the new head; the previous head becomes its
// successor.
func (r *Ring[T]) InsertAtHead(v T) {
	idx := r.alloc(v)
	if r.size == 0 {
		r.nodes[idx].next = idx
		r.nodes[idx].prev = idx
	} else {
		h := r.head
		p := r.nodes[h].prev
		r.nodes[idx].next = h
		r.nodes[idx].prev = p
		r.nodes[p].next = idx
		r.nodes[h].prev = idx
	}
	r.head = idx
	r.size++
}

// RemoveHead detaches the current head; its successor becomes the new
// head. Returns false and does nothing on an empty ring.
func (r *Ring[T]) RemoveHead() bool {
	if r.size == 0 {
		return false
	}

	h := r.head
	if r.size == 1 {
		r.head = noHead
	} else {
		n := r.nodes[h].next
		p := r.nodes[h].prev
		r.nodes[p].next = n
		r.nodes[n].prev = p
		r.head = n
	}

	// Release the slot and drop the value so the GC can reclaim it
	var zero T
	r.nodes[h].val = zero
	r.free = append(r.free, h)
	r.size--
	return true
}

// PeekHead returns the head value. Reading the head of an empty ring is
// a programmer error and panics.
func (r *Ring[T]) PeekHead() T {
	if r.size == 0 {
		panic("ring: PeekHead on empty ring")
	}
	return r.nodes[r.head].val
}

// PeekSecond returns the value following the head (the head itself when
// the ring holds a single element). Same precondition as PeekHead.
func (r *Ring[T]) PeekSecond() T {
	if r.size == 0 {
		panic("ring: PeekSecond on empty ring")
	}
	return r.nodes[r.nodes[r.head].next].val
}

// Rotate advances the head to the next element. No-op on an empty ring.
func (r *Ring[T]) Rotate() {
	if r.size == 0 {
		return
	}
	r.head = r.nodes[r.head].next
}
