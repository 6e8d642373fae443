package hybriddeque

// block is one node of the chain. it doesn't track how many of its slots
// are live, that is defined by the cursors of the owning deque
type block[T any] struct {
	elements []T

	// nil means no neighbor yet
	prev *block[T]
	next *block[T]
}

func newBlock[T any](size int, prev, next *block[T]) *block[T] {
	return &block[T]{
		elements: make([]T, size),
		prev:     prev,
		next:     next,
	}
}

func (b *block[T]) capacity() int {
	return len(b.elements)
}

// cursor addresses exactly one slot. it's a value, stepping returns a new
// cursor and never modifies the receiver
type cursor[T any] struct {
	blk   *block[T]
	index int
}

// the neighbor must exist when crossing a boundary, otherwise the returned
// cursor holds a nil block and must not be dereferenced
func (c cursor[T]) next() cursor[T] {
	if c.index == c.blk.capacity()-1 {
		return cursor[T]{blk: c.blk.next, index: 0}
	}
	return cursor[T]{blk: c.blk, index: c.index + 1}
}

func (c cursor[T]) prev() cursor[T] {
	if c.index == 0 {
		return cursor[T]{blk: c.blk.prev, index: c.blk.capacity() - 1}
	}
	return cursor[T]{blk: c.blk, index: c.index - 1}
}

func (c cursor[T]) get() T {
	return c.blk.elements[c.index]
}

func (c cursor[T]) set(v T) {
	c.blk.elements[c.index] = v
}

// drop the reference held by the slot so the element can be collected
func (c cursor[T]) clear() {
	var zero T
	c.blk.elements[c.index] = zero
}

func (c cursor[T]) valid() bool {
	return c.blk != nil
}

func (c cursor[T]) atFirstSlot() bool {
	return c.index == 0
}

func (c cursor[T]) atLastSlot() bool {
	return c.index == c.blk.capacity()-1
}
