package hybriddeque

type Iterator[T any] interface {
	HasNext() bool
	Next() (T, error)

	// removes the element returned by the last Next
	Remove() error
}

// only one iterator may remove at a time, and the deque must not be
// modified directly while an iterator is in use
type ForwardIterator[T any] struct {
	d *HybridDeque[T]

	// the slot of the next element to produce
	cur      cursor[T]
	produced int

	// the slot of the element returned by the last Next
	last      cursor[T]
	removable bool
}

func (d *HybridDeque[T]) Iterator() Iterator[T] {
	return &ForwardIterator[T]{d: d, cur: d.left}
}

func (it *ForwardIterator[T]) HasNext() bool {
	return it.produced < it.d.size
}

func (it *ForwardIterator[T]) Next() (T, error) {
	if !it.HasNext() {
		var zero T
		return zero, ErrNoSuchElement
	}

	v := it.cur.get()
	it.last = it.cur
	it.cur = it.cur.next()
	it.produced++
	it.removable = true

	return v, nil
}

// Remove shifts every element after the removed one a slot to the left,
// so it costs O(k) for k elements on the right side
func (it *ForwardIterator[T]) Remove() error {
	if !it.removable {
		return ErrIteratorMisuse
	}

	c := it.last
	for i := it.produced; i < it.d.size; i++ {
		n := c.next()
		c.set(n.get())
		c = n
	}
	c.clear()

	// the removed slot now holds the next unseen element
	it.cur = it.last
	it.produced--
	it.removable = false

	it.d.size--
	if it.d.size == 0 {
		it.d.drained()
	} else {
		it.d.retreatRight()
	}

	return nil
}

type ReverseIterator[T any] struct {
	d *HybridDeque[T]

	cur      cursor[T]
	produced int

	last      cursor[T]
	removable bool
}

func (d *HybridDeque[T]) ReverseIterator() Iterator[T] {
	return &ReverseIterator[T]{d: d, cur: d.right}
}

// the same count rule as ForwardIterator, the slot content is not inspected
func (it *ReverseIterator[T]) HasNext() bool {
	return it.produced < it.d.size
}

func (it *ReverseIterator[T]) Next() (T, error) {
	if !it.HasNext() {
		var zero T
		return zero, ErrNoSuchElement
	}

	v := it.cur.get()
	it.last = it.cur
	it.cur = it.cur.prev()
	it.produced++
	it.removable = true

	return v, nil
}

// Remove shifts the already visited elements on the right side a slot to
// the left and retreats the right end of the deque. the elements not yet
// visited keep their slots
func (it *ReverseIterator[T]) Remove() error {
	if !it.removable {
		return ErrIteratorMisuse
	}

	c := it.last
	for i := 1; i < it.produced; i++ {
		n := c.next()
		c.set(n.get())
		c = n
	}
	c.clear()

	it.produced--
	it.removable = false

	it.d.size--
	if it.d.size == 0 {
		it.d.drained()
	} else {
		it.d.retreatRight()
	}

	return nil
}
