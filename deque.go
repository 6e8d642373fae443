package hybriddeque

import (
	"encoding/binary"
	"errors"
	"iter"

	"github.com/rs/zerolog"
	"github.com/spaolacci/murmur3"
)

var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrNoSuchElement   = errors.New("no such element")
	ErrIteratorMisuse  = errors.New("iterator misuse")
)

type Deque[T any] interface {
	InsertFirst(v T) error
	InsertLast(v T) error

	// the bool is false when the deque is empty
	RemoveFirst() (T, bool)
	RemoveLast() (T, bool)
	PeekFirst() (T, bool)
	PeekLast() (T, bool)

	RemoveFirstOccurrence(v T) (bool, error)
	RemoveLastOccurrence(v T) (bool, error)

	Iterator() Iterator[T]
	ReverseIterator() Iterator[T]

	Equals(other Deque[T]) bool
	Len() int
	Clear()
}

// HybridDeque stores its elements in a doubly linked list of fixed size
// blocks, so the link overhead is paid once per block instead of once per
// element.
//
// the first element is at left and the last one at right. when both cursors
// share a block, left.index + size - 1 == right.index. otherwise the indices
// are offsets into distinct blocks and either may be larger.
//
// an empty deque has a single block with left.index == center+1 and
// right.index == center, which leaves room to grow in both directions.
//
// it's not thread-safe
type HybridDeque[T any] struct {
	optr      Operator[T]
	blockSize int
	center    int

	left  cursor[T]
	right cursor[T]
	size  int

	logger *zerolog.Logger
}

func New[T comparable](opts *Options) (*HybridDeque[T], error) {
	return NewWithOperator[T](ComparableOperator[T]{}, opts)
}

func NewWithOperator[T any](optr Operator[T], opts *Options) (*HybridDeque[T], error) {
	if optr == nil {
		return nil, errors.Join(errors.New("nil operator"), ErrInvalidArgument)
	}

	// the caller keeps ownership of opts
	var o Options
	if opts != nil {
		o = *opts
	}
	o.Init()

	if err := o.Validate(); err != nil {
		return nil, err
	}

	d := &HybridDeque[T]{
		optr:      optr,
		blockSize: o.BlockSize,
		center:    (o.BlockSize - 1) / 2,
		logger:    o.newLogger(),
	}
	d.reset()

	d.logger.Debug().Int("block_size", d.blockSize).Msg("deque bootstrap")

	return d, nil
}

func (d *HybridDeque[T]) reset() {
	blk := newBlock[T](d.blockSize, nil, nil)

	d.left = cursor[T]{blk: blk, index: d.center + 1}
	d.right = cursor[T]{blk: blk, index: d.center}
	d.size = 0
}

func (d *HybridDeque[T]) Clear() {
	d.reset()
	d.logger.Debug().Msg("deque clear")
}

func (d *HybridDeque[T]) Len() int {
	return d.size
}

func (d *HybridDeque[T]) BlockSize() int {
	return d.blockSize
}

func (d *HybridDeque[T]) InsertFirst(v T) error {
	if d.optr.IsNil(&v) {
		return ErrInvalidArgument
	}

	if d.left.atFirstSlot() {
		blk := newBlock(d.blockSize, nil, d.left.blk)
		d.left.blk.prev = blk
		d.left = cursor[T]{blk: blk, index: d.blockSize - 1}

		d.logger.Debug().Int("size", d.size).Msg("link new left block")
	} else {
		d.left = d.left.prev()
	}

	d.left.set(v)
	d.size++

	return nil
}

func (d *HybridDeque[T]) InsertLast(v T) error {
	if d.optr.IsNil(&v) {
		return ErrInvalidArgument
	}

	if d.right.atLastSlot() {
		blk := newBlock(d.blockSize, d.right.blk, nil)
		d.right.blk.next = blk
		d.right = cursor[T]{blk: blk, index: 0}

		d.logger.Debug().Int("size", d.size).Msg("link new right block")
	} else {
		d.right = d.right.next()
	}

	d.right.set(v)
	d.size++

	return nil
}

func (d *HybridDeque[T]) RemoveFirst() (T, bool) {
	if d.size == 0 {
		var zero T
		return zero, false
	}

	v := d.left.get()
	d.left.clear()
	d.size--

	if d.size == 0 {
		d.drained()
		return v, true
	}

	d.advanceLeft()
	return v, true
}

func (d *HybridDeque[T]) RemoveLast() (T, bool) {
	if d.size == 0 {
		var zero T
		return zero, false
	}

	v := d.right.get()
	d.right.clear()
	d.size--

	if d.size == 0 {
		d.drained()
		return v, true
	}

	d.retreatRight()
	return v, true
}

func (d *HybridDeque[T]) PeekFirst() (T, bool) {
	if d.size == 0 {
		var zero T
		return zero, false
	}
	return d.left.get(), true
}

func (d *HybridDeque[T]) PeekLast() (T, bool) {
	if d.size == 0 {
		var zero T
		return zero, false
	}
	return d.right.get(), true
}

// the caller guarantees the deque is not empty after the step, so the
// next block always exists when crossing
func (d *HybridDeque[T]) advanceLeft() {
	crossing := d.left.atLastSlot()
	d.left = d.left.next()

	// unlink the abandoned block
	if crossing {
		d.left.blk.prev = nil
	}
}

func (d *HybridDeque[T]) retreatRight() {
	crossing := d.right.atFirstSlot()
	d.right = d.right.prev()

	if crossing {
		d.right.blk.next = nil
	}
}

// an empty deque always goes back to the construction state, so both ends
// have room to grow and no stale block stays reachable
func (d *HybridDeque[T]) drained() {
	d.reset()
	d.logger.Debug().Msg("deque drained")
}

func (d *HybridDeque[T]) RemoveFirstOccurrence(v T) (bool, error) {
	if d.optr.IsNil(&v) {
		return false, ErrInvalidArgument
	}

	return d.removeOccurrence(d.Iterator(), &v)
}

func (d *HybridDeque[T]) RemoveLastOccurrence(v T) (bool, error) {
	if d.optr.IsNil(&v) {
		return false, ErrInvalidArgument
	}

	return d.removeOccurrence(d.ReverseIterator(), &v)
}

func (d *HybridDeque[T]) removeOccurrence(it Iterator[T], target *T) (bool, error) {
	for it.HasNext() {
		e, err := it.Next()
		if err != nil {
			return false, err
		}

		if d.optr.Equals(&e, target) {
			if err = it.Remove(); err != nil {
				return false, err
			}
			return true, nil
		}
	}

	return false, nil
}

// Equals compares the logical sequences, the block layout doesn't matter.
// other may be any Deque implementation
func (d *HybridDeque[T]) Equals(other Deque[T]) bool {
	if other == nil {
		return false
	}

	if o, ok := other.(*HybridDeque[T]); ok && o == d {
		return true
	}

	if d.size != other.Len() {
		return false
	}

	lhs, rhs := d.Iterator(), other.Iterator()
	for lhs.HasNext() {
		l, err := lhs.Next()
		if err != nil {
			return false
		}

		if !rhs.HasNext() {
			return false
		}

		r, err := rhs.Next()
		if err != nil {
			return false
		}

		if !d.optr.Equals(&l, &r) {
			return false
		}
	}

	return !rhs.HasNext()
}

// All iterates from the first element to the last one
func (d *HybridDeque[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		seq(d.Iterator(), yield)
	}
}

// Backward iterates from the last element to the first one
func (d *HybridDeque[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		seq(d.ReverseIterator(), yield)
	}
}

func seq[T any](it Iterator[T], yield func(T) bool) {
	for it.HasNext() {
		v, err := it.Next()
		if err != nil || !yield(v) {
			return
		}
	}
}

// Fingerprint digests the elements in order. deques holding equal sequences
// have equal fingerprints whatever their block size
func (d *HybridDeque[T]) Fingerprint() (uint64, error) {
	var buf [8]byte
	hasher := murmur3.New64()

	for c, i := d.left, 0; i < d.size; c, i = c.next(), i+1 {
		e := c.get()
		h, err := d.optr.Hash(&e)
		if err != nil {
			return 0, errors.Join(err, ErrHashElement)
		}

		binary.LittleEndian.PutUint64(buf[:], h)
		hasher.Write(buf[:])
	}

	return hasher.Sum64(), nil
}
