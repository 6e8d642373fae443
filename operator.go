package hybriddeque

import (
	"errors"
	"reflect"

	"github.com/spaolacci/murmur3"
	"github.com/vmihailenco/msgpack/v5"
)

var ErrHashElement = errors.New("hash element")

// Operator decides how the deque treats its elements
type Operator[T any] interface {
	// value equality, used by Equals and the occurrence removal
	Equals(lhs, rhs *T) bool

	// the null-equivalent value can't be stored nor searched
	IsNil(v *T) bool

	// must agree with Equals: equal elements produce the same hash
	Hash(v *T) (uint64, error)
}

// ComparableOperator compares with ==. only nil pointers, interfaces, maps,
// slices, funcs and chans are null-equivalent, so a zero int is a valid element
type ComparableOperator[T comparable] struct{}

func (ComparableOperator[T]) Equals(lhs, rhs *T) bool {
	return *lhs == *rhs
}

func (ComparableOperator[T]) IsNil(v *T) bool {
	return isNilValue(v)
}

func (ComparableOperator[T]) Hash(v *T) (uint64, error) {
	return hashValue(v)
}

// FuncOperator adapts plain functions to the Operator interface. a nil
// IsNilFunc means no value is null-equivalent, a nil HashFunc hashes the
// msgpack encoding of the value
type FuncOperator[T any] struct {
	EqualsFunc func(lhs, rhs *T) bool
	IsNilFunc  func(v *T) bool
	HashFunc   func(v *T) (uint64, error)
}

func (optr FuncOperator[T]) Equals(lhs, rhs *T) bool {
	return optr.EqualsFunc(lhs, rhs)
}

func (optr FuncOperator[T]) IsNil(v *T) bool {
	if optr.IsNilFunc == nil {
		return false
	}
	return optr.IsNilFunc(v)
}

func (optr FuncOperator[T]) Hash(v *T) (uint64, error) {
	if optr.HashFunc == nil {
		return hashValue(v)
	}
	return optr.HashFunc(v)
}

func isNilValue[T any](v *T) bool {
	rv := reflect.ValueOf(v).Elem()
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}

func hashValue[T any](v *T) (uint64, error) {
	encoded, err := msgpack.Marshal(v)
	if err != nil {
		return 0, err
	}

	hasher := murmur3.New64()
	hasher.Write(encoded)
	return hasher.Sum64(), nil
}
