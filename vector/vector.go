// Package vector provides Vector[T], an owned, growable, indexable sequence
// with an explicit size/capacity split.
//
// Growth policy:
//
//	Capacity doubles (0 → 1 → 2 → 4 → …) only when Append would exceed it.
//	Each growth allocates a fresh buffer, copies the live elements in order,
//	and drops the old buffer. RemoveLast and Clear never shrink capacity.
//
// Bounds:
//
//	At and Set validate the index and return ErrOutOfRange instead of
//	reading stale or unallocated slots.
//
// Complexity:
//
//	Append       O(1) amortized
//	RemoveLast   O(1)
//	At / Set     O(1)
//	Clear        O(1)
//	Values       O(n)
package vector

import (
	"errors"
	"fmt"

	"golang.org/x/exp/slices"
)

// ErrOutOfRange is returned when an index is outside [0, Len()).
var ErrOutOfRange = errors.New("vector: index out of range")

// Vector is a growable array. The zero value is an empty, ready-to-use Vector.
type Vector[T any] struct {
	// buf has len == capacity; only buf[:size] is live.
	buf  []T
	size int
}

// New returns an empty Vector with capacity 0.
func New[T any]() *Vector[T] {
	return &Vector[T]{}
}

// WithCapacity returns an empty Vector whose buffer already holds n slots.
// A negative n is treated as 0.
func WithCapacity[T any](n int) *Vector[T] {
	if n <= 0 {
		return New[T]()
	}

	return &Vector[T]{buf: make([]T, n)}
}

// From returns a Vector holding a copy of values, appended in order.
func From[T any](values ...T) *Vector[T] {
	v := New[T]()
	for _, x := range values {
		v.Append(x)
	}

	return v
}

// Append places value at the logical end, growing the buffer first when full.
func (v *Vector[T]) Append(value T) {
	if v.size == len(v.buf) {
		v.grow()
	}
	v.buf[v.size] = value
	v.size++
}

// grow doubles capacity (minimum 1) and moves the live elements over.
func (v *Vector[T]) grow() {
	newCap := len(v.buf) * 2
	if newCap == 0 {
		newCap = 1
	}
	next := make([]T, newCap)
	copy(next, v.buf[:v.size])
	v.buf = next
}

// RemoveLast drops the last element. It is a no-op on an empty Vector.
// The vacated slot is zeroed so it does not pin garbage.
func (v *Vector[T]) RemoveLast() {
	if v.size == 0 {
		return
	}
	v.size--
	var zero T
	v.buf[v.size] = zero
}

// At returns the element at index.
// Returns ErrOutOfRange if index < 0 or index >= Len().
func (v *Vector[T]) At(index int) (T, error) {
	if err := v.check(index); err != nil {
		var zero T
		return zero, err
	}

	return v.buf[index], nil
}

// Set overwrites the element at index.
// Returns ErrOutOfRange if index < 0 or index >= Len().
func (v *Vector[T]) Set(index int, value T) error {
	if err := v.check(index); err != nil {
		return err
	}
	v.buf[index] = value

	return nil
}

func (v *Vector[T]) check(index int) error {
	if index < 0 || index >= v.size {
		return fmt.Errorf("%w: index %d, size %d", ErrOutOfRange, index, v.size)
	}

	return nil
}

// Len returns the number of live elements.
func (v *Vector[T]) Len() int { return v.size }

// Cap returns the current buffer capacity.
func (v *Vector[T]) Cap() int { return len(v.buf) }

// Clear sets the size to zero and keeps the buffer for reuse.
func (v *Vector[T]) Clear() {
	clear(v.buf[:v.size])
	v.size = 0
}

// Values returns a copy of the live elements in order.
func (v *Vector[T]) Values() []T {
	return slices.Clone(v.buf[:v.size])
}

// Each calls fn for every live element in order, stopping early if fn returns false.
func (v *Vector[T]) Each(fn func(index int, value T) bool) {
	for i := 0; i < v.size; i++ {
		if !fn(i, v.buf[i]) {
			return
		}
	}
}
