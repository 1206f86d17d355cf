// Package numarray provides fixed-size, fixed-type numeric containers.
// Unlike a slice, an Array never grows or shrinks after construction.
package numarray

import (
	"fmt"
	"iter"
	"strings"

	"arraylike/merr"
	"arraylike/seqs"
)

type Array[T seqs.Number] struct {
	data []T
}

// New returns an Array of size zero-valued elements.
// A negative size is treated as zero.
func New[T seqs.Number](size int) *Array[T] {
	if size < 0 {
		size = 0
	}
	return &Array[T]{
		data: make([]T, size),
	}
}

// Of returns an Array holding a copy of values.
func Of[T seqs.Number](values ...T) *Array[T] {
	a := New[T](len(values))
	copy(a.data, values)
	return a
}

// FromSeq collects at most size elements of seq into a new Array of length size.
// Positions seq does not reach keep the zero value.
func FromSeq[T seqs.Number](size int, seq iter.Seq[T]) *Array[T] {
	a := New[T](size)
	i := 0
	for v := range seq {
		if i >= len(a.data) {
			break
		}
		a.data[i] = v
		i++
	}
	return a
}

func (a *Array[T]) Len() int {
	return len(a.data)
}

func (a *Array[T]) Get(index int) (T, error) {
	if index < 0 || index >= len(a.data) {
		var zero T
		return zero, merr.WrapErrIndexOutOfBounds(index, len(a.data))
	}
	return a.data[index], nil
}

func (a *Array[T]) Set(index int, value T) error {
	if index < 0 || index >= len(a.data) {
		return merr.WrapErrIndexOutOfBounds(index, len(a.data))
	}
	a.data[index] = value
	return nil
}

// At returns the element at index and panics when it is out of range,
// mirroring slice indexing.
func (a *Array[T]) At(index int) T {
	return a.data[index]
}

// Fill sets every element to value.
func (a *Array[T]) Fill(value T) {
	for i := range a.data {
		a.data[i] = value
	}
}

// All yields index/value pairs in order.
func (a *Array[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, v := range a.data {
			if !yield(i, v) {
				return
			}
		}
	}
}

// Values yields the elements in order.
func (a *Array[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range a.data {
			if !yield(v) {
				return
			}
		}
	}
}

// ToSlice returns a copy of the elements.
func (a *Array[T]) ToSlice() []T {
	out := make([]T, len(a.data))
	copy(out, a.data)
	return out
}

func (a *Array[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, v := range a.data {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprint(&sb, v)
	}
	sb.WriteByte(']')
	return sb.String()
}
