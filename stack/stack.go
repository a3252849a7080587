package stack

import (
	"slices"
)

// Stack - A LIFO stack on a contiguous buffer. Push appends to the buffer tail and Pop and Peek
// work on the tail, all O(1) (Push amortized).
type Stack[T any] struct {
	entry []T
}

// New - Returns a pointer to a new empty Stack without allocated slots
func New[T any]() *Stack[T] {
	return &Stack[T]{}
}

// WithCapacity - Returns a pointer to a new empty Stack with capacity allocated slots
func WithCapacity[T any](capacity int) *Stack[T] {
	if capacity < 0 {
		capacity = 0
	}

	return &Stack[T]{entry: make([]T, 0, capacity)}
}

// FromSlice - Returns a pointer to a new Stack holding a copy of values, the last element being the top
func FromSlice[T any](values []T) *Stack[T] {
	return &Stack[T]{entry: slices.Clone(values)}
}

// Push - Puts value on top of the stack
func (S *Stack[T]) Push(value T) {
	S.entry = append(S.entry, value)
}

// Pop - Removes and returns the top value, ok is false on an empty stack
func (S *Stack[T]) Pop() (value T, ok bool) {
	n := len(S.entry)
	if n == 0 {
		return
	}

	value = S.entry[n-1]
	var zero T
	S.entry[n-1] = zero
	S.entry = S.entry[:n-1]

	return value, true
}

// Peek - Returns the top value without removing it, ok is false on an empty stack
func (S *Stack[T]) Peek() (value T, ok bool) {
	n := len(S.entry)
	if n == 0 {
		return
	}

	return S.entry[n-1], true
}

// Len - Returns the number of values on the stack
func (S *Stack[T]) Len() int {
	return len(S.entry)
}

// Capacity - Returns the number of allocated slots, it grows when a push overflows the buffer
func (S *Stack[T]) Capacity() int {
	return cap(S.entry)
}
