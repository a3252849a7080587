package queue

import (
	"github.com/gostonefire/linkedds/internal/utils"
	"slices"
)

// Queue - A FIFO queue on a ring buffer. Enqueue writes behind the last value and Dequeue reads at
// head, both O(1) (Enqueue amortized). A full buffer is reallocated with utils.GrowCapacity and
// the values are laid out from slot 0 again.
type Queue[T any] struct {
	entry  []T
	head   int
	length int
}

// New - Returns a pointer to a new empty Queue without allocated slots
func New[T any]() *Queue[T] {
	return &Queue[T]{}
}

// WithCapacity - Returns a pointer to a new empty Queue with capacity allocated slots
func WithCapacity[T any](capacity int) *Queue[T] {
	if capacity < 0 {
		capacity = 0
	}

	return &Queue[T]{entry: make([]T, capacity)}
}

// FromSlice - Returns a pointer to a new Queue holding a copy of values, values[0] being the front
func FromSlice[T any](values []T) *Queue[T] {
	return &Queue[T]{entry: slices.Clone(values), length: len(values)}
}

// Enqueue - Puts value at the back of the queue
func (Q *Queue[T]) Enqueue(value T) {
	if Q.length == len(Q.entry) {
		Q.grow()
	}

	Q.entry[Q.slot(Q.length)] = value
	Q.length++
}

// Dequeue - Removes and returns the front value, ok is false on an empty queue
func (Q *Queue[T]) Dequeue() (value T, ok bool) {
	if Q.length == 0 {
		return
	}

	var zero T
	value = Q.entry[Q.head]
	Q.entry[Q.head] = zero
	Q.head = Q.slot(1)
	Q.length--

	return value, true
}

// Peek - Returns the front value without removing it, ok is false on an empty queue
func (Q *Queue[T]) Peek() (value T, ok bool) {
	if Q.length == 0 {
		return
	}

	return Q.entry[Q.head], true
}

// Len - Returns the number of values in the queue
func (Q *Queue[T]) Len() int {
	return Q.length
}

// Capacity - Returns the number of allocated slots
func (Q *Queue[T]) Capacity() int {
	return len(Q.entry)
}

// slot - Returns the buffer index of the value offset positions behind head
func (Q *Queue[T]) slot(offset int) int {
	return (Q.head + offset) % len(Q.entry)
}

// grow - Reallocates the buffer with more slots, unwrapping the values to start at slot 0
func (Q *Queue[T]) grow() {
	entry := make([]T, utils.GrowCapacity(len(Q.entry)))
	for i := 0; i < Q.length; i++ {
		entry[i] = Q.entry[Q.slot(i)]
	}

	Q.entry = entry
	Q.head = 0
}
