package stack

import (
	"github.com/gostonefire/linkedds/chain"
)

// Linked - A LIFO stack on a node chain, the top of the stack is the head of the chain.
// It has no capacity, every push allocates one node.
type Linked[T any] struct {
	nodes chain.Chain[T]
}

// NewLinked - Returns a pointer to a new empty Linked stack
func NewLinked[T any]() *Linked[T] {
	return &Linked[T]{}
}

// LinkedFromSlice - Returns a pointer to a new Linked stack with values pushed in slice order,
// the last element ends up on top.
func LinkedFromSlice[T any](values []T) *Linked[T] {
	s := NewLinked[T]()
	for _, v := range values {
		s.Push(v)
	}

	return s
}

// Push - Puts value on top of the stack
func (L *Linked[T]) Push(value T) {
	L.nodes.AddFirst(value)
}

// Pop - Removes and returns the top value, ok is false on an empty stack
func (L *Linked[T]) Pop() (value T, ok bool) {
	return L.nodes.Pop()
}

// Peek - Returns the top value without removing it, ok is false on an empty stack
func (L *Linked[T]) Peek() (value T, ok bool) {
	return L.nodes.Peek()
}

// Len - Returns the number of values on the stack
func (L *Linked[T]) Len() int {
	return L.nodes.Len()
}
