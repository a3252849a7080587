package chain

import (
	"fmt"
	"github.com/gostonefire/linkedds/dserr"
	"reflect"
)

// Chain - A singly linked list that exclusively owns its nodes.
// The length is maintained on every insert and delete so that Len is O(1), and it always equals
// the number of nodes reachable from head.
//
// The zero value is an empty chain comparing values with reflect.DeepEqual.
type Chain[T any] struct {
	head   *Node[T]
	length int
	equal  func(a, b T) bool
}

// New - Returns a pointer to a new empty Chain comparing values with ==
func New[T comparable]() *Chain[T] {
	return &Chain[T]{equal: func(a, b T) bool { return a == b }}
}

// NewWithEqual - Returns a pointer to a new empty Chain comparing values with the given function.
// Use it for payloads that are not comparable with ==, or when equality is narrower than the
// whole value (e.g. key only).
//   - equal reports whether a and b are to be treated as the same value
func NewWithEqual[T any](equal func(a, b T) bool) *Chain[T] {
	return &Chain[T]{equal: equal}
}

// FromSlice - Returns a pointer to a new Chain holding values in slice order, values[0] being head
func FromSlice[T comparable](values []T) *Chain[T] {
	c := New[T]()
	var tail *Node[T]
	for _, v := range values {
		n := &Node[T]{value: v}
		if tail == nil {
			c.head = n
		} else {
			tail.next = n
		}
		tail = n
		c.length++
	}

	return c
}

// Len - Returns the number of nodes in the chain
func (C *Chain[T]) Len() int {
	return C.length
}

// Head - Returns the head node or nil if the chain is empty.
// The node gives reference access to the head value through Value and SetValue.
func (C *Chain[T]) Head() *Node[T] {
	return C.head
}

// Tail - Returns the last node or nil if the chain is empty. It walks the chain, O(n).
func (C *Chain[T]) Tail() *Node[T] {
	if C.head == nil {
		return nil
	}

	tail := C.head
	for tail.next != nil {
		tail = tail.next
	}

	return tail
}

// Add - Appends value after the current tail. It walks from head to find the tail, O(n).
func (C *Chain[T]) Add(value T) {
	n := &Node[T]{value: value}
	if tail := C.Tail(); tail != nil {
		tail.next = n
	} else {
		C.head = n
	}
	C.length++
}

// AddFirst - Inserts value as the new head, O(1)
func (C *Chain[T]) AddFirst(value T) {
	C.head = &Node[T]{value: value, next: C.head}
	C.length++
}

// AddAfter - Inserts value directly after the first node holding a value equal to after.
// Only that first match is used even if more nodes hold an equal value.
//   - value is the value to insert
//   - after is the anchor value to look for
//
// It returns:
//   - err is of type dserr.NotFound if no node holds the anchor value, the chain is then left untouched
func (C *Chain[T]) AddAfter(value, after T) (err error) {
	anchor := C.Find(after)
	if anchor == nil {
		err = dserr.NewNotFound(fmt.Sprintf("cannot find node with value: %v", after))
		return
	}

	anchor.next = &Node[T]{value: value, next: anchor.next}
	C.length++

	return
}

// Find - Returns the first node, in head to tail order, whose value equals value, or nil if none does
func (C *Chain[T]) Find(value T) *Node[T] {
	eq := C.equalFunc()
	return C.FindMatch(func(v T) bool { return eq(v, value) })
}

// FindMatch - Returns the first node, in head to tail order, whose value satisfies predicate, or nil if none does
func (C *Chain[T]) FindMatch(predicate func(T) bool) *Node[T] {
	for n := C.head; n != nil; n = n.next {
		if predicate(n.value) {
			return n
		}
	}

	return nil
}

// Contains - Returns true if any node holds a value equal to value
func (C *Chain[T]) Contains(value T) bool {
	return C.Find(value) != nil
}

// ContainsMatch - Returns true if any node holds a value satisfying predicate
func (C *Chain[T]) ContainsMatch(predicate func(T) bool) bool {
	return C.FindMatch(predicate) != nil
}

// Delete - Unlinks the first node whose value equals value.
// A missing value is not an error, the call is then a no-op.
//
// It returns:
//   - deleted is true if a node was unlinked
func (C *Chain[T]) Delete(value T) (deleted bool) {
	eq := C.equalFunc()
	_, deleted = C.DeleteMatch(func(v T) bool { return eq(v, value) })
	return
}

// DeleteMatch - Unlinks the first node whose value satisfies predicate.
// If it is the head, head is replaced by its successor, otherwise the predecessor is linked
// around the removed node.
//
// It returns:
//   - value is the value held by the removed node, zero value if nothing matched
//   - ok is false if no node matched
func (C *Chain[T]) DeleteMatch(predicate func(T) bool) (value T, ok bool) {
	var prev *Node[T]
	for n := C.head; n != nil; prev, n = n, n.next {
		if !predicate(n.value) {
			continue
		}

		if prev == nil {
			C.head = n.next
		} else {
			prev.next = n.next
		}
		n.next = nil
		C.length--

		return n.value, true
	}

	return
}

// Pop - Removes the head and returns its value, ok is false on an empty chain
func (C *Chain[T]) Pop() (value T, ok bool) {
	if C.head == nil {
		return
	}

	n := C.head
	C.head = n.next
	n.next = nil
	C.length--

	return n.value, true
}

// Peek - Returns the head value without removing it, ok is false on an empty chain
func (C *Chain[T]) Peek() (value T, ok bool) {
	if C.head == nil {
		return
	}

	return C.head.value, true
}

// SetHead - Replaces the value of head in place, or adds value as head if the chain is empty
func (C *Chain[T]) SetHead(value T) {
	if C.head == nil {
		C.AddFirst(value)
		return
	}

	C.head.value = value
}

// Clear - Drops all nodes
func (C *Chain[T]) Clear() {
	C.head = nil
	C.length = 0
}

// Values - Returns all values in head to tail order
func (C *Chain[T]) Values() []T {
	values := make([]T, 0, C.length)
	for n := C.head; n != nil; n = n.next {
		values = append(values, n.value)
	}

	return values
}

// Iterator - Returns a pointer to a new Iterator positioned at head
func (C *Chain[T]) Iterator() *Iterator[T] {
	return newIterator(C.head)
}

// equalFunc - Returns the configured equality or deep equality for a zero value chain
func (C *Chain[T]) equalFunc() func(a, b T) bool {
	if C.equal != nil {
		return C.equal
	}

	return func(a, b T) bool { return reflect.DeepEqual(a, b) }
}
