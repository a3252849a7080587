package chain

import (
	"github.com/gostonefire/linkedds/dserr"
)

// Iterator - Is used to walk the values of a Chain one by one from head to tail.
// Mutating the chain while iterating is not supported.
type Iterator[T any] struct {
	node *Node[T]
}

// newIterator - Returns a pointer to a new Iterator starting at node
func newIterator[T any](node *Node[T]) *Iterator[T] {

	return &Iterator[T]{
		node: node,
	}
}

// HasNext - Returns true if there are more values to be fetched from a call to Next.
func (I *Iterator[T]) HasNext() bool {
	return I.node != nil
}

// Next - Returns value.
// It returns:
//   - value is the next value in the chain.
//   - err is of type dserr.NotFound if there are no more values when calling this function.
func (I *Iterator[T]) Next() (value T, err error) {
	if I.node == nil {
		err = dserr.NotFound{}
		return
	}

	value = I.node.value
	I.node = I.node.next

	return
}
