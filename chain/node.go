package chain

// Node - One cell of a Chain holding a value and the link to its successor.
// Nodes are created and linked by the owning Chain only, a caller can read and replace the
// value and step forward but never relink.
type Node[T any] struct {
	value T
	next  *Node[T]
}

// Value - Returns the value held by the node
func (N *Node[T]) Value() T {
	return N.value
}

// SetValue - Replaces the value held by the node in place
func (N *Node[T]) SetValue(value T) {
	N.value = value
}

// Next - Returns the successor node or nil if N is the last node in its chain
func (N *Node[T]) Next() *Node[T] {
	return N.next
}

// HasNext - Returns true if N has a successor
func (N *Node[T]) HasNext() bool {
	return N.next != nil
}
