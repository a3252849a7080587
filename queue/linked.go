package queue

// linkedNode - One cell of a Linked queue
type linkedNode[T any] struct {
	value T
	next  *linkedNode[T]
}

// Linked - A FIFO queue on a node chain tracking both head and tail, so that Enqueue links behind
// tail and Dequeue unlinks head, both O(1). It has no capacity, every enqueue allocates one node.
type Linked[T any] struct {
	head   *linkedNode[T]
	tail   *linkedNode[T]
	length int
}

// NewLinked - Returns a pointer to a new empty Linked queue
func NewLinked[T any]() *Linked[T] {
	return &Linked[T]{}
}

// Enqueue - Puts value at the back of the queue
func (L *Linked[T]) Enqueue(value T) {
	n := &linkedNode[T]{value: value}
	if L.tail == nil {
		L.head = n
	} else {
		L.tail.next = n
	}
	L.tail = n
	L.length++
}

// Dequeue - Removes and returns the front value, ok is false on an empty queue
func (L *Linked[T]) Dequeue() (value T, ok bool) {
	if L.head == nil {
		return
	}

	n := L.head
	L.head = n.next
	if L.head == nil {
		L.tail = nil
	}
	n.next = nil
	L.length--

	return n.value, true
}

// Peek - Returns the front value without removing it, ok is false on an empty queue
func (L *Linked[T]) Peek() (value T, ok bool) {
	if L.head == nil {
		return
	}

	return L.head.value, true
}

// Len - Returns the number of values in the queue
func (L *Linked[T]) Len() int {
	return L.length
}
