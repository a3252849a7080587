// Package linkedds holds generic linked data structures built from first principles: a singly
// linked chain, a bucket hash map resolving collisions by chaining, a directed graph whose nodes
// live in an index arena, and LIFO/FIFO structures on nodes or on contiguous buffers.
//
// Every structure is single threaded, callers serialize concurrent use. Lookups that miss report
// absence with a comma-ok result, mutations that need an anchor (a value to insert after, a node
// or a line) return an error of type dserr.NotFound when the anchor is missing.
package linkedds

// Container - Implemented by every structure in the module
type Container interface {
	// Len - Returns the number of live elements, O(1)
	Len() int
}

// Allocated - Implemented by structures on a contiguous buffer
type Allocated interface {
	Container
	// Capacity - Returns the number of allocated slots, it grows on overflow
	Capacity() int
}
