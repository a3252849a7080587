package graph

import (
	"fmt"
	"github.com/gostonefire/linkedds/dserr"
	"gonum.org/v1/gonum/mat"
)

// NodeID - Stable index of a node in its Graph. Nodes are never removed, so an ID stays valid for
// the lifetime of the graph that issued it.
type NodeID int

// node - A graph node owned by the arena, lines are IDs of sibling nodes in the same arena
type node[T any] struct {
	value T
	lines []NodeID
}

// Graph - A directed graph that exclusively owns all its nodes in an arena. Lines (edges) are
// stored as NodeIDs, so many nodes can point at the same target without owning it.
// Lines are deduplicated by target identity: two distinct nodes holding equal values are two
// different line targets.
type Graph[T any] struct {
	nodes []node[T]
}

// New - Returns a pointer to a new empty Graph
func New[T any]() *Graph[T] {
	return &Graph[T]{}
}

// WithCapacity - Returns a pointer to a new empty Graph with room for capacity nodes
func WithCapacity[T any](capacity int) *Graph[T] {
	if capacity < 0 {
		capacity = 0
	}

	return &Graph[T]{nodes: make([]node[T], 0, capacity)}
}

// Len - Returns the number of nodes
func (G *Graph[T]) Len() int {
	return len(G.nodes)
}

// Capacity - Returns the number of nodes the arena holds room for before reallocating
func (G *Graph[T]) Capacity() int {
	return cap(G.nodes)
}

// NewNode - Adds an isolated node holding value and returns its ID
func (G *Graph[T]) NewNode(value T) NodeID {
	G.nodes = append(G.nodes, node[T]{value: value})
	return NodeID(len(G.nodes) - 1)
}

// NewNodeWithLines - Adds a node holding value with lines to the given targets, duplicates among
// the targets are dropped.
//   - value is the payload of the new node
//   - lines are IDs of existing nodes
//
// It returns:
//   - id is the ID of the new node
//   - err is of type dserr.NotFound if any target does not exist, no node is added then
func (G *Graph[T]) NewNodeWithLines(value T, lines ...NodeID) (id NodeID, err error) {
	for _, to := range lines {
		if !G.exists(to) {
			err = nodeNotFound(to)
			return
		}
	}

	id = G.NewNode(value)
	for _, to := range lines {
		G.addLine(id, to)
	}

	return
}

// Value - Returns the value held by node id
//
// It returns:
//   - value is the payload of the node
//   - err is of type dserr.NotFound if the node does not exist
func (G *Graph[T]) Value(id NodeID) (value T, err error) {
	if !G.exists(id) {
		err = nodeNotFound(id)
		return
	}

	value = G.nodes[id].value

	return
}

// SetValue - Replaces the value held by node id, err is of type dserr.NotFound if the node does not exist
func (G *Graph[T]) SetValue(id NodeID, value T) (err error) {
	if !G.exists(id) {
		err = nodeNotFound(id)
		return
	}

	G.nodes[id].value = value

	return
}

// AddLine - Adds a line from node from to node to unless that line already exists.
//
// It returns:
//   - err is of type dserr.NotFound if any of the nodes does not exist
func (G *Graph[T]) AddLine(from, to NodeID) (err error) {
	if !G.exists(from) {
		err = nodeNotFound(from)
		return
	}
	if !G.exists(to) {
		err = nodeNotFound(to)
		return
	}

	G.addLine(from, to)

	return
}

// RemoveLine - Removes the line from node from to node to.
//
// It returns:
//   - err is of type dserr.NotFound if any of the nodes or the line does not exist
func (G *Graph[T]) RemoveLine(from, to NodeID) (err error) {
	if !G.exists(from) {
		err = nodeNotFound(from)
		return
	}

	lines := G.nodes[from].lines
	for i, target := range lines {
		if target == to {
			G.nodes[from].lines = append(lines[:i], lines[i+1:]...)
			return
		}
	}

	err = dserr.NewNotFound(fmt.Sprintf("no line from node %d to node %d", from, to))

	return
}

// Lines - Returns the targets of the outgoing lines of node id in insertion order.
// The returned slice is a copy.
//
// It returns:
//   - lines are the IDs of the line targets
//   - err is of type dserr.NotFound if the node does not exist
func (G *Graph[T]) Lines(id NodeID) (lines []NodeID, err error) {
	if !G.exists(id) {
		err = nodeNotFound(id)
		return
	}

	lines = make([]NodeID, len(G.nodes[id].lines))
	copy(lines, G.nodes[id].lines)

	return
}

// HasLine - Returns true if there is a line from node from to node to
func (G *Graph[T]) HasLine(from, to NodeID) bool {
	if !G.exists(from) {
		return false
	}

	for _, target := range G.nodes[from].lines {
		if target == to {
			return true
		}
	}

	return false
}

// AdjacencyMatrix - Returns the lines as a Len x Len matrix where element (i, j) is 1 if there is a
// line from node i to node j and 0 otherwise. An empty graph gives nil since gonum has no 0 x 0 matrix.
func (G *Graph[T]) AdjacencyMatrix() *mat.Dense {
	n := len(G.nodes)
	if n == 0 {
		return nil
	}

	m := mat.NewDense(n, n, nil)
	for from, nd := range G.nodes {
		for _, to := range nd.lines {
			m.Set(from, int(to), 1)
		}
	}

	return m
}

// addLine - Appends the line if not already present, both nodes must exist
func (G *Graph[T]) addLine(from, to NodeID) {
	for _, target := range G.nodes[from].lines {
		if target == to {
			return
		}
	}

	G.nodes[from].lines = append(G.nodes[from].lines, to)
}

// exists - Returns true if id refers to a node in the arena
func (G *Graph[T]) exists(id NodeID) bool {
	return id >= 0 && int(id) < len(G.nodes)
}

// nodeNotFound - Returns a NotFound naming the missing node
func nodeNotFound(id NodeID) dserr.NotFound {
	return dserr.NewNotFound(fmt.Sprintf("no node with id %d", id))
}
