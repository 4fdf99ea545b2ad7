// Package chain implements a persistent append log: an immutable, backward-linked list whose
// nodes are shared between any number of handles.
//
// Appending never mutates an existing node, so a handle taken at any point keeps seeing the
// same history no matter what is appended afterwards. Appending to an older handle starts a new
// branch that shares the older tail. The result is a version tree of linked lists where taking
// or dropping a handle is O(1).
//
// Nodes count their holders: handles held by callers plus the link from each successor node.
// The count lets [Collect] verify that it is the sole owner of a chain before moving its values
// out, and lets [Release] hand values of discarded branches back to the caller.
package chain

import (
	"iter"
	"slices"

	"github.com/teleivo/emit/internal/assert"
)

// Node is one entry in the log. The zero value is not usable, create nodes with [Push]. A nil
// *Node is the empty log.
type Node[T any] struct {
	value   T
	prev    *Node[T]
	holders int
}

// Push appends value on top of prev and returns a handle to the new node. The caller's handle
// to prev moves into the new node; the caller must not release prev afterwards.
func Push[T any](value T, prev *Node[T]) *Node[T] {
	return &Node[T]{value: value, prev: prev, holders: 1}
}

// Value returns the value stored in n.
func (n *Node[T]) Value() T {
	return n.value
}

// Prev returns the node n was pushed onto without taking a handle to it.
func (n *Node[T]) Prev() *Node[T] {
	return n.prev
}

// Holders returns the number of handles and successor links referencing n.
func (n *Node[T]) Holders() int {
	if n == nil {
		return 0
	}
	return n.holders
}

// Retain takes another handle to n and returns it.
func Retain[T any](n *Node[T]) *Node[T] {
	if n == nil {
		return nil
	}
	assert.That(n.holders > 0, "chain.Retain", "node was already released")
	n.holders++
	return n
}

// Release drops a handle to n. Nodes left without holders drop their link to their
// predecessor, and drop is called with their value, newest first. drop may be nil.
func Release[T any](n *Node[T], drop func(T)) {
	for n != nil {
		assert.That(n.holders > 0, "chain.Release", "node was already released")
		n.holders--
		if n.holders > 0 {
			return
		}
		if drop != nil {
			drop(n.value)
		}
		prev := n.prev
		n.prev = nil
		n = prev
	}
}

// Pop moves the caller's handle from n to its predecessor and returns the predecessor. n is
// released as if by [Release].
func Pop[T any](n *Node[T], drop func(T)) *Node[T] {
	if n == nil {
		return nil
	}
	prev := Retain(n.prev)
	Release(n, drop)
	return prev
}

// All returns an iterator over the values reachable from n, newest first.
func All[T any](n *Node[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for ; n != nil; n = n.prev {
			if !yield(n.value) {
				return
			}
		}
	}
}

// Collect consumes the caller's handle to tip and returns the values of the chain in the order
// they were pushed. Every node on the chain must be referenced only by the caller or its
// successor. Another handle still aliasing the chain is a contract violation and panics: it
// means a handle that should have been released was kept alive.
func Collect[T any](tip *Node[T]) []T {
	var values []T
	for n, depth := tip, 0; n != nil; n, depth = n.prev, depth+1 {
		assert.That(n.holders == 1, "chain.Collect", "node %d from the tip has %d holders, want a sole owner: release all other handles first", depth, n.holders)
		values = append(values, n.value)
	}
	for n := tip; n != nil; {
		prev := n.prev
		n.holders, n.prev = 0, nil
		n = prev
	}
	slices.Reverse(values)
	return values
}
