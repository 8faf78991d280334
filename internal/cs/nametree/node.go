package nametree

import (
	"sort"

	"github.com/DOCTOR-ANR/NDN-microservices/internal/ndn/name"
)

// node is a single trie vertex. It owns its children and holds a non-owning
// pointer to its parent; the parent pointer is nil only for the root.
// Sibling order is the canonical component order of the child's last
// component, maintained by keeping children sorted.
type node[V any] struct {
	name     name.Name
	parent   *node[V]
	children []*node[V]
	value    *V

	// pruned marks a node that was detached from the tree. Flat-index
	// aliases that still reach it must be discarded, never followed.
	pruned bool
}

func newNode[V any](n name.Name, parent *node[V]) *node[V] {
	return &node[V]{name: n, parent: parent}
}

// lastComponent returns the component this node is keyed by under its parent.
func (n *node[V]) lastComponent() name.Component {
	return n.name.Get(-1)
}

// childIndex returns the position of c in the sorted child slice and whether
// a child with that component exists. When absent, the position is the
// insertion point that keeps the slice sorted.
func (n *node[V]) childIndex(c name.Component) (int, bool) {
	i := sort.Search(len(n.children), func(i int) bool {
		return n.children[i].lastComponent().Compare(c) >= 0
	})
	if i < len(n.children) && n.children[i].lastComponent().Equal(c) {
		return i, true
	}
	return i, false
}

func (n *node[V]) child(c name.Component) *node[V] {
	if i, ok := n.childIndex(c); ok {
		return n.children[i]
	}
	return nil
}

// leftChild returns the child with the smallest component, or nil.
func (n *node[V]) leftChild() *node[V] {
	if len(n.children) == 0 {
		return nil
	}
	return n.children[0]
}

// rightChild returns the child with the largest component, or nil.
func (n *node[V]) rightChild() *node[V] {
	if len(n.children) == 0 {
		return nil
	}
	return n.children[len(n.children)-1]
}

func (n *node[V]) hasChildren() bool {
	return len(n.children) > 0
}

func (n *node[V]) insertChildAt(i int, child *node[V]) {
	n.children = append(n.children, nil)
	copy(n.children[i+1:], n.children[i:])
	n.children[i] = child
}

// tryCreateChild returns the existing child for c, or creates, links and
// returns a new one. The created flag lets the caller register a fresh node
// in the flat index exactly once.
func (n *node[V]) tryCreateChild(c name.Component) (created bool, child *node[V]) {
	i, ok := n.childIndex(c)
	if ok {
		return false, n.children[i]
	}
	child = newNode(n.name.Append(c), n)
	n.insertChildAt(i, child)
	return true, child
}

// addExistingChild links an already-built node under n. The node's name must
// be exactly n's name plus one component, and no sibling may already use
// that component.
func (n *node[V]) addExistingChild(child *node[V]) bool {
	if child.name.Size() != n.name.Size()+1 || !n.name.IsPrefixOf(child.name) {
		return false
	}
	i, ok := n.childIndex(child.lastComponent())
	if ok {
		return false
	}
	child.parent = n
	n.insertChildAt(i, child)
	return true
}

// removeChild unlinks the child keyed by c. It does not destroy anything
// below it; the caller owns whatever hangs off the removed subtree.
func (n *node[V]) removeChild(c name.Component) {
	if i, ok := n.childIndex(c); ok {
		copy(n.children[i:], n.children[i+1:])
		n.children[len(n.children)-1] = nil
		n.children = n.children[:len(n.children)-1]
	}
}

func (n *node[V]) hasValue() bool {
	return n.value != nil
}

// isLive reports whether the node must be retained: it has a child, holds a
// value, or is the root.
func (n *node[V]) isLive() bool {
	return len(n.children) > 0 || n.value != nil || n.parent == nil
}
