// Package nametree implements the name-indexed trie backing a content
// store: it maps hierarchical NDN names to values and answers exact-match,
// longest-prefix, all-prefixes, subtree and edge-biased descendant queries.
//
// The structure is driven by a single logical owner. No internal locking is
// performed; callers that share a Tree across goroutines must serialize all
// operations externally, since mutations update the tree and the flat name
// index in multiple steps.
package nametree

import "github.com/DOCTOR-ANR/NDN-microservices/internal/ndn/name"

// Match is one query result: the name of a visited node and the value it
// held, nil when the node was structural only.
type Match[V any] struct {
	Name  name.Name
	Value *V
}

// Tree is a trie keyed by name components with a flat name index for exact
// addressing. Values are held by pointer; a caller that fetched a value may
// keep using it after the entry is removed from the tree.
//
// Invariants:
//   - a node exists iff it has a child, holds a value, or is the root;
//   - every live node is reachable through the flat index under its name;
//   - populated counts exactly the nodes currently holding a value.
type Tree[V any] struct {
	root      *node[V]
	index     map[string]*node[V]
	populated int
}

// New returns an empty tree holding only the root node.
func New[V any]() *Tree[V] {
	root := newNode[V](name.Name{}, nil)
	t := &Tree[V]{
		root:  root,
		index: map[string]*node[V]{root.name.Key(): root},
	}
	return t
}

// Size returns the number of live nodes, including structural ones.
func (t *Tree[V]) Size() int {
	return len(t.index)
}

// PopulatedCount returns the number of nodes currently holding a value.
func (t *Tree[V]) PopulatedCount() int {
	return t.populated
}

// lookup resolves n through the flat index. Entries pointing at pruned
// nodes are discarded on sight and reported as absent.
func (t *Tree[V]) lookup(n name.Name) *node[V] {
	key := n.Key()
	nd, ok := t.index[key]
	if !ok {
		return nil
	}
	if nd.pruned {
		delete(t.index, key)
		return nil
	}
	if !nd.name.Equal(n) {
		panic("nametree: index entry resolves to a node with a different name")
	}
	return nd
}

// Find returns the value stored under exactly n. The second result is false
// when the name is absent or its node is structural only.
func (t *Tree[V]) Find(n name.Name) (*V, bool) {
	nd := t.lookup(n)
	if nd == nil || nd.value == nil {
		return nil, false
	}
	return nd.value, true
}

// FindLongestPrefixMatch walks from the root consuming n's components while
// a matching child exists and returns the deepest populated node seen. The
// returned name is the deepest node actually reached, which may be shorter
// than n; the value is nil when no node on the path held one.
func (t *Tree[V]) FindLongestPrefixMatch(n name.Name) Match[V] {
	nd := t.root
	value := t.root.value
	for _, c := range n.Components() {
		child := nd.child(c)
		if child == nil {
			break
		}
		if child.hasValue() {
			value = child.value
		}
		nd = child
	}
	return Match[V]{Name: nd.name, Value: value}
}

// FindAllPrefixMatches returns, in root-to-deepest order, every populated
// node on the path from the root toward n. The root comes first when it
// holds a value. The slice is freshly built on every call.
func (t *Tree[V]) FindAllPrefixMatches(n name.Name) []Match[V] {
	var matches []Match[V]
	if t.root.hasValue() {
		matches = append(matches, Match[V]{Name: t.root.name, Value: t.root.value})
	}
	nd := t.root
	for _, c := range n.Components() {
		child := nd.child(c)
		if child == nil {
			break
		}
		if child.hasValue() {
			matches = append(matches, Match[V]{Name: child.name, Value: child.value})
		}
		nd = child
	}
	return matches
}

// FindFirstPopulatedDescendant looks for the populated node closest to n in
// its own subtree, biased toward one sibling edge: the first descent picks
// the leftmost (smallest component) child, or the rightmost when requested,
// and every further step descends leftmost. It reports false when n is
// absent or its subtree chain ends without a populated node.
func (t *Tree[V]) FindFirstPopulatedDescendant(n name.Name, rightmost bool) (Match[V], bool) {
	nd := t.lookup(n)
	if nd == nil {
		return Match[V]{}, false
	}
	if nd.hasValue() {
		return Match[V]{Name: nd.name, Value: nd.value}, true
	}
	if rightmost {
		nd = nd.rightChild()
	} else {
		nd = nd.leftChild()
	}
	for nd != nil {
		if nd.hasValue() {
			return Match[V]{Name: nd.name, Value: nd.value}, true
		}
		nd = nd.leftChild()
	}
	return Match[V]{}, false
}

// FindAllInSubtree returns every node in the subtree rooted at n, including
// structural nodes, whose Match carries a nil value. The order is a
// preorder traversal, stable for a static tree. An absent name yields an
// empty result.
func (t *Tree[V]) FindAllInSubtree(n name.Name) []Match[V] {
	nd := t.lookup(n)
	if nd == nil {
		return nil
	}
	var matches []Match[V]
	stack := []*node[V]{nd}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		matches = append(matches, Match[V]{Name: cur.name, Value: cur.value})
		for i := len(cur.children) - 1; i >= 0; i-- {
			stack = append(stack, cur.children[i])
		}
	}
	return matches
}

// Insert stores value under n, creating the missing path from the deepest
// existing ancestor. An existing populated node keeps its current value
// unless replace is set; re-inserting over a populated node never changes
// the populated count.
func (t *Tree[V]) Insert(n name.Name, value *V, replace bool) {
	nd := t.lookup(n)
	if nd == nil {
		nd = t.root
		for i := 0; i < n.Size(); i++ {
			created, child := nd.tryCreateChild(n.Get(i))
			if created {
				t.index[child.name.Key()] = child
			}
			nd = child
		}
		nd.value = value
		t.populated++
		return
	}
	if nd.value == nil {
		nd.value = value
		t.populated++
	} else if replace {
		nd.value = value
	}
}

// Remove detaches the value stored under n, then prunes upward: every node
// left with no value and no children is unlinked from its parent and from
// the flat index, stopping at the first still-live ancestor. The root is
// never removed. Removing an absent name is a no-op.
func (t *Tree[V]) Remove(n name.Name) {
	nd := t.lookup(n)
	if nd == nil {
		return
	}
	if nd.value != nil {
		nd.value = nil
		t.populated--
	}
	for !nd.isLive() {
		parent := nd.parent
		if parent == nil {
			panic("nametree: pruning reached a nil parent before the root")
		}
		delete(t.index, nd.name.Key())
		parent.removeChild(nd.lastComponent())
		nd.pruned = true
		nd = parent
	}
}
