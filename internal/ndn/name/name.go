// Package name implements hierarchical NDN names: ordered sequences of
// opaque, canonically ordered components with prefix and append operations.
package name

import (
	"encoding/binary"
	"strings"
)

// Name is an ordered sequence of Components identifying an entry. The zero
// value is the root name "/". Names have value semantics: Append returns a
// new Name and never aliases the receiver's backing array.
type Name struct {
	comps []Component
}

// New builds a Name from the given components.
func New(comps ...Component) Name {
	n := Name{comps: make([]Component, len(comps))}
	copy(n.comps, comps)
	return n
}

// Parse decodes an NDN URI such as "/app/video/1". Empty tokens between
// slashes are ignored, so "/" and "" both parse to the root name.
func Parse(uri string) (Name, error) {
	var comps []Component
	for _, tok := range strings.Split(uri, "/") {
		if tok == "" {
			continue
		}
		c, err := parseComponent(tok)
		if err != nil {
			return Name{}, err
		}
		comps = append(comps, c)
	}
	return Name{comps: comps}, nil
}

// MustParse is Parse for statically known URIs; it panics on error.
func MustParse(uri string) Name {
	n, err := Parse(uri)
	if err != nil {
		panic(err)
	}
	return n
}

// Size returns the number of components.
func (n Name) Size() int {
	return len(n.comps)
}

// Empty reports whether this is the root name.
func (n Name) Empty() bool {
	return len(n.comps) == 0
}

// Get returns the component at position i. Negative positions index from the
// end, so Get(-1) is the last component. Out-of-range positions panic.
func (n Name) Get(i int) Component {
	if i < 0 {
		i += len(n.comps)
	}
	return n.comps[i]
}

// Prefix returns the first k components. Negative k keeps all but the last
// -k components, so Prefix(-1) is the parent name.
func (n Name) Prefix(k int) Name {
	if k < 0 {
		k += len(n.comps)
	}
	if k < 0 {
		k = 0
	}
	if k > len(n.comps) {
		k = len(n.comps)
	}
	return Name{comps: n.comps[:k:k]}
}

// Append returns a new Name with c added after the receiver's components.
func (n Name) Append(c Component) Name {
	comps := make([]Component, len(n.comps)+1)
	copy(comps, n.comps)
	comps[len(n.comps)] = c
	return Name{comps: comps}
}

// Components returns the component sequence. Callers must not mutate it.
func (n Name) Components() []Component {
	return n.comps
}

// Equal reports whether both names have equal component sequences.
func (n Name) Equal(other Name) bool {
	if len(n.comps) != len(other.comps) {
		return false
	}
	for i := range n.comps {
		if !n.comps[i].Equal(other.comps[i]) {
			return false
		}
	}
	return true
}

// Compare orders names by canonical component order; a proper prefix sorts
// before any name it prefixes.
func (n Name) Compare(other Name) int {
	for i := 0; i < len(n.comps) && i < len(other.comps); i++ {
		if c := n.comps[i].Compare(other.comps[i]); c != 0 {
			return c
		}
	}
	switch {
	case len(n.comps) < len(other.comps):
		return -1
	case len(n.comps) > len(other.comps):
		return 1
	}
	return 0
}

// IsPrefixOf reports whether every component of n matches the leading
// components of other.
func (n Name) IsPrefixOf(other Name) bool {
	if len(n.comps) > len(other.comps) {
		return false
	}
	for i := range n.comps {
		if !n.comps[i].Equal(other.comps[i]) {
			return false
		}
	}
	return true
}

// Key returns a canonical encoding usable as a Go map key. Components are
// length-prefixed so distinct names can never collide.
func (n Name) Key() string {
	var sb strings.Builder
	var lenBuf [4]byte
	for _, c := range n.comps {
		binary.BigEndian.PutUint32(lenBuf[:], uint32(len(c)))
		sb.Write(lenBuf[:])
		sb.Write(c)
	}
	return sb.String()
}

// String renders the name in NDN URI form; the root name renders as "/".
func (n Name) String() string {
	if len(n.comps) == 0 {
		return "/"
	}
	var sb strings.Builder
	for _, c := range n.comps {
		sb.WriteByte('/')
		sb.WriteString(c.String())
	}
	return sb.String()
}
