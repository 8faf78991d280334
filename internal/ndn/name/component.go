package name

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
)

// Component is a single element of a hierarchical NDN name. The bytes are
// opaque to the trie; ordering follows NDN canonical order.
type Component []byte

// NewComponent copies b into a fresh Component.
func NewComponent(b []byte) Component {
	c := make(Component, len(b))
	copy(c, b)
	return c
}

// ComponentFromString builds a Component from the literal bytes of s.
func ComponentFromString(s string) Component {
	return Component(s)
}

// Compare orders components canonically: shorter components sort first,
// equal-length components are compared bytewise.
func (c Component) Compare(other Component) int {
	if len(c) != len(other) {
		if len(c) < len(other) {
			return -1
		}
		return 1
	}
	return bytes.Compare(c, other)
}

// Equal reports whether both components hold the same bytes.
func (c Component) Equal(other Component) bool {
	return bytes.Equal(c, other)
}

// isUnreserved reports whether b may appear unescaped in a URI component.
func isUnreserved(b byte) bool {
	switch {
	case b >= 'a' && b <= 'z':
		return true
	case b >= 'A' && b <= 'Z':
		return true
	case b >= '0' && b <= '9':
		return true
	case b == '+' || b == '-' || b == '.' || b == '_' || b == '~':
		return true
	}
	return false
}

func isAllPeriods(b []byte) bool {
	for _, x := range b {
		if x != '.' {
			return false
		}
	}
	return true
}

// String renders the component in NDN URI form. Components made entirely of
// periods (including the empty component) gain three extra periods so the
// rendering stays reversible.
func (c Component) String() string {
	var sb strings.Builder
	if isAllPeriods(c) {
		sb.WriteString("...")
	}
	for _, b := range c {
		if isUnreserved(b) {
			sb.WriteByte(b)
		} else {
			fmt.Fprintf(&sb, "%%%02X", b)
		}
	}
	return sb.String()
}

// parseComponent decodes a single URI token into a Component.
func parseComponent(tok string) (Component, error) {
	out := make([]byte, 0, len(tok))
	for i := 0; i < len(tok); i++ {
		b := tok[i]
		if b == '%' {
			if i+2 >= len(tok) {
				return nil, fmt.Errorf("truncated percent escape in component %q", tok)
			}
			v, err := strconv.ParseUint(tok[i+1:i+3], 16, 8)
			if err != nil {
				return nil, fmt.Errorf("bad percent escape in component %q: %w", tok, err)
			}
			out = append(out, byte(v))
			i += 2
		} else {
			out = append(out, b)
		}
	}
	if isAllPeriods(out) {
		if len(out) < 3 {
			return nil, fmt.Errorf("illegal component %q: fewer than three periods", tok)
		}
		out = out[3:]
	}
	return Component(out), nil
}
