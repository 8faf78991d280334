package name

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAndString(t *testing.T) {
	tests := []struct {
		uri  string
		size int
		want string
	}{
		{"/", 0, "/"},
		{"", 0, "/"},
		{"/a", 1, "/a"},
		{"/app/video/1", 3, "/app/video/1"},
		{"//a//b/", 2, "/a/b"}, // empty tokens collapse
		{"/hello%20world", 1, "/hello%20world"},
		{"/....", 1, "/...."}, // all-period token keeps three extra periods
	}

	for _, tt := range tests {
		n, err := Parse(tt.uri)
		require.NoError(t, err, "uri %q", tt.uri)
		assert.Equal(t, tt.size, n.Size(), "uri %q", tt.uri)
		assert.Equal(t, tt.want, n.String(), "uri %q", tt.uri)
	}
}

func TestParseErrors(t *testing.T) {
	for _, uri := range []string{"/bad%2", "/bad%zz", "/.."} {
		_, err := Parse(uri)
		assert.Error(t, err, "uri %q", uri)
	}
}

func TestComponentEscaping(t *testing.T) {
	c := NewComponent([]byte{0x00, 0xFF, 'a'})
	assert.Equal(t, "%00%FFa", c.String())

	n := New(c)
	round, err := Parse(n.String())
	require.NoError(t, err)
	assert.True(t, n.Equal(round), "escaped name must round-trip")
}

func TestComponentCompare(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"a", "a", 0},
		{"a", "b", -1},
		{"b", "a", 1},
		{"z", "aa", -1}, // canonical order: shorter first
		{"aa", "z", 1},
	}
	for _, tt := range tests {
		got := ComponentFromString(tt.a).Compare(ComponentFromString(tt.b))
		assert.Equal(t, tt.want, got, "%q vs %q", tt.a, tt.b)
	}
}

func TestGetNegativeIndex(t *testing.T) {
	n := MustParse("/a/b/c")
	assert.Equal(t, "c", string(n.Get(-1)))
	assert.Equal(t, "a", string(n.Get(-3)))
	assert.Equal(t, "b", string(n.Get(1)))
}

func TestPrefix(t *testing.T) {
	n := MustParse("/a/b/c")
	assert.Equal(t, "/a/b", n.Prefix(2).String())
	assert.Equal(t, "/a/b", n.Prefix(-1).String())
	assert.Equal(t, "/", n.Prefix(0).String())
	assert.Equal(t, "/a/b/c", n.Prefix(10).String())
}

func TestAppendDoesNotAlias(t *testing.T) {
	base := MustParse("/a")
	x := base.Append(ComponentFromString("x"))
	y := base.Append(ComponentFromString("y"))

	assert.Equal(t, "/a/x", x.String())
	assert.Equal(t, "/a/y", y.String())
	assert.Equal(t, "/a", base.String())
}

func TestCompareAndPrefixOf(t *testing.T) {
	a := MustParse("/a")
	ab := MustParse("/a/b")
	b := MustParse("/b")

	assert.Negative(t, a.Compare(ab), "prefix sorts before extension")
	assert.Positive(t, b.Compare(ab))
	assert.Zero(t, ab.Compare(MustParse("/a/b")))

	assert.True(t, a.IsPrefixOf(ab))
	assert.True(t, ab.IsPrefixOf(ab))
	assert.False(t, ab.IsPrefixOf(a))
	assert.False(t, b.IsPrefixOf(ab))
}

func TestKeyUniqueness(t *testing.T) {
	// Names whose flat concatenation collides must still have distinct keys.
	n1 := New(ComponentFromString("ab"), ComponentFromString("c"))
	n2 := New(ComponentFromString("a"), ComponentFromString("bc"))
	n3 := New(ComponentFromString("abc"))

	assert.NotEqual(t, n1.Key(), n2.Key())
	assert.NotEqual(t, n1.Key(), n3.Key())
	assert.NotEqual(t, n2.Key(), n3.Key())
	assert.Equal(t, n1.Key(), New(ComponentFromString("ab"), ComponentFromString("c")).Key())
}
