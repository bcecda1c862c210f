package reindex

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFirstSeenOrder(t *testing.T) {
	r := New[string]()
	assert.Equal(t, 0, r.IDFor("a"))
	assert.Equal(t, 1, r.IDFor("b"))
	assert.Equal(t, 0, r.IDFor("a"))
	assert.Equal(t, 2, r.IDFor("c"))
	assert.Equal(t, 3, r.Len())
}

func TestLookupAndKeyFor(t *testing.T) {
	r := New[[2]int]()
	id := r.IDFor([2]int{1, 2})

	got, ok := r.Lookup([2]int{1, 2})
	require.True(t, ok)
	assert.Equal(t, id, got)

	_, ok = r.Lookup([2]int{3, 4})
	assert.False(t, ok)

	key, ok := r.KeyFor(id)
	require.True(t, ok)
	assert.Equal(t, [2]int{1, 2}, key)

	_, ok = r.KeyFor(99)
	assert.False(t, ok)
}
