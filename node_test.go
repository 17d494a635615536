package tst

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNodeInsert(t *testing.T) {
	root := newNode('c')
	assert.True(t, root.insert("cat"))
	assert.True(t, root.insert("a"))
	assert.True(t, root.insert("dog"))
	assert.False(t, root.insert("cat"))

	require.NotNil(t, root.lo)
	assert.Equal(t, byte('a'), root.lo.char)
	assert.True(t, root.lo.wordEnd)
	require.NotNil(t, root.hi)
	assert.Equal(t, byte('d'), root.hi.char)
	require.NotNil(t, root.eq)
	assert.Equal(t, byte('a'), root.eq.char)
	assert.False(t, root.wordEnd)
	assert.Equal(t, 3, root.count())
}

func TestNodeSearch(t *testing.T) {
	root := newNode('m')
	for _, w := range []string{"me", "mine", "a", "zoo"} {
		root.insert(w)
	}

	n := root.search("mi")
	require.NotNil(t, n)
	assert.Equal(t, byte('i'), n.char)
	assert.False(t, n.wordEnd)

	n = root.search("zoo")
	require.NotNil(t, n)
	assert.True(t, n.wordEnd)

	assert.Nil(t, root.search("mo"))
	assert.Nil(t, root.search("b"))
	assert.Nil(t, root.search("zoos"))

	var nilNode *node
	assert.Nil(t, nilNode.search("a"))
}

func TestNodeCollect(t *testing.T) {
	root := newNode('m')
	for _, w := range []string{"me", "mine", "a", "zoo", "m"} {
		root.insert(w)
	}
	assert.Equal(t, []string{"a", "m", "me", "mine", "zoo"}, root.collect(nil, ""))
	assert.Equal(t, []string{"xe", "xine"}, root.eq.collect(nil, "x"))
	assert.Equal(t, 5, root.count())
}

func TestNodeCheck(t *testing.T) {
	root := newNode('m')
	for _, w := range []string{"me", "a", "zoo"} {
		root.insert(w)
	}
	require.NoError(t, root.check("", -1, 256))

	t.Run("out of order sibling", func(t *testing.T) {
		root.lo.hi = &node{char: 'q', wordEnd: true}
		defer func() { root.lo.hi = nil }()

		err := root.check("", -1, 256)
		var ie *InvariantError
		require.ErrorAs(t, err, &ie)
		assert.Equal(t, byte('q'), ie.Char)
		assert.False(t, ie.Dangling)
	})

	t.Run("dangling node", func(t *testing.T) {
		root.eq.hi = &node{char: 'x'}
		defer func() { root.eq.hi = nil }()

		err := root.check("", -1, 256)
		var ie *InvariantError
		require.ErrorAs(t, err, &ie)
		assert.Equal(t, "m", ie.Path)
		assert.True(t, ie.Dangling)
	})

	require.NoError(t, root.check("", -1, 256))
}

func TestValidateSize(t *testing.T) {
	tr := New()
	tr.Insert("one", "two")
	tr.size = 3
	assert.Error(t, tr.Validate())
}
