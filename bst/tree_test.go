package bst_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maravek/etudes/bst"
)

// balanced builds the tree
//
//	    5
//	  3   8
//	 1 4 7 9
func balanced() *bst.Tree[int] {
	return bst.New(5, 3, 8, 1, 4, 7, 9)
}

// TestTree_Empty covers queries on the zero value.
func TestTree_Empty(t *testing.T) {
	var tree bst.Tree[int]

	assert.Zero(t, tree.Size())
	assert.Zero(t, tree.Height())
	assert.False(t, tree.Present(1))
	assert.Equal(t, "[]", tree.InOrder())

	_, err := tree.Min()
	assert.ErrorIs(t, err, bst.ErrEmptyTree)
	_, err = tree.Max()
	assert.ErrorIs(t, err, bst.ErrEmptyTree)
}

// TestTree_AddAndPresent inserts with duplicates and checks membership.
func TestTree_AddAndPresent(t *testing.T) {
	tree := balanced()
	tree.Add(4) // duplicate, ignored

	assert.Equal(t, 7, tree.Size())
	for _, v := range []int{1, 3, 4, 5, 7, 8, 9} {
		assert.True(t, tree.Present(v), "missing %d", v)
	}
	assert.False(t, tree.Present(6))
}

// TestTree_MinMaxHeight checks the extremes and the balanced height.
func TestTree_MinMaxHeight(t *testing.T) {
	tree := balanced()

	lo, err := tree.Min()
	require.NoError(t, err)
	assert.Equal(t, 1, lo)

	hi, err := tree.Max()
	require.NoError(t, err)
	assert.Equal(t, 9, hi)

	assert.Equal(t, 3, tree.Height())
}

// TestTree_DegeneratesToList inserts sorted input and expects list height.
func TestTree_DegeneratesToList(t *testing.T) {
	tree := bst.New(1, 2, 3, 4, 5)

	assert.Equal(t, 5, tree.Height())
	assert.Equal(t, "[1 2 3 4 5]", tree.InOrder())
}

// TestTree_Traversals pins all three orders for the balanced shape.
func TestTree_Traversals(t *testing.T) {
	tree := balanced()

	assert.Equal(t, "[5 3 1 4 8 7 9]", tree.PreOrder())
	assert.Equal(t, "[1 3 4 5 7 8 9]", tree.InOrder())
	assert.Equal(t, "[1 4 3 7 9 8 5]", tree.PostOrder())
	assert.Equal(t, tree.InOrder(), tree.String())
}

// TestTree_Delete exercises leaf, single-child and two-children removal.
func TestTree_Delete(t *testing.T) {
	tree := balanced()

	assert.True(t, tree.Delete(1), "leaf")
	assert.Equal(t, "[3 4 5 7 8 9]", tree.InOrder())

	assert.True(t, tree.Delete(3), "single child after losing the leaf")
	assert.Equal(t, "[4 5 7 8 9]", tree.InOrder())

	assert.True(t, tree.Delete(5), "root with two children")
	assert.Equal(t, "[4 7 8 9]", tree.InOrder())
	assert.Equal(t, "[7 4 8 9]", tree.PreOrder(), "in-order successor took the root")

	assert.False(t, tree.Delete(42), "absent element")
	assert.Equal(t, 4, tree.Size())
}

// TestTree_Equal is structural: same set in a different shape is not equal.
func TestTree_Equal(t *testing.T) {
	a := balanced()
	b := balanced()
	assert.True(t, a.Equal(b))

	shuffled := bst.New(1, 3, 4, 5, 7, 8, 9) // same set, list shape
	assert.Equal(t, a.InOrder(), shuffled.InOrder())
	assert.False(t, a.Equal(shuffled))

	assert.False(t, a.Equal(nil))
}

// TestTree_Strings works with a non-numeric ordered type.
func TestTree_Strings(t *testing.T) {
	tree := bst.New("pear", "apple", "quince")

	assert.Equal(t, "[apple pear quince]", tree.InOrder())
	lo, err := tree.Min()
	require.NoError(t, err)
	assert.Equal(t, "apple", lo)
}
