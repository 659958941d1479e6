package bst

import (
	"cmp"
	"errors"
	"fmt"
	"strings"
)

// ErrEmptyTree is returned when Min or Max is asked of an empty tree.
var ErrEmptyTree = errors.New("bst: tree is empty")

// Tree is an unbalanced binary search tree holding each element at most
// once. The zero value is an empty tree, ready to use.
type Tree[T cmp.Ordered] struct {
	root *node[T]
}

type node[T cmp.Ordered] struct {
	data        T
	left, right *node[T]
}

// New returns an empty tree seeded with the given elements.
func New[T cmp.Ordered](elems ...T) *Tree[T] {
	t := &Tree[T]{}
	for _, e := range elems {
		t.Add(e)
	}

	return t
}

// Add inserts data, keeping the search order; duplicates are ignored.
func (t *Tree[T]) Add(data T) {
	t.root = insert(t.root, data)
}

// Delete removes data if present. Reports whether an element was removed.
func (t *Tree[T]) Delete(data T) bool {
	var removed bool
	t.root, removed = remove(t.root, data)

	return removed
}

// Present reports whether data is in the tree.
func (t *Tree[T]) Present(data T) bool {
	n := t.root
	for n != nil {
		switch {
		case data < n.data:
			n = n.left
		case data > n.data:
			n = n.right
		default:
			return true
		}
	}

	return false
}

// Size returns the number of elements.
func (t *Tree[T]) Size() int {
	return size(t.root)
}

// Height returns the number of nodes on the longest root-to-leaf path;
// an empty tree has height 0.
func (t *Tree[T]) Height() int {
	return height(t.root)
}

// Min returns the smallest element, or ErrEmptyTree.
func (t *Tree[T]) Min() (T, error) {
	if t.root == nil {
		var zero T

		return zero, ErrEmptyTree
	}
	n := t.root
	for n.left != nil {
		n = n.left
	}

	return n.data, nil
}

// Max returns the largest element, or ErrEmptyTree.
func (t *Tree[T]) Max() (T, error) {
	if t.root == nil {
		var zero T

		return zero, ErrEmptyTree
	}
	n := t.root
	for n.right != nil {
		n = n.right
	}

	return n.data, nil
}

// PreOrder renders the elements root-first as "[a b c]".
func (t *Tree[T]) PreOrder() string {
	var elems []string
	preOrder(t.root, &elems)

	return "[" + strings.Join(elems, " ") + "]"
}

// InOrder renders the elements in sorted order as "[a b c]".
func (t *Tree[T]) InOrder() string {
	var elems []string
	inOrder(t.root, &elems)

	return "[" + strings.Join(elems, " ") + "]"
}

// PostOrder renders the elements children-first as "[a b c]".
func (t *Tree[T]) PostOrder() string {
	var elems []string
	postOrder(t.root, &elems)

	return "[" + strings.Join(elems, " ") + "]"
}

// Equal reports whether both trees have identical structure and elements;
// two trees holding the same set in different shapes are not equal.
func (t *Tree[T]) Equal(other *Tree[T]) bool {
	if other == nil {
		return false
	}

	return sameShape(t.root, other.root)
}

// String is the sorted rendering, same as InOrder.
func (t *Tree[T]) String() string {
	return t.InOrder()
}

func insert[T cmp.Ordered](n *node[T], data T) *node[T] {
	if n == nil {
		return &node[T]{data: data}
	}
	switch {
	case data < n.data:
		n.left = insert(n.left, data)
	case data > n.data:
		n.right = insert(n.right, data)
	}

	return n
}

func remove[T cmp.Ordered](n *node[T], data T) (*node[T], bool) {
	if n == nil {
		return nil, false
	}

	var removed bool
	switch {
	case data < n.data:
		n.left, removed = remove(n.left, data)
	case data > n.data:
		n.right, removed = remove(n.right, data)
	default:
		switch {
		case n.left == nil:
			return n.right, true
		case n.right == nil:
			return n.left, true
		default:
			// Two children: replace with the in-order successor and
			// delete it from the right subtree.
			succ := n.right
			for succ.left != nil {
				succ = succ.left
			}
			n.data = succ.data
			n.right, _ = remove(n.right, succ.data)

			return n, true
		}
	}

	return n, removed
}

func size[T cmp.Ordered](n *node[T]) int {
	if n == nil {
		return 0
	}

	return 1 + size(n.left) + size(n.right)
}

func height[T cmp.Ordered](n *node[T]) int {
	if n == nil {
		return 0
	}

	return 1 + max(height(n.left), height(n.right))
}

func preOrder[T cmp.Ordered](n *node[T], out *[]string) {
	if n == nil {
		return
	}
	*out = append(*out, fmt.Sprint(n.data))
	preOrder(n.left, out)
	preOrder(n.right, out)
}

func inOrder[T cmp.Ordered](n *node[T], out *[]string) {
	if n == nil {
		return
	}
	inOrder(n.left, out)
	*out = append(*out, fmt.Sprint(n.data))
	inOrder(n.right, out)
}

func postOrder[T cmp.Ordered](n *node[T], out *[]string) {
	if n == nil {
		return
	}
	postOrder(n.left, out)
	postOrder(n.right, out)
	*out = append(*out, fmt.Sprint(n.data))
}

func sameShape[T cmp.Ordered](a, b *node[T]) bool {
	if a == nil || b == nil {
		return a == b
	}

	return a.data == b.data && sameShape(a.left, b.left) && sameShape(a.right, b.right)
}
