// Package bst implements an unbalanced binary search tree over any ordered
// type.
//
// What:
//
//   - Tree[T] supports Add, Delete, Present, Size, Height, Min and Max.
//   - Duplicates are ignored on Add, so the tree always holds a set.
//   - PreOrder, InOrder and PostOrder render the elements as a bracketed,
//     space-separated list; InOrder is always sorted and doubles as the
//     String form.
//   - Delete of a node with two children swaps in the in-order successor.
//
// Complexity:
//
//	All operations are O(h) or O(n·h) for traversals, with h the tree
//	height: the tree does no rebalancing, so inserting sorted input
//	degrades it to a list.
//
// Errors:
//
//   - ErrEmptyTree: Min or Max asked of a tree with no elements.
package bst
