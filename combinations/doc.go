// Package combinations provides a bidirectional cursor over every
// k-combination of an alphabetic string, in lexicographic order by position.
//
// What:
//
//   - Cursor walks all strictly increasing k-tuples of positions into a base
//     string, for k running from a configurable start length up to len(base).
//   - Per-arity blocks are concatenated in increasing k: exhausting the
//     C(n, k) tuples of one length rolls the cursor into the next length.
//   - Next and Previous render the combination as the string of selected
//     symbols and move the cursor by exactly one slot; Previous is the exact
//     inverse of Next at every position, including arity boundaries.
//   - Nothing is ever precomputed: construction touches only the first index
//     tuple, and each step costs O(k) with no extra allocation.
//
// Why:
//
//   - Subset enumeration: candidate keys, feature sets, dictionary prefixes.
//   - Paging through a combination space too large to materialize
//     (a 16-symbol base already has 65535 combinations).
//   - A worked example of a reversible iterator whose state is a single
//     small index tuple.
//
// Ordering:
//
//	Tuples compare by position index, not by symbol value, so a base with
//	repeated or unsorted symbols still enumerates in a stable order and
//	repeated symbols at different positions are distinct combinations.
//
// Complexity:
//
//   - New:            O(startLength) time, O(startLength) memory.
//   - Next/Previous:  O(k) time, no allocation except at arity boundaries.
//   - HasNext/HasPrevious: O(k) worst case, pure queries.
//
// Errors:
//
//   - ErrInvalidInput: empty or non-alphabetic base, or start length outside
//     [1, len(base)].
//   - ErrEndOfSequence: Next past the single full-length combination, or
//     Previous at the first tuple of the configured start length. The cursor
//     is left untouched, so the caller may reverse direction and continue.
package combinations
