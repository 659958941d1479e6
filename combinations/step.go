package combinations

// Pure index arithmetic over a tuple of strictly increasing positions.
// Every function here is independent of Cursor so the stepping logic can be
// tested apart from rendering and arity bookkeeping.

// firstTuple resets ix to the lexicographically first tuple of its arity:
// [0, 1, …, k-1].
func firstTuple(ix []int) {
	for i := range ix {
		ix[i] = i
	}
}

// lastTuple resets ix to the lexicographically last tuple of its arity:
// [n-k, n-k+1, …, n-1].
func lastTuple(ix []int, n int) {
	k := len(ix)
	for i := range ix {
		ix[i] = n - k + i
	}
}

// isFirstTuple reports whether ix is the first tuple of its arity.
func isFirstTuple(ix []int) bool {
	for i, v := range ix {
		if v != i {
			return false
		}
	}
	return true
}

// nextTuple advances ix to its lexicographic successor within the same
// arity: the rightmost position with room to grow is incremented and every
// position after it is packed tightly against it. Returns false when ix is
// already the last tuple of its arity, leaving ix unchanged.
func nextTuple(ix []int, n int) bool {
	k := len(ix)
	for i := k - 1; i >= 0; i-- {
		if ix[i] < n-k+i {
			ix[i]++
			for j := i + 1; j < k; j++ {
				ix[j] = ix[j-1] + 1
			}

			return true
		}
	}

	return false
}

// prevTuple moves ix to its lexicographic predecessor within the same
// arity: the rightmost position that can shrink without colliding with its
// left neighbor is decremented and every position after it jumps to its
// maximum. Exact inverse of nextTuple. Returns false when ix is the first
// tuple of its arity, leaving ix unchanged.
func prevTuple(ix []int, n int) bool {
	k := len(ix)
	var floor int
	for i := k - 1; i >= 0; i-- {
		floor = 0
		if i > 0 {
			floor = ix[i-1] + 1
		}
		if ix[i] > floor {
			ix[i]--
			for j := i + 1; j < k; j++ {
				ix[j] = n - k + j
			}

			return true
		}
	}

	return false
}

// render maps ix through base, preserving tuple order.
func render(base string, ix []int) string {
	buf := make([]byte, len(ix))
	for i, p := range ix {
		buf[i] = base[p]
	}

	return string(buf)
}
