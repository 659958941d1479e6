package combinations

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"
)

// Cursor enumerates every k-combination of an alphabetic base string in
// lexicographic order by position, for k running from a configured start
// length up to len(base). The cursor always sits immediately before the
// tuple the next forward step would return.
//
// A Cursor holds no external resources and is safe to abandon at any point.
// It is not safe for concurrent use; each Cursor owns its index tuple
// exclusively.
type Cursor struct {
	base    string
	start   int   // arity the cursor was constructed with; backward floor
	arity   int   // current combination length; len(base)+1 once forward-exhausted
	indices []int // positions of the tuple the next forward step returns
}

// Option configures Cursor construction via functional arguments.
type Option func(*cursorOptions)

type cursorOptions struct {
	startLength int
}

func defaultOptions() cursorOptions {
	return cursorOptions{startLength: 1}
}

// WithStartLength sets the combination length the cursor begins at.
// The value is validated against the base string inside New; anything
// outside [1, len(base)] surfaces as ErrInvalidInput.
func WithStartLength(k int) Option {
	return func(o *cursorOptions) {
		o.startLength = k
	}
}

// New builds a Cursor over base, positioned at the first tuple of the start
// length (default 1). The base must be non-empty and consist of ASCII
// letters only; violations and out-of-range start lengths return an error
// wrapping ErrInvalidInput.
//
// Construction cost is O(startLength): no part of the combination space is
// enumerated up front.
func New(base string, opts ...Option) (*Cursor, error) {
	if base == "" {
		return nil, fmt.Errorf("%w: base must be non-empty", ErrInvalidInput)
	}
	for i := 0; i < len(base); i++ {
		if !isAlpha(base[i]) {
			return nil, fmt.Errorf("%w: base must be alphabetic, found %q at position %d",
				ErrInvalidInput, base[i], i)
		}
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.startLength < 1 || o.startLength > len(base) {
		return nil, fmt.Errorf("%w: start length %d outside [1, %d]",
			ErrInvalidInput, o.startLength, len(base))
	}

	c := &Cursor{
		base:    base,
		start:   o.startLength,
		arity:   o.startLength,
		indices: make([]int, o.startLength),
	}
	firstTuple(c.indices)

	return c, nil
}

// HasNext reports whether a forward step is possible. Pure query.
func (c *Cursor) HasNext() bool {
	return c.arity <= len(c.base)
}

// Next returns the combination at the cursor and advances one slot forward.
// Exhausting the tuples of the current length rolls the cursor into the
// first tuple of the next length; past the single full-length tuple the
// cursor is forward-exhausted and Next returns ErrEndOfSequence, leaving
// the cursor untouched.
func (c *Cursor) Next() (string, error) {
	if !c.HasNext() {
		return "", fmt.Errorf("%w: no next combination", ErrEndOfSequence)
	}

	out := render(c.base, c.indices)
	c.advance()

	return out, nil
}

// HasPrevious reports whether a backward step is possible: the floor is the
// first tuple of the arity the cursor was constructed with. Pure query.
func (c *Cursor) HasPrevious() bool {
	if c.arity != c.start {
		return true
	}

	return !isFirstTuple(c.indices)
}

// Previous regresses the cursor one slot backward and returns the
// combination now under it. Regressing from the first tuple of a length
// lands on the last tuple of the length below; at the first tuple of the
// configured start length Previous returns ErrEndOfSequence, leaving the
// cursor untouched.
func (c *Cursor) Previous() (string, error) {
	if !c.HasPrevious() {
		return "", fmt.Errorf("%w: no previous combination", ErrEndOfSequence)
	}

	c.regress()

	return render(c.base, c.indices), nil
}

// advance moves the cursor one slot forward, crossing into the next arity
// when the current one is exhausted.
func (c *Cursor) advance() {
	if nextTuple(c.indices, len(c.base)) {
		return
	}
	c.arity++
	if c.arity <= len(c.base) {
		c.resize(c.arity)
		firstTuple(c.indices)
	}
	// Forward-exhausted: the stale tuple is never rendered again and the
	// next backward step rebuilds it from the arity alone.
}

// regress moves the cursor one slot backward, crossing into the previous
// arity when the current one is at its first tuple.
func (c *Cursor) regress() {
	n := len(c.base)
	if c.arity > n {
		// Stepping back out of the forward-exhausted state lands on the
		// single full-length tuple.
		c.arity = n
		c.resize(n)
		lastTuple(c.indices, n)

		return
	}
	if prevTuple(c.indices, n) {
		return
	}
	c.arity--
	c.resize(c.arity)
	lastTuple(c.indices, n)
}

// resize reslices the index tuple to length k, reallocating only when the
// backing array is too small. Length changes happen only at arity
// boundaries, so steps inside one arity never allocate.
func (c *Cursor) resize(k int) {
	if cap(c.indices) >= k {
		c.indices = c.indices[:k]

		return
	}
	c.indices = make([]int, k)
}

// Equal reports structural equality: same base, same arity, same index
// tuple. Two independently constructed cursors in the same traversal state
// compare equal.
func (c *Cursor) Equal(other *Cursor) bool {
	if other == nil {
		return false
	}
	if c.base != other.base || c.arity != other.arity || len(c.indices) != len(other.indices) {
		return false
	}
	for i, v := range c.indices {
		if other.indices[i] != v {
			return false
		}
	}

	return true
}

// Hash returns an FNV-1a digest of the (base, arity, indices) triple.
// Cursors that compare Equal hash identically.
func (c *Cursor) Hash() uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(c.base))

	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], uint64(c.arity))
	_, _ = h.Write(b[:])
	for _, v := range c.indices {
		binary.LittleEndian.PutUint64(b[:], uint64(v))
		_, _ = h.Write(b[:])
	}

	return h.Sum64()
}

// String renders a diagnostic form naming the base and current arity.
// It is meant for logging, not for resuming traversal.
func (c *Cursor) String() string {
	return fmt.Sprintf("Combinations(base=%q, arity=%d)", c.base, c.arity)
}

// isAlpha reports whether b is an ASCII letter.
func isAlpha(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}
