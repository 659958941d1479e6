package combinations

import "errors"

// Sentinel errors for cursor construction and traversal.
// Use errors.Is to check: errors.Is(err, combinations.ErrEndOfSequence).
var (
	// ErrInvalidInput indicates an unusable base string or start length.
	// Construction failures wrap it with a detail message.
	ErrInvalidInput = errors.New("combinations: invalid input")

	// ErrEndOfSequence indicates a step past either end of the traversal.
	// The cursor state is unchanged by the failed call.
	ErrEndOfSequence = errors.New("combinations: end of sequence")
)
