package polynomial

import "errors"

var (
	// ErrBadTerm indicates term text Parse cannot understand.
	ErrBadTerm = errors.New("polynomial: malformed term")

	// ErrNegativePower indicates a term with a power below zero.
	ErrNegativePower = errors.New("polynomial: negative powers are not allowed")

	// ErrEmptyPolynomial indicates a query undefined on the zero polynomial.
	ErrEmptyPolynomial = errors.New("polynomial: degree of the zero polynomial is undefined")
)
