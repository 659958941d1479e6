// Package polynomial implements sparse one-variable polynomials with
// integer coefficients and non-negative integer powers.
//
// What:
//
//   - Polynomial stores only non-zero terms, as a linked list in strictly
//     descending power order; the zero polynomial has no terms.
//   - Parse reads the "4x^3 -2x^1 +5" syntax: whitespace-separated terms,
//     optional sign, optional coefficient (implicit 1), optional power
//     (implicit 1 with an x, 0 without).
//   - AddTerm merges a term into place, dropping terms that cancel to a
//     zero coefficient; Add sums two polynomials into a fresh one.
//   - Evaluate substitutes a float64 for x; Coefficient and Degree query
//     the term structure.
//   - String renders in descending power order with " +"/" -" between
//     terms, eliding coefficient 1 on non-constant terms and always
//     spelling out the power, "^1" included. The zero polynomial is "0".
//
// Errors:
//
//   - ErrBadTerm: malformed term syntax in Parse.
//   - ErrNegativePower: a term with a power below zero.
//   - ErrEmptyPolynomial: Degree asked of the zero polynomial.
package polynomial
