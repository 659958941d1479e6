package polynomial

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// term is one non-zero monomial. Terms chain in strictly descending power
// order, so the head always carries the degree.
type term struct {
	coeff int
	power int
	next  *term
}

// Polynomial is a sparse integer polynomial. The zero value is the zero
// polynomial and is ready to use.
type Polynomial struct {
	head *term
}

// New returns the zero polynomial.
func New() *Polynomial {
	return &Polynomial{}
}

// Parse builds a polynomial from whitespace-separated terms such as
// "3x^4 -2x^3 +4x^1 -7". A sign separated from its term by spaces attaches
// to the following term; doubled signs inside one term are rejected.
func Parse(s string) (*Polynomial, error) {
	p := New()

	fields := strings.Fields(s)
	for i := 0; i < len(fields); i++ {
		tok := fields[i]
		if hasDoubledSign(tok) {
			return nil, fmt.Errorf("%w: consecutive signs in %q", ErrBadTerm, tok)
		}
		if tok == "+" || tok == "-" {
			if i+1 == len(fields) {
				continue // trailing lone sign, nothing to attach to
			}
			i++
			tok += fields[i]
		}
		if err := p.parseTerm(tok); err != nil {
			return nil, err
		}
	}

	return p, nil
}

// AddTerm merges coeff·x^power into the polynomial in place. Zero
// coefficients are no-ops and terms that cancel out disappear.
func (p *Polynomial) AddTerm(coeff, power int) error {
	if power < 0 {
		return fmt.Errorf("%w: x^%d", ErrNegativePower, power)
	}
	if coeff == 0 {
		return nil
	}

	// Find the insertion point in descending power order.
	prev := (*term)(nil)
	cur := p.head
	for cur != nil && cur.power > power {
		prev, cur = cur, cur.next
	}

	if cur != nil && cur.power == power {
		cur.coeff += coeff
		if cur.coeff == 0 {
			p.unlink(prev, cur)
		}

		return nil
	}

	t := &term{coeff: coeff, power: power, next: cur}
	if prev == nil {
		p.head = t
	} else {
		prev.next = t
	}

	return nil
}

// Add returns the sum of p and other as a new polynomial; both inputs are
// left untouched.
func (p *Polynomial) Add(other *Polynomial) *Polynomial {
	sum := New()
	for t := p.head; t != nil; t = t.next {
		_ = sum.AddTerm(t.coeff, t.power)
	}
	for t := other.head; t != nil; t = t.next {
		_ = sum.AddTerm(t.coeff, t.power)
	}

	return sum
}

// Evaluate substitutes x and returns the value.
func (p *Polynomial) Evaluate(x float64) float64 {
	var sum float64
	for t := p.head; t != nil; t = t.next {
		sum += float64(t.coeff) * math.Pow(x, float64(t.power))
	}

	return sum
}

// Coefficient returns the coefficient of x^power, 0 if no such term exists.
func (p *Polynomial) Coefficient(power int) int {
	for t := p.head; t != nil; t = t.next {
		if t.power == power {
			return t.coeff
		}
		if t.power < power {
			break
		}
	}

	return 0
}

// Degree returns the highest power, or ErrEmptyPolynomial for the zero
// polynomial.
func (p *Polynomial) Degree() (int, error) {
	if p.head == nil {
		return 0, ErrEmptyPolynomial
	}

	return p.head.power, nil
}

// Equal reports whether both polynomials have identical terms.
func (p *Polynomial) Equal(other *Polynomial) bool {
	if other == nil {
		return false
	}
	a, b := p.head, other.head
	for a != nil && b != nil {
		if a.coeff != b.coeff || a.power != b.power {
			return false
		}
		a, b = a.next, b.next
	}

	return a == nil && b == nil
}

// String renders the canonical form: descending powers, " +"/" -" between
// terms, coefficient 1 elided on non-constant terms, powers always spelled
// out ("4x^1", not "4x"). The zero polynomial renders as "0".
func (p *Polynomial) String() string {
	if p.head == nil {
		return "0"
	}

	var b strings.Builder
	for t := p.head; t != nil; t = t.next {
		abs := t.coeff
		if t == p.head {
			if t.coeff < 0 {
				b.WriteByte('-')
				abs = -t.coeff
			}
		} else {
			if t.coeff > 0 {
				b.WriteString(" +")
			} else {
				b.WriteString(" -")
				abs = -t.coeff
			}
		}
		if abs != 1 || t.power == 0 {
			b.WriteString(strconv.Itoa(abs))
		}
		if t.power > 0 {
			b.WriteString("x^")
			b.WriteString(strconv.Itoa(t.power))
		}
	}

	return b.String()
}

// parseTerm parses one signed term token and merges it in.
func (p *Polynomial) parseTerm(tok string) error {
	sign := 1
	switch {
	case strings.HasPrefix(tok, "+"):
		tok = tok[1:]
	case strings.HasPrefix(tok, "-"):
		sign = -1
		tok = tok[1:]
	}
	if tok == "" {
		return fmt.Errorf("%w: dangling sign", ErrBadTerm)
	}

	coeff, power := 1, 0
	xi := strings.IndexByte(tok, 'x')
	if xi == -1 {
		n, err := strconv.Atoi(tok)
		if err != nil {
			return fmt.Errorf("%w: %q", ErrBadTerm, tok)
		}
		coeff = n
	} else {
		if cs := tok[:xi]; cs != "" {
			n, err := strconv.Atoi(cs)
			if err != nil {
				return fmt.Errorf("%w: %q", ErrBadTerm, tok)
			}
			coeff = n
		}
		switch rest := tok[xi+1:]; {
		case rest == "":
			power = 1
		case strings.HasPrefix(rest, "^"):
			n, err := strconv.Atoi(rest[1:])
			if err != nil {
				return fmt.Errorf("%w: %q", ErrBadTerm, tok)
			}
			power = n
		default:
			return fmt.Errorf("%w: %q", ErrBadTerm, tok)
		}
	}

	return p.AddTerm(sign*coeff, power)
}

// unlink removes cur from the list given its predecessor.
func (p *Polynomial) unlink(prev, cur *term) {
	if prev == nil {
		p.head = cur.next

		return
	}
	prev.next = cur.next
}

// hasDoubledSign reports whether tok contains two adjacent sign characters.
func hasDoubledSign(tok string) bool {
	for i := 1; i < len(tok); i++ {
		if isSign(tok[i]) && isSign(tok[i-1]) {
			return true
		}
	}

	return false
}

func isSign(b byte) bool {
	return b == '+' || b == '-'
}
