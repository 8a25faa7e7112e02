// Package poly implements dense univariate polynomial arithmetic over the
// BN254 scalar field. A Polynomial is a coefficient vector, lowest degree
// first; trailing zeros are tolerated everywhere and stripped only where
// normalization is needed (equality, degree).
package poly

import (
	"errors"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// ErrDivisionByZero is returned when dividing by the zero polynomial.
var ErrDivisionByZero = errors.New("poly: division by zero polynomial")

// Polynomial is a0 + a1*x + ... + a_d*x^d stored as [a0, a1, ..., a_d].
type Polynomial []fr.Element

// Normalize returns p with trailing zero coefficients stripped. The zero
// polynomial normalizes to the empty slice.
func Normalize(p Polynomial) Polynomial {
	n := len(p)
	for n > 0 && p[n-1].IsZero() {
		n--
	}
	return p[:n]
}

// Degree returns the nominal degree of p, i.e. the index of the highest
// non-zero coefficient. The zero polynomial has degree -1.
func Degree(p Polynomial) int {
	return len(Normalize(p)) - 1
}

// Equal compares p and q after normalization.
func Equal(p, q Polynomial) bool {
	p, q = Normalize(p), Normalize(q)
	if len(p) != len(q) {
		return false
	}
	for i := range p {
		if !p[i].Equal(&q[i]) {
			return false
		}
	}
	return true
}

// Clone returns a deep copy of p.
func Clone(p Polynomial) Polynomial {
	out := make(Polynomial, len(p))
	copy(out, p)
	return out
}

// Evaluate computes p(x) by Horner's rule. The zero polynomial evaluates to
// zero everywhere.
func Evaluate(p Polynomial, x fr.Element) fr.Element {
	var acc fr.Element
	for i := len(p) - 1; i >= 0; i-- {
		acc.Mul(&acc, &x)
		acc.Add(&acc, &p[i])
	}
	return acc
}

// Divide performs schoolbook long division of a by b and returns the
// quotient; the remainder is discarded. Fails with ErrDivisionByZero when b
// is the zero polynomial. If deg(a) < deg(b) the quotient is the zero
// polynomial.
func Divide(a, b Polynomial) (Polynomial, error) {
	a = Normalize(Clone(a))
	b = Normalize(Clone(b))

	if len(b) == 0 {
		return nil, ErrDivisionByZero
	}
	if len(a) < len(b) {
		return Polynomial{}, nil
	}

	quotient := make(Polynomial, len(a)-len(b)+1)
	remainder := a
	lead := b[len(b)-1]

	for len(remainder) >= len(b) {
		i := len(remainder) - len(b)
		var coeff fr.Element
		coeff.Div(&remainder[len(remainder)-1], &lead)
		quotient[i] = coeff

		for j := len(b) - 1; j >= 0; j-- {
			if b[j].IsZero() {
				continue
			}
			pos := len(remainder) - len(b) + j
			if pos < 0 || pos >= len(remainder) {
				continue
			}
			var term fr.Element
			term.Mul(&coeff, &b[j])
			remainder[pos].Sub(&remainder[pos], &term)
		}
		remainder = Normalize(remainder)
	}

	return quotient, nil
}

// DivideByVanishing divides a by the vanishing polynomial of the order-l
// subgroup, z_H(x) = x^l - 1, in O(deg a) time using the in-place
// reduction: for i from deg(a) down to l, move a[i] to q[i-l] and fold it
// back into a[i-l] via addition, since x^l ≡ 1 (mod z_H). The coefficients
// surviving in a[0:l] after the loop are the remainder, returned alongside
// the quotient so callers (SumCheck) can inspect it; ZeroTest callers must
// check it is the zero polynomial before trusting the quotient.
func DivideByVanishing(a Polynomial, l uint64) (quotient, remainder Polynomial) {
	a = Clone(a)
	d := Degree(a)
	if d < int(l) {
		return Polynomial{}, Normalize(a)
	}

	q := make(Polynomial, d-int(l)+1)
	for i := d; i >= int(l); i-- {
		q[i-int(l)] = a[i]
		a[i-int(l)].Add(&a[i-int(l)], &a[i])
		a[i] = fr.Element{}
	}

	rem := a
	if len(rem) > int(l) {
		rem = rem[:l]
	}
	return q, Normalize(rem)
}
