package poly

import (
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

func elems(vals ...int64) Polynomial {
	p := make(Polynomial, len(vals))
	for i, v := range vals {
		if v < 0 {
			var neg fr.Element
			neg.SetUint64(uint64(-v))
			p[i].Neg(&neg)
			continue
		}
		p[i].SetUint64(uint64(v))
	}
	return p
}

func TestNormalizeStripsTrailingZeros(t *testing.T) {
	p := elems(1, 2, 0, 0)
	got := Normalize(p)
	if len(got) != 2 {
		t.Fatalf("expected length 2, got %d", len(got))
	}
}

func TestDegree(t *testing.T) {
	if d := Degree(elems(1, 2, 3)); d != 2 {
		t.Fatalf("expected degree 2, got %d", d)
	}
	if d := Degree(Polynomial{}); d != -1 {
		t.Fatalf("expected degree -1 for zero polynomial, got %d", d)
	}
}

func TestEvaluateHorner(t *testing.T) {
	// p(x) = 1 + 2x + 3x^2, p(2) = 1 + 4 + 12 = 17
	p := elems(1, 2, 3)
	var x fr.Element
	x.SetUint64(2)

	got := Evaluate(p, x)
	var want fr.Element
	want.SetUint64(17)
	if !got.Equal(&want) {
		t.Fatalf("evaluate mismatch: got %s want %s", got.String(), want.String())
	}
}

func TestEvaluateZeroPolynomial(t *testing.T) {
	var x fr.Element
	x.SetUint64(5)
	got := Evaluate(Polynomial{}, x)
	if !got.IsZero() {
		t.Fatalf("expected zero, got %s", got.String())
	}
}

func TestDivideByZeroPolynomial(t *testing.T) {
	_, err := Divide(elems(1, 2), Polynomial{})
	if err != ErrDivisionByZero {
		t.Fatalf("expected ErrDivisionByZero, got %v", err)
	}
}

func TestDivideExact(t *testing.T) {
	// (1 + 3x + 2x^2) / (1 + x) = (1 + 2x)
	a := elems(1, 3, 2)
	b := elems(1, 1)
	q, err := Divide(a, b)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !Equal(q, elems(1, 2)) {
		t.Fatalf("unexpected quotient: %v", q)
	}
}

func TestDivideDegreeLessThanDivisor(t *testing.T) {
	q, err := Divide(elems(1), elems(1, 1))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if Degree(q) != -1 {
		t.Fatalf("expected zero quotient, got %v", q)
	}
}

func TestDivideByVanishing(t *testing.T) {
	// q(x) = x^4 - 1 divides exactly by (x^4 - 1): quotient 1, remainder 0.
	q := elems(-1, 0, 0, 0, 1)
	f, rem := DivideByVanishing(q, 4)
	if !Equal(f, elems(1)) {
		t.Fatalf("expected quotient [1], got %v", f)
	}
	if len(rem) != 0 {
		t.Fatalf("expected zero remainder, got %v", rem)
	}
}

func TestDivideByVanishingBelowDegree(t *testing.T) {
	a := elems(1, 2, 3)
	q, rem := DivideByVanishing(a, 8)
	if Degree(q) != -1 {
		t.Fatalf("expected zero quotient, got %v", q)
	}
	if !Equal(rem, a) {
		t.Fatalf("expected remainder to equal input, got %v", rem)
	}
}
