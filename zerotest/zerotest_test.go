package zerotest

import (
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"

	"github.com/feilinlp/ntt-kzg-piop/kzg"
	"github.com/feilinlp/ntt-kzg-piop/ntt"
	"github.com/feilinlp/ntt-kzg-piop/poly"
)

func elems(vals ...int64) poly.Polynomial {
	p := make(poly.Polynomial, len(vals))
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

func TestZeroTestXToTheFourMinusOne(t *testing.T) {
	pk, err := kzg.Setup(8)
	if err != nil {
		t.Fatalf("Setup: %v", err)
	}
	omega, err := ntt.FindPrimitiveRoot(4)
	if err != nil {
		t.Fatalf("FindPrimitiveRoot: %v", err)
	}

	// q(x) = x^4 - 1
	q := elems(-1, 0, 0, 0, 1)

	ok, err := Test(pk, q, omega, 4)
	if err != nil {
		t.Fatalf("Test: %v", err)
	}
	if !ok {
		t.Fatalf("expected ZeroTest to accept q(x) = x^4 - 1 on a subgroup of order 4")
	}
}

func TestZeroTestRejectsNonVanishingConstant(t *testing.T) {
	pk, err := kzg.Setup(8)
	if err != nil {
		t.Fatalf("Setup: %v", err)
	}
	omega, err := ntt.FindPrimitiveRoot(4)
	if err != nil {
		t.Fatalf("FindPrimitiveRoot: %v", err)
	}

	// q(x) = 1
	q := elems(1)

	_, err = Prove(pk, q, omega, 4)
	if err != ErrNotVanishing {
		t.Fatalf("expected ErrNotVanishing, got %v", err)
	}
}
