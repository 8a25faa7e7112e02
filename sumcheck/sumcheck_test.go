package sumcheck

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

// q(x) = x^4 - 1 + 5 = 4 + 0x + 0x^2 + 0x^3 + x^4. Over H of order 4 the
// x^4-1 part sums to zero, leaving l * 5 = 20.
func TestSumCheckAcceptsCorrectSum(t *testing.T) {
	pk, err := kzg.Setup(8)
	if err != nil {
		t.Fatalf("Setup: %v", err)
	}
	omega, err := ntt.FindPrimitiveRoot(4)
	if err != nil {
		t.Fatalf("FindPrimitiveRoot: %v", err)
	}

	q := elems(4, 0, 0, 0, 1)
	var s fr.Element
	s.SetUint64(20)

	ok, err := Test(pk, q, omega, 4, s)
	if err != nil {
		t.Fatalf("Test: %v", err)
	}
	if !ok {
		t.Fatalf("expected SumCheck to accept s = 20")
	}
}

func TestSumCheckRejectsWrongSum(t *testing.T) {
	pk, err := kzg.Setup(8)
	if err != nil {
		t.Fatalf("Setup: %v", err)
	}
	omega, err := ntt.FindPrimitiveRoot(4)
	if err != nil {
		t.Fatalf("FindPrimitiveRoot: %v", err)
	}

	q := elems(4, 0, 0, 0, 1)
	var s fr.Element
	s.SetUint64(21)

	ok, err := Test(pk, q, omega, 4, s)
	if err != nil {
		// A BadRemainder failure is an acceptable rejection outcome too.
		return
	}
	if ok {
		t.Fatalf("expected SumCheck to reject s = 21")
	}
}
