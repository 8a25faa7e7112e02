// Package ntt implements the number-theoretic transform and NTT-based
// polynomial multiplication over the BN254 scalar field, the finite-field
// analogue of the FFT used by the commitment scheme's evaluation domains.
package ntt

import (
	"errors"
	"math/big"
	"math/bits"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"

	"github.com/feilinlp/ntt-kzg-piop/poly"
)

var (
	// ErrInvalidSize is returned when an NTT argument's length is not a
	// power of two.
	ErrInvalidSize = errors.New("ntt: size is not a power of two")
	// ErrInvalidRoot is returned when the supplied omega is not a
	// primitive N-th root of unity for the requested N.
	ErrInvalidRoot = errors.New("ntt: omega is not a primitive root of the required order")
)

// FindPrimitiveRoot returns a primitive N-th root of unity omega, i.e.
// omega^N = 1 and omega^(N/2) = -1. N must be a power of two dividing
// p-1, where p is the field modulus. Candidates g = 2, 3, 4, ... are
// tried in order until one satisfies both conditions.
func FindPrimitiveRoot(n uint64) (fr.Element, error) {
	if n == 0 || n&(n-1) != 0 {
		return fr.Element{}, ErrInvalidSize
	}

	order := new(big.Int).Sub(fr.Modulus(), big.NewInt(1))
	exp := new(big.Int).Div(order, new(big.Int).SetUint64(n))

	half := n / 2
	var one, minusOne fr.Element
	one.SetOne()
	minusOne.Neg(&one)

	for g := uint64(2); ; g++ {
		var base, omega, tmp fr.Element
		base.SetUint64(g)
		omega.Exp(base, exp)

		tmp.Exp(omega, new(big.Int).SetUint64(n))
		if !tmp.Equal(&one) {
			continue
		}
		if half > 0 {
			tmp.Exp(omega, new(big.Int).SetUint64(half))
			if !tmp.Equal(&minusOne) {
				continue
			}
		}
		return omega, nil
	}
}

func bitReverse(x uint64, logN uint) uint64 {
	var res uint64
	for i := uint(0); i < logN; i++ {
		res <<= 1
		res |= (x >> i) & 1
	}
	return res
}

// Transform performs an in-place Cooley-Tukey NTT on A using omega, a
// primitive len(A)-th root of unity. len(A) must be a power of two.
func Transform(a []fr.Element, omega fr.Element) error {
	n := len(a)
	if n == 0 || n&(n-1) != 0 {
		return ErrInvalidSize
	}
	logN := uint(bits.Len(uint(n)) - 1)

	for i := uint64(0); i < uint64(n); i++ {
		j := bitReverse(i, logN)
		if i < j {
			a[i], a[j] = a[j], a[i]
		}
	}

	for length := 2; length <= n; length <<= 1 {
		var wLen fr.Element
		wLen.Exp(omega, big.NewInt(int64(n/length)))

		for i := 0; i < n; i += length {
			var w fr.Element
			w.SetOne()
			half := length / 2
			for j := 0; j < half; j++ {
				u := a[i+j]
				var v fr.Element
				v.Mul(&a[i+j+half], &w)

				a[i+j].Add(&u, &v)
				a[i+j+half].Sub(&u, &v)
				w.Mul(&w, &wLen)
			}
		}
	}
	return nil
}

// Inverse undoes Transform: it runs the forward transform with omega^-1
// and scales every element by N^-1.
func Inverse(a []fr.Element, omega fr.Element) error {
	n := len(a)
	var omegaInv fr.Element
	omegaInv.Inverse(&omega)
	if err := Transform(a, omegaInv); err != nil {
		return err
	}

	var nInv fr.Element
	nInv.SetUint64(uint64(n))
	nInv.Inverse(&nInv)
	for i := range a {
		a[i].Mul(&a[i], &nInv)
	}
	return nil
}

// Interpolate recovers polynomial coefficients from evaluations at the
// N-th roots of unity omega^0, ..., omega^(N-1). It is a thin wrapper over
// Inverse that leaves the input untouched.
func Interpolate(evals []fr.Element, omega fr.Element) (poly.Polynomial, error) {
	out := make([]fr.Element, len(evals))
	copy(out, evals)
	if err := Inverse(out, omega); err != nil {
		return nil, err
	}
	return poly.Polynomial(out), nil
}

// Multiply computes the product of polynomials A and B via NTT: both
// operands are zero-padded to the next power of two N >= len(A)+len(B),
// forward-transformed, multiplied pointwise and inverse-transformed. omega
// must be a primitive N-th root of unity for that padded size N; callers
// that don't already have one can obtain it from FindPrimitiveRoot(N). The
// result has length N; trim trailing zeros with poly.Normalize if needed.
func Multiply(a, b []fr.Element, omega fr.Element) (poly.Polynomial, error) {
	n := 1
	for n < len(a)+len(b) {
		n <<= 1
	}

	var check, one, minusOne fr.Element
	one.SetOne()
	minusOne.Neg(&one)

	check.Exp(omega, big.NewInt(int64(n)))
	if !check.Equal(&one) {
		return nil, ErrInvalidRoot
	}
	if n > 1 {
		check.Exp(omega, big.NewInt(int64(n/2)))
		if !check.Equal(&minusOne) {
			return nil, ErrInvalidRoot
		}
	}

	paddedA := make([]fr.Element, n)
	paddedB := make([]fr.Element, n)
	copy(paddedA, a)
	copy(paddedB, b)

	if err := Transform(paddedA, omega); err != nil {
		return nil, err
	}
	if err := Transform(paddedB, omega); err != nil {
		return nil, err
	}

	result := make([]fr.Element, n)
	for i := range result {
		result[i].Mul(&paddedA[i], &paddedB[i])
	}

	if err := Inverse(result, omega); err != nil {
		return nil, err
	}
	return poly.Polynomial(result), nil
}
