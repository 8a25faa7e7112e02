// Package kzg implements the Kate-Zaverucha-Goldberg polynomial commitment
// scheme over BN254: a trusted-setup ceremony, constant-size commitments,
// constant-size opening witnesses and pairing-based verification.
package kzg

import (
	"errors"
	"math/big"
	"runtime"

	"github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"golang.org/x/sync/errgroup"

	"github.com/feilinlp/ntt-kzg-piop/poly"
)

// ErrDegreeTooLarge is returned when a polynomial's degree exceeds the
// setup's supported bound t.
var ErrDegreeTooLarge = errors.New("kzg: polynomial degree exceeds setup bound")

// PublicKey is the structured reference string produced by Setup. There
// exists a secret tau (destroyed once Setup returns) such that
// G1[i] = [tau^i]*G1_generator and G2[i] = [tau^i]*G2_generator for every
// i in [0, T]. T is the maximum supported polynomial degree.
type PublicKey struct {
	G1 []bn254.G1Affine
	G2 []bn254.G2Affine
	T  uint64
}

// Commitment is a single G1 point, [p(tau)]*G1_generator.
type Commitment = bn254.G1Affine

// Witness opens a commitment C to the evaluation p(I) = Qi: W is the
// commitment to the quotient q(x) = (p(x) - p(I)) / (x - I).
type Witness struct {
	I  fr.Element
	Qi fr.Element
	W  bn254.G1Affine
}

// Setup runs the trusted-setup ceremony for polynomials of degree up to t:
// it samples a secret tau uniformly via fr.Element.SetRandom and computes
// the powers-of-tau bases in G1 and G2. tau is never returned or
// retained — callers rely on this ceremony having been run honestly,
// exactly once, with the secret discarded afterwards.
func Setup(t uint64) (*PublicKey, error) {
	var tauElem fr.Element
	if _, err := tauElem.SetRandom(); err != nil {
		return nil, err
	}

	_, _, g1Gen, g2Gen := bn254.Generators()

	g1 := make([]bn254.G1Affine, t+1)
	g2 := make([]bn254.G2Affine, t+1)

	var power fr.Element
	power.SetOne()
	for i := uint64(0); i <= t; i++ {
		var powerBig big.Int
		power.BigInt(&powerBig)

		g1[i].ScalarMultiplication(&g1Gen, &powerBig)
		g2[i].ScalarMultiplication(&g2Gen, &powerBig)

		power.Mul(&power, &tauElem)
	}

	return &PublicKey{G1: g1, G2: g2, T: t}, nil
}

// Commit returns C = sum_i a_i * G1[i] = [p(tau)]*G1_generator. The empty
// polynomial commits to the identity of G1. Fails with ErrDegreeTooLarge
// when deg(p) > pk.T.
//
// The multi-scalar multiplication is split into runtime.GOMAXPROCS
// independent chunks accumulated concurrently via golang.org/x/sync's
// errgroup (spec.md §5 sanctions parallelizing Commit's MSM as long as the
// combination is order-independent; field/group addition is associative,
// so the partial Jacobian sums are folded back in a fixed order
// regardless of how many goroutines ran).
func Commit(pk *PublicKey, p poly.Polynomial) (Commitment, error) {
	p = poly.Normalize(p)
	if len(p) == 0 {
		var identity Commitment
		identity.X.SetZero()
		identity.Y.SetZero()
		return identity, nil
	}
	if uint64(len(p)-1) > pk.T {
		return Commitment{}, ErrDegreeTooLarge
	}

	workers := runtime.GOMAXPROCS(0)
	if workers > len(p) {
		workers = len(p)
	}
	if workers < 1 {
		workers = 1
	}
	chunk := (len(p) + workers - 1) / workers

	partials := make([]bn254.G1Jac, workers)
	var g errgroup.Group
	for w := 0; w < workers; w++ {
		start := w * chunk
		end := start + chunk
		if end > len(p) {
			end = len(p)
		}
		if start >= end {
			continue
		}
		w, start, end := w, start, end
		g.Go(func() error {
			var acc, base, term bn254.G1Jac
			var coeffBig big.Int
			for i := start; i < end; i++ {
				if p[i].IsZero() {
					continue
				}
				p[i].BigInt(&coeffBig)
				base.FromAffine(&pk.G1[i])
				term.ScalarMultiplication(&base, &coeffBig)
				acc.AddAssign(&term)
			}
			partials[w] = acc
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Commitment{}, err
	}

	var total bn254.G1Jac
	for _, part := range partials {
		total.AddAssign(&part)
	}
	var result Commitment
	result.FromJacobian(&total)
	return result, nil
}

// CreateWitness computes the KZG opening of p at i. It recomputes p(i)
// itself rather than trusting a caller-supplied value, forms
// r(x) = p(x) - p(i), and divides by the linear polynomial (x - i) via
// synthetic division: q[j-1] = r[j] + i*q[j] for j from deg(r) down to 1,
// with q[deg(r)] implicitly zero. Since i is always a root of r, the
// constant remainder is zero by construction.
func CreateWitness(pk *PublicKey, p poly.Polynomial, i fr.Element) (*Witness, error) {
	pi := poly.Evaluate(p, i)

	r := poly.Clone(poly.Normalize(p))
	if len(r) == 0 {
		r = make(poly.Polynomial, 1)
	}
	r[0].Sub(&r[0], &pi)
	r = poly.Normalize(r)

	q := syntheticDivideByLinear(r, i)

	c, err := Commit(pk, q)
	if err != nil {
		return nil, err
	}
	return &Witness{I: i, Qi: pi, W: c}, nil
}

// syntheticDivideByLinear divides r by (x - i) assuming i is a root of r.
func syntheticDivideByLinear(r poly.Polynomial, i fr.Element) poly.Polynomial {
	d := poly.Degree(r)
	if d <= 0 {
		return poly.Polynomial{}
	}

	q := make(poly.Polynomial, d)
	var acc fr.Element
	for j := d; j >= 1; j-- {
		q[j-1] = r[j]
		var term fr.Element
		term.Mul(&i, &acc)
		q[j-1].Add(&q[j-1], &term)
		acc = q[j-1]
	}
	return q
}

// VerifyEval checks the pairing equation
//
//	e(C - [qi]*G1_generator, G2_generator) = e(W.w, G2[1] - [i]*G2_generator)
//
// which holds iff (x - i) | (p(x) - qi), i.e. p(i) = qi. It never errors —
// only bool — per spec.md's propagation policy for pairing checks.
func VerifyEval(pk *PublicKey, c Commitment, i, qi fr.Element, w *Witness) bool {
	if len(pk.G2) < 2 {
		return false
	}

	_, _, g1Gen, g2Gen := bn254.Generators()

	var qiG1, negQiG1, lhs bn254.G1Affine
	qiG1.ScalarMultiplication(&g1Gen, qi.BigInt(new(big.Int)))
	negQiG1.Neg(&qiG1)
	lhs.Add(&c, &negQiG1)

	var iG2, negIG2, rhs bn254.G2Affine
	iG2.ScalarMultiplication(&g2Gen, i.BigInt(new(big.Int)))
	negIG2.Neg(&iG2)
	rhs.Add(&pk.G2[1], &negIG2)

	var negLhs bn254.G1Affine
	negLhs.Neg(&lhs)

	ok, err := bn254.PairingCheck(
		[]bn254.G1Affine{negLhs, w.W},
		[]bn254.G2Affine{g2Gen, rhs},
	)
	if err != nil {
		return false
	}
	return ok
}
