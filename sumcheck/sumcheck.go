// Package sumcheck implements the SumCheck protocol: a succinct proof that
// a committed polynomial sums to a claimed value over a multiplicative
// subgroup H, built on the same KZG + vanishing-division machinery as
// package zerotest.
package sumcheck

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"

	"github.com/feilinlp/ntt-kzg-piop/internal/felt"
	"github.com/feilinlp/ntt-kzg-piop/kzg"
	"github.com/feilinlp/ntt-kzg-piop/poly"
	"github.com/feilinlp/ntt-kzg-piop/transcript"
)

// ErrNotVanishing is returned when q - s/l does not decompose against the
// vanishing polynomial as required (mirrors zerotest.ErrNotVanishing but
// kept distinct per package so each package's sentinel errors are
// self-contained).
var ErrNotVanishing = errors.New("sumcheck: decomposition is not divisible by the vanishing polynomial")

// ErrBadRemainder is returned when the low-order remainder left by
// DivideByVanishing has a non-zero constant term or degree >= l.
var ErrBadRemainder = errors.New("sumcheck: remainder violates the sum-check decomposition invariant")

// Proof is everything a verifier needs to check the claimed sum s at the
// time the proof was produced.
type Proof struct {
	CF kzg.Commitment
	CQ kzg.Commitment
	CP kzg.Commitment
	R  fr.Element
	FR fr.Element
	QR fr.Element
	PR fr.Element
	S  fr.Element
	WF *kzg.Witness
	WQ *kzg.Witness
	WP *kzg.Witness
}

// Prove proves that Sum_{h in H} q(h) = s, for H = <omega> of order l.
//
// It forms g(x) = q(x) - s/l, divides by the vanishing polynomial of H to
// get quotient f and a low-order remainder, checks the remainder vanishes
// at its constant term and has degree < l, extracts p(x) from the
// remainder with its constant term dropped (so x*p(x) equals the
// remainder), commits to f, q and p, derives the challenge via
// Fiat-Shamir, and opens all three at it.
func Prove(pk *kzg.PublicKey, q poly.Polynomial, omega fr.Element, l uint64, s fr.Element) (*Proof, error) {
	var lInv, sOverL fr.Element
	lInv.SetUint64(l)
	lInv.Inverse(&lInv)
	sOverL.Mul(&s, &lInv)

	g := poly.Clone(poly.Normalize(q))
	if len(g) == 0 {
		g = make(poly.Polynomial, 1)
	}
	g[0].Sub(&g[0], &sOverL)
	g = poly.Normalize(g)

	f, remainder := poly.DivideByVanishing(g, l)
	if len(remainder) > int(l) {
		return nil, ErrNotVanishing
	}
	if len(remainder) == 0 {
		remainder = make(poly.Polynomial, 1)
	}
	if !remainder[0].IsZero() {
		return nil, ErrBadRemainder
	}
	if poly.Degree(remainder) >= int(l) {
		return nil, ErrBadRemainder
	}

	p := make(poly.Polynomial, 0)
	if len(remainder) > 1 {
		p = poly.Clone(remainder[1:])
	}

	cf, err := kzg.Commit(pk, f)
	if err != nil {
		return nil, fmt.Errorf("sumcheck: committing quotient: %w", err)
	}
	cq, err := kzg.Commit(pk, q)
	if err != nil {
		return nil, fmt.Errorf("sumcheck: committing polynomial: %w", err)
	}
	cp, err := kzg.Commit(pk, p)
	if err != nil {
		return nil, fmt.Errorf("sumcheck: committing remainder quotient: %w", err)
	}

	r := transcript.Challenge("sumcheck", felt.G1(cf), felt.G1(cq), felt.G1(cp))

	wf, err := kzg.CreateWitness(pk, f, r)
	if err != nil {
		return nil, fmt.Errorf("sumcheck: opening quotient: %w", err)
	}
	wq, err := kzg.CreateWitness(pk, q, r)
	if err != nil {
		return nil, fmt.Errorf("sumcheck: opening polynomial: %w", err)
	}
	wp, err := kzg.CreateWitness(pk, p, r)
	if err != nil {
		return nil, fmt.Errorf("sumcheck: opening remainder quotient: %w", err)
	}

	return &Proof{
		CF: cf, CQ: cq, CP: cp,
		R:  r,
		FR: wf.Qi, QR: wq.Qi, PR: wp.Qi,
		S:  s,
		WF: wf, WQ: wq, WP: wp,
	}, nil
}

// Verify accepts iff all three openings verify and
// q(r) = f(r)*(r^l - 1) + s/l + r*p(r).
func Verify(pk *kzg.PublicKey, l uint64, proof *Proof) bool {
	if !kzg.VerifyEval(pk, proof.CF, proof.R, proof.FR, proof.WF) {
		return false
	}
	if !kzg.VerifyEval(pk, proof.CQ, proof.R, proof.QR, proof.WQ) {
		return false
	}
	if !kzg.VerifyEval(pk, proof.CP, proof.R, proof.PR, proof.WP) {
		return false
	}

	var lInv, sOverL fr.Element
	lInv.SetUint64(l)
	lInv.Inverse(&lInv)
	sOverL.Mul(&proof.S, &lInv)

	var rl, one, vanish, term1, term2, rhs fr.Element
	one.SetOne()
	rl.Exp(proof.R, new(big.Int).SetUint64(l))
	vanish.Sub(&rl, &one)

	term1.Mul(&proof.FR, &vanish)
	term2.Mul(&proof.R, &proof.PR)

	rhs.Add(&term1, &sOverL)
	rhs.Add(&rhs, &term2)

	return proof.QR.Equal(&rhs)
}

// Test composes Prove and Verify into a single non-interactive procedure.
func Test(pk *kzg.PublicKey, q poly.Polynomial, omega fr.Element, l uint64, s fr.Element) (bool, error) {
	p, err := Prove(pk, q, omega, l, s)
	if err != nil {
		return false, err
	}
	return Verify(pk, l, p), nil
}
