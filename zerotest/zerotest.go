// Package zerotest implements the ZeroTest protocol: a succinct proof that
// a committed polynomial vanishes on a multiplicative subgroup H, built on
// top of package kzg and package poly's vanishing-division.
package zerotest

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

// ErrNotVanishing is returned when the candidate polynomial does not
// vanish at every element of H.
var ErrNotVanishing = errors.New("zerotest: polynomial does not vanish on H")

// Proof is everything a verifier needs to check that q vanished on H at
// the time it was produced: the two commitments, the challenge and the
// claimed evaluations at it, and the two opening witnesses.
type Proof struct {
	CF kzg.Commitment
	CQ kzg.Commitment
	R  fr.Element
	FR fr.Element
	QR fr.Element
	WF *kzg.Witness
	WQ *kzg.Witness
}

// Prove checks that q vanishes on H = <omega> of order l, computes the
// quotient f = q / (x^l - 1), commits to both, derives the challenge r via
// Fiat-Shamir over (C_f, C_q), and opens both polynomials at r.
func Prove(pk *kzg.PublicKey, q poly.Polynomial, omega fr.Element, l uint64) (*Proof, error) {
	h := make([]fr.Element, l)
	h[0].SetOne()
	for i := uint64(1); i < l; i++ {
		h[i].Mul(&h[i-1], &omega)
	}
	for _, hi := range h {
		v := poly.Evaluate(q, hi)
		if !v.IsZero() {
			return nil, ErrNotVanishing
		}
	}

	f, remainder := poly.DivideByVanishing(q, l)
	if len(remainder) != 0 {
		return nil, ErrNotVanishing
	}

	cf, err := kzg.Commit(pk, f)
	if err != nil {
		return nil, fmt.Errorf("zerotest: committing quotient: %w", err)
	}
	cq, err := kzg.Commit(pk, q)
	if err != nil {
		return nil, fmt.Errorf("zerotest: committing polynomial: %w", err)
	}

	r := transcript.Challenge("zerotest", felt.G1(cf), felt.G1(cq))

	wf, err := kzg.CreateWitness(pk, f, r)
	if err != nil {
		return nil, fmt.Errorf("zerotest: opening quotient: %w", err)
	}
	wq, err := kzg.CreateWitness(pk, q, r)
	if err != nil {
		return nil, fmt.Errorf("zerotest: opening polynomial: %w", err)
	}

	return &Proof{
		CF: cf, CQ: cq,
		R:  r,
		FR: wf.Qi, QR: wq.Qi,
		WF: wf, WQ: wq,
	}, nil
}

// Verify accepts iff both openings verify and q(r) = f(r)*(r^l - 1).
func Verify(pk *kzg.PublicKey, l uint64, p *Proof) bool {
	if !kzg.VerifyEval(pk, p.CF, p.R, p.FR, p.WF) {
		return false
	}
	if !kzg.VerifyEval(pk, p.CQ, p.R, p.QR, p.WQ) {
		return false
	}

	var rl, one, vanish, rhs fr.Element
	one.SetOne()
	rl.Exp(p.R, new(big.Int).SetUint64(l))
	vanish.Sub(&rl, &one)
	rhs.Mul(&p.FR, &vanish)
	return p.QR.Equal(&rhs)
}

// Test composes Prove and Verify into the single non-interactive procedure
// this engine's Non-goals call for: no separate prover/verifier transport.
func Test(pk *kzg.PublicKey, q poly.Polynomial, omega fr.Element, l uint64) (bool, error) {
	p, err := Prove(pk, q, omega, l)
	if err != nil {
		return false, err
	}
	return Verify(pk, l, p), nil
}
