// Package piop is the facade over the engine: a System binds a KZG public
// key produced by a single trusted-setup ceremony and exposes the
// commitment primitives and the two protocols built on top of them,
// mirroring giuliop-AlgoPlonk's CompiledCircuit/Compile pattern so callers
// never thread the public key through every call by hand.
package piop

import (
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"

	"github.com/feilinlp/ntt-kzg-piop/kzg"
	"github.com/feilinlp/ntt-kzg-piop/poly"
	"github.com/feilinlp/ntt-kzg-piop/sumcheck"
	"github.com/feilinlp/ntt-kzg-piop/zerotest"
)

// System bundles a trusted-setup public key with the protocols that
// consume it.
type System struct {
	PK *kzg.PublicKey
}

// Setup runs the KZG trusted-setup ceremony for polynomials of degree up
// to t and returns a ready-to-use System.
func Setup(t uint64) (*System, error) {
	pk, err := kzg.Setup(t)
	if err != nil {
		return nil, err
	}
	return &System{PK: pk}, nil
}

// Commit commits to p under the system's public key.
func (s *System) Commit(p poly.Polynomial) (kzg.Commitment, error) {
	return kzg.Commit(s.PK, p)
}

// Open creates an opening witness for p at i.
func (s *System) Open(p poly.Polynomial, i fr.Element) (*kzg.Witness, error) {
	return kzg.CreateWitness(s.PK, p, i)
}

// VerifyEval checks an opening witness against a commitment.
func (s *System) VerifyEval(c kzg.Commitment, i, qi fr.Element, w *kzg.Witness) bool {
	return kzg.VerifyEval(s.PK, c, i, qi, w)
}

// ZeroTest proves and verifies, in one call, that q vanishes on the
// subgroup generated by omega of order l.
func (s *System) ZeroTest(q poly.Polynomial, omega fr.Element, l uint64) (bool, error) {
	return zerotest.Test(s.PK, q, omega, l)
}

// SumCheck proves and verifies, in one call, that q sums to s over the
// subgroup generated by omega of order l.
func (s *System) SumCheck(q poly.Polynomial, omega fr.Element, l uint64, sum fr.Element) (bool, error) {
	return sumcheck.Test(s.PK, q, omega, l, sum)
}
