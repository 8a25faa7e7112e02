// Package transcript derives the verifier's random challenge
// non-interactively via the Fiat-Shamir heuristic, resolving the Open
// Question spec.md §9 leaves pluggable: rather than sampling r from a
// CSPRNG shared by prover and verifier (the source's interactive
// shortcut), r is squeezed from a SHAKE-256 duplex absorbing a label and
// the byte encoding of every commitment sent so far. This is grounded on
// JonasLazardGIT-SPRUCE/PIOP/fs_helpers.go's Shake256XOF, simplified: no
// grinding counter is needed since ZeroTest/SumCheck don't bound an
// adversary's proof-of-work budget, only bind the challenge to the
// transcript.
package transcript

import (
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"golang.org/x/crypto/sha3"
)

// squeezeBytes is the number of bytes drawn from the SHAKE-256 duplex
// before reducing modulo the scalar field order. Oversampling relative to
// the 32-byte field size keeps the reduction's statistical bias
// negligible.
const squeezeBytes = 64

// Challenge derives a field element deterministically from label and the
// ordered transcript parts (typically the byte encodings of the
// commitments a prover has sent so far, from package internal/felt).
// Calling it twice with the same arguments always yields the same
// challenge — callers that need domain separation between rounds must
// vary the label or include more parts.
func Challenge(label string, parts ...[]byte) fr.Element {
	h := sha3.NewShake256()
	_, _ = h.Write([]byte(label))
	for _, p := range parts {
		_, _ = h.Write(p)
	}

	digest := make([]byte, squeezeBytes)
	_, _ = h.Read(digest)

	var r fr.Element
	asBig := new(big.Int).SetBytes(digest)
	asBig.Mod(asBig, fr.Modulus())
	r.SetBigInt(asBig)
	return r
}
