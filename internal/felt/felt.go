// Package felt provides canonical byte encodings for field and group
// elements. It exists so the protocols that feed the Fiat-Shamir
// transcript (packages zerotest and sumcheck, see package transcript) have
// one stable way to turn a commitment into bytes; it holds no state and
// touches no disk, unlike the
// gob-based circuit serialization this package was adapted from.
package felt

import (
	"github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// Scalar returns the canonical big-endian byte encoding of a field element.
func Scalar(x fr.Element) []byte {
	b := x.Bytes()
	return b[:]
}

// G1 returns the compressed byte encoding of a G1 point.
func G1(p bn254.G1Affine) []byte {
	b := p.Bytes()
	return b[:]
}

// G2 returns the compressed byte encoding of a G2 point.
func G2(p bn254.G2Affine) []byte {
	b := p.Bytes()
	return b[:]
}
