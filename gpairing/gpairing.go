// Package gpairing abstracts the Type-III bilinear group (G1, G2, GT, e, Zr)
// used by the pairing accumulator. It wraps github.com/fentec-project/bn256,
// collecting the repeated generator/sampling/clone incantations into one
// place instead of inlining them in every caller.
package gpairing

import (
	"crypto/sha256"
	"math/big"

	"github.com/fentec-project/bn256"
	"github.com/fentec-project/gofe/sample"
)

// Order is the prime order p of G1, G2 and GT (the scalar field Zr).
func Order() *big.Int {
	return new(big.Int).Set(bn256.Order)
}

// RandomScalar samples x uniformly from [1, Order).
func RandomScalar() (*big.Int, error) {
	sampler := sample.NewUniformRange(big.NewInt(1), bn256.Order)
	return sampler.Sample()
}

// HashToScalar deterministically maps arbitrary bytes into Zr.
func HashToScalar(data []byte) *big.Int {
	h := sha256.Sum256(data)
	x := new(big.Int).SetBytes(h[:])
	return x.Mod(x, bn256.Order)
}

// G1Generator returns the standard generator of G1.
func G1Generator() *bn256.G1 {
	return new(bn256.G1).ScalarBaseMult(big.NewInt(1))
}

// G2Generator returns the standard generator of G2.
func G2Generator() *bn256.G2 {
	return new(bn256.G2).ScalarBaseMult(big.NewInt(1))
}

// CloneG1 duplicates a G1 element via a marshal/unmarshal round trip so that
// in-place scalar multiplication on the clone never corrupts the original.
// bn256's group elements are mutable, so callers that feed the same element
// into more than one pairing equation must clone first.
func CloneG1(p *bn256.G1) *bn256.G1 {
	c := new(bn256.G1)
	if _, ok := c.Unmarshal(p.Marshal()); !ok {
		panic("gpairing: corrupt G1 element")
	}
	return c
}

// CloneG2 is the G2 analogue of CloneG1.
func CloneG2(p *bn256.G2) *bn256.G2 {
	c := new(bn256.G2)
	if _, ok := c.Unmarshal(p.Marshal()); !ok {
		panic("gpairing: corrupt G2 element")
	}
	return c
}

// GTEqual compares two GT elements for equality. bn256.GT has no exported
// equality method, so comparison goes through Marshal.
func GTEqual(a, b *bn256.GT) bool {
	am, bm := a.Marshal(), b.Marshal()
	if len(am) != len(bm) {
		return false
	}
	for i := range am {
		if am[i] != bm[i] {
			return false
		}
	}
	return true
}
