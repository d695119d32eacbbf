// Package pairingacc implements the Vitto-Biryukov dynamic membership
// accumulator over a Type-III bilinear group, as used by the
// accumulator-only (Derler-style) signature scheme.
//
// acc = g1^{ Prod_{s in S} (H(s)+x) }, witness for s is g1^{acc-exponent /
// (H(s)+x)}. Removing a member from the published witness map does not
// change acc, which is what makes redaction possible without re-signing.
package pairingacc

import (
	"errors"
	"math/big"

	"github.com/AUKUS561/redsig/gpairing"
	"github.com/fentec-project/bn256"
)

// PublicKey is (g2, g2^x); g1 is the fixed group generator, not per-key.
type PublicKey struct {
	G2  *bn256.G2
	G2X *bn256.G2
}

// SecretKey is the accumulator trapdoor x.
type SecretKey struct {
	X *big.Int
}

// KeyGen samples x and publishes (g2, g2^x).
func KeyGen() (*PublicKey, *SecretKey, error) {
	x, err := gpairing.RandomScalar()
	if err != nil {
		return nil, nil, err
	}
	g2 := gpairing.G2Generator()
	g2x := new(bn256.G2).ScalarMult(g2, x)
	return &PublicKey{G2: g2, G2X: g2x}, &SecretKey{X: x}, nil
}

// exponent returns H(s)+x mod p.
func exponent(sk *SecretKey, member string) *big.Int {
	h := gpairing.HashToScalar([]byte(member))
	e := new(big.Int).Add(h, sk.X)
	return e.Mod(e, gpairing.Order())
}

// Eval accumulates S into acc = g1^{ Prod (H(s)+x) }.
func Eval(sk *SecretKey, members []string) (*bn256.G1, error) {
	phi := big.NewInt(1)
	p := gpairing.Order()
	for _, m := range members {
		phi.Mul(phi, exponent(sk, m))
		phi.Mod(phi, p)
	}
	return new(bn256.G1).ScalarMult(gpairing.G1Generator(), phi), nil
}

// Witness computes w_s = acc^{(H(s)+x)^{-1}} for a member of the accumulated
// set. Requires the secret key, matching the scheme's trust assumption that
// witnesses are only ever produced by (or redacted by a holder who already
// received them from) the signer.
func Witness(sk *SecretKey, acc *bn256.G1, member string) (*bn256.G1, error) {
	e := exponent(sk, member)
	inv := new(big.Int).ModInverse(e, gpairing.Order())
	if inv == nil {
		return nil, errors.New("pairingacc: non-invertible exponent (H(member)+x = 0)")
	}
	return new(bn256.G1).ScalarMult(gpairing.CloneG1(acc), inv), nil
}

// Verify checks e(w_s, g2^{H(s)+x}) = e(acc, g2), computing the left side as
// e(w_s, g2^{H(s)} * g2^x) and comparing the two GT values for equality.
func Verify(pk *PublicKey, acc, witness *bn256.G1, member string) bool {
	if pk == nil || acc == nil || witness == nil {
		return false
	}
	h := gpairing.HashToScalar([]byte(member))
	g2h := new(bn256.G2).ScalarMult(gpairing.CloneG2(pk.G2), h)
	exp := new(bn256.G2).Add(g2h, gpairing.CloneG2(pk.G2X))

	lhs := bn256.Pair(gpairing.CloneG1(witness), exp)
	rhs := bn256.Pair(gpairing.CloneG1(acc), pk.G2)
	return gpairing.GTEqual(lhs, rhs)
}
