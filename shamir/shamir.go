// Package shamir implements classical (t,n) threshold secret sharing over a
// fixed prime field, and the Lagrange-at-zero reconstruction the policy
// package's AND/OR tree compiler builds on.
package shamir

import (
	"errors"
	"math/big"

	"github.com/fentec-project/gofe/sample"
)

// fieldBits is the size of the prime field shares live in. The modulus is
// the fixed 2048-bit safe prime of the RFC 7919 ffdhe2048 group, so shares
// written by one process reconstruct to the same secret in another.
const fieldBits = 2048

// Modulus is the prime field all shares and reconstructions operate over.
// It is parsed once at package initialization and never mutated.
var Modulus = mustParseFieldPrime()

func mustParseFieldPrime() *big.Int {
	p, ok := new(big.Int).SetString(
		"FFFFFFFFFFFFFFFFADF85458A2BB4A9AAFDC5620273D3CF1D8B9C583CE2D3695A9E13641146433FBCC939DCE249B3EF97D2FE363630C75D8F681B202AEC4617A"+
			"D3DF1ED5D5FD65612433F51F5F066ED0856365553DED1AF3B557135E7F57C935984F0C70E0E68B77E2A689DAF3EFE8721DF158A136ADE73530ACCA4F483A797A"+
			"BC0AB182B324FB61D108A94BB2C8E3FBB96ADAB760D7F4681D4F42A3DE394DF4AE56EDE76372BB190B07A7C8EE0A6D709E02FCE1CDF7E2ECC03404CD28342F61"+
			"9172FE9CE98583FF8E4F1232EEF28183C3FE3B1B4C6FAD733BB5FCBC2EC22005C58EF1837D1683B2C6F34A26C1B2EFFA886B423861285C97FFFFFFFFFFFFFFFF", 16)
	if !ok || p.BitLen() != fieldBits {
		panic("shamir: malformed field prime")
	}
	return p
}

// Share draws a random degree-(t-1) polynomial with constant term secret and
// returns the n points f(1)..f(n).
func Share(secret *big.Int, t, n int) (map[int]*big.Int, error) {
	if t < 1 || n < t {
		return nil, errors.New("shamir: invalid (t, n)")
	}
	coeffs := make([]*big.Int, t)
	coeffs[0] = new(big.Int).Mod(secret, Modulus)
	sampler := sample.NewUniform(Modulus)
	for i := 1; i < t; i++ {
		a, err := sampler.Sample()
		if err != nil {
			return nil, err
		}
		coeffs[i] = a
	}

	shares := make(map[int]*big.Int, n)
	for x := 1; x <= n; x++ {
		shares[x] = evalPoly(coeffs, big.NewInt(int64(x)))
	}
	return shares, nil
}

func evalPoly(coeffs []*big.Int, x *big.Int) *big.Int {
	result := big.NewInt(0)
	power := big.NewInt(1)
	tmp := new(big.Int)
	for _, c := range coeffs {
		tmp.Mul(c, power)
		result.Add(result, tmp)
		result.Mod(result, Modulus)
		power.Mul(power, x)
		power.Mod(power, Modulus)
	}
	return result
}

// Reconstruct performs Lagrange interpolation at X=0 over the given
// (x, y) points.
func Reconstruct(points map[int]*big.Int) *big.Int {
	result := big.NewInt(0)
	for xi, yi := range points {
		num := big.NewInt(1)
		den := big.NewInt(1)
		for xj := range points {
			if xj == xi {
				continue
			}
			// term = xj / (xj - xi)
			num.Mul(num, big.NewInt(int64(xj)))
			num.Mod(num, Modulus)
			d := new(big.Int).Sub(big.NewInt(int64(xj)), big.NewInt(int64(xi)))
			d.Mod(d, Modulus)
			den.Mul(den, d)
			den.Mod(den, Modulus)
		}
		denInv := new(big.Int).ModInverse(den, Modulus)
		lagrangeCoeff := new(big.Int).Mul(num, denInv)
		lagrangeCoeff.Mod(lagrangeCoeff, Modulus)

		term := new(big.Int).Mul(yi, lagrangeCoeff)
		term.Mod(term, Modulus)
		result.Add(result, term)
		result.Mod(result, Modulus)
	}
	return result
}

// ReconstructPoints is a convenience wrapper building the points map from
// parallel x/y pairs, used by callers (e.g. policy AND nodes) that only
// ever reconstruct from exactly two explicit shares.
func ReconstructPoints(xs []int, ys []*big.Int) *big.Int {
	points := make(map[int]*big.Int, len(xs))
	for i, x := range xs {
		points[x] = ys[i]
	}
	return Reconstruct(points)
}
