// Package rsaacc implements the Baric-Pfitzmann accumulator over Z_n*,
// used by the large-universe and small-universe signature schemes.
// Membership is accumulated as products of hash-derived primes in the
// exponent; a witness for member s is the accumulation of every other
// member's prime, so verification is the single check w_s^{prime_s} == acc.
package rsaacc

import (
	"crypto/rand"
	"math/big"

	goerrors "github.com/go-errors/errors"

	"github.com/fentec-project/gofe/sample"
)

// keyBits is the bit length of each RSA accumulator prime factor.
const keyBits = 2048

// MillerRabinRounds is the probable-primality confidence used both for the
// modulus factors and for hash-to-prime.
const MillerRabinRounds = 10

// PublicKey is (g, n).
type PublicKey struct {
	G *big.Int
	N *big.Int
}

// SecretKey is (g, p, q); n = p*q is derived, not stored redundantly.
type SecretKey struct {
	G *big.Int
	P *big.Int
	Q *big.Int
}

// N returns p*q.
func (sk *SecretKey) N() *big.Int {
	return new(big.Int).Mul(sk.P, sk.Q)
}

// KeyGen samples two keyBits-sized probable primes p, q, sets n = pq, and
// picks g uniformly from (1, n).
func KeyGen() (*PublicKey, *SecretKey, error) {
	p, err := rand.Prime(rand.Reader, keyBits)
	if err != nil {
		return nil, nil, goerrors.Wrap(err, 0)
	}
	q, err := rand.Prime(rand.Reader, keyBits)
	if err != nil {
		return nil, nil, goerrors.Wrap(err, 0)
	}
	n := new(big.Int).Mul(p, q)

	sampler := sample.NewUniformRange(big.NewInt(2), n)
	g, err := sampler.Sample()
	if err != nil {
		return nil, nil, goerrors.Wrap(err, 0)
	}

	return &PublicKey{G: g, N: n}, &SecretKey{G: g, P: p, Q: q}, nil
}

// PrimeAux is the auxiliary data retained per accumulated member so that its
// witness can be recomputed without re-deriving the hash-to-prime mapping.
type PrimeAux struct {
	Prime   *big.Int
	Counter uint64
}

// sameMember reports whether two PrimeAux values name the same accumulated
// element: both the derived prime and the counter that produced it must
// match.
func sameMember(a, b PrimeAux) bool {
	return a.Counter == b.Counter && a.Prime.Cmp(b.Prime) == 0
}

// Eval accumulates members into acc = g^{ Prod primes } mod n, returning the
// per-member auxiliary data needed to later compute witnesses.
func Eval(pk *PublicKey, members []string) (acc *big.Int, aux []PrimeAux, err error) {
	aux = make([]PrimeAux, len(members))
	exp := big.NewInt(1)
	for i, m := range members {
		prime, counter, herr := HashToPrime(m)
		if herr != nil {
			return nil, nil, herr
		}
		aux[i] = PrimeAux{Prime: prime, Counter: counter}
		exp.Mul(exp, prime)
	}
	acc = new(big.Int).Exp(pk.G, exp, pk.N)
	return acc, aux, nil
}

// Witness computes w = g^{ Prod_{j != i} prime_j } mod n for the member at
// index i in aux.
func Witness(pk *PublicKey, aux []PrimeAux, i int) *big.Int {
	exp := big.NewInt(1)
	for j, a := range aux {
		if j == i {
			continue
		}
		exp.Mul(exp, a.Prime)
	}
	return new(big.Int).Exp(pk.G, exp, pk.N)
}

// WitnessExcluding computes g^{ Prod of every aux entry not equal to target
// } mod n, selecting the excluded member by value rather than by index. The
// signature schemes do not call it: their redaction drops witnesses and
// never recomputes them.
func WitnessExcluding(pk *PublicKey, aux []PrimeAux, target PrimeAux) *big.Int {
	exp := big.NewInt(1)
	for _, a := range aux {
		if sameMember(a, target) {
			continue
		}
		exp.Mul(exp, a.Prime)
	}
	return new(big.Int).Exp(pk.G, exp, pk.N)
}

// Verify checks w^{prime} == acc (mod n).
func Verify(pk *PublicKey, acc, witness, prime *big.Int) bool {
	if pk == nil || acc == nil || witness == nil || prime == nil {
		return false
	}
	lhs := new(big.Int).Exp(witness, prime, pk.N)
	return lhs.Cmp(acc) == 0
}
