// Package ecsig is the EC signature primitive used by every scheme to
// bind the accumulator value (and, for the large-universe scheme, the
// reconstructed policy secret) into one verifiable object: SHA-256 over
// a NIST P-256 curve.
package ecsig

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/sha256"
	"encoding/asn1"
	"errors"
	"math/big"
)

// Curve is the curve every key and signature in this package uses.
func Curve() elliptic.Curve {
	return elliptic.P256()
}

// GenerateKey produces a fresh P-256 signing key.
func GenerateKey() (*ecdsa.PrivateKey, error) {
	return ecdsa.GenerateKey(Curve(), rand.Reader)
}

type ecdsaSignature struct {
	R, S *big.Int
}

// Sign hashes msg with SHA-256 and produces a DER-encoded, low-S-normalized
// ECDSA signature (the low-S normalization mirrors hyperledger-fabric's
// pkg/config/signer.go, which does the same to keep signatures canonical).
func Sign(sk *ecdsa.PrivateKey, msg []byte) ([]byte, error) {
	digest := sha256.Sum256(msg)
	r, s, err := ecdsa.Sign(rand.Reader, sk, digest[:])
	if err != nil {
		return nil, err
	}
	sig := toLowS(sk.PublicKey, ecdsaSignature{R: r, S: s})
	return asn1.Marshal(sig)
}

// Verify checks a DER-encoded ECDSA signature over SHA-256(msg).
func Verify(pk *ecdsa.PublicKey, msg, sig []byte) bool {
	var parsed ecdsaSignature
	if rest, err := asn1.Unmarshal(sig, &parsed); err != nil || len(rest) != 0 {
		return false
	}
	if parsed.R == nil || parsed.S == nil {
		return false
	}
	digest := sha256.Sum256(msg)
	return ecdsa.Verify(pk, digest[:], parsed.R, parsed.S)
}

// toLowS normalizes s to at most half the curve order, protecting against
// signature malleability.
func toLowS(key ecdsa.PublicKey, sig ecdsaSignature) ecdsaSignature {
	halfOrder := new(big.Int).Rsh(key.Curve.Params().N, 1)
	if sig.S.Cmp(halfOrder) == 1 {
		sig.S = new(big.Int).Sub(key.Params().N, sig.S)
	}
	return sig
}

// ErrInvalidSignature names a malformed signature encoding, as distinct
// from a cryptographic mismatch. No function in this repository returns
// it: Verify never returns an error, only false.
var ErrInvalidSignature = errors.New("ecsig: invalid signature encoding")
