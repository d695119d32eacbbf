// Package keys defines the per-scheme signing/verification key material:
// factories over the accumulator packages and the EC signature
// primitive, plus DER (de)serialization of every key type.
package keys

import (
	"crypto/ecdsa"

	"github.com/AUKUS561/redsig/ecsig"
	"github.com/AUKUS561/redsig/pairingacc"
	"github.com/AUKUS561/redsig/rsaacc"
)

// SmallUniversePublicKey is the verification key for the small-universe
// scheme: an RSA accumulator public key plus the fixed universe.
type SmallUniversePublicKey struct {
	RSA      *rsaacc.PublicKey
	EC       *ecdsa.PublicKey
	Universe []string
}

// SmallUniverseSecretKey is the matching signing key.
type SmallUniverseSecretKey struct {
	RSA      *rsaacc.SecretKey
	EC       *ecdsa.PrivateKey
	Universe []string
}

// LargeUniversePublicKey is the verification key for the large-universe
// scheme. There is no fixed universe: policies name arbitrary strings.
type LargeUniversePublicKey struct {
	RSA *rsaacc.PublicKey
	EC  *ecdsa.PublicKey
}

// LargeUniverseSecretKey is the matching signing key.
type LargeUniverseSecretKey struct {
	RSA *rsaacc.SecretKey
	EC  *ecdsa.PrivateKey
}

// DerlerPublicKey is the verification key for the accumulator-only
// (Derler-style) scheme, built over the pairing accumulator.
type DerlerPublicKey struct {
	Pairing *pairingacc.PublicKey
	EC      *ecdsa.PublicKey
}

// DerlerSecretKey is the matching signing key.
type DerlerSecretKey struct {
	Pairing *pairingacc.SecretKey
	EC      *ecdsa.PrivateKey
}

// NewSmallUniverseKeyPair runs KeyGen for the small-universe scheme over a
// fixed universe (member at index i is universe[i]).
func NewSmallUniverseKeyPair(universe []string) (*SmallUniversePublicKey, *SmallUniverseSecretKey, error) {
	rsaPub, rsaSec, err := rsaacc.KeyGen()
	if err != nil {
		return nil, nil, err
	}
	ecSec, err := ecsig.GenerateKey()
	if err != nil {
		return nil, nil, err
	}
	u := append([]string{}, universe...)
	return &SmallUniversePublicKey{RSA: rsaPub, EC: &ecSec.PublicKey, Universe: u},
		&SmallUniverseSecretKey{RSA: rsaSec, EC: ecSec, Universe: u},
		nil
}

// NewLargeUniverseKeyPair runs KeyGen for the large-universe scheme.
func NewLargeUniverseKeyPair() (*LargeUniversePublicKey, *LargeUniverseSecretKey, error) {
	rsaPub, rsaSec, err := rsaacc.KeyGen()
	if err != nil {
		return nil, nil, err
	}
	ecSec, err := ecsig.GenerateKey()
	if err != nil {
		return nil, nil, err
	}
	return &LargeUniversePublicKey{RSA: rsaPub, EC: &ecSec.PublicKey},
		&LargeUniverseSecretKey{RSA: rsaSec, EC: ecSec},
		nil
}

// NewDerlerKeyPair runs KeyGen for the accumulator-only scheme.
func NewDerlerKeyPair() (*DerlerPublicKey, *DerlerSecretKey, error) {
	paPub, paSec, err := pairingacc.KeyGen()
	if err != nil {
		return nil, nil, err
	}
	ecSec, err := ecsig.GenerateKey()
	if err != nil {
		return nil, nil, err
	}
	return &DerlerPublicKey{Pairing: paPub, EC: &ecSec.PublicKey},
		&DerlerSecretKey{Pairing: paSec, EC: ecSec},
		nil
}
