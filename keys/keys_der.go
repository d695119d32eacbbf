package keys

import (
	"crypto/ecdsa"
	"crypto/x509"
	"encoding/asn1"
	"errors"
	"math/big"

	"github.com/AUKUS561/redsig/der"
	"github.com/AUKUS561/redsig/gpairing"
	"github.com/AUKUS561/redsig/pairingacc"
	"github.com/AUKUS561/redsig/rsaacc"
	"github.com/fentec-project/bn256"
)

// DER layouts:
//
//	RSA accumulator public key:      SEQUENCE(INTEGER g, INTEGER n)
//	RSA accumulator private key:     SEQUENCE(INTEGER g, INTEGER p, INTEGER q)
//	Pairing accumulator public key:  SEQUENCE(OCTET STRING g, OCTET STRING pk)
//	Pairing accumulator private key: SEQUENCE(OCTET STRING g, OCTET STRING sk)
//	Signing key:                     SEQUENCE(accKey, ecPrivateKey as PKCS8)
//	Verification key:                SEQUENCE(accKey, ecPublicKey as SubjectPublicKeyInfo)

var (
	errInvalidGroupElement = errors.New("keys: invalid group element in DER key")
	errNotECKey            = errors.New("keys: embedded public key is not an EC key")
)

type derRSAPub struct {
	G *big.Int
	N *big.Int
}

type derRSAPriv struct {
	G *big.Int
	P *big.Int
	Q *big.Int
}

type derPairingPub struct {
	G  []byte
	Pk []byte
}

type derPairingPriv struct {
	G  []byte
	Sk []byte
}

type derVerifyKey struct {
	AccKey asn1.RawValue
	EC     []byte
}

type derSigningKey struct {
	AccKey asn1.RawValue
	EC     []byte
}

func encodeRSAPub(pk *rsaacc.PublicKey) (asn1.RawValue, error) {
	return der.Wrap(derRSAPub{G: pk.G, N: pk.N})
}

func decodeRSAPub(raw asn1.RawValue) (*rsaacc.PublicKey, error) {
	var v derRSAPub
	if err := der.Unmarshal(raw.FullBytes, &v); err != nil {
		return nil, err
	}
	return &rsaacc.PublicKey{G: v.G, N: v.N}, nil
}

func encodeRSAPriv(sk *rsaacc.SecretKey) (asn1.RawValue, error) {
	return der.Wrap(derRSAPriv{G: sk.G, P: sk.P, Q: sk.Q})
}

func decodeRSAPriv(raw asn1.RawValue) (*rsaacc.SecretKey, error) {
	var v derRSAPriv
	if err := der.Unmarshal(raw.FullBytes, &v); err != nil {
		return nil, err
	}
	return &rsaacc.SecretKey{G: v.G, P: v.P, Q: v.Q}, nil
}

func encodePairingPub(pk *pairingacc.PublicKey) (asn1.RawValue, error) {
	return der.Wrap(derPairingPub{G: pk.G2.Marshal(), Pk: pk.G2X.Marshal()})
}

func decodePairingPub(raw asn1.RawValue) (*pairingacc.PublicKey, error) {
	var v derPairingPub
	if err := der.Unmarshal(raw.FullBytes, &v); err != nil {
		return nil, err
	}
	g2 := new(bn256.G2)
	if _, ok := g2.Unmarshal(v.G); !ok {
		return nil, errInvalidGroupElement
	}
	g2x := new(bn256.G2)
	if _, ok := g2x.Unmarshal(v.Pk); !ok {
		return nil, errInvalidGroupElement
	}
	return &pairingacc.PublicKey{G2: g2, G2X: g2x}, nil
}

func encodePairingPriv(sk *pairingacc.SecretKey) (asn1.RawValue, error) {
	return der.Wrap(derPairingPriv{G: gpairing.G2Generator().Marshal(), Sk: der.IntBytes(sk.X)})
}

func decodePairingPriv(raw asn1.RawValue) (*pairingacc.SecretKey, error) {
	var v derPairingPriv
	if err := der.Unmarshal(raw.FullBytes, &v); err != nil {
		return nil, err
	}
	g2 := new(bn256.G2)
	if _, ok := g2.Unmarshal(v.G); !ok {
		return nil, errInvalidGroupElement
	}
	x := new(big.Int).SetBytes(v.Sk)
	return &pairingacc.SecretKey{X: x}, nil
}

func encodeRSAVerifyKey(rsaPub *rsaacc.PublicKey, ecPub *ecdsa.PublicKey) ([]byte, error) {
	accKey, err := encodeRSAPub(rsaPub)
	if err != nil {
		return nil, err
	}
	ecBytes, err := x509.MarshalPKIXPublicKey(ecPub)
	if err != nil {
		return nil, err
	}
	return der.Marshal(derVerifyKey{AccKey: accKey, EC: ecBytes})
}

func decodeRSAVerifyKey(b []byte) (*rsaacc.PublicKey, *ecdsa.PublicKey, error) {
	var v derVerifyKey
	if err := der.Unmarshal(b, &v); err != nil {
		return nil, nil, err
	}
	rsaPub, err := decodeRSAPub(v.AccKey)
	if err != nil {
		return nil, nil, err
	}
	ecAny, err := x509.ParsePKIXPublicKey(v.EC)
	if err != nil {
		return nil, nil, err
	}
	ecPub, ok := ecAny.(*ecdsa.PublicKey)
	if !ok {
		return nil, nil, errNotECKey
	}
	return rsaPub, ecPub, nil
}

func encodeRSASignKey(rsaSec *rsaacc.SecretKey, ecSec *ecdsa.PrivateKey) ([]byte, error) {
	accKey, err := encodeRSAPriv(rsaSec)
	if err != nil {
		return nil, err
	}
	ecBytes, err := x509.MarshalPKCS8PrivateKey(ecSec)
	if err != nil {
		return nil, err
	}
	return der.Marshal(derSigningKey{AccKey: accKey, EC: ecBytes})
}

func decodeRSASignKey(b []byte) (*rsaacc.SecretKey, *ecdsa.PrivateKey, error) {
	var v derSigningKey
	if err := der.Unmarshal(b, &v); err != nil {
		return nil, nil, err
	}
	rsaSec, err := decodeRSAPriv(v.AccKey)
	if err != nil {
		return nil, nil, err
	}
	ecAny, err := x509.ParsePKCS8PrivateKey(v.EC)
	if err != nil {
		return nil, nil, err
	}
	ecSec, ok := ecAny.(*ecdsa.PrivateKey)
	if !ok {
		return nil, nil, errNotECKey
	}
	return rsaSec, ecSec, nil
}

// EncodeSmallUniverseVerifyKey / EncodeLargeUniverseVerifyKey produce the
// same DER shape (both accumulator keys are RSA accumulator keys); the
// universe for the small-universe scheme is not part of the DER body, it
// travels alongside the key file as a separate path instead.

func EncodeSmallUniverseVerifyKey(pk *SmallUniversePublicKey) ([]byte, error) {
	return encodeRSAVerifyKey(pk.RSA, pk.EC)
}

func DecodeSmallUniverseVerifyKey(b []byte, universe []string) (*SmallUniversePublicKey, error) {
	rsaPub, ecPub, err := decodeRSAVerifyKey(b)
	if err != nil {
		return nil, err
	}
	return &SmallUniversePublicKey{RSA: rsaPub, EC: ecPub, Universe: universe}, nil
}

func EncodeSmallUniverseSignKey(sk *SmallUniverseSecretKey) ([]byte, error) {
	return encodeRSASignKey(sk.RSA, sk.EC)
}

func DecodeSmallUniverseSignKey(b []byte, universe []string) (*SmallUniverseSecretKey, error) {
	rsaSec, ecSec, err := decodeRSASignKey(b)
	if err != nil {
		return nil, err
	}
	return &SmallUniverseSecretKey{RSA: rsaSec, EC: ecSec, Universe: universe}, nil
}

func EncodeLargeUniverseVerifyKey(pk *LargeUniversePublicKey) ([]byte, error) {
	return encodeRSAVerifyKey(pk.RSA, pk.EC)
}

func DecodeLargeUniverseVerifyKey(b []byte) (*LargeUniversePublicKey, error) {
	rsaPub, ecPub, err := decodeRSAVerifyKey(b)
	if err != nil {
		return nil, err
	}
	return &LargeUniversePublicKey{RSA: rsaPub, EC: ecPub}, nil
}

func EncodeLargeUniverseSignKey(sk *LargeUniverseSecretKey) ([]byte, error) {
	return encodeRSASignKey(sk.RSA, sk.EC)
}

func DecodeLargeUniverseSignKey(b []byte) (*LargeUniverseSecretKey, error) {
	rsaSec, ecSec, err := decodeRSASignKey(b)
	if err != nil {
		return nil, err
	}
	return &LargeUniverseSecretKey{RSA: rsaSec, EC: ecSec}, nil
}

func EncodeDerlerVerifyKey(pk *DerlerPublicKey) ([]byte, error) {
	accKey, err := encodePairingPub(pk.Pairing)
	if err != nil {
		return nil, err
	}
	ecBytes, err := x509.MarshalPKIXPublicKey(pk.EC)
	if err != nil {
		return nil, err
	}
	return der.Marshal(derVerifyKey{AccKey: accKey, EC: ecBytes})
}

func DecodeDerlerVerifyKey(b []byte) (*DerlerPublicKey, error) {
	var v derVerifyKey
	if err := der.Unmarshal(b, &v); err != nil {
		return nil, err
	}
	paPub, err := decodePairingPub(v.AccKey)
	if err != nil {
		return nil, err
	}
	ecAny, err := x509.ParsePKIXPublicKey(v.EC)
	if err != nil {
		return nil, err
	}
	ecPub, ok := ecAny.(*ecdsa.PublicKey)
	if !ok {
		return nil, errNotECKey
	}
	return &DerlerPublicKey{Pairing: paPub, EC: ecPub}, nil
}

func EncodeDerlerSignKey(sk *DerlerSecretKey) ([]byte, error) {
	accKey, err := encodePairingPriv(sk.Pairing)
	if err != nil {
		return nil, err
	}
	ecBytes, err := x509.MarshalPKCS8PrivateKey(sk.EC)
	if err != nil {
		return nil, err
	}
	return der.Marshal(derSigningKey{AccKey: accKey, EC: ecBytes})
}

func DecodeDerlerSignKey(b []byte) (*DerlerSecretKey, error) {
	var v derSigningKey
	if err := der.Unmarshal(b, &v); err != nil {
		return nil, err
	}
	paSec, err := decodePairingPriv(v.AccKey)
	if err != nil {
		return nil, err
	}
	ecAny, err := x509.ParsePKCS8PrivateKey(v.EC)
	if err != nil {
		return nil, err
	}
	ecSec, ok := ecAny.(*ecdsa.PrivateKey)
	if !ok {
		return nil, errNotECKey
	}
	return &DerlerSecretKey{Pairing: paSec, EC: ecSec}, nil
}
