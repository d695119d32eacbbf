// Package der provides the big-integer and DER encode/decode building
// blocks shared by the keys and schemes packages: encoding/asn1-based
// SEQUENCE/INTEGER/OCTET STRING/UTF8String helpers, plus the byte
// encodings the signature schemes hash into their EC-signature input.
package der

import (
	"encoding/asn1"
	"math/big"

	goerrors "github.com/go-errors/errors"
)

// IntBytes returns the minimal two's-complement big-endian encoding of a
// non-negative integer, used as ECDSA-signature input bytes.
// big.Int.Bytes returns the minimal unsigned big-endian form; a leading
// zero byte is added when its top bit is set, so the value still reads as
// non-negative. Zero encodes as the empty slice.
func IntBytes(x *big.Int) []byte {
	if x == nil {
		return nil
	}
	b := x.Bytes()
	if len(b) > 0 && b[0]&0x80 != 0 {
		b = append([]byte{0x00}, b...)
	}
	return b
}

// Wrap marshals v to DER and wraps the result as a RawValue so it can be
// embedded verbatim as a nested SEQUENCE inside a larger structure without
// encoding/asn1 needing to know its Go type.
func Wrap(v interface{}) (asn1.RawValue, error) {
	b, err := asn1.Marshal(v)
	if err != nil {
		return asn1.RawValue{}, goerrors.Wrap(err, 0)
	}
	var raw asn1.RawValue
	if _, err := asn1.Unmarshal(b, &raw); err != nil {
		return asn1.RawValue{}, goerrors.Wrap(err, 0)
	}
	return raw, nil
}

// Marshal is asn1.Marshal, re-exported so callers only need to import this
// package for the DER layer.
func Marshal(v interface{}) ([]byte, error) {
	b, err := asn1.Marshal(v)
	if err != nil {
		return nil, goerrors.Wrap(err, 0)
	}
	return b, nil
}

// Unmarshal is asn1.Unmarshal, re-exported for symmetry with Marshal, and
// requiring the whole input to be consumed (no trailing bytes), which every
// top-level key/signature decode in this repository relies on.
func Unmarshal(b []byte, v interface{}) error {
	rest, err := asn1.Unmarshal(b, v)
	if err != nil {
		return goerrors.Wrap(err, 0)
	}
	if len(rest) != 0 {
		return goerrors.Errorf("der: %d trailing bytes after DER value", len(rest))
	}
	return nil
}
