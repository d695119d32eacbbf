package schemes

import (
	"github.com/AUKUS561/redsig/der"
	"github.com/AUKUS561/redsig/ecsig"
	"github.com/AUKUS561/redsig/keys"
	"github.com/AUKUS561/redsig/pairingacc"
	"github.com/fentec-project/bn256"
)

// DerlerSignature is the accumulator-only scheme's signature object: no
// policy, just an accumulator value, a witness per member, and an ECDSA
// binding of the accumulator value.
type DerlerSignature struct {
	Acc       *bn256.G1
	ECDSA     []byte
	Witnesses map[string]*bn256.G1
}

// DerlerSign accumulates set and issues a witness per member, ECDSA-signing
// acc.bytes.
func DerlerSign(sk *keys.DerlerSecretKey, set []string) (*DerlerSignature, error) {
	if len(set) == 0 {
		return nil, ErrInvalidArgument
	}
	acc, err := pairingacc.Eval(sk.Pairing, set)
	if err != nil {
		return nil, err
	}
	witnesses := make(map[string]*bn256.G1, len(set))
	for _, m := range set {
		w, err := pairingacc.Witness(sk.Pairing, acc, m)
		if err != nil {
			return nil, err
		}
		witnesses[m] = w
	}
	sig, err := ecsig.Sign(sk.EC, acc.Marshal())
	if err != nil {
		return nil, err
	}
	return &DerlerSignature{Acc: acc, ECDSA: sig, Witnesses: witnesses}, nil
}

// DerlerRedact drops witnesses for S \ S'. acc and the ECDSA component are
// unchanged: redaction here is simply forgetting witnesses, which is valid
// because the dynamic accumulator's value does not depend on which
// witnesses have been published. Returns nil if subset is not a subset of
// set.
func DerlerRedact(set, subset []string, sig *DerlerSignature) *DerlerSignature {
	if !isSubset(subset, set) {
		return nil
	}
	newWitnesses := make(map[string]*bn256.G1, len(subset))
	for _, m := range subset {
		w, ok := sig.Witnesses[m]
		if !ok {
			return nil
		}
		newWitnesses[m] = w
	}
	return &DerlerSignature{Acc: sig.Acc, ECDSA: sig.ECDSA, Witnesses: newWitnesses}
}

// DerlerVerify accepts iff every member of set has a witness that verifies
// against acc, and the ECDSA signature over acc.bytes is valid.
func DerlerVerify(vk *keys.DerlerPublicKey, sig *DerlerSignature, set []string) bool {
	if sig == nil || len(set) == 0 {
		return false
	}
	for _, m := range set {
		w, ok := sig.Witnesses[m]
		if !ok {
			return false
		}
		if !pairingacc.Verify(vk.Pairing, sig.Acc, w, m) {
			return false
		}
	}
	return ecsig.Verify(vk.EC, sig.Acc.Marshal(), sig.ECDSA)
}

// derAccOnlyEntry/derAccOnlySig implement the signature's DER layout:
//
//	SEQUENCE(OCTET STRING acc, OCTET STRING ecdsa,
//	         SEQUENCE of SEQUENCE(UTF8String member, OCTET STRING witness))
type derAccOnlyEntry struct {
	Member  string
	Witness []byte
}

type derAccOnlySig struct {
	Acc     []byte
	ECDSA   []byte
	Entries []derAccOnlyEntry
}

// EncodeDerlerSignature serializes a DerlerSignature to DER.
func EncodeDerlerSignature(sig *DerlerSignature) ([]byte, error) {
	entries := make([]derAccOnlyEntry, 0, len(sig.Witnesses))
	for m, w := range sig.Witnesses {
		entries = append(entries, derAccOnlyEntry{Member: m, Witness: w.Marshal()})
	}
	return der.Marshal(derAccOnlySig{Acc: sig.Acc.Marshal(), ECDSA: sig.ECDSA, Entries: entries})
}

// DecodeDerlerSignature parses a DER-encoded DerlerSignature.
func DecodeDerlerSignature(b []byte) (*DerlerSignature, error) {
	var v derAccOnlySig
	if err := der.Unmarshal(b, &v); err != nil {
		return nil, err
	}
	acc := new(bn256.G1)
	if _, ok := acc.Unmarshal(v.Acc); !ok {
		return nil, ErrInvalidArgument
	}
	witnesses := make(map[string]*bn256.G1, len(v.Entries))
	for _, e := range v.Entries {
		w := new(bn256.G1)
		if _, ok := w.Unmarshal(e.Witness); !ok {
			return nil, ErrInvalidArgument
		}
		witnesses[e.Member] = w
	}
	return &DerlerSignature{Acc: acc, ECDSA: v.ECDSA, Witnesses: witnesses}, nil
}
