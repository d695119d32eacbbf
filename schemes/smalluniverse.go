package schemes

import (
	"math/big"
	"strings"

	"github.com/AUKUS561/redsig/der"
	"github.com/AUKUS561/redsig/ecsig"
	"github.com/AUKUS561/redsig/keys"
	"github.com/AUKUS561/redsig/rsaacc"
)

// SmallUniverseSignature is the small-universe scheme's signature object:
// the policy is a list of acceptable characteristic bit-strings, each
// accumulated and witnessed individually.
type SmallUniverseSignature struct {
	Acc       *big.Int
	Policy    string
	ECDSA     []byte
	Witnesses map[string]*big.Int // characteristic string -> witness
}

// characteristic computes the 0/1 vector over universe, bit i set iff
// universe[i] is in set. Fails if set is not a subset of universe.
func characteristic(set, universe []string) (string, error) {
	index := make(map[string]int, len(universe))
	for i, u := range universe {
		index[u] = i
	}
	bits := make([]byte, len(universe))
	for i := range bits {
		bits[i] = '0'
	}
	for _, m := range set {
		i, ok := index[m]
		if !ok {
			return "", ErrInvalidArgument
		}
		bits[i] = '1'
	}
	return string(bits), nil
}

func parsePolicyList(policyText string) []string {
	parts := strings.Split(policyText, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		out = append(out, strings.TrimSpace(p))
	}
	return out
}

func contains(list []string, s string) bool {
	for _, l := range list {
		if l == s {
			return true
		}
	}
	return false
}

// isBitSubset reports whether (c OR k) == c, i.e. every 1-bit of k is also a
// 1-bit of c.
func isBitSubset(k, c string) bool {
	if len(k) != len(c) {
		return false
	}
	for i := range c {
		if k[i] == '1' && c[i] != '1' {
			return false
		}
	}
	return true
}

// SmallUniverseSign accumulates every allowed characteristic bit-string
// listed in the policy, keeping a witness for each, and binds the
// accumulator value with an EC signature.
func SmallUniverseSign(sk *keys.SmallUniverseSecretKey, set []string, policyText string) (*SmallUniverseSignature, error) {
	if policyText == "" {
		return nil, ErrInvalidArgument
	}
	characteristics := parsePolicyList(policyText)
	for _, c := range characteristics {
		if len(c) != len(sk.Universe) {
			return nil, ErrInvalidArgument
		}
	}
	current, err := characteristic(set, sk.Universe)
	if err != nil {
		return nil, err
	}
	if !contains(characteristics, current) {
		return nil, ErrInvalidArgument
	}

	acc, aux, err := rsaacc.Eval(sk.RSA, characteristics)
	if err != nil {
		return nil, err
	}
	witnesses := make(map[string]*big.Int, len(characteristics))
	for i, c := range characteristics {
		witnesses[c] = rsaacc.Witness(sk.RSA, aux, i)
	}

	ecdsaSig, err := ecsig.Sign(sk.EC, der.IntBytes(acc))
	if err != nil {
		return nil, err
	}
	return &SmallUniverseSignature{Acc: acc, Policy: policyText, ECDSA: ecdsaSig, Witnesses: witnesses}, nil
}

// SmallUniverseRedact requires characteristic(subset) to already have a
// witness, then shrinks the witness map to every key whose 1-bits are a
// subset of characteristic(subset)'s 1-bits.
func SmallUniverseRedact(universe []string, set, subset []string, sig *SmallUniverseSignature) *SmallUniverseSignature {
	if !isSubset(subset, set) {
		return nil
	}
	cPrime, err := characteristic(subset, universe)
	if err != nil {
		return nil
	}
	if _, ok := sig.Witnesses[cPrime]; !ok {
		return nil
	}
	newWitnesses := make(map[string]*big.Int)
	for k, w := range sig.Witnesses {
		if isBitSubset(k, cPrime) {
			newWitnesses[k] = w
		}
	}
	return &SmallUniverseSignature{Acc: sig.Acc, Policy: cPrime, ECDSA: sig.ECDSA, Witnesses: newWitnesses}
}

// SmallUniverseVerify checks that set's characteristic bit-string has a
// witness that verifies against the accumulator, and that the EC
// signature over the accumulator value is valid.
func SmallUniverseVerify(vk *keys.SmallUniversePublicKey, sig *SmallUniverseSignature, set []string) bool {
	if sig == nil {
		return false
	}
	c, err := characteristic(set, vk.Universe)
	if err != nil {
		return false
	}
	w, ok := sig.Witnesses[c]
	if !ok {
		return false
	}
	prime, _, err := rsaacc.HashToPrime(c)
	if err != nil {
		return false
	}
	if !rsaacc.Verify(vk.RSA, sig.Acc, w, prime) {
		return false
	}
	return ecsig.Verify(vk.EC, der.IntBytes(sig.Acc), sig.ECDSA)
}

// derSmallUniverseEntry/derSmallUniverseSig implement the signature's DER
// layout:
//
//	SEQUENCE(OCTET STRING acc, UTF8String policy, OCTET STRING ecdsa,
//	         SEQUENCE of SEQUENCE(UTF8String charSeq, OCTET STRING witness))
type derSmallUniverseEntry struct {
	CharSeq string
	Witness []byte
}

type derSmallUniverseSig struct {
	Acc     []byte
	Policy  string
	ECDSA   []byte
	Entries []derSmallUniverseEntry
}

// EncodeSmallUniverseSignature serializes a SmallUniverseSignature to DER.
func EncodeSmallUniverseSignature(sig *SmallUniverseSignature) ([]byte, error) {
	entries := make([]derSmallUniverseEntry, 0, len(sig.Witnesses))
	for c, w := range sig.Witnesses {
		entries = append(entries, derSmallUniverseEntry{CharSeq: c, Witness: w.Bytes()})
	}
	return der.Marshal(derSmallUniverseSig{Acc: sig.Acc.Bytes(), Policy: sig.Policy, ECDSA: sig.ECDSA, Entries: entries})
}

// DecodeSmallUniverseSignature parses a DER-encoded SmallUniverseSignature.
func DecodeSmallUniverseSignature(b []byte) (*SmallUniverseSignature, error) {
	var v derSmallUniverseSig
	if err := der.Unmarshal(b, &v); err != nil {
		return nil, err
	}
	witnesses := make(map[string]*big.Int, len(v.Entries))
	for _, e := range v.Entries {
		witnesses[e.CharSeq] = new(big.Int).SetBytes(e.Witness)
	}
	return &SmallUniverseSignature{
		Acc:       new(big.Int).SetBytes(v.Acc),
		Policy:    v.Policy,
		ECDSA:     v.ECDSA,
		Witnesses: witnesses,
	}, nil
}
