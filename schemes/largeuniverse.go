package schemes

import (
	"fmt"
	"math/big"

	"github.com/AUKUS561/redsig/der"
	"github.com/AUKUS561/redsig/ecsig"
	"github.com/AUKUS561/redsig/keys"
	"github.com/AUKUS561/redsig/policy"
	"github.com/AUKUS561/redsig/rsaacc"
	"github.com/AUKUS561/redsig/shamir"
	"github.com/fentec-project/gofe/sample"
)

// LargeUniverseEntry is one member's witness/share record. x=y=0 marks a
// member that is not an atom of the policy. This structured form is the
// signature's actual data model, rather than a textual "member:(x, y)"
// witness-map key: the accumulator still hashes the textual annotated
// form internally (it needs one hashable string per accumulated
// element), but the signature object itself never carries that string —
// it carries exactly the fields the DER layout already names.
type LargeUniverseEntry struct {
	Member  string
	X, Y    *big.Int
	Witness *big.Int
}

// LargeUniverseSignature is the large-universe scheme's signature object.
type LargeUniverseSignature struct {
	Acc     *big.Int
	Policy  string
	ECDSA   []byte
	Entries []LargeUniverseEntry
}

// annotatedMember renders the textual form the RSA accumulator hashes:
// member || ":" || "(x, y)" with decimal integers.
func annotatedMember(member string, x, y *big.Int) string {
	return fmt.Sprintf("%s:(%s, %s)", member, x.String(), y.String())
}

func zeroShare() (*big.Int, *big.Int) {
	return big.NewInt(0), big.NewInt(0)
}

// LargeUniverseSign accumulates set, shares a fresh root secret across
// the parsed policy tree, and binds the result with an EC signature.
func LargeUniverseSign(sk *keys.LargeUniverseSecretKey, set []string, policyText string) (*LargeUniverseSignature, error) {
	if policyText == "" {
		return nil, ErrInvalidArgument
	}
	root, err := policy.Parse(policyText)
	if err != nil {
		return nil, ErrInvalidArgument
	}

	sampler := sample.NewUniform(shamir.Modulus)
	rootSecret, err := sampler.Sample()
	if err != nil {
		return nil, err
	}
	shares, err := policy.DistributeShares(root, rootSecret)
	if err != nil {
		return nil, err
	}
	tau, ok := policy.Reconstruct(root, shares)
	if !ok {
		// shares were just generated for every atom of root, so this would
		// indicate an internal inconsistency in the share compiler, not a
		// caller error.
		return nil, fmt.Errorf("schemes: policy share distribution did not reconstruct root secret")
	}

	annotated := make([]string, len(set))
	entries := make([]LargeUniverseEntry, len(set))
	for i, m := range set {
		x, y := zeroShare()
		if sh, ok := shares[m]; ok {
			x, y = sh.X, sh.Y
		}
		entries[i] = LargeUniverseEntry{Member: m, X: x, Y: y}
		annotated[i] = annotatedMember(m, x, y)
	}

	acc, aux, err := rsaacc.Eval(sk.RSA, annotated)
	if err != nil {
		return nil, err
	}
	for i := range entries {
		entries[i].Witness = rsaacc.Witness(sk.RSA, aux, i)
	}

	ecdsaSig, err := ecsig.Sign(sk.EC, concat(der.IntBytes(acc), der.IntBytes(tau)))
	if err != nil {
		return nil, err
	}

	return &LargeUniverseSignature{Acc: acc, Policy: policyText, ECDSA: ecdsaSig, Entries: entries}, nil
}

// LargeUniverseRedact returns nil (the not-valid marker) if subset is not
// a subset of set, or if subset does not satisfy the existing policy (or
// the new one, when provided).
func LargeUniverseRedact(set, subset []string, sig *LargeUniverseSignature, newPolicyText string) *LargeUniverseSignature {
	if !isSubset(subset, set) {
		return nil
	}
	oldRoot, err := policy.Parse(sig.Policy)
	if err != nil {
		return nil
	}
	if !policy.Eval(oldRoot, policy.EnvFromSet(subset)) {
		return nil
	}
	finalPolicy := sig.Policy
	if newPolicyText != "" {
		newRoot, err := policy.Parse(newPolicyText)
		if err != nil {
			return nil
		}
		if !policy.Eval(newRoot, policy.EnvFromSet(subset)) {
			return nil
		}
		finalPolicy = newPolicyText
	}

	keep := make(map[string]bool, len(subset))
	for _, m := range subset {
		keep[m] = true
	}
	var newEntries []LargeUniverseEntry
	for _, e := range sig.Entries {
		if keep[e.Member] {
			newEntries = append(newEntries, e)
		}
	}
	return &LargeUniverseSignature{Acc: sig.Acc, Policy: finalPolicy, ECDSA: sig.ECDSA, Entries: newEntries}
}

// LargeUniverseVerify checks every member's RSA accumulator witness, that
// set satisfies the stored policy, and the EC signature over the
// accumulator value and the reconstructed policy secret.
func LargeUniverseVerify(vk *keys.LargeUniversePublicKey, sig *LargeUniverseSignature, set []string) bool {
	if sig == nil || len(set) == 0 {
		return false
	}
	byMember := make(map[string]LargeUniverseEntry, len(sig.Entries))
	for _, e := range sig.Entries {
		byMember[e.Member] = e
	}

	env := make(map[string]policy.Share, len(sig.Entries))
	for _, e := range sig.Entries {
		env[e.Member] = policy.Share{X: e.X, Y: e.Y}
	}

	for _, m := range set {
		e, ok := byMember[m]
		if !ok {
			return false
		}
		am := annotatedMember(e.Member, e.X, e.Y)
		prime, _, err := rsaacc.HashToPrime(am)
		if err != nil {
			return false
		}
		if !rsaacc.Verify(vk.RSA, sig.Acc, e.Witness, prime) {
			return false
		}
	}

	root, err := policy.Parse(sig.Policy)
	if err != nil {
		return false
	}
	if !policy.Eval(root, policy.EnvFromSet(set)) {
		return false
	}

	tau, ok := policy.Reconstruct(root, env)
	if !ok {
		return false
	}
	return ecsig.Verify(vk.EC, concat(der.IntBytes(sig.Acc), der.IntBytes(tau)), sig.ECDSA)
}

// derLargeUniverseEntry/derLargeUniverseSig implement the signature's DER
// layout:
//
//	SEQUENCE(INTEGER acc, UTF8String policy, OCTET STRING ecdsa,
//	         SEQUENCE of SEQUENCE(UTF8String member, INTEGER x, INTEGER y,
//	                               INTEGER witness))
type derLargeUniverseEntry struct {
	Member  string
	X, Y    *big.Int
	Witness *big.Int
}

type derLargeUniverseSig struct {
	Acc     *big.Int
	Policy  string
	ECDSA   []byte
	Entries []derLargeUniverseEntry
}

// EncodeLargeUniverseSignature serializes a LargeUniverseSignature to DER.
func EncodeLargeUniverseSignature(sig *LargeUniverseSignature) ([]byte, error) {
	entries := make([]derLargeUniverseEntry, len(sig.Entries))
	for i, e := range sig.Entries {
		entries[i] = derLargeUniverseEntry{Member: e.Member, X: e.X, Y: e.Y, Witness: e.Witness}
	}
	return der.Marshal(derLargeUniverseSig{Acc: sig.Acc, Policy: sig.Policy, ECDSA: sig.ECDSA, Entries: entries})
}

// DecodeLargeUniverseSignature parses a DER-encoded LargeUniverseSignature.
func DecodeLargeUniverseSignature(b []byte) (*LargeUniverseSignature, error) {
	var v derLargeUniverseSig
	if err := der.Unmarshal(b, &v); err != nil {
		return nil, err
	}
	entries := make([]LargeUniverseEntry, len(v.Entries))
	for i, e := range v.Entries {
		entries[i] = LargeUniverseEntry{Member: e.Member, X: e.X, Y: e.Y, Witness: e.Witness}
	}
	return &LargeUniverseSignature{Acc: v.Acc, Policy: v.Policy, ECDSA: v.ECDSA, Entries: entries}, nil
}
