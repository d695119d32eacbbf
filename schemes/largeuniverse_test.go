package schemes

import (
	"testing"

	"github.com/AUKUS561/redsig/keys"
	"github.com/stretchr/testify/require"
)

func TestLargeUniverseDeepPolicySignVerifyRedact(t *testing.T) {
	pub, sec, err := keys.NewLargeUniverseKeyPair()
	require.NoError(t, err)

	set := []string{"a", "b", "c", "d"}
	policyText := "(a and b) or (c and d)"
	sig, err := LargeUniverseSign(sec, set, policyText)
	require.NoError(t, err)
	require.True(t, LargeUniverseVerify(pub, sig, set))

	// a,b alone satisfy the left AND branch.
	leftSubset := []string{"a", "b"}
	leftSig := LargeUniverseRedact(set, leftSubset, sig, "")
	require.NotNil(t, leftSig)
	require.True(t, LargeUniverseVerify(pub, leftSig, leftSubset))

	// c,d alone satisfy the right AND branch.
	rightSubset := []string{"c", "d"}
	rightSig := LargeUniverseRedact(set, rightSubset, sig, "")
	require.NotNil(t, rightSig)
	require.True(t, LargeUniverseVerify(pub, rightSig, rightSubset))

	// a alone satisfies neither branch.
	require.Nil(t, LargeUniverseRedact(set, []string{"a"}, sig, ""))
}

func TestLargeUniverseRedactCanTightenPolicy(t *testing.T) {
	pub, sec, err := keys.NewLargeUniverseKeyPair()
	require.NoError(t, err)

	set := []string{"a", "b", "c"}
	sig, err := LargeUniverseSign(sec, set, "(a and b) or c")
	require.NoError(t, err)

	subset := []string{"a", "b"}
	tightened := LargeUniverseRedact(set, subset, sig, "a and b")
	require.NotNil(t, tightened)
	require.True(t, LargeUniverseVerify(pub, tightened, subset))
}

func TestLargeUniverseRedactRejectsUnsatisfyingSubset(t *testing.T) {
	_, sec, err := keys.NewLargeUniverseKeyPair()
	require.NoError(t, err)

	set := []string{"a", "b", "c", "d"}
	sig, err := LargeUniverseSign(sec, set, "a and b")
	require.NoError(t, err)

	require.Nil(t, LargeUniverseRedact(set, []string{"a", "c"}, sig, ""))
}

func TestLargeUniverseVerifyRejectsNonSubsetMember(t *testing.T) {
	pub, sec, err := keys.NewLargeUniverseKeyPair()
	require.NoError(t, err)

	set := []string{"a", "b"}
	sig, err := LargeUniverseSign(sec, set, "a and b")
	require.NoError(t, err)

	require.False(t, LargeUniverseVerify(pub, sig, []string{"a", "eve"}))
}

func TestLargeUniverseSignatureDERRoundTrip(t *testing.T) {
	pub, sec, err := keys.NewLargeUniverseKeyPair()
	require.NoError(t, err)

	set := []string{"a", "b", "c", "d"}
	sig, err := LargeUniverseSign(sec, set, "(a and b) or (c and d)")
	require.NoError(t, err)

	b, err := EncodeLargeUniverseSignature(sig)
	require.NoError(t, err)
	got, err := DecodeLargeUniverseSignature(b)
	require.NoError(t, err)
	require.True(t, LargeUniverseVerify(pub, got, set))
}

func TestLargeUniverseSignRejectsEmptyPolicy(t *testing.T) {
	_, sec, err := keys.NewLargeUniverseKeyPair()
	require.NoError(t, err)
	_, err = LargeUniverseSign(sec, []string{"a"}, "")
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestLargeUniverseSignRejectsMalformedPolicy(t *testing.T) {
	_, sec, err := keys.NewLargeUniverseKeyPair()
	require.NoError(t, err)
	_, err = LargeUniverseSign(sec, []string{"a"}, "a and")
	require.ErrorIs(t, err, ErrInvalidArgument)
}
