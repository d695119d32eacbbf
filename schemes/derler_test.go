package schemes

import (
	"testing"

	"github.com/AUKUS561/redsig/keys"
	"github.com/stretchr/testify/require"
)

func TestDerlerSignVerifyRedactRoundTrip(t *testing.T) {
	pub, sec, err := keys.NewDerlerKeyPair()
	require.NoError(t, err)

	set := []string{"alice", "bob", "carol", "dave"}
	sig, err := DerlerSign(sec, set)
	require.NoError(t, err)
	require.True(t, DerlerVerify(pub, sig, set))

	subset := []string{"alice", "carol"}
	redacted := DerlerRedact(set, subset, sig)
	require.NotNil(t, redacted)
	require.True(t, DerlerVerify(pub, redacted, subset))
	require.False(t, DerlerVerify(pub, redacted, set))
}

func TestDerlerRedactRejectsNonSubset(t *testing.T) {
	pub, sec, err := keys.NewDerlerKeyPair()
	require.NoError(t, err)
	_ = pub

	set := []string{"alice", "bob"}
	sig, err := DerlerSign(sec, set)
	require.NoError(t, err)

	require.Nil(t, DerlerRedact(set, []string{"eve"}, sig))
}

func TestDerlerVerifyRejectsTamperedWitness(t *testing.T) {
	pub, sec, err := keys.NewDerlerKeyPair()
	require.NoError(t, err)

	set := []string{"alice", "bob"}
	sig, err := DerlerSign(sec, set)
	require.NoError(t, err)

	other, _, err := keys.NewDerlerKeyPair()
	_ = other
	require.NoError(t, err)

	// swap in a witness from a signature over a different set entirely.
	sig2, err := DerlerSign(sec, []string{"carol", "dave"})
	require.NoError(t, err)
	sig.Witnesses["alice"] = sig2.Witnesses["carol"]

	require.False(t, DerlerVerify(pub, sig, set))
}

func TestDerlerSignatureDERRoundTrip(t *testing.T) {
	pub, sec, err := keys.NewDerlerKeyPair()
	require.NoError(t, err)

	set := []string{"alice", "bob", "carol"}
	sig, err := DerlerSign(sec, set)
	require.NoError(t, err)

	b, err := EncodeDerlerSignature(sig)
	require.NoError(t, err)
	got, err := DecodeDerlerSignature(b)
	require.NoError(t, err)
	require.True(t, DerlerVerify(pub, got, set))
}

func TestDerlerSignRejectsEmptySet(t *testing.T) {
	_, sec, err := keys.NewDerlerKeyPair()
	require.NoError(t, err)
	_, err = DerlerSign(sec, nil)
	require.ErrorIs(t, err, ErrInvalidArgument)
}
