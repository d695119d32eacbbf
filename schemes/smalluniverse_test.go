package schemes

import (
	"testing"

	"github.com/AUKUS561/redsig/keys"
	"github.com/stretchr/testify/require"
)

func TestSmallUniverseSignVerify(t *testing.T) {
	universe := []string{"hello", "good", "fun", "dog", "cat"}
	pub, sec, err := keys.NewSmallUniverseKeyPair(universe)
	require.NoError(t, err)

	set := []string{"hello", "fun", "cat"} // 10101
	policyText := "10101,11000,00011"
	sig, err := SmallUniverseSign(sec, set, policyText)
	require.NoError(t, err)
	require.True(t, SmallUniverseVerify(pub, sig, set))
}

func TestSmallUniverseRedactToListedCharacteristic(t *testing.T) {
	universe := []string{"hello", "good", "fun", "dog", "cat"}
	pub, sec, err := keys.NewSmallUniverseKeyPair(universe)
	require.NoError(t, err)

	set := []string{"hello", "good", "fun", "dog", "cat"} // 11111
	policyText := "11111,10101,00000"
	sig, err := SmallUniverseSign(sec, set, policyText)
	require.NoError(t, err)
	require.True(t, SmallUniverseVerify(pub, sig, set))

	subset := []string{"hello", "fun", "cat"} // 10101, listed
	redacted := SmallUniverseRedact(universe, set, subset, sig)
	require.NotNil(t, redacted)
	require.True(t, SmallUniverseVerify(pub, redacted, subset))
}

func TestSmallUniverseRedactRejectsUnlistedCharacteristic(t *testing.T) {
	universe := []string{"hello", "good", "fun", "dog", "cat"}
	_, sec, err := keys.NewSmallUniverseKeyPair(universe)
	require.NoError(t, err)

	set := []string{"hello", "good", "fun", "dog", "cat"}
	policyText := "11111"
	sig, err := SmallUniverseSign(sec, set, policyText)
	require.NoError(t, err)

	subset := []string{"hello"} // 10000, not listed
	require.Nil(t, SmallUniverseRedact(universe, set, subset, sig))
}

func TestSmallUniverseSignRejectsDisallowedCharacteristic(t *testing.T) {
	universe := []string{"hello", "good", "fun", "dog", "cat"}
	_, sec, err := keys.NewSmallUniverseKeyPair(universe)
	require.NoError(t, err)

	set := []string{"hello"}
	_, err = SmallUniverseSign(sec, set, "00000")
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestSmallUniverseSignRejectsSetOutsideUniverse(t *testing.T) {
	universe := []string{"hello", "good", "fun", "dog", "cat"}
	_, sec, err := keys.NewSmallUniverseKeyPair(universe)
	require.NoError(t, err)

	_, err = SmallUniverseSign(sec, []string{"elephant"}, "10000")
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestSmallUniverseSignatureDERRoundTrip(t *testing.T) {
	universe := []string{"hello", "good", "fun", "dog", "cat"}
	pub, sec, err := keys.NewSmallUniverseKeyPair(universe)
	require.NoError(t, err)

	set := []string{"hello", "fun", "cat"}
	sig, err := SmallUniverseSign(sec, set, "10101,11000")
	require.NoError(t, err)

	b, err := EncodeSmallUniverseSignature(sig)
	require.NoError(t, err)
	got, err := DecodeSmallUniverseSignature(b)
	require.NoError(t, err)
	require.True(t, SmallUniverseVerify(pub, got, set))
}
