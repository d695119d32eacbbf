package keys

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSmallUniverseKeyDERRoundTrip(t *testing.T) {
	universe := []string{"hello", "good", "fun", "dog", "cat"}
	pub, sec, err := NewSmallUniverseKeyPair(universe)
	require.NoError(t, err)

	pubDER, err := EncodeSmallUniverseVerifyKey(pub)
	require.NoError(t, err)
	gotPub, err := DecodeSmallUniverseVerifyKey(pubDER, universe)
	require.NoError(t, err)
	require.Equal(t, pub.RSA.N, gotPub.RSA.N)
	require.Equal(t, pub.RSA.G, gotPub.RSA.G)

	secDER, err := EncodeSmallUniverseSignKey(sec)
	require.NoError(t, err)
	gotSec, err := DecodeSmallUniverseSignKey(secDER, universe)
	require.NoError(t, err)
	require.Equal(t, sec.RSA.P, gotSec.RSA.P)
	require.Equal(t, sec.RSA.Q, gotSec.RSA.Q)
}

func TestLargeUniverseKeyDERRoundTrip(t *testing.T) {
	pub, sec, err := NewLargeUniverseKeyPair()
	require.NoError(t, err)

	pubDER, err := EncodeLargeUniverseVerifyKey(pub)
	require.NoError(t, err)
	gotPub, err := DecodeLargeUniverseVerifyKey(pubDER)
	require.NoError(t, err)
	require.Equal(t, pub.RSA.N, gotPub.RSA.N)

	secDER, err := EncodeLargeUniverseSignKey(sec)
	require.NoError(t, err)
	_, err = DecodeLargeUniverseSignKey(secDER)
	require.NoError(t, err)
}

func TestDerlerKeyDERRoundTrip(t *testing.T) {
	pub, sec, err := NewDerlerKeyPair()
	require.NoError(t, err)

	pubDER, err := EncodeDerlerVerifyKey(pub)
	require.NoError(t, err)
	gotPub, err := DecodeDerlerVerifyKey(pubDER)
	require.NoError(t, err)
	require.Equal(t, pub.Pairing.G2.Marshal(), gotPub.Pairing.G2.Marshal())
	require.Equal(t, pub.Pairing.G2X.Marshal(), gotPub.Pairing.G2X.Marshal())

	secDER, err := EncodeDerlerSignKey(sec)
	require.NoError(t, err)
	gotSec, err := DecodeDerlerSignKey(secDER)
	require.NoError(t, err)
	require.Equal(t, sec.Pairing.X, gotSec.Pairing.X)
}
