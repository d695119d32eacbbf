package ecsig

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSignVerifyRoundTrip(t *testing.T) {
	sk, err := GenerateKey()
	require.NoError(t, err)

	msg := []byte("accumulator-value-bytes")
	sig, err := Sign(sk, msg)
	require.NoError(t, err)
	require.True(t, Verify(&sk.PublicKey, msg, sig))
}

func TestVerifyRejectsTamperedByte(t *testing.T) {
	sk, err := GenerateKey()
	require.NoError(t, err)

	msg := []byte("accumulator-value-bytes")
	sig, err := Sign(sk, msg)
	require.NoError(t, err)

	tampered := append([]byte{}, sig...)
	tampered[len(tampered)-1] ^= 0xFF
	require.False(t, Verify(&sk.PublicKey, msg, tampered))
}

func TestVerifyRejectsWrongMessage(t *testing.T) {
	sk, err := GenerateKey()
	require.NoError(t, err)

	sig, err := Sign(sk, []byte("message-a"))
	require.NoError(t, err)
	require.False(t, Verify(&sk.PublicKey, []byte("message-b"), sig))
}
