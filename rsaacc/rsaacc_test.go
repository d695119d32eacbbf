package rsaacc

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashToPrimeDeterministicAndPrime(t *testing.T) {
	p1, c1, err := HashToPrime("alice")
	require.NoError(t, err)
	p2, c2, err := HashToPrime("alice")
	require.NoError(t, err)

	require.Equal(t, c1, c2)
	require.Equal(t, p1, p2)
	require.True(t, p1.ProbablyPrime(MillerRabinRounds))
}

func TestHashToPrimeDiffersAcrossInputs(t *testing.T) {
	p1, _, err := HashToPrime("alice")
	require.NoError(t, err)
	p2, _, err := HashToPrime("bob")
	require.NoError(t, err)
	require.NotEqual(t, p1, p2)
}

func TestEvalWitnessVerifyRoundTrip(t *testing.T) {
	pk, _, err := KeyGen()
	require.NoError(t, err)

	members := []string{"alice", "bob", "carol"}
	acc, aux, err := Eval(pk, members)
	require.NoError(t, err)

	for i := range members {
		w := Witness(pk, aux, i)
		require.True(t, Verify(pk, acc, w, aux[i].Prime))
	}
}

func TestVerifyFailsForWrongPrime(t *testing.T) {
	pk, _, err := KeyGen()
	require.NoError(t, err)

	members := []string{"alice", "bob"}
	acc, aux, err := Eval(pk, members)
	require.NoError(t, err)

	w := Witness(pk, aux, 0)
	require.False(t, Verify(pk, acc, w, aux[1].Prime))
}
