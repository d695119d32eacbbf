package pairingacc

import (
	"testing"

	"github.com/fentec-project/bn256"
	"github.com/stretchr/testify/require"
)

func mustUnmarshalG1(t *testing.T, b []byte) *bn256.G1 {
	t.Helper()
	p := new(bn256.G1)
	_, ok := p.Unmarshal(b)
	require.True(t, ok)
	return p
}

func TestEvalWitnessVerifyRoundTrip(t *testing.T) {
	pk, sk, err := KeyGen()
	require.NoError(t, err)

	set := []string{"alpha", "beta", "gamma"}
	acc, err := Eval(sk, set)
	require.NoError(t, err)

	for _, m := range set {
		w, err := Witness(sk, acc, m)
		require.NoError(t, err)
		require.True(t, Verify(pk, acc, w, m))
	}
}

func TestVerifyRejectsNonMember(t *testing.T) {
	pk, sk, err := KeyGen()
	require.NoError(t, err)

	set := []string{"alpha", "beta"}
	acc, err := Eval(sk, set)
	require.NoError(t, err)

	w, err := Witness(sk, acc, "alpha")
	require.NoError(t, err)
	require.False(t, Verify(pk, acc, w, "eve"))
}

func TestRedactionLeavesSurvivingWitnessesValid(t *testing.T) {
	pk, sk, err := KeyGen()
	require.NoError(t, err)

	set := []string{"alpha", "beta", "gamma"}
	acc, err := Eval(sk, set)
	require.NoError(t, err)

	witnesses := map[string][]byte{}
	for _, m := range set {
		w, err := Witness(sk, acc, m)
		require.NoError(t, err)
		witnesses[m] = w.Marshal()
	}

	// Redaction = forget beta and gamma's witnesses; acc is untouched, so
	// alpha's previously-issued witness still verifies on its own.
	require.True(t, Verify(pk, acc, mustUnmarshalG1(t, witnesses["alpha"]), "alpha"))
}
