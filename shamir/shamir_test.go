package shamir

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestShareReconstructRoundTrip(t *testing.T) {
	secret := big.NewInt(424242)
	shares, err := Share(secret, 3, 5)
	require.NoError(t, err)
	require.Len(t, shares, 5)

	// Any 3 of the 5 shares should reconstruct the secret.
	points := map[int]*big.Int{1: shares[1], 3: shares[3], 5: shares[5]}
	got := Reconstruct(points)
	require.Equal(t, secret, got)
}

func TestTwoOfTwoShareMatchesPolicyUsage(t *testing.T) {
	secret := big.NewInt(99)
	shares, err := Share(secret, 2, 2)
	require.NoError(t, err)

	got := ReconstructPoints([]int{1, 2}, []*big.Int{shares[1], shares[2]})
	require.Equal(t, secret, got)
}
