package gpairing

import (
	"testing"

	"github.com/fentec-project/bn256"
	"github.com/stretchr/testify/require"
)

func TestCloneG1DoesNotAliasOriginal(t *testing.T) {
	x, err := RandomScalar()
	require.NoError(t, err)

	p := new(bn256.G1).ScalarBaseMult(x)
	clone := CloneG1(p)

	// Mutating the clone in place must not change p.
	clone.ScalarMult(clone, bn256.Order) // multiply by the group order -> identity
	require.NotEqual(t, p.Marshal(), clone.Marshal())
}

func TestHashToScalarDeterministic(t *testing.T) {
	a := HashToScalar([]byte("alice"))
	b := HashToScalar([]byte("alice"))
	c := HashToScalar([]byte("bob"))
	require.Equal(t, a, b)
	require.NotEqual(t, a, c)
	require.True(t, a.Cmp(Order()) < 0)
}

func TestPairingCheck(t *testing.T) {
	x, err := RandomScalar()
	require.NoError(t, err)
	g1 := G1Generator()
	g2 := G2Generator()
	h1 := new(bn256.G1).ScalarMult(g1, x)
	h2 := new(bn256.G2).ScalarMult(g2, x)

	lhs := bn256.Pair(h1, g2)
	rhs := bn256.Pair(g1, h2)
	require.True(t, GTEqual(lhs, rhs))
}
