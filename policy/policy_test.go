package policy

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseLeftAssociativeEqualPrecedence(t *testing.T) {
	n, err := Parse("a or b and c")
	require.NoError(t, err)
	// left-assoc, equal precedence: (a or b) and c
	bin, ok := n.(*Binary)
	require.True(t, ok)
	require.Equal(t, OpAnd, bin.Op)
	inner, ok := bin.Left.(*Binary)
	require.True(t, ok)
	require.Equal(t, OpOr, inner.Op)
}

func TestParseParensAndAtoms(t *testing.T) {
	n, err := Parse("(a and b) or (c and d)")
	require.NoError(t, err)
	require.ElementsMatch(t, []string{"a", "b", "c", "d"}, Atoms(n))
}

func TestParseRejectsTrailingOperator(t *testing.T) {
	_, err := Parse("a and")
	require.Error(t, err)
}

func TestEvalUnboundIsFalse(t *testing.T) {
	n, err := Parse("a and b")
	require.NoError(t, err)
	require.False(t, Eval(n, map[string]bool{"a": true}))
	require.True(t, Eval(n, map[string]bool{"a": true, "b": true}))
}

func TestEvalOrShortCircuits(t *testing.T) {
	n, err := Parse("a or b")
	require.NoError(t, err)
	require.True(t, Eval(n, map[string]bool{"a": true}))
	require.True(t, Eval(n, map[string]bool{"b": true}))
	require.False(t, Eval(n, map[string]bool{}))
}

func TestDistributeAndReconstructSatisfyingAssignment(t *testing.T) {
	n, err := Parse("(a and b) or (c and d)")
	require.NoError(t, err)

	rootSecret := big.NewInt(123456789)
	shares, err := DistributeShares(n, rootSecret)
	require.NoError(t, err)

	// Satisfy via (a and b).
	sub := map[string]Share{"a": shares["a"], "b": shares["b"]}
	got, ok := Reconstruct(n, sub)
	require.True(t, ok)
	require.Equal(t, rootSecret, got)

	// Satisfy via (c and d) too.
	sub2 := map[string]Share{"c": shares["c"], "d": shares["d"]}
	got2, ok := Reconstruct(n, sub2)
	require.True(t, ok)
	require.Equal(t, rootSecret, got2)
}

func TestReconstructFailsOnUnsatisfyingAssignment(t *testing.T) {
	n, err := Parse("(a and b) or (c and d)")
	require.NoError(t, err)

	rootSecret := big.NewInt(42)
	shares, err := DistributeShares(n, rootSecret)
	require.NoError(t, err)

	sub := map[string]Share{"a": shares["a"], "c": shares["c"]}
	_, ok := Reconstruct(n, sub)
	require.False(t, ok)
}
