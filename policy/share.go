package policy

import (
	"math/big"

	"github.com/AUKUS561/redsig/shamir"
)

// DistributeShares walks the policy tree from the root, assigning
// (x=0, rootSecret) to the root and propagating shares down to every leaf:
//
//   - at an AND node carrying secret s, a Shamir (2,2) sharing of s is
//     built, abscissa 1 going to the left subtree and 2 to the right;
//   - at an OR node carrying secret s, both subtrees simply receive (1, s)
//     and (2, s) — replication, since satisfying either branch suffices;
//   - at a leaf for identifier id, the environment binds id -> (x, s).
//
// If an identifier appears more than once in the formula, the last
// assignment wins.
func DistributeShares(root Node, rootSecret *big.Int) (map[string]Share, error) {
	env := make(map[string]Share)
	if err := distribute(root, Share{X: big.NewInt(0), Y: rootSecret}, env); err != nil {
		return nil, err
	}
	return env, nil
}

func distribute(n Node, in Share, env map[string]Share) error {
	switch t := n.(type) {
	case *Leaf:
		env[t.ID] = in
		return nil
	case *Binary:
		switch t.Op {
		case OpAnd:
			shares, err := shamir.Share(in.Y, 2, 2)
			if err != nil {
				return err
			}
			if err := distribute(t.Left, Share{X: big.NewInt(1), Y: shares[1]}, env); err != nil {
				return err
			}
			return distribute(t.Right, Share{X: big.NewInt(2), Y: shares[2]}, env)
		case OpOr:
			if err := distribute(t.Left, Share{X: big.NewInt(1), Y: in.Y}, env); err != nil {
				return err
			}
			return distribute(t.Right, Share{X: big.NewInt(2), Y: in.Y}, env)
		}
	}
	return nil
}

// Reconstruct attempts to recover the root secret from an environment
// binding (a subset of) the formula's identifiers to their shares:
//
//   - a leaf returns its share from env, or fails if absent;
//   - an AND node requires both subtrees to succeed, then Lagrange
//     interpolates at X=0 from (1, left.Y) and (2, right.Y);
//   - an OR node returns whichever subtree succeeds, preferring the left.
//
// The second return value is false if reconstruction failed (the bound
// identifiers do not satisfy the formula).
func Reconstruct(n Node, env map[string]Share) (*big.Int, bool) {
	s, ok := reconstruct(n, env)
	if !ok {
		return nil, false
	}
	return s.Y, true
}

func reconstruct(n Node, env map[string]Share) (Share, bool) {
	switch t := n.(type) {
	case *Leaf:
		s, ok := env[t.ID]
		return s, ok
	case *Binary:
		switch t.Op {
		case OpAnd:
			l, lok := reconstruct(t.Left, env)
			if !lok {
				return Share{}, false
			}
			r, rok := reconstruct(t.Right, env)
			if !rok {
				return Share{}, false
			}
			y := shamir.ReconstructPoints([]int{1, 2}, []*big.Int{l.Y, r.Y})
			return Share{X: big.NewInt(0), Y: y}, true
		case OpOr:
			if l, ok := reconstruct(t.Left, env); ok {
				return l, true
			}
			if r, ok := reconstruct(t.Right, env); ok {
				return r, true
			}
			return Share{}, false
		}
	}
	return Share{}, false
}
