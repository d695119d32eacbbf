// Package policy implements the monotone and/or formula language the
// large-universe signature scheme uses as its redaction policy: a lexer
// and parser for the grammar, the resulting AST, truth evaluation, and
// the Shamir-tree share distribution/reconstruction that turns a
// satisfying assignment into a unique reconstructed secret.
package policy

import "math/big"

// Op is the kind of a binary formula node.
type Op int

const (
	// OpAnd requires both subtrees to hold.
	OpAnd Op = iota
	// OpOr requires either subtree to hold.
	OpOr
)

// Node is a policy AST node: either a Leaf naming a member, or a Binary
// combining two subtrees with AND/OR. Children are owned values; there
// are no parent back-edges, so the tree can never cycle.
type Node interface {
	isNode()
}

// Leaf is an atom of the formula, identifying a set member.
type Leaf struct {
	ID string
}

func (*Leaf) isNode() {}

// Binary is an internal AND/OR node.
type Binary struct {
	Op          Op
	Left, Right Node
}

func (*Binary) isNode() {}

// Share is a (x, y) point on a node's Shamir polynomial. The empty share is
// (0, 0).
type Share struct {
	X *big.Int
	Y *big.Int
}

func emptyShare() Share {
	return Share{X: big.NewInt(0), Y: big.NewInt(0)}
}

// IsEmpty reports whether s is the canonical empty share (0, 0).
func (s Share) IsEmpty() bool {
	return s.X.Sign() == 0 && s.Y.Sign() == 0
}

// Eval evaluates the formula against an environment binding identifiers to
// boolean truth values. Unbound identifiers are treated as false.
func Eval(n Node, env map[string]bool) bool {
	switch t := n.(type) {
	case *Leaf:
		return env[t.ID]
	case *Binary:
		switch t.Op {
		case OpAnd:
			return Eval(t.Left, env) && Eval(t.Right, env)
		case OpOr:
			// OR short-circuits to true if either side is true.
			if Eval(t.Left, env) {
				return true
			}
			return Eval(t.Right, env)
		}
	}
	return false
}

// Atoms returns every leaf identifier appearing in the formula, in
// left-to-right order, including duplicates if an identifier appears more
// than once.
func Atoms(n Node) []string {
	var out []string
	var walk func(Node)
	walk = func(n Node) {
		switch t := n.(type) {
		case *Leaf:
			out = append(out, t.ID)
		case *Binary:
			walk(t.Left)
			walk(t.Right)
		}
	}
	walk(n)
	return out
}

// EnvFromSet builds a truth environment where every member of set is bound
// true.
func EnvFromSet(set []string) map[string]bool {
	env := make(map[string]bool, len(set))
	for _, m := range set {
		env[m] = true
	}
	return env
}
