// Package schemes implements the three redactable set signature schemes,
// binding the pairing accumulator, the RSA accumulator, the policy-tree
// secret sharing, and the EC signature primitive.
package schemes

import (
	"errors"
)

// ErrInvalidArgument signals a malformed policy, a missing policy where
// one is required, or a set that is not a subset of its declared
// universe.
var ErrInvalidArgument = errors.New("schemes: invalid argument")

func isSubset(sub, full []string) bool {
	present := make(map[string]bool, len(full))
	for _, m := range full {
		present[m] = true
	}
	for _, m := range sub {
		if !present[m] {
			return false
		}
	}
	return true
}

func concat(parts ...[]byte) []byte {
	var out []byte
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}
