package main

import "errors"

// errInvalid wraps a CLI-surfaced argument or file-format problem.
func errInvalid(msg string) error {
	return errors.New("redsig: " + msg)
}
