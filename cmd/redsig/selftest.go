package main

import (
	"fmt"

	"github.com/AUKUS561/redsig/keys"
	"github.com/AUKUS561/redsig/schemes"
)

// runSelfTest runs a set of concrete end-to-end scenarios as a
// CLI-invocable smoke test, distinct from the package's own go test suite.
func runSelfTest() error {
	scenarios := []struct {
		name string
		run  func() error
	}{
		{"large-universe deep policy", testLargeUniverseDeepPolicy},
		{"small-universe bit-string policy", testSmallUniverseBitStringPolicy},
		{"accumulator-only redaction", testAccumulatorOnly},
		{"tamper rejection", testTamperRejection},
		{"large-universe parse error", testLargeUniverseParseError},
	}

	failed := 0
	for _, s := range scenarios {
		if err := s.run(); err != nil {
			fmt.Printf("FAIL %s: %v\n", s.name, err)
			failed++
			continue
		}
		fmt.Printf("PASS %s\n", s.name)
	}
	if failed > 0 {
		return fmt.Errorf("%d scenario(s) failed", failed)
	}
	return nil
}

func mustTrue(cond bool, msg string) error {
	if !cond {
		return fmt.Errorf("%s", msg)
	}
	return nil
}

func testLargeUniverseDeepPolicy() error {
	vk, sk, err := keys.NewLargeUniverseKeyPair()
	if err != nil {
		return err
	}
	set := []string{"a", "b", "c", "d"}
	sig, err := schemes.LargeUniverseSign(sk, set, "(a and b) or (c and d)")
	if err != nil {
		return err
	}
	if err := mustTrue(schemes.LargeUniverseVerify(vk, sig, set), "initial verify failed"); err != nil {
		return err
	}

	redacted := schemes.LargeUniverseRedact(set, []string{"a", "b"}, sig, "a and b")
	if err := mustTrue(redacted != nil, "redact to {a,b} should succeed"); err != nil {
		return err
	}
	if err := mustTrue(schemes.LargeUniverseVerify(vk, redacted, []string{"a", "b"}), "redacted verify failed"); err != nil {
		return err
	}

	if err := mustTrue(schemes.LargeUniverseRedact(set, []string{"a", "c"}, sig, "") == nil, "redact to {a,c} should fail"); err != nil {
		return err
	}
	return nil
}

func testSmallUniverseBitStringPolicy() error {
	universe := []string{"hello", "good", "fun", "dog", "cat"}
	vk, sk, err := keys.NewSmallUniverseKeyPair(universe)
	if err != nil {
		return err
	}
	set := []string{"hello", "good", "fun", "dog", "cat"}
	sig, err := schemes.SmallUniverseSign(sk, set, "11111,11000,00111")
	if err != nil {
		return err
	}
	if err := mustTrue(schemes.SmallUniverseVerify(vk, sig, set), "initial verify failed"); err != nil {
		return err
	}

	redacted := schemes.SmallUniverseRedact(universe, set, []string{"hello", "good"}, sig)
	if err := mustTrue(redacted != nil, "redact to {hello,good} should succeed"); err != nil {
		return err
	}
	if err := mustTrue(schemes.SmallUniverseVerify(vk, redacted, []string{"hello", "good"}), "redacted verify failed"); err != nil {
		return err
	}

	if err := mustTrue(schemes.SmallUniverseRedact(universe, set, []string{"hello", "cat"}, sig) == nil, "redact to {hello,cat} should fail"); err != nil {
		return err
	}
	return nil
}

func testAccumulatorOnly() error {
	vk, sk, err := keys.NewDerlerKeyPair()
	if err != nil {
		return err
	}
	set := []string{"alpha", "beta", "gamma"}
	sig, err := schemes.DerlerSign(sk, set)
	if err != nil {
		return err
	}
	if err := mustTrue(schemes.DerlerVerify(vk, sig, set), "initial verify failed"); err != nil {
		return err
	}

	redacted := schemes.DerlerRedact(set, []string{"alpha"}, sig)
	if err := mustTrue(redacted != nil, "redact to {alpha} should succeed"); err != nil {
		return err
	}
	if err := mustTrue(schemes.DerlerVerify(vk, redacted, []string{"alpha"}), "redacted verify failed"); err != nil {
		return err
	}
	if err := mustTrue(!schemes.DerlerVerify(vk, redacted, []string{"alpha", "beta"}), "redacted signature should not verify against {alpha,beta}"); err != nil {
		return err
	}
	return nil
}

func testTamperRejection() error {
	vk, sk, err := keys.NewDerlerKeyPair()
	if err != nil {
		return err
	}
	set := []string{"alpha", "beta"}
	sig, err := schemes.DerlerSign(sk, set)
	if err != nil {
		return err
	}
	sig.ECDSA[0] ^= 0xFF
	return mustTrue(!schemes.DerlerVerify(vk, sig, set), "tampered signature should not verify")
}

func testLargeUniverseParseError() error {
	_, sk, err := keys.NewLargeUniverseKeyPair()
	if err != nil {
		return err
	}
	_, err = schemes.LargeUniverseSign(sk, []string{"a"}, "a and")
	return mustTrue(err != nil, "malformed policy should raise an error")
}
