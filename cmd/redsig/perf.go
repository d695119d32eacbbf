package main

import (
	"fmt"
	"time"

	"github.com/AUKUS561/redsig/keys"
	"github.com/AUKUS561/redsig/schemes"
)

// runPerf times KeyGen/Sign/Verify for each scheme once, in the
// VOABE/voabe_test.go style of millisecond timestamps around each step
// rather than a statistical benchmark harness.
func runPerf() error {
	if err := perfDerler(); err != nil {
		return err
	}
	if err := perfLargeUniverse(); err != nil {
		return err
	}
	if err := perfSmallUniverse(); err != nil {
		return err
	}
	return nil
}

func perfDerler() error {
	set := []string{"alpha", "beta", "gamma", "delta", "epsilon"}

	starttime := time.Now().UnixMilli()
	vk, sk, err := keys.NewDerlerKeyPair()
	endtime := time.Now().UnixMilli()
	if err != nil {
		return err
	}
	fmt.Printf("derler keygen: %dms\n", endtime-starttime)

	starttime = time.Now().UnixMilli()
	sig, err := schemes.DerlerSign(sk, set)
	endtime = time.Now().UnixMilli()
	if err != nil {
		return err
	}
	fmt.Printf("derler sign (%d members): %dms\n", len(set), endtime-starttime)

	starttime = time.Now().UnixMilli()
	ok := schemes.DerlerVerify(vk, sig, set)
	endtime = time.Now().UnixMilli()
	fmt.Printf("derler verify: %dms (accept=%v)\n", endtime-starttime, ok)
	return nil
}

func perfLargeUniverse() error {
	set := []string{"a", "b", "c", "d"}
	policyText := "(a and b) or (c and d)"

	starttime := time.Now().UnixMilli()
	vk, sk, err := keys.NewLargeUniverseKeyPair()
	endtime := time.Now().UnixMilli()
	if err != nil {
		return err
	}
	fmt.Printf("large-universe keygen: %dms\n", endtime-starttime)

	starttime = time.Now().UnixMilli()
	sig, err := schemes.LargeUniverseSign(sk, set, policyText)
	endtime = time.Now().UnixMilli()
	if err != nil {
		return err
	}
	fmt.Printf("large-universe sign (%d members): %dms\n", len(set), endtime-starttime)

	starttime = time.Now().UnixMilli()
	ok := schemes.LargeUniverseVerify(vk, sig, set)
	endtime = time.Now().UnixMilli()
	fmt.Printf("large-universe verify: %dms (accept=%v)\n", endtime-starttime, ok)
	return nil
}

func perfSmallUniverse() error {
	universe := []string{"hello", "good", "fun", "dog", "cat"}
	set := []string{"hello", "good", "fun", "dog", "cat"}

	starttime := time.Now().UnixMilli()
	vk, sk, err := keys.NewSmallUniverseKeyPair(universe)
	endtime := time.Now().UnixMilli()
	if err != nil {
		return err
	}
	fmt.Printf("small-universe keygen: %dms\n", endtime-starttime)

	starttime = time.Now().UnixMilli()
	sig, err := schemes.SmallUniverseSign(sk, set, "11111,11000,00111")
	endtime = time.Now().UnixMilli()
	if err != nil {
		return err
	}
	fmt.Printf("small-universe sign (%d members): %dms\n", len(set), endtime-starttime)

	starttime = time.Now().UnixMilli()
	ok := schemes.SmallUniverseVerify(vk, sig, set)
	endtime = time.Now().UnixMilli()
	fmt.Printf("small-universe verify: %dms (accept=%v)\n", endtime-starttime, ok)
	return nil
}
