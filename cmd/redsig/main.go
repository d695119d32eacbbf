// Command redsig is the CLI front end: keygen, sign, redact, and verify
// for the three redactable set signature schemes, plus help/test/perf
// utility subcommands. Fatal process errors are logged and exit with
// status 1.
package main

import (
	"fmt"
	"log"
	"os"
)

func main() {
	if len(os.Args) < 2 {
		printHelp()
		os.Exit(1)
	}

	var err error
	switch os.Args[1] {
	case "keygen":
		err = runKeygen(os.Args[2:])
	case "sign":
		err = runSign(os.Args[2:])
	case "redact":
		err = runRedact(os.Args[2:])
	case "verify":
		err = runVerify(os.Args[2:])
	case "help":
		printHelp()
		return
	case "test":
		err = runSelfTest()
	case "perf":
		err = runPerf()
	default:
		printHelp()
		os.Exit(1)
	}

	if err != nil {
		log.SetFlags(0)
		log.Fatalf("redsig: %v", err)
	}
}

func printHelp() {
	fmt.Println(`redsig - redactable set signatures

Usage:
  redsig keygen {small <universe_file> | large | derler}
  redsig sign {small|large} <sign_key_file> <set_file> <policy>
  redsig sign derler <sign_key_file> <set_file>
  redsig redact {small|large} <ver_key_file> <set_file> <subset_file> <policy> <sig_file>
  redsig redact derler <ver_key_file> <set_file> <subset_file> <sig_file>
  redsig verify {small|large|derler} <ver_key_file> <set_file> <sig_file>
  redsig help
  redsig test
  redsig perf`)
}
